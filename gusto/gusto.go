// Package gusto is a typed client for the Gusto payroll API.
//
//	c, err := gusto.New(token)
//	if err != nil {
//	    return err
//	}
//
//	garnishments, err := c.Garnishments.ListAllByEmployee(ctx, employeeID)
//
// List endpoints follow the Link response header when fetching all pages.
package gusto

import (
	"fmt"

	client "github.com/peteraglen/saas-api-go-client"
)

// DefaultBaseURL is the production Gusto API.
const DefaultBaseURL = "https://api.gusto.com"

// Client groups the Gusto API services.
type Client struct {
	http *client.Client

	Garnishments *GarnishmentsService
}

// New creates a client for the production API using a bearer token.
func New(token string, opts ...client.Option) (*Client, error) {
	return NewWithBaseURL(DefaultBaseURL, token, opts...)
}

// NewWithBaseURL creates a client for another Gusto environment, such as the
// demo API. opts are applied after the Gusto defaults.
func NewWithBaseURL(baseURL, token string, opts ...client.Option) (*Client, error) {
	defaults := []client.Option{
		client.WithAuthScheme("Bearer"),
		client.WithAuthToken(token),
		client.WithPager(client.LinkHeaderPager{}),
	}

	c, err := client.New(baseURL, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gusto: %w", err)
	}

	return &Client{
		http:         c,
		Garnishments: &GarnishmentsService{client: c},
	}, nil
}

// HTTP returns the underlying API client.
func (c *Client) HTTP() *client.Client {
	return c.http
}
