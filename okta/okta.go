// Package okta is a typed client for the Okta management API.
//
// Okta is served from an organization URL such as https://example.okta.com
// and authenticates with an API token sent as "Authorization: SSWS <token>".
//
//	c, err := okta.New("https://example.okta.com", token)
//	if err != nil {
//	    return err
//	}
//
//	factors, err := c.UserFactors.ListAll(ctx, userID)
package okta

import (
	"fmt"

	client "github.com/peteraglen/saas-api-go-client"
)

// AuthScheme is the Authorization scheme used for Okta API tokens.
const AuthScheme = "SSWS"

// Client groups the Okta API services.
type Client struct {
	http *client.Client

	UserFactors *UserFactorsService
}

// New creates a client for the organization at orgURL. opts are applied after
// the Okta defaults.
func New(orgURL, token string, opts ...client.Option) (*Client, error) {
	defaults := []client.Option{
		client.WithAuthScheme(AuthScheme),
		client.WithAuthToken(token),
		client.WithPager(client.LinkHeaderPager{}),
	}

	c, err := client.New(orgURL, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("okta: %w", err)
	}

	return &Client{
		http:        c,
		UserFactors: &UserFactorsService{client: c},
	}, nil
}

// HTTP returns the underlying API client.
func (c *Client) HTTP() *client.Client {
	return c.http
}
