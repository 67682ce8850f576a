// Package slack is a typed client for the Slack Web API.
//
//	c, err := slack.New(token)
//	if err != nil {
//	    return err
//	}
//
//	info, err := c.Team.Info(ctx, nil)
//
// Slack reports most failures with HTTP 200 and a body of
// {"ok": false, "error": "..."}; those are returned as *Error.
package slack

import (
	"fmt"

	"github.com/tidwall/gjson"

	client "github.com/peteraglen/saas-api-go-client"
)

// DefaultBaseURL is the Slack Web API.
const DefaultBaseURL = "https://slack.com/api"

// Client groups the Slack API services.
type Client struct {
	http *client.Client

	Team *TeamService
}

// New creates a client for the Slack Web API using a bot or user token.
func New(token string, opts ...client.Option) (*Client, error) {
	return NewWithBaseURL(DefaultBaseURL, token, opts...)
}

// NewWithBaseURL creates a client against another base URL. opts are applied
// after the Slack defaults.
func NewWithBaseURL(baseURL, token string, opts ...client.Option) (*Client, error) {
	defaults := []client.Option{
		client.WithAuthScheme("Bearer"),
		client.WithAuthToken(token),
		client.WithPager(client.CursorPager{Field: "response_metadata.next_cursor", Param: "cursor"}),
		client.WithResponseCheck(checkOK),
	}

	c, err := client.New(baseURL, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("slack: %w", err)
	}

	return &Client{
		http: c,
		Team: &TeamService{client: c},
	}, nil
}

// HTTP returns the underlying API client.
func (c *Client) HTTP() *client.Client {
	return c.http
}

// Error is a Slack method failure reported in the response envelope.
type Error struct {
	// Code is the machine-readable error, such as "invalid_auth".
	Code    string
	Warning string
	// Needed and Provided list scopes for "missing_scope" errors.
	Needed   string
	Provided string
}

func (e *Error) Error() string {
	if e.Needed != "" {
		return fmt.Sprintf("slack: %s (needed: %s, provided: %s)", e.Code, e.Needed, e.Provided)
	}
	return "slack: " + e.Code
}

// checkOK turns an {"ok": false} envelope into an *Error. Bodies without an
// ok field are accepted.
func checkOK(resp *client.Response) error {
	ok := gjson.GetBytes(resp.Body, "ok")
	if !ok.Exists() || ok.Bool() {
		return nil
	}

	fields := gjson.GetManyBytes(resp.Body, "error", "warning", "needed", "provided")

	return &Error{
		Code:     fields[0].String(),
		Warning:  fields[1].String(),
		Needed:   fields[2].String(),
		Provided: fields[3].String(),
	}
}
