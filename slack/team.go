package slack

import (
	"context"
	"net/http"

	client "github.com/peteraglen/saas-api-go-client"
)

// Log listings are paged by number rather than by cursor.
var logPager = client.PageNumberPager{PageField: "paging.page", PagesField: "paging.pages", Param: "page"}

var (
	teamAccessLogs = client.Endpoint[*AccessLogsResponse]{
		Method: http.MethodGet,
		Path:   "/team.accessLogs",
	}
	teamAccessLogins = client.ListEndpoint[Login]{
		Method: http.MethodGet,
		Path:   "/team.accessLogs",
		Items:  "logins",
		Pager:  logPager,
	}
	teamBillableInfo = client.Endpoint[*BillableInfoResponse]{
		Method: http.MethodGet,
		Path:   "/team.billableInfo",
	}
	teamInfo = client.Endpoint[*TeamInfoResponse]{
		Method: http.MethodGet,
		Path:   "/team.info",
	}
	teamIntegrationLogs = client.Endpoint[*IntegrationLogsResponse]{
		Method: http.MethodGet,
		Path:   "/team.integrationLogs",
	}
	teamIntegrationLogEntries = client.ListEndpoint[IntegrationLog]{
		Method: http.MethodGet,
		Path:   "/team.integrationLogs",
		Items:  "logs",
		Pager:  logPager,
	}
)

// AccessLogsOptions filter team.accessLogs. Nil fields are not sent.
type AccessLogsOptions struct {
	// Before is a Unix timestamp; only logins up to and including it are returned.
	Before *int64 `url:"before,omitempty"`
	Count  *int   `url:"count,omitempty"`
	Page   *int   `url:"page,omitempty"`
}

type BillableInfoOptions struct {
	// User limits the result to one user; all users by default.
	User *string `url:"user,omitempty"`
}

type TeamInfoOptions struct {
	// Team selects another team visible through shared channels; the token's
	// own team by default.
	Team *string `url:"team,omitempty"`
}

// IntegrationLogsOptions filter team.integrationLogs. Nil fields are not sent.
type IntegrationLogsOptions struct {
	AppID      *string `url:"app_id,omitempty"`
	ChangeType *string `url:"change_type,omitempty"`
	Count      *int    `url:"count,omitempty"`
	Page       *int    `url:"page,omitempty"`
	ServiceID  *string `url:"service_id,omitempty"`
	User       *string `url:"user,omitempty"`
}

// TeamService reads workspace information. Most methods require the admin
// scope.
type TeamService struct {
	client *client.Client
}

// AccessLogs returns one page of the team's access logs.
func (s *TeamService) AccessLogs(ctx context.Context, opts *AccessLogsOptions) (*AccessLogsResponse, error) {
	return teamAccessLogs.Do(ctx, s.client, client.Call{Query: opts})
}

// AccessLogsAll returns the logins of every page starting at opts.Page.
func (s *TeamService) AccessLogsAll(ctx context.Context, opts *AccessLogsOptions) ([]Login, error) {
	return teamAccessLogins.All(ctx, s.client, client.Call{Query: opts})
}

func (s *TeamService) BillableInfo(ctx context.Context, opts *BillableInfoOptions) (*BillableInfoResponse, error) {
	return teamBillableInfo.Do(ctx, s.client, client.Call{Query: opts})
}

func (s *TeamService) Info(ctx context.Context, opts *TeamInfoOptions) (*TeamInfoResponse, error) {
	return teamInfo.Do(ctx, s.client, client.Call{Query: opts})
}

// IntegrationLogs returns one page of the team's integration logs.
func (s *TeamService) IntegrationLogs(ctx context.Context, opts *IntegrationLogsOptions) (*IntegrationLogsResponse, error) {
	return teamIntegrationLogs.Do(ctx, s.client, client.Call{Query: opts})
}

func (s *TeamService) IntegrationLogsAll(ctx context.Context, opts *IntegrationLogsOptions) ([]IntegrationLog, error) {
	return teamIntegrationLogEntries.All(ctx, s.client, client.Call{Query: opts})
}
