package slack

import "encoding/json"

// Paging describes page-number pagination in log listings.
type Paging struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Login is one entry of the team access logs, aggregated per user, IP
// address and user agent.
type Login struct {
	UserID    string `json:"user_id" validate:"required"`
	Username  string `json:"username"`
	DateFirst int64  `json:"date_first"`
	DateLast  int64  `json:"date_last"`
	Count     int    `json:"count"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	ISP       string `json:"isp"`
	Country   string `json:"country"`
	Region    string `json:"region"`
}

type AccessLogsResponse struct {
	OK     bool    `json:"ok"`
	Logins []Login `json:"logins" validate:"dive"`
	Paging Paging  `json:"paging"`
}

// BillableInfo is the billing state of one user.
type BillableInfo struct {
	BillingActive bool `json:"billing_active"`
}

type BillableInfoResponse struct {
	OK bool `json:"ok"`
	// BillableInfo is keyed by user ID.
	BillableInfo map[string]BillableInfo `json:"billable_info"`
}

type Team struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name"`
	Domain         string `json:"domain"`
	EmailDomain    string `json:"email_domain"`
	EnterpriseID   string `json:"enterprise_id,omitempty"`
	EnterpriseName string `json:"enterprise_name,omitempty"`

	Icon map[string]json.RawMessage `json:"icon,omitempty"`
}

type TeamInfoResponse struct {
	OK   bool  `json:"ok"`
	Team *Team `json:"team"`
}

// IntegrationLog records an app or custom integration being added, changed
// or removed.
type IntegrationLog struct {
	ServiceID   string `json:"service_id,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	AppID       string `json:"app_id,omitempty"`
	AppType     string `json:"app_type,omitempty"`
	UserID      string `json:"user_id" validate:"required"`
	UserName    string `json:"user_name"`
	Channel     string `json:"channel,omitempty"`
	Date        string `json:"date"`
	ChangeType  string `json:"change_type"`
	Scope       string `json:"scope,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type IntegrationLogsResponse struct {
	OK     bool             `json:"ok"`
	Logs   []IntegrationLog `json:"logs" validate:"dive"`
	Paging Paging           `json:"paging"`
}
