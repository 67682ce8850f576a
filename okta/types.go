package okta

import (
	"encoding/json"
	"time"
)

// FactorType values accepted by Okta.
const (
	FactorTypeCall          = "call"
	FactorTypeEmail         = "email"
	FactorTypePush          = "push"
	FactorTypeQuestion      = "question"
	FactorTypeSMS           = "sms"
	FactorTypeToken         = "token"
	FactorTypeTokenHardware = "token:hardware"
	FactorTypeTokenSoftware = "token:software:totp"
	FactorTypeWebAuthn      = "webauthn"
)

// FactorResult values reported by verification and transaction polling.
const (
	FactorResultSuccess   = "SUCCESS"
	FactorResultChallenge = "CHALLENGE"
	FactorResultWaiting   = "WAITING"
	FactorResultRejected  = "REJECTED"
	FactorResultTimeout   = "TIMEOUT"
	FactorResultFailed    = "FAILED"
)

// UserFactor is an authentication factor enrolled for, or available to, a user.
type UserFactor struct {
	ID          string     `json:"id,omitempty"`
	FactorType  string     `json:"factorType" validate:"required"`
	Provider    string     `json:"provider,omitempty"`
	Status      string     `json:"status,omitempty"`
	VendorName  string     `json:"vendorName,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`

	// Profile and Verify depend on the factor type and are kept raw.
	Profile json.RawMessage `json:"profile,omitempty"`
	Verify  json.RawMessage `json:"verify,omitempty"`

	Links    map[string]json.RawMessage `json:"_links,omitempty"`
	Embedded map[string]json.RawMessage `json:"_embedded,omitempty"`
}

// SecurityQuestion is a question available to the "question" factor.
type SecurityQuestion struct {
	Question     string `json:"question" validate:"required"`
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer,omitempty"`
}

type ActivateFactorRequest struct {
	PassCode         string `json:"passCode,omitempty"`
	Attestation      string `json:"attestation,omitempty"`
	ClientData       string `json:"clientData,omitempty"`
	RegistrationData string `json:"registrationData,omitempty"`
	StateToken       string `json:"stateToken,omitempty"`
}

type VerifyFactorRequest struct {
	ActivationToken      string `json:"activationToken,omitempty"`
	Answer               string `json:"answer,omitempty"`
	Attestation          string `json:"attestation,omitempty"`
	ClientData           string `json:"clientData,omitempty"`
	NextPassCode         string `json:"nextPassCode,omitempty"`
	PassCode             string `json:"passCode,omitempty"`
	RegistrationData     string `json:"registrationData,omitempty"`
	StateToken           string `json:"stateToken,omitempty"`
	TokenLifetimeSeconds int64  `json:"tokenLifetimeSeconds,omitempty"`
}

// VerifyUserFactorResponse reports the outcome of a verification. Push and
// other asynchronous factors answer WAITING with a poll link until the user
// responds.
type VerifyUserFactorResponse struct {
	FactorResult        string                     `json:"factorResult" validate:"required"`
	FactorResultMessage string                     `json:"factorResultMessage,omitempty"`
	ExpiresAt           *time.Time                 `json:"expiresAt,omitempty"`
	Links               map[string]json.RawMessage `json:"_links,omitempty"`
	Embedded            map[string]json.RawMessage `json:"_embedded,omitempty"`
}
