package okta

import (
	"context"
	"net/http"

	client "github.com/peteraglen/saas-api-go-client"
)

var (
	listFactors = client.ListEndpoint[UserFactor]{
		Method: http.MethodGet,
		Path:   "/api/v1/users/{userId}/factors",
	}
	enrollFactor = client.Endpoint[*UserFactor]{
		Method: http.MethodPost,
		Path:   "/api/v1/users/{userId}/factors",
	}
	listSupportedFactors = client.ListEndpoint[UserFactor]{
		Method: http.MethodGet,
		Path:   "/api/v1/users/{userId}/factors/catalog",
	}
	listSecurityQuestions = client.ListEndpoint[SecurityQuestion]{
		Method: http.MethodGet,
		Path:   "/api/v1/users/{userId}/factors/questions",
	}
	getFactor = client.Endpoint[*UserFactor]{
		Method: http.MethodGet,
		Path:   "/api/v1/users/{userId}/factors/{factorId}",
	}
	deleteFactor = client.Endpoint[client.NoContent]{
		Method: http.MethodDelete,
		Path:   "/api/v1/users/{userId}/factors/{factorId}",
	}
	activateFactor = client.Endpoint[*UserFactor]{
		Method: http.MethodPost,
		Path:   "/api/v1/users/{userId}/factors/{factorId}/lifecycle/activate",
	}
	getFactorTransactionStatus = client.Endpoint[*VerifyUserFactorResponse]{
		Method: http.MethodGet,
		Path:   "/api/v1/users/{userId}/factors/{factorId}/transactions/{transactionId}",
	}
	verifyFactor = client.Endpoint[*VerifyUserFactorResponse]{
		Method: http.MethodPost,
		Path:   "/api/v1/users/{userId}/factors/{factorId}/verify",
	}
)

// EnrollFactorOptions are the optional query parameters of Enroll. Nil
// fields are not sent.
type EnrollFactorOptions struct {
	UpdatePhone *bool `url:"updatePhone,omitempty"`
	// TemplateID selects the SMS template; sms factors only.
	TemplateID           *string `url:"templateId,omitempty"`
	TokenLifetimeSeconds *int64  `url:"tokenLifetimeSeconds,omitempty"`
	Activate             *bool   `url:"activate,omitempty"`
}

// VerifyFactorOptions are the optional parameters of Verify. TemplateID and
// TokenLifetimeSeconds go in the query string; the remaining fields are
// forwarded as request headers so Okta evaluates the end user's context
// rather than the caller's.
type VerifyFactorOptions struct {
	TemplateID           *string `url:"templateId,omitempty"`
	TokenLifetimeSeconds *int64  `url:"tokenLifetimeSeconds,omitempty"`

	XForwardedFor  string `url:"-"`
	UserAgent      string `url:"-"`
	AcceptLanguage string `url:"-"`
}

func (o *VerifyFactorOptions) headers() map[string]string {
	if o == nil {
		return nil
	}

	h := make(map[string]string, 3)
	if o.XForwardedFor != "" {
		h["X-Forwarded-For"] = o.XForwardedFor
	}
	if o.UserAgent != "" {
		h["User-Agent"] = o.UserAgent
	}
	if o.AcceptLanguage != "" {
		h["Accept-Language"] = o.AcceptLanguage
	}

	return h
}

// UserFactorsService manages the authentication factors of users.
type UserFactorsService struct {
	client *client.Client
}

// List returns the first page of factors enrolled for the user.
func (s *UserFactorsService) List(ctx context.Context, userID string) ([]UserFactor, error) {
	return listFactors.One(ctx, s.client, client.Call{PathParams: []string{userID}})
}

// ListAll returns every factor enrolled for the user.
func (s *UserFactorsService) ListAll(ctx context.Context, userID string) ([]UserFactor, error) {
	return listFactors.All(ctx, s.client, client.Call{PathParams: []string{userID}})
}

// Enroll enrolls the user with a supported factor. opts may be nil.
func (s *UserFactorsService) Enroll(ctx context.Context, userID string, opts *EnrollFactorOptions, factor *UserFactor) (*UserFactor, error) {
	return enrollFactor.Do(ctx, s.client, client.Call{
		PathParams: []string{userID},
		Query:      opts,
		Body:       factor,
	})
}

// ListSupported returns the first page of factors the user can enroll.
func (s *UserFactorsService) ListSupported(ctx context.Context, userID string) ([]UserFactor, error) {
	return listSupportedFactors.One(ctx, s.client, client.Call{PathParams: []string{userID}})
}

func (s *UserFactorsService) ListAllSupported(ctx context.Context, userID string) ([]UserFactor, error) {
	return listSupportedFactors.All(ctx, s.client, client.Call{PathParams: []string{userID}})
}

// ListSecurityQuestions returns the questions available to the user's
// question factor.
func (s *UserFactorsService) ListSecurityQuestions(ctx context.Context, userID string) ([]SecurityQuestion, error) {
	return listSecurityQuestions.One(ctx, s.client, client.Call{PathParams: []string{userID}})
}

func (s *UserFactorsService) ListAllSecurityQuestions(ctx context.Context, userID string) ([]SecurityQuestion, error) {
	return listSecurityQuestions.All(ctx, s.client, client.Call{PathParams: []string{userID}})
}

func (s *UserFactorsService) Get(ctx context.Context, userID, factorID string) (*UserFactor, error) {
	return getFactor.Do(ctx, s.client, client.Call{PathParams: []string{userID, factorID}})
}

// Delete unenrolls the factor, allowing the user to enroll a new one.
func (s *UserFactorsService) Delete(ctx context.Context, userID, factorID string) error {
	_, err := deleteFactor.Do(ctx, s.client, client.Call{PathParams: []string{userID, factorID}})
	return err
}

// Activate completes enrollment of factors that require it, such as sms and
// token:software:totp.
func (s *UserFactorsService) Activate(ctx context.Context, userID, factorID string, req *ActivateFactorRequest) (*UserFactor, error) {
	return activateFactor.Do(ctx, s.client, client.Call{
		PathParams: []string{userID, factorID},
		Body:       req,
	})
}

// GetTransactionStatus polls a verification transaction, typically a push
// challenge waiting for the user.
func (s *UserFactorsService) GetTransactionStatus(ctx context.Context, userID, factorID, transactionID string) (*VerifyUserFactorResponse, error) {
	return getFactorTransactionStatus.Do(ctx, s.client, client.Call{
		PathParams: []string{userID, factorID, transactionID},
	})
}

// Verify verifies a factor, for example the OTP of a token factor. opts may
// be nil.
func (s *UserFactorsService) Verify(ctx context.Context, userID, factorID string, opts *VerifyFactorOptions, req *VerifyFactorRequest) (*VerifyUserFactorResponse, error) {
	return verifyFactor.Do(ctx, s.client, client.Call{
		PathParams: []string{userID, factorID},
		Query:      opts,
		Body:       req,
		Headers:    opts.headers(),
	})
}
