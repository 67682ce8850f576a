package gusto

import (
	"context"
	"net/http"

	client "github.com/peteraglen/saas-api-go-client"
)

var (
	listEmployeeGarnishments = client.ListEndpoint[Garnishment]{
		Method: http.MethodGet,
		Path:   "/v1/employees/{employee_id}/garnishments",
	}
	createGarnishment = client.Endpoint[*Garnishment]{
		Method: http.MethodPost,
		Path:   "/v1/employees/{employee_id}/garnishments",
	}
	getGarnishment = client.Endpoint[*Garnishment]{
		Method: http.MethodGet,
		Path:   "/v1/garnishments/{garnishment_id}",
	}
	updateGarnishment = client.Endpoint[*Garnishment]{
		Method: http.MethodPut,
		Path:   "/v1/garnishments/{garnishment_id}",
	}
)

// GarnishmentsService manages employee garnishments: fixed amounts or
// percentages deducted from an employee's pay, either a set number of times
// or on a recurring basis.
type GarnishmentsService struct {
	client *client.Client
}

// ListByEmployee returns the first page of an employee's garnishments.
func (s *GarnishmentsService) ListByEmployee(ctx context.Context, employeeID string) ([]Garnishment, error) {
	return listEmployeeGarnishments.One(ctx, s.client, client.Call{PathParams: []string{employeeID}})
}

// ListAllByEmployee returns every garnishment of an employee across all pages.
func (s *GarnishmentsService) ListAllByEmployee(ctx context.Context, employeeID string) ([]Garnishment, error) {
	return listEmployeeGarnishments.All(ctx, s.client, client.Call{PathParams: []string{employeeID}})
}

func (s *GarnishmentsService) Create(ctx context.Context, employeeID string, req *CreateGarnishmentRequest) (*Garnishment, error) {
	return createGarnishment.Do(ctx, s.client, client.Call{PathParams: []string{employeeID}, Body: req})
}

func (s *GarnishmentsService) Get(ctx context.Context, garnishmentID string) (*Garnishment, error) {
	return getGarnishment.Do(ctx, s.client, client.Call{PathParams: []string{garnishmentID}})
}

// Update changes a garnishment. req.Version must be the version last read;
// Gusto rejects stale versions with 409 Conflict.
func (s *GarnishmentsService) Update(ctx context.Context, garnishmentID string, req *UpdateGarnishmentRequest) (*Garnishment, error) {
	return updateGarnishment.Do(ctx, s.client, client.Call{PathParams: []string{garnishmentID}, Body: req})
}
