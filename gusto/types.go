package gusto

// Garnishment is a deduction from an employee's pay, such as court-ordered
// child support or an employer loan repayment.
type Garnishment struct {
	ID string `json:"id" validate:"required"`
	// Version changes on every update and is required to update the record.
	Version    string `json:"version,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Active     bool   `json:"active"`
	// Amount is a fixed amount, or a percentage when DeductAsPercentage is set.
	Amount       string `json:"amount"`
	Description  string `json:"description,omitempty"`
	CourtOrdered bool   `json:"court_ordered"`
	// Times is how many times the garnishment is taken; nil when recurring.
	Times              *int64  `json:"times"`
	Recurring          bool    `json:"recurring"`
	AnnualMaximum      *string `json:"annual_maximum"`
	PayPeriodMaximum   *string `json:"pay_period_maximum"`
	DeductAsPercentage bool    `json:"deduct_as_percentage"`
}

type CreateGarnishmentRequest struct {
	Active             *bool   `json:"active,omitempty"`
	Amount             string  `json:"amount"`
	Description        string  `json:"description"`
	CourtOrdered       bool    `json:"court_ordered"`
	Times              *int64  `json:"times,omitempty"`
	Recurring          *bool   `json:"recurring,omitempty"`
	AnnualMaximum      *string `json:"annual_maximum,omitempty"`
	PayPeriodMaximum   *string `json:"pay_period_maximum,omitempty"`
	DeductAsPercentage *bool   `json:"deduct_as_percentage,omitempty"`
}

type UpdateGarnishmentRequest struct {
	Version            string  `json:"version"`
	Active             *bool   `json:"active,omitempty"`
	Amount             *string `json:"amount,omitempty"`
	Description        *string `json:"description,omitempty"`
	CourtOrdered       *bool   `json:"court_ordered,omitempty"`
	Times              *int64  `json:"times,omitempty"`
	Recurring          *bool   `json:"recurring,omitempty"`
	AnnualMaximum      *string `json:"annual_maximum,omitempty"`
	PayPeriodMaximum   *string `json:"pay_period_maximum,omitempty"`
	DeductAsPercentage *bool   `json:"deduct_as_percentage,omitempty"`
}
