package worklog

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkLogRequest struct {
	LogDate    string           `json:"log_date" validate:"required,datetime=2006-01-02"`
	WorkerID   string           `json:"worker_id" validate:"required"`
	CustomerID string           `json:"customer_id" validate:"required"`
	Tons       decimal.Decimal  `json:"tons"`
	RatePerTon *decimal.Decimal `json:"rate_per_ton,omitempty"`
}

func (r *CreateWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		tagErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, tagErrs...)
	}
	if r.Tons.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tons", Message: "must be non-negative"})
	}
	if r.RatePerTon != nil && r.RatePerTon.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_ton", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkLogResponse struct {
	ID           string          `json:"id"`
	LogDate      string          `json:"log_date"`
	WorkerID     string          `json:"worker_id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName *string         `json:"customer_name,omitempty"`
	Tons         decimal.Decimal `json:"tons"`
	RatePerTon   decimal.Decimal `json:"rate_per_ton"`
	Amount       decimal.Decimal `json:"amount"`
}

type UnsettledSummary struct {
	Count       int             `json:"count"`
	TotalTons   decimal.Decimal `json:"total_tons"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	FromDate    *string         `json:"from_date"`
	ToDate      *string         `json:"to_date"`
}

type UnsettledLogsResponse struct {
	Worker  worker.WorkerSummary `json:"worker"`
	Logs    []WorkLogResponse    `json:"logs"`
	Summary UnsettledSummary     `json:"summary"`
}
