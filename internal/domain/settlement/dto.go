package settlement

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSettlementRequest struct {
	WorkerID       string  `json:"worker_id" validate:"required"`
	SettlementDate *string `json:"settlement_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod  *string `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateSettlementRequest) Validate() error {
	return validator.Struct(r)
}

type ListSettlementsFilter struct {
	WorkerID *string `json:"worker_id,omitempty"`
	Status   *string `json:"status,omitempty"`
	Limit    int     `json:"limit"`
}

func (f *ListSettlementsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.WorkerID != nil && !validator.IsUUID(*f.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "must be a valid UUID"})
	}
	if f.Status != nil && !PaymentStatus(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'pending', 'paid' or 'cancelled'"})
	}
	if f.Limit < 0 || f.Limit > 500 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be between 1 and 500"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementWorkLogResponse struct {
	WorkLogID    string           `json:"work_log_id"`
	LogDate      string           `json:"log_date"`
	CustomerName *string          `json:"customer_name,omitempty"`
	Tons         *decimal.Decimal `json:"tons,omitempty"`
	RatePerTon   *decimal.Decimal `json:"rate_per_ton,omitempty"`
	Amount       decimal.Decimal  `json:"amount"`
}

type SettlementResponse struct {
	ID             string               `json:"id"`
	Worker         worker.WorkerSummary `json:"worker"`
	SettlementDate string               `json:"settlement_date"`
	FromDate       string               `json:"from_date"`
	ToDate         string               `json:"to_date"`
	TotalTons      decimal.Decimal      `json:"total_tons"`
	GrossPay       decimal.Decimal      `json:"gross_pay"`
	statutory.DeductionsResponse
	NetPay        decimal.Decimal             `json:"net_pay"`
	PaymentStatus string                      `json:"payment_status"`
	PaymentMethod *string                     `json:"payment_method,omitempty"`
	Notes         *string                     `json:"notes,omitempty"`
	WorkLogsCount int                         `json:"work_logs_count"`
	WorkLogs      []SettlementWorkLogResponse `json:"work_logs,omitempty"`
	CreatedAt     string                      `json:"created_at"`
	PaidAt        *string                     `json:"paid_at,omitempty"`
}
