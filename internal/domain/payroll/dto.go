package payroll

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	Month      int    `json:"month" validate:"min=1,max=12"`
	Year       int    `json:"year" validate:"min=2000,max=2100"`
	WorkerType string `json:"worker_type" validate:"required,oneof=All Local Foreign"`
}

func (r *RunPayrollRequest) Validate() error {
	return validator.Struct(r)
}

type RunSummaryResponse struct {
	TotalWorkers       int             `json:"total_workers"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay"`
	TotalEPFEmployee   decimal.Decimal `json:"total_epf_employee"`
	TotalEPFEmployer   decimal.Decimal `json:"total_epf_employer"`
	TotalSOCSOEmployee decimal.Decimal `json:"total_socso_employee"`
	TotalSOCSOEmployer decimal.Decimal `json:"total_socso_employer"`
	TotalEISEmployee   decimal.Decimal `json:"total_eis_employee"`
	TotalEISEmployer   decimal.Decimal `json:"total_eis_employer"`
	TotalPCB           decimal.Decimal `json:"total_pcb"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
}

type PayrollRunResponse struct {
	ID         string             `json:"id"`
	Month      int                `json:"month"`
	Year       int                `json:"year"`
	WorkerType string             `json:"worker_type"`
	CreatedAt  string             `json:"created_at"`
	Summary    RunSummaryResponse `json:"summary"`
	Payslips   []PayslipResponse  `json:"payslips,omitempty"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName string          `json:"worker_name"`
	WorkerType string          `json:"worker_type"`
	TotalTons  decimal.Decimal `json:"total_tons"`
	BaseIncome decimal.Decimal `json:"base_income"`
	// Sum of Items; gross_pay = base_income + total_allowance
	TotalAllowance decimal.Decimal `json:"total_allowance"`
	GrossPay       decimal.Decimal `json:"gross_pay"`
	statutory.DeductionsResponse
	TotalDeductionNonStatutory decimal.Decimal       `json:"total_deduction_non_statutory"`
	NetPay                     decimal.Decimal       `json:"net_pay"`
	Items                      []PayslipItemResponse `json:"items"`
}

type PayslipItemResponse struct {
	ItemType        string          `json:"item_type"`
	ItemName        string          `json:"item_name"`
	ItemDescription *string         `json:"item_description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
}

// ========== ALLOWANCE DTOs ==========

type CreateAllowanceRequest struct {
	WorkerID      string          `json:"worker_id" validate:"required"`
	Month         int             `json:"month" validate:"min=1,max=12"`
	Year          int             `json:"year" validate:"min=2000,max=2100"`
	AllowanceType string          `json:"allowance_type" validate:"required,max=50"`
	Description   *string         `json:"description,omitempty" validate:"omitempty,max=255"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r *CreateAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		tagErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, tagErrs...)
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	} else if r.Amount.Exponent() < -2 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must have at most 2 decimal places"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AllowanceFilter selects one month's allowances, optionally for one worker.
type AllowanceFilter struct {
	WorkerID string `json:"worker_id,omitempty"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

func (f *AllowanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if f.WorkerID != "" && !validator.IsUUID(f.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllowanceResponse struct {
	ID            string          `json:"id"`
	WorkerID      string          `json:"worker_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	AllowanceType string          `json:"allowance_type"`
	Description   *string         `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"created_at"`
}

// ========== LISTING ==========

type RunFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
}

func (f *RunFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRunsResponse struct {
	Data       []PayrollRunResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
