package worker

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ListWorkersFilter struct {
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

func (f *ListWorkersFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Type != "" && !TypeFilter(f.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'All', 'Local' or 'Foreign'"})
	}
	if f.Status != "" && f.Status != string(WorkerStatusActive) && f.Status != string(WorkerStatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Active' or 'Inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Age           int             `json:"age"`
	MaritalStatus string          `json:"marital_status"`
	ChildrenCount int             `json:"children_count"`
	SpouseWorking bool            `json:"spouse_working"`
	ZakatMonthly  decimal.Decimal `json:"zakat_monthly"`
	EPFNo         *string         `json:"epf_no,omitempty"`
	PermitNo      *string         `json:"permit_no,omitempty"`
}

// WorkerSummary is the short form embedded in payroll and settlement responses.
type WorkerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
