package report

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MANAGEMENT REPORT
// ========================================

type ManagementReportRequest struct {
	Month      int    `json:"month" validate:"min=1,max=12"`
	Year       int    `json:"year" validate:"min=2000,max=2100"`
	WorkerType string `json:"worker_type" validate:"omitempty,oneof=All Local Foreign"`
}

func (r *ManagementReportRequest) Validate() error {
	return validator.Struct(r)
}

type ManagementReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	WorkerType  string `json:"worker_type"`
	GeneratedAt string `json:"generated_at"`

	Payroll     PayrollTotals    `json:"payroll"`
	Settlements SettlementTotals `json:"settlements"`
	Rows        []PayslipRow     `json:"rows"`
}

// PayrollTotals sums every payslip of every run in the period.
type PayrollTotals struct {
	Runs               int             `json:"runs"`
	Payslips           int             `json:"payslips"`
	TotalTons          decimal.Decimal `json:"total_tons"`
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

// SettlementTotals sums settlements dated in the period, cancelled ones excluded.
type SettlementTotals struct {
	Count           int             `json:"count"`
	TotalTons       decimal.Decimal `json:"total_tons"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

type PayslipRow struct {
	RunID      string `json:"run_id"`
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	WorkerType string `json:"worker_type"`

	TotalTons decimal.Decimal `json:"total_tons"`
	GrossPay  decimal.Decimal `json:"gross_pay"`

	// Deductions
	EPFEmployee   decimal.Decimal `json:"epf_employee"`
	EPFEmployer   decimal.Decimal `json:"epf_employer"`
	SOCSOEmployee decimal.Decimal `json:"socso_employee"`
	SOCSOEmployer decimal.Decimal `json:"socso_employer"`
	EISEmployee   decimal.Decimal `json:"eis_employee"`
	EISEmployer   decimal.Decimal `json:"eis_employer"`
	PCB           decimal.Decimal `json:"pcb_mtd"`

	// Final
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}
