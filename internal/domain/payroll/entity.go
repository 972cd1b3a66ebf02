package payroll

import (
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// PayrollRun groups the payslips produced by one batch calculation.
type PayrollRun struct {
	ID         string
	Month      int
	Year       int
	WorkerType worker.TypeFilter
	Totals     RunTotals
	CreatedAt  time.Time
}

// RunTotals are the column sums of a run's payslips.
type RunTotals struct {
	TotalWorkers    int
	GrossPay        decimal.Decimal
	EPFEmployee     decimal.Decimal
	EPFEmployer     decimal.Decimal
	SOCSOEmployee   decimal.Decimal
	SOCSOEmployer   decimal.Decimal
	EISEmployee     decimal.Decimal
	EISEmployer     decimal.Decimal
	PCB             decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

func NewRunTotals() RunTotals {
	return RunTotals{
		GrossPay:        decimal.Zero,
		EPFEmployee:     decimal.Zero,
		EPFEmployer:     decimal.Zero,
		SOCSOEmployee:   decimal.Zero,
		SOCSOEmployer:   decimal.Zero,
		EISEmployee:     decimal.Zero,
		EISEmployer:     decimal.Zero,
		PCB:             decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
	}
}

// Add folds one payslip into the totals.
func (t *RunTotals) Add(p Payslip) {
	t.TotalWorkers++
	t.GrossPay = t.GrossPay.Add(p.GrossPay)
	t.EPFEmployee = t.EPFEmployee.Add(p.Deductions.EPFEmployee)
	t.EPFEmployer = t.EPFEmployer.Add(p.Deductions.EPFEmployer)
	t.SOCSOEmployee = t.SOCSOEmployee.Add(p.Deductions.SOCSOEmployee)
	t.SOCSOEmployer = t.SOCSOEmployer.Add(p.Deductions.SOCSOEmployer)
	t.EISEmployee = t.EISEmployee.Add(p.Deductions.EISEmployee)
	t.EISEmployer = t.EISEmployer.Add(p.Deductions.EISEmployer)
	t.PCB = t.PCB.Add(p.Deductions.PCB)
	t.TotalDeductions = t.TotalDeductions.Add(p.TotalDeductions)
	t.NetPay = t.NetPay.Add(p.NetPay)
}

// Payslip is one worker's result within a run. Immutable once written.
type Payslip struct {
	ID                         string
	RunID                      string
	WorkerID                   string
	WorkerName                 string
	WorkerType                 worker.WorkerType
	TotalTons                  decimal.Decimal
	BaseIncome                 decimal.Decimal
	TotalAllowance             decimal.Decimal
	GrossPay                   decimal.Decimal
	Deductions                 statutory.Breakdown
	TotalDeductionNonStatutory decimal.Decimal
	TotalDeductions            decimal.Decimal
	NetPay                     decimal.Decimal
	CreatedAt                  time.Time
	Items                      []PayslipItem
}

// Allowance is a manual earning granted to a local worker for one month.
type Allowance struct {
	ID            string
	WorkerID      string
	Month         int
	Year          int
	AllowanceType string
	Description   *string
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// PayslipItemType enum
type PayslipItemType string

const (
	PayslipItemAllowance PayslipItemType = "ALLOWANCE"
)

// PayslipItem is an earning line on a payslip on top of base income.
type PayslipItem struct {
	ID              string
	PayslipID       string
	ItemType        PayslipItemType
	ItemName        string
	ItemDescription *string
	Amount          decimal.Decimal
}

func ItemFromAllowance(a Allowance) PayslipItem {
	return PayslipItem{
		ItemType:        PayslipItemAllowance,
		ItemName:        a.AllowanceType,
		ItemDescription: a.Description,
		Amount:          a.Amount,
	}
}

// SumItems adds up item amounts. Zero for no items.
func SumItems(items []PayslipItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
