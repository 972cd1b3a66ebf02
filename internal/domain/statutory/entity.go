package statutory

import (
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// LocalBracket is one row of the SOCSO + EIS schedule for Local workers.
type LocalBracket struct {
	ID            int
	SalaryFloor   decimal.Decimal
	SalaryCeiling decimal.Decimal
	SOCSOEmployee decimal.Decimal
	SOCSOEmployer decimal.Decimal
	EISEmployee   decimal.Decimal
	EISEmployer   decimal.Decimal
}

// ForeignBracket is one row of the employer-only SOCSO schedule for Foreign workers.
type ForeignBracket struct {
	ID                   int
	SalaryFloor          decimal.Decimal
	SalaryCeiling        decimal.Decimal
	EmployerContribution decimal.Decimal
}

// Profile is the slice of a worker the deduction rules depend on.
type Profile struct {
	Type          worker.WorkerType
	Age           int
	MaritalStatus string
	ChildrenCount int
	SpouseWorking bool
	ZakatMonthly  decimal.Decimal
}

func ProfileOf(w worker.Worker) Profile {
	return Profile{
		Type:          w.Type,
		Age:           w.Age,
		MaritalStatus: w.MaritalStatus,
		ChildrenCount: w.ChildrenCount,
		SpouseWorking: w.SpouseWorking,
		ZakatMonthly:  w.ZakatMonthly,
	}
}

// Breakdown holds every statutory amount for one gross pay figure.
type Breakdown struct {
	EPFEmployee   decimal.Decimal
	EPFEmployer   decimal.Decimal
	SOCSOEmployee decimal.Decimal
	SOCSOEmployer decimal.Decimal
	EISEmployee   decimal.Decimal
	EISEmployer   decimal.Decimal
	PCB           decimal.Decimal
}

func ZeroBreakdown() Breakdown {
	return Breakdown{
		EPFEmployee:   decimal.Zero,
		EPFEmployer:   decimal.Zero,
		SOCSOEmployee: decimal.Zero,
		SOCSOEmployer: decimal.Zero,
		EISEmployee:   decimal.Zero,
		EISEmployer:   decimal.Zero,
		PCB:           decimal.Zero,
	}
}

// TotalDeductions is what comes out of the worker's pay. Employer shares are excluded.
func (b Breakdown) TotalDeductions() decimal.Decimal {
	return b.EPFEmployee.Add(b.SOCSOEmployee).Add(b.EISEmployee).Add(b.PCB)
}

func (b Breakdown) NetPay(grossPay decimal.Decimal) decimal.Decimal {
	return grossPay.Sub(b.TotalDeductions())
}

func (b Breakdown) ToResponse() DeductionsResponse {
	return DeductionsResponse{
		EPFEmployee:     b.EPFEmployee,
		EPFEmployer:     b.EPFEmployer,
		SOCSOEmployee:   b.SOCSOEmployee,
		SOCSOEmployer:   b.SOCSOEmployer,
		EISEmployee:     b.EISEmployee,
		EISEmployer:     b.EISEmployer,
		PCBMTD:          b.PCB,
		TotalDeductions: b.TotalDeductions(),
	}
}
