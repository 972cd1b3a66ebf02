package statutory

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

var (
	epfEmployeeRate       = decimal.RequireFromString("0.11")
	epfEmployerRate       = decimal.RequireFromString("0.13")
	epfEmployerSeniorRate = decimal.RequireFromString("0.04")
)

const epfSeniorAge = 60

type calculator struct {
	brackets statutory.BracketRepository
	tax      statutory.TaxPolicy
}

func NewDeductionCalculator(brackets statutory.BracketRepository, tax statutory.TaxPolicy) statutory.DeductionCalculator {
	return &calculator{brackets: brackets, tax: tax}
}

// Compute never fails on a missing or unreadable bracket; those contributions
// fall back to the top bracket or zero and a warning is logged.
func (c *calculator) Compute(ctx context.Context, profile statutory.Profile, grossPay decimal.Decimal) (statutory.Breakdown, error) {
	if grossPay.IsNegative() {
		return statutory.Breakdown{}, statutory.ErrInvalidGrossPay
	}

	b := statutory.ZeroBreakdown()

	switch profile.Type {
	case worker.WorkerTypeLocal:
		b.EPFEmployee = grossPay.Mul(epfEmployeeRate).Round(2)
		employerRate := epfEmployerRate
		if profile.Age >= epfSeniorAge {
			employerRate = epfEmployerSeniorRate
		}
		b.EPFEmployer = grossPay.Mul(employerRate).Round(2)

		bracket, ok := c.localBracket(ctx, grossPay)
		if ok {
			b.SOCSOEmployee = bracket.SOCSOEmployee
			b.SOCSOEmployer = bracket.SOCSOEmployer
			b.EISEmployee = bracket.EISEmployee
			b.EISEmployer = bracket.EISEmployer
		}

		b.PCB = c.tax.MonthlyTax(profile, grossPay)

	case worker.WorkerTypeForeign:
		bracket, ok := c.foreignBracket(ctx, grossPay)
		if ok {
			b.SOCSOEmployer = bracket.EmployerContribution
		}

	default:
		return statutory.Breakdown{}, worker.ErrInvalidWorkerType
	}

	return b, nil
}

func (c *calculator) localBracket(ctx context.Context, grossPay decimal.Decimal) (statutory.LocalBracket, bool) {
	bracket, err := c.brackets.FindLocal(ctx, grossPay)
	if err == nil {
		return bracket, true
	}
	if !errors.Is(err, statutory.ErrBracketNotFound) {
		slog.Warn("SOCSO/EIS lookup failed, contributions set to zero", "gross_pay", grossPay.StringFixed(2), "error", err)
		return statutory.LocalBracket{}, false
	}

	bracket, err = c.brackets.TopLocal(ctx)
	if err != nil {
		slog.Warn("SOCSO/EIS schedule unavailable, contributions set to zero", "gross_pay", grossPay.StringFixed(2), "error", err)
		return statutory.LocalBracket{}, false
	}

	slog.Warn("SOCSO/EIS: using fallback max bracket",
		"gross_pay", grossPay.StringFixed(2),
		"salary_floor", bracket.SalaryFloor.StringFixed(2),
		"salary_ceiling", bracket.SalaryCeiling.StringFixed(2),
	)
	return bracket, true
}

func (c *calculator) foreignBracket(ctx context.Context, grossPay decimal.Decimal) (statutory.ForeignBracket, bool) {
	bracket, err := c.brackets.FindForeign(ctx, grossPay)
	if err == nil {
		return bracket, true
	}
	if !errors.Is(err, statutory.ErrBracketNotFound) {
		slog.Warn("Foreign SOCSO lookup failed, contribution set to zero", "gross_pay", grossPay.StringFixed(2), "error", err)
		return statutory.ForeignBracket{}, false
	}

	bracket, err = c.brackets.TopForeign(ctx)
	if err != nil {
		slog.Warn("Foreign SOCSO schedule unavailable, contribution set to zero", "gross_pay", grossPay.StringFixed(2), "error", err)
		return statutory.ForeignBracket{}, false
	}

	slog.Warn("Foreign SOCSO: using fallback max bracket",
		"gross_pay", grossPay.StringFixed(2),
		"salary_floor", bracket.SalaryFloor.StringFixed(2),
		"salary_ceiling", bracket.SalaryCeiling.StringFixed(2),
	)
	return bracket, true
}
