package statutory

import (
	"context"

	"github.com/shopspring/decimal"
)

// DeductionCalculator derives every statutory amount for one worker and gross pay.
type DeductionCalculator interface {
	Compute(ctx context.Context, profile Profile, grossPay decimal.Decimal) (Breakdown, error)
}

// TaxPolicy computes the monthly PCB withholding for a Local worker.
type TaxPolicy interface {
	Name() string
	MonthlyTax(profile Profile, grossPay decimal.Decimal) decimal.Decimal
}

type StatutoryService interface {
	ListBrackets(ctx context.Context) (BracketScheduleResponse, error)
}
