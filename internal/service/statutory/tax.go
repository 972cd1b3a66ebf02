package statutory

import (
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

const (
	PCBMethodSimplified  = "simplified"
	PCBMethodProgressive = "progressive"
)

// NewTaxPolicy returns the PCB policy registered under method.
func NewTaxPolicy(method string) (statutory.TaxPolicy, error) {
	switch method {
	case "", PCBMethodSimplified:
		return SimplifiedTax{}, nil
	case PCBMethodProgressive:
		return ProgressiveTax{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", statutory.ErrUnknownTaxPolicy, method)
	}
}

// ========== SIMPLIFIED ==========

var (
	simplifiedThreshold = decimal.NewFromInt(5000)
	simplifiedRate      = decimal.RequireFromString("0.08")
)

// SimplifiedTax withholds 8% of gross pay above RM5,000.
type SimplifiedTax struct{}

func (SimplifiedTax) Name() string { return PCBMethodSimplified }

func (SimplifiedTax) MonthlyTax(_ statutory.Profile, grossPay decimal.Decimal) decimal.Decimal {
	if !grossPay.GreaterThan(simplifiedThreshold) {
		return decimal.Zero
	}
	return grossPay.Sub(simplifiedThreshold).Mul(simplifiedRate).Round(2)
}

// ========== PROGRESSIVE ==========

var (
	twelve           = decimal.NewFromInt(12)
	personalRelief   = decimal.NewFromInt(9000).Div(twelve)
	spouseRelief     = decimal.NewFromInt(4000).Div(twelve)
	childRelief      = decimal.NewFromInt(2000).Div(twelve)
	epfMonthlyRelief = decimal.NewFromInt(250)
)

type taxBand struct {
	limit      decimal.Decimal // zero limit marks the open-ended top band
	rate       decimal.Decimal
	cumulative decimal.Decimal
}

func band(limit int64, rate string, cumulative int64) taxBand {
	return taxBand{
		limit:      decimal.NewFromInt(limit),
		rate:       decimal.RequireFromString(rate),
		cumulative: decimal.NewFromInt(cumulative),
	}
}

// Resident individual rates on annual chargeable income.
var residentBands = []taxBand{
	band(5000, "0", 0),
	band(20000, "0.01", 0),
	band(35000, "0.03", 150),
	band(50000, "0.08", 600),
	band(70000, "0.14", 1800),
	band(100000, "0.21", 4600),
	band(250000, "0.24", 10900),
	band(400000, "0.245", 46900),
	band(600000, "0.25", 83650),
	band(1000000, "0.26", 133650),
	band(2000000, "0.28", 237650),
	band(0, "0.30", 517650),
}

// AnnualTax applies the resident progressive table to annual chargeable income.
func AnnualTax(chargeable decimal.Decimal) decimal.Decimal {
	if !chargeable.IsPositive() {
		return decimal.Zero
	}

	previous := decimal.Zero
	for _, b := range residentBands {
		if b.limit.IsZero() || chargeable.LessThanOrEqual(b.limit) {
			return b.cumulative.Add(chargeable.Sub(previous).Mul(b.rate)).Round(2)
		}
		previous = b.limit
	}
	return decimal.Zero
}

// ProgressiveTax annualises monthly chargeable income after reliefs, applies
// the resident table and offsets zakat.
type ProgressiveTax struct{}

func (ProgressiveTax) Name() string { return PCBMethodProgressive }

func (ProgressiveTax) MonthlyTax(profile statutory.Profile, grossPay decimal.Decimal) decimal.Decimal {
	relief := personalRelief
	if profile.MaritalStatus == worker.MaritalStatusMarried && !profile.SpouseWorking {
		relief = relief.Add(spouseRelief)
	}
	if profile.ChildrenCount > 0 {
		relief = relief.Add(childRelief.Mul(decimal.NewFromInt(int64(profile.ChildrenCount))))
	}

	monthly := grossPay.Sub(relief).Sub(epfMonthlyRelief)
	if monthly.IsNegative() {
		monthly = decimal.Zero
	}

	pcb := AnnualTax(monthly.Mul(twelve)).Div(twelve).Sub(profile.ZakatMonthly)
	if pcb.IsNegative() {
		return decimal.Zero
	}
	return pcb.Round(2)
}
