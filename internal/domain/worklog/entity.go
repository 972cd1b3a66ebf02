package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkLog struct {
	ID         string
	LogDate    time.Time
	WorkerID   string
	CustomerID string
	Tons       decimal.Decimal
	RatePerTon decimal.Decimal
	CreatedAt  time.Time

	// Joined fields
	CustomerName *string
}

// Amount is tons × rate rounded to the sen. It is never stored on the log.
func (l WorkLog) Amount() decimal.Decimal {
	return l.Value().Round(2)
}

// Value is the unrounded tons × rate.
func (l WorkLog) Value() decimal.Decimal {
	return l.Tons.Mul(l.RatePerTon)
}

// FilterMode selects which of a worker's logs an aggregation covers.
type FilterMode int

const (
	// FilterMonthly covers every log in one calendar month, settled or not.
	FilterMonthly FilterMode = iota
	// FilterUnsettled covers every log not yet linked to a settlement.
	FilterUnsettled
)

type DateFilter struct {
	Mode  FilterMode
	Year  int
	Month int
	// Lock takes row locks on the selected logs; only meaningful inside a transaction.
	Lock bool
}

func Monthly(year, month int) DateFilter {
	return DateFilter{Mode: FilterMonthly, Year: year, Month: month}
}

func Unsettled() DateFilter {
	return DateFilter{Mode: FilterUnsettled}
}

func UnsettledForUpdate() DateFilter {
	return DateFilter{Mode: FilterUnsettled, Lock: true}
}

// Aggregation is the summed view of a set of work logs.
type Aggregation struct {
	Logs      []WorkLog
	TotalTons decimal.Decimal
	GrossPay  decimal.Decimal
	FromDate  *time.Time
	ToDate    *time.Time
}

// IsEmpty reports whether the aggregation covers no logs.
func (a Aggregation) IsEmpty() bool {
	return len(a.Logs) == 0
}

// Summarize sums tonnage and tons × rate and records the covered date span.
// Gross pay is rounded to the sen once, over the exact sum.
func Summarize(logs []WorkLog) Aggregation {
	agg := Aggregation{
		Logs:      logs,
		TotalTons: decimal.Zero,
		GrossPay:  decimal.Zero,
	}

	for i := range logs {
		l := logs[i]
		agg.TotalTons = agg.TotalTons.Add(l.Tons)
		agg.GrossPay = agg.GrossPay.Add(l.Value())

		if agg.FromDate == nil || l.LogDate.Before(*agg.FromDate) {
			d := l.LogDate
			agg.FromDate = &d
		}
		if agg.ToDate == nil || l.LogDate.After(*agg.ToDate) {
			d := l.LogDate
			agg.ToDate = &d
		}
	}
	agg.GrossPay = agg.GrossPay.Round(2)

	return agg
}
