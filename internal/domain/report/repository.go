package report

import (
	"context"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Payslips of every run for the period
	ListPeriodPayslips(ctx context.Context, month, year int, workerType *worker.WorkerType) ([]PayslipRow, error)

	// Settlement sums for settlement_date within [from, to]
	SumSettlements(ctx context.Context, from, to time.Time, workerType *worker.WorkerType) (SettlementTotals, error)
}
