package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/report"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepository struct {
	listPeriodPayslipsFn func(ctx context.Context, month, year int, workerType *worker.WorkerType) ([]report.PayslipRow, error)
	sumSettlementsFn     func(ctx context.Context, from, to time.Time, workerType *worker.WorkerType) (report.SettlementTotals, error)
}

func (f *fakeReportRepository) ListPeriodPayslips(ctx context.Context, month, year int, workerType *worker.WorkerType) ([]report.PayslipRow, error) {
	if f.listPeriodPayslipsFn != nil {
		return f.listPeriodPayslipsFn(ctx, month, year, workerType)
	}
	return nil, nil
}

func (f *fakeReportRepository) SumSettlements(ctx context.Context, from, to time.Time, workerType *worker.WorkerType) (report.SettlementTotals, error) {
	if f.sumSettlementsFn != nil {
		return f.sumSettlementsFn(ctx, from, to, workerType)
	}
	return report.SettlementTotals{}, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(runID, workerID, name, gross, deductions, net string) report.PayslipRow {
	return report.PayslipRow{
		RunID: runID, WorkerID: workerID, WorkerName: name, WorkerType: "Local",
		TotalTons: d("10"), GrossPay: d(gross),
		EPFEmployee: d("1"), EPFEmployer: d("2"), SOCSOEmployee: d("3"), SOCSOEmployer: d("4"),
		EISEmployee: d("5"), EISEmployer: d("6"), PCB: d("7"),
		TotalDeductions: d(deductions), NetPay: d(net),
	}
}

func setupReportService(t *testing.T, repo *fakeReportRepository) report.ReportService {
	t.Helper()
	cal, err := calendar.New("Asia/Kuala_Lumpur", calendar.WithClock(func() time.Time {
		return time.Date(2025, 10, 16, 2, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	return NewReportService(repo, cal)
}

func TestGenerateManagementReport_Totals(t *testing.T) {
	var (
		gotFrom, gotTo time.Time
		gotType        *worker.WorkerType
	)
	repo := &fakeReportRepository{
		listPeriodPayslipsFn: func(_ context.Context, month, year int, workerType *worker.WorkerType) ([]report.PayslipRow, error) {
			assert.Equal(t, 9, month)
			assert.Equal(t, 2025, year)
			return []report.PayslipRow{
				row("run-1", "w-1", "Ahmad", "6000", "769.65", "5230.35"),
				row("run-1", "w-2", "Budi", "1000", "0", "1000"),
				row("run-2", "w-1", "Ahmad", "500.50", "55.06", "445.44"),
			}, nil
		},
		sumSettlementsFn: func(_ context.Context, from, to time.Time, workerType *worker.WorkerType) (report.SettlementTotals, error) {
			gotFrom, gotTo, gotType = from, to, workerType
			return report.SettlementTotals{Count: 2, TotalGrossPay: d("300"), TotalNetPay: d("300")}, nil
		},
	}
	svc := setupReportService(t, repo)

	r, err := svc.GenerateManagementReport(context.Background(), report.ManagementReportRequest{Month: 9, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, "2025-09-01", r.PeriodStart)
	assert.Equal(t, "2025-09-30", r.PeriodEnd)
	assert.Equal(t, "All", r.WorkerType)
	assert.Equal(t, "2025-10-16T10:00:00+08:00", r.GeneratedAt)

	assert.Equal(t, 2, r.Payroll.Runs)
	assert.Equal(t, 3, r.Payroll.Payslips)
	assert.True(t, d("7500.50").Equal(r.Payroll.TotalGrossPay))
	assert.True(t, d("824.71").Equal(r.Payroll.TotalDeductions))
	assert.True(t, d("6675.79").Equal(r.Payroll.TotalNetPay))
	assert.True(t, d("21").Equal(r.Payroll.TotalPCB))
	assert.True(t, d("30").Equal(r.Payroll.TotalTons))
	assert.True(t, r.Payroll.TotalGrossPay.Sub(r.Payroll.TotalDeductions).Equal(r.Payroll.TotalNetPay))

	assert.Equal(t, 2, r.Settlements.Count)
	assert.Equal(t, "2025-09-01", calendar.FormatDate(gotFrom))
	assert.Equal(t, "2025-09-30", calendar.FormatDate(gotTo))
	assert.Nil(t, gotType)
}

func TestGenerateManagementReport_WorkerTypeFilter(t *testing.T) {
	var payslipType, settlementType *worker.WorkerType
	repo := &fakeReportRepository{
		listPeriodPayslipsFn: func(_ context.Context, _, _ int, workerType *worker.WorkerType) ([]report.PayslipRow, error) {
			payslipType = workerType
			return nil, nil
		},
		sumSettlementsFn: func(_ context.Context, _, _ time.Time, workerType *worker.WorkerType) (report.SettlementTotals, error) {
			settlementType = workerType
			return report.SettlementTotals{}, nil
		},
	}
	svc := setupReportService(t, repo)

	r, err := svc.GenerateManagementReport(context.Background(), report.ManagementReportRequest{Month: 10, Year: 2025, WorkerType: "Foreign"})
	require.NoError(t, err)

	require.NotNil(t, payslipType)
	require.NotNil(t, settlementType)
	assert.Equal(t, worker.WorkerTypeForeign, *payslipType)
	assert.Equal(t, worker.WorkerTypeForeign, *settlementType)
	assert.Equal(t, "Foreign", r.WorkerType)
	assert.NotNil(t, r.Rows)
	assert.Empty(t, r.Rows)
	assert.Equal(t, 0, r.Payroll.Runs)
	assert.True(t, r.Payroll.TotalNetPay.IsZero())
}

func TestGenerateManagementReport_Validation(t *testing.T) {
	svc := setupReportService(t, &fakeReportRepository{})

	_, err := svc.GenerateManagementReport(context.Background(), report.ManagementReportRequest{Month: 13, Year: 2025, WorkerType: "Contract"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "month")
	assert.Contains(t, m, "worker_type")
}

func TestGenerateManagementReport_RepositoryError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeReportRepository{
		sumSettlementsFn: func(context.Context, time.Time, time.Time, *worker.WorkerType) (report.SettlementTotals, error) {
			return report.SettlementTotals{}, boom
		},
	}
	svc := setupReportService(t, repo)

	_, err := svc.GenerateManagementReport(context.Background(), report.ManagementReportRequest{Month: 10, Year: 2025})
	assert.ErrorIs(t, err, boom)
}

func TestRenderManagementReportPDF(t *testing.T) {
	repo := &fakeReportRepository{
		listPeriodPayslipsFn: func(context.Context, int, int, *worker.WorkerType) ([]report.PayslipRow, error) {
			return []report.PayslipRow{row("run-1", "w-1", "Ahmad", "6000", "769.65", "5230.35")}, nil
		},
	}
	svc := setupReportService(t, repo)

	b, err := svc.RenderManagementReportPDF(context.Background(), report.ManagementReportRequest{Month: 10, Year: 2025})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}
