package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

type fakeTransactor struct {
	committed  int
	rolledBack int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

type fakePayrollRepository struct {
	createRunFn         func(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error)
	updateRunTotalsFn   func(ctx context.Context, runID string, totals payroll.RunTotals) error
	getRunByIDFn        func(ctx context.Context, id string) (payroll.PayrollRun, error)
	listRunsFn          func(ctx context.Context, filter payroll.RunFilter) ([]payroll.PayrollRun, int64, error)
	createPayslipFn     func(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error)
	listPayslipsByRunFn func(ctx context.Context, runID string) ([]payroll.Payslip, error)
	listItemsByRunFn    func(ctx context.Context, runID string) ([]payroll.PayslipItem, error)
	createAllowanceFn   func(ctx context.Context, allowance payroll.Allowance) (payroll.Allowance, error)

	// allowances backs ListAllowances; items records CreatePayslipItem calls.
	allowances []payroll.Allowance
	items      []payroll.PayslipItem
}

func (f *fakePayrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	if f.createRunFn != nil {
		return f.createRunFn(ctx, run)
	}
	run.ID = "run-1"
	run.CreatedAt = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	return run, nil
}

func (f *fakePayrollRepository) UpdateRunTotals(ctx context.Context, runID string, totals payroll.RunTotals) error {
	if f.updateRunTotalsFn != nil {
		return f.updateRunTotalsFn(ctx, runID, totals)
	}
	return nil
}

func (f *fakePayrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	if f.getRunByIDFn != nil {
		return f.getRunByIDFn(ctx, id)
	}
	return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
}

func (f *fakePayrollRepository) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.PayrollRun, int64, error) {
	if f.listRunsFn != nil {
		return f.listRunsFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakePayrollRepository) CreatePayslip(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	if f.createPayslipFn != nil {
		return f.createPayslipFn(ctx, payslip)
	}
	payslip.ID = "slip-" + payslip.WorkerID
	return payslip, nil
}

func (f *fakePayrollRepository) ListPayslipsByRun(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	if f.listPayslipsByRunFn != nil {
		return f.listPayslipsByRunFn(ctx, runID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) CreatePayslipItem(_ context.Context, item payroll.PayslipItem) (payroll.PayslipItem, error) {
	item.ID = fmt.Sprintf("item-%d", len(f.items)+1)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakePayrollRepository) ListPayslipItemsByRun(ctx context.Context, runID string) ([]payroll.PayslipItem, error) {
	if f.listItemsByRunFn != nil {
		return f.listItemsByRunFn(ctx, runID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) CreateAllowance(ctx context.Context, a payroll.Allowance) (payroll.Allowance, error) {
	if f.createAllowanceFn != nil {
		return f.createAllowanceFn(ctx, a)
	}
	a.ID = fmt.Sprintf("allowance-%d", len(f.allowances)+1)
	a.CreatedAt = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	f.allowances = append(f.allowances, a)
	return a, nil
}

func (f *fakePayrollRepository) ListAllowances(_ context.Context, filter payroll.AllowanceFilter) ([]payroll.Allowance, error) {
	var out []payroll.Allowance
	for _, a := range f.allowances {
		if a.Month != filter.Month || a.Year != filter.Year {
			continue
		}
		if filter.WorkerID != "" && a.WorkerID != filter.WorkerID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeWorkerRepository struct {
	listActiveFn func(ctx context.Context, filter worker.TypeFilter) ([]worker.Worker, error)
	getByIDFn    func(ctx context.Context, id string) (worker.Worker, error)
}

func (f *fakeWorkerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	for _, w := range testWorkers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepository) GetActiveByIDForUpdate(context.Context, string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepository) ListActive(ctx context.Context, filter worker.TypeFilter) ([]worker.Worker, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeWorkerRepository) List(context.Context, worker.ListWorkersFilter) ([]worker.Worker, error) {
	return nil, nil
}

type fakeWorkLogRepository struct {
	byWorker       map[string][]worklog.WorkLog
	unsettledCalls int
}

func (f *fakeWorkLogRepository) Create(_ context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	return log, nil
}

func (f *fakeWorkLogRepository) ListByWorkerBetween(_ context.Context, workerID string, from, to time.Time) ([]worklog.WorkLog, error) {
	var out []worklog.WorkLog
	for _, l := range f.byWorker[workerID] {
		if !l.LogDate.Before(from) && !l.LogDate.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeWorkLogRepository) ListUnsettledByWorker(context.Context, string, bool) ([]worklog.WorkLog, error) {
	f.unsettledCalls++
	return nil, nil
}

// fixedBracketRepository answers every lookup with the same rows.
type fixedBracketRepository struct {
	local   statutory.LocalBracket
	foreign statutory.ForeignBracket
}

func (f *fixedBracketRepository) FindLocal(context.Context, decimal.Decimal) (statutory.LocalBracket, error) {
	return f.local, nil
}

func (f *fixedBracketRepository) TopLocal(context.Context) (statutory.LocalBracket, error) {
	return f.local, nil
}

func (f *fixedBracketRepository) FindForeign(context.Context, decimal.Decimal) (statutory.ForeignBracket, error) {
	return f.foreign, nil
}

func (f *fixedBracketRepository) TopForeign(context.Context) (statutory.ForeignBracket, error) {
	return f.foreign, nil
}

func (f *fixedBracketRepository) ListLocal(context.Context) ([]statutory.LocalBracket, error) {
	return []statutory.LocalBracket{f.local}, nil
}

func (f *fixedBracketRepository) ListForeign(context.Context) ([]statutory.ForeignBracket, error) {
	return []statutory.ForeignBracket{f.foreign}, nil
}

func (f *fixedBracketRepository) InsertSchedulesIfEmpty(context.Context, []statutory.LocalBracket, []statutory.ForeignBracket) (bool, error) {
	return false, nil
}
