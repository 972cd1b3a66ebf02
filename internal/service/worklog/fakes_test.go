package worklog

import (
	"context"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
)

type fakeWorkLogRepository struct {
	createFn                func(ctx context.Context, log worklog.WorkLog) (worklog.WorkLog, error)
	listByWorkerBetweenFn   func(ctx context.Context, workerID string, from, to time.Time) ([]worklog.WorkLog, error)
	listUnsettledByWorkerFn func(ctx context.Context, workerID string, forUpdate bool) ([]worklog.WorkLog, error)
}

func (f *fakeWorkLogRepository) Create(ctx context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	if f.createFn != nil {
		return f.createFn(ctx, log)
	}
	return log, nil
}

func (f *fakeWorkLogRepository) ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]worklog.WorkLog, error) {
	if f.listByWorkerBetweenFn != nil {
		return f.listByWorkerBetweenFn(ctx, workerID, from, to)
	}
	return nil, nil
}

func (f *fakeWorkLogRepository) ListUnsettledByWorker(ctx context.Context, workerID string, forUpdate bool) ([]worklog.WorkLog, error) {
	if f.listUnsettledByWorkerFn != nil {
		return f.listUnsettledByWorkerFn(ctx, workerID, forUpdate)
	}
	return nil, nil
}

type fakeWorkerRepository struct {
	getByIDFn func(ctx context.Context, id string) (worker.Worker, error)
}

func (f *fakeWorkerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepository) GetActiveByIDForUpdate(ctx context.Context, id string) (worker.Worker, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeWorkerRepository) ListActive(context.Context, worker.TypeFilter) ([]worker.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerRepository) List(context.Context, worker.ListWorkersFilter) ([]worker.Worker, error) {
	return nil, nil
}

type fakeCustomerRepository struct {
	getByIDFn func(ctx context.Context, id string) (worker.Customer, error)
}

func (f *fakeCustomerRepository) GetByID(ctx context.Context, id string) (worker.Customer, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return worker.Customer{}, worker.ErrCustomerNotFound
}
