package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/settlement"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/shopspring/decimal"
)

// store is an in-memory stand-in for the tables a settlement touches.
type store struct {
	workers     map[string]worker.Worker
	logs        map[string][]worklog.WorkLog
	linked      map[string]string
	settlements []settlement.WorkerSettlement
	seq         int

	// staleReads makes the unsettled query ignore existing links, as a
	// concurrent transaction that read before another committed would.
	staleReads  bool
	lockedReads []bool
}

func newStore() *store {
	return &store{
		workers: map[string]worker.Worker{},
		logs:    map[string][]worklog.WorkLog{},
		linked:  map[string]string{},
	}
}

type fakeTransactor struct {
	st         *store
	committed  int
	rolledBack int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	linked := make(map[string]string, len(f.st.linked))
	for k, v := range f.st.linked {
		linked[k] = v
	}
	settled := len(f.st.settlements)

	if err := fn(ctx); err != nil {
		f.st.linked = linked
		f.st.settlements = f.st.settlements[:settled]
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

type fakeWorkerRepository struct{ st *store }

func (f *fakeWorkerRepository) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.st.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepository) GetActiveByIDForUpdate(ctx context.Context, id string) (worker.Worker, error) {
	w, err := f.GetByID(ctx, id)
	if err != nil || !w.IsActive() {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepository) ListActive(context.Context, worker.TypeFilter) ([]worker.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerRepository) List(context.Context, worker.ListWorkersFilter) ([]worker.Worker, error) {
	return nil, nil
}

type fakeWorkLogRepository struct{ st *store }

func (f *fakeWorkLogRepository) Create(_ context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	return log, nil
}

func (f *fakeWorkLogRepository) ListByWorkerBetween(context.Context, string, time.Time, time.Time) ([]worklog.WorkLog, error) {
	return nil, nil
}

func (f *fakeWorkLogRepository) ListUnsettledByWorker(_ context.Context, workerID string, forUpdate bool) ([]worklog.WorkLog, error) {
	f.st.lockedReads = append(f.st.lockedReads, forUpdate)

	var out []worklog.WorkLog
	for _, l := range f.st.logs[workerID] {
		if _, ok := f.st.linked[l.ID]; ok && !f.st.staleReads {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

type fakeSettlementRepository struct {
	st       *store
	createFn func(ctx context.Context, s settlement.WorkerSettlement) (settlement.WorkerSettlement, error)
}

func (f *fakeSettlementRepository) Create(ctx context.Context, s settlement.WorkerSettlement) (settlement.WorkerSettlement, error) {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	f.st.seq++
	s.ID = fmt.Sprintf("set-%d", f.st.seq)
	s.CreatedAt = time.Date(2025, 10, 16, 2, 0, 0, 0, time.UTC)
	f.st.settlements = append(f.st.settlements, s)
	return s, nil
}

func (f *fakeSettlementRepository) LinkWorkLog(_ context.Context, link settlement.SettlementWorkLog) (settlement.SettlementWorkLog, error) {
	if _, ok := f.st.linked[link.WorkLogID]; ok {
		return settlement.SettlementWorkLog{}, worklog.ErrWorkLogAlreadySettled
	}
	f.st.linked[link.WorkLogID] = link.SettlementID
	link.ID = "link-" + link.WorkLogID
	return link, nil
}

func (f *fakeSettlementRepository) GetByID(_ context.Context, id string) (settlement.WorkerSettlement, error) {
	for _, s := range f.st.settlements {
		if s.ID == id {
			return s, nil
		}
	}
	return settlement.WorkerSettlement{}, settlement.ErrSettlementNotFound
}

func (f *fakeSettlementRepository) ListLinkedLogs(_ context.Context, settlementID string) ([]settlement.SettlementWorkLog, error) {
	var out []settlement.SettlementWorkLog
	for _, logs := range f.st.logs {
		for _, l := range logs {
			if f.st.linked[l.ID] == settlementID {
				out = append(out, settlement.SettlementWorkLog{
					SettlementID: settlementID, WorkLogID: l.ID, LogDate: l.LogDate, Amount: l.Amount(),
				})
			}
		}
	}
	return out, nil
}

func (f *fakeSettlementRepository) List(_ context.Context, filter settlement.ListSettlementsFilter) ([]settlement.WorkerSettlement, error) {
	var out []settlement.WorkerSettlement
	for _, s := range f.st.settlements {
		if filter.WorkerID != nil && s.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.Status != nil && string(s.PaymentStatus) != *filter.Status {
			continue
		}
		out = append(out, s)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

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
	return nil, nil
}

func (f *fixedBracketRepository) ListForeign(context.Context) ([]statutory.ForeignBracket, error) {
	return nil, nil
}

func (f *fixedBracketRepository) InsertSchedulesIfEmpty(context.Context, []statutory.LocalBracket, []statutory.ForeignBracket) (bool, error) {
	return false, nil
}
