package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceDeps struct {
	service      worklog.WorkLogService
	workLogRepo  *fakeWorkLogRepository
	workerRepo   *fakeWorkerRepository
	customerRepo *fakeCustomerRepository
}

// Wall clock pinned to 2025-10-16 in Kuala Lumpur.
func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	cal, err := calendar.New("Asia/Kuala_Lumpur", calendar.WithClock(func() time.Time {
		return time.Date(2025, 10, 16, 2, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)

	workLogRepo := &fakeWorkLogRepository{}
	workerRepo := &fakeWorkerRepository{
		getByIDFn: func(_ context.Context, id string) (worker.Worker, error) {
			if id != "w-1" {
				return worker.Worker{}, worker.ErrWorkerNotFound
			}
			return worker.Worker{ID: "w-1", Name: "Ahmad", Type: worker.WorkerTypeLocal, Status: worker.WorkerStatusActive}, nil
		},
	}
	customerRepo := &fakeCustomerRepository{
		getByIDFn: func(_ context.Context, id string) (worker.Customer, error) {
			return worker.Customer{ID: id, Name: "Ladang Sawit", Rate: decimal.RequireFromString("95.50")}, nil
		},
	}

	return &serviceDeps{
		service:      NewWorkLogService(workLogRepo, workerRepo, customerRepo, NewAggregator(workLogRepo), cal),
		workLogRepo:  workLogRepo,
		workerRepo:   workerRepo,
		customerRepo: customerRepo,
	}
}

// ===== CREATE WORK LOG TESTS =====

func TestCreateWorkLog_DefaultsRateFromCustomer(t *testing.T) {
	deps := setupServiceTest(t)

	var stored worklog.WorkLog
	deps.workLogRepo.createFn = func(_ context.Context, l worklog.WorkLog) (worklog.WorkLog, error) {
		stored = l
		l.ID = "log-1"
		return l, nil
	}

	resp, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "2025-10-16",
		WorkerID:   "w-1",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString("2"),
	})
	require.NoError(t, err)

	assert.Equal(t, "95.5", stored.RatePerTon.String())
	assert.Equal(t, "log-1", resp.ID)
	assert.Equal(t, "2025-10-16", resp.LogDate)
	assert.Equal(t, "191.00", resp.Amount.StringFixed(2))
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Ladang Sawit", *resp.CustomerName)
}

func TestCreateWorkLog_ExplicitRate(t *testing.T) {
	deps := setupServiceTest(t)
	rate := decimal.RequireFromString("100")

	resp, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "2025-10-01",
		WorkerID:   "w-1",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString("1.25"),
		RatePerTon: &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, "125.00", resp.Amount.StringFixed(2))
}

func TestCreateWorkLog_FutureDate(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "2025-10-17",
		WorkerID:   "w-1",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, worklog.ErrFutureLogDate)
}

func TestCreateWorkLog_Validation(t *testing.T) {
	deps := setupServiceTest(t)
	negative := decimal.RequireFromString("-1")

	_, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "16/10/2025",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString("-0.5"),
		RatePerTon: &negative,
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "log_date")
	assert.Contains(t, m, "worker_id")
	assert.Contains(t, m, "tons")
	assert.Contains(t, m, "rate_per_ton")
}

func TestCreateWorkLog_InactiveWorker(t *testing.T) {
	deps := setupServiceTest(t)
	deps.workerRepo.getByIDFn = func(_ context.Context, id string) (worker.Worker, error) {
		return worker.Worker{ID: id, Type: worker.WorkerTypeLocal, Status: worker.WorkerStatusInactive}, nil
	}

	_, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "2025-10-01",
		WorkerID:   "w-1",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, worker.ErrWorkerInactive)
}

func TestCreateWorkLog_UnknownCustomer(t *testing.T) {
	deps := setupServiceTest(t)
	deps.customerRepo.getByIDFn = nil

	_, err := deps.service.CreateWorkLog(context.Background(), worklog.CreateWorkLogRequest{
		LogDate:    "2025-10-01",
		WorkerID:   "w-1",
		CustomerID: "c-404",
		Tons:       decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, worker.ErrCustomerNotFound)
}

// ===== UNSETTLED LOGS TESTS =====

func TestGetUnsettledLogs(t *testing.T) {
	deps := setupServiceTest(t)
	name := "Ladang Sawit"
	deps.workLogRepo.listUnsettledByWorkerFn = func(_ context.Context, _ string, forUpdate bool) ([]worklog.WorkLog, error) {
		assert.False(t, forUpdate)
		a := logOn("2025-09-01", "1", "100")
		b := logOn("2025-10-02", "2", "50.25")
		a.CustomerName, b.CustomerName = &name, &name
		return []worklog.WorkLog{a, b}, nil
	}

	resp, err := deps.service.GetUnsettledLogs(context.Background(), "w-1")
	require.NoError(t, err)

	assert.Equal(t, "Ahmad", resp.Worker.Name)
	assert.Equal(t, "Local", resp.Worker.Type)
	assert.Len(t, resp.Logs, 2)
	assert.Equal(t, 2, resp.Summary.Count)
	assert.Equal(t, "200.50", resp.Summary.TotalAmount.StringFixed(2))
	assert.Equal(t, "3", resp.Summary.TotalTons.String())
	require.NotNil(t, resp.Summary.FromDate)
	assert.Equal(t, "2025-09-01", *resp.Summary.FromDate)
	assert.Equal(t, "2025-10-02", *resp.Summary.ToDate)
}

func TestGetUnsettledLogs_EmptyIsSuccess(t *testing.T) {
	deps := setupServiceTest(t)

	resp, err := deps.service.GetUnsettledLogs(context.Background(), "w-1")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Summary.Count)
	assert.NotNil(t, resp.Logs)
	assert.Empty(t, resp.Logs)
	assert.Nil(t, resp.Summary.FromDate)
	assert.True(t, resp.Summary.TotalAmount.IsZero())
}

func TestGetUnsettledLogs_UnknownWorker(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.GetUnsettledLogs(context.Background(), "w-404")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
