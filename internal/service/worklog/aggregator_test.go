package worklog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func logOn(date, tons, rate string) worklog.WorkLog {
	return worklog.WorkLog{
		ID:         "log-" + date + "-" + tons,
		LogDate:    day(date),
		WorkerID:   "w-1",
		CustomerID: "c-1",
		Tons:       decimal.RequireFromString(tons),
		RatePerTon: decimal.RequireFromString(rate),
	}
}

func TestAggregate_MonthlyUsesCalendarMonth(t *testing.T) {
	var gotFrom, gotTo time.Time
	repo := &fakeWorkLogRepository{
		listByWorkerBetweenFn: func(_ context.Context, workerID string, from, to time.Time) ([]worklog.WorkLog, error) {
			assert.Equal(t, "w-1", workerID)
			gotFrom, gotTo = from, to
			return []worklog.WorkLog{
				logOn("2024-02-03", "1.5", "100"),
				logOn("2024-02-29", "2.25", "101.10"),
			}, nil
		},
	}

	agg, err := NewAggregator(repo).Aggregate(context.Background(), "w-1", worklog.Monthly(2024, 2))
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", calendar.FormatDate(gotFrom))
	assert.Equal(t, "2024-02-29", calendar.FormatDate(gotTo))
	assert.Len(t, agg.Logs, 2)
	assert.True(t, decimal.RequireFromString("3.75").Equal(agg.TotalTons))
	// round(150 + 227.475, 2)
	assert.True(t, decimal.RequireFromString("377.48").Equal(agg.GrossPay), agg.GrossPay.String())
}

func TestAggregate_MonthlyEmptyIsZero(t *testing.T) {
	agg, err := NewAggregator(&fakeWorkLogRepository{}).Aggregate(context.Background(), "w-1", worklog.Monthly(2025, 1))
	require.NoError(t, err)

	assert.True(t, agg.IsEmpty())
	assert.True(t, agg.GrossPay.IsZero())
	assert.True(t, agg.TotalTons.IsZero())
	assert.Nil(t, agg.FromDate)
	assert.Nil(t, agg.ToDate)
}

func TestAggregate_UnsettledEmptyIsConflict(t *testing.T) {
	_, err := NewAggregator(&fakeWorkLogRepository{}).Aggregate(context.Background(), "w-1", worklog.Unsettled())
	assert.ErrorIs(t, err, worklog.ErrNoUnsettledLogs)
}

func TestAggregate_UnsettledPassesLock(t *testing.T) {
	var locked []bool
	repo := &fakeWorkLogRepository{
		listUnsettledByWorkerFn: func(_ context.Context, _ string, forUpdate bool) ([]worklog.WorkLog, error) {
			locked = append(locked, forUpdate)
			return []worklog.WorkLog{logOn("2025-01-01", "1", "1")}, nil
		},
	}
	agg := NewAggregator(repo)

	_, err := agg.Aggregate(context.Background(), "w-1", worklog.Unsettled())
	require.NoError(t, err)
	_, err = agg.Aggregate(context.Background(), "w-1", worklog.UnsettledForUpdate())
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true}, locked)
}

func TestAggregate_DateSpanAndConservation(t *testing.T) {
	logs := []worklog.WorkLog{
		logOn("2025-03-10", "0.333", "97.5"),
		logOn("2025-01-02", "4", "88.88"),
		logOn("2025-02-15", "0", "120"),
		logOn("2025-03-31", "2.005", "99.99"),
	}
	repo := &fakeWorkLogRepository{
		listUnsettledByWorkerFn: func(context.Context, string, bool) ([]worklog.WorkLog, error) {
			return logs, nil
		},
	}

	agg, err := NewAggregator(repo).Aggregate(context.Background(), "w-1", worklog.Unsettled())
	require.NoError(t, err)

	require.NotNil(t, agg.FromDate)
	require.NotNil(t, agg.ToDate)
	assert.Equal(t, "2025-01-02", calendar.FormatDate(*agg.FromDate))
	assert.Equal(t, "2025-03-31", calendar.FormatDate(*agg.ToDate))

	sum := decimal.Zero
	for _, l := range agg.Logs {
		sum = sum.Add(l.Tons.Mul(l.RatePerTon))
		assert.False(t, l.LogDate.Before(*agg.FromDate))
		assert.False(t, l.LogDate.After(*agg.ToDate))
	}
	// 32.4675 + 355.52 + 0 + 200.47995
	assert.Equal(t, "588.46745", sum.String())
	assert.True(t, sum.Round(2).Equal(agg.GrossPay), agg.GrossPay.String())
	assert.True(t, decimal.RequireFromString("6.338").Equal(agg.TotalTons))
}

func TestAggregate_RepositoryError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeWorkLogRepository{
		listByWorkerBetweenFn: func(context.Context, string, time.Time, time.Time) ([]worklog.WorkLog, error) {
			return nil, boom
		},
	}

	_, err := NewAggregator(repo).Aggregate(context.Background(), "w-1", worklog.Monthly(2025, 1))
	assert.ErrorIs(t, err, boom)
}

func TestSummarize_RoundsOnceOverExactProducts(t *testing.T) {
	// each log is 4.1625; rounding per log would give 4.16 + 4.16
	agg := worklog.Summarize([]worklog.WorkLog{
		logOn("2025-05-01", "1.25", "3.33"),
		logOn("2025-05-02", "1.25", "3.33"),
	})

	assert.Equal(t, "8.33", agg.GrossPay.StringFixed(2))
	assert.True(t, decimal.RequireFromString("8.33").Equal(agg.GrossPay))
	assert.True(t, decimal.RequireFromString("2.5").Equal(agg.TotalTons))
	assert.False(t, agg.IsEmpty())
}

func TestSummarize_EmptyHasNoDateSpan(t *testing.T) {
	agg := worklog.Summarize(nil)

	assert.True(t, agg.IsEmpty())
	assert.True(t, agg.GrossPay.IsZero())
	assert.Nil(t, agg.FromDate)
	assert.Nil(t, agg.ToDate)
}

func TestWorkLogAmount_RoundsPerLog(t *testing.T) {
	l := logOn("2025-01-01", "1.005", "10")
	assert.Equal(t, "10.05", l.Amount().StringFixed(2))
}
