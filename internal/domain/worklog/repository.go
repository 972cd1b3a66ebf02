package worklog

import (
	"context"
	"time"
)

type WorkLogRepository interface {
	Create(ctx context.Context, log WorkLog) (WorkLog, error)
	// ListByWorkerBetween returns logs with from <= log_date <= to, ordered by log_date.
	ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]WorkLog, error)
	// ListUnsettledByWorker returns logs with no settlement link, ordered by log_date.
	ListUnsettledByWorker(ctx context.Context, workerID string, forUpdate bool) ([]WorkLog, error)
}
