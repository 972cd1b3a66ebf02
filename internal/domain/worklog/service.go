package worklog

import "context"

// Aggregator collects a worker's logs for a date filter and sums them.
type Aggregator interface {
	Aggregate(ctx context.Context, workerID string, filter DateFilter) (Aggregation, error)
}

type WorkLogService interface {
	CreateWorkLog(ctx context.Context, req CreateWorkLogRequest) (WorkLogResponse, error)
	GetUnsettledLogs(ctx context.Context, workerID string) (UnsettledLogsResponse, error)
}
