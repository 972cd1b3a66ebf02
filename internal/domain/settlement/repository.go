package settlement

import "context"

type SettlementRepository interface {
	Create(ctx context.Context, s WorkerSettlement) (WorkerSettlement, error)
	// LinkWorkLog returns worklog.ErrWorkLogAlreadySettled if the log is already linked.
	LinkWorkLog(ctx context.Context, link SettlementWorkLog) (SettlementWorkLog, error)
	GetByID(ctx context.Context, id string) (WorkerSettlement, error)
	ListLinkedLogs(ctx context.Context, settlementID string) ([]SettlementWorkLog, error)
	List(ctx context.Context, filter ListSettlementsFilter) ([]WorkerSettlement, error)
}
