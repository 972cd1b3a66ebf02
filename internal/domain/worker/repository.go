package worker

import "context"

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
	// GetActiveByIDForUpdate locks the worker row for the rest of the transaction.
	GetActiveByIDForUpdate(ctx context.Context, id string) (Worker, error)
	ListActive(ctx context.Context, filter TypeFilter) ([]Worker, error)
	List(ctx context.Context, filter ListWorkersFilter) ([]Worker, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (Customer, error)
}
