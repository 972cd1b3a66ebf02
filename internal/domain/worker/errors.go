package worker

import "errors"

var (
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrWorkerInactive    = errors.New("worker is not active")
	ErrInvalidWorkerType = errors.New("invalid worker type")
	ErrCustomerNotFound  = errors.New("customer not found")
)
