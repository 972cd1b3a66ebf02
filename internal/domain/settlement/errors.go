package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrFutureSettlement   = errors.New("settlement date cannot be in the future")
)
