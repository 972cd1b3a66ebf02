package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer buys the collected fruit; Rate is the default price per ton.
type Customer struct {
	ID        string
	Name      string
	Rate      decimal.Decimal
	CreatedAt time.Time
}
