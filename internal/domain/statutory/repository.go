package statutory

import (
	"context"

	"github.com/shopspring/decimal"
)

// BracketRepository reads the contribution schedules. Find* return
// ErrBracketNotFound when no row covers the amount; Top* return it when the
// table is empty.
type BracketRepository interface {
	FindLocal(ctx context.Context, grossPay decimal.Decimal) (LocalBracket, error)
	TopLocal(ctx context.Context) (LocalBracket, error)
	FindForeign(ctx context.Context, grossPay decimal.Decimal) (ForeignBracket, error)
	TopForeign(ctx context.Context) (ForeignBracket, error)

	ListLocal(ctx context.Context) ([]LocalBracket, error)
	ListForeign(ctx context.Context) ([]ForeignBracket, error)
	// InsertSchedulesIfEmpty stores both schedules only when both tables are
	// empty and reports whether it did.
	InsertSchedulesIfEmpty(ctx context.Context, local []LocalBracket, foreign []ForeignBracket) (bool, error)
}
