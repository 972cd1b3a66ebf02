package settlement

import (
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/shopspring/decimal"
)

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// WorkerSettlement is an on-demand payout covering every log linked to it.
type WorkerSettlement struct {
	ID              string
	WorkerID        string
	SettlementDate  time.Time
	FromDate        time.Time
	ToDate          time.Time
	TotalTons       decimal.Decimal
	GrossPay        decimal.Decimal
	Deductions      statutory.Breakdown
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	PaymentStatus   PaymentStatus
	PaymentMethod   *string
	Notes           *string
	CreatedAt       time.Time
	PaidAt          *time.Time

	// Joined fields
	WorkerName    *string
	WorkerType    *string
	WorkLogsCount int
}

// SettlementWorkLog links a consumed work log to its settlement.
// A work log has at most one such row.
type SettlementWorkLog struct {
	ID           string
	SettlementID string
	WorkLogID    string
	LogDate      time.Time
	Amount       decimal.Decimal

	// Joined fields
	Tons         *decimal.Decimal
	RatePerTon   *decimal.Decimal
	CustomerName *string
}
