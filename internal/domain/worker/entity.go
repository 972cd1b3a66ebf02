package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerType enum
type WorkerType string

const (
	WorkerTypeLocal   WorkerType = "Local"
	WorkerTypeForeign WorkerType = "Foreign"
)

func (t WorkerType) IsValid() bool {
	return t == WorkerTypeLocal || t == WorkerTypeForeign
}

// WorkerStatus enum
type WorkerStatus string

const (
	WorkerStatusActive   WorkerStatus = "Active"
	WorkerStatusInactive WorkerStatus = "Inactive"
)

const MaritalStatusMarried = "Married"

type Worker struct {
	ID            string
	Name          string
	Type          WorkerType
	Status        WorkerStatus
	Age           int
	MaritalStatus string
	ChildrenCount int
	SpouseWorking bool
	ZakatMonthly  decimal.Decimal
	EPFNo         *string
	PermitNo      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (w Worker) IsActive() bool {
	return w.Status == WorkerStatusActive
}

// TypeFilter selects workers for a batch; the zero value means all types.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "All"
	TypeFilterLocal   TypeFilter = "Local"
	TypeFilterForeign TypeFilter = "Foreign"
)

func (f TypeFilter) IsValid() bool {
	switch f {
	case TypeFilterAll, TypeFilterLocal, TypeFilterForeign:
		return true
	}
	return false
}

// WorkerType returns the concrete type the filter narrows to, or nil for All.
func (f TypeFilter) WorkerType() *WorkerType {
	if f == "" || f == TypeFilterAll {
		return nil
	}
	t := WorkerType(f)
	return &t
}
