package payroll

import "errors"

var (
	ErrPayrollRunNotFound = errors.New("payroll run not found")
	ErrFuturePeriod       = errors.New("cannot run payroll for a future period")
	ErrAllowanceNotLocal  = errors.New("allowances apply to local workers only")
)
