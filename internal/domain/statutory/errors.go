package statutory

import "errors"

var (
	ErrBracketNotFound  = errors.New("no matching contribution bracket")
	ErrInvalidGrossPay  = errors.New("gross pay cannot be negative")
	ErrInvalidSchedule  = errors.New("invalid contribution schedule")
	ErrUnknownTaxPolicy = errors.New("unknown PCB method")
)
