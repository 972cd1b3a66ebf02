package worklog

import "errors"

var (
	ErrNoUnsettledLogs       = errors.New("no unsettled work logs")
	ErrFutureLogDate         = errors.New("work log date cannot be later than current date")
	ErrWorkLogAlreadySettled = errors.New("work log already settled")
)
