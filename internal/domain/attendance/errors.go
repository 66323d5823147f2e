package attendance

import "errors"

var (
	ErrLogNotFound     = errors.New("attendance log not found")
	ErrSummaryNotFound = errors.New("daily summary not found")
	ErrUnknownDevice   = errors.New("unknown device card number")
)
