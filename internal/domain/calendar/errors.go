package calendar

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrCalendarInUse    = errors.New("calendar is assigned to a work group")
)
