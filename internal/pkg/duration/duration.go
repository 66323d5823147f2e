package duration

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// DayCount returns the inclusive number of calendar days between start and end.
// A single day range (start == end) counts as 1. Inverted ranges are rejected.
func DayCount(start, end time.Time) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return 0, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	return days, nil
}

// HourlySplit splits the elapsed time between start and end into whole hours
// and remaining minutes. Inverted ranges are rejected.
func HourlySplit(start, end time.Time) (hours, minutes int, err error) {
	if end.Before(start) {
		return 0, 0, validator.ValidationErrors{{
			Field:   "end_time",
			Message: "end_time must not be before start_time",
		}}
	}

	totalMinutes := int(end.Sub(start).Minutes())
	return totalMinutes / 60, totalMinutes % 60, nil
}

// Minutes returns the elapsed whole minutes between start and end.
func Minutes(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, validator.ValidationErrors{{
			Field:   "end_time",
			Message: "end_time must not be before start_time",
		}}
	}
	return int(end.Sub(start).Minutes()), nil
}

// FormatRange renders a date or time range as a human-readable duration,
// "N day(s)" for daily ranges and "Xh Ym" for hourly ones.
func FormatRange(start, end time.Time, isHourly bool) (string, error) {
	if isHourly {
		hours, minutes, err := HourlySplit(start, end)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%dh %dm", hours, minutes), nil
	}

	days, err := DayCount(start, end)
	if err != nil {
		return "", err
	}
	if days == 1 {
		return "1 day", nil
	}
	return fmt.Sprintf("%d days", days), nil
}

// FormatMinutes renders a minute total as "Xh Ym".
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
