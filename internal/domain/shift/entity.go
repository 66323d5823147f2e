package shift

import (
	"fmt"
	"time"
)

// Shift defines a working-day template. Times are stored as "HH:MM" local
// clock values. A second segment (StartTime2/EndTime2) models split shifts;
// both fields are set or neither is.
type Shift struct {
	ID                       string
	Name                     string
	StartTime1               string
	EndTime1                 string
	StartTime2               *string
	EndTime2                 *string
	AllowedLogStartTime      string
	LogPeriodDurationMinutes int
	FloatDurationMinutes     int
	IsNightShift             bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// IsSplit reports whether the shift has a second working segment.
func (s Shift) IsSplit() bool {
	return s.StartTime2 != nil && s.EndTime2 != nil
}

// ExpectedEnd is the clock time the working day is expected to end:
// the second segment's end when present, the first segment's otherwise.
func (s Shift) ExpectedEnd() string {
	if s.IsSplit() {
		return *s.EndTime2
	}
	return s.EndTime1
}

// ExpectedWorkMinutes is the scheduled working time across both segments.
func (s Shift) ExpectedWorkMinutes() (int, error) {
	total, err := segmentMinutes(s.StartTime1, s.EndTime1, s.IsNightShift)
	if err != nil {
		return 0, err
	}
	if s.IsSplit() {
		second, err := segmentMinutes(*s.StartTime2, *s.EndTime2, false)
		if err != nil {
			return 0, err
		}
		total += second
	}
	return total, nil
}

func segmentMinutes(start, end string, wrapsMidnight bool) (int, error) {
	startMin, err := ParseMinutes(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseMinutes(end)
	if err != nil {
		return 0, err
	}
	if endMin < startMin {
		if !wrapsMidnight {
			return 0, fmt.Errorf("shift segment ends before it starts: %s-%s", start, end)
		}
		endMin += 24 * 60
	}
	return endMin - startMin, nil
}

// ParseMinutes converts an "HH:MM" or "HH:MM:SS" clock string to minutes
// since midnight.
func ParseMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}
