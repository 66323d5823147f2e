package attendance

import "time"

type LogType string

const (
	LogTypeIn       LogType = "IN"
	LogTypeOut      LogType = "OUT"
	LogTypeBreakIn  LogType = "BREAK_IN"
	LogTypeBreakOut LogType = "BREAK_OUT"
)

var LogTypes = []string{
	string(LogTypeIn),
	string(LogTypeOut),
	string(LogTypeBreakIn),
	string(LogTypeBreakOut),
}

// ManualDeviceID marks logs entered by an operator instead of a punch device.
const ManualDeviceID = "MANUAL"

// AttendanceLog is a single punch. It belongs to exactly one
// (personnel, calendar day) bucket, determined by the date part of LogTime.
type AttendanceLog struct {
	ID          string
	PersonnelID string
	LogTime     time.Time
	LogType     LogType
	DeviceID    string
	IsManual    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Date returns the calendar day bucket of the log.
func (l AttendanceLog) Date() time.Time {
	t := l.LogTime
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type SummaryStatus string

const (
	StatusComplete       SummaryStatus = "COMPLETE"
	StatusAbsent         SummaryStatus = "ABSENT"
	StatusIncomplete     SummaryStatus = "INCOMPLETE"
	StatusLeave          SummaryStatus = "LEAVE"
	StatusPartialLeave   SummaryStatus = "PARTIAL_LEAVE"
	StatusMission        SummaryStatus = "MISSION"
	StatusPartialMission SummaryStatus = "PARTIAL_MISSION"
	StatusHoliday        SummaryStatus = "HOLIDAY"
	StatusNoShift        SummaryStatus = "NO_SHIFT"
)

var SummaryStatuses = []string{
	string(StatusComplete),
	string(StatusAbsent),
	string(StatusIncomplete),
	string(StatusLeave),
	string(StatusPartialLeave),
	string(StatusMission),
	string(StatusPartialMission),
	string(StatusHoliday),
	string(StatusNoShift),
}

// DailySummary is the derived aggregate for one (personnel, date) pair.
// It is only ever produced by the processor from the current log set; the
// way to change it is to mutate logs and reprocess.
type DailySummary struct {
	ID          string
	PersonnelID string
	Date        time.Time

	ShiftID             *string
	Status              SummaryStatus
	PresenceMinutes     int
	DelayMinutes        int
	OvertimeMinutes     int
	UndertimeMinutes    int
	ExpectedWorkMinutes int
	FirstIn             *time.Time
	LastOut             *time.Time
	RawLogsCount        int
	Notes               *string

	// IsProcessed is cleared when a log mutation touches the bucket and set
	// again by the next reprocess.
	IsProcessed bool
	ProcessedAt time.Time
}
