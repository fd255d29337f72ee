package dates

import "time"

// TimeStatus is the clock-dependent classification of a stay window.
// It is derived from wall-clock time on every evaluation and never
// persisted alongside the booking's approval status.
type TimeStatus string

const (
	StatusUpcoming  TimeStatus = "upcoming"
	StatusActive    TimeStatus = "active"
	StatusCompleted TimeStatus = "completed"
)

// DateNotSet is the display sentinel for absent or malformed dates.
const DateNotSet = "date not set"

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
}

// Parse converts a persisted date string into a time. It fails soft:
// malformed or empty input yields ok=false, never a panic.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClassifyTimeStatus classifies a stay window against now. The first
// calendar element is the stay start and the last is the stay end.
// Fewer than two usable dates classify as upcoming.
func ClassifyTimeStatus(calendar []string, now time.Time) TimeStatus {
	if len(calendar) < 2 {
		return StatusUpcoming
	}

	start, okStart := Parse(calendar[0])
	end, okEnd := Parse(calendar[len(calendar)-1])
	if !okStart || !okEnd {
		return StatusUpcoming
	}

	if now.After(end) {
		return StatusCompleted
	}
	if !now.Before(start) && !now.After(end) {
		return StatusActive
	}
	return StatusUpcoming
}

// FormatDisplay renders a parsed date as day/month/year, or the
// DateNotSet sentinel when parsing failed.
func FormatDisplay(t time.Time, ok bool) string {
	if !ok {
		return DateNotSet
	}
	return t.Format("02.01.2006")
}
