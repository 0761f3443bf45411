package reports

import (
	"fmt"
	"time"
)

// Window derives the closed reporting interval for a filter mode and a
// YYYY-MM-DD date string, in local time. A record stamped exactly at the
// start instant is inside the window; one a nanosecond before the start is
// not.
func Window(mode, dateStr string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	var start time.Time
	switch mode {
	case "daily":
		start = day
	case "monthly":
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	case "yearly":
		start = time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("invalid filter mode %q", mode)
	}

	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}
