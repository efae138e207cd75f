package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// DefaultWindowDays is the number of days rendered when no window is given
const DefaultWindowDays = 45

const dayLength = 24 * time.Hour

// StartOfDay truncates t to midnight of its UTC calendar day
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FillDays expands sparse daily rows into exactly windowDays rows, oldest first,
// ending with the UTC day of now. Days without a record get a zero row for
// monitorID. When several records fall on the same day the first one wins.
func FillDays(existing []domain.StatusData, monitorID int64, windowDays int, now time.Time) []domain.StatusData {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	byDay := make(map[time.Time]domain.StatusData, len(existing))
	for _, row := range existing {
		day := StartOfDay(row.Day)
		if _, seen := byDay[day]; !seen {
			byDay[day] = row
		}
	}

	today := StartOfDay(now)
	days := make([]domain.StatusData, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		row, ok := byDay[day]
		if !ok {
			row = domain.StatusData{MonitorID: monitorID}
		}
		row.Day = day
		days = append(days, row)
	}

	return days
}
