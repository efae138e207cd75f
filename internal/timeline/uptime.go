package timeline

import (
	"math"
	"strconv"
	"time"

	"status-timeline/internal/domain"
)

const fullUptime = "100%"

// Uptime computes the headline uptime of a window of days.
//
// Manual bars count report time as downtime, duration cards count incident
// time, everything else uses the ratio of successful requests where degraded
// requests count as up.
func Uptime(days []domain.StatusData, events []domain.Event, cfg domain.RenderConfig, now time.Time) string {
	switch {
	case cfg.BarType == domain.BarManual:
		return downtimeUptime(len(days), events, domain.EventReport, now)
	case cfg.CardType == domain.CardDuration:
		return downtimeUptime(len(days), events, domain.EventIncident, now)
	default:
		return requestUptime(days)
	}
}

func downtimeUptime(dayCount int, events []domain.Event, t domain.EventType, now time.Time) string {
	if dayCount == 0 {
		return fullUptime
	}
	total := time.Duration(dayCount) * dayLength

	var down time.Duration
	for _, e := range events {
		if e.Type == t {
			down += e.Duration(now)
		}
	}

	return formatPercent(float64(total-down) / float64(total))
}

func requestUptime(days []domain.StatusData) string {
	var ok, total int64
	for _, d := range days {
		ok += d.OK + d.Degraded
		total += d.Total()
	}
	if total == 0 {
		return fullUptime
	}
	return formatPercent(float64(ok) / float64(total))
}

// formatPercent renders a ratio as a percentage rounded to two decimals,
// without trailing zeros. The value is not clamped: downtime longer than the
// window yields a negative percentage.
func formatPercent(ratio float64) string {
	p := math.Round(ratio*10000) / 100
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
