package timeline

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"status-timeline/internal/domain"
)

const minutesPerDay = 24 * 60

// RenderCard builds the summary card of one day
func RenderCard(day time.Time, events []domain.Event, row domain.StatusData, cfg domain.RenderConfig, now time.Time) []domain.CardEntry {
	class := ClassifyDay(EventsOnDay(events, day, now))

	switch cfg.CardType {
	case domain.CardDuration:
		return durationCard(day, class, row, now)
	case domain.CardDominant:
		return []domain.CardEntry{{Status: dominantStatus(class, row)}}
	case domain.CardManual:
		return []domain.CardEntry{{Status: manualStatus(class)}}
	default:
		return requestsCard(class, row)
	}
}

// emptyCard is shown for days without requests
func emptyCard(class DayClass) []domain.CardEntry {
	status := domain.VariantEmpty
	if s, ok := class.EventStatus(); ok {
		status = s
	}
	return []domain.CardEntry{{Status: status}}
}

func requestsCard(class DayClass, row domain.StatusData) []domain.CardEntry {
	if row.Total() == 0 {
		return emptyCard(class)
	}

	card := make([]domain.CardEntry, 0, 3)
	for _, b := range requestBuckets(row) {
		if b.count == 0 {
			continue
		}
		card = append(card, domain.CardEntry{Status: b.status, Value: formatRequests(b.count) + " reqs"})
	}
	return card
}

func durationCard(day time.Time, class DayClass, row domain.StatusData, now time.Time) []domain.CardEntry {
	if row.Total() == 0 {
		return emptyCard(class)
	}

	minutes := func(t domain.EventType) int64 {
		return roundMinutes(OverlapDuration(class.Events(t), day, now))
	}
	errMin := minutes(domain.EventIncident)
	degMin := minutes(domain.EventReport)
	infoMin := minutes(domain.EventMaintenance)

	// Categories are not checked for overlap with each other, so time covered
	// by both an incident and a maintenance is subtracted twice.
	successMin := availableMinutes(day, now) - (errMin + degMin + infoMin)
	if successMin < 0 {
		successMin = 0
	}

	card := make([]domain.CardEntry, 0, 4)
	for _, entry := range []struct {
		status  domain.Variant
		minutes int64
	}{
		{domain.VariantError, errMin},
		{domain.VariantDegraded, degMin},
		{domain.VariantInfo, infoMin},
		{domain.VariantSuccess, successMin},
	} {
		if entry.minutes == 0 {
			continue
		}
		card = append(card, domain.CardEntry{Status: entry.status, Value: formatDuration(entry.minutes)})
	}
	return card
}

// availableMinutes is a full day for past days and the elapsed part of today
func availableMinutes(day, now time.Time) int64 {
	start := StartOfDay(day)
	today := StartOfDay(now)
	switch {
	case start.Before(today):
		return minutesPerDay
	case start.Equal(today):
		return roundMinutes(now.Sub(today))
	}
	return 0
}

func roundMinutes(d time.Duration) int64 {
	return int64(math.Round(d.Minutes()))
}

// formatRequests renders 999, 1.2k or 3.4M
func formatRequests(n int64) string {
	switch {
	case n < 1000:
		return strconv.FormatInt(n, 10)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
}

// formatDuration renders minutes as 2h, 2h 5m or 5m
func formatDuration(minutes int64) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
