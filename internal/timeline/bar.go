package timeline

import (
	"fmt"
	"time"

	"status-timeline/internal/domain"
)

// DefaultBundleThreshold is the number of incidents a day may list before they
// are collapsed into one bundle event
const DefaultBundleThreshold = 4

// absoluteOrder is the stacking order of event types on an absolute bar
var absoluteOrder = []struct {
	eventType domain.EventType
	status    domain.Variant
}{
	{domain.EventMaintenance, domain.VariantInfo},
	{domain.EventReport, domain.VariantDegraded},
	{domain.EventIncident, domain.VariantError},
}

// RenderBar builds the stacked bar of one day. Heights are percentages.
func RenderBar(day time.Time, events []domain.Event, row domain.StatusData, cfg domain.RenderConfig, now time.Time) []domain.BarSegment {
	class := ClassifyDay(EventsOnDay(events, day, now))

	switch cfg.BarType {
	case domain.BarDominant:
		return []domain.BarSegment{{Status: dominantStatus(class, row), Height: 100}}
	case domain.BarManual:
		return []domain.BarSegment{{Status: manualStatus(class), Height: 100}}
	default:
		return absoluteBar(day, class, row, cfg, now)
	}
}

func absoluteBar(day time.Time, class DayClass, row domain.StatusData, cfg domain.RenderConfig, now time.Time) []domain.BarSegment {
	if class.IsEmpty() {
		return metricsBar(row, cfg)
	}

	type part struct {
		status   domain.Variant
		duration time.Duration
	}
	var parts []part
	var total time.Duration
	for _, o := range absoluteOrder {
		events := class.Events(o.eventType)
		if len(events) == 0 {
			continue
		}
		d := OverlapDuration(events, day, now)
		parts = append(parts, part{status: o.status, duration: d})
		total += d
	}

	// A day with downtime only shows downtime against the rest of the day.
	if len(parts) == 1 && parts[0].status == domain.VariantError {
		down := float64(parts[0].duration) / float64(dayLength) * 100
		return []domain.BarSegment{
			{Status: domain.VariantSuccess, Height: 100 - down},
			{Status: domain.VariantError, Height: down},
		}
	}

	segments := make([]domain.BarSegment, 0, len(parts))
	for _, p := range parts {
		height := 100 / float64(len(parts))
		if total > 0 {
			height = float64(p.duration) / float64(total) * 100
		}
		segments = append(segments, domain.BarSegment{Status: p.status, Height: height})
	}
	return segments
}

func metricsBar(row domain.StatusData, cfg domain.RenderConfig) []domain.BarSegment {
	total := row.Total()
	if total == 0 {
		return []domain.BarSegment{{Status: domain.VariantEmpty, Height: 100}}
	}
	if cfg.CardType == domain.CardDuration {
		return []domain.BarSegment{{Status: domain.VariantSuccess, Height: 100}}
	}

	segments := make([]domain.BarSegment, 0, 3)
	for _, b := range requestBuckets(row) {
		if b.count == 0 {
			continue
		}
		segments = append(segments, domain.BarSegment{
			Status: b.status,
			Height: float64(b.count) / float64(total) * 100,
		})
	}
	return segments
}

type bucket struct {
	status domain.Variant
	count  int64
}

func requestBuckets(row domain.StatusData) []bucket {
	return []bucket{
		{domain.VariantSuccess, row.OK},
		{domain.VariantDegraded, row.Degraded},
		{domain.VariantError, row.Error},
	}
}

// DayEvents returns the events listed for a day: reports and maintenance always,
// incidents only on absolute bars. More than DefaultBundleThreshold incidents
// are replaced by a single bundle event.
func DayEvents(day time.Time, events []domain.Event, cfg domain.RenderConfig, now time.Time) []domain.Event {
	listed, _ := dayEvents(day, events, cfg, DefaultBundleThreshold, now)
	return listed
}

// dayEvents also returns how many incidents were bundled, 0 if none
func dayEvents(day time.Time, events []domain.Event, cfg domain.RenderConfig, threshold int, now time.Time) ([]domain.Event, int) {
	if threshold <= 0 {
		threshold = DefaultBundleThreshold
	}

	onDay := EventsOnDay(events, day, now)
	listed := make([]domain.Event, 0, len(onDay))
	var incidents []domain.Event
	for _, e := range onDay {
		if e.Type == domain.EventIncident {
			incidents = append(incidents, e)
			continue
		}
		listed = append(listed, e)
	}

	if cfg.BarType != domain.BarAbsolute || len(incidents) == 0 {
		return listed, 0
	}
	if len(incidents) <= threshold {
		return append(listed, incidents...), 0
	}
	return append(listed, bundleIncidents(incidents, now)), len(incidents)
}

// bundleIncidents collapses incidents into one event spanning all of them
func bundleIncidents(incidents []domain.Event, now time.Time) domain.Event {
	from := incidents[0].From
	to := incidents[0].EndAt(now)
	for _, e := range incidents[1:] {
		if e.From.Before(from) {
			from = e.From
		}
		if end := e.EndAt(now); end.After(to) {
			to = end
		}
	}

	return domain.Event{
		ID:     domain.BundleEventID,
		Name:   fmt.Sprintf("%s (%d incidents)", domain.DefaultIncidentName, len(incidents)),
		From:   from,
		To:     &to,
		Type:   domain.EventIncident,
		Status: domain.VariantError,
	}
}
