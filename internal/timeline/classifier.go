package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// OverlapDuration sums the time each event spends inside the UTC day of day.
// Ongoing events are measured up to now. The total never exceeds 24h.
func OverlapDuration(events []domain.Event, day, now time.Time) time.Duration {
	start := StartOfDay(day)
	end := start.Add(dayLength)

	var total time.Duration
	for _, e := range events {
		from := e.From
		if from.Before(start) {
			from = start
		}
		to := e.EndAt(now)
		if to.After(end) {
			to = end
		}
		if d := to.Sub(from); d > 0 {
			total += d
		}
	}

	if total > dayLength {
		return dayLength
	}
	return total
}

// EventsOnDay returns the events whose span touches the UTC day of day, in
// input order
func EventsOnDay(events []domain.Event, day, now time.Time) []domain.Event {
	start := StartOfDay(day)
	end := start.Add(dayLength)

	var onDay []domain.Event
	for _, e := range events {
		if touchesDay(e, start, end, now) {
			onDay = append(onDay, e)
		}
	}
	return onDay
}

// touchesDay reports whether the event intersects [start, end). An event ending
// exactly at start belongs to the previous day only; instantaneous events
// belong to the day they happen on.
func touchesDay(e domain.Event, start, end, now time.Time) bool {
	if !e.From.Before(end) {
		return false
	}
	if e.EndAt(now).After(start) {
		return true
	}
	return !e.From.Before(start)
}

// DayClass is the partition of one day's events by type
type DayClass struct {
	groups []TypeGroup
}

// ClassifyDay partitions the events of a day by type
func ClassifyDay(events []domain.Event) DayClass {
	return DayClass{groups: GroupByType(events)}
}

// Events returns the day's events of type t
func (c DayClass) Events(t domain.EventType) []domain.Event {
	for _, g := range c.groups {
		if g.Key == t {
			return g.Items
		}
	}
	return nil
}

// Has reports whether the day has at least one event of type t
func (c DayClass) Has(t domain.EventType) bool {
	return len(c.Events(t)) > 0
}

// IsEmpty reports whether no event touches the day
func (c DayClass) IsEmpty() bool {
	return len(c.groups) == 0
}

// EventStatus returns the status implied by the day's events: incidents win over
// reports, reports over maintenance. ok is false when the day has no events.
func (c DayClass) EventStatus() (status domain.Variant, ok bool) {
	switch {
	case c.Has(domain.EventIncident):
		return domain.VariantError, true
	case c.Has(domain.EventReport):
		return domain.VariantDegraded, true
	case c.Has(domain.EventMaintenance):
		return domain.VariantInfo, true
	}
	return "", false
}

// dominantStatus is the event status, falling back to the metric row
func dominantStatus(c DayClass, row domain.StatusData) domain.Variant {
	if status, ok := c.EventStatus(); ok {
		return status
	}
	return row.Variant()
}

// manualStatus ignores incidents: reports mean degraded, maintenance means info
func manualStatus(c DayClass) domain.Variant {
	switch {
	case c.Has(domain.EventReport):
		return domain.VariantDegraded
	case c.Has(domain.EventMaintenance):
		return domain.VariantInfo
	}
	return domain.VariantSuccess
}
