package domain

import (
	"time"
)

// EventType identifies the source stream an event was derived from
type EventType string

const (
	EventIncident    EventType = "incident"
	EventMaintenance EventType = "maintenance"
	EventReport      EventType = "report"
)

// BundleEventID is the synthetic ID of an event aggregating several incidents
const BundleEventID int64 = -1

// Event is the canonical representation of an incident, maintenance window or
// status report on the timeline
type Event struct {
	ID     int64      `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	From   time.Time  `json:"from" yaml:"from"`
	To     *time.Time `json:"to" yaml:"to"` // nil = still ongoing
	Type   EventType  `json:"type" yaml:"type"`
	Status Variant    `json:"status" yaml:"status"`
}

// IsOngoing returns true if the event has no end yet
func (e Event) IsOngoing() bool {
	return e.To == nil
}

// EndAt returns the end of the event, clamping an ongoing event to now
func (e Event) EndAt(now time.Time) time.Time {
	if e.IsOngoing() {
		return now
	}
	return *e.To
}

// Duration returns the length of the event, measuring ongoing events up to now.
// Never negative.
func (e Event) Duration(now time.Time) time.Duration {
	d := e.EndAt(now).Sub(e.From)
	if d < 0 {
		return 0
	}
	return d
}

// IsBundle returns true for the synthetic event replacing several incidents
func (e Event) IsBundle() bool {
	return e.ID == BundleEventID
}
