package domain

import (
	"time"
)

// Incident represents an automatically detected downtime period of a monitor
type Incident struct {
	ID         int64
	Title      string
	MonitorID  int64
	CreatedAt  time.Time
	ResolvedAt *time.Time // nil while unresolved
}

// DefaultIncidentName is used for incidents without a title
const DefaultIncidentName = "Downtime"

// IsResolved returns true if the incident has a resolution time
func (i *Incident) IsResolved() bool {
	return i.ResolvedAt != nil
}

// Name returns the display name of the incident
func (i *Incident) Name() string {
	if i.Title == "" {
		return DefaultIncidentName
	}
	return i.Title
}

// AffectsMonitor returns true if the incident belongs to the given monitor
func (i *Incident) AffectsMonitor(monitorID int64) bool {
	return i.MonitorID == monitorID
}
