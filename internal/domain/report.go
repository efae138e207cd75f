package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ReportStatus represents the state of a status report or of one of its updates
type ReportStatus string

const (
	ReportInvestigating ReportStatus = "investigating"
	ReportIdentified    ReportStatus = "identified"
	ReportMonitoring    ReportStatus = "monitoring"
	ReportResolved      ReportStatus = "resolved"
)

var ErrInvalidReportStatus = errors.New("invalid report status: must be investigating, identified, monitoring, or resolved")

// NewReportStatus creates a ReportStatus from string with validation
func NewReportStatus(s string) (ReportStatus, error) {
	normalized := ReportStatus(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case ReportInvestigating, ReportIdentified, ReportMonitoring, ReportResolved:
		return normalized, nil
	}
	return "", ErrInvalidReportStatus
}

// ClosesEvent returns true for update states that end the reported disruption
func (s ReportStatus) ClosesEvent() bool {
	return s == ReportResolved || s == ReportMonitoring
}

// StatusReport is a manually published incident narrative
type StatusReport struct {
	ID         int64
	Title      string
	Status     ReportStatus
	MonitorIDs []int64
	Updates    []StatusReportUpdate
}

// StatusReportUpdate represents a timeline entry of a status report
type StatusReportUpdate struct {
	ID      int64
	Status  ReportStatus
	Message string
	Date    time.Time
}

// IsResolved returns true if the report itself is resolved
func (r *StatusReport) IsResolved() bool {
	return r.Status == ReportResolved
}

// AffectsMonitor returns true if the monitor is associated with the report
func (r *StatusReport) AffectsMonitor(monitorID int64) bool {
	for _, id := range r.MonitorIDs {
		if id == monitorID {
			return true
		}
	}
	return false
}

// SortedUpdates returns a copy of the updates in chronological order
func (r *StatusReport) SortedUpdates() []StatusReportUpdate {
	updates := make([]StatusReportUpdate, len(r.Updates))
	copy(updates, r.Updates)
	sort.SliceStable(updates, func(i, j int) bool {
		return updates[i].Date.Before(updates[j].Date)
	})
	return updates
}
