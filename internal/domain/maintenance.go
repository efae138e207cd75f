package domain

import (
	"errors"
	"time"
)

// Maintenance represents a scheduled maintenance window
type Maintenance struct {
	ID         int64
	Title      string
	Message    string
	From       time.Time
	To         time.Time
	MonitorIDs []int64 // monitors associated with the window
}

// NewMaintenance creates a new maintenance window
func NewMaintenance(title, message string, from, to time.Time, monitorIDs []int64) (*Maintenance, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if from.IsZero() {
		return nil, errors.New("start time is required")
	}
	if to.IsZero() {
		return nil, errors.New("end time is required")
	}
	if to.Before(from) {
		return nil, errors.New("end time must be after start time")
	}

	return &Maintenance{
		Title:      title,
		Message:    message,
		From:       from,
		To:         to,
		MonitorIDs: monitorIDs,
	}, nil
}

// AffectsMonitor returns true if the monitor is in the window's association list.
// A window without associations affects no monitor.
func (m *Maintenance) AffectsMonitor(monitorID int64) bool {
	for _, id := range m.MonitorIDs {
		if id == monitorID {
			return true
		}
	}
	return false
}
