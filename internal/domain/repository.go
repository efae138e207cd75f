package domain

import (
	"context"
)

// MonitorSource supplies the monitors of a status page
type MonitorSource interface {
	// GetMonitors retrieves all monitors of the page in display order
	GetMonitors(ctx context.Context) ([]*Monitor, error)
}

// MetricsSource supplies daily request tallies from the analytics store
type MetricsSource interface {
	// GetDailyStatus retrieves the sparse daily rows of every monitor, in any order
	GetDailyStatus(ctx context.Context) ([]StatusData, error)
}

// EventSource supplies the lifecycle records of a status page. Records are scoped
// to the page but not to a monitor or a time window.
type EventSource interface {
	// GetIncidents retrieves all incidents
	GetIncidents(ctx context.Context) ([]Incident, error)

	// GetMaintenances retrieves all maintenance windows
	GetMaintenances(ctx context.Context) ([]Maintenance, error)

	// GetStatusReports retrieves all status reports with their updates
	GetStatusReports(ctx context.Context) ([]StatusReport, error)
}
