package application

import (
	"context"
	"status-timeline/internal/domain"
	"sync"
	"time"
)

// MockMonitorSource is a mock implementation of domain.MonitorSource
type MockMonitorSource struct {
	Monitors        []*domain.Monitor
	GetMonitorsFunc func(ctx context.Context) ([]*domain.Monitor, error)
}

func NewMockMonitorSource(monitors ...*domain.Monitor) *MockMonitorSource {
	return &MockMonitorSource{Monitors: monitors}
}

func (m *MockMonitorSource) GetMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	if m.GetMonitorsFunc != nil {
		return m.GetMonitorsFunc(ctx)
	}
	return m.Monitors, nil
}

// MockMetricsSource is a mock implementation of domain.MetricsSource
type MockMetricsSource struct {
	Rows               []domain.StatusData
	GetDailyStatusFunc func(ctx context.Context) ([]domain.StatusData, error)
}

func NewMockMetricsSource(rows ...domain.StatusData) *MockMetricsSource {
	return &MockMetricsSource{Rows: rows}
}

func (m *MockMetricsSource) GetDailyStatus(ctx context.Context) ([]domain.StatusData, error) {
	if m.GetDailyStatusFunc != nil {
		return m.GetDailyStatusFunc(ctx)
	}
	return m.Rows, nil
}

// MockEventSource is a mock implementation of domain.EventSource
type MockEventSource struct {
	Incidents            []domain.Incident
	Maintenances         []domain.Maintenance
	Reports              []domain.StatusReport
	GetIncidentsFunc     func(ctx context.Context) ([]domain.Incident, error)
	GetMaintenancesFunc  func(ctx context.Context) ([]domain.Maintenance, error)
	GetStatusReportsFunc func(ctx context.Context) ([]domain.StatusReport, error)
}

func NewMockEventSource() *MockEventSource {
	return &MockEventSource{}
}

func (m *MockEventSource) GetIncidents(ctx context.Context) ([]domain.Incident, error) {
	if m.GetIncidentsFunc != nil {
		return m.GetIncidentsFunc(ctx)
	}
	return m.Incidents, nil
}

func (m *MockEventSource) GetMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	if m.GetMaintenancesFunc != nil {
		return m.GetMaintenancesFunc(ctx)
	}
	return m.Maintenances, nil
}

func (m *MockEventSource) GetStatusReports(ctx context.Context) ([]domain.StatusReport, error) {
	if m.GetStatusReportsFunc != nil {
		return m.GetStatusReportsFunc(ctx)
	}
	return m.Reports, nil
}

// MockRenderRecorder records what the service reports
type MockRenderRecorder struct {
	mu       sync.Mutex
	Results  []string
	Rendered []int
}

func (m *MockRenderRecorder) RenderCompleted(result string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = append(m.Results, result)
}

func (m *MockRenderRecorder) MonitorsRendered(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rendered = append(m.Rendered, n)
}
