package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrMonitorNotFound = errors.New("monitor not found")
)

// Monitor is an entity representing a checked endpoint shown on a status page
type Monitor struct {
	ID          int64
	Name        string
	Description string
	URL         string
}

// NewMonitor creates a new Monitor with validation
func NewMonitor(id int64, name, description, url string) (*Monitor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Monitor{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		URL:         strings.TrimSpace(url),
	}, nil
}

// MonitorTimeline is the rendered history of one monitor
type MonitorTimeline struct {
	MonitorID int64        `json:"monitorId" yaml:"monitorId"`
	Name      string       `json:"name" yaml:"name"`
	Uptime    string       `json:"uptime" yaml:"uptime"`
	Requests  int64        `json:"requests" yaml:"requests"` // over the whole window
	Data      []UptimeData `json:"data" yaml:"data"`
}

// Latest returns the most recent day, or false if the timeline is empty
func (t MonitorTimeline) Latest() (UptimeData, bool) {
	if len(t.Data) == 0 {
		return UptimeData{}, false
	}
	return t.Data[len(t.Data)-1], true
}

// PageTimeline is the rendered history of a whole status page
type PageTimeline struct {
	RunID       string            `json:"runId" yaml:"runId"`
	GeneratedAt time.Time         `json:"generatedAt" yaml:"generatedAt"`
	Config      RenderConfig      `json:"config" yaml:"config"`
	WindowDays  int               `json:"windowDays" yaml:"windowDays"`
	Status      Variant           `json:"status" yaml:"status"`
	Uptime      string            `json:"uptime" yaml:"uptime"`
	Monitors    []MonitorTimeline `json:"monitors" yaml:"monitors"`
}
