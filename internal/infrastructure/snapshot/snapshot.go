package snapshot

import (
	"context"
	"fmt"
	"os"
	"status-timeline/internal/domain"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// document is the on-disk layout of a snapshot. JSON files decode as well.
type document struct {
	Monitors     []monitorRecord     `yaml:"monitors"`
	Metrics      []metricRecord      `yaml:"metrics"`
	Incidents    []incidentRecord    `yaml:"incidents"`
	Maintenances []maintenanceRecord `yaml:"maintenances"`
	Reports      []reportRecord      `yaml:"reports"`
}

type monitorRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

type metricRecord struct {
	Day       string `yaml:"day"` // 2006-01-02 or RFC3339
	MonitorID int64  `yaml:"monitor_id"`
	Count     int64  `yaml:"count"`
	OK        int64  `yaml:"ok"`
	Degraded  int64  `yaml:"degraded"`
	Error     int64  `yaml:"error"`
}

type incidentRecord struct {
	ID         int64  `yaml:"id"`
	Title      string `yaml:"title,omitempty"`
	MonitorID  int64  `yaml:"monitor_id"`
	CreatedAt  string `yaml:"created_at"`
	ResolvedAt string `yaml:"resolved_at,omitempty"`
}

type maintenanceRecord struct {
	ID         int64   `yaml:"id"`
	Title      string  `yaml:"title"`
	Message    string  `yaml:"message,omitempty"`
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	MonitorIDs []int64 `yaml:"monitor_ids"`
}

type reportRecord struct {
	ID         int64          `yaml:"id"`
	Title      string         `yaml:"title"`
	Status     string         `yaml:"status"`
	MonitorIDs []int64        `yaml:"monitor_ids"`
	Updates    []updateRecord `yaml:"updates"`
}

type updateRecord struct {
	ID      int64  `yaml:"id"`
	Status  string `yaml:"status"`
	Message string `yaml:"message,omitempty"`
	Date    string `yaml:"date"`
}

// Snapshot is an exported copy of a status page's data. It implements the
// monitor, metrics and event sources.
type Snapshot struct {
	monitors     []*domain.Monitor
	rows         []domain.StatusData
	incidents    []domain.Incident
	maintenances []domain.Maintenance
	reports      []domain.StatusReport
}

// Load reads and validates a snapshot file
func Load(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates snapshot content
func Parse(b []byte) (*Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return doc.convert()
}

func (d *document) convert() (*Snapshot, error) {
	s := &Snapshot{}

	seen := make(map[int64]struct{}, len(d.Monitors))
	for i, r := range d.Monitors {
		m, err := domain.NewMonitor(r.ID, r.Name, r.Description, r.URL)
		if err != nil {
			return nil, fmt.Errorf("snapshot: monitor[%d]: %w", i, err)
		}
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("snapshot: duplicate monitor id %d", m.ID)
		}
		seen[m.ID] = struct{}{}
		s.monitors = append(s.monitors, m)
	}

	for i, r := range d.Metrics {
		day, err := parseDay(r.Day)
		if err != nil {
			return nil, fmt.Errorf("snapshot: metrics[%d]: %w", i, err)
		}
		if r.Count < 0 || r.OK < 0 || r.Degraded < 0 || r.Error < 0 {
			return nil, fmt.Errorf("snapshot: metrics[%d]: counts cannot be negative", i)
		}
		s.rows = append(s.rows, domain.StatusData{
			Day:       day,
			Count:     r.Count,
			OK:        r.OK,
			Degraded:  r.Degraded,
			Error:     r.Error,
			MonitorID: r.MonitorID,
		})
	}

	for i, r := range d.Incidents {
		inc, err := r.convert()
		if err != nil {
			return nil, fmt.Errorf("snapshot: incident[%d]: %w", i, err)
		}
		s.incidents = append(s.incidents, inc)
	}

	for i, r := range d.Maintenances {
		m, err := r.convert()
		if err != nil {
			return nil, fmt.Errorf("snapshot: maintenance[%d]: %w", i, err)
		}
		s.maintenances = append(s.maintenances, *m)
	}

	for i, r := range d.Reports {
		rep, err := r.convert()
		if err != nil {
			return nil, fmt.Errorf("snapshot: report[%d]: %w", i, err)
		}
		s.reports = append(s.reports, rep)
	}

	return s, nil
}

func (r incidentRecord) convert() (domain.Incident, error) {
	created, err := parseTime("created_at", r.CreatedAt)
	if err != nil {
		return domain.Incident{}, err
	}
	inc := domain.Incident{ID: r.ID, Title: strings.TrimSpace(r.Title), MonitorID: r.MonitorID, CreatedAt: created}

	if strings.TrimSpace(r.ResolvedAt) != "" {
		resolved, err := parseTime("resolved_at", r.ResolvedAt)
		if err != nil {
			return domain.Incident{}, err
		}
		if resolved.Before(created) {
			return domain.Incident{}, fmt.Errorf("resolved_at %s is before created_at", r.ResolvedAt)
		}
		inc.ResolvedAt = &resolved
	}
	return inc, nil
}

func (r maintenanceRecord) convert() (*domain.Maintenance, error) {
	from, err := parseTime("from", r.From)
	if err != nil {
		return nil, err
	}
	to, err := parseTime("to", r.To)
	if err != nil {
		return nil, err
	}
	m, err := domain.NewMaintenance(strings.TrimSpace(r.Title), r.Message, from, to, r.MonitorIDs)
	if err != nil {
		return nil, err
	}
	m.ID = r.ID
	return m, nil
}

func (r reportRecord) convert() (domain.StatusReport, error) {
	status, err := domain.NewReportStatus(r.Status)
	if err != nil {
		return domain.StatusReport{}, err
	}
	rep := domain.StatusReport{ID: r.ID, Title: strings.TrimSpace(r.Title), Status: status, MonitorIDs: r.MonitorIDs}

	for i, u := range r.Updates {
		updateStatus, err := domain.NewReportStatus(u.Status)
		if err != nil {
			return domain.StatusReport{}, fmt.Errorf("update[%d]: %w", i, err)
		}
		date, err := parseTime("date", u.Date)
		if err != nil {
			return domain.StatusReport{}, fmt.Errorf("update[%d]: %w", i, err)
		}
		rep.Updates = append(rep.Updates, domain.StatusReportUpdate{
			ID:      u.ID,
			Status:  updateStatus,
			Message: u.Message,
			Date:    date,
		})
	}
	return rep, nil
}

func parseTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return t.UTC(), nil
}

func parseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return parseTime("day", value)
}

// GetMonitors returns the monitors in file order
func (s *Snapshot) GetMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	return s.monitors, nil
}

// GetDailyStatus returns the metric rows of every monitor
func (s *Snapshot) GetDailyStatus(ctx context.Context) ([]domain.StatusData, error) {
	return s.rows, nil
}

// GetIncidents returns every incident, resolved or not
func (s *Snapshot) GetIncidents(ctx context.Context) ([]domain.Incident, error) {
	return s.incidents, nil
}

// GetMaintenances returns the maintenance windows
func (s *Snapshot) GetMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenances, nil
}

// GetStatusReports returns the status reports with their updates
func (s *Snapshot) GetStatusReports(ctx context.Context) ([]domain.StatusReport, error) {
	return s.reports, nil
}
