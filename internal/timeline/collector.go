package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// DefaultLookbackDays limits how far back incidents and maintenances are collected
const DefaultLookbackDays = 45

// EventSources holds the raw lifecycle records of a page
type EventSources struct {
	Incidents    []domain.Incident
	Maintenances []domain.Maintenance
	Reports      []domain.StatusReport
}

// CollectOptions scopes event collection
type CollectOptions struct {
	MonitorID    *int64 // nil collects events of every monitor
	LookbackDays int
}

// CollectEvents converts raw records into canonical events, ordered maintenances,
// incidents, then reports. Status reports are never cut off by the lookback
// window so that old unresolved reports keep showing.
func CollectEvents(src EventSources, opts CollectOptions, now time.Time) []domain.Event {
	lookback := opts.LookbackDays
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}
	cutoff := now.AddDate(0, 0, -lookback)

	events := make([]domain.Event, 0, len(src.Maintenances)+len(src.Incidents)+len(src.Reports))

	for i := range src.Maintenances {
		m := &src.Maintenances[i]
		if opts.MonitorID != nil && !m.AffectsMonitor(*opts.MonitorID) {
			continue
		}
		if m.From.Before(cutoff) {
			continue
		}
		to := m.To
		events = append(events, domain.Event{
			ID:     m.ID,
			Name:   m.Title,
			From:   m.From,
			To:     &to,
			Type:   domain.EventMaintenance,
			Status: domain.VariantInfo,
		})
	}

	for i := range src.Incidents {
		inc := &src.Incidents[i]
		if opts.MonitorID != nil && !inc.AffectsMonitor(*opts.MonitorID) {
			continue
		}
		if inc.CreatedAt.Before(cutoff) {
			continue
		}
		var to *time.Time
		if inc.IsResolved() {
			resolved := *inc.ResolvedAt
			to = &resolved
		}
		events = append(events, domain.Event{
			ID:     inc.ID,
			Name:   inc.Name(),
			From:   inc.CreatedAt,
			To:     to,
			Type:   domain.EventIncident,
			Status: domain.VariantError,
		})
	}

	for i := range src.Reports {
		r := &src.Reports[i]
		if opts.MonitorID != nil && !r.AffectsMonitor(*opts.MonitorID) {
			continue
		}
		if e, ok := reportEvent(r); ok {
			events = append(events, e)
		}
	}

	return events
}

// reportEvent derives the event of a status report from its updates.
// Reports without updates produce no event.
func reportEvent(r *domain.StatusReport) (domain.Event, bool) {
	updates := r.SortedUpdates()
	if len(updates) == 0 {
		return domain.Event{}, false
	}
	first, last := updates[0], updates[len(updates)-1]

	e := domain.Event{
		ID:   r.ID,
		Name: r.Title,
		From: first.Date,
		Type: domain.EventReport,
	}

	if r.IsResolved() {
		to := last.Date
		e.To = &to
		e.Status = domain.VariantSuccess
		return e, true
	}

	e.Status = domain.VariantDegraded
	if last.Status.ClosesEvent() {
		to := last.Date
		e.To = &to
	}
	return e, true
}
