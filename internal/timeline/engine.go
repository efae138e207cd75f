package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// Observer is notified about what a build produced
type Observer interface {
	EventsCollected(events []domain.Event)
	IncidentsBundled(day time.Time, count int)
}

type nopObserver struct{}

func (nopObserver) EventsCollected([]domain.Event)  {}
func (nopObserver) IncidentsBundled(time.Time, int) {}

// Engine renders monitor timelines
type Engine struct {
	windowDays      int
	lookbackDays    int
	bundleThreshold int
	clock           func() time.Time
	observer        Observer
}

// Option configures an Engine
type Option func(*Engine)

// WithWindowDays sets the number of rendered days
func WithWindowDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.windowDays = days
		}
	}
}

// WithLookbackDays sets how far back incidents and maintenances are collected
func WithLookbackDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.lookbackDays = days
		}
	}
}

// WithBundleThreshold sets how many incidents a day lists before bundling
func WithBundleThreshold(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.bundleThreshold = n
		}
	}
}

// WithClock replaces time.Now
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithObserver registers an observer
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// NewEngine creates an Engine with the given options
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		windowDays:      DefaultWindowDays,
		lookbackDays:    DefaultLookbackDays,
		bundleThreshold: DefaultBundleThreshold,
		clock:           time.Now,
		observer:        nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WindowDays returns the number of days the engine renders
func (e *Engine) WindowDays() int {
	return e.windowDays
}

// Now returns the current instant of the engine's clock in UTC
func (e *Engine) Now() time.Time {
	return e.clock().UTC()
}

// Input is everything needed to render one monitor
type Input struct {
	MonitorID int64
	Name      string
	Rows      []domain.StatusData // rows of this monitor only
	Sources   EventSources        // page-wide records, scoped during the build
	Config    domain.RenderConfig
}

// Build renders the timeline of one monitor at the current instant
func (e *Engine) Build(in Input) domain.MonitorTimeline {
	return e.BuildAt(in, e.Now())
}

// BuildAt renders the timeline of one monitor as seen at now
func (e *Engine) BuildAt(in Input, now time.Time) domain.MonitorTimeline {
	monitorID := in.MonitorID
	events := CollectEvents(in.Sources, CollectOptions{
		MonitorID:    &monitorID,
		LookbackDays: e.lookbackDays,
	}, now)
	e.observer.EventsCollected(events)

	days := FillDays(in.Rows, in.MonitorID, e.windowDays, now)

	var requests int64
	data := make([]domain.UptimeData, 0, len(days))
	for _, row := range days {
		requests += row.Total()

		listed, bundled := dayEvents(row.Day, events, in.Config, e.bundleThreshold, now)
		if bundled > 0 {
			e.observer.IncidentsBundled(row.Day, bundled)
		}

		data = append(data, domain.UptimeData{
			Day:    row.Day,
			Events: listed,
			Bar:    RenderBar(row.Day, events, row, in.Config, now),
			Card:   RenderCard(row.Day, events, row, in.Config, now),
		})
	}

	return domain.MonitorTimeline{
		MonitorID: in.MonitorID,
		Name:      in.Name,
		Uptime:    Uptime(days, events, in.Config, now),
		Requests:  requests,
		Data:      data,
	}
}

// PageUptime computes the uptime of a whole page: the rows of all monitors are
// summed per day and measured against every event of the page
func (e *Engine) PageUptime(rows []domain.StatusData, src EventSources, cfg domain.RenderConfig, now time.Time) string {
	days := FillDays(SumByDay(rows), 0, e.windowDays, now)
	events := CollectEvents(src, CollectOptions{LookbackDays: e.lookbackDays}, now)
	return Uptime(days, events, cfg, now)
}
