package application

import (
	"context"
	"fmt"
	"status-timeline/internal/domain"
	"status-timeline/internal/timeline"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// RenderRecorder receives the outcome of page renderings
type RenderRecorder interface {
	RenderCompleted(result string, elapsed time.Duration)
	MonitorsRendered(n int)
}

type nopRecorder struct{}

func (nopRecorder) RenderCompleted(string, time.Duration) {}
func (nopRecorder) MonitorsRendered(int)                  {}

// PageRequest describes what to render
type PageRequest struct {
	Config    domain.RenderConfig
	MonitorID *int64 // nil renders every monitor of the page
}

// TimelineService handles status page timeline use cases
type TimelineService struct {
	monitors    domain.MonitorSource
	metrics     domain.MetricsSource
	events      domain.EventSource
	engine      *timeline.Engine
	recorder    RenderRecorder
	logger      *zap.Logger
	concurrency int
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(
	monitors domain.MonitorSource,
	metrics domain.MetricsSource,
	events domain.EventSource,
	engine *timeline.Engine,
	recorder RenderRecorder,
	logger *zap.Logger,
) *TimelineService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = timeline.NewEngine()
	}
	return &TimelineService{
		monitors:    monitors,
		metrics:     metrics,
		events:      events,
		engine:      engine,
		recorder:    recorder,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
}

// SetConcurrency sets how many monitors are rendered in parallel
func (s *TimelineService) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// RenderPage renders the timelines of the page's monitors along with the page
// status and uptime
func (s *TimelineService) RenderPage(ctx context.Context, req PageRequest) (page *domain.PageTimeline, err error) {
	started := time.Now()
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID))

	defer func() {
		result := "success"
		if err != nil {
			result = "error"
			log.Error("failed to render page timeline", zap.Error(err))
		}
		s.recorder.RenderCompleted(result, time.Since(started))
	}()

	if !req.Config.CardType.IsValid() {
		return nil, domain.ErrInvalidCardType
	}
	if !req.Config.BarType.IsValid() {
		return nil, domain.ErrInvalidBarType
	}

	monitors, err := s.selectMonitors(ctx, req.MonitorID)
	if err != nil {
		return nil, err
	}

	rows, src, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.engine.Now()
	rowsByMonitor := timeline.GroupByMonitor(rows)

	timelines := make([]domain.MonitorTimeline, len(monitors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, m := range monitors {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			timelines[i] = s.engine.BuildAt(timeline.Input{
				MonitorID: m.ID,
				Name:      m.Name,
				Rows:      rowsOf(rowsByMonitor, m.ID),
				Sources:   src,
				Config:    req.Config,
			}, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to render timelines: %w", err)
	}

	page = &domain.PageTimeline{
		RunID:       runID,
		GeneratedAt: now,
		Config:      req.Config,
		WindowDays:  s.engine.WindowDays(),
		Status:      pageStatus(timelines),
		Monitors:    timelines,
	}

	if req.MonitorID != nil {
		page.Uptime = timelines[0].Uptime
	} else {
		var pageRows []domain.StatusData
		for _, m := range monitors {
			pageRows = append(pageRows, rowsOf(rowsByMonitor, m.ID)...)
		}
		page.Uptime = s.engine.PageUptime(pageRows, src, req.Config, now)
	}

	s.recorder.MonitorsRendered(len(timelines))
	log.Info("rendered page timeline",
		zap.Int("monitors", len(timelines)),
		zap.String("status", page.Status.String()),
		zap.String("uptime", page.Uptime),
		zap.Duration("elapsed", time.Since(started)),
	)

	return page, nil
}

// selectMonitors returns all monitors, or only the requested one
func (s *TimelineService) selectMonitors(ctx context.Context, monitorID *int64) ([]*domain.Monitor, error) {
	monitors, err := s.monitors.GetMonitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get monitors: %w", err)
	}
	if monitorID == nil {
		return monitors, nil
	}

	for _, m := range monitors {
		if m.ID == *monitorID {
			return []*domain.Monitor{m}, nil
		}
	}
	return nil, fmt.Errorf("monitor %d: %w", *monitorID, domain.ErrMonitorNotFound)
}

// load fetches metric rows and event records concurrently
func (s *TimelineService) load(ctx context.Context) ([]domain.StatusData, timeline.EventSources, error) {
	var (
		rows []domain.StatusData
		src  timeline.EventSources
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if rows, err = s.metrics.GetDailyStatus(gctx); err != nil {
			return fmt.Errorf("failed to get daily status: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if src.Incidents, err = s.events.GetIncidents(gctx); err != nil {
			return fmt.Errorf("failed to get incidents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if src.Maintenances, err = s.events.GetMaintenances(gctx); err != nil {
			return fmt.Errorf("failed to get maintenances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if src.Reports, err = s.events.GetStatusReports(gctx); err != nil {
			return fmt.Errorf("failed to get status reports: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, timeline.EventSources{}, err
	}
	return rows, src, nil
}

func rowsOf(groups []timeline.MonitorRows, monitorID int64) []domain.StatusData {
	for _, g := range groups {
		if g.Key == monitorID {
			return g.Items
		}
	}
	return nil
}

// pageStatus is the worst status any monitor shows for the latest day
func pageStatus(timelines []domain.MonitorTimeline) domain.Variant {
	statuses := make([]domain.Variant, 0, len(timelines))
	for _, t := range timelines {
		if latest, ok := t.Latest(); ok {
			statuses = append(statuses, latest.Status())
		}
	}
	return domain.Worst(statuses...)
}
