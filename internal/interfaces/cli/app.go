package cli

import (
	"fmt"
	"io"
	"status-timeline/internal/application"
	"status-timeline/internal/config"
	"status-timeline/internal/domain"
	"status-timeline/internal/infrastructure/metrics"
	"status-timeline/internal/infrastructure/snapshot"
	"status-timeline/internal/logging"
	"status-timeline/internal/timeline"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// NewApp creates the status-timeline command line application
func NewApp(info BuildInfo, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "status-timeline",
		Usage:     "Render status page history bars, cards and uptime from a data snapshot",
		Version:   info.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"TIMELINE_CONFIG"},
			},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "json or console"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to this textfile after the run"},
		},
		Commands: []*cli.Command{
			renderCommand(info),
			uptimeCommand(info),
			versionCommand(info),
		},
	}
}

// runtime holds everything a command needs, built from configuration
type runtime struct {
	cfg      *config.Config
	render   domain.RenderConfig
	logger   *zap.Logger
	recorder *metrics.Recorder
	service  *application.TimelineService
}

// setup loads configuration with flag overrides and wires the service
// around the snapshot file
func setup(c *cli.Context, info BuildInfo) (*runtime, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	render, err := cfg.RenderConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, info.Version)
	if err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(c.String("snapshot"))
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	recorder := metrics.NewRecorder()
	opts := []timeline.Option{
		timeline.WithWindowDays(cfg.WindowDays),
		timeline.WithLookbackDays(cfg.LookbackDays),
		timeline.WithBundleThreshold(cfg.BundleThreshold),
		timeline.WithObserver(recorder),
	}
	if at := c.String("at"); at != "" {
		now, err := time.Parse(time.RFC3339, at)
		if err != nil {
			_ = logger.Sync()
			return nil, fmt.Errorf("invalid --at %q: %w", at, err)
		}
		opts = append(opts, timeline.WithClock(func() time.Time { return now }))
	}
	engine := timeline.NewEngine(opts...)
	service := application.NewTimelineService(snap, snap, snap, engine, recorder, logger)
	service.SetConcurrency(cfg.Concurrency)

	logger.Debug("configuration loaded",
		zap.Int("window_days", cfg.WindowDays),
		zap.Int("lookback_days", cfg.LookbackDays),
		zap.String("card_type", string(render.CardType)),
		zap.String("bar_type", string(render.BarType)),
	)

	return &runtime{
		cfg:      cfg,
		render:   render,
		logger:   logger,
		recorder: recorder,
		service:  service,
	}, nil
}

// applyFlags gives explicitly set flags precedence over the loaded configuration
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("metrics-file") {
		cfg.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("card-type") {
		cfg.CardType = c.String("card-type")
	}
	if c.IsSet("bar-type") {
		cfg.BarType = c.String("bar-type")
	}
	if c.IsSet("window-days") && c.Int("window-days") > 0 {
		cfg.WindowDays = c.Int("window-days")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
}

// close flushes metrics and logs
func (r *runtime) close() {
	if r.cfg.MetricsFile != "" {
		if err := r.recorder.WriteTextfile(r.cfg.MetricsFile); err != nil {
			r.logger.Warn("failed to write metrics file", zap.String("path", r.cfg.MetricsFile), zap.Error(err))
		}
	}
	_ = r.logger.Sync()
}

func versionCommand(info BuildInfo) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			fmt.Fprintf(w, "Status Timeline\n")
			fmt.Fprintf(w, "  Version:    %s\n", info.Version)
			fmt.Fprintf(w, "  Commit:     %s\n", info.Commit)
			fmt.Fprintf(w, "  Build time: %s\n", info.BuildTime)
			return nil
		},
	}
}
