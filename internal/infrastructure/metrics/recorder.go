package metrics

import (
	"fmt"
	"status-timeline/internal/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "status_timeline"

// Recorder collects rendering metrics in its own registry. It observes the
// timeline engine and the timeline service.
type Recorder struct {
	registry *prometheus.Registry

	renders          *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	eventsCollected  *prometheus.CounterVec
	incidentBundles  prometheus.Counter
	incidentsBundled prometheus.Counter
	monitorsRendered prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Number of page renderings by result.",
		}, []string{"result"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a page.",
			Buckets:   prometheus.DefBuckets,
		}),
		eventsCollected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_collected_total",
			Help:      "Number of canonical events collected by type.",
		}, []string{"type"}),
		incidentBundles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incident_bundles_total",
			Help:      "Number of days whose incidents were collapsed into one bundle event.",
		}),
		incidentsBundled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_bundled_total",
			Help:      "Number of incidents replaced by bundle events.",
		}),
		monitorsRendered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monitors_rendered",
			Help:      "Number of monitors in the last rendering.",
		}),
	}

	r.registry.MustRegister(r.renders, r.renderDuration, r.eventsCollected, r.incidentBundles, r.incidentsBundled,
		r.monitorsRendered)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RenderCompleted records the result and duration of a page rendering
func (r *Recorder) RenderCompleted(result string, elapsed time.Duration) {
	r.renders.WithLabelValues(result).Inc()
	r.renderDuration.Observe(elapsed.Seconds())
}

// MonitorsRendered records how many monitors the last rendering contained
func (r *Recorder) MonitorsRendered(n int) {
	r.monitorsRendered.Set(float64(n))
}

// EventsCollected counts collected events per type
func (r *Recorder) EventsCollected(events []domain.Event) {
	for _, e := range events {
		r.eventsCollected.WithLabelValues(string(e.Type)).Inc()
	}
}

// IncidentsBundled counts a bundled day and the incidents it replaced
func (r *Recorder) IncidentsBundled(_ time.Time, count int) {
	r.incidentBundles.Inc()
	r.incidentsBundled.Add(float64(count))
}

// WriteTextfile writes all metrics to path in the text exposition format, for
// the node exporter textfile collector
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
