package metrics

import (
	"os"
	"path/filepath"
	"status-timeline/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()

	r.RenderCompleted("success", 150*time.Millisecond)
	r.RenderCompleted("success", 50*time.Millisecond)
	r.RenderCompleted("error", time.Millisecond)
	r.MonitorsRendered(3)
	r.EventsCollected([]domain.Event{
		{Type: domain.EventIncident},
		{Type: domain.EventIncident},
		{Type: domain.EventReport},
	})
	r.IncidentsBundled(time.Now(), 5)

	path := filepath.Join(t.TempDir(), "status_timeline.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, `status_timeline_renders_total{result="success"} 2`)
	assert.Contains(t, out, `status_timeline_renders_total{result="error"} 1`)
	assert.Contains(t, out, `status_timeline_render_duration_seconds_count 3`)
	assert.Contains(t, out, `status_timeline_events_collected_total{type="incident"} 2`)
	assert.Contains(t, out, `status_timeline_events_collected_total{type="report"} 1`)
	assert.Contains(t, out, `status_timeline_incident_bundles_total 1`)
	assert.Contains(t, out, `status_timeline_incidents_bundled_total 5`)
	assert.Contains(t, out, `status_timeline_monitors_rendered 3`)
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.MonitorsRendered(1)

	families, err := b.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "status_timeline_monitors_rendered" {
			assert.Zero(t, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	r := NewRecorder()

	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "metrics.prom"))
	assert.Error(t, err)
}
