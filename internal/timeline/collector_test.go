package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"status-timeline/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCollectEvents_MaintenanceScoping(t *testing.T) {
	from := testNow.Add(-48 * time.Hour)
	src := EventSources{
		Maintenances: []domain.Maintenance{
			{ID: 1, Title: "DB upgrade", From: from, To: from.Add(time.Hour), MonitorIDs: []int64{1, 2}},
			{ID: 2, Title: "Unassigned", From: from, To: from.Add(time.Hour)},
		},
	}

	tests := []struct {
		name      string
		monitorID *int64
		wantIDs   []int64
	}{
		{"associated monitor", int64Ptr(1), []int64{1}},
		{"other monitor", int64Ptr(3), nil},
		{"page scope", nil, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := CollectEvents(src, CollectOptions{MonitorID: tt.monitorID}, testNow)

			var ids []int64
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCollectEvents_MaintenanceEvent(t *testing.T) {
	from := testNow.Add(-5 * time.Hour)
	src := EventSources{Maintenances: []domain.Maintenance{
		{ID: 9, Title: "Network", From: from, To: from.Add(2 * time.Hour), MonitorIDs: []int64{1}},
	}}

	events := CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1)}, testNow)

	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, domain.EventMaintenance, e.Type)
	assert.Equal(t, domain.VariantInfo, e.Status)
	assert.Equal(t, "Network", e.Name)
	assert.True(t, e.From.Equal(from))
	require.NotNil(t, e.To)
	assert.True(t, e.To.Equal(from.Add(2*time.Hour)))
}

func TestCollectEvents_Lookback(t *testing.T) {
	recent := testNow.AddDate(0, 0, -44)
	old := testNow.AddDate(0, 0, -46)
	src := EventSources{
		Maintenances: []domain.Maintenance{
			{ID: 1, From: recent, To: recent.Add(time.Hour), MonitorIDs: []int64{1}},
			{ID: 2, From: old, To: old.Add(time.Hour), MonitorIDs: []int64{1}},
		},
		Incidents: []domain.Incident{
			{ID: 3, MonitorID: 1, CreatedAt: recent},
			{ID: 4, MonitorID: 1, CreatedAt: old},
		},
		Reports: []domain.StatusReport{
			{ID: 5, Status: domain.ReportInvestigating, MonitorIDs: []int64{1}, Updates: []domain.StatusReportUpdate{
				{Status: domain.ReportInvestigating, Date: testNow.AddDate(0, 0, -200)},
			}},
		},
	}

	events := CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1), LookbackDays: 45}, testNow)

	var ids []int64
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{1, 3, 5}, ids, "reports must survive the lookback cutoff")
}

func TestCollectEvents_ShortLookback(t *testing.T) {
	src := EventSources{Incidents: []domain.Incident{
		{ID: 1, MonitorID: 1, CreatedAt: testNow.AddDate(0, 0, -3)},
	}}

	assert.Len(t, CollectEvents(src, CollectOptions{LookbackDays: 7}, testNow), 1)
	assert.Empty(t, CollectEvents(src, CollectOptions{LookbackDays: 2}, testNow))
}

func TestCollectEvents_Incidents(t *testing.T) {
	created := testNow.Add(-3 * time.Hour)
	resolved := created.Add(time.Hour)
	src := EventSources{Incidents: []domain.Incident{
		{ID: 1, Title: "API down", MonitorID: 1, CreatedAt: created, ResolvedAt: &resolved},
		{ID: 2, MonitorID: 1, CreatedAt: created},
		{ID: 3, MonitorID: 2, CreatedAt: created},
	}}

	events := CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1)}, testNow)

	require.Len(t, events, 2)

	assert.Equal(t, "API down", events[0].Name)
	assert.Equal(t, domain.EventIncident, events[0].Type)
	assert.Equal(t, domain.VariantError, events[0].Status)
	require.NotNil(t, events[0].To)
	assert.True(t, events[0].To.Equal(resolved))

	assert.Equal(t, domain.DefaultIncidentName, events[1].Name)
	assert.Nil(t, events[1].To, "unresolved incident must stay open")
	assert.True(t, events[1].IsOngoing())
	assert.True(t, events[1].EndAt(testNow).Equal(testNow))
	assert.False(t, events[0].IsOngoing())
}

func TestCollectEvents_Reports(t *testing.T) {
	t0 := testNow.Add(-10 * time.Hour)
	t1 := t0.Add(2 * time.Hour)
	t2 := t0.Add(5 * time.Hour)

	tests := []struct {
		name       string
		status     domain.ReportStatus
		updates    []domain.StatusReportUpdate
		wantStatus domain.Variant
		wantTo     *time.Time
	}{
		{
			name:   "resolved report spans first to last update",
			status: domain.ReportResolved,
			updates: []domain.StatusReportUpdate{
				{Status: domain.ReportResolved, Date: t2},
				{Status: domain.ReportInvestigating, Date: t0},
				{Status: domain.ReportIdentified, Date: t1},
			},
			wantStatus: domain.VariantSuccess,
			wantTo:     &t2,
		},
		{
			name:   "latest update monitoring closes the event",
			status: domain.ReportIdentified,
			updates: []domain.StatusReportUpdate{
				{Status: domain.ReportMonitoring, Date: t1},
				{Status: domain.ReportInvestigating, Date: t0},
			},
			wantStatus: domain.VariantDegraded,
			wantTo:     &t1,
		},
		{
			name:   "latest update resolved on unresolved report",
			status: domain.ReportMonitoring,
			updates: []domain.StatusReportUpdate{
				{Status: domain.ReportInvestigating, Date: t0},
				{Status: domain.ReportResolved, Date: t2},
			},
			wantStatus: domain.VariantDegraded,
			wantTo:     &t2,
		},
		{
			name:   "latest update still investigating stays open",
			status: domain.ReportIdentified,
			updates: []domain.StatusReportUpdate{
				{Status: domain.ReportMonitoring, Date: t0},
				{Status: domain.ReportInvestigating, Date: t1},
			},
			wantStatus: domain.VariantDegraded,
			wantTo:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := EventSources{Reports: []domain.StatusReport{
				{ID: 1, Title: "Elevated errors", Status: tt.status, MonitorIDs: []int64{1}, Updates: tt.updates},
			}}

			events := CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1)}, testNow)

			require.Len(t, events, 1)
			e := events[0]
			assert.Equal(t, domain.EventReport, e.Type)
			assert.Equal(t, tt.wantStatus, e.Status)
			assert.True(t, e.From.Equal(t0), "event starts at the first update")
			if tt.wantTo == nil {
				assert.Nil(t, e.To)
				return
			}
			require.NotNil(t, e.To)
			assert.True(t, e.To.Equal(*tt.wantTo))
		})
	}
}

func TestCollectEvents_ReportWithoutUpdatesSkipped(t *testing.T) {
	src := EventSources{Reports: []domain.StatusReport{
		{ID: 1, Status: domain.ReportInvestigating, MonitorIDs: []int64{1}},
	}}

	assert.Empty(t, CollectEvents(src, CollectOptions{}, testNow))
}

func TestCollectEvents_ReportScoping(t *testing.T) {
	src := EventSources{Reports: []domain.StatusReport{
		{ID: 1, Status: domain.ReportInvestigating, MonitorIDs: []int64{2}, Updates: []domain.StatusReportUpdate{
			{Status: domain.ReportInvestigating, Date: testNow.Add(-time.Hour)},
		}},
	}}

	assert.Empty(t, CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1)}, testNow))
	assert.Len(t, CollectEvents(src, CollectOptions{MonitorID: int64Ptr(2)}, testNow), 1)
}

func TestCollectEvents_Order(t *testing.T) {
	at := testNow.Add(-time.Hour)
	src := EventSources{
		Incidents:    []domain.Incident{{ID: 2, MonitorID: 1, CreatedAt: at}},
		Maintenances: []domain.Maintenance{{ID: 1, From: at, To: testNow, MonitorIDs: []int64{1}}},
		Reports: []domain.StatusReport{{ID: 3, MonitorIDs: []int64{1}, Updates: []domain.StatusReportUpdate{
			{Status: domain.ReportInvestigating, Date: at},
		}}},
	}

	events := CollectEvents(src, CollectOptions{MonitorID: int64Ptr(1)}, testNow)

	require.Len(t, events, 3)
	assert.Equal(t, domain.EventMaintenance, events[0].Type)
	assert.Equal(t, domain.EventIncident, events[1].Type)
	assert.Equal(t, domain.EventReport, events[2].Type)
}
