package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewMaintenance(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(1 * time.Hour)
	farFuture := now.Add(2 * time.Hour)

	tests := []struct {
		name        string
		title       string
		from        time.Time
		to          time.Time
		wantErr     bool
		errContains string
	}{
		{
			name:  "valid maintenance",
			title: "Scheduled Maintenance",
			from:  future,
			to:    farFuture,
		},
		{
			name:  "zero length window",
			title: "Instant switchover",
			from:  future,
			to:    future,
		},
		{
			name:        "empty title",
			title:       "",
			from:        future,
			to:          farFuture,
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "zero start time",
			title:       "Maintenance",
			from:        time.Time{},
			to:          farFuture,
			wantErr:     true,
			errContains: "start time is required",
		},
		{
			name:        "zero end time",
			title:       "Maintenance",
			from:        future,
			to:          time.Time{},
			wantErr:     true,
			errContains: "end time is required",
		},
		{
			name:        "end before start",
			title:       "Maintenance",
			from:        farFuture,
			to:          future,
			wantErr:     true,
			errContains: "end time must be after start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMaintenance(tt.title, "Database upgrade", tt.from, tt.to, []int64{1})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Title != tt.title {
				t.Errorf("expected title %q, got %q", tt.title, m.Title)
			}
			if !m.From.Equal(tt.from) || !m.To.Equal(tt.to) {
				t.Errorf("expected window %v-%v, got %v-%v", tt.from, tt.to, m.From, m.To)
			}
		})
	}
}

func TestMaintenance_AffectsMonitor(t *testing.T) {
	m := &Maintenance{MonitorIDs: []int64{1, 3}}

	if !m.AffectsMonitor(1) {
		t.Error("expected monitor 1 to be affected")
	}
	if !m.AffectsMonitor(3) {
		t.Error("expected monitor 3 to be affected")
	}
	if m.AffectsMonitor(2) {
		t.Error("expected monitor 2 not to be affected")
	}

	unassigned := &Maintenance{}
	if unassigned.AffectsMonitor(1) {
		t.Error("window without associations should affect no monitor")
	}
}
