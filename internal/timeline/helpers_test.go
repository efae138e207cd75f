package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// testNow is the fixed instant all timeline tests render at
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return StartOfDay(testNow).AddDate(0, 0, offset)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func event(id int64, typ domain.EventType, from time.Time, d time.Duration) domain.Event {
	status := map[domain.EventType]domain.Variant{
		domain.EventIncident:    domain.VariantError,
		domain.EventReport:      domain.VariantDegraded,
		domain.EventMaintenance: domain.VariantInfo,
	}[typ]
	return domain.Event{ID: id, Name: string(typ), From: from, To: ptr(from.Add(d)), Type: typ, Status: status}
}

func incident(id int64, from time.Time, d time.Duration) domain.Event {
	return event(id, domain.EventIncident, from, d)
}

func report(id int64, from time.Time, d time.Duration) domain.Event {
	return event(id, domain.EventReport, from, d)
}

func maintenance(id int64, from time.Time, d time.Duration) domain.Event {
	return event(id, domain.EventMaintenance, from, d)
}

func statuses(segments []domain.BarSegment) []domain.Variant {
	out := make([]domain.Variant, 0, len(segments))
	for _, s := range segments {
		out = append(out, s.Status)
	}
	return out
}
