package domain

import (
	"time"
)

// StatusData holds the request outcome tallies of one monitor for one UTC day
type StatusData struct {
	Day       time.Time `json:"day" yaml:"day"`
	Count     int64     `json:"count" yaml:"count"`
	OK        int64     `json:"ok" yaml:"ok"`
	Degraded  int64     `json:"degraded" yaml:"degraded"`
	Error     int64     `json:"error" yaml:"error"`
	MonitorID int64     `json:"monitorId" yaml:"monitorId"`
}

// Total returns the sum of the three outcome buckets
func (d StatusData) Total() int64 {
	return d.OK + d.Degraded + d.Error
}

// Variant derives the day's status from its request tallies alone
func (d StatusData) Variant() Variant {
	switch {
	case d.Error > 0:
		return VariantError
	case d.Degraded > 0:
		return VariantDegraded
	case d.OK > 0:
		return VariantSuccess
	}
	return VariantEmpty
}
