package domain

import (
	"errors"
	"strings"
	"time"
)

// CardType selects how the per-day summary card is rendered
type CardType string

const (
	CardRequests CardType = "requests"
	CardDuration CardType = "duration"
	CardDominant CardType = "dominant"
	CardManual   CardType = "manual"
)

// BarType selects how the per-day bar is rendered
type BarType string

const (
	BarAbsolute BarType = "absolute"
	BarDominant BarType = "dominant"
	BarManual   BarType = "manual"
)

var (
	ErrInvalidCardType = errors.New("invalid card type: must be requests, duration, dominant, or manual")
	ErrInvalidBarType  = errors.New("invalid bar type: must be absolute, dominant, or manual")
)

// NewCardType creates a CardType from string with validation
func NewCardType(s string) (CardType, error) {
	normalized := CardType(strings.ToLower(strings.TrimSpace(s)))
	if !normalized.IsValid() {
		return "", ErrInvalidCardType
	}
	return normalized, nil
}

// IsValid checks if card type is one of allowed values
func (c CardType) IsValid() bool {
	switch c {
	case CardRequests, CardDuration, CardDominant, CardManual:
		return true
	}
	return false
}

// NewBarType creates a BarType from string with validation
func NewBarType(s string) (BarType, error) {
	normalized := BarType(strings.ToLower(strings.TrimSpace(s)))
	if !normalized.IsValid() {
		return "", ErrInvalidBarType
	}
	return normalized, nil
}

// IsValid checks if bar type is one of allowed values
func (b BarType) IsValid() bool {
	switch b {
	case BarAbsolute, BarDominant, BarManual:
		return true
	}
	return false
}

// RenderConfig holds the two independent rendering axes
type RenderConfig struct {
	CardType CardType `json:"cardType" yaml:"cardType"`
	BarType  BarType  `json:"barType" yaml:"barType"`
}

// DefaultRenderConfig returns the request/absolute combination
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{CardType: CardRequests, BarType: BarAbsolute}
}

// BarSegment is one stacked portion of a day's bar; Height is a percentage
type BarSegment struct {
	Status Variant `json:"status" yaml:"status"`
	Height float64 `json:"height" yaml:"height"`
}

// CardEntry is one line of a day's summary card
type CardEntry struct {
	Status Variant `json:"status" yaml:"status"`
	Value  string  `json:"value" yaml:"value"`
}

// UptimeData is the rendered row of a single day
type UptimeData struct {
	Day    time.Time    `json:"day" yaml:"day"`
	Events []Event      `json:"events" yaml:"events"`
	Bar    []BarSegment `json:"bar" yaml:"bar"`
	Card   []CardEntry  `json:"card" yaml:"card"`
}

// Status returns the worst variant shown on the day's bar
func (u UptimeData) Status() Variant {
	variants := make([]Variant, 0, len(u.Bar))
	for _, s := range u.Bar {
		if s.Height > 0 {
			variants = append(variants, s.Status)
		}
	}
	if len(variants) == 0 {
		return VariantEmpty
	}
	return Worst(variants...)
}
