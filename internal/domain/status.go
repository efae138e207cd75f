package domain

import (
	"errors"
	"strings"
)

// Variant is a value object representing the rendered health of a day, a bar
// segment or a card entry
type Variant string

const (
	VariantError    Variant = "error"
	VariantDegraded Variant = "degraded"
	VariantInfo     Variant = "info"
	VariantSuccess  Variant = "success"
	VariantEmpty    Variant = "empty"
)

var ErrInvalidVariant = errors.New("invalid variant: must be error, degraded, info, success, or empty")

// variantPriority is the total order used to resolve the worst of several variants.
var variantPriority = map[Variant]int{
	VariantError:    3,
	VariantDegraded: 2,
	VariantInfo:     1,
	VariantSuccess:  0,
	VariantEmpty:    -1,
}

// NewVariant creates a Variant from string with validation
func NewVariant(s string) (Variant, error) {
	normalized := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !normalized.IsValid() {
		return "", ErrInvalidVariant
	}
	return normalized, nil
}

// String returns string representation
func (v Variant) String() string {
	return string(v)
}

// IsValid checks if variant is one of allowed values
func (v Variant) IsValid() bool {
	_, ok := variantPriority[v]
	return ok
}

// Priority returns the numeric priority (error=3 ... empty=-1).
// Unknown variants rank below empty.
func (v Variant) Priority() int {
	if p, ok := variantPriority[v]; ok {
		return p
	}
	return -2
}

// Worst returns the highest-priority variant, or success when none are given
func Worst(variants ...Variant) Variant {
	if len(variants) == 0 {
		return VariantSuccess
	}
	worst := variants[0]
	for _, v := range variants[1:] {
		if v.Priority() > worst.Priority() {
			worst = v
		}
	}
	return worst
}
