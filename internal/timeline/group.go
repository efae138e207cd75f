package timeline

import (
	"time"

	"status-timeline/internal/domain"
)

// Group is one bucket of a grouping, in first-seen key order
type Group[K comparable, V any] struct {
	Key   K
	Items []V
}

// TypeGroup holds the events of one type
type TypeGroup = Group[domain.EventType, domain.Event]

// MonitorRows holds the metric rows of one monitor
type MonitorRows = Group[int64, domain.StatusData]

func fold[T, A any](items []T, acc A, fn func(A, T) A) A {
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

func groupBy[K comparable, V any](items []V, key func(V) K) []Group[K, V] {
	return fold(items, []Group[K, V](nil), func(groups []Group[K, V], item V) []Group[K, V] {
		k := key(item)
		for i := range groups {
			if groups[i].Key == k {
				groups[i].Items = append(groups[i].Items, item)
				return groups
			}
		}
		return append(groups, Group[K, V]{Key: k, Items: []V{item}})
	})
}

// GroupByType partitions events by their type
func GroupByType(events []domain.Event) []TypeGroup {
	return groupBy(events, func(e domain.Event) domain.EventType { return e.Type })
}

// GroupByMonitor partitions metric rows by monitor
func GroupByMonitor(rows []domain.StatusData) []MonitorRows {
	return groupBy(rows, func(r domain.StatusData) int64 { return r.MonitorID })
}

// SumByDay adds up the tallies of all rows sharing a UTC day, e.g. the rows
// of every monitor on a page. The result carries monitor ID 0.
func SumByDay(rows []domain.StatusData) []domain.StatusData {
	groups := groupBy(rows, func(r domain.StatusData) time.Time { return StartOfDay(r.Day) })

	sums := make([]domain.StatusData, 0, len(groups))
	for _, g := range groups {
		sums = append(sums, fold(g.Items, domain.StatusData{Day: g.Key}, func(sum domain.StatusData, r domain.StatusData) domain.StatusData {
			sum.Count += r.Count
			sum.OK += r.OK
			sum.Degraded += r.Degraded
			sum.Error += r.Error
			return sum
		}))
	}
	return sums
}
