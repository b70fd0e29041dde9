// Package collection provides generic, functional-style helpers for slices —
// Map, Filter, First, Contains, SumBy, and an insertion-ordered GroupByOrdered.
//
// Usage:
//
//	names := collection.Map(items, func(i models.MenuItem) string { return i.Name })
//	bar := collection.Filter(items, func(i models.MenuItem) bool { return i.Department == "BAR" })
//	groups := collection.GroupByOrdered(lines, func(l Line) string { return l.MenuItemID })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element matches fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// SumBy adds up fn over every element of s.
func SumBy[T any](s []T, fn func(T) float64) float64 {
	var total float64
	for _, v := range s {
		total += fn(v)
	}
	return total
}

// Group is one bucket produced by GroupByOrdered.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupByOrdered buckets s by key, preserving the order in which each key
// first appears. Unlike a map-based GroupBy the result is deterministic,
// which display code depends on.
func GroupByOrdered[K comparable, T any](s []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int, len(s))
	var groups []Group[K, T]
	for _, v := range s {
		k := key(v)
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, v)
	}
	return groups
}
