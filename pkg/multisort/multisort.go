// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package multisort orders homogeneous lists by a chain of criteria.

Each criterion is either a semantic key (name, type, rarity, stats) backed by a
capability interface, or an arbitrary field key resolved through [Fielded].
Criteria are evaluated in order and the first non-zero comparison wins. Items
that tie on every criterion keep their original relative order.

Usage:

	criteria, err := multisort.ParseCriteria[catalog.Item]("rarity:desc,stats:desc,name")
	if err != nil {
	    return err
	}
	sorted := multisort.Sort(items, criteria...)

The package is pure: no I/O, no hidden state. The input slice is never modified.
*/
package multisort

import (
	"slices"
	"strings"
)

// # Direction

// Direction is the ordering applied to a single criterion.
type Direction int

const (
	// Ascending orders smaller values first.
	Ascending Direction = iota

	// Descending orders larger values first.
	Descending
)

// String returns the query-string form of the direction ("asc" or "desc").
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// apply inverts a raw ascending comparison result for descending criteria.
func (d Direction) apply(result int) int {
	if d == Descending {
		return -result
	}
	return result
}

// # Semantic Fields

const (
	FieldName   = "name"
	FieldType   = "type"
	FieldRarity = "rarity"
	FieldStats  = "stats"
)

// # Capabilities

// Named is implemented by items that carry a default name and optional translations.
type Named interface {
	DefaultName() string
	TranslatedName(lang string) (string, bool)
}

// Typed is implemented by items that belong to a named type (e.g. "pow", "tec").
type Typed interface {
	TypeName() string
}

// Ranked is implemented by items with a rarity tier (R, SR, SSR).
type Ranked interface {
	RarityTier() string
}

// Statted is implemented by items with numeric stats.
type Statted interface {
	StatValues() map[string]float64
}

// Fielded exposes arbitrary attributes for the generic comparison fallback.
//
// The returned value should be a string, a numeric type, a bool or a [time.Time].
// Other values are compared by their formatted string form.
type Fielded interface {
	SortField(key string) (any, bool)
}

// # Criterion

// Criterion is a single ordering rule in a multi-step sort.
type Criterion[T any] struct {
	// Field is a semantic key (name, type, rarity, stats) or an arbitrary field key.
	Field string

	// Direction is applied after the raw comparison.
	Direction Direction

	// Compare, when set, replaces field dispatch. It must return a raw ascending
	// result (negative, zero, positive).
	Compare func(a, b T) int
}

// Asc builds an ascending criterion for field.
func Asc[T any](field string) Criterion[T] {
	return Criterion[T]{Field: field, Direction: Ascending}
}

// Desc builds a descending criterion for field.
func Desc[T any](field string) Criterion[T] {
	return Criterion[T]{Field: field, Direction: Descending}
}

// # Sorting

// Sort returns a new slice containing items ordered by criteria.
//
// The sort is stable. With no criteria the copy keeps the input order.
func Sort[T any](items []T, criteria ...Criterion[T]) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	if len(sorted) < 2 || len(criteria) == 0 {
		return sorted
	}

	collator := acquireCollator()
	defer releaseCollator(collator)

	comparators := make([]func(a, b T) int, len(criteria))
	for i, criterion := range criteria {
		comparators[i] = resolve(criterion, collator)
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		for _, compare := range comparators {
			if result := compare(a, b); result != 0 {
				return result
			}
		}
		return 0
	})

	return sorted
}

// resolve turns a criterion into a direction-aware comparator.
//
// Capabilities are checked per pair so interface-typed slices with mixed
// implementations still fall through to the generic comparison.
func resolve[T any](criterion Criterion[T], collator *collator) func(a, b T) int {
	direction := criterion.Direction

	if criterion.Compare != nil {
		custom := criterion.Compare
		return func(a, b T) int {
			return direction.apply(sign(custom(a, b)))
		}
	}

	field := strings.ToLower(strings.TrimSpace(criterion.Field))

	return func(a, b T) int {
		if result, ok := compareSemantic(any(a), any(b), field, collator); ok {
			return direction.apply(result)
		}
		return direction.apply(compareFields(any(a), any(b), criterion.Field, collator))
	}
}

// compareSemantic dispatches to the named comparators. It reports false when
// the field is not semantic or the items lack the capability.
func compareSemantic(a, b any, field string, collator *collator) (int, bool) {
	switch field {
	case FieldName:
		left, okLeft := a.(Named)
		right, okRight := b.(Named)
		if okLeft && okRight {
			return collator.compare(displayName(left), displayName(right)), true
		}
	case FieldType:
		left, okLeft := a.(Typed)
		right, okRight := b.(Typed)
		if okLeft && okRight {
			return collator.compare(left.TypeName(), right.TypeName()), true
		}
	case FieldRarity:
		left, okLeft := a.(Ranked)
		right, okRight := b.(Ranked)
		if okLeft && okRight {
			return compareNumbers(float64(RarityWeight(left.RarityTier())), float64(RarityWeight(right.RarityTier()))), true
		}
	case FieldStats:
		left, okLeft := a.(Statted)
		right, okRight := b.(Statted)
		if okLeft && okRight {
			return compareNumbers(StatsTotal(left.StatValues()), StatsTotal(right.StatValues())), true
		}
	}
	return 0, false
}

// sign normalizes an arbitrary comparator result to -1, 0 or 1.
func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	}
	return 0
}
