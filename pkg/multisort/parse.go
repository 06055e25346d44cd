// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multisort

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCriteria is returned when a criteria expression cannot be parsed.
var ErrInvalidCriteria = errors.New("multisort: invalid criteria")

// ParseDirection parses "asc" or "desc" (case-insensitive). Empty means ascending.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: unknown direction %q", ErrInvalidCriteria, raw)
}

// ParseCriteria parses a comma-separated list of "field[:direction]" terms.
//
// Example:
//
//	multisort.ParseCriteria[catalog.Item]("rarity:desc, stats:desc, name")
//
// Blank terms are skipped. An empty expression yields no criteria.
func ParseCriteria[T any](expr string) ([]Criterion[T], error) {
	var criteria []Criterion[T]

	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		field, rawDirection, _ := strings.Cut(term, ":")
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, fmt.Errorf("%w: empty field in %q", ErrInvalidCriteria, term)
		}

		direction, err := ParseDirection(rawDirection)
		if err != nil {
			return nil, err
		}

		criteria = append(criteria, Criterion[T]{Field: field, Direction: direction})
	}

	return criteria, nil
}

// Format renders criteria back into the expression form accepted by [ParseCriteria].
func Format[T any](criteria []Criterion[T]) string {
	terms := make([]string, 0, len(criteria))
	for _, criterion := range criteria {
		terms = append(terms, criterion.Field+":"+criterion.Direction.String())
	}
	return strings.Join(terms, ",")
}
