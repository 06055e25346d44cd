// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the game reference data: characters, swimsuits and skills.

The three collections share one row layout, [Item], and differ only by [Kind].
Lists are read from PostgreSQL, cached in Redis as raw JSON and ordered per
request with the multisort engine, so a "sort" query parameter such as
"rarity:desc,stats:desc,name" never touches the database.
*/
package catalog

import (
	"fmt"
	"strings"

	"github.com/taibuivan/vvdex/pkg/multisort"
)

// # Kinds

// Kind names one catalog collection. The value doubles as its URL segment.
type Kind string

const (
	KindCharacter Kind = "characters"
	KindSwimsuit  Kind = "swimsuits"
	KindSkill     Kind = "skills"
)

// Kinds lists every catalog collection in display order.
func Kinds() []Kind {
	return []Kind{KindCharacter, KindSwimsuit, KindSkill}
}

// ParseKind accepts the plural or singular name of a collection.
func ParseKind(raw string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, kind := range Kinds() {
		if normalized == string(kind) || normalized+"s" == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown kind %q", raw)
}

// DefaultSort orders lists by rarity, then total stats, then name.
const DefaultSort = "rarity:desc,stats:desc,name:asc"

// # Domain Entity

// Item is one character, swimsuit or skill.
type Item struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Translations map[string]string  `json:"translations"`
	Type         string             `json:"type"`
	Rarity       string             `json:"rarity"`
	Stats        map[string]float64 `json:"stats"`
	Extra        map[string]any     `json:"extra,omitempty"`
}

// # Sort Capabilities

// DefaultName implements [multisort.Named].
func (i Item) DefaultName() string { return i.Name }

// TranslatedName implements [multisort.Named]. Blank translations do not count.
func (i Item) TranslatedName(lang string) (string, bool) {
	name, ok := i.Translations[lang]
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// TypeName implements [multisort.Typed].
func (i Item) TypeName() string { return i.Type }

// RarityTier implements [multisort.Ranked].
func (i Item) RarityTier() string { return i.Rarity }

// StatValues implements [multisort.Statted].
func (i Item) StatValues() map[string]float64 { return i.Stats }

// SortField implements [multisort.Fielded].
//
// Besides "id" it resolves "stats.<name>" to a single stat and any other key
// to the matching entry of Extra.
func (i Item) SortField(key string) (any, bool) {
	if key == "id" {
		return i.ID, true
	}

	if stat, ok := strings.CutPrefix(key, "stats."); ok {
		value, found := i.Stats[stat]
		return value, found
	}

	value, ok := i.Extra[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// # Queries

// Query narrows and orders a catalog list.
type Query struct {
	// Sort is a multisort expression; empty means [DefaultSort].
	Sort string

	// Type keeps items of this type only (case-insensitive).
	Type string

	// Rarity keeps items of this tier only (case-insensitive).
	Rarity string
}

// Matches reports whether item passes the query filters.
func (q Query) Matches(item Item) bool {
	if q.Type != "" && !strings.EqualFold(strings.TrimSpace(item.Type), q.Type) {
		return false
	}
	if q.Rarity != "" && !strings.EqualFold(strings.TrimSpace(item.Rarity), q.Rarity) {
		return false
	}
	return true
}

// Criteria parses the query's sort expression.
func (q Query) Criteria() ([]multisort.Criterion[Item], error) {
	expr := q.Sort
	if strings.TrimSpace(expr) == "" {
		expr = DefaultSort
	}
	return multisort.ParseCriteria[Item](expr)
}
