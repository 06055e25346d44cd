// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multisort

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DisplayLanguage is the translation preferred when resolving display names.
const DisplayLanguage = "en"

// rarityWeights ranks the known tiers. Unknown tiers weigh 0.
var rarityWeights = map[string]int{
	"SSR": 3,
	"SR":  2,
	"R":   1,
}

// # Named Comparators

// ByName compares display names using English collation.
//
// The display name is the English translation when present, otherwise the
// default name.
func ByName[T Named](a, b T, direction Direction) int {
	collator := acquireCollator()
	defer releaseCollator(collator)
	return direction.apply(collator.compare(displayName(a), displayName(b)))
}

// ByType compares type names using English collation.
func ByType[T Typed](a, b T, direction Direction) int {
	collator := acquireCollator()
	defer releaseCollator(collator)
	return direction.apply(collator.compare(a.TypeName(), b.TypeName()))
}

// ByRarity compares rarity weights (SSR > SR > R > anything else).
func ByRarity[T Ranked](a, b T, direction Direction) int {
	return direction.apply(compareNumbers(
		float64(RarityWeight(a.RarityTier())),
		float64(RarityWeight(b.RarityTier())),
	))
}

// ByStatsTotal compares the sum of all stat values.
func ByStatsTotal[T Statted](a, b T, direction Direction) int {
	return direction.apply(compareNumbers(StatsTotal(a.StatValues()), StatsTotal(b.StatValues())))
}

// RarityWeight maps a rarity tier to its numeric weight.
func RarityWeight(tier string) int {
	return rarityWeights[strings.ToUpper(strings.TrimSpace(tier))]
}

// StatsTotal sums stat values. NaN and infinite values count as zero.
func StatsTotal(stats map[string]float64) float64 {
	total := 0.0
	for _, value := range stats {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		total += value
	}
	return total
}

func displayName(item Named) string {
	if translated, ok := item.TranslatedName(DisplayLanguage); ok && translated != "" {
		return translated
	}
	return item.DefaultName()
}

// # Generic Comparison

// compareFields compares arbitrary attributes exposed through [Fielded].
// Items without the capability, or without the field, sort first.
func compareFields(a, b any, key string, collator *collator) int {
	left, okLeft := fieldValue(a, key)
	right, okRight := fieldValue(b, key)

	switch {
	case !okLeft && !okRight:
		return 0
	case !okLeft:
		return -1
	case !okRight:
		return 1
	}

	if l, ok := toFloat(left); ok {
		if r, ok := toFloat(right); ok {
			return compareNumbers(l, r)
		}
	}

	if l, ok := left.(time.Time); ok {
		if r, ok := right.(time.Time); ok {
			return l.Compare(r)
		}
	}

	return collator.compare(toString(left), toString(right))
}

func fieldValue(item any, key string) (any, bool) {
	fielded, ok := item.(Fielded)
	if !ok {
		return nil, false
	}
	value, ok := fielded.SortField(key)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func compareNumbers(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// # Collation

// collator wraps [collate.Collator], which keeps internal buffers and is not
// safe for concurrent use.
type collator struct {
	inner *collate.Collator
}

func (c *collator) compare(a, b string) int {
	return c.inner.CompareString(a, b)
}

var collatorPool = sync.Pool{
	New: func() any {
		return &collator{inner: collate.New(language.English)}
	},
}

func acquireCollator() *collator {
	return collatorPool.Get().(*collator)
}

func releaseCollator(c *collator) {
	collatorPool.Put(c)
}
