// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multisort_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/pkg/multisort"
)

// card is a minimal sortable item covering every capability.
type card struct {
	id           string
	name         string
	translations map[string]string
	kind         string
	rarity       string
	stats        map[string]float64
	level        int
	released     time.Time
}

func (c card) DefaultName() string { return c.name }

func (c card) TranslatedName(lang string) (string, bool) {
	name, ok := c.translations[lang]
	return name, ok
}

func (c card) TypeName() string                { return c.kind }
func (c card) RarityTier() string              { return c.rarity }
func (c card) StatValues() map[string]float64 { return c.stats }

func (c card) SortField(key string) (any, bool) {
	switch key {
	case "id":
		return c.id, true
	case "level":
		return c.level, true
	case "released":
		if c.released.IsZero() {
			return nil, false
		}
		return c.released, true
	}
	return nil, false
}

func ids(items []card) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.id
	}
	return out
}

/*
TestSort_RarityOrdering verifies the tier weights, with unknown tiers ranking lowest.
*/
func TestSort_RarityOrdering(t *testing.T) {
	items := []card{{id: "r", rarity: "R"}, {id: "ssr", rarity: "SSR"}, {id: "none", rarity: ""}, {id: "sr", rarity: "SR"}}

	sorted := multisort.Sort(items, multisort.Asc[card](multisort.FieldRarity))
	assert.Equal(t, []string{"none", "r", "sr", "ssr"}, ids(sorted))

	sorted = multisort.Sort(items, multisort.Desc[card](multisort.FieldRarity))
	assert.Equal(t, []string{"ssr", "sr", "r", "none"}, ids(sorted))
}

/*
TestSort_UnknownRarityNeverOutranks verifies that unknown tiers weigh the same as absent ones.
*/
func TestSort_UnknownRarityNeverOutranks(t *testing.T) {
	items := []card{{id: "ur", rarity: "UR"}, {id: "r", rarity: "R"}, {id: "n", rarity: "N"}}

	sorted := multisort.Sort(items, multisort.Desc[card](multisort.FieldRarity))
	assert.Equal(t, []string{"r", "ur", "n"}, ids(sorted))
	assert.Equal(t, 3, multisort.RarityWeight(" ssr "))
}

/*
TestSort_StatsTotal verifies that stats are summed before comparison.
*/
func TestSort_StatsTotal(t *testing.T) {
	items := []card{
		{id: "five", stats: map[string]float64{"a": 5}},
		{id: "three", stats: map[string]float64{"a": 1, "b": 2}},
		{id: "empty"},
	}

	sorted := multisort.Sort(items, multisort.Asc[card](multisort.FieldStats))
	assert.Equal(t, []string{"empty", "three", "five"}, ids(sorted))

	assert.Equal(t, 3.0, multisort.StatsTotal(map[string]float64{"a": 3, "b": math.NaN(), "c": math.Inf(1)}))
}

/*
TestSort_MultiCriterionTieBreak verifies that later criteria only break ties.
*/
func TestSort_MultiCriterionTieBreak(t *testing.T) {
	items := []card{
		{id: "xb", kind: "x", name: "b"},
		{id: "xa", kind: "x", name: "a"},
		{id: "ya", kind: "y", name: "a"},
	}

	sorted := multisort.Sort(items,
		multisort.Asc[card](multisort.FieldType),
		multisort.Asc[card](multisort.FieldName),
	)
	assert.Equal(t, []string{"xa", "xb", "ya"}, ids(sorted))
}

/*
TestSort_Stability verifies that fully tied items keep their input order.
*/
func TestSort_Stability(t *testing.T) {
	items := []card{
		{id: "1", kind: "pow"},
		{id: "2", kind: "tec"},
		{id: "3", kind: "pow"},
		{id: "4", kind: "tec"},
		{id: "5", kind: "pow"},
	}

	sorted := multisort.Sort(items, multisort.Asc[card](multisort.FieldType))
	assert.Equal(t, []string{"1", "3", "5", "2", "4"}, ids(sorted))

	sorted = multisort.Sort(items, multisort.Desc[card](multisort.FieldType))
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, ids(sorted))
}

/*
TestSort_InputUntouched verifies purity: the input slice is not reordered.
*/
func TestSort_InputUntouched(t *testing.T) {
	items := []card{{id: "b", name: "b"}, {id: "a", name: "a"}}

	sorted := multisort.Sort(items, multisort.Asc[card](multisort.FieldName))

	assert.Equal(t, []string{"a", "b"}, ids(sorted))
	assert.Equal(t, []string{"b", "a"}, ids(items))
}

/*
TestSort_EdgeCases covers empty input and the no-criteria case.
*/
func TestSort_EdgeCases(t *testing.T) {
	assert.Empty(t, multisort.Sort([]card{}, multisort.Asc[card](multisort.FieldName)))
	assert.Empty(t, multisort.Sort[card](nil))

	items := []card{{id: "2"}, {id: "1"}}
	assert.Equal(t, []string{"2", "1"}, ids(multisort.Sort(items)))
}

/*
TestByName_PrefersEnglishTranslation verifies the display-name fallback chain.
*/
func TestByName_PrefersEnglishTranslation(t *testing.T) {
	kasumi := card{name: "かすみ", translations: map[string]string{"en": "Kasumi"}}
	ayane := card{name: "Ayane"}
	zack := card{name: "Zack", translations: map[string]string{"ja": "ザック"}}

	assert.Negative(t, multisort.ByName(ayane, kasumi, multisort.Ascending))
	assert.Negative(t, multisort.ByName(kasumi, zack, multisort.Ascending))
	assert.Positive(t, multisort.ByName(kasumi, zack, multisort.Descending))
}

/*
TestComparators_DirectionSymmetry verifies asc(a, b) == -desc(a, b) for every named comparator.
*/
func TestComparators_DirectionSymmetry(t *testing.T) {
	pairs := [][2]card{
		{{name: "Honoka", kind: "pow", rarity: "SSR", stats: map[string]float64{"pow": 10}}, {name: "Marie", kind: "tec", rarity: "R", stats: map[string]float64{"tec": 4}}},
		{{name: "Luna", kind: "stm", rarity: "SR"}, {name: "Luna", kind: "stm", rarity: "SR"}},
		{{name: "", rarity: "??"}, {name: "Tamaki", kind: "apl", rarity: "SSR"}},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.Equal(t, multisort.ByName(a, b, multisort.Ascending), -multisort.ByName(a, b, multisort.Descending))
		assert.Equal(t, multisort.ByType(a, b, multisort.Ascending), -multisort.ByType(a, b, multisort.Descending))
		assert.Equal(t, multisort.ByRarity(a, b, multisort.Ascending), -multisort.ByRarity(a, b, multisort.Descending))
		assert.Equal(t, multisort.ByStatsTotal(a, b, multisort.Ascending), -multisort.ByStatsTotal(a, b, multisort.Descending))
	}
}

/*
TestSort_GenericFields verifies the fallback comparison for non-semantic keys.
*/
func TestSort_GenericFields(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []card{
		{id: "c", level: 30, released: base.Add(48 * time.Hour)},
		{id: "a", level: 10},
		{id: "b", level: 20, released: base},
	}

	byLevel := multisort.Sort(items, multisort.Desc[card]("level"))
	assert.Equal(t, []string{"c", "b", "a"}, ids(byLevel))

	byRelease := multisort.Sort(items, multisort.Asc[card]("released"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(byRelease), "missing values sort first")

	byID := multisort.Sort(items, multisort.Asc[card]("id"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(byID))

	unknown := multisort.Sort(items, multisort.Asc[card]("nope"))
	assert.Equal(t, ids(items), ids(unknown))
}

/*
TestSort_CustomCompare verifies that a custom comparator overrides field dispatch.
*/
func TestSort_CustomCompare(t *testing.T) {
	items := []card{{id: "bb"}, {id: "a"}, {id: "ccc"}}

	byLength := multisort.Criterion[card]{
		Field:     "ignored",
		Direction: multisort.Descending,
		Compare: func(a, b card) int {
			return len(a.id) - len(b.id)
		},
	}

	sorted := multisort.Sort(items, byLength)
	assert.Equal(t, []string{"ccc", "bb", "a"}, ids(sorted))
}

/*
TestParseCriteria covers the expression grammar used by query params and CLI flags.
*/
func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected string
		hasError bool
	}{
		{"single_default_direction", "name", "name:asc", false},
		{"multiple_terms", "rarity:desc, stats:DESC ,name", "rarity:desc,stats:desc,name:asc", false},
		{"blank_terms_skipped", "type,,", "type:asc", false},
		{"empty_expression", "", "", false},
		{"bad_direction", "name:sideways", "", true},
		{"empty_field", ":desc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := multisort.ParseCriteria[card](tt.expr)
			if tt.hasError {
				require.Error(t, err)
				assert.ErrorIs(t, err, multisort.ErrInvalidCriteria)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, multisort.Format(criteria))
		})
	}
}

/*
TestSort_Deterministic verifies equal inputs always produce equal outputs.
*/
func TestSort_Deterministic(t *testing.T) {
	items := []card{
		{id: "1", name: "Misaki", rarity: "SR"},
		{id: "2", name: "Kokoro", rarity: "SSR"},
		{id: "3", name: "Nagisa", rarity: "SR"},
		{id: "4", name: "kokoro", rarity: "SSR"},
	}
	criteria, err := multisort.ParseCriteria[card]("rarity:desc,name")
	require.NoError(t, err)

	first := strings.Join(ids(multisort.Sort(items, criteria...)), ",")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, strings.Join(ids(multisort.Sort(items, criteria...)), ","))
	}
}
