// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/core/document"
	"github.com/taibuivan/vvdex/pkg/multisort"
)

/*
TestDocument_UnmarshalJSON_PublishedAlias verifies that both spellings of the
publication flag collapse into Published, with is_published taking precedence.
*/
func TestDocument_UnmarshalJSON_PublishedAlias(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"canonical_true", `{"id":"1","is_published":true}`, true},
		{"legacy_true", `{"id":"1","isPublished":true}`, true},
		{"canonical_wins", `{"id":"1","is_published":false,"isPublished":true}`, false},
		{"canonical_wins_true", `{"id":"1","is_published":true,"isPublished":false}`, true},
		{"absent", `{"id":"1"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc document.Document
			require.NoError(t, json.Unmarshal([]byte(tt.body), &doc))
			assert.Equal(t, "1", doc.ID)
			assert.Equal(t, tt.want, doc.Published)

			var draft document.Draft
			require.NoError(t, json.Unmarshal([]byte(tt.body), &draft))
			assert.Equal(t, tt.want, draft.Published)
		})
	}
}

/*
TestDocument_MarshalJSON_CanonicalOnly verifies that encoding never emits the legacy alias.
*/
func TestDocument_MarshalJSON_CanonicalOnly(t *testing.T) {
	encoded, err := json.Marshal(document.Document{ID: "1", Published: true})
	require.NoError(t, err)

	assert.Contains(t, string(encoded), `"is_published":true`)
	assert.NotContains(t, string(encoded), "isPublished")
}

/*
TestPatch_UnmarshalJSON distinguishes an absent flag from an explicit false.
*/
func TestPatch_UnmarshalJSON(t *testing.T) {
	var absent document.Patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New"}`), &absent))
	assert.Nil(t, absent.Published)
	assert.False(t, absent.IsEmpty())

	var legacy document.Patch
	require.NoError(t, json.Unmarshal([]byte(`{"isPublished":false}`), &legacy))
	require.NotNil(t, legacy.Published)
	assert.False(t, *legacy.Published)

	var empty document.Patch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsEmpty())
}

/*
TestNormalize verifies trimming and tag clean-up.
*/
func TestNormalize(t *testing.T) {
	doc := document.Normalize(document.Document{
		Title:    "  Beginner guide ",
		Category: " guides",
		Tags:     []string{" swimsuit", "", "swimsuit", "event "},
	})

	assert.Equal(t, "Beginner guide", doc.Title)
	assert.Equal(t, "guides", doc.Category)
	assert.Equal(t, []string{"swimsuit", "event"}, doc.Tags)

	assert.NotNil(t, document.Normalize(document.Document{}).Tags)
}

/*
TestDocument_Sortable verifies that documents plug into the sort engine.
*/
func TestDocument_Sortable(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	docs := []document.Document{
		{ID: "a", Title: "Zack island", Category: "events", CreatedAt: base},
		{ID: "b", Title: "beach volley", Category: "guides", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", Title: "Aloha", Category: "events", CreatedAt: base.Add(time.Hour)},
	}

	byName := multisort.Sort(docs, multisort.Asc[document.Document](multisort.FieldName))
	assert.Equal(t, []string{"c", "b", "a"}, ids(byName))

	byCategoryThenNewest := multisort.Sort(docs,
		multisort.Asc[document.Document](multisort.FieldType),
		multisort.Desc[document.Document](document.FieldCreatedAt),
	)
	assert.Equal(t, []string{"c", "a", "b"}, ids(byCategoryThenNewest))
}

func ids(docs []document.Document) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.ID)
	}
	return out
}
