// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/core/catalog"
	"github.com/taibuivan/vvdex/internal/platform/apiclient"
	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/config"
	"github.com/taibuivan/vvdex/pkg/multisort"
)

type memoryRepository struct {
	items map[catalog.Kind][]catalog.Item
	calls int
	err   error
}

func (repository *memoryRepository) List(_ context.Context, kind catalog.Kind) ([]catalog.Item, error) {
	repository.calls++
	if repository.err != nil {
		return nil, repository.err
	}
	return repository.items[kind], nil
}

type memoryCache struct {
	items   map[catalog.Kind][]catalog.Item
	failGet bool
}

func (cache *memoryCache) Get(_ context.Context, kind catalog.Kind) ([]catalog.Item, bool, error) {
	if cache.failGet {
		return nil, false, errors.New("connection refused")
	}
	items, ok := cache.items[kind]
	return items, ok, nil
}

func (cache *memoryCache) Set(_ context.Context, kind catalog.Kind, items []catalog.Item) error {
	if cache.items == nil {
		cache.items = map[catalog.Kind][]catalog.Item{}
	}
	cache.items[kind] = items
	return nil
}

func swimsuits() []catalog.Item {
	return []catalog.Item{
		{ID: "s1", Name: "Blue Marine", Type: "pow", Rarity: "SR", Stats: map[string]float64{"pow": 1000, "tec": 500}},
		{ID: "s2", Name: "Venus Rose", Type: "tec", Rarity: "SSR", Stats: map[string]float64{"pow": 900, "tec": 900}},
		{ID: "s3", Name: "Aqua Sky", Type: "stm", Rarity: "SSR", Stats: map[string]float64{"pow": 900, "tec": 900}, Translations: map[string]string{"en": "Aqua Heaven"}},
		{ID: "s4", Name: "Beach Day", Type: "pow", Rarity: "r", Stats: map[string]float64{"pow": 300}, Extra: map[string]any{"event": "Summer"}},
		{ID: "s5", Name: "Coral", Type: "tec", Rarity: "SSR", Stats: map[string]float64{"pow": 2000, "tec": 100}},
	}
}

func newService(repo catalog.Repository, cache catalog.Cache) *catalog.Service {
	return catalog.NewService(repo, cache, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func itemIDs(items []catalog.Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

/*
TestService_List_DefaultSort verifies rarity, then stats total, then name ordering.
*/
func TestService_List_DefaultSort(t *testing.T) {
	repo := &memoryRepository{items: map[catalog.Kind][]catalog.Item{catalog.KindSwimsuit: swimsuits()}}
	service := newService(repo, nil)

	items, err := service.List(context.Background(), catalog.KindSwimsuit, catalog.Query{})
	require.NoError(t, err)

	// s5 (SSR, 2100) > s3 "Aqua Heaven" / s2 "Venus Rose" (SSR, 1800) > s1 (SR) > s4 (R)
	assert.Equal(t, []string{"s5", "s3", "s2", "s1", "s4"}, itemIDs(items))
}

/*
TestService_List_Queries covers filters, custom sorts and invalid expressions.
*/
func TestService_List_Queries(t *testing.T) {
	tests := []struct {
		name  string
		query catalog.Query
		want  []string
		code  int
	}{
		{"type_filter", catalog.Query{Type: "POW"}, []string{"s1", "s4"}, 0},
		{"rarity_filter_case_insensitive", catalog.Query{Rarity: "R"}, []string{"s4"}, 0},
		{"single_stat", catalog.Query{Sort: "stats.tec:desc,id"}, []string{"s2", "s3", "s1", "s5", "s4"}, 0},
		{"name_asc", catalog.Query{Sort: "name"}, []string{"s3", "s4", "s1", "s5", "s2"}, 0},
		{"no_match", catalog.Query{Type: "cute"}, []string{}, 0},
		{"bad_direction", catalog.Query{Sort: "rarity:sideways"}, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepository{items: map[catalog.Kind][]catalog.Item{catalog.KindSwimsuit: swimsuits()}}
			service := newService(repo, nil)

			items, err := service.List(context.Background(), catalog.KindSwimsuit, tt.query)
			if tt.code != 0 {
				assert.True(t, apperr.HasStatus(err, tt.code))
				assert.Zero(t, repo.calls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, itemIDs(items))
		})
	}
}

/*
TestService_Cache verifies read-through caching and degradation on cache failure.
*/
func TestService_Cache(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{items: map[catalog.Kind][]catalog.Item{catalog.KindCharacter: {{ID: "kasumi", Name: "Kasumi"}}}}
	cache := &memoryCache{}
	service := newService(repo, cache)

	for i := 0; i < 3; i++ {
		items, err := service.List(ctx, catalog.KindCharacter, catalog.Query{})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}
	assert.Equal(t, 1, repo.calls)

	cache.failGet = true
	_, err := service.List(ctx, catalog.KindCharacter, catalog.Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

/*
TestService_Get maps unknown ids to a kind-specific not found.
*/
func TestService_Get(t *testing.T) {
	repo := &memoryRepository{items: map[catalog.Kind][]catalog.Item{catalog.KindSwimsuit: swimsuits()}}
	service := newService(repo, nil)

	item, err := service.Get(context.Background(), catalog.KindSwimsuit, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Venus Rose", item.Name)

	_, err = service.Get(context.Background(), catalog.KindSwimsuit, "missing")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Swimsuit not found", ae.Message)
}

/*
TestItem_SortField verifies stat and extra lookups used by generic criteria.
*/
func TestItem_SortField(t *testing.T) {
	item := swimsuits()[3]

	value, ok := item.SortField("stats.pow")
	assert.True(t, ok)
	assert.Equal(t, 300.0, value)

	_, ok = item.SortField("stats.tec")
	assert.False(t, ok)

	value, ok = item.SortField("event")
	assert.True(t, ok)
	assert.Equal(t, "Summer", value)

	_, ok = item.SortField("missing")
	assert.False(t, ok)

	sorted := multisort.Sort(swimsuits(), multisort.Asc[catalog.Item]("event"))
	assert.Equal(t, "s4", sorted[4].ID, "items with the field sort after those without")
}

/*
TestParseKind accepts plural and singular names.
*/
func TestParseKind(t *testing.T) {
	kind, err := catalog.ParseKind("Swimsuit")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSwimsuit, kind)

	kind, err = catalog.ParseKind("skills")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSkill, kind)

	_, err = catalog.ParseKind("weapons")
	assert.Error(t, err)
}

/*
TestHandler_ListAndFetch serves a sorted page over HTTP and reads it back with the client.
*/
func TestHandler_ListAndFetch(t *testing.T) {
	repo := &memoryRepository{items: map[catalog.Kind][]catalog.Item{catalog.KindSwimsuit: swimsuits()}}
	router := chi.NewRouter()
	catalog.NewHandler(newService(repo, nil)).RegisterRoutes(router)

	server := httptest.NewServer(router)
	defer server.Close()

	client := apiclient.New(config.ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, nil)
	ctx := context.Background()

	items, err := catalog.Fetch(ctx, client, catalog.KindSwimsuit, catalog.Query{Rarity: "SSR", Sort: "stats:desc,name"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"s5", "s3"}, itemIDs(items))

	_, err = catalog.Fetch(ctx, client, catalog.KindSwimsuit, catalog.Query{Sort: ":desc"}, 0)
	assert.True(t, apperr.HasStatus(err, http.StatusBadRequest))

	response, err := http.Get(server.URL + "/skills/unknown")
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}
