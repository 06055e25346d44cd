// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/core/updatelog"
	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/store"
	"github.com/taibuivan/vvdex/pkg/multisort"
	"github.com/taibuivan/vvdex/pkg/pointer"
)

// memoryRepository is an in-process [updatelog.Repository].
type memoryRepository struct {
	mu   sync.Mutex
	logs []*updatelog.UpdateLog
}

func (repository *memoryRepository) List(_ context.Context, filter updatelog.Filter, limit, offset int) ([]*updatelog.UpdateLog, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := make([]*updatelog.UpdateLog, 0)
	for _, log := range repository.logs {
		if filter.Version != "" && log.Version != filter.Version {
			continue
		}
		clone := *log
		matched = append(matched, &clone)
	}
	slices.SortStableFunc(matched, func(a, b *updatelog.UpdateLog) int { return b.ReleasedAt.Compare(a.ReleasedAt) })

	total := len(matched)
	start := min(offset, total)
	return matched[start:min(start+limit, total)], total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*updatelog.UpdateLog, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, log := range repository.logs {
		if log.ID == id {
			clone := *log
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Update log")
}

func (repository *memoryRepository) Create(_ context.Context, log *updatelog.UpdateLog) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	clone := *log
	repository.logs = append(repository.logs, &clone)
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, log *updatelog.UpdateLog) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, existing := range repository.logs {
		if existing.ID == log.ID {
			clone := *log
			repository.logs[i] = &clone
			return nil
		}
	}
	return apperr.NotFound("Update log")
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, existing := range repository.logs {
		if existing.ID == id {
			repository.logs = slices.Delete(repository.logs, i, i+1)
			return nil
		}
	}
	return apperr.NotFound("Update log")
}

func newService() (*updatelog.Service, *memoryRepository) {
	repo := &memoryRepository{}
	return updatelog.NewService(repo, slog.New(slog.NewJSONHandler(io.Discard, nil))), repo
}

/*
TestUpdateLog_PublishedAlias verifies alias decoding on the entity and the patch.
*/
func TestUpdateLog_PublishedAlias(t *testing.T) {
	var log updatelog.UpdateLog
	require.NoError(t, json.Unmarshal([]byte(`{"version":"1.2","isPublished":true}`), &log))
	assert.True(t, log.Published)

	var patch updatelog.Patch
	require.NoError(t, json.Unmarshal([]byte(`{"is_published":false,"isPublished":true}`), &patch))
	require.NotNil(t, patch.Published)
	assert.False(t, *patch.Published)
}

/*
TestService_CreateUpdateLog covers defaults and the version rule.
*/
func TestService_CreateUpdateLog(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	_, err := service.CreateUpdateLog(ctx, updatelog.Draft{Title: "Summer patch"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, updatelog.FieldVersion, ae.Details[0].Field)

	_, err = service.CreateUpdateLog(ctx, updatelog.Draft{Version: "1.0.0-summer-festival-limited-edition", Title: "x"})
	assert.True(t, apperr.HasStatus(err, 400))

	released := time.Date(2026, 7, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))
	created, err := service.CreateUpdateLog(ctx, updatelog.Draft{Version: " 1.2 ", Title: "Summer patch", ReleasedAt: &released})
	require.NoError(t, err)
	assert.Equal(t, "1.2", created.Version)
	assert.Equal(t, updatelog.DefaultCategory, created.Category)
	assert.True(t, created.ReleasedAt.Equal(released))
	assert.Equal(t, time.UTC, created.ReleasedAt.Location())

	defaulted, err := service.CreateUpdateLog(ctx, updatelog.Draft{Version: "1.3", Title: "Autumn patch"})
	require.NoError(t, err)
	assert.False(t, defaulted.ReleasedAt.IsZero())
}

/*
TestService_UpdateUpdateLog verifies patch merging and not-found handling.
*/
func TestService_UpdateUpdateLog(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.CreateUpdateLog(ctx, updatelog.Draft{Version: "1.2", Title: "Summer patch"})
	require.NoError(t, err)

	updated, err := service.UpdateUpdateLog(ctx, created.ID, updatelog.Patch{Version: pointer.To("1.2.1")})
	require.NoError(t, err)
	assert.Equal(t, "1.2.1", updated.Version)
	assert.Equal(t, "Summer patch", updated.Title)

	_, err = service.UpdateUpdateLog(ctx, created.ID, updatelog.Patch{Version: pointer.To("")})
	assert.True(t, apperr.HasStatus(err, 400))

	require.NoError(t, service.DeleteUpdateLog(ctx, created.ID))
	_, err = service.UpdateUpdateLog(ctx, created.ID, updatelog.Patch{Title: pointer.To("x")})
	assert.True(t, apperr.HasStatus(err, 404))
}

// recordingAPI captures the list options the store sends.
type recordingAPI struct {
	options store.ListOptions
	items   []updatelog.UpdateLog
}

func (api *recordingAPI) List(_ context.Context, options store.ListOptions) ([]updatelog.UpdateLog, error) {
	api.options = options
	return api.items, nil
}

func (api *recordingAPI) Create(context.Context, updatelog.Draft) (updatelog.UpdateLog, error) {
	return updatelog.UpdateLog{}, apperr.Forbidden("read only")
}

func (api *recordingAPI) Update(context.Context, string, updatelog.Patch) (updatelog.UpdateLog, error) {
	return updatelog.UpdateLog{}, apperr.Forbidden("read only")
}

func (api *recordingAPI) Delete(context.Context, string) error {
	return apperr.Forbidden("read only")
}

/*
TestNewStore_Defaults verifies the refresh options and item normalization.
*/
func TestNewStore_Defaults(t *testing.T) {
	api := &recordingAPI{items: []updatelog.UpdateLog{
		{ID: "1", Version: " 1.0 ", Title: "Launch", ReleasedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Version: "1.1", Title: "Spring", Category: "events", ReleasedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}}

	logs, err := updatelog.NewStore(api, 20, nil)
	require.NoError(t, err)

	state := logs.Refresh(context.Background())
	assert.Equal(t, store.ListOptions{SortBy: updatelog.FieldReleasedAt, SortOrder: "desc", Limit: 20}, api.options)
	require.Len(t, state.Items, 2)
	assert.Equal(t, "1.0", state.Items[0].Version)
	assert.Equal(t, updatelog.DefaultCategory, state.Items[0].Category)
	assert.Len(t, logs.ByCategory(updatelog.DefaultCategory), 1)

	newest := multisort.Sort(state.Items, multisort.Desc[updatelog.UpdateLog](updatelog.FieldReleasedAt))
	assert.Equal(t, "2", newest[0].ID)

	_, err = logs.Add(context.Background(), updatelog.Draft{Version: "2.0"})
	var opErr *store.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "read only", opErr.Message)
}
