// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/validate"
	"github.com/taibuivan/vvdex/pkg/multisort"
	"github.com/taibuivan/vvdex/pkg/slice"
)

// Service answers catalog list queries.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a new [Service]. cache may be nil.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

/*
List returns the kind's items filtered and ordered by query.

Description: The sort expression is validated before any I/O. Cache failures
are logged and degrade to a database read; they never fail the request.
*/
func (service *Service) List(ctx context.Context, kind Kind, query Query) ([]Item, error) {
	criteria, err := query.Criteria()
	if err != nil {
		return nil, validate.RequiredError("sort", err.Error())
	}

	items, err := service.load(ctx, kind)
	if err != nil {
		return nil, err
	}

	matched := slice.Filter(items, query.Matches)
	if matched == nil {
		return []Item{}, nil
	}

	return multisort.Sort(matched, criteria...), nil
}

// Get returns a single item of kind.
func (service *Service) Get(ctx context.Context, kind Kind, id string) (*Item, error) {
	items, err := service.load(ctx, kind)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}

	return nil, apperr.NotFound(kindLabel(kind))
}

// load reads the raw list through the cache.
func (service *Service) load(ctx context.Context, kind Kind) ([]Item, error) {
	if service.cache != nil {
		items, found, err := service.cache.Get(ctx, kind)
		if err != nil {
			service.logger.WarnContext(ctx, "catalog_cache_read_failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
		if found {
			return items, nil
		}
	}

	items, err := service.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Set(ctx, kind, items); err != nil {
			service.logger.WarnContext(ctx, "catalog_cache_write_failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}

	return items, nil
}

func kindLabel(kind Kind) string {
	switch kind {
	case KindCharacter:
		return "Character"
	case KindSwimsuit:
		return "Swimsuit"
	case KindSkill:
		return "Skill"
	}
	return "Catalog item"
}
