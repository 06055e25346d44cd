// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/validate"
	"github.com/taibuivan/vvdex/pkg/pointer"
	"github.com/taibuivan/vvdex/pkg/uuid"
)

const (
	maxVersionLen  = 32
	maxTitleLen    = 200
	maxCategoryLen = 50
	maxAuthorLen   = 100
	maxContentLen  = 100_000
	maxTags        = 20
	maxTagLen      = 50
)

// Service orchestrates validation, identity and timestamps for update logs.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListUpdateLogs returns a filtered page of update logs and the total count.
func (service *Service) ListUpdateLogs(ctx context.Context, filter Filter, limit, offset int) ([]*UpdateLog, int, error) {
	validator := &validate.Validator{}
	if filter.SortBy != "" {
		validator.OneOf("sort", filter.SortBy, sortColumns...)
	}
	if filter.SortOrder != "" {
		validator.OneOf("order", filter.SortOrder, "asc", "desc")
	}
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.List(ctx, filter, limit, offset)
}

// GetUpdateLog fetches a single update log by id.
func (service *Service) GetUpdateLog(ctx context.Context, id string) (*UpdateLog, error) {
	if !validate.IsUUID(id) {
		return nil, apperr.NotFound("Update log")
	}
	return service.repo.FindByID(ctx, id)
}

// CreateUpdateLog validates the draft, assigns identity and timestamps, and persists it.
func (service *Service) CreateUpdateLog(ctx context.Context, draft Draft) (*UpdateLog, error) {
	now := service.now()
	log := Normalize(UpdateLog{
		ID:         uuid.New(),
		Version:    draft.Version,
		Title:      draft.Title,
		Content:    draft.Content,
		Category:   draft.Category,
		Author:     draft.Author,
		Tags:       draft.Tags,
		Published:  draft.Published,
		ReleasedAt: pointer.Fallback(draft.ReleasedAt, now).UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	if err := validateUpdateLog(log); err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, &log); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "update_log_created",
		slog.String("update_log_id", log.ID),
		slog.String("version", log.Version),
	)

	return &log, nil
}

// UpdateUpdateLog merges patch into the stored update log and persists it.
func (service *Service) UpdateUpdateLog(ctx context.Context, id string, patch Patch) (*UpdateLog, error) {
	if patch.IsEmpty() {
		return nil, validate.RequiredError("body", "At least one field must be provided")
	}

	current, err := service.GetUpdateLog(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := Normalize(patch.Apply(*current))
	updated.ReleasedAt = updated.ReleasedAt.UTC()
	updated.UpdatedAt = service.now()

	if err := validateUpdateLog(updated); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "update_log_updated", slog.String("update_log_id", id))
	return &updated, nil
}

// DeleteUpdateLog removes an update log.
func (service *Service) DeleteUpdateLog(ctx context.Context, id string) error {
	if !validate.IsUUID(id) {
		return apperr.NotFound("Update log")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "update_log_deleted", slog.String("update_log_id", id))
	return nil
}

func validateUpdateLog(log UpdateLog) error {
	return (&validate.Validator{}).
		Required(FieldVersion, log.Version).
		MaxLen(FieldVersion, log.Version, maxVersionLen).
		Required(FieldTitle, log.Title).
		MaxLen(FieldTitle, log.Title, maxTitleLen).
		MaxLen(FieldCategory, log.Category, maxCategoryLen).
		MaxLen(FieldAuthor, log.Author, maxAuthorLen).
		MaxLen(FieldContent, log.Content, maxContentLen).
		Custom(FieldTags, len(log.Tags) > maxTags, "Maximum 20 tags").
		Custom(FieldTags, slices.ContainsFunc(log.Tags, func(tag string) bool {
			return len([]rune(tag)) > maxTagLen
		}), "Each tag must be at most 50 characters").
		Custom(FieldReleasedAt, log.ReleasedAt.IsZero(), "Release date is required").
		Err()
}
