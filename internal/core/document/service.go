// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/validate"
	"github.com/taibuivan/vvdex/pkg/uuid"
)

// Validation limits.
const (
	maxTitleLen    = 200
	maxCategoryLen = 50
	maxAuthorLen   = 100
	maxContentLen  = 100_000
	maxTags        = 20
	maxTagLen      = 50
)

// # Service Layer

// Service orchestrates validation, identity and timestamps for documents.
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

/*
ListDocuments returns a filtered page of documents and the total count.

Unknown sort keys are rejected rather than silently ignored so admin tools
notice typos.
*/
func (service *Service) ListDocuments(ctx context.Context, filter Filter, limit, offset int) ([]*Document, int, error) {
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

// GetDocument fetches a single document by id.
func (service *Service) GetDocument(ctx context.Context, id string) (*Document, error) {
	if !validate.IsUUID(id) {
		return nil, apperr.NotFound("Document")
	}
	return service.repo.FindByID(ctx, id)
}

/*
CreateDocument validates the draft, assigns a UUIDv7 and timestamps, and persists it.

Returns:
  - *Document: The stored document as the API will return it
  - error: Validation or persistence errors
*/
func (service *Service) CreateDocument(ctx context.Context, draft Draft) (*Document, error) {
	now := service.now()
	document := Normalize(Document{
		ID:        uuid.New(),
		Title:     draft.Title,
		Content:   draft.Content,
		Category:  draft.Category,
		Author:    draft.Author,
		Tags:      draft.Tags,
		Published: draft.Published,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err := validateDocument(document); err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, &document); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "document_created",
		slog.String("document_id", document.ID),
		slog.String("category", document.Category),
	)

	return &document, nil
}

/*
UpdateDocument merges patch into the stored document and persists it.

Description: The merged result is validated as a whole so a patch can never
leave a document in a state a create would have rejected.
*/
func (service *Service) UpdateDocument(ctx context.Context, id string, patch Patch) (*Document, error) {
	if patch.IsEmpty() {
		return nil, validate.RequiredError("body", "At least one field must be provided")
	}

	current, err := service.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := Normalize(patch.Apply(*current))
	updated.UpdatedAt = service.now()

	if err := validateDocument(updated); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "document_updated", slog.String("document_id", id))
	return &updated, nil
}

// DeleteDocument removes a document.
func (service *Service) DeleteDocument(ctx context.Context, id string) error {
	if !validate.IsUUID(id) {
		return apperr.NotFound("Document")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "document_deleted", slog.String("document_id", id))
	return nil
}

func validateDocument(document Document) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, document.Title).MaxLen(FieldTitle, document.Title, maxTitleLen)
	validator.Required(FieldCategory, document.Category).MaxLen(FieldCategory, document.Category, maxCategoryLen)
	validator.MaxLen(FieldAuthor, document.Author, maxAuthorLen)
	validator.MaxLen(FieldContent, document.Content, maxContentLen)
	validator.Custom(FieldTags, len(document.Tags) > maxTags, "Maximum 20 tags")
	validator.Custom(FieldTags, slices.ContainsFunc(document.Tags, func(tag string) bool {
		return len([]rune(tag)) > maxTagLen
	}), "Each tag must be at most 50 characters")
	return validator.Err()
}
