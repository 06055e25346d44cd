// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document_test

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/vvdex/internal/core/document"
	"github.com/taibuivan/vvdex/internal/platform/apperr"
)

// memoryRepository is an in-process [document.Repository] for service and handler tests.
type memoryRepository struct {
	mu        sync.Mutex
	documents []*document.Document
	failWith  error
}

func (repository *memoryRepository) List(_ context.Context, filter document.Filter, limit, offset int) ([]*document.Document, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return nil, 0, repository.failWith
	}

	matched := make([]*document.Document, 0)
	for _, doc := range repository.documents {
		if filter.Published != nil && doc.Published != *filter.Published {
			continue
		}
		if filter.Category != "" && doc.Category != filter.Category {
			continue
		}
		clone := *doc
		matched = append(matched, &clone)
	}

	slices.SortStableFunc(matched, func(a, b *document.Document) int {
		var result int
		switch filter.SortBy {
		case document.FieldTitle:
			result = strings.Compare(a.Title, b.Title)
		default:
			result = a.CreatedAt.Compare(b.CreatedAt)
		}
		if filter.SortOrder != "asc" {
			result = -result
		}
		return result
	})

	total := len(matched)
	start := min(offset, total)
	end := min(start+limit, total)
	return matched[start:end], total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*document.Document, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, doc := range repository.documents {
		if doc.ID == id {
			clone := *doc
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Document")
}

func (repository *memoryRepository) Create(_ context.Context, doc *document.Document) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return repository.failWith
	}

	clone := *doc
	repository.documents = append(repository.documents, &clone)
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, doc *document.Document) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, existing := range repository.documents {
		if existing.ID == doc.ID {
			clone := *doc
			repository.documents[i] = &clone
			return nil
		}
	}
	return apperr.NotFound("Document")
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i, existing := range repository.documents {
		if existing.ID == id {
			repository.documents = slices.Delete(repository.documents, i, i+1)
			return nil
		}
	}
	return apperr.NotFound("Document")
}
