// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import "context"

// Item is implemented by every resource held in a [Store].
type Item interface {
	// ResourceID returns the server-assigned unique identifier.
	ResourceID() string

	// ResourceCategory returns the value matched by [Store.ByCategory].
	ResourceCategory() string
}

// ListOptions are the query parameters sent to the remote list endpoint.
type ListOptions struct {
	// PublishedOnly restricts results to published items when non-nil and true,
	// and to drafts when non-nil and false.
	PublishedOnly *bool

	// SortBy is the server-side sort field (e.g. "created_at").
	SortBy string

	// SortOrder is "asc" or "desc".
	SortOrder string

	// Limit caps the number of returned items. Zero leaves it to the server.
	Limit int
}

// API is the remote boundary a [Store] synchronizes with.
//
// D is the create draft (no id or timestamps) and P the partial update.
// Implementations report recognized failures as [*apperr.AppError].
type API[T Item, D any, P any] interface {
	List(ctx context.Context, options ListOptions) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}
