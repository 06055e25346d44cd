// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/vvdex/internal/store"
	"github.com/taibuivan/vvdex/pkg/convert"
)

// Resource is the REST binding of one collection endpoint.
//
// It implements [store.API] with the conventions of the Content API:
//
//	GET    {Path}?published=&sort=&order=&limit=
//	POST   {Path}
//	PATCH  {Path}/{id}
//	DELETE {Path}/{id}
type Resource[T store.Item, D any, P any] struct {
	Client *Client
	Path   string
}

// NewResource binds a collection path ("/documents") to a client.
func NewResource[T store.Item, D any, P any](client *Client, path string) *Resource[T, D, P] {
	return &Resource[T, D, P]{Client: client, Path: path}
}

// List fetches the collection with the given options.
func (resource *Resource[T, D, P]) List(ctx context.Context, options store.ListOptions) ([]T, error) {
	query := url.Values{}
	if published := convert.FromBoolPtr(options.PublishedOnly); published != "" {
		query.Set("published", published)
	}
	if options.SortBy != "" {
		query.Set("sort", options.SortBy)
	}
	if options.SortOrder != "" {
		query.Set("order", options.SortOrder)
	}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}

	var items []T
	if err := resource.Client.Do(ctx, http.MethodGet, resource.Path, query, nil, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts a draft and returns the stored item.
func (resource *Resource[T, D, P]) Create(ctx context.Context, draft D) (T, error) {
	var created T
	err := resource.Client.Do(ctx, http.MethodPost, resource.Path, nil, draft, &created)
	return created, err
}

// Update patches the item with the given id and returns the stored result.
func (resource *Resource[T, D, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var updated T
	err := resource.Client.Do(ctx, http.MethodPatch, resource.itemPath(id), nil, patch, &updated)
	return updated, err
}

// Delete removes the item with the given id.
func (resource *Resource[T, D, P]) Delete(ctx context.Context, id string) error {
	return resource.Client.Do(ctx, http.MethodDelete, resource.itemPath(id), nil, nil, nil)
}

func (resource *Resource[T, D, P]) itemPath(id string) string {
	return resource.Path + "/" + url.PathEscape(id)
}
