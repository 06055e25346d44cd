// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/vvdex/internal/platform/apiclient"
)

// Fetch downloads up to limit items of kind as the server orders them.
//
// Callers that re-sort locally can pass an empty query.
func Fetch(ctx context.Context, client *apiclient.Client, kind Kind, query Query, limit int) ([]Item, error) {
	values := url.Values{}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Type != "" {
		values.Set("type", query.Type)
	}
	if query.Rarity != "" {
		values.Set("rarity", query.Rarity)
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var items []Item
	if err := client.Do(ctx, http.MethodGet, "/"+string(kind), values, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
