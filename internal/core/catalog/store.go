// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// Repository reads catalog collections from durable storage.
type Repository interface {
	// List returns every item of kind in curated order.
	List(ctx context.Context, kind Kind) ([]Item, error)
}

// Cache holds raw catalog lists between requests.
type Cache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, kind Kind) (items []Item, found bool, err error)
	Set(ctx context.Context, kind Kind, items []Item) error
}
