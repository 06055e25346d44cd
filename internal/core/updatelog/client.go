// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog

import (
	"log/slog"

	"github.com/taibuivan/vvdex/internal/platform/apiclient"
	"github.com/taibuivan/vvdex/internal/store"
)

// Path is the collection path of update logs relative to the API root.
const Path = "/update-logs"

// Store is the client-side update log collection.
type Store = store.Store[UpdateLog, Draft, Patch]

// NewAPI binds the update log endpoints to an API client.
func NewAPI(client *apiclient.Client) store.API[UpdateLog, Draft, Patch] {
	return apiclient.NewResource[UpdateLog, Draft, Patch](client, Path)
}

// NewStore builds the update log [Store], latest release first.
func NewStore(api store.API[UpdateLog, Draft, Patch], limit int, logger *slog.Logger) (*Store, error) {
	return store.New(api, store.Options[UpdateLog]{
		Kind: "update logs",
		Defaults: store.ListOptions{
			SortBy:    FieldReleasedAt,
			SortOrder: "desc",
			Limit:     limit,
		},
		Normalize: Normalize,
		Logger:    logger,
	})
}
