// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"log/slog"

	"github.com/taibuivan/vvdex/internal/platform/apiclient"
	"github.com/taibuivan/vvdex/internal/store"
)

// # Client Binding

// Path is the collection path of documents relative to the API root.
const Path = "/documents"

// Store is the client-side document collection.
type Store = store.Store[Document, Draft, Patch]

// NewAPI binds the document endpoints to an API client.
func NewAPI(client *apiclient.Client) store.API[Document, Draft, Patch] {
	return apiclient.NewResource[Document, Draft, Patch](client, Path)
}

// NewStore builds the document [Store]: newest first, every item normalized.
func NewStore(api store.API[Document, Draft, Patch], limit int, logger *slog.Logger) (*Store, error) {
	return store.New(api, store.Options[Document]{
		Kind: "documents",
		Defaults: store.ListOptions{
			SortBy:    FieldCreatedAt,
			SortOrder: "desc",
			Limit:     limit,
		},
		Normalize: Normalize,
		Logger:    logger,
	})
}
