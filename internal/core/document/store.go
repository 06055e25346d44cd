// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import "context"

// Repository defines the persistence contract for documents.
type Repository interface {
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Document, int, error)
	FindByID(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, document *Document) error
	Update(ctx context.Context, document *Document) error
	Delete(ctx context.Context, id string) error
}
