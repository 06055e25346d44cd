// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog

import "context"

// Repository defines the persistence contract for update logs.
type Repository interface {
	List(ctx context.Context, filter Filter, limit, offset int) ([]*UpdateLog, int, error)
	FindByID(ctx context.Context, id string) (*UpdateLog, error)
	Create(ctx context.Context, log *UpdateLog) error
	Update(ctx context.Context, log *UpdateLog) error
	Delete(ctx context.Context, id string) error
}
