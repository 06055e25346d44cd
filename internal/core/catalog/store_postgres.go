// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vvdex/internal/platform/database/schema"
	"github.com/taibuivan/vvdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed catalog reader.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// tables maps each kind to its table definition.
var tables = map[Kind]schema.CatalogItemTable{
	KindCharacter: schema.CatalogCharacter,
	KindSwimsuit:  schema.CatalogSwimsuit,
	KindSkill:     schema.CatalogSkill,
}

/*
List returns every row of the kind's table ordered by its curated sort order.

Description: JSONB columns (translations, stats, extra) are decoded by pgx
straight into the item's maps.
*/
func (repository *PostgresRepository) List(ctx context.Context, kind Kind) ([]Item, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("catalog: no table for kind %q", kind)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		strings.Join(table.Columns(), ", "), table.Table, table.SortOrder, table.ID)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+string(kind))
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Translations, &item.Type,
			&item.Rarity, &item.Stats, &item.Extra,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_"+string(kind))
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_"+string(kind))
	}

	return items, nil
}
