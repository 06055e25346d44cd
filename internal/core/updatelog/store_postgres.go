// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vvdex/internal/platform/database/schema"
	"github.com/taibuivan/vvdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed update log store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var orderColumns = map[string]string{
	FieldReleasedAt: schema.ContentUpdateLog.ReleasedAt,
	FieldCreatedAt:  schema.ContentUpdateLog.CreatedAt,
	FieldUpdatedAt:  schema.ContentUpdateLog.UpdatedAt,
	FieldVersion:    schema.ContentUpdateLog.Version,
	FieldTitle:      schema.ContentUpdateLog.Title,
}

// List returns a filtered page of update logs, newest release first by default.
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*UpdateLog, int, error) {
	table := schema.ContentUpdateLog

	conditions := []string{"TRUE"}
	var args []any

	if filter.Published != nil {
		args = append(args, *filter.Published)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.IsPublished, len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Category, len(args)))
	}
	if filter.Version != "" {
		args = append(args, filter.Version)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", table.Version, len(args)))
	}

	column, ok := orderColumns[filter.SortBy]
	if !ok {
		column = table.ReleasedAt
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s
		ORDER BY %s %s, %s ASC
		LIMIT $%d OFFSET $%d
	`,
		strings.Join(table.Columns(), ", "), table.Table,
		strings.Join(conditions, " AND "),
		column, direction, table.ID,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_update_logs")
	}
	defer rows.Close()

	logs := make([]*UpdateLog, 0)
	total := 0
	for rows.Next() {
		log := &UpdateLog{}
		if err := rows.Scan(append(scanTargets(log), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_update_log")
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_update_logs")
	}

	return logs, total, nil
}

// FindByID returns a single update log.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*UpdateLog, error) {
	table := schema.ContentUpdateLog
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, strings.Join(table.Columns(), ", "), table.Table, table.ID)

	log := &UpdateLog{}
	if err := repository.pool.QueryRow(ctx, query, id).Scan(scanTargets(log)...); err != nil {
		return nil, dberr.WrapResource(err, "get_update_log", "Update log")
	}

	return log, nil
}

// Create inserts a new update log.
func (repository *PostgresRepository) Create(ctx context.Context, log *UpdateLog) error {
	table := schema.ContentUpdateLog
	columns := table.Columns()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	_, err := repository.pool.Exec(ctx, query,
		log.ID, log.Version, log.Title, log.Content, log.Category, log.Author,
		log.Tags, log.Published, log.ReleasedAt, log.CreatedAt, log.UpdatedAt,
	)
	return dberr.Wrap(err, "create_update_log")
}

// Update overwrites every mutable column of an existing update log.
func (repository *PostgresRepository) Update(ctx context.Context, log *UpdateLog) error {
	table := schema.ContentUpdateLog
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1
	`,
		table.Table,
		table.Version, table.Title, table.Content, table.Category, table.Author,
		table.Tags, table.IsPublished, table.ReleasedAt, table.UpdatedAt,
		table.ID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		log.ID, log.Version, log.Title, log.Content, log.Category, log.Author,
		log.Tags, log.Published, log.ReleasedAt, log.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_update_log")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapResource(pgx.ErrNoRows, "update_update_log", "Update log")
	}

	return nil
}

// Delete removes an update log permanently.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	table := schema.ContentUpdateLog
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_update_log")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapResource(pgx.ErrNoRows, "delete_update_log", "Update log")
	}

	return nil
}

// scanTargets lists the destinations matching [schema.ContentUpdateLogTable.Columns].
func scanTargets(log *UpdateLog) []any {
	return []any{
		&log.ID, &log.Version, &log.Title, &log.Content, &log.Category, &log.Author,
		&log.Tags, &log.Published, &log.ReleasedAt, &log.CreatedAt, &log.UpdatedAt,
	}
}
