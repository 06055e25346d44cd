// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

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

// NewPostgresRepository constructs a PostgreSQL backed document store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// orderColumns maps public sort keys to table columns.
var orderColumns = map[string]string{
	FieldCreatedAt: schema.ContentDocument.CreatedAt,
	FieldUpdatedAt: schema.ContentDocument.UpdatedAt,
	FieldTitle:     schema.ContentDocument.Title,
	FieldCategory:  schema.ContentDocument.Category,
}

/*
List returns a filtered, ordered page of documents and the total match count.

Description: The total is computed with COUNT(*) OVER() so a single round-trip
serves both the page and the pagination metadata. The sort column is resolved
through a whitelist; unknown keys fall back to creation time.
*/
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Document, int, error) {
	table := schema.ContentDocument

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE TRUE
	`, strings.Join(table.Columns(), ", "), table.Table))

	// Publication filter
	if filter.Published != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", table.IsPublished, argID))
		args = append(args, *filter.Published)
		argID++
	}

	// Category filter
	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", table.Category, argID))
		args = append(args, filter.Category)
		argID++
	}

	// Ordering (whitelisted), id as a stable tie-breaker
	column, ok := orderColumns[filter.SortBy]
	if !ok {
		column = table.CreatedAt
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, %s ASC", column, direction, table.ID))

	// Pagination
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_documents")
	}
	defer rows.Close()

	documents := make([]*Document, 0)
	total := 0
	for rows.Next() {
		document := &Document{}
		if err := rows.Scan(
			&document.ID, &document.Title, &document.Content, &document.Category, &document.Author,
			&document.Tags, &document.Published, &document.CreatedAt, &document.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_document")
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_documents")
	}

	return documents, total, nil
}

// FindByID returns a single document.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Document, error) {
	table := schema.ContentDocument
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, strings.Join(table.Columns(), ", "), table.Table, table.ID)

	document := &Document{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&document.ID, &document.Title, &document.Content, &document.Category, &document.Author,
		&document.Tags, &document.Published, &document.CreatedAt, &document.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.WrapResource(err, "get_document", "Document")
	}

	return document, nil
}

// Create inserts a new document. The caller assigns the id and timestamps.
func (repository *PostgresRepository) Create(ctx context.Context, document *Document) error {
	table := schema.ContentDocument
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, table.Table, strings.Join(table.Columns(), ", "))

	_, err := repository.pool.Exec(ctx, query,
		document.ID, document.Title, document.Content, document.Category, document.Author,
		document.Tags, document.Published, document.CreatedAt, document.UpdatedAt,
	)
	return dberr.Wrap(err, "create_document")
}

// Update overwrites every mutable column of an existing document.
func (repository *PostgresRepository) Update(ctx context.Context, document *Document) error {
	table := schema.ContentDocument
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1
	`,
		table.Table,
		table.Title, table.Content, table.Category, table.Author, table.Tags, table.IsPublished, table.UpdatedAt,
		table.ID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		document.ID, document.Title, document.Content, document.Category, document.Author,
		document.Tags, document.Published, document.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_document")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapResource(pgx.ErrNoRows, "update_document", "Document")
	}

	return nil
}

// Delete removes a document permanently.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	table := schema.ContentDocument
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_document")
	}
	if tag.RowsAffected() == 0 {
		return dberr.WrapResource(pgx.ErrNoRows, "delete_document", "Document")
	}

	return nil
}
