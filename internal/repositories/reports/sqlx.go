package reports

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/jmoiron/sqlx"
)

type SQLXRepository struct {
	db sqlx.QueryerContext
}

func NewSQLXRepository(db sqlx.QueryerContext) *SQLXRepository {
	return &SQLXRepository{db: db}
}

func (r *SQLXRepository) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	err := sqlx.GetContext(ctx, r.db, &s, `
		SELECT COUNT(*)                                                  AS total_parts,
		       COALESCE(SUM(quantity), 0)                                AS total_quantity,
		       COALESCE(SUM(CASE WHEN status = 'low_stock' THEN 1 END), 0)    AS low_stock,
		       COALESCE(SUM(CASE WHEN status = 'out_of_stock' THEN 1 END), 0) AS out_of_stock
		FROM parts`)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize parts: %w", err)
	}
	return &s, nil
}

// CategoryCounts lists every category with the number of parts in it,
// including empty ones, largest first.
func (r *SQLXRepository) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	out := []models.CategoryCount{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT c.name AS category, COUNT(p.id) AS count
		FROM categories c
		LEFT JOIN parts p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY count DESC, c.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to count parts per category: %w", err)
	}
	return out, nil
}

func (r *SQLXRepository) ExportRows(ctx context.Context) ([]models.ExportRow, error) {
	out := []models.ExportRow{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT p.name, p.part_number, p.box_number, p.quantity, p.status, p.min_quantity,
		       c.name AS category_name, c.type AS category_type, p.description,
		       p.created_at, p.updated_at
		FROM parts p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.name ASC, p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load export rows: %w", err)
	}
	return out, nil
}
