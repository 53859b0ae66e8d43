package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type SQLiteRepository struct {
	db store.DBTX
}

func NewSQLiteRepository(db store.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var c models.Category
	var desc sql.NullString
	var created string
	if err := row.Scan(&c.ID, &c.Name, &c.Type, &desc, &created); err != nil {
		return nil, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	var err error
	if c.CreatedAt, err = store.ParseTime(created); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Category) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (name, type, description, created_at) VALUES (?, ?, ?, ?)`,
		c.Name, c.Type, c.Description, store.FormatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create category %q: %w", c.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create category %q: %w", c.Name, err)
	}
	c.ID = id
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, type, description, created_at FROM categories WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return c, nil
}

// List returns all categories ordered by type, then name.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, description, created_at FROM categories ORDER BY type, name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *models.Category) error {
	_, err := r.db.ExecContext(ctx, `UPDATE categories SET name = ?, type = ?, description = ? WHERE id = ?`,
		c.Name, c.Type, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", c.ID, err)
	}
	return nil
}

// Delete reports false when no category has the given id.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return n > 0, nil
}
