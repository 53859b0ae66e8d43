package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

const userColumns = `id, service_number, name, password_hash, role, created_at, updated_at`

type SQLiteRepository struct {
	db store.DBTX
}

func NewSQLiteRepository(db store.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var created, updated string
	if err := row.Scan(&u.ID, &u.ServiceNumber, &u.Name, &u.PasswordHash, &u.Role, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if u.CreatedAt, err = store.ParseTime(created); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = store.ParseTime(updated); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts u and fills in its ID. CreatedAt and UpdatedAt must be set.
func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (service_number, name, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ServiceNumber, u.Name, u.PasswordHash, u.Role, store.FormatTime(u.CreatedAt), store.FormatTime(u.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", u.ServiceNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", u.ServiceNumber, err)
	}
	u.ID = id
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetByServiceNumber(ctx context.Context, serviceNumber string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE service_number = ?`, serviceNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", serviceNumber, err)
	}
	return u, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// UpdateRole reports false when no user has the given id.
func (r *SQLiteRepository) UpdateRole(ctx context.Context, id int64, role models.Role, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, role, store.FormatTime(now), id)
	if err != nil {
		return false, fmt.Errorf("failed to update role of user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update role of user %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, hash, store.FormatTime(now), id)
	if err != nil {
		return fmt.Errorf("failed to update password of user %d: %w", id, err)
	}
	return nil
}

// Delete reports false when no user has the given id. A foreign key error is
// returned unchanged (wrapped) when parts or activity rows reference the user.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return n > 0, nil
}
