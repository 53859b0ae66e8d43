package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type SQLiteRepository struct {
	db store.DBTX
}

func NewSQLiteRepository(db store.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *models.Session) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (user_id, token, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		s.UserID, s.Token, store.FormatTime(s.ExpiresAt), store.FormatTime(s.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create session for user %d: %w", s.UserID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create session for user %d: %w", s.UserID, err)
	}
	s.ID = id
	return nil
}

// GetByToken returns the session regardless of expiry, or (nil, nil).
func (r *SQLiteRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	var expires, created string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token, expires_at, created_at FROM sessions WHERE token = ?`, token).
		Scan(&s.ID, &s.UserID, &s.Token, &expires, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if s.ExpiresAt, err = store.ParseTime(expires); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if s.CreatedAt, err = store.ParseTime(created); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *SQLiteRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete sessions of user %d: %w", userID, err)
	}
	return nil
}

// DeleteExpired removes every session whose expiry is at or before now and
// returns how many were removed.
func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, store.FormatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	return n, nil
}
