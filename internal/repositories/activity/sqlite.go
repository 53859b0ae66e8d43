package activity

import (
	"context"
	"database/sql"
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

func (r *SQLiteRepository) Append(ctx context.Context, a *models.ActivityLog) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (user_id, action, part_id, details, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Action, a.PartID, a.Details, store.FormatTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to append %s activity: %w", a.Action, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to append %s activity: %w", a.Action, err)
	}
	a.ID = id
	return nil
}

func (r *SQLiteRepository) DeleteByPart(ctx context.Context, partID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity_logs WHERE part_id = ?`, partID); err != nil {
		return fmt.Errorf("failed to delete activity of part %d: %w", partID, err)
	}
	return nil
}

// List returns activity newest first, enriched with the acting user and the
// referenced part's name, plus the total row count.
func (r *SQLiteRepository) List(ctx context.Context, limit, offset int) ([]models.ActivityLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.action, a.part_id, a.details, a.created_at,
		       u.name, u.service_number, p.name
		FROM activity_logs a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN parts p ON p.id = a.part_id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	out := make([]models.ActivityLog, 0, limit)
	for rows.Next() {
		var (
			a                    models.ActivityLog
			partID               sql.NullInt64
			details, created     sql.NullString
			userName, userNumber sql.NullString
			partName             sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &partID, &details, &created,
			&userName, &userNumber, &partName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity row: %w", err)
		}
		if partID.Valid {
			a.PartID = &partID.Int64
		}
		if details.Valid {
			a.Details = &details.String
		}
		if a.CreatedAt, err = store.ParseTime(created.String); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity row: %w", err)
		}
		if userName.Valid {
			a.User = &models.UserRef{ID: a.UserID, Name: userName.String, ServiceNumber: userNumber.String}
		}
		if partName.Valid {
			a.PartName = &partName.String
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate activity rows: %w", err)
	}
	return out, total, nil
}
