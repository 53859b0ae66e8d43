package parts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

const selectEnriched = `
	SELECT p.id, p.name, p.part_number, p.box_number, p.quantity, p.status, p.category_id,
	       p.description, p.min_quantity, p.created_by, p.created_at, p.updated_at,
	       c.name, c.type, c.description, c.created_at,
	       u.name, u.service_number
	FROM parts p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.created_by`

var sortColumns = map[models.SortField]string{
	models.SortByName:       "p.name",
	models.SortByPartNumber: "p.part_number",
	models.SortByQuantity:   "p.quantity",
	models.SortByStatus:     "p.status",
	models.SortByUpdatedAt:  "p.updated_at",
}

type SQLiteRepository struct {
	db store.DBTX
}

func NewSQLiteRepository(db store.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPart(row rowScanner) (*models.Part, error) {
	var (
		p                          models.Part
		desc                       sql.NullString
		created, updated           string
		catName, catType, catDesc  sql.NullString
		catCreated                 sql.NullString
		creatorName, creatorNumber sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.PartNumber, &p.BoxNumber, &p.Quantity, &p.Status, &p.CategoryID,
		&desc, &p.MinQuantity, &p.CreatedBy, &created, &updated,
		&catName, &catType, &catDesc, &catCreated,
		&creatorName, &creatorNumber)
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	if p.CreatedAt, err = store.ParseTime(created); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = store.ParseTime(updated); err != nil {
		return nil, err
	}
	if catName.Valid {
		c := &models.Category{ID: p.CategoryID, Name: catName.String, Type: models.CategoryType(catType.String)}
		if catDesc.Valid {
			c.Description = &catDesc.String
		}
		if catCreated.Valid {
			c.CreatedAt, _ = store.ParseTime(catCreated.String)
		}
		p.Category = c
	}
	if creatorName.Valid {
		p.Creator = &models.UserRef{ID: p.CreatedBy, Name: creatorName.String, ServiceNumber: creatorNumber.String}
	}
	return &p, nil
}

// Create inserts p and fills in its ID. Status and timestamps must be set.
func (r *SQLiteRepository) Create(ctx context.Context, p *models.Part) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO parts (name, part_number, box_number, quantity, status, category_id,
		                   description, min_quantity, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.PartNumber, p.BoxNumber, p.Quantity, p.Status, p.CategoryID,
		p.Description, p.MinQuantity, p.CreatedBy, store.FormatTime(p.CreatedAt), store.FormatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", p.PartNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", p.PartNumber, err)
	}
	p.ID = id
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Part, error) {
	p, err := scanPart(r.db.QueryRowContext(ctx, selectEnriched+` WHERE p.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get part %d: %w", id, err)
	}
	return p, nil
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as the
// escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func whereClause(f models.PartsFilter) (string, []any) {
	var conds []string
	var args []any

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		conds = append(conds, `(p.name LIKE ? ESCAPE '\' OR p.part_number LIKE ? ESCAPE '\' OR p.box_number LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}
	if f.Status != "" {
		conds = append(conds, `p.status = ?`)
		args = append(args, f.Status)
	}
	if f.CategoryID > 0 {
		conds = append(conds, `p.category_id = ?`)
		args = append(args, f.CategoryID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of parts matching f and the total number of
// matches. f should already carry defaults (see PartsFilter.WithDefaults).
func (r *SQLiteRepository) List(ctx context.Context, f models.PartsFilter) ([]models.Part, int, error) {
	col, ok := sortColumns[f.SortBy]
	if !ok || !f.SortOrder.Valid() {
		return nil, 0, fmt.Errorf("%w: unsupported sort %q %q", common.ErrValidation, f.SortBy, f.SortOrder)
	}
	dir := "DESC"
	if f.SortOrder == models.SortAsc {
		dir = "ASC"
	}

	where, args := whereClause(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM parts p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	query := selectEnriched + where + ` ORDER BY ` + col + ` ` + dir + `, p.id ` + dir + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Part, 0, f.Limit)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan part row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate part rows: %w", err)
	}
	return out, total, nil
}

// Update writes every mutable column of p. Status and UpdatedAt must be set.
func (r *SQLiteRepository) Update(ctx context.Context, p *models.Part) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE parts
		SET name = ?, part_number = ?, box_number = ?, quantity = ?, status = ?, category_id = ?,
		    description = ?, min_quantity = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.PartNumber, p.BoxNumber, p.Quantity, p.Status, p.CategoryID,
		p.Description, p.MinQuantity, store.FormatTime(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update part %d: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM parts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete part %d: %w", id, err)
	}
	return nil
}
