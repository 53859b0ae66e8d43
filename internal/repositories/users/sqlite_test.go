package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/dmitrijs2005/sparekeeper/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func newUser(sn, name string, role models.Role) *models.User {
	return &models.User{ServiceNumber: sn, Name: name, PasswordHash: "h", Role: role, CreatedAt: t0, UpdatedAt: t0}
}

func TestCreateAndGet(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := newUser("ADMIN001", "System Administrator", models.RoleAdmin)
	require.NoError(t, r.Create(ctx, u))
	require.NotZero(t, u.ID)

	byID, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ADMIN001", byID.ServiceNumber)
	assert.Equal(t, models.RoleAdmin, byID.Role)
	assert.True(t, byID.CreatedAt.Equal(t0))

	bySN, err := r.GetByServiceNumber(ctx, "ADMIN001")
	require.NoError(t, err)
	require.NotNil(t, bySN)
	assert.Equal(t, u.ID, bySN.ID)
}

func TestGet_MissingReturnsNilNil(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)

	u, err := r.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = r.GetByServiceNumber(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCreate_DuplicateServiceNumber(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("EMP001", "John Editor", models.RoleEditor)))
	err := r.Create(ctx, newUser("EMP001", "Someone Else", models.RoleUser))
	require.Error(t, err)
	assert.True(t, store.IsUniqueViolation(err))
}

func TestListOrderedByNameAndCount(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newUser("EMP002", "Jane Viewer", models.RoleUser)))
	require.NoError(t, r.Create(ctx, newUser("ADMIN001", "System Administrator", models.RoleAdmin)))
	require.NoError(t, r.Create(ctx, newUser("EMP001", "John Editor", models.RoleEditor)))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Jane Viewer", list[0].Name)
	assert.Equal(t, "John Editor", list[1].Name)
	assert.Equal(t, "System Administrator", list[2].Name)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestUpdateRoleAndPassword(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := newUser("EMP002", "Jane Viewer", models.RoleUser)
	require.NoError(t, r.Create(ctx, u))

	later := t0.Add(time.Hour)
	ok, err := r.UpdateRole(ctx, u.ID, models.RoleEditor, later)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UpdateRole(ctx, 999, models.RoleEditor, later)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.UpdatePasswordHash(ctx, u.ID, "new-hash", later))

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, got.Role)
	assert.Equal(t, "new-hash", got.PasswordHash)
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestDelete_BlockedByReferencingPart(t *testing.T) {
	_, db := storetest.Open(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := newUser("EMP001", "John Editor", models.RoleEditor)
	require.NoError(t, r.Create(ctx, u))
	cat := storetest.SeedCategory(t, db, "Bolts", "mechanical")
	storetest.SeedPart(t, db, "M8 Bolt", "BLT-1", 3, 5, "low_stock", cat, u.ID)

	_, err := r.Delete(ctx, u.ID)
	require.Error(t, err)
	assert.True(t, store.IsForeignKeyViolation(err))

	free := newUser("EMP002", "Jane Viewer", models.RoleUser)
	require.NoError(t, r.Create(ctx, free))
	ok, err := r.Delete(ctx, free.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(ctx, free.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDBErrorsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY name`).WillReturnError(errors.New("disk I/O error"))
	_, err = r.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnError(errors.New("disk I/O error"))
	_, err = r.Count(ctx)
	assert.Contains(t, err.Error(), "failed to count users")

	mock.ExpectExec(`UPDATE users SET role`).WillReturnError(errors.New("locked"))
	_, err = r.UpdateRole(ctx, 1, models.RoleUser, t0)
	assert.Contains(t, err.Error(), "failed to update role of user 1")

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?`).WithArgs(int64(5)).WillReturnError(errors.New("locked"))
	_, err = r.GetByID(ctx, 5)
	assert.Contains(t, err.Error(), "failed to get user 5")

	require.NoError(t, mock.ExpectationsWereMet())
}
