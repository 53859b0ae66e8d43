package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/cryptox"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/storage"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/dmitrijs2005/sparekeeper/internal/store/storetest"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type harness struct {
	st    *store.Store
	db    *sql.DB
	clock *fakeClock

	auth  *AuthService
	users *UserService
	parts *PartService
	cats  *CategoryService
	dash  *DashboardService
	xfer  *TransferService
}

var testHasherParams = cryptox.Params{MemoryKiB: 64, Threads: 1}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st, db := storetest.Open(t)
	rm := repomanager.NewSQLiteRepositoryManager()
	logger := logging.NewNop()

	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	auth := NewAuthService(st, rm, cryptox.NewArgon2Hasher(testHasherParams), DefaultSessionTTL, logger)
	auth.now = clock.now

	return &harness{
		st:    st,
		db:    db,
		clock: clock,
		auth:  auth,
		users: NewUserService(st, rm, auth, logger),
		parts: NewPartService(st, rm, auth, logger),
		cats:  NewCategoryService(st, rm, auth, logger),
		dash:  NewDashboardService(st, rm, logger),
		xfer:  NewTransferService(st, rm, auth, storage.FileSink{}, t.TempDir(), models.DefaultMinQuantity, logger),
	}
}

// as registers a user with role and returns a context carrying their session.
func (h *harness) as(t *testing.T, serviceNumber string, role models.Role) (context.Context, *models.User) {
	t.Helper()
	u, token, err := h.auth.Register(context.Background(), models.RegisterRequest{
		ServiceNumber: serviceNumber,
		Name:          serviceNumber + " name",
		Password:      "secret123",
		Role:          role,
	})
	require.NoError(t, err)
	return WithSessionToken(context.Background(), token), u
}

func (h *harness) category(t *testing.T, ctx context.Context, name string, typ models.CategoryType) *models.Category {
	t.Helper()
	c, err := h.cats.Create(ctx, models.CategoryCreateRequest{Name: name, Type: typ})
	require.NoError(t, err)
	return c
}

func (h *harness) part(t *testing.T, ctx context.Context, name, pn string, qty int, minQty *int, catID int64) *models.Part {
	t.Helper()
	p, err := h.parts.Create(ctx, models.PartCreateRequest{
		Name: name, PartNumber: pn, BoxNumber: "a1-01", Quantity: qty, MinQuantity: minQty, CategoryID: catID,
	})
	require.NoError(t, err)
	return p
}

func (h *harness) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, h.db.QueryRow(query, args...).Scan(&n))
	return n
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func int64p(v int64) *int64 { return &v }
