package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	h.as(t, "emp001", models.RoleEditor)

	u, token, err := h.auth.Login(context.Background(), " emp001 ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", u.ServiceNumber)
	assert.Equal(t, models.RoleEditor, u.Role)
	assert.Empty(t, u.PasswordHash)
	assert.Len(t, token, 64)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	var stored string
	require.NoError(t, h.db.QueryRow(`SELECT password_hash FROM users WHERE service_number = 'EMP001'`).Scan(&stored))
	assert.True(t, strings.HasPrefix(stored, "$argon2id$"))
	assert.NotContains(t, stored, "secret123")
}

func TestLogin_WrongPasswordCreatesNoSession(t *testing.T) {
	h := newHarness(t)
	h.as(t, "EMP001", models.RoleUser)
	before := h.count(t, `SELECT COUNT(*) FROM sessions`)

	_, token, err := h.auth.Login(context.Background(), "EMP001", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Empty(t, token)

	_, _, err = h.auth.Login(context.Background(), "NOBODY", "secret123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, "Invalid service number or password", err.Error())

	_, _, err = h.auth.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	assert.Equal(t, before, h.count(t, `SELECT COUNT(*) FROM sessions`))
}

func TestLogin_UpgradesLegacyDigest(t *testing.T) {
	h := newHarness(t)
	sum := sha256.Sum256([]byte("admin123"))
	_, err := h.db.Exec(`INSERT INTO users (service_number, name, password_hash, role) VALUES ('ADMIN001', 'Admin', ?, 'admin')`,
		hex.EncodeToString(sum[:]))
	require.NoError(t, err)

	_, _, err = h.auth.Login(context.Background(), "admin001", "admin123")
	require.NoError(t, err)

	var stored string
	require.NoError(t, h.db.QueryRow(`SELECT password_hash FROM users WHERE service_number = 'ADMIN001'`).Scan(&stored))
	assert.True(t, strings.HasPrefix(stored, "$argon2id$"), "legacy digest replaced, got %q", stored)

	_, _, err = h.auth.Login(context.Background(), "ADMIN001", "admin123")
	assert.NoError(t, err, "upgraded hash still verifies")
}

func TestLogin_PurgesExpiredSessions(t *testing.T) {
	h := newHarness(t)
	h.as(t, "EMP001", models.RoleUser)
	h.as(t, "EMP002", models.RoleUser)
	require.Equal(t, 2, h.count(t, `SELECT COUNT(*) FROM sessions`))

	h.clock.advance(DefaultSessionTTL + time.Hour)
	_, _, err := h.auth.Login(context.Background(), "EMP001", "secret123")
	require.NoError(t, err)

	assert.Equal(t, 1, h.count(t, `SELECT COUNT(*) FROM sessions`), "only the new session remains")
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, token, err := h.auth.Register(ctx, models.RegisterRequest{ServiceNumber: "emp010", Name: " New Hire ", Password: "abcdef"})
	require.NoError(t, err)
	assert.Equal(t, "EMP010", u.ServiceNumber)
	assert.Equal(t, "New Hire", u.Name)
	assert.Equal(t, models.RoleUser, u.Role, "role defaults to user")

	me, err := h.auth.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)

	_, _, err = h.auth.Register(ctx, models.RegisterRequest{ServiceNumber: "EMP010", Name: "Dup", Password: "abcdef"})
	assert.ErrorIs(t, err, common.ErrServiceNumberTaken)
}

func TestRegister_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, _, err := h.auth.Register(ctx, models.RegisterRequest{ServiceNumber: "EMP011", Name: "Short", Password: "123"})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "Password must be at least 6")

	_, _, err = h.auth.Register(ctx, models.RegisterRequest{ServiceNumber: "EMP012", Name: "Boss", Password: "abcdef", Role: "root"})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "Role must be one of: admin, editor, user")

	_, _, err = h.auth.Register(ctx, models.RegisterRequest{ServiceNumber: "  ", Name: "Nobody", Password: "abcdef"})
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Zero(t, h.count(t, `SELECT COUNT(*) FROM users`))
}

func TestResolve_ExpiredSession(t *testing.T) {
	h := newHarness(t)
	ctx, u := h.as(t, "EMP001", models.RoleEditor)

	got, err := h.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	h.clock.advance(DefaultSessionTTL)
	_, err = h.auth.Resolve(ctx, SessionToken(ctx))
	assert.ErrorIs(t, err, common.ErrNoSession, "expiry is exclusive")

	_, err = h.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Zero(t, h.count(t, `SELECT COUNT(*) FROM sessions`), "expired session dropped on resolve")
}

func TestResolve_UnknownAndEmpty(t *testing.T) {
	h := newHarness(t)
	_, err := h.auth.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNoSession)
	_, err = h.auth.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, common.ErrNoSession)

	_, err = h.auth.CurrentUserID(context.Background())
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleUser)

	require.NoError(t, h.auth.Logout(ctx, SessionToken(ctx)))
	_, err := h.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	assert.NoError(t, h.auth.Logout(ctx, SessionToken(ctx)), "second logout is a no-op")
	assert.NoError(t, h.auth.Logout(ctx, ""))
}

func TestIsAdmin(t *testing.T) {
	h := newHarness(t)
	adminCtx, _ := h.as(t, "ADMIN001", models.RoleAdmin)
	editorCtx, _ := h.as(t, "EMP001", models.RoleEditor)

	assert.True(t, h.auth.IsAdmin(adminCtx))
	assert.False(t, h.auth.IsAdmin(editorCtx))
	assert.False(t, h.auth.IsAdmin(context.Background()))
}

func TestRunSessionJanitor(t *testing.T) {
	h := newHarness(t)
	h.as(t, "EMP001", models.RoleUser)
	h.clock.advance(DefaultSessionTTL + time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.auth.RunSessionJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return h.count(t, `SELECT COUNT(*) FROM sessions`) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop on cancel")
	}
}

func TestRunSessionJanitor_DisabledReturnsImmediately(t *testing.T) {
	h := newHarness(t)
	h.auth.RunSessionJanitor(context.Background(), 0)
}

func TestPurgeExpired_KeepsLiveSessions(t *testing.T) {
	h := newHarness(t)
	h.as(t, "EMP001", models.RoleUser)
	h.clock.advance(time.Hour)
	h.as(t, "EMP002", models.RoleUser)

	h.clock.advance(DefaultSessionTTL - 30*time.Minute)
	n, err := h.auth.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var left string
	require.NoError(t, h.db.QueryRow(`SELECT expires_at FROM sessions`).Scan(&left))
	exp, err := store.ParseTime(left)
	require.NoError(t, err)
	assert.True(t, exp.After(h.clock.now()))
}
