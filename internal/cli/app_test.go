package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/sparekeeper/internal/api"
	"github.com/dmitrijs2005/sparekeeper/internal/cryptox"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/services"
	"github.com/dmitrijs2005/sparekeeper/internal/storage"
	"github.com/dmitrijs2005/sparekeeper/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBridge wires a bridge over a fresh store, logged in as admin ADM1.
func newBridge(t *testing.T) (*api.Bridge, string) {
	t.Helper()
	st, _ := storetest.Open(t)
	rm := repomanager.NewSQLiteRepositoryManager()
	logger := logging.NewNop()
	exportDir := t.TempDir()

	auth := services.NewAuthService(st, rm, cryptox.NewArgon2Hasher(cryptox.Params{MemoryKiB: 64, Threads: 1}),
		services.DefaultSessionTTL, logger)
	_, _, err := auth.Register(context.Background(), models.RegisterRequest{
		ServiceNumber: "ADM1", Name: "Admin One", Password: "secret123", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	b := api.New(api.Services{
		Auth:       auth,
		Users:      services.NewUserService(st, rm, auth, logger),
		Parts:      services.NewPartService(st, rm, auth, logger),
		Categories: services.NewCategoryService(st, rm, auth, logger),
		Dashboard:  services.NewDashboardService(st, rm, logger),
		Transfer:   services.NewTransferService(st, rm, auth, storage.FileSink{}, exportDir, models.DefaultMinQuantity, logger),
	}, logger)
	res := b.Login(context.Background(), models.LoginRequest{ServiceNumber: "ADM1", Password: "secret123"})
	require.True(t, res.Success, res.Error)
	return b, exportDir
}

// runScript feeds lines to a fresh App and returns everything it printed.
func runScript(t *testing.T, b *api.Bridge, lines ...string) string {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })

	app := NewApp(b, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	app.Run(context.Background())
	return out.String()
}

func TestApp_InventorySession(t *testing.T) {
	b, exportDir := newBridge(t)
	b.Logout(context.Background())

	out := runScript(t, b,
		"login", "adm1", "secret123",
		"addcat", "Bolts", "mechanical", "",
		"addpart", "M8 Bolt", "blt-1", "a1", "3", "1", "5", "",
		"parts m8",
		"part 1",
		"editpart 1", "", "", "", "12", "", "",
		"stats",
		"export out.xlsx",
		"activity",
		"delpart 1",
		"part 1",
		"exit",
	)

	assert.Contains(t, out, "Welcome, Admin One")
	assert.Contains(t, out, "Created category 1")
	assert.Contains(t, out, "Created part 1")
	assert.Contains(t, out, "BLT-1")
	assert.Contains(t, out, "low stock")
	assert.Contains(t, out, "Part updated")
	assert.Contains(t, out, "in stock")
	assert.Contains(t, out, "Exported to "+filepath.Join(exportDir, "out.xlsx"))
	assert.Contains(t, out, "Exported 1 parts to Excel")
	assert.Contains(t, out, "Part 1 deleted")
	assert.Contains(t, out, "Part 1 not found")
	assert.Contains(t, out, "Bye!")
	assert.NotContains(t, out, "Error:")
}

func TestApp_RestoresSessionAndReportsErrors(t *testing.T) {
	b, _ := newBridge(t)

	out := runScript(t, b,
		"whoami",
		"delcat 99",
		"role 1 user",
		"addcat", "Odd", "hydraulic", "",
		"logout",
		"cats",
	)

	assert.Contains(t, out, "Admin One (ADM1) role=admin")
	assert.Contains(t, out, "Error: Category not found")
	assert.Contains(t, out, "Error: Cannot change your own role")
	assert.Contains(t, out, "Error: Type must be one of")
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Error: Not authenticated")
}

func TestApp_WrongPassword(t *testing.T) {
	b, _ := newBridge(t)
	b.Logout(context.Background())

	out := runScript(t, b, "login", "ADM1", "wrong", "help")

	assert.Contains(t, out, "Error: Invalid service number or password")
	assert.Contains(t, out, helpGuest)
	assert.Empty(t, b.Token())
}

func TestApp_RegisterAsUserCannotWrite(t *testing.T) {
	b, _ := newBridge(t)
	b.Logout(context.Background())

	out := runScript(t, b,
		"register", "emp9", "Nine", "secret123",
		"addcat", "Fuses", "electrical", "",
		"users",
	)

	assert.Contains(t, out, "Registered and logged in as EMP9")
	assert.Equal(t, 2, strings.Count(out, "Error: Unauthorized"))
}
