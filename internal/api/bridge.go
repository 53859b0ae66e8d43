package api

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/services"
)

// Result is embedded in every operation result.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{Success: true} }

func failed(msg string) Result { return Result{Error: msg} }

// Services groups the service instances the Bridge dispatches to.
type Services struct {
	Auth       *services.AuthService
	Users      *services.UserService
	Parts      *services.PartService
	Categories *services.CategoryService
	Dashboard  *services.DashboardService
	Transfer   *services.TransferService
}

type Bridge struct {
	svc    Services
	logger logging.Logger

	mu    sync.RWMutex
	token string
}

func New(svc Services, logger logging.Logger) *Bridge {
	return &Bridge{svc: svc, logger: logger}
}

// Token returns the token of the current session, or "".
func (b *Bridge) Token() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.token
}

func (b *Bridge) setToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
}

// clearToken forgets token if it is still the current one.
func (b *Bridge) clearToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token == token {
		b.token = ""
	}
}

func (b *Bridge) session(ctx context.Context) context.Context {
	return services.WithSessionToken(ctx, b.Token())
}

// userFacing are the errors whose text is shown to the operator as is.
var userFacing = []error{
	common.ErrUnauthorized,
	common.ErrNotAuthenticated,
	common.ErrInvalidCredentials,
	common.ErrServiceNumberTaken,
	common.ErrUserNotFound,
	common.ErrSelfRoleChange,
	common.ErrSelfDelete,
	common.ErrUserInUse,
	common.ErrPartNotFound,
	common.ErrCategoryNotFound,
	common.ErrCategoryInUse,
	common.ErrNoFileSelected,
	common.ErrEmptyWorkbook,
	common.ErrExportCancelled,
}

// message maps err to the text shown to the operator. Unknown errors are
// logged and replaced by fallback.
func (b *Bridge) message(ctx context.Context, op, fallback string, err error) string {
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	if errors.Is(err, common.ErrValidation) {
		msg := strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
		if msg == "" {
			return common.ErrValidation.Error()
		}
		return msg
	}
	b.logger.Error(ctx, op+" failed", "error", err)
	return fallback
}

func (b *Bridge) fail(ctx context.Context, op string, err error) Result {
	return failed(b.message(ctx, op, "An error occurred during "+op, err))
}
