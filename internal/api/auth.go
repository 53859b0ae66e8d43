package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type UserResult struct {
	Result
	User *models.User `json:"user,omitempty"`
}

// Login opens a session and makes it the current one.
func (b *Bridge) Login(ctx context.Context, req models.LoginRequest) UserResult {
	u, token, err := b.svc.Auth.Login(ctx, req.ServiceNumber, req.Password)
	if err != nil {
		return UserResult{Result: b.fail(ctx, "login", err)}
	}
	b.setToken(token)
	return UserResult{Result: ok(), User: u}
}

// Register creates an account, opens a session and makes it the current one.
func (b *Bridge) Register(ctx context.Context, req models.RegisterRequest) UserResult {
	u, token, err := b.svc.Auth.Register(ctx, req)
	if err != nil {
		return UserResult{Result: b.fail(ctx, "registration", err)}
	}
	b.setToken(token)
	return UserResult{Result: ok(), User: u}
}

// Logout ends the current session. It always succeeds.
func (b *Bridge) Logout(ctx context.Context) Result {
	token := b.Token()
	if err := b.svc.Auth.Logout(ctx, token); err != nil {
		b.logger.Error(ctx, "logout failed", "error", err)
	}
	b.clearToken(token)
	return ok()
}

// GetSession returns the user of the current session. A missing or expired
// session is reported without an error message and forgets the token.
func (b *Bridge) GetSession(ctx context.Context) UserResult {
	token := b.Token()
	u, err := b.svc.Auth.Resolve(ctx, token)
	switch {
	case errors.Is(err, common.ErrNoSession):
		b.clearToken(token)
		return UserResult{}
	case err != nil:
		return UserResult{Result: b.fail(ctx, "session lookup", err)}
	}
	return UserResult{Result: ok(), User: u}
}

func (b *Bridge) IsAdmin(ctx context.Context) bool {
	return b.svc.Auth.IsAdmin(b.session(ctx))
}
