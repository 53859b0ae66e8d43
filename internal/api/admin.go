package api

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type UsersResult struct {
	Result
	Users []models.User `json:"data"`
}

func (b *Bridge) ListUsers(ctx context.Context) UsersResult {
	list, err := b.svc.Users.List(b.session(ctx))
	if err != nil {
		return UsersResult{Result: b.fail(ctx, "user listing", err)}
	}
	return UsersResult{Result: ok(), Users: list}
}

func (b *Bridge) UpdateUserRole(ctx context.Context, req models.UpdateRoleRequest) Result {
	if err := b.svc.Users.UpdateRole(b.session(ctx), req.UserID, req.Role); err != nil {
		return b.fail(ctx, "role update", err)
	}
	return ok()
}

func (b *Bridge) DeleteUser(ctx context.Context, userID int64) Result {
	if err := b.svc.Users.Delete(b.session(ctx), userID); err != nil {
		return b.fail(ctx, "user deletion", err)
	}
	return ok()
}
