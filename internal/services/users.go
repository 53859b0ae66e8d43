package services

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

// UserService is the admin-only user administration surface.
type UserService struct {
	store  *store.Store
	repos  repomanager.RepositoryManager
	auth   *AuthService
	logger logging.Logger
}

func NewUserService(st *store.Store, rm repomanager.RepositoryManager, auth *AuthService, logger logging.Logger) *UserService {
	return &UserService{store: st, repos: rm, auth: auth, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	if _, err := s.auth.requireAdmin(ctx); err != nil {
		return nil, err
	}
	list, err := s.repos.Users(s.store.DB()).List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// UpdateRole changes another user's role.
func (s *UserService) UpdateRole(ctx context.Context, userID int64, role models.Role) error {
	me, err := s.auth.requireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := validateRequest(models.UpdateRoleRequest{UserID: userID, Role: role}); err != nil {
		return err
	}
	if userID == me.ID {
		return common.ErrSelfRoleChange
	}

	ok, err := s.repos.Users(s.store.DB()).UpdateRole(ctx, userID, role, s.auth.now())
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUserNotFound
	}
	s.logger.Info(ctx, "user role changed", "user_id", userID, "role", role, "by", me.ID)
	return nil
}

// Delete removes another user together with their sessions. Users still
// referenced by parts or activity rows cannot be deleted.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	me, err := s.auth.requireAdmin(ctx)
	if err != nil {
		return err
	}
	if userID == me.ID {
		return common.ErrSelfDelete
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		if err := s.repos.Sessions(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		ok, err := s.repos.Users(tx).Delete(ctx, userID)
		if err != nil {
			if store.IsForeignKeyViolation(err) {
				return common.ErrUserInUse
			}
			return err
		}
		if !ok {
			return common.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "user deleted", "user_id", userID, "by", me.ID)
	return nil
}
