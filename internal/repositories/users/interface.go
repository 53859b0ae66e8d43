package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByServiceNumber(ctx context.Context, serviceNumber string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id int64, role models.Role, now time.Time) (bool, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string, now time.Time) error
	Delete(ctx context.Context, id int64) (bool, error)
}
