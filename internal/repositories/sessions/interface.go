package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
