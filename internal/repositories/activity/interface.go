package activity

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type Repository interface {
	Append(ctx context.Context, a *models.ActivityLog) error
	DeleteByPart(ctx context.Context, partID int64) error
	List(ctx context.Context, limit, offset int) ([]models.ActivityLog, int, error)
}
