package categories

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) (bool, error)
}
