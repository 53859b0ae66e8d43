package parts

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Part) error
	GetByID(ctx context.Context, id int64) (*models.Part, error)
	List(ctx context.Context, f models.PartsFilter) ([]models.Part, int, error)
	Update(ctx context.Context, p *models.Part) error
	Delete(ctx context.Context, id int64) error
}
