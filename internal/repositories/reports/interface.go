package reports

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

// Summary holds the inventory totals shown on the dashboard.
type Summary struct {
	TotalParts      int `db:"total_parts"`
	TotalQuantity   int `db:"total_quantity"`
	LowStockCount   int `db:"low_stock"`
	OutOfStockCount int `db:"out_of_stock"`
}

type Repository interface {
	Summary(ctx context.Context) (*Summary, error)
	CategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	ExportRows(ctx context.Context) ([]models.ExportRow, error)
}
