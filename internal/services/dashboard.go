package services

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type DashboardService struct {
	store  *store.Store
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewDashboardService(st *store.Store, rm repomanager.RepositoryManager, logger logging.Logger) *DashboardService {
	return &DashboardService{store: st, repos: rm, logger: logger}
}

// Stats aggregates inventory totals, per-category counts and the most recent
// activity.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	reports := s.repos.Reports(s.store.X())

	sum, err := reports.Summary(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := reports.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	recent, _, err := s.repos.Activity(s.store.DB()).List(ctx, models.RecentActivityLimit, 0)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalParts:      sum.TotalParts,
		TotalQuantity:   sum.TotalQuantity,
		LowStockCount:   sum.LowStockCount,
		OutOfStockCount: sum.OutOfStockCount,
		CategoryCounts:  counts,
		RecentActivity:  recent,
	}, nil
}

// ActivityLog returns one page of the audit trail, newest first.
func (s *DashboardService) ActivityLog(ctx context.Context, page, limit int) (*models.Page[models.ActivityLog], error) {
	page, limit = models.NormalizePage(page, limit, models.DefaultActivityLimit)
	list, total, err := s.repos.Activity(s.store.DB()).List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return models.NewPage(list, total, page, limit), nil
}
