package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type PartService struct {
	store  *store.Store
	repos  repomanager.RepositoryManager
	auth   *AuthService
	logger logging.Logger
}

func NewPartService(st *store.Store, rm repomanager.RepositoryManager, auth *AuthService, logger logging.Logger) *PartService {
	return &PartService{store: st, repos: rm, auth: auth, logger: logger}
}

// List returns one page of parts matching f.
func (s *PartService) List(ctx context.Context, f models.PartsFilter) (*models.Page[models.Part], error) {
	if err := validateRequest(f); err != nil {
		return nil, err
	}
	f = f.WithDefaults()
	list, total, err := s.repos.Parts(s.store.DB()).List(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.NewPage(list, total, f.Page, f.Limit), nil
}

// GetByID returns nil, nil when the part does not exist.
func (s *PartService) GetByID(ctx context.Context, id int64) (*models.Part, error) {
	return s.repos.Parts(s.store.DB()).GetByID(ctx, id)
}

func normalizePart(p *models.Part) {
	p.Name = strings.TrimSpace(p.Name)
	p.PartNumber = strings.ToUpper(strings.TrimSpace(p.PartNumber))
	p.BoxNumber = strings.ToUpper(strings.TrimSpace(p.BoxNumber))
	p.Description = trimOptional(p.Description)
	p.Status = models.ComputeStatus(p.Quantity, p.MinQuantity)
}

func trimRequired(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func (s *PartService) Create(ctx context.Context, req models.PartCreateRequest) (*models.Part, error) {
	me, err := s.auth.requireWriter(ctx)
	if err != nil {
		return nil, err
	}
	trimRequired(&req.Name)
	trimRequired(&req.PartNumber)
	trimRequired(&req.BoxNumber)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	minQty := models.DefaultMinQuantity
	if req.MinQuantity != nil {
		minQty = *req.MinQuantity
	}
	now := s.auth.now()
	p := &models.Part{
		Name:        req.Name,
		PartNumber:  req.PartNumber,
		BoxNumber:   req.BoxNumber,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		MinQuantity: minQty,
		CreatedBy:   me.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	normalizePart(p)

	err = s.store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		if err := s.repos.Parts(tx).Create(ctx, p); err != nil {
			if store.IsForeignKeyViolation(err) {
				return common.ErrCategoryNotFound
			}
			return err
		}
		return s.record(ctx, tx, me.ID, models.ActionCreated, &p.ID, "Created part: "+p.Name)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "part created", "part_id", p.ID, "part_number", p.PartNumber, "by", me.ID)
	return s.reload(ctx, p)
}

// Update applies a partial patch and recomputes the status from the merged
// quantity and threshold.
func (s *PartService) Update(ctx context.Context, req models.PartUpdateRequest) (*models.Part, error) {
	me, err := s.auth.requireWriter(ctx)
	if err != nil {
		return nil, err
	}
	trimRequired(req.Name)
	trimRequired(req.PartNumber)
	trimRequired(req.BoxNumber)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var p *models.Part
	err = s.store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		repo := s.repos.Parts(tx)
		var err error
		p, err = repo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return common.ErrPartNotFound
		}
		req.Apply(p)
		normalizePart(p)
		p.UpdatedAt = s.auth.now()

		if err := repo.Update(ctx, p); err != nil {
			if store.IsForeignKeyViolation(err) {
				return common.ErrCategoryNotFound
			}
			return err
		}
		return s.record(ctx, tx, me.ID, models.ActionUpdated, &p.ID, "Updated part: "+p.Name)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "part updated", "part_id", p.ID, "status", p.Status, "by", me.ID)
	return s.reload(ctx, p)
}

// Delete removes a part and its activity history, then records the deletion
// without a part reference.
func (s *PartService) Delete(ctx context.Context, id int64) error {
	me, err := s.auth.requireAdmin(ctx)
	if err != nil {
		return err
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		repo := s.repos.Parts(tx)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return common.ErrPartNotFound
		}
		if err := s.repos.Activity(tx).DeleteByPart(ctx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, tx, me.ID, models.ActionDeleted, nil,
			fmt.Sprintf("Deleted part: %s (%s)", p.Name, p.PartNumber))
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "part deleted", "part_id", id, "by", me.ID)
	return nil
}

func (s *PartService) record(ctx context.Context, db store.DBTX, userID int64, action models.ActivityAction, partID *int64, details string) error {
	return s.repos.Activity(db).Append(ctx, &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		PartID:    partID,
		Details:   &details,
		CreatedAt: s.auth.now(),
	})
}

// reload returns the enriched stored copy of p, falling back to p itself if
// it cannot be read back.
func (s *PartService) reload(ctx context.Context, p *models.Part) (*models.Part, error) {
	stored, err := s.GetByID(ctx, p.ID)
	if err != nil || stored == nil {
		s.logger.Warn(ctx, "failed to reload part", "part_id", p.ID, "error", err)
		return p, nil
	}
	return stored, nil
}
