package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

type CategoryService struct {
	store  *store.Store
	repos  repomanager.RepositoryManager
	auth   *AuthService
	logger logging.Logger
}

func NewCategoryService(st *store.Store, rm repomanager.RepositoryManager, auth *AuthService, logger logging.Logger) *CategoryService {
	return &CategoryService{store: st, repos: rm, auth: auth, logger: logger}
}

// List returns all categories ordered by type, then name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repos.Categories(s.store.DB()).List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, req models.CategoryCreateRequest) (*models.Category, error) {
	me, err := s.auth.requireWriter(ctx)
	if err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c := &models.Category{
		Name:        req.Name,
		Type:        req.Type,
		Description: trimOptional(req.Description),
		CreatedAt:   s.auth.now(),
	}
	if err := s.repos.Categories(s.store.DB()).Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "category created", "category_id", c.ID, "name", c.Name, "by", me.ID)
	return c, nil
}

// Update applies a partial patch to an existing category.
func (s *CategoryService) Update(ctx context.Context, req models.CategoryUpdateRequest) (*models.Category, error) {
	me, err := s.auth.requireWriter(ctx)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	repo := s.repos.Categories(s.store.DB())
	c, err := repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, common.ErrCategoryNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Description != nil {
		c.Description = trimOptional(req.Description)
	}
	if err := repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "category updated", "category_id", c.ID, "by", me.ID)
	return c, nil
}

// Delete removes a category that no part references.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	me, err := s.auth.requireAdmin(ctx)
	if err != nil {
		return err
	}
	ok, err := s.repos.Categories(s.store.DB()).Delete(ctx, id)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return common.ErrCategoryInUse
		}
		return err
	}
	if !ok {
		return common.ErrCategoryNotFound
	}
	s.logger.Info(ctx, "category deleted", "category_id", id, "by", me.ID)
	return nil
}

// trimOptional trims s and maps blank text to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
