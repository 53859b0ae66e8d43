package api

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type PartsResult struct {
	Result
	Parts *models.Page[models.Part] `json:"parts,omitempty"`
}

type PartResult struct {
	Result
	Part *models.Part `json:"part,omitempty"`
}

type CategoriesResult struct {
	Result
	Categories []models.Category `json:"data"`
}

type CategoryResult struct {
	Result
	Category *models.Category `json:"category,omitempty"`
}

func (b *Bridge) ListParts(ctx context.Context, f models.PartsFilter) PartsResult {
	page, err := b.svc.Parts.List(b.session(ctx), f)
	if err != nil {
		return PartsResult{Result: b.fail(ctx, "part listing", err)}
	}
	return PartsResult{Result: ok(), Parts: page}
}

// GetPart succeeds with a nil Part when id is unknown.
func (b *Bridge) GetPart(ctx context.Context, id int64) PartResult {
	p, err := b.svc.Parts.GetByID(b.session(ctx), id)
	if err != nil {
		return PartResult{Result: b.fail(ctx, "part lookup", err)}
	}
	return PartResult{Result: ok(), Part: p}
}

func (b *Bridge) CreatePart(ctx context.Context, req models.PartCreateRequest) PartResult {
	p, err := b.svc.Parts.Create(b.session(ctx), req)
	if err != nil {
		return PartResult{Result: b.fail(ctx, "part creation", err)}
	}
	return PartResult{Result: ok(), Part: p}
}

func (b *Bridge) UpdatePart(ctx context.Context, req models.PartUpdateRequest) PartResult {
	p, err := b.svc.Parts.Update(b.session(ctx), req)
	if err != nil {
		return PartResult{Result: b.fail(ctx, "part update", err)}
	}
	return PartResult{Result: ok(), Part: p}
}

func (b *Bridge) DeletePart(ctx context.Context, id int64) Result {
	if err := b.svc.Parts.Delete(b.session(ctx), id); err != nil {
		return b.fail(ctx, "part deletion", err)
	}
	return ok()
}

func (b *Bridge) ListCategories(ctx context.Context) CategoriesResult {
	list, err := b.svc.Categories.List(b.session(ctx))
	if err != nil {
		return CategoriesResult{Result: b.fail(ctx, "category listing", err)}
	}
	return CategoriesResult{Result: ok(), Categories: list}
}

func (b *Bridge) CreateCategory(ctx context.Context, req models.CategoryCreateRequest) CategoryResult {
	c, err := b.svc.Categories.Create(b.session(ctx), req)
	if err != nil {
		return CategoryResult{Result: b.fail(ctx, "category creation", err)}
	}
	return CategoryResult{Result: ok(), Category: c}
}

func (b *Bridge) UpdateCategory(ctx context.Context, req models.CategoryUpdateRequest) CategoryResult {
	c, err := b.svc.Categories.Update(b.session(ctx), req)
	if err != nil {
		return CategoryResult{Result: b.fail(ctx, "category update", err)}
	}
	return CategoryResult{Result: ok(), Category: c}
}

func (b *Bridge) DeleteCategory(ctx context.Context, id int64) Result {
	if err := b.svc.Categories.Delete(b.session(ctx), id); err != nil {
		return b.fail(ctx, "category deletion", err)
	}
	return ok()
}
