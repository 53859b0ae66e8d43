package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_CreateListUpdate(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleEditor)

	h.category(t, ctx, "Valves", models.CategoryPiping)
	c, err := h.cats.Create(ctx, models.CategoryCreateRequest{Name: "  Bolts ", Type: models.CategoryMechanical, Description: strp("  ")})
	require.NoError(t, err)
	assert.Equal(t, "Bolts", c.Name)
	assert.Nil(t, c.Description)

	list, err := h.cats.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bolts", list[0].Name, "mechanical sorts before piping")

	typ := models.CategoryElectrical
	c, err = h.cats.Update(ctx, models.CategoryUpdateRequest{ID: c.ID, Type: &typ, Description: strp("Hex bolts")})
	require.NoError(t, err)
	assert.Equal(t, "Bolts", c.Name)
	assert.Equal(t, models.CategoryElectrical, c.Type)
	assert.Equal(t, "Hex bolts", *c.Description)

	_, err = h.cats.Update(ctx, models.CategoryUpdateRequest{ID: 4040, Name: strp("x")})
	assert.ErrorIs(t, err, common.ErrCategoryNotFound)
	assert.Equal(t, "Category not found", err.Error())
}

func TestCategories_Validation(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleEditor)

	_, err := h.cats.Create(ctx, models.CategoryCreateRequest{Name: "Gadgets", Type: "gizmo"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = h.cats.Create(ctx, models.CategoryCreateRequest{Name: " ", Type: models.CategoryPiping})
	assert.ErrorIs(t, err, common.ErrValidation)

	bad := models.CategoryType("gizmo")
	c := h.category(t, ctx, "Pipes", models.CategoryPiping)
	_, err = h.cats.Update(ctx, models.CategoryUpdateRequest{ID: c.ID, Type: &bad})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCategories_DeleteBlockedWhileReferenced(t *testing.T) {
	h := newHarness(t)
	adminCtx, _ := h.as(t, "ADMIN001", models.RoleAdmin)

	used := h.category(t, adminCtx, "Bolts", models.CategoryMechanical)
	unused := h.category(t, adminCtx, "Spare", models.CategorySpecialty)
	h.part(t, adminCtx, "M8 Bolt", "blt-1", 3, nil, used.ID)

	err := h.cats.Delete(adminCtx, used.ID)
	assert.ErrorIs(t, err, common.ErrCategoryInUse)

	require.NoError(t, h.cats.Delete(adminCtx, unused.ID))
	assert.ErrorIs(t, h.cats.Delete(adminCtx, unused.ID), common.ErrCategoryNotFound)

	list, err := h.cats.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, used.ID, list[0].ID)
}

func TestCategories_Permissions(t *testing.T) {
	h := newHarness(t)
	editorCtx, _ := h.as(t, "EMP001", models.RoleEditor)
	viewerCtx, _ := h.as(t, "EMP002", models.RoleUser)
	c := h.category(t, editorCtx, "Bolts", models.CategoryMechanical)

	_, err := h.cats.Create(viewerCtx, models.CategoryCreateRequest{Name: "x", Type: models.CategoryPiping})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.ErrorIs(t, h.cats.Delete(editorCtx, c.ID), common.ErrUnauthorized)
}
