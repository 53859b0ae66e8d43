package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var mapping = models.ColumnMapping{
	Name:        "Name",
	PartNumber:  "PN",
	BoxNumber:   "Box",
	Quantity:    "Qty",
	Category:    "Category",
	Description: "Notes",
	MinQuantity: "Min",
}

func TestImport_PartialSuccess(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleEditor)
	cat := h.category(t, ctx, "Bolts", models.CategoryMechanical)

	res, err := h.xfer.ImportRows(ctx, models.ImportRequest{
		Rows: []models.Row{
			{"Name": "M8 Bolt", "PN": "blt-1", "Box": "a1", "Qty": "10", "Category": "bolts"},
			{"PN": "blt-2", "Box": "a2", "Qty": "4"},
			{"Name": "M10 Bolt", "PN": "blt-3", "Box": "a3", "Qty": "0", "Category": "BOLTS"},
		},
		Mapping: mapping,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []string{"Row 3: Missing name"}, res.Errors)
	assert.Empty(t, res.Warnings)

	page, err := h.parts.List(context.Background(), models.PartsFilter{SortBy: models.SortByName, SortOrder: models.SortAsc})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "M10 Bolt", page.Data[0].Name)
	assert.Equal(t, models.StatusOutOfStock, page.Data[0].Status)
	assert.Equal(t, "BLT-1", page.Data[1].PartNumber)
	assert.Equal(t, "A1", page.Data[1].BoxNumber)
	assert.Equal(t, cat.ID, page.Data[1].CategoryID)
	assert.Equal(t, models.StatusInStock, page.Data[1].Status)

	log, err := h.dash.ActivityLog(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ActionImported, log.Data[0].Action)
	assert.Equal(t, "Imported 2 parts from Excel", *log.Data[0].Details)
	assert.Nil(t, log.Data[0].PartID)
}

func TestImport_CategoryFallbackAndRowErrors(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleEditor)
	dflt := h.category(t, ctx, "Misc", models.CategorySpecialty)

	rows := []models.Row{
		{"Name": "A", "PN": "a", "Box": "x", "Qty": "2", "Category": "Widgets"},
		{"Name": "B", "PN": "b", "Box": "x", "Qty": "7.9", "Min": "3.2"},
		{"Name": "C", "PN": "c", "Box": "", "Qty": "1"},
		{"Name": "D", "PN": "", "Box": "x"},
		{"Name": "E", "PN": "e", "Box": "x", "Qty": "-4"},
		{"Name": "F", "PN": "f", "Box": "x", "Qty": "lots", "Min": "n/a", "Notes": "  spare  "},
	}

	res, err := h.xfer.ImportRows(ctx, models.ImportRequest{Rows: rows, Mapping: mapping, DefaultCategoryID: dflt.ID, DefaultMinQuantity: intp(1)})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, []string{`Row 2: Category "Widgets" not found, using default`}, res.Warnings)
	assert.Equal(t, []string{
		"Row 4: Missing box number",
		"Row 5: Missing part number",
		"Row 6: Quantity cannot be negative",
	}, res.Errors)

	b := findPart(t, h, "B")
	assert.Equal(t, 7, b.Quantity)
	assert.Equal(t, 3, b.MinQuantity)

	f := findPart(t, h, "F")
	assert.Equal(t, 0, f.Quantity)
	assert.Equal(t, 1, f.MinQuantity, "unparseable min falls back to the request default")
	assert.Equal(t, models.StatusOutOfStock, f.Status)
	require.NotNil(t, f.Description)
	assert.Equal(t, "spare", *f.Description)

	res, err = h.xfer.ImportRows(ctx, models.ImportRequest{Rows: rows[:1], Mapping: mapping})
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.Equal(t, []string{"Row 2: No category specified and no default set"}, res.Errors)
	assert.Len(t, res.Warnings, 1)
}

func TestImport_UnknownDefaultCategory(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP001", models.RoleEditor)

	res, err := h.xfer.ImportRows(ctx, models.ImportRequest{
		Rows:              []models.Row{{"Name": "A", "PN": "a", "Box": "x"}},
		Mapping:           mapping,
		DefaultCategoryID: 999,
	})
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.Equal(t, []string{"Row 2: Category not found"}, res.Errors)
}

func TestImport_RequiresWriter(t *testing.T) {
	h := newHarness(t)
	viewerCtx, _ := h.as(t, "EMP002", models.RoleUser)

	_, err := h.xfer.ImportRows(viewerCtx, models.ImportRequest{Mapping: mapping})
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = h.xfer.ImportRows(context.Background(), models.ImportRequest{Mapping: mapping})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func findPart(t *testing.T, h *harness, name string) models.Part {
	t.Helper()
	page, err := h.parts.List(context.Background(), models.PartsFilter{Search: name, Limit: models.MaxPageLimit})
	require.NoError(t, err)
	for _, p := range page.Data {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("part %q not found", name)
	return models.Part{}
}

func TestPreviewImport(t *testing.T) {
	h := newHarness(t)

	_, err := h.xfer.PreviewImport(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNoFileSelected)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "PN", "Box", "Qty"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"M8 Bolt", "blt-1", "a1", 10}))
	path := filepath.Join(t.TempDir(), "parts.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	p, err := h.xfer.PreviewImport(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "PN", "Box", "Qty"}, p.Columns)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "10", p.Rows[0]["Qty"])
}

func TestExportAll(t *testing.T) {
	h := newHarness(t)
	ctx, _ := h.as(t, "EMP002", models.RoleUser)
	editorCtx, _ := h.as(t, "EMP001", models.RoleEditor)
	cat := h.category(t, editorCtx, "Valves", models.CategoryPiping)
	h.part(t, editorCtx, "Gate Valve", "vlv-gt-2", 4, intp(3), cat.ID)
	h.part(t, editorCtx, "Ball Valve", "vlv-bl-1", 0, nil, cat.ID)

	_, err := h.xfer.ExportAll(ctx, "  ")
	assert.ErrorIs(t, err, common.ErrExportCancelled)

	_, err = h.xfer.ExportAll(context.Background(), "x.xlsx")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	name := DefaultExportName(h.clock.now())
	assert.Equal(t, "spare-parts-export-2025-06-01.xlsx", name)

	loc, err := h.xfer.ExportAll(ctx, filepath.Join("nested", name))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.xfer.exportDir, "nested", name), loc)

	p, err := spreadsheet.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, spreadsheet.ExportHeaders, p.Columns)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "Ball Valve", p.Rows[0]["Part Name"])
	assert.Equal(t, "OUT OF STOCK", p.Rows[0]["Status"])
	assert.Equal(t, "Valves", p.Rows[0]["Category"])
	assert.Equal(t, "piping", p.Rows[0]["Category Type"])
	assert.Equal(t, "VLV-GT-2", p.Rows[1]["Part Number"])
	assert.Equal(t, "IN STOCK", p.Rows[1]["Status"])
	assert.Equal(t, "2025-06-01 12:00:00", p.Rows[1]["Created At"])

	log, err := h.dash.ActivityLog(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ActionExported, log.Data[0].Action)
	assert.Equal(t, "Exported 2 parts to Excel", *log.Data[0].Details)
}

func TestDefaultExportName(t *testing.T) {
	assert.Equal(t, "spare-parts-export-2024-12-31.xlsx", DefaultExportName(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)))
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"7.9", 7, true},
		{"-2.5", -2, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1e40", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseCount(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
