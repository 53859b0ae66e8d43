package api

import (
	"context"

	"github.com/dmitrijs2005/sparekeeper/internal/models"
)

type StatsResult struct {
	Result
	Stats *models.DashboardStats `json:"stats,omitempty"`
}

type ActivityResult struct {
	Result
	Activity *models.Page[models.ActivityLog] `json:"activity,omitempty"`
}

type PreviewResult struct {
	Result
	*models.ImportPreview
}

type ImportResult struct {
	Result
	models.ImportResult
}

type ExportResult struct {
	Result
	FilePath string `json:"filePath,omitempty"`
}

func (b *Bridge) DashboardStats(ctx context.Context) StatsResult {
	st, err := b.svc.Dashboard.Stats(b.session(ctx))
	if err != nil {
		return StatsResult{Result: b.fail(ctx, "dashboard", err)}
	}
	return StatsResult{Result: ok(), Stats: st}
}

func (b *Bridge) ActivityLog(ctx context.Context, page, limit int) ActivityResult {
	p, err := b.svc.Dashboard.ActivityLog(b.session(ctx), page, limit)
	if err != nil {
		return ActivityResult{Result: b.fail(ctx, "activity listing", err)}
	}
	return ActivityResult{Result: ok(), Activity: p}
}

// PreviewImport reads the workbook at path so columns can be mapped.
func (b *Bridge) PreviewImport(ctx context.Context, path string) PreviewResult {
	p, err := b.svc.Transfer.PreviewImport(b.session(ctx), path)
	if err != nil {
		return PreviewResult{Result: failed(b.message(ctx, "import preview", "Failed to read Excel file", err))}
	}
	return PreviewResult{Result: ok(), ImportPreview: p}
}

// ImportRows succeeds whenever the batch ran, even if some rows were
// rejected; those are listed in Errors.
func (b *Bridge) ImportRows(ctx context.Context, req models.ImportRequest) ImportResult {
	res, err := b.svc.Transfer.ImportRows(b.session(ctx), req)
	if err != nil {
		return ImportResult{Result: b.fail(ctx, "import", err)}
	}
	return ImportResult{Result: ok(), ImportResult: *res}
}

// ExportAll writes every part to dest. An empty dest is a cancelled export.
func (b *Bridge) ExportAll(ctx context.Context, dest string) ExportResult {
	loc, err := b.svc.Transfer.ExportAll(b.session(ctx), dest)
	if err != nil {
		return ExportResult{Result: b.fail(ctx, "export", err)}
	}
	return ExportResult{Result: ok(), FilePath: loc}
}
