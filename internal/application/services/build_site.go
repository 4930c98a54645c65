package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// PagePath returns the site path of a version's page. The default version
// is the index page.
func PagePath(version values.ARIAVersion) string {
	if version == values.DefaultARIAVersion {
		return "index.html"
	}
	return fmt.Sprintf("aria-%s.html", version)
}

// BuildSiteUseCase orchestrates the static site build.
// This is a pure application layer component that depends only on ports.
type BuildSiteUseCase struct {
	sheets *SheetService
	writer ports.SiteWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewBuildSiteUseCase creates a new build site use case.
func NewBuildSiteUseCase(sheets *SheetService, writer ports.SiteWriter, logger *slog.Logger) *BuildSiteUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildSiteUseCase{
		sheets: sheets,
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// Execute computes every page and hands them to the site writer.
func (uc *BuildSiteUseCase) Execute(ctx context.Context, req dto.BuildSiteRequest) (*dto.BuildSiteResponse, error) {
	startTime := uc.now()

	if req.OutDir == "" {
		return nil, apperrors.NewValidationError("out", "output directory is required")
	}
	filter, err := compileFilter(req.Filters)
	if err != nil {
		return nil, err
	}

	sheet, err := uc.sheets.Sheet(ctx, req.Dataset)
	if err != nil {
		return nil, err
	}

	content := dto.SiteContent{
		BuildID:        values.NewBuildID(),
		DatasetVersion: sheet.DatasetVersion,
		GeneratedAt:    startTime.UTC(),
		Sheet:          sheet,
	}

	versions := values.SupportedARIAVersions()
	for _, version := range versions {
		elements, ok := sheet.ElementTable(version)
		if !ok {
			continue
		}
		roles, ok := sheet.RoleTable(version)
		if !ok {
			continue
		}

		p := filter.Apply(*elements)
		page := dto.SitePage{
			Path:    PagePath(version),
			Title:   fmt.Sprintf("WAI-ARIA %s Cheat Sheet", version),
			Version: version,
			Elements: dto.ElementTableResponse{
				DatasetVersion: sheet.DatasetVersion,
				Table:          p.Table,
				Elements:       p.Elements,
				Patterns:       p.Patterns,
			},
			Roles: *roles,
		}
		for _, other := range versions {
			page.Versions = append(page.Versions, dto.PageLink{
				Version: other,
				Path:    PagePath(other),
				Current: other == version,
			})
		}
		content.Pages = append(content.Pages, page)
	}

	uc.logger.Info("rendering site", "out", req.OutDir, "pages", len(content.Pages), "build_id", content.BuildID)

	manifest, err := uc.writer.WriteSite(ctx, req.OutDir, content)
	if err != nil {
		return nil, fmt.Errorf("failed to write site: %w", err)
	}

	return &dto.BuildSiteResponse{
		Manifest: *manifest,
		OutDir:   req.OutDir,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: uc.now(),
			Duration:    uc.now().Sub(startTime),
		},
	}, nil
}
