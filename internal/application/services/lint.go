package services

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/services"
)

// LintUseCase checks HTML documents against the cheat sheet.
type LintUseCase struct {
	sheets *SheetService
	parser ports.DocumentParser
	logger *slog.Logger
}

// NewLintUseCase creates a new lint use case.
func NewLintUseCase(sheets *SheetService, parser ports.DocumentParser, logger *slog.Logger) *LintUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LintUseCase{sheets: sheets, parser: parser, logger: logger}
}

// Execute parses the document and reports its findings. Error level
// findings do not make Execute fail; callers decide with HasErrors.
func (uc *LintUseCase) Execute(ctx context.Context, req dto.LintRequest) (*entities.LintReport, error) {
	table, err := uc.sheets.ElementTable(ctx, req.Dataset, req.Version)
	if err != nil {
		return nil, err
	}

	tags, err := uc.parser.ParseTags(ctx, req.Content)
	if err != nil {
		return nil, apperrors.NewValidationError("document", "failed to parse "+req.Source, err.Error())
	}

	report := &entities.LintReport{
		Source:   req.Source,
		Version:  table.Version,
		Tags:     len(tags),
		Findings: services.NewLinter(table).Check(tags),
	}
	if report.Findings == nil {
		report.Findings = []entities.Finding{}
	}

	uc.logger.Debug("document checked", "source", req.Source, "tags", report.Tags,
		"errors", report.Errors(), "warnings", report.Warnings())
	return report, nil
}
