// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/application/ports"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/services"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// SheetService loads datasets and memoizes the transformer output per
// dataset path and ARIA version.
type SheetService struct {
	loader ports.DatasetLoader
	logger *slog.Logger

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]*sheetEntry
}

type sheetEntry struct {
	dataset     *entities.Dataset
	transformer *services.SpecTransformer

	mu       sync.Mutex
	elements map[values.ARIAVersion]*entities.ElementTable
	roles    map[values.ARIAVersion]*entities.RoleTable
}

// NewSheetService creates a new sheet service.
func NewSheetService(loader ports.DatasetLoader, logger *slog.Logger) *SheetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetService{
		loader: loader,
		logger: logger,
		cache:  make(map[string]*sheetEntry),
	}
}

// Dataset returns the loaded dataset for the options.
func (s *SheetService) Dataset(ctx context.Context, opts dto.DatasetOptions) (*entities.Dataset, error) {
	entry, err := s.entry(ctx, opts)
	if err != nil {
		return nil, err
	}
	return entry.dataset, nil
}

// ElementTable returns the memoized element table of a version.
func (s *SheetService) ElementTable(ctx context.Context, opts dto.DatasetOptions, version values.ARIAVersion) (*entities.ElementTable, error) {
	if err := version.Validate(); err != nil {
		return nil, apperrors.NewValidationError("version", err.Error())
	}
	entry, err := s.entry(ctx, opts)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if table, ok := entry.elements[version]; ok {
		return table, nil
	}
	table := entry.transformer.ElementTable(version)
	entry.elements[version] = &table
	s.logger.Debug("element table computed", "version", version, "rows", len(table.Rows), "props", len(table.Props))
	return &table, nil
}

// RoleTable returns the memoized role table of a version.
func (s *SheetService) RoleTable(ctx context.Context, opts dto.DatasetOptions, version values.ARIAVersion) (*entities.RoleTable, error) {
	if err := version.Validate(); err != nil {
		return nil, apperrors.NewValidationError("version", err.Error())
	}
	entry, err := s.entry(ctx, opts)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if table, ok := entry.roles[version]; ok {
		return table, nil
	}
	table := entry.transformer.RoleTable(version)
	entry.roles[version] = &table
	return &table, nil
}

// Sheet assembles the full sheet from the memoized tables, newest version first.
func (s *SheetService) Sheet(ctx context.Context, opts dto.DatasetOptions) (*entities.Sheet, error) {
	ds, err := s.Dataset(ctx, opts)
	if err != nil {
		return nil, err
	}

	sheet := &entities.Sheet{DatasetVersion: ds.Version}
	for _, version := range values.SupportedARIAVersions() {
		elements, err := s.ElementTable(ctx, opts, version)
		if err != nil {
			return nil, err
		}
		roles, err := s.RoleTable(ctx, opts, version)
		if err != nil {
			return nil, err
		}
		sheet.Elements = append(sheet.Elements, *elements)
		sheet.Roles = append(sheet.Roles, *roles)
	}
	return sheet, nil
}

// Invalidate drops the cached dataset so the next call reloads it.
func (s *SheetService) Invalidate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, path)
}

func (s *SheetService) entry(ctx context.Context, opts dto.DatasetOptions) (*sheetEntry, error) {
	s.mu.Lock()
	entry, ok := s.cache[opts.Path]
	s.mu.Unlock()
	if ok {
		return entry, nil
	}

	// concurrent renders of one path share a single load
	v, err, _ := s.group.Do(opts.Path, func() (interface{}, error) {
		return s.load(ctx, opts)
	})
	if err != nil {
		return nil, err
	}
	return v.(*sheetEntry), nil
}

func (s *SheetService) load(ctx context.Context, opts dto.DatasetOptions) (*sheetEntry, error) {
	s.logger.Debug("loading dataset", "path", opts.Path)

	ds, err := s.loader.LoadDataset(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	if ds.Version == "" {
		ds.Version = entities.UnknownDatasetVersion
	}
	if err := checkDatasetVersion(opts, ds.Version); err != nil {
		return nil, err
	}
	for _, version := range values.SupportedARIAVersions() {
		if !ds.HasARIA(version) {
			s.logger.Warn("dataset has no ARIA definitions for version", "version", version, "path", opts.Path)
		}
	}

	s.logger.Info("dataset loaded", "path", opts.Path, "version", ds.Version, "elements", ds.ElementCount())

	entry := &sheetEntry{
		dataset:     ds,
		transformer: services.NewSpecTransformer(ds),
		elements:    make(map[values.ARIAVersion]*entities.ElementTable),
		roles:       make(map[values.ARIAVersion]*entities.RoleTable),
	}

	s.mu.Lock()
	s.cache[opts.Path] = entry
	s.mu.Unlock()
	return entry, nil
}

func checkDatasetVersion(opts dto.DatasetOptions, version string) error {
	if opts.VersionConstraint == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(opts.VersionConstraint)
	if err != nil {
		return apperrors.NewConfigurationError("spec_version_constraint", "invalid constraint", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return apperrors.NewDatasetError(opts.Path,
			fmt.Sprintf("dataset version %q cannot be checked against %q", version, opts.VersionConstraint), err)
	}
	if !constraint.Check(v) {
		return apperrors.NewDatasetError(opts.Path,
			fmt.Sprintf("dataset version %s does not satisfy %q", v, opts.VersionConstraint), nil)
	}
	return nil
}

func compileFilter(opts dto.FilterOptions) (*services.RowFilter, error) {
	filter := services.NewRowFilter().
		WithDeprecated(opts.ShowDeprecated).
		WithSearch(opts.Search)

	if opts.FilterExpression != "" {
		program, err := services.CompileRowExpression(opts.FilterExpression)
		if err != nil {
			return nil, apperrors.NewValidationError("filter", "invalid filter expression", err.Error())
		}
		filter = filter.WithFilterExpression(program)
	}
	return filter, nil
}
