package services

import (
	"context"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
)

// TableQueryUseCase serves projected tables to the terminal commands.
type TableQueryUseCase struct {
	sheets *SheetService
}

// NewTableQueryUseCase creates a new table query use case.
func NewTableQueryUseCase(sheets *SheetService) *TableQueryUseCase {
	return &TableQueryUseCase{sheets: sheets}
}

// Elements returns the element table of a version with the filters applied.
func (uc *TableQueryUseCase) Elements(ctx context.Context, req dto.TableRequest) (*dto.ElementTableResponse, error) {
	filter, err := compileFilter(req.Filters)
	if err != nil {
		return nil, err
	}
	table, err := uc.sheets.ElementTable(ctx, req.Dataset, req.Version)
	if err != nil {
		return nil, err
	}
	ds, err := uc.sheets.Dataset(ctx, req.Dataset)
	if err != nil {
		return nil, err
	}

	p := filter.Apply(*table)
	return &dto.ElementTableResponse{
		DatasetVersion: ds.Version,
		Table:          p.Table,
		Elements:       p.Elements,
		Patterns:       p.Patterns,
	}, nil
}

// Roles returns the role x property table of a version.
func (uc *TableQueryUseCase) Roles(ctx context.Context, req dto.TableRequest) (*dto.RoleTableResponse, error) {
	table, err := uc.sheets.RoleTable(ctx, req.Dataset, req.Version)
	if err != nil {
		return nil, err
	}
	ds, err := uc.sheets.Dataset(ctx, req.Dataset)
	if err != nil {
		return nil, err
	}
	return &dto.RoleTableResponse{DatasetVersion: ds.Version, Table: *table}, nil
}
