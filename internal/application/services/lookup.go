package services

import (
	"context"
	"strings"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

const maxSuggestions = 3

// LookupUseCase answers "may I put this aria-* attribute on that element?".
type LookupUseCase struct {
	sheets *SheetService
}

// NewLookupUseCase creates a new lookup use case.
func NewLookupUseCase(sheets *SheetService) *LookupUseCase {
	return &LookupUseCase{sheets: sheets}
}

// Execute classifies the requested properties for every row of the element.
func (uc *LookupUseCase) Execute(ctx context.Context, req dto.LookupRequest) (*dto.LookupResponse, error) {
	table, err := uc.sheets.ElementTable(ctx, req.Dataset, req.Version)
	if err != nil {
		return nil, err
	}

	element := strings.ToLower(strings.TrimSpace(req.Element))
	rows := table.RowsFor(strings.Replace(element, ":", "|", 1))
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("element", req.Element, req.Version.String(),
			suggest(element, elementNames(table))...)
	}

	columns, err := propColumns(table, req)
	if err != nil {
		return nil, err
	}

	resp := &dto.LookupResponse{
		Element: rows[0].Name.String(),
		Version: table.Version.String(),
	}
	for _, row := range rows {
		variant := dto.LookupVariant{
			Condition:    row.Condition,
			ImplicitRole: row.ImplicitRole,
			Deprecated:   row.Deprecated,
			Properties:   make([]dto.LookupCell, 0, len(columns)),
		}
		for _, col := range columns {
			cell := row.Props[col]
			variant.Properties = append(variant.Properties, dto.LookupCell{
				Property: table.Props[col].Name,
				Code:     cell.Status.Code(),
				Status:   cell.Status.String(),
				Verdict:  cell.Status.Verdict(),
				Label:    cell.Label(),
				Ref:      cell.Ref,
			})
		}
		resp.Variants = append(resp.Variants, variant)
	}
	return resp, nil
}

// propColumns resolves the requested properties to table columns.
// Names without the aria- prefix are accepted.
func propColumns(table *entities.ElementTable, req dto.LookupRequest) ([]int, error) {
	if len(req.Properties) == 0 {
		cols := make([]int, len(table.Props))
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}

	names := make([]string, 0, len(table.Props))
	for _, p := range table.Props {
		names = append(names, p.Name)
	}

	cols := make([]int, 0, len(req.Properties))
	for _, prop := range req.Properties {
		name := strings.ToLower(strings.TrimSpace(prop))
		if !strings.HasPrefix(name, "aria-") {
			name = "aria-" + name
		}
		idx := table.PropIndex(name)
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("property", prop, req.Version.String(), suggest(name, names)...)
		}
		cols = append(cols, idx)
	}
	return cols, nil
}

func elementNames(table *entities.ElementTable) []string {
	var names []string
	for _, row := range table.Rows {
		if !row.IsConditional() {
			names = append(names, row.Name.String())
		}
	}
	return names
}

// suggest returns up to three candidates sharing a prefix or a substring
// with the name. The aria- prefix is ignored when comparing.
func suggest(name string, candidates []string) []string {
	name = strings.TrimPrefix(name, "aria-")
	if name == "" {
		return nil
	}
	var out []string
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		bare := strings.TrimPrefix(c, "aria-")
		if strings.Contains(bare, name) || strings.Contains(name, bare) || commonPrefix(name, bare) >= 3 {
			out = append(out, c)
		}
	}
	return out
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
