package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// RowEnv defines the variables available during filter expression evaluation.
type RowEnv struct {
	Name         string   `expr:"name"`
	Selectors    []string `expr:"selectors"`
	Deprecated   bool     `expr:"deprecated"`
	ImplicitRole string   `expr:"implicitRole"`
	Conditional  bool     `expr:"conditional"`
}

// NewRowEnv builds the expression environment of a row.
func NewRowEnv(row *entities.ElementRow) RowEnv {
	return RowEnv{
		Name:         row.Name.String(),
		Selectors:    row.Selectors,
		Deprecated:   row.Deprecated,
		ImplicitRole: row.ImplicitRole,
		Conditional:  row.IsConditional(),
	}
}

// CompileRowExpression compiles a boolean filter expression over RowEnv.
func CompileRowExpression(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(RowEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// RowFilter is the explicit replacement for the interactive table toggles.
// The zero value hides deprecated rows and keeps everything else.
type RowFilter struct {
	showDeprecated bool
	search         string
	filterProgram  *vm.Program
}

// NewRowFilter initializes a new empty filter.
func NewRowFilter() *RowFilter {
	return &RowFilter{}
}

// WithDeprecated shows or hides deprecated and obsolete elements.
func (f *RowFilter) WithDeprecated(show bool) *RowFilter {
	f.showDeprecated = show
	return f
}

// WithSearch keeps only rows matching the search text.
func (f *RowFilter) WithSearch(text string) *RowFilter {
	f.search = text
	return f
}

// WithFilterExpression applies a compiled Expr program for advanced filtering.
func (f *RowFilter) WithFilterExpression(program *vm.Program) *RowFilter {
	f.filterProgram = program
	return f
}

// Keep evaluates whether a row is shown, with a reason when it is not.
func (f *RowFilter) Keep(row *entities.ElementRow) (bool, string) {
	return f.specification().IsSatisfiedBy(row)
}

func (f *RowFilter) specification() RowSpecification {
	var specs []RowSpecification

	if !f.showDeprecated {
		specs = append(specs, NotDeprecatedSpecification{})
	}
	if f.search != "" {
		specs = append(specs, NewSearchSpecification(f.search))
	}
	if f.filterProgram != nil {
		specs = append(specs, NewExpressionSpecification(f.filterProgram))
	}

	return NewAndSpecification(specs...)
}

// Projection is a filtered element table with its counters.
type Projection struct {
	Table entities.ElementTable
	// Elements counts the kept base rows
	Elements int
	// Patterns counts every kept row, conditional ones included
	Patterns int
}

// Apply projects a table. The input table is not modified.
func (f *RowFilter) Apply(table entities.ElementTable) Projection {
	out := table
	out.Rows = make([]entities.ElementRow, 0, len(table.Rows))

	spec := f.specification()
	p := Projection{}
	for i := range table.Rows {
		row := &table.Rows[i]
		if keep, _ := spec.IsSatisfiedBy(row); !keep {
			continue
		}
		out.Rows = append(out.Rows, *row)
		if !row.IsConditional() {
			p.Elements++
		}
	}
	p.Table = out
	p.Patterns = len(out.Rows)
	return p
}
