package services

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/cases"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// RowSpecification defines a condition that a table row must meet.
type RowSpecification interface {
	// IsSatisfiedBy checks if the row meets the specification.
	// Returns true if satisfied, along with a reason if not (or empty if satisfied).
	IsSatisfiedBy(row *entities.ElementRow) (bool, string)
}

// AndSpecification combines multiple specifications with logical AND.
type AndSpecification struct {
	specs []RowSpecification
}

// NewAndSpecification creates a new AndSpecification.
func NewAndSpecification(specs ...RowSpecification) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(row *entities.ElementRow) (bool, string) {
	for _, spec := range s.specs {
		if satisfied, reason := spec.IsSatisfiedBy(row); !satisfied {
			return false, reason
		}
	}
	return true, ""
}

// NotDeprecatedSpecification hides deprecated and obsolete elements.
type NotDeprecatedSpecification struct{}

// IsSatisfiedBy checks the row's deprecated flag.
func (NotDeprecatedSpecification) IsSatisfiedBy(row *entities.ElementRow) (bool, string) {
	if row.Deprecated {
		return false, "deprecated element hidden"
	}
	return true, ""
}

// SearchSpecification keeps rows whose tag or one of whose selectors contains
// the search text, compared case-folded.
type SearchSpecification struct {
	needle string
}

// NewSearchSpecification creates a new SearchSpecification.
func NewSearchSpecification(text string) *SearchSpecification {
	return &SearchSpecification{needle: fold(strings.TrimSpace(text))}
}

// IsSatisfiedBy matches the tag name and each split selector.
func (s *SearchSpecification) IsSatisfiedBy(row *entities.ElementRow) (bool, string) {
	if s.needle == "" {
		return true, ""
	}
	if strings.Contains(fold(row.Name.String()), s.needle) {
		return true, ""
	}
	for _, sel := range row.Selectors {
		if strings.Contains(fold(sel), s.needle) {
			return true, ""
		}
	}
	return false, "excluded by --search"
}

// Casers carry state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ExpressionSpecification filters rows using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the expr program against the row.
func (s *ExpressionSpecification) IsSatisfiedBy(row *entities.ElementRow) (bool, string) {
	if s.program == nil {
		return true, ""
	}

	output, err := expr.Run(s.program, NewRowEnv(row))
	if err != nil {
		return false, fmt.Sprintf("filter expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("filter expression did not return boolean: %v", output)
	}

	if !result {
		return false, "excluded by --filter expression"
	}

	return true, ""
}
