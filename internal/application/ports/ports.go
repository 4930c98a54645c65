// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// DatasetLoader loads and validates the upstream dataset.
type DatasetLoader interface {
	// LoadDataset reads index.json and, when present, its package.json version.
	LoadDataset(ctx context.Context, path string) (*entities.Dataset, error)
}

// DocumentParser extracts start tags from an HTML document.
type DocumentParser interface {
	ParseTags(ctx context.Context, content []byte) ([]entities.Tag, error)
}

// SiteWriter renders and writes the static site.
type SiteWriter interface {
	WriteSite(ctx context.Context, outDir string, content dto.SiteContent) (*dto.SiteManifest, error)
}

// OutputFormatter renders query results for the terminal or for tools.
// Formats that cannot represent a result return an error.
type OutputFormatter interface {
	FormatElements(resp *dto.ElementTableResponse) error
	FormatMatrix(resp *dto.ElementTableResponse) error
	FormatPermittedRoles(resp *dto.ElementTableResponse) error
	FormatRoles(resp *dto.RoleTableResponse) error
	FormatLookup(resp *dto.LookupResponse) error
	FormatLint(reports []*entities.LintReport) error
}

// FormatterOptions tunes formatter output.
type FormatterOptions struct {
	// Indent pretty-prints JSON output
	Indent bool
	// Color enables styled terminal output
	Color bool
	// ToolVersion is reported by SARIF output
	ToolVersion string
}
