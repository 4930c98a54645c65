package dto

import (
	"time"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// ElementTableResponse is a projected element table.
type ElementTableResponse struct {
	DatasetVersion string                `json:"datasetVersion" yaml:"datasetVersion"`
	Table          entities.ElementTable `json:"table" yaml:"table"`
	// Elements and Patterns are the "N Elements (M Patterns)" counters
	Elements int `json:"elements" yaml:"elements"`
	Patterns int `json:"patterns" yaml:"patterns"`
}

// RoleTableResponse is a role x property table.
type RoleTableResponse struct {
	DatasetVersion string             `json:"datasetVersion" yaml:"datasetVersion"`
	Table          entities.RoleTable `json:"table" yaml:"table"`
}

// LookupResponse lists the classification of properties on one element,
// for its base row and each conditional pattern.
type LookupResponse struct {
	Element  string          `json:"element" yaml:"element"`
	Version  string          `json:"version" yaml:"version"`
	Variants []LookupVariant `json:"variants" yaml:"variants"`
}

// LookupVariant is one row of the element.
type LookupVariant struct {
	Condition    string       `json:"condition,omitempty" yaml:"condition,omitempty"`
	ImplicitRole string       `json:"implicitRole,omitempty" yaml:"implicitRole,omitempty"`
	Deprecated   bool         `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Properties   []LookupCell `json:"properties" yaml:"properties"`
}

// LookupCell is the rendered status of one property.
type LookupCell struct {
	Property string         `json:"property" yaml:"property"`
	Code     int            `json:"code" yaml:"code"`
	Status   string         `json:"status" yaml:"status"`
	Verdict  values.Verdict `json:"verdict" yaml:"verdict"`
	Label    string         `json:"label" yaml:"label"`
	Ref      string         `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// SitePage is one HTML page of the static site.
type SitePage struct {
	// Path is relative to the output directory
	Path     string
	Title    string
	Version  values.ARIAVersion
	Elements ElementTableResponse
	Roles    entities.RoleTable
	// Versions lists every page for the version switcher
	Versions []PageLink
}

// PageLink points at a sibling page.
type PageLink struct {
	Version values.ARIAVersion
	Path    string
	Current bool
}

// SiteContent is everything the site writer renders.
type SiteContent struct {
	BuildID        values.BuildID
	DatasetVersion string
	GeneratedAt    time.Time
	Pages          []SitePage
	Sheet          *entities.Sheet
}

// SiteManifest describes a finished build (manifest.json).
type SiteManifest struct {
	BuildID        values.BuildID `json:"buildId"`
	DatasetVersion string         `json:"datasetVersion"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	Files          []SiteFile     `json:"files"`
}

// SiteFile is one written artifact.
type SiteFile struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// BuildSiteResponse contains the result of a site build.
type BuildSiteResponse struct {
	Manifest SiteManifest
	OutDir   string
	Metadata ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}
