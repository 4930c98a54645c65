// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// DatasetOptions locates the upstream dataset.
type DatasetOptions struct {
	// Path is the index.json path (its package.json sibling is optional)
	Path string
	// VersionConstraint is an optional semver constraint on the dataset version
	VersionConstraint string
}

// FilterOptions is the explicit form of the table toggles.
type FilterOptions struct {
	ShowDeprecated   bool
	Search           string
	FilterExpression string
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}

// TableRequest asks for one projected element table or role table.
type TableRequest struct {
	Dataset DatasetOptions
	Version values.ARIAVersion
	Filters FilterOptions
}

// LookupRequest asks for the status of properties on one element.
type LookupRequest struct {
	Dataset DatasetOptions
	Version values.ARIAVersion
	Element string
	// Properties are aria-* names; empty means all of them
	Properties []string
}

// LintRequest asks to check one HTML document.
type LintRequest struct {
	Dataset DatasetOptions
	Version values.ARIAVersion
	// Source names the document in findings (a path or "-")
	Source string
	// Content is the raw document
	Content []byte
}

// BuildSiteRequest encapsulates all inputs needed to build the static site.
type BuildSiteRequest struct {
	Dataset  DatasetOptions
	OutDir   string
	Filters  FilterOptions
	Metadata RequestMetadata
}
