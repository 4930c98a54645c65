package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// MockDatasetLoader is a mock implementation of ports.DatasetLoader
type MockDatasetLoader struct {
	mock.Mock
}

func (m *MockDatasetLoader) LoadDataset(ctx context.Context, path string) (*entities.Dataset, error) {
	args := m.Called(ctx, path)
	ds, _ := args.Get(0).(*entities.Dataset)
	return ds, args.Error(1)
}

// MockDocumentParser is a mock implementation of ports.DocumentParser
type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) ParseTags(ctx context.Context, content []byte) ([]entities.Tag, error) {
	args := m.Called(ctx, content)
	tags, _ := args.Get(0).([]entities.Tag)
	return tags, args.Error(1)
}

// MockSiteWriter is a mock implementation of ports.SiteWriter
type MockSiteWriter struct {
	mock.Mock
}

func (m *MockSiteWriter) WriteSite(ctx context.Context, outDir string, content dto.SiteContent) (*dto.SiteManifest, error) {
	args := m.Called(ctx, outDir, content)
	manifest, _ := args.Get(0).(*dto.SiteManifest)
	return manifest, args.Error(1)
}

const sampleDataset = `{
	"def": {"#aria": {
		"1.2": {
			"props": [
				{"name": "aria-hidden", "isGlobal": true},
				{"name": "aria-label"},
				{"name": "aria-level"}
			],
			"roles": [
				{"name": "button"},
				{"name": "heading", "ownedProperties": [{"name": "aria-level", "required": true}]},
				{"name": "img", "ownedProperties": [{"name": "aria-label"}]}
			],
			"graphicsRoles": [{"name": "graphics-symbol"}]
		},
		"1.1": {
			"props": [{"name": "aria-hidden", "isGlobal": true}, {"name": "aria-label"}],
			"roles": [{"name": "img", "ownedProperties": [{"name": "aria-label"}]}],
			"graphicsRoles": []
		}
	}},
	"specs": [
		{"name": "img", "attributes": {"alt": {}}, "aria": {
			"implicitRole": "img",
			"permittedRoles": ["button"],
			"conditions": {"[alt=\"\"]": {"implicitRole": false, "properties": {"only": ["aria-hidden"]}}}
		}},
		{"name": "h1", "aria": {"implicitRole": "heading", "permittedRoles": ["button"]}},
		{"name": "p", "aria": {"implicitRole": false, "permittedRoles": true, "properties": false}},
		{"name": "blink", "deprecated": true, "aria": {"implicitRole": false, "permittedRoles": true}}
	]
}`

func sampleDatasetEntity(t *testing.T, version string) *entities.Dataset {
	t.Helper()
	var ds entities.Dataset
	require.NoError(t, json.Unmarshal([]byte(sampleDataset), &ds))
	ds.Version = version
	return &ds
}

func datasetOpts() dto.DatasetOptions {
	return dto.DatasetOptions{Path: "testdata/index.json"}
}
