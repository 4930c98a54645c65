package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

func newSheets(t *testing.T) *SheetService {
	t.Helper()
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, mock.Anything).Return(sampleDatasetEntity(t, "4.1.0"), nil)
	return NewSheetService(loader, nil)
}

func Test_TableQueryUseCase_Elements(t *testing.T) {
	uc := NewTableQueryUseCase(newSheets(t))

	resp, err := uc.Elements(context.Background(), dto.TableRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
	})
	require.NoError(t, err)
	assert.Equal(t, "4.1.0", resp.DatasetVersion)
	assert.Equal(t, 3, resp.Elements)
	assert.Equal(t, 4, resp.Patterns)

	resp, err = uc.Elements(context.Background(), dto.TableRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
		Filters: dto.FilterOptions{ShowDeprecated: true, FilterExpression: `deprecated`},
	})
	require.NoError(t, err)
	require.Len(t, resp.Table.Rows, 1)
	assert.Equal(t, "blink", resp.Table.Rows[0].Name.String())
}

func Test_TableQueryUseCase_InvalidFilter(t *testing.T) {
	uc := NewTableQueryUseCase(newSheets(t))

	_, err := uc.Elements(context.Background(), dto.TableRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
		Filters: dto.FilterOptions{FilterExpression: `name ==`},
	})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "filter", validation.Field)
}

func Test_TableQueryUseCase_Roles(t *testing.T) {
	resp, err := NewTableQueryUseCase(newSheets(t)).Roles(context.Background(), dto.TableRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
	})
	require.NoError(t, err)
	require.Len(t, resp.Table.Rows, 4)
	assert.Equal(t, "graphics-symbol", resp.Table.Rows[3].Name)
}

func Test_LookupUseCase_Execute(t *testing.T) {
	uc := NewLookupUseCase(newSheets(t))

	resp, err := uc.Execute(context.Background(), dto.LookupRequest{
		Dataset:    datasetOpts(),
		Version:    values.ARIA12,
		Element:    "IMG",
		Properties: []string{"aria-hidden", "label"},
	})
	require.NoError(t, err)

	assert.Equal(t, "img", resp.Element)
	require.Len(t, resp.Variants, 2)

	base := resp.Variants[0]
	assert.Equal(t, "img", base.ImplicitRole)
	assert.Equal(t, []dto.LookupCell{
		{Property: "aria-hidden", Code: 9, Status: "global", Verdict: values.VerdictAllowed, Label: "As Global"},
		{Property: "aria-label", Code: 10, Status: "implicit-role", Verdict: values.VerdictAllowed, Label: "By Implicit Role"},
	}, base.Properties)

	alt := resp.Variants[1]
	assert.Equal(t, `[alt=""]`, alt.Condition)
	assert.Equal(t, values.VerdictAllowed, alt.Properties[0].Verdict)
	assert.Equal(t, "only", alt.Properties[0].Status)
	assert.Equal(t, values.VerdictDisallowed, alt.Properties[1].Verdict)
}

func Test_LookupUseCase_AllProperties(t *testing.T) {
	resp, err := NewLookupUseCase(newSheets(t)).Execute(context.Background(), dto.LookupRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
		Element: "h1",
	})
	require.NoError(t, err)
	require.Len(t, resp.Variants, 1)
	require.Len(t, resp.Variants[0].Properties, 3)
	assert.Equal(t, "REQUIRED (By the heading role)", resp.Variants[0].Properties[2].Label)
}

func Test_LookupUseCase_NotFound(t *testing.T) {
	uc := NewLookupUseCase(newSheets(t))

	_, err := uc.Execute(context.Background(), dto.LookupRequest{
		Dataset: datasetOpts(), Version: values.ARIA12, Element: "imgg",
	})
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "element", notFound.Kind)
	assert.Equal(t, []string{"img"}, notFound.Suggestions)

	_, err = uc.Execute(context.Background(), dto.LookupRequest{
		Dataset: datasetOpts(), Version: values.ARIA12, Element: "img", Properties: []string{"labels"},
	})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "property", notFound.Kind)
	assert.Equal(t, []string{"aria-label"}, notFound.Suggestions)
}

func Test_LintUseCase_Execute(t *testing.T) {
	parser := new(MockDocumentParser)
	content := []byte(`<p aria-hidden="true">`)
	parser.On("ParseTags", mock.Anything, content).Return([]entities.Tag{{
		Name:  "p",
		Line:  1,
		Attrs: []entities.TagAttr{{Name: "aria-hidden", Value: "true"}},
	}}, nil)

	uc := NewLintUseCase(newSheets(t), parser, nil)
	report, err := uc.Execute(context.Background(), dto.LintRequest{
		Dataset: datasetOpts(),
		Version: values.ARIA12,
		Source:  "page.html",
		Content: content,
	})
	require.NoError(t, err)

	assert.Equal(t, "page.html", report.Source)
	assert.Equal(t, 1, report.Tags)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, entities.RulePropDisallowed, report.Findings[0].Rule)
	assert.True(t, report.HasErrors())
	parser.AssertExpectations(t)
}

func Test_LintUseCase_CleanDocument(t *testing.T) {
	parser := new(MockDocumentParser)
	parser.On("ParseTags", mock.Anything, mock.Anything).Return([]entities.Tag{{Name: "img", Line: 1}}, nil)

	report, err := NewLintUseCase(newSheets(t), parser, nil).Execute(context.Background(), dto.LintRequest{
		Dataset: datasetOpts(), Version: values.ARIA12, Source: "-",
	})
	require.NoError(t, err)
	assert.NotNil(t, report.Findings)
	assert.Empty(t, report.Findings)
}

func Test_BuildSiteUseCase_Execute(t *testing.T) {
	writer := new(MockSiteWriter)
	manifest := &dto.SiteManifest{DatasetVersion: "4.1.0"}

	var captured dto.SiteContent
	writer.On("WriteSite", mock.Anything, "dist", mock.AnythingOfType("dto.SiteContent")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(dto.SiteContent)
		}).
		Return(manifest, nil).Once()

	uc := NewBuildSiteUseCase(newSheets(t), writer, nil)
	resp, err := uc.Execute(context.Background(), dto.BuildSiteRequest{
		Dataset:  datasetOpts(),
		OutDir:   "dist",
		Metadata: dto.RequestMetadata{RequestID: "req-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dist", resp.OutDir)
	assert.Equal(t, "req-1", resp.Metadata.RequestID)
	assert.Equal(t, "4.1.0", resp.Manifest.DatasetVersion)

	assert.False(t, captured.BuildID.IsZero())
	require.Len(t, captured.Pages, 2)
	assert.Equal(t, "index.html", captured.Pages[0].Path)
	assert.Equal(t, values.ARIA12, captured.Pages[0].Version)
	assert.Equal(t, "aria-1.1.html", captured.Pages[1].Path)
	assert.True(t, captured.Pages[1].Versions[1].Current)
	// deprecated rows are hidden by default
	assert.Equal(t, 3, captured.Pages[0].Elements.Elements)
	require.NotNil(t, captured.Sheet)
	writer.AssertExpectations(t)
}

func Test_BuildSiteUseCase_Validation(t *testing.T) {
	uc := NewBuildSiteUseCase(newSheets(t), new(MockSiteWriter), nil)

	_, err := uc.Execute(context.Background(), dto.BuildSiteRequest{Dataset: datasetOpts()})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func Test_PagePath(t *testing.T) {
	assert.Equal(t, "index.html", PagePath(values.ARIA12))
	assert.Equal(t, "aria-1.1.html", PagePath(values.ARIA11))
}
