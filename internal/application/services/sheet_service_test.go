package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

func Test_SheetService_MemoizesPerPath(t *testing.T) {
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, "testdata/index.json").
		Return(sampleDatasetEntity(t, "4.1.0"), nil).Once()

	svc := NewSheetService(loader, nil)
	ctx := context.Background()

	first, err := svc.ElementTable(ctx, datasetOpts(), values.ARIA12)
	require.NoError(t, err)
	second, err := svc.ElementTable(ctx, datasetOpts(), values.ARIA12)
	require.NoError(t, err)
	assert.Same(t, first, second, "tables are memoized per version")

	older, err := svc.ElementTable(ctx, datasetOpts(), values.ARIA11)
	require.NoError(t, err)
	assert.Equal(t, values.ARIA11, older.Version)

	sheet, err := svc.Sheet(ctx, datasetOpts())
	require.NoError(t, err)
	assert.Equal(t, "4.1.0", sheet.DatasetVersion)
	require.Len(t, sheet.Elements, 2)
	assert.Equal(t, values.ARIA12, sheet.Elements[0].Version)

	loader.AssertExpectations(t)
}

func Test_SheetService_ConcurrentLoadsShareOneCall(t *testing.T) {
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, mock.Anything).
		Return(sampleDatasetEntity(t, "4.1.0"), nil).Once()

	svc := NewSheetService(loader, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RoleTable(context.Background(), datasetOpts(), values.ARIA12)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loader.AssertNumberOfCalls(t, "LoadDataset", 1)
}

func Test_SheetService_Invalidate(t *testing.T) {
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, mock.Anything).
		Return(sampleDatasetEntity(t, "4.1.0"), nil).Twice()

	svc := NewSheetService(loader, nil)
	ctx := context.Background()

	_, err := svc.Dataset(ctx, datasetOpts())
	require.NoError(t, err)
	svc.Invalidate(datasetOpts().Path)
	_, err = svc.Dataset(ctx, datasetOpts())
	require.NoError(t, err)

	loader.AssertExpectations(t)
}

func Test_SheetService_UnknownVersionDefaults(t *testing.T) {
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, mock.Anything).Return(sampleDatasetEntity(t, ""), nil)

	ds, err := NewSheetService(loader, nil).Dataset(context.Background(), datasetOpts())
	require.NoError(t, err)
	assert.Equal(t, "unknown", ds.Version)
}

func Test_SheetService_VersionConstraint(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		wantErr    any
	}{
		{"satisfied", "4.1.0", ">= 4.0.0", nil},
		{"not_satisfied", "3.9.0", ">= 4.0.0", &apperrors.DatasetError{}},
		{"unknown_version", "", ">= 4.0.0", &apperrors.DatasetError{}},
		{"bad_constraint", "4.1.0", "bogus!", &apperrors.ConfigurationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := new(MockDatasetLoader)
			loader.On("LoadDataset", mock.Anything, mock.Anything).Return(sampleDatasetEntity(t, tt.version), nil)

			opts := datasetOpts()
			opts.VersionConstraint = tt.constraint
			_, err := NewSheetService(loader, nil).Dataset(context.Background(), opts)

			switch want := tt.wantErr.(type) {
			case nil:
				assert.NoError(t, err)
			case *apperrors.DatasetError:
				assert.ErrorAs(t, err, &want)
			case *apperrors.ConfigurationError:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}

func Test_SheetService_Errors(t *testing.T) {
	loadErr := apperrors.NewDatasetError("testdata/index.json", "not found", errors.New("open"))
	loader := new(MockDatasetLoader)
	loader.On("LoadDataset", mock.Anything, mock.Anything).Return(nil, loadErr)

	svc := NewSheetService(loader, nil)

	_, err := svc.ElementTable(context.Background(), datasetOpts(), values.ARIA12)
	assert.ErrorIs(t, err, loadErr)

	_, err = svc.ElementTable(context.Background(), dto.DatasetOptions{Path: "x"}, values.ARIAVersion("2.0"))
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}
