// Package dataset loads the upstream HTML spec dataset from disk.
// This package handles file I/O, JSON schema validation and decoding.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

//go:embed schema/index.schema.json
var indexSchema []byte

const (
	schemaResource = "index.schema.json"
	packageFile    = "package.json"
)

// Loader reads index.json and the version of its sibling package.json.
type Loader struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewLoader creates a new dataset loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDataset loads, validates and decodes the dataset at path.
func (l *Loader) LoadDataset(ctx context.Context, path string) (*entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, apperrors.NewDatasetError(path, "failed to open dataset directory", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	data, err := readFile(root, base)
	if err != nil {
		return nil, apperrors.NewDatasetError(path, "failed to read dataset", err)
	}

	ds, err := l.Decode(data)
	if err != nil {
		return nil, apperrors.NewDatasetError(path, "invalid dataset", err)
	}

	version, err := packageVersion(root)
	if err != nil {
		return nil, apperrors.NewDatasetError(filepath.Join(dir, packageFile), "invalid package manifest", err)
	}
	ds.Version = version
	return ds, nil
}

// Decode validates raw index.json bytes against the embedded schema and
// decodes them. The dataset version is left empty.
func (l *Loader) Decode(data []byte) (*entities.Dataset, error) {
	schema, err := l.compiled()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, formatSchemaValidationError(validationErr)
		}
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var ds entities.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &ds, nil
}

func (l *Loader) compiled() (*jsonschema.Schema, error) {
	l.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(schemaResource, bytes.NewReader(indexSchema)); err != nil {
			l.err = fmt.Errorf("failed to add dataset schema: %w", err)
			return
		}
		l.schema, l.err = compiler.Compile(schemaResource)
		if l.err != nil {
			l.err = fmt.Errorf("failed to compile dataset schema: %w", l.err)
		}
	})
	return l.schema, l.err
}

// packageVersion reads the version field of package.json. A missing file
// yields the unknown version.
func packageVersion(root *os.Root) (string, error) {
	data, err := readFile(root, packageFile)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.UnknownDatasetVersion, nil
	}
	if err != nil {
		return "", err
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", packageFile, err)
	}
	if manifest.Version == "" {
		return entities.UnknownDatasetVersion, nil
	}
	return manifest.Version, nil
}

func readFile(root *os.Root, name string) ([]byte, error) {
	file, err := root.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()
	return io.ReadAll(file)
}

// formatSchemaValidationError flattens a schema validation error tree into
// one readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}
	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed")
	}
	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
