package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	apperrors "github.com/reglet-dev/ariasheet/internal/application/errors"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
	"github.com/reglet-dev/ariasheet/internal/version"
)

const fixtureSpec = "../../internal/infrastructure/dataset/testdata/valid/index.json"

// runCLI executes a fresh command tree with an isolated settings file.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), system.DefaultConfigFile)))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMatrixCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "", "matrix", "--spec", fixtureSpec, "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "4.14.1", decoded["datasetVersion"])
	assert.Equal(t, "1.2", decoded["table"].(map[string]any)["version"])
}

func TestElementsCommand_Search(t *testing.T) {
	out, err := runCLI(t, "", "elements", "--spec", fixtureSpec, "--format", "json", "--search", "IMG")
	require.NoError(t, err)

	var decoded dto.ElementTableResponse
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Elements)
	assert.Equal(t, 2, decoded.Patterns)
}

func TestRolesCommand_Table(t *testing.T) {
	out, err := runCLI(t, "", "roles", "--spec", fixtureSpec)
	require.NoError(t, err)
	assert.Contains(t, out, "Roles")
	assert.Contains(t, out, "WAI-ARIA 1.2")
}

func TestRolesCommand_RejectsSARIF(t *testing.T) {
	_, err := runCLI(t, "", "roles", "--spec", fixtureSpec, "--format", "sarif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLookupCommand(t *testing.T) {
	out, err := runCLI(t, "", "lookup", "img", "aria-label", "--spec", fixtureSpec, "-f", "json")
	require.NoError(t, err)

	var decoded dto.LookupResponse
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "img", decoded.Element)
	require.Len(t, decoded.Variants, 2)
	assert.Equal(t, 10, decoded.Variants[0].Properties[0].Code)
}

func TestLookupCommand_UnknownElement(t *testing.T) {
	_, err := runCLI(t, "", "lookup", "imgg", "--spec", fixtureSpec)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, exitError, exitCode(err))
}

func TestLintCommand_Stdin(t *testing.T) {
	out, err := runCLI(t, `<p aria-hidden="true">text</p>`, "lint", "-", "--spec", fixtureSpec)

	var lintErr *apperrors.LintFailedError
	require.ErrorAs(t, err, &lintErr)
	assert.Equal(t, exitLintFailed, exitCode(err))
	assert.Contains(t, out, "-:1:1: error:")
	assert.Contains(t, out, "[aria-prop-disallowed]")
}

func TestLintCommand_NoFail(t *testing.T) {
	_, err := runCLI(t, `<p aria-hidden="true">text</p>`, "lint", "-", "--spec", fixtureSpec, "--no-fail", "-q")
	assert.NoError(t, err)
}

func TestLintCommand_SARIFFile(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<img src="a.png" alt="logo">`), 0o600))
	sarifPath := filepath.Join(dir, "out.sarif")

	_, err := runCLI(t, "", "lint", page, "--spec", fixtureSpec, "--format", "sarif", "-o", sarifPath)
	require.NoError(t, err)

	data, err := os.ReadFile(sarifPath)
	require.NoError(t, err)
	report, err := sarif.FromBytes(data)
	require.NoError(t, err)
	require.NoError(t, report.Validate())
	require.Len(t, report.Runs, 1)
	assert.Empty(t, report.Runs[0].Results)
}

func TestBuildCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")

	out, err := runCLI(t, "", "build", "--spec", fixtureSpec, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "built 4 files into "+outDir)

	for _, name := range []string{"index.html", "aria-1.1.html", "data.json", "manifest.json"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestInitCommand_NoInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), system.DefaultConfigFile)

	out, err := runCLI(t, "", "init", "--no-interactive", "--path", path,
		"--aria-version", "1.1", "--show-deprecated", "--spec", "vendor/index.json")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := system.NewConfigLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.1", cfg.Version)
	assert.True(t, cfg.ShowDeprecated)
	assert.Equal(t, "vendor/index.json", cfg.Spec)

	_, err = runCLI(t, "", "init", "--no-interactive", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "", "version", "--json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Version, info.Version)
}

func TestDatasetFiles(t *testing.T) {
	t.Parallel()

	files := datasetFiles(filepath.Join("vendor", "html-spec", "index.json"))
	assert.Equal(t, []string{
		filepath.Join("vendor", "html-spec", "index.json"),
		filepath.Join("vendor", "html-spec", "package.json"),
	}, files)
}
