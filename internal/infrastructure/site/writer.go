// Package site renders the cheat sheet pages and writes the static site.
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/templates"
)

const (
	// DataFile holds the full sheet as JSON
	DataFile = "data.json"
	// ManifestFile lists every written file with its digest
	ManifestFile = "manifest.json"

	defaultConcurrency = 4
)

// Writer renders site pages concurrently into an output directory.
type Writer struct {
	logger      *slog.Logger
	concurrency int

	once sync.Once
	tmpl *template.Template
	err  error
}

// NewWriter creates a new site writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger, concurrency: defaultConcurrency}
}

// rendered is one file of the site, produced by a render job.
type rendered struct {
	path string
	data []byte
}

// WriteSite renders every page plus data.json, writes them into outDir and
// finally writes manifest.json describing them.
func (w *Writer) WriteSite(ctx context.Context, outDir string, content dto.SiteContent) (*dto.SiteManifest, error) {
	tmpl, err := w.templates()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	// Security: Use os.OpenRoot so page paths cannot escape the output directory
	root, err := os.OpenRoot(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open output directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	jobs := make([]func() (rendered, error), 0, len(content.Pages)+1)
	for _, page := range content.Pages {
		jobs = append(jobs, func() (rendered, error) {
			return renderPage(tmpl, page, content)
		})
	}
	jobs = append(jobs, func() (rendered, error) {
		return renderData(content)
	})

	files := make([]dto.SiteFile, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := job()
			if err != nil {
				return err
			}
			if err := writeFile(root, out); err != nil {
				return err
			}
			files[i] = describe(out)
			w.logger.Debug("site file written", "path", out.path, "bytes", len(out.data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	manifest := &dto.SiteManifest{
		BuildID:        content.BuildID,
		DatasetVersion: content.DatasetVersion,
		GeneratedAt:    content.GeneratedAt,
		Files:          files,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := writeFile(root, rendered{path: ManifestFile, data: append(data, '\n')}); err != nil {
		return nil, err
	}

	w.logger.Info("site written", "out", outDir, "files", len(files)+1)
	return manifest, nil
}

func (w *Writer) templates() (*template.Template, error) {
	w.once.Do(func() {
		w.tmpl, w.err = templates.SiteTemplates()
	})
	return w.tmpl, w.err
}

func renderPage(tmpl *template.Template, page dto.SitePage, content dto.SiteContent) (rendered, error) {
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, templates.PageTemplate, templates.PageData{
		Page:           page,
		DatasetVersion: content.DatasetVersion,
		BuildID:        content.BuildID.String(),
		GeneratedAt:    content.GeneratedAt,
	})
	if err != nil {
		return rendered{}, fmt.Errorf("failed to render %s: %w", page.Path, err)
	}
	return rendered{path: page.Path, data: buf.Bytes()}, nil
}

func renderData(content dto.SiteContent) (rendered, error) {
	data, err := json.Marshal(content.Sheet)
	if err != nil {
		return rendered{}, fmt.Errorf("failed to encode %s: %w", DataFile, err)
	}
	return rendered{path: DataFile, data: append(data, '\n')}, nil
}

func writeFile(root *os.Root, out rendered) error {
	file, err := root.OpenFile(out.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out.path, err)
	}
	if _, err := file.Write(out.data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", out.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out.path, err)
	}
	return nil
}

func describe(out rendered) dto.SiteFile {
	sum := sha256.Sum256(out.data)
	return dto.SiteFile{
		Path:   out.path,
		Bytes:  int64(len(out.data)),
		SHA256: hex.EncodeToString(sum[:]),
	}
}
