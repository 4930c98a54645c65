// Package templates provides the embedded HTML templates of the static site.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

//go:embed site/*.tmpl
var siteTemplates embed.FS

// PageTemplate is the entry template that renders a whole page.
const PageTemplate = "page.html"

// PageData contains the data used to render one site page.
type PageData struct {
	Page           dto.SitePage
	DatasetVersion string
	BuildID        string
	GeneratedAt    time.Time
}

// Funcs returns the helpers available to the site templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"rowLabel": func(row entities.ElementRow) string {
			if row.Condition == "" {
				return row.Name.String()
			}
			return row.Name.String() + row.Condition
		},
		"verdict": func(cell entities.PropCell) string {
			return string(cell.Status.Verdict())
		},
		"symbol": func(cell entities.PropCell) string {
			return cell.Status.Symbol()
		},
		"label": func(cell entities.PropCell) string {
			return cell.Label()
		},
		"bareProp": func(name string) string {
			return strings.TrimPrefix(name, "aria-")
		},
		"propURL": func(v values.ARIAVersion, name string) string {
			return v.PropURL(name)
		},
		"roleURL": func(v values.ARIAVersion, name string) string {
			return v.RoleURL(name)
		},
		"elementURL": func(n values.ElementName) string {
			return n.ReferenceURL()
		},
		"ownership": func(o entities.Ownership) string {
			return o.String()
		},
		"date": func(t time.Time) string {
			return t.UTC().Format(time.RFC3339)
		},
	}
}

// SiteTemplates returns the parsed site templates.
func SiteTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(Funcs())

	err := fs.WalkDir(siteTemplates, "site", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := siteTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		// Use filename without .tmpl as template name
		name := strings.TrimPrefix(path, "site/")
		name = strings.TrimSuffix(name, ".tmpl")

		_, err = tmpl.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	return tmpl, nil
}

// TemplateFiles returns the template names, entry template first.
func TemplateFiles() []string {
	return []string{
		PageTemplate,
		"elements.html",
		"permitted.html",
		"roles.html",
		"style.css",
	}
}
