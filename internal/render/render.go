// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the shared base layout; templates are
// embedded in the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// CategoryLink is one entry in the category navigation.
type CategoryLink struct {
	Name string
	Slug string
}

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string         // Page title for the <title> tag
	Description string         // Meta description
	Canonical   string         // Canonical URL for this page
	Categories  []CategoryLink // Category navigation links
	JSONLD      template.JS    // Structured-data block, empty on most pages
	Data        map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem, each paired with the base layout. When devMode is true,
// templates load TailwindCSS from CDN; otherwise they use the compiled
// stylesheet served from /static/.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// stars renders a 0–5 rating as filled and empty star glyphs,
			// rounding to the nearest whole star.
			"stars": func(rating float64) string {
				filled := int(rating + 0.5)
				if filled < 0 {
					filled = 0
				}
				if filled > 5 {
					filled = 5
				}
				return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
			},
			// formatPlays renders a play count compactly: 950 → "950",
			// 184220 → "184.2k", 2100000 → "2.1m".
			"formatPlays": func(n int64) string {
				switch {
				case n >= 1_000_000:
					return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "m"
				case n >= 1_000:
					return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "k"
				default:
					return fmt.Sprintf("%d", n)
				}
			},
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// Render executes a page template to a byte slice. Having the full body in
// memory lets handlers store visitor-independent pages in the page cache.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full page with a 200 status.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	rn.PageWithStatus(w, http.StatusOK, name, data)
}

// PageWithStatus renders a full page with an explicit status code. Used for
// the 404 page.
func (rn *Renderer) PageWithStatus(w http.ResponseWriter, status int, name string, data *PageData) {
	body, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// trimZero drops a trailing ".0" from a formatted number.
func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
