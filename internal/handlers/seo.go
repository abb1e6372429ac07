// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// seo.go serves the crawler-facing endpoints: robots.txt and sitemap.xml.
// Both are deterministic transformations of the catalog; the sitemap is
// served through the page cache since it never varies per visitor.
package handlers

import (
	"log/slog"
	"net/http"

	"gamegrove/internal/cache"
	"gamegrove/internal/seo"
	"gamegrove/internal/slug"
)

// Robots serves the plain-text robots directives.
func (p *Public) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(seo.Robots(p.baseURL))
}

// Sitemap serves the XML sitemap covering all game and category pages.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.SitemapKey()); ok {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write(cached)
		return
	}

	var categorySlugs []string
	for _, c := range p.catalog.Categories() {
		categorySlugs = append(categorySlugs, slug.Generate(c))
	}

	body, err := seo.Sitemap(p.baseURL, p.catalog.All(), categorySlugs)
	if err != nil {
		slog.Error("build sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.SitemapKey(), body)

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}
