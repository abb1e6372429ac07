// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gamegrove/internal/cache"
	"gamegrove/internal/catalog"
	"gamegrove/internal/models"
	"gamegrove/internal/recent"
	"gamegrove/internal/render"
	"gamegrove/internal/seo"
	"gamegrove/internal/slug"
	"gamegrove/internal/store"
)

// Public groups the handlers for the public-facing site. The catalog is the
// single source of game data; the visitor's recently-played history rides in
// a cookie and is rebuilt per request; the play-count store and page cache
// are optional and may be nil.
type Public struct {
	renderer    *render.Renderer
	catalog     *catalog.Index
	playStore   *store.PlayCountStore
	pageCache   *cache.PageCache
	baseURL     string
	featured    int
	recentLimit int
	secure      bool

	nav []render.CategoryLink
}

// Options carries the product knobs for the public handlers.
type Options struct {
	BaseURL       string
	FeaturedLimit int
	RecentLimit   int
	SecureCookies bool
}

// NewPublic creates the Public handler group. playStore and pageCache may
// be nil — pages then show catalog base counts and render on every request.
func NewPublic(renderer *render.Renderer, ix *catalog.Index, playStore *store.PlayCountStore, pageCache *cache.PageCache, opts Options) *Public {
	p := &Public{
		renderer:    renderer,
		catalog:     ix,
		playStore:   playStore,
		pageCache:   pageCache,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		featured:    opts.FeaturedLimit,
		recentLimit: opts.RecentLimit,
		secure:      opts.SecureCookies,
	}

	// The catalog is immutable, so the category navigation is built once.
	for _, c := range ix.Categories() {
		p.nav = append(p.nav, render.CategoryLink{Name: c, Slug: slug.Generate(c)})
	}

	return p
}

// tracker builds the visitor's recently-played tracker for one request,
// backed by the request's cookie jar.
func (p *Public) tracker(w http.ResponseWriter, r *http.Request) *recent.Tracker {
	return recent.NewTracker(p.catalog, recent.NewCookieStorage(w, r, p.secure), p.recentLimit)
}

// Home renders the home page: the visitor's recently-played strip followed
// by the featured games in catalog order.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	tr := p.tracker(w, r)

	featured := p.mergePlays(p.catalog.Featured(p.featured))
	recentGames := p.mergePlays(tr.List())

	p.renderer.Page(w, "home", &render.PageData{
		Title:       "Free Casual Browser Games",
		Description: "Play free casual browser games — puzzles, arcade classics, card and word games. No installs, no sign-up.",
		Canonical:   p.baseURL + "/",
		Categories:  p.nav,
		Data: map[string]any{
			"Featured": featured,
			"Recent":   recentGames,
		},
	})
}

// Game renders a game detail page by slug. A successful render records the
// game in the visitor's history and bumps the sitewide play counter; an
// unknown slug is the one user-visible failure and renders the 404 page.
func (p *Public) Game(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	g := p.catalog.FindBySlug(slugParam)
	if g == nil {
		p.NotFound(w, r)
		return
	}

	plays := p.bumpPlays(g)

	pageURL := p.baseURL + "/games/" + g.Slug
	jsonld, err := seo.GameJSONLD(g, pageURL, plays)
	if err != nil {
		slog.Error("build game json-ld failed", "error", err, "game", g.ID)
	}

	body, err := p.renderer.Render("game", &render.PageData{
		Title:       g.Title,
		Description: g.Description,
		Canonical:   pageURL,
		Categories:  p.nav,
		JSONLD:      template.JS(jsonld),
		Data: map[string]any{
			"Game":         g,
			"Plays":        plays,
			"CategorySlug": slug.Generate(g.Category),
		},
	})
	if err != nil {
		slog.Error("render game page failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Record only after the page rendered — the history cookie goes out
	// with the same response as the page it records.
	p.tracker(w, r).Record(g.ID)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// Category renders all games in one category. The page is visitor
// independent, so it is served from the page cache when available.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.CategoryKey(slugParam)); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	// Category URLs are slugified; resolve back to the case-sensitive
	// catalog category name.
	var category string
	for _, c := range p.catalog.Categories() {
		if slug.Generate(c) == slugParam {
			category = c
			break
		}
	}
	if category == "" {
		p.NotFound(w, r)
		return
	}

	games := p.mergePlays(p.catalog.ByCategory(category))

	body, err := p.renderer.Render("category", &render.PageData{
		Title:       category + " Games",
		Description: "Free " + category + " games to play in your browser.",
		Canonical:   p.baseURL + "/category/" + slugParam,
		Categories:  p.nav,
		Data: map[string]any{
			"Category": category,
			"Games":    games,
		},
	})
	if err != nil {
		slog.Error("render category page failed", "error", err, "category", category)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, cache.CategoryKey(slugParam), body)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// NotFound renders the 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.PageWithStatus(w, http.StatusNotFound, "not_found", &render.PageData{
		Title:      "Page Not Found",
		Categories: p.nav,
	})
}

// bumpPlays increments the sitewide counter for a game and returns the
// displayed total (catalog base + tracked delta). Store failures are logged
// and degrade to the base count.
func (p *Public) bumpPlays(g *models.Game) int64 {
	if p.playStore == nil {
		return g.Plays
	}
	if err := p.playStore.Increment(g.ID); err != nil {
		slog.Warn("increment play count failed", "error", err, "game", g.ID)
		return g.Plays
	}
	delta, err := p.playStore.Count(g.ID)
	if err != nil {
		slog.Warn("read play count failed", "error", err, "game", g.ID)
		return g.Plays
	}
	return g.Plays + delta
}

// mergePlays adds tracked play deltas onto the catalog base counts for a
// list of games. Without a play store (or on error) the base counts stand.
func (p *Public) mergePlays(games []models.Game) []models.Game {
	if p.playStore == nil || len(games) == 0 {
		return games
	}

	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}

	totals, err := p.playStore.Totals(ids)
	if err != nil {
		slog.Warn("read play count totals failed", "error", err)
		return games
	}
	for i := range games {
		games[i].Plays += totals[games[i].ID]
	}
	return games
}
