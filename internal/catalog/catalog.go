// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog provides the in-memory game catalog index. The catalog is
// a read-only collection loaded once at startup from a JSON document owned
// by content authors; all queries are pure lookups with no side effects.
// Lookup misses are represented as nil results, never as errors.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gamegrove/internal/models"
)

//go:embed games.json
var embeddedGames []byte

// Index is the queryable catalog. It is immutable after construction, so it
// is safe for concurrent reads without locking.
type Index struct {
	games      []models.Game
	byID       map[string]int
	bySlug     map[string]int
	categories []string
}

// New builds an Index from a slice of game records, preserving their order.
// Duplicate IDs or slugs are a load error — the ID is the key for every
// lookup and must be unique across the catalog.
func New(games []models.Game) (*Index, error) {
	ix := &Index{
		games:  games,
		byID:   make(map[string]int, len(games)),
		bySlug: make(map[string]int, len(games)),
	}

	seen := make(map[string]bool)
	for i, g := range games {
		if g.ID == "" {
			return nil, fmt.Errorf("catalog: game at position %d has no id", i)
		}
		if _, dup := ix.byID[g.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate game id %q", g.ID)
		}
		if _, dup := ix.bySlug[g.Slug]; g.Slug != "" && dup {
			return nil, fmt.Errorf("catalog: duplicate game slug %q", g.Slug)
		}
		ix.byID[g.ID] = i
		if g.Slug != "" {
			ix.bySlug[g.Slug] = i
		}

		// Categories keep first-seen order for navigation and the sitemap.
		if g.Category != "" && !seen[g.Category] {
			seen[g.Category] = true
			ix.categories = append(ix.categories, g.Category)
		}
	}

	return ix, nil
}

// Load builds the Index from the embedded games.json shipped with the binary.
func Load() (*Index, error) {
	return parse(embeddedGames)
}

// LoadFile builds the Index from an external JSON file. Used when content
// authors supply a catalog outside the binary (CATALOG_PATH).
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog read %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Index, error) {
	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}

	ix, err := New(games)
	if err != nil {
		return nil, err
	}

	slog.Info("catalog loaded", "games", len(games), "categories", len(ix.categories))
	return ix, nil
}

// FindByID returns the game with the given ID, or nil if absent.
func (ix *Index) FindByID(id string) *models.Game {
	i, ok := ix.byID[id]
	if !ok {
		return nil
	}
	g := ix.games[i]
	return &g
}

// FindBySlug returns the game with the given slug, or nil if absent.
// Public detail pages route by slug.
func (ix *Index) FindBySlug(slug string) *models.Game {
	i, ok := ix.bySlug[slug]
	if !ok {
		return nil
	}
	g := ix.games[i]
	return &g
}

// Featured returns up to limit games whose featured flag is set, in catalog
// order. No ranking — the order content authors chose is the order shown.
func (ix *Index) Featured(limit int) []models.Game {
	var out []models.Game
	for _, g := range ix.games {
		if !g.Featured {
			continue
		}
		out = append(out, g)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ByCategory returns all games in the given category, case-sensitive, in
// catalog order.
func (ix *Index) ByCategory(category string) []models.Game {
	var out []models.Game
	for _, g := range ix.games {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// All returns every game in catalog order. Used by the sitemap.
func (ix *Index) All() []models.Game {
	out := make([]models.Game, len(ix.games))
	copy(out, ix.games)
	return out
}

// Categories returns the distinct category names in first-seen order.
func (ix *Index) Categories() []string {
	out := make([]string, len(ix.categories))
	copy(out, ix.categories)
	return out
}

// Len returns the number of games in the catalog.
func (ix *Index) Len() int {
	return len(ix.games)
}
