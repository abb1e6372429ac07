// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Game represents one playable game in the catalog. Records are supplied by
// content authors at build time and are immutable for the process lifetime;
// the ID is unique across the whole catalog.
type Game struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Rating      float64   `json:"rating"` // 0–5
	Plays       int64     `json:"plays"`  // base count, display-only
	Featured    bool      `json:"featured"`
	ReleaseDate time.Time `json:"release_date"`
}

// HasTag returns true if the game carries the given tag (case-sensitive).
func (g *Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
