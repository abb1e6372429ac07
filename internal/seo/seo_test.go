// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"gamegrove/internal/models"
)

func TestGameJSONLD(t *testing.T) {
	g := &models.Game{
		ID:          "word-garden",
		Slug:        "word-garden",
		Title:       "Word Garden",
		Category:    "Word",
		Tags:        []string{"vocabulary", "daily"},
		Description: "Grow your garden one word at a time.",
		Thumbnail:   "/static/thumbs/word-garden.webp",
		Rating:      4.8,
		ReleaseDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	}

	out, err := GameJSONLD(g, "https://gamegrove.example/games/word-garden", 240513)
	if err != nil {
		t.Fatalf("GameJSONLD: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["@type"] != "VideoGame" {
		t.Errorf("@type = %v, want VideoGame", doc["@type"])
	}
	if doc["name"] != "Word Garden" {
		t.Errorf("name = %v", doc["name"])
	}
	if doc["genre"] != "Word" {
		t.Errorf("genre = %v", doc["genre"])
	}
	if doc["keywords"] != "vocabulary,daily" {
		t.Errorf("keywords = %v", doc["keywords"])
	}
	if doc["datePublished"] != "2024-01-20" {
		t.Errorf("datePublished = %v", doc["datePublished"])
	}

	rating, ok := doc["aggregateRating"].(map[string]any)
	if !ok {
		t.Fatal("aggregateRating missing")
	}
	if rating["ratingValue"] != 4.8 {
		t.Errorf("ratingValue = %v", rating["ratingValue"])
	}
	if rating["bestRating"] != float64(5) {
		t.Errorf("bestRating = %v", rating["bestRating"])
	}
}

// TestGameJSONLDUnrated verifies that games without a rating omit the
// aggregateRating block entirely.
func TestGameJSONLDUnrated(t *testing.T) {
	g := &models.Game{ID: "new-game", Slug: "new-game", Title: "New Game"}

	out, err := GameJSONLD(g, "https://gamegrove.example/games/new-game", 0)
	if err != nil {
		t.Fatalf("GameJSONLD: %v", err)
	}
	if strings.Contains(string(out), "aggregateRating") {
		t.Errorf("unrated game emitted aggregateRating: %s", out)
	}
}

func TestSitemap(t *testing.T) {
	games := []models.Game{
		{ID: "a", Slug: "bubble-burst"},
		{ID: "b", Slug: "pixel-racer"},
	}

	out, err := Sitemap("https://gamegrove.example/", games, []string{"puzzle", "racing"})
	if err != nil {
		t.Fatalf("Sitemap: %v", err)
	}

	var set struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal(out, &set); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}

	// Home + 2 games + 2 categories.
	if len(set.URLs) != 5 {
		t.Fatalf("got %d urls, want 5", len(set.URLs))
	}
	if set.URLs[0].Loc != "https://gamegrove.example/" {
		t.Errorf("first loc = %q, want homepage", set.URLs[0].Loc)
	}
	if set.URLs[1].Loc != "https://gamegrove.example/games/bubble-burst" {
		t.Errorf("second loc = %q", set.URLs[1].Loc)
	}
	if set.URLs[3].Loc != "https://gamegrove.example/category/puzzle" {
		t.Errorf("fourth loc = %q", set.URLs[3].Loc)
	}

	if !strings.HasPrefix(string(out), xml.Header) {
		t.Error("sitemap missing XML declaration")
	}
}

func TestRobots(t *testing.T) {
	out := string(Robots("https://gamegrove.example"))

	if !strings.Contains(out, "User-agent: *") {
		t.Error("robots.txt missing user-agent line")
	}
	if !strings.Contains(out, "Sitemap: https://gamegrove.example/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line: %q", out)
	}
}
