// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamegrove/internal/models"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNewParsesAllPages(t *testing.T) {
	r := testRenderer(t)
	for _, name := range []string{"home", "game", "category", "not_found"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRenderHome(t *testing.T) {
	r := testRenderer(t)

	body, err := r.Render("home", &PageData{
		Title:      "Free Casual Games",
		Categories: []CategoryLink{{Name: "Puzzle", Slug: "puzzle"}},
		Data: map[string]any{
			"Featured": []models.Game{
				{Slug: "bubble-burst", Title: "Bubble Burst", Category: "Puzzle", Rating: 4.6, Plays: 184220},
			},
			"Recent": []models.Game{
				{Slug: "pixel-racer", Title: "Pixel Racer"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(body)
	for _, want := range []string{
		"Bubble Burst",
		"Recently played",
		"Pixel Racer",
		`href="/games/bubble-burst"`,
		`href="/category/puzzle"`,
		"184.2k plays",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

// TestRenderHomeNoRecent verifies the recently-played strip is omitted for
// first-time visitors.
func TestRenderHomeNoRecent(t *testing.T) {
	r := testRenderer(t)

	body, err := r.Render("home", &PageData{
		Data: map[string]any{"Featured": []models.Game{}, "Recent": []models.Game{}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(body), "Recently played") {
		t.Error("empty history still rendered the recently-played section")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := testRenderer(t)
	if _, err := r.Render("nope", &PageData{}); err == nil {
		t.Fatal("Render accepted unknown template name")
	}
}

func TestPageWithStatus(t *testing.T) {
	r := testRenderer(t)

	rec := httptest.NewRecorder()
	r.PageWithStatus(rec, http.StatusNotFound, "not_found", &PageData{Title: "Not Found"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Game over") {
		t.Error("404 body missing heading")
	}
}

// TestTemplateFuncs covers the stars and formatPlays helpers.
func TestTemplateFuncs(t *testing.T) {
	r := testRenderer(t)

	stars := r.funcMap["stars"].(func(float64) string)
	starTests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.5, "★★★☆☆"},
		{4.8, "★★★★★"},
		{5, "★★★★★"},
		{7, "★★★★★"}, // clamped
	}
	for _, tt := range starTests {
		if got := stars(tt.rating); got != tt.want {
			t.Errorf("stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}

	plays := r.funcMap["formatPlays"].(func(int64) string)
	playTests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1k"},
		{184220, "184.2k"},
		{2100000, "2.1m"},
	}
	for _, tt := range playTests {
		if got := plays(tt.n); got != tt.want {
			t.Errorf("formatPlays(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
