// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamegrove/internal/catalog"
	"gamegrove/internal/handlers"
	"gamegrove/internal/render"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	ix, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	public := handlers.NewPublic(renderer, ix, nil, nil, handlers.Options{
		BaseURL:       "http://gamegrove.test",
		FeaturedLimit: 6,
		RecentLimit:   10,
	})
	return New(public)
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, testRouter(t), "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

// TestRoutes spot-checks that every public surface is wired.
func TestRoutes(t *testing.T) {
	h := testRouter(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/games/bubble-burst", http.StatusOK},
		{"/category/puzzle", http.StatusOK},
		{"/robots.txt", http.StatusOK},
		{"/sitemap.xml", http.StatusOK},
		{"/games/never-heard-of-it", http.StatusNotFound},
		{"/no-such-route", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := do(t, h, tt.path); rec.Code != tt.status {
			t.Errorf("GET %s: status %d, want %d", tt.path, rec.Code, tt.status)
		}
	}
}

// TestSecurityHeadersApplied verifies the global middleware chain runs on
// public pages.
func TestSecurityHeadersApplied(t *testing.T) {
	rec := do(t, testRouter(t), "/")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}

// TestUnknownRouteRendersBrandedPage verifies the catch-all 404 serves the
// site's own page rather than the default text response.
func TestUnknownRouteRendersBrandedPage(t *testing.T) {
	rec := do(t, testRouter(t), "/definitely-missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GameGrove") {
		t.Error("404 response is not the branded page")
	}
}
