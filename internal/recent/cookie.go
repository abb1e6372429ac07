// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// cookie.go adapts the visitor's cookie jar to the Storage interface.
// Cookie values cannot carry raw JSON (net/http strips quotes and commas),
// so values are base64url-wrapped on the wire; the logical payload stored
// under the key is still the plain JSON array.
package recent

import (
	"encoding/base64"
	"net/http"
)

// cookieMaxAge keeps the history cookie for a year. The history is never
// explicitly deleted; it persists until the browser clears it.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStorage is a per-request Storage backed by HTTP cookies. Get reads
// from the inbound request; Set writes a Set-Cookie header on the response.
// A visitor with cookies disabled simply presents no cookie on the next
// request, degrading to an empty, non-persistent history.
type CookieStorage struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

// NewCookieStorage creates cookie-backed storage for one request/response
// pair. secure marks the cookie HTTPS-only (set outside development).
func NewCookieStorage(w http.ResponseWriter, r *http.Request, secure bool) *CookieStorage {
	return &CookieStorage{w: w, r: r, secure: secure}
}

// Get returns the decoded cookie value, or ok=false when the cookie is
// absent or its wrapping is not valid base64url.
func (c *CookieStorage) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// Set replaces the cookie with the given value.
func (c *CookieStorage) Set(key, value string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})
}
