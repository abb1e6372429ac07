// Package web provides embedded static assets (stylesheet, game thumbnails)
// for the public site. In development, pages load TailwindCSS from CDN; in
// production, the compiled stylesheet is embedded here and served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. In Docker builds, this
// includes the compiled TailwindCSS output and the game thumbnail images.
//
//go:embed all:static
var StaticFS embed.FS
