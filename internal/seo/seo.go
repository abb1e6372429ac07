// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo builds the machine-readable surfaces of the site: JSON-LD
// structured data for game pages, the XML sitemap, and the robots.txt body.
// Everything here is a deterministic transformation of catalog data.
package seo

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"gamegrove/internal/models"
)

// gameLD is the schema.org VideoGame document emitted on detail pages.
type gameLD struct {
	Context     string    `json:"@context"`
	Type        string    `json:"@type"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Keywords    string    `json:"keywords,omitempty"`
	DatePublish string    `json:"datePublished,omitempty"`
	Rating      *ratingLD `json:"aggregateRating,omitempty"`
}

type ratingLD struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	BestRating  int     `json:"bestRating"`
	RatingCount int64   `json:"ratingCount"`
}

// GameJSONLD returns the JSON-LD structured-data document for one game.
// plays is the displayed (base + tracked) play count.
func GameJSONLD(g *models.Game, pageURL string, plays int64) ([]byte, error) {
	doc := gameLD{
		Context:     "https://schema.org",
		Type:        "VideoGame",
		Name:        g.Title,
		URL:         pageURL,
		Description: g.Description,
		Image:       g.Thumbnail,
		Genre:       g.Category,
		Keywords:    strings.Join(g.Tags, ","),
	}
	if !g.ReleaseDate.IsZero() {
		doc.DatePublish = g.ReleaseDate.Format("2006-01-02")
	}
	if g.Rating > 0 {
		doc.Rating = &ratingLD{
			Type:        "AggregateRating",
			RatingValue: g.Rating,
			BestRating:  5,
			RatingCount: plays,
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal game json-ld: %w", err)
	}
	return out, nil
}

// urlSet is the sitemap.org urlset document.
type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	Xmlns   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// Sitemap renders the XML sitemap covering the home page, every game page,
// and every category page, in catalog order.
func Sitemap(baseURL string, games []models.Game, categorySlugs []string) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, siteURL{Loc: base + "/", ChangeFreq: "daily"})
	for _, g := range games {
		set.URLs = append(set.URLs, siteURL{Loc: base + "/games/" + g.Slug, ChangeFreq: "weekly"})
	}
	for _, slug := range categorySlugs {
		set.URLs = append(set.URLs, siteURL{Loc: base + "/category/" + slug, ChangeFreq: "weekly"})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots returns the robots.txt body. All content pages are crawlable.
func Robots(baseURL string) []byte {
	base := strings.TrimRight(baseURL, "/")
	return []byte("User-agent: *\nAllow: /\nDisallow: /health\n\nSitemap: " + base + "/sitemap.xml\n")
}
