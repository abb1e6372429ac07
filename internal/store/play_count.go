// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. The only durable
// server-side state of this site is the sitewide play counters — the game
// catalog is static and the per-visitor history lives client-side.
package store

import (
	"database/sql"
	"fmt"
)

// PlayCountStore tracks how many times each game has been played across
// all visitors. Counts here are deltas on top of the catalog's base counts.
type PlayCountStore struct {
	db *sql.DB
}

// NewPlayCountStore creates a new PlayCountStore with the given database connection.
func NewPlayCountStore(db *sql.DB) *PlayCountStore {
	return &PlayCountStore{db: db}
}

// Increment bumps the play counter for a game, creating the row on first play.
func (s *PlayCountStore) Increment(gameID string) error {
	_, err := s.db.Exec(`
		INSERT INTO play_counts (game_id, plays)
		VALUES ($1, 1)
		ON CONFLICT (game_id)
		DO UPDATE SET plays = play_counts.plays + 1, updated_at = NOW()
	`, gameID)
	if err != nil {
		return fmt.Errorf("increment play count: %w", err)
	}
	return nil
}

// Count returns the tracked plays for a single game. Games never played
// have no row and count as zero.
func (s *PlayCountStore) Count(gameID string) (int64, error) {
	var plays int64
	err := s.db.QueryRow(`SELECT plays FROM play_counts WHERE game_id = $1`, gameID).Scan(&plays)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count plays: %w", err)
	}
	return plays, nil
}

// Totals returns tracked plays for multiple games at once, keyed by game ID.
// IDs with no row are simply absent from the map.
func (s *PlayCountStore) Totals(gameIDs []string) (map[string]int64, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}

	// Build placeholder list for IN clause.
	placeholders := ""
	args := make([]any, len(gameIDs))
	for i, id := range gameIDs {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT game_id, plays
		FROM play_counts
		WHERE game_id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("play count totals: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var id string
		var plays int64
		if err := rows.Scan(&id, &plays); err != nil {
			return nil, fmt.Errorf("scan play count: %w", err)
		}
		result[id] = plays
	}
	return result, rows.Err()
}
