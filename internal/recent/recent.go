// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package recent maintains a visitor's recently-played game history: an
// ordered, deduplicated, capacity-bounded list of game IDs, most recent
// first. The history lives in client-local storage (a browser cookie in
// production), injected behind the Storage interface so the logic is
// testable without an HTTP round trip.
package recent

import (
	"encoding/json"

	"gamegrove/internal/catalog"
	"gamegrove/internal/models"
)

const (
	// HistoryKey is the storage key (and cookie name) holding the
	// serialized history: a JSON array of game IDs.
	HistoryKey = "gg_recent"

	// DefaultCapacity bounds the history length when no explicit capacity
	// is configured. The exact bound is a product choice, not a structural
	// one — override it via RECENT_PLAYED_LIMIT.
	DefaultCapacity = 10
)

// Storage is client-local key-value storage scoped to one visitor. Get
// returns false when the key is absent; Set fully replaces the prior value.
// Implementations must not fail loudly — a broken store behaves as empty.
type Storage interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
}

// Tracker maintains one visitor's play history and resolves it against the
// catalog on demand. It holds no state of its own beyond its dependencies;
// all state lives in the visitor's storage.
type Tracker struct {
	catalog  *catalog.Index
	storage  Storage
	capacity int
}

// NewTracker creates a Tracker over the given catalog and storage. A
// non-positive capacity falls back to DefaultCapacity.
func NewTracker(ix *catalog.Index, st Storage, capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{catalog: ix, storage: st, capacity: capacity}
}

// Record appends gameID to the front of the history. If the ID is already
// present it moves to the front instead of duplicating; the list is then
// truncated to capacity, evicting the oldest entries. The stored value is
// fully replaced. Record never fails — a corrupt stored value is treated as
// an empty history and overwritten.
func (t *Tracker) Record(gameID string) {
	ids := t.read()

	next := make([]string, 0, len(ids)+1)
	next = append(next, gameID)
	for _, id := range ids {
		if id == gameID {
			continue
		}
		next = append(next, id)
	}
	if len(next) > t.capacity {
		next = next[:t.capacity]
	}

	payload, err := json.Marshal(next)
	if err != nil {
		return // cannot happen for a string slice
	}
	t.storage.Set(HistoryKey, string(payload))
}

// List resolves the stored history against the catalog and returns the
// games most-recent first. IDs no longer present in the catalog are
// silently dropped from the result but NOT from storage — dangling entries
// age out naturally under capacity pressure. List is a pure read.
func (t *Tracker) List() []models.Game {
	ids := t.read()
	games := make([]models.Game, 0, len(ids))
	for _, id := range ids {
		if g := t.catalog.FindByID(id); g != nil {
			games = append(games, *g)
		}
	}
	return games
}

// IDs returns the raw stored history without catalog resolution.
func (t *Tracker) IDs() []string {
	return t.read()
}

// read loads and parses the stored history. Absent or malformed values
// (anything that is not a JSON array of strings) yield an empty history.
func (t *Tracker) read() []string {
	raw, ok := t.storage.Get(HistoryKey)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}
