// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package models defines the core data types shared across the service:
// personalization settings, browsing-history entries, and the read-only
// product shape owned by the catalog.
package models

// ProductType buckets the catalog into the two affinity categories the
// scorer understands.
type ProductType string

const (
	TypeTech     ProductType = "tech"
	TypeWellness ProductType = "wellness"
)

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	return t == TypeTech || t == TypeWellness
}

// Product is read-only reference data owned by the product catalog.
// The personalization subsystem never mutates it.
type Product struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Price    string      `json:"price"`
	Category string      `json:"category"`
	Type     ProductType `json:"type"`
	Rating   float64     `json:"rating"`
	Image    string      `json:"image"`
}

// HistoryEntry is one "product viewed" event in the browsing-history ledger.
// Category and Type are denormalized copies of the product attributes at
// view time, so entries survive product deletion.
type HistoryEntry struct {
	ProductID int64       `json:"productId"`
	Timestamp int64       `json:"timestamp"` // epoch millis at capture time
	Category  string      `json:"category"`
	Type      ProductType `json:"type"`
}

// Settings is the persisted personalization preference record.
//
// Invariant: Enabled=false forces TrackHistory and ShowRecommendations
// false and clears the ledger. The cascade is applied by
// personalization.Service, not here; Settings is plain data.
type Settings struct {
	Enabled             bool `json:"enabled"`
	TrackHistory        bool `json:"trackHistory"`
	ShowRecommendations bool `json:"showRecommendations"`
	RetentionDays       int  `json:"retentionDays"`
}

// DefaultRetentionDays is the retention window applied when no settings
// have been persisted yet.
const DefaultRetentionDays = 30

// DefaultSettings returns the settings used on first contact: everything
// off, 30-day retention. Personalization is strictly opt-in.
func DefaultSettings() Settings {
	return Settings{
		Enabled:             false,
		TrackHistory:        false,
		ShowRecommendations: false,
		RetentionDays:       DefaultRetentionDays,
	}
}

// SettingsPatch is a typed partial update for Settings. Nil fields are
// left unchanged. This replaces the original's untyped spread-merge so the
// cascading-disable invariant can be applied safely.
type SettingsPatch struct {
	Enabled             *bool `json:"enabled,omitempty"`
	TrackHistory        *bool `json:"trackHistory,omitempty"`
	ShowRecommendations *bool `json:"showRecommendations,omitempty"`
	RetentionDays       *int  `json:"retentionDays,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p SettingsPatch) IsZero() bool {
	return p.Enabled == nil && p.TrackHistory == nil &&
		p.ShowRecommendations == nil && p.RetentionDays == nil
}
