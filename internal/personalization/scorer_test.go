// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trendaryo/trendaryo/internal/models"
)

func entriesOf(types ...models.ProductType) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(types))
	for i, typ := range types {
		out[i] = models.HistoryEntry{ProductID: int64(i + 1), Type: typ}
	}
	return out
}

func TestScore(t *testing.T) {
	tech := models.TypeTech
	wellness := models.TypeWellness

	tests := []struct {
		name    string
		history []models.HistoryEntry
		want    models.ProductType
	}{
		{"empty resolves to tie-break", nil, TieBreak},
		{"tech majority", entriesOf(tech, tech, wellness), tech},
		{"wellness majority", entriesOf(wellness, wellness, tech), wellness},
		{"even split resolves to tie-break", entriesOf(tech, wellness), TieBreak},
		{"single tech view", entriesOf(tech), tech},
		{"unknown types count toward neither", []models.HistoryEntry{
			{ProductID: 1, Type: "gadget"},
			{ProductID: 2, Type: "gadget"},
			{ProductID: 3, Type: tech},
		}, tech},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.history))
		})
	}
}

func TestCounts(t *testing.T) {
	history := entriesOf(models.TypeTech, models.TypeWellness, models.TypeTech)
	history = append(history, models.HistoryEntry{ProductID: 9, Type: "unknown"})

	tech, wellness := Counts(history)

	assert.Equal(t, 2, tech)
	assert.Equal(t, 1, wellness)
}
