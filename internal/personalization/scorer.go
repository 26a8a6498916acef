// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package personalization

import "github.com/trendaryo/trendaryo/internal/models"

// TieBreak is the product type an evenly split or empty ledger resolves
// to. Wellness is a deliberate merchandising choice, kept as a named
// constant so the policy is visible rather than buried in a comparison.
const TieBreak = models.TypeWellness

// Score derives the dominant product-type affinity from a ledger
// snapshot by majority count. Ties resolve to TieBreak. Entries with an
// unknown type count toward neither side.
func Score(history []models.HistoryEntry) models.ProductType {
	tech, wellness := Counts(history)
	if tech > wellness {
		return models.TypeTech
	}
	return TieBreak
}

// Counts reports the per-type view counts behind a Score decision, for
// surfacing in API response metadata.
func Counts(history []models.HistoryEntry) (tech, wellness int) {
	for _, e := range history {
		switch e.Type {
		case models.TypeTech:
			tech++
		case models.TypeWellness:
			wellness++
		}
	}
	return tech, wellness
}
