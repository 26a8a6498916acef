// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"net/http"
	"strconv"

	"github.com/trendaryo/trendaryo/internal/models"
	"github.com/trendaryo/trendaryo/internal/personalization"
	"github.com/trendaryo/trendaryo/internal/recommend"
)

// RecommendationsResponse wraps a resolved recommendation set.
type RecommendationsResponse struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

// GetRecommendations resolves a recommendation set against the current
// ledger. The optional limit query parameter defaults to 4 and is
// capped at 50.
//
// When showRecommendations is off the endpoint returns an empty set
// rather than an error; the storefront hides the rail either way.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit := recommend.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			rw.BadRequest("limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	if limit > recommend.MaxLimit {
		limit = recommend.MaxLimit
	}

	ctx := r.Context()
	settings := h.svc.Settings(ctx)
	if !settings.Enabled || !settings.ShowRecommendations {
		rw.Success(RecommendationsResponse{Products: []models.Product{}})
		return
	}

	history := h.svc.History(ctx)
	generation := h.svc.Generation()

	result, err := h.engine.Recommend(ctx, history, limit)
	if err != nil {
		rw.ExternalServiceError("catalog", err)
		return
	}

	tech, wellness := personalization.Counts(history)
	rw.SuccessWithMeta(
		RecommendationsResponse{
			Products: result.Products,
			Count:    len(result.Products),
		},
		&APIMeta{
			Recommendation: &RecommendationMeta{
				Affinity:      string(result.Affinity),
				Source:        result.Source,
				Generation:    generation,
				TechViews:     tech,
				WellnessViews: wellness,
			},
		},
	)
}
