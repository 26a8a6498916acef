// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"net/http"

	"github.com/trendaryo/trendaryo/internal/models"
)

// GetSettings returns the current personalization settings. A visitor
// who has never saved settings gets the opt-out defaults.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.svc.Settings(r.Context()))
}

// UpdateSettings applies a partial settings update. Omitted fields keep
// their current values. Disabling tracking, directly or through the
// master switch, also wipes the browsing history.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var patch models.SettingsPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if patch.IsZero() {
		rw.BadRequest("Request body must set at least one field")
		return
	}

	rw.Success(h.svc.UpdateSettings(r.Context(), patch))
}
