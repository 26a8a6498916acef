// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/trendaryo/trendaryo/internal/store"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests. Returns 200 only when
// the persistence layer answers; a missing record still counts as
// answering.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	_, err := h.kv.Get(r.Context(), "settings")
	storeReady := err == nil || errors.Is(err, store.ErrNotFound)

	if !storeReady {
		rw.ServiceUnavailable("Persistence layer is not ready")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
