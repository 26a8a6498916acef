// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/personalization"
	"github.com/trendaryo/trendaryo/internal/recommend"
	"github.com/trendaryo/trendaryo/internal/store"
)

// maxBodyBytes bounds request bodies. The largest legitimate payload is
// a settings patch or a single product view.
const maxBodyBytes = 16 << 10

// Handler implements all HTTP endpoints.
type Handler struct {
	svc       *personalization.Service
	catalog   catalog.Provider
	engine    recommend.Engine
	kv        store.KV
	startTime time.Time
}

// NewHandler creates the endpoint handler set.
func NewHandler(svc *personalization.Service, cat catalog.Provider, engine recommend.Engine, kv store.KV) *Handler {
	return &Handler{
		svc:       svc,
		catalog:   cat,
		engine:    engine,
		kv:        kv,
		startTime: time.Now(),
	}
}

// decodeBody decodes a JSON request body into dst. It rejects oversized
// bodies and unknown fields, and writes the error response itself.
// Returns false if the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		NewResponseWriter(w, r).BadRequest("Invalid request body: " + err.Error())
		return false
	}
	return true
}
