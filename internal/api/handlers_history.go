// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"errors"
	"net/http"

	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/models"
	"github.com/trendaryo/trendaryo/internal/validation"
)

// RecordViewRequest is the body for recording a product view. Category
// and type may be omitted, in which case they are resolved from the
// catalog.
type RecordViewRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Category  string `json:"category"`
	Type      string `json:"type" validate:"omitempty,oneof=tech wellness"`
}

// HistoryResponse wraps a ledger snapshot.
type HistoryResponse struct {
	Entries []models.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// RecordView records a product view in the browsing history. When
// personalization or tracking is disabled the request succeeds but
// nothing is recorded; the response says which happened.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecordViewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	product, err := h.resolveProduct(r, req)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			rw.NotFound("Product not found")
			return
		}
		rw.ExternalServiceError("catalog", err)
		return
	}

	h.svc.RecordView(r.Context(), product)

	settings := h.svc.Settings(r.Context())
	rw.Success(map[string]interface{}{
		"recorded": settings.Enabled && settings.TrackHistory,
	})
}

// resolveProduct builds the product to record. A request carrying its
// own type is trusted as-is; otherwise the catalog is consulted.
func (h *Handler) resolveProduct(r *http.Request, req RecordViewRequest) (models.Product, error) {
	if req.Type != "" {
		return models.Product{
			ID:       req.ProductID,
			Category: req.Category,
			Type:     models.ProductType(req.Type),
		}, nil
	}

	return h.catalog.GetProduct(r.Context(), req.ProductID)
}

// GetHistory returns the ledger snapshot, most recent first. Entries
// older than the retention window are pruned before the snapshot is
// taken.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	entries := h.svc.History(r.Context())
	rw.Success(HistoryResponse{
		Entries: entries,
		Count:   len(entries),
	})
}

// ClearHistory wipes the browsing history on explicit request.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearHistory(r.Context())
	NewResponseWriter(w, r).NoContent()
}
