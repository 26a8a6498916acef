// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/models"
)

// ProductsResponse wraps the product listing.
type ProductsResponse struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

// GetProducts returns the storefront product set.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		rw.ExternalServiceError("catalog", err)
		return
	}

	rw.Success(ProductsResponse{Products: products, Count: len(products)})
}

// GetProduct returns a single product by ID.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		rw.BadRequest("Product ID must be a positive integer")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			rw.NotFound("Product not found")
			return
		}
		rw.ExternalServiceError("catalog", err)
		return
	}

	rw.Success(product)
}
