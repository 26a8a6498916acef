// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package catalog provides product data to the recommendation resolver
// and the read-only catalog endpoints. The default provider is a static
// in-process seed; a remote HTTP provider is available for deployments
// with a live catalog service.
package catalog

import (
	"context"
	"errors"

	"github.com/trendaryo/trendaryo/internal/models"
)

// ErrProductNotFound is returned when a product ID is not in the catalog.
var ErrProductNotFound = errors.New("catalog: product not found")

// Provider serves the storefront product set and the recommendation
// candidate pool. The pool is a distinct, smaller set of promoted items
// and is not a subset of the storefront products.
type Provider interface {
	Products(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	Pool(ctx context.Context) ([]models.Product, error)
}

// StaticCatalog is the built-in seed catalog. It is immutable after
// construction and safe for concurrent use.
type StaticCatalog struct {
	products []models.Product
	pool     []models.Product
	byID     map[int64]models.Product
}

// NewStaticCatalog returns the seed catalog with the storefront products
// and the promoted recommendation pool.
func NewStaticCatalog() *StaticCatalog {
	return newStaticCatalog(seedProducts(), seedPool())
}

// NewStaticCatalogWith builds a catalog from caller-supplied data, for
// tests and fixtures.
func NewStaticCatalogWith(products, pool []models.Product) *StaticCatalog {
	return newStaticCatalog(products, pool)
}

func newStaticCatalog(products, pool []models.Product) *StaticCatalog {
	byID := make(map[int64]models.Product, len(products)+len(pool))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, p := range pool {
		byID[p.ID] = p
	}
	return &StaticCatalog{products: products, pool: pool, byID: byID}
}

// Products returns the storefront product set.
func (c *StaticCatalog) Products(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// GetProduct looks up a product by ID across the storefront set and the
// recommendation pool.
func (c *StaticCatalog) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Pool returns the recommendation candidate pool.
func (c *StaticCatalog) Pool(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(c.pool))
	copy(out, c.pool)
	return out, nil
}
