// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package recommend resolves product recommendations from a browsing
// history snapshot and a catalog candidate pool.
//
// Engine is the resolver contract. Resolver implements it over any
// catalog.Provider; with the static seed it is fully in-process, with a
// RemoteCatalog it is remote-backed. FallbackEngine layers
// stale-on-failure serving over either.
package recommend

import (
	"context"
	"sort"
	"time"

	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/metrics"
	"github.com/trendaryo/trendaryo/internal/models"
	"github.com/trendaryo/trendaryo/internal/personalization"
)

// DefaultLimit is the recommendation set size when the caller does not
// specify one.
const DefaultLimit = 4

// MaxLimit caps the requested set size.
const MaxLimit = 50

// Result is a resolved recommendation set.
type Result struct {
	Products []models.Product   `json:"products"`
	Affinity models.ProductType `json:"affinity"`
	Source   string             `json:"source"` // "local", "stale"
}

// Engine resolves a recommendation set for a ledger snapshot.
type Engine interface {
	Recommend(ctx context.Context, history []models.HistoryEntry, limit int) (Result, error)
}

// Resolver derives recommendations deterministically from the candidate
// pool: with an empty history it returns the pool head, otherwise it
// filters the pool by the dominant affinity and ranks by rating.
type Resolver struct {
	provider catalog.Provider
}

// NewResolver creates a resolver over the given catalog provider.
func NewResolver(provider catalog.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Recommend resolves up to limit products. Identical inputs always
// yield identical output; ties in rating keep pool order.
func (r *Resolver) Recommend(ctx context.Context, history []models.HistoryEntry, limit int) (Result, error) {
	start := time.Now()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	pool, err := r.provider.Pool(ctx)
	if err != nil {
		return Result{}, err
	}

	affinity := personalization.Score(history)
	result := Result{Affinity: affinity, Source: "local"}

	if len(history) == 0 {
		// Cold start: no signal to filter on, serve the pool head.
		if limit > len(pool) {
			limit = len(pool)
		}
		result.Products = pool[:limit]
		metrics.RecordRecommendation(result.Source, string(affinity), time.Since(start))
		return result, nil
	}

	filtered := make([]models.Product, 0, len(pool))
	for _, p := range pool {
		if p.Type == affinity {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})

	if limit > len(filtered) {
		limit = len(filtered)
	}
	result.Products = filtered[:limit]

	metrics.RecordRecommendation(result.Source, string(affinity), time.Since(start))
	return result, nil
}
