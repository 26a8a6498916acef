// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/trendaryo/trendaryo/internal/logging"
	"github.com/trendaryo/trendaryo/internal/metrics"
	"github.com/trendaryo/trendaryo/internal/models"
)

// FallbackEngine wraps an Engine and serves the last successful result
// when the inner engine fails. A failing upstream catalog degrades
// recommendations to slightly stale ones instead of an error page.
type FallbackEngine struct {
	inner Engine

	mu       sync.Mutex
	last     Result
	lastSet  bool
	lastTime time.Time
}

// NewFallbackEngine wraps inner with stale-on-failure serving.
func NewFallbackEngine(inner Engine) *FallbackEngine {
	return &FallbackEngine{inner: inner}
}

// Recommend delegates to the inner engine. On success the result is
// cached; on failure the cached result is returned with Source "stale".
// The first-ever failure has nothing cached and propagates the error.
func (f *FallbackEngine) Recommend(ctx context.Context, history []models.HistoryEntry, limit int) (Result, error) {
	result, err := f.inner.Recommend(ctx, history, limit)
	if err == nil {
		f.mu.Lock()
		f.last = result
		f.lastSet = true
		f.lastTime = time.Now()
		f.mu.Unlock()
		return result, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.lastSet {
		return Result{}, err
	}

	stale := f.last
	stale.Source = "stale"

	logging.Warn().
		Err(err).
		Dur("age", time.Since(f.lastTime)).
		Msg("Recommendation resolve failed, serving cached result")
	metrics.RecordRecommendation(stale.Source, string(stale.Affinity), 0)

	return stale, nil
}
