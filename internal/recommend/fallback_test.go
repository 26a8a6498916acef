// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendaryo/trendaryo/internal/models"
)

// flakyEngine fails on demand.
type flakyEngine struct {
	result Result
	fail   bool
	calls  int
}

func (f *flakyEngine) Recommend(ctx context.Context, history []models.HistoryEntry, limit int) (Result, error) {
	f.calls++
	if f.fail {
		return Result{}, errors.New("upstream catalog unavailable")
	}
	return f.result, nil
}

func TestFallbackEngine_PassesThroughOnSuccess(t *testing.T) {
	inner := &flakyEngine{result: Result{
		Products: []models.Product{{ID: 201}},
		Affinity: models.TypeTech,
		Source:   "local",
	}}
	fb := NewFallbackEngine(inner)

	result, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Equal(t, "local", result.Source)
	assert.Len(t, result.Products, 1)
}

func TestFallbackEngine_ServesStaleOnFailure(t *testing.T) {
	inner := &flakyEngine{result: Result{
		Products: []models.Product{{ID: 201}, {ID: 203}},
		Affinity: models.TypeTech,
		Source:   "local",
	}}
	fb := NewFallbackEngine(inner)

	_, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err)

	inner.fail = true
	result, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err, "cached result absorbs the failure")
	assert.Equal(t, "stale", result.Source)
	assert.Len(t, result.Products, 2)
	assert.Equal(t, models.TypeTech, result.Affinity)
}

func TestFallbackEngine_FirstFailurePropagates(t *testing.T) {
	inner := &flakyEngine{fail: true}
	fb := NewFallbackEngine(inner)

	_, err := fb.Recommend(context.Background(), nil, 4)
	assert.Error(t, err, "nothing cached yet")
}

func TestFallbackEngine_RecoversAfterFailure(t *testing.T) {
	inner := &flakyEngine{result: Result{Source: "local", Affinity: models.TypeWellness}}
	fb := NewFallbackEngine(inner)

	_, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err)

	inner.fail = true
	stale, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Equal(t, "stale", stale.Source)

	inner.fail = false
	fresh, err := fb.Recommend(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Equal(t, "local", fresh.Source)
}
