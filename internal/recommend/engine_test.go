// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/models"
)

func testPool() []models.Product {
	return []models.Product{
		{ID: 201, Name: "Smart Home Hub Pro", Type: models.TypeTech, Rating: 4.6},
		{ID: 202, Name: "Fitness Band Elite", Type: models.TypeWellness, Rating: 4.4},
		{ID: 203, Name: "Wireless Earbuds Max", Type: models.TypeTech, Rating: 4.8},
		{ID: 204, Name: "Meditation Cushion Pro", Type: models.TypeWellness, Rating: 4.3},
	}
}

func testResolver() *Resolver {
	return NewResolver(catalog.NewStaticCatalogWith(nil, testPool()))
}

func techHistory(n int) []models.HistoryEntry {
	out := make([]models.HistoryEntry, n)
	for i := range out {
		out[i] = models.HistoryEntry{ProductID: int64(i + 1), Type: models.TypeTech}
	}
	return out
}

func TestResolver_ColdStartServesPoolHead(t *testing.T) {
	result, err := testResolver().Recommend(context.Background(), nil, 2)
	require.NoError(t, err)

	assert.Equal(t, "local", result.Source)
	require.Len(t, result.Products, 2)
	assert.Equal(t, int64(201), result.Products[0].ID)
	assert.Equal(t, int64(202), result.Products[1].ID)
}

func TestResolver_FiltersByAffinityAndRanksByRating(t *testing.T) {
	result, err := testResolver().Recommend(context.Background(), techHistory(3), 4)
	require.NoError(t, err)

	assert.Equal(t, models.TypeTech, result.Affinity)
	require.Len(t, result.Products, 2, "only tech candidates qualify")
	assert.Equal(t, int64(203), result.Products[0].ID, "highest rated first")
	assert.Equal(t, int64(201), result.Products[1].ID)
}

func TestResolver_TieResolvesToWellness(t *testing.T) {
	history := []models.HistoryEntry{
		{ProductID: 1, Type: models.TypeTech},
		{ProductID: 2, Type: models.TypeWellness},
	}

	result, err := testResolver().Recommend(context.Background(), history, 4)
	require.NoError(t, err)

	assert.Equal(t, models.TypeWellness, result.Affinity)
	require.Len(t, result.Products, 2)
	assert.Equal(t, int64(202), result.Products[0].ID)
	assert.Equal(t, int64(204), result.Products[1].ID)
}

func TestResolver_LimitZeroYieldsEmptySet(t *testing.T) {
	result, err := testResolver().Recommend(context.Background(), techHistory(1), 0)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestResolver_LimitBeyondCandidates(t *testing.T) {
	result, err := testResolver().Recommend(context.Background(), techHistory(1), 10)
	require.NoError(t, err)
	assert.Len(t, result.Products, 2)
}

func TestResolver_Deterministic(t *testing.T) {
	r := testResolver()
	history := techHistory(5)

	first, err := r.Recommend(context.Background(), history, 4)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := r.Recommend(context.Background(), history, 4)
		require.NoError(t, err)
		assert.Equal(t, first.Products, again.Products)
	}
}
