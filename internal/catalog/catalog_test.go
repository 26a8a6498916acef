// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendaryo/trendaryo/internal/models"
)

func TestStaticCatalog_Products(t *testing.T) {
	c := NewStaticCatalog()

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, "iPhone 15 Pro", products[0].Name)
}

func TestStaticCatalog_Pool(t *testing.T) {
	c := NewStaticCatalog()

	pool, err := c.Pool(context.Background())
	require.NoError(t, err)
	require.Len(t, pool, 4)
	assert.Equal(t, "Smart Home Hub Pro", pool[0].Name)

	for _, p := range pool {
		assert.True(t, p.Type.Valid(), "pool entries carry a known type")
	}
}

func TestStaticCatalog_GetProduct(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	p, err := c.GetProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Fitness Tracker Pro", p.Name)
	assert.Equal(t, models.TypeWellness, p.Type)

	// Pool products resolve too.
	p, err = c.GetProduct(ctx, 203)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds Max", p.Name)

	_, err = c.GetProduct(ctx, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStaticCatalog_SnapshotsAreIndependent(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	first, err := c.Products(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", second[0].Name)
}

func TestRemoteCatalog_Products(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"iPhone 15 Pro","type":"tech","rating":4.8}]`))
	}))
	defer srv.Close()

	c := NewRemoteCatalog(RemoteConfig{BaseURL: srv.URL, APIKey: "secret"})

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "iPhone 15 Pro", products[0].Name)
	assert.Equal(t, models.TypeTech, products[0].Type)
}

func TestRemoteCatalog_GetProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewRemoteCatalog(RemoteConfig{BaseURL: srv.URL})

	_, err := c.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRemoteCatalog_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRemoteCatalog(RemoteConfig{BaseURL: srv.URL})

	_, err := c.Pool(context.Background())
	assert.Error(t, err)
}
