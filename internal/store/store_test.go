// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "absent")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteMissingKeyIsNotAnError(t *testing.T) {
	s := NewMemoryStore()

	assert.NoError(t, s.Delete(context.Background(), "absent"))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got, "stored value must not alias the caller's slice")

	got[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again, "returned value must not alias the stored slice")
}

func TestMemoryStore_FailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.FailWrites = true
	ctx := context.Background()

	assert.Error(t, s.Set(ctx, "k", []byte("v")))
	assert.Error(t, s.Delete(ctx, "k"))
	assert.Equal(t, 0, s.Len())
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	ctx := context.Background()

	_, err = s.Get(ctx, "settings")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "settings", []byte(`{"enabled":true}`)))

	got, err := s.Get(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"enabled":true}`), got)

	require.NoError(t, s.Delete(ctx, "settings"))
	_, err = s.Get(ctx, "settings")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "settings"), "deleting an absent key is fine")
}
