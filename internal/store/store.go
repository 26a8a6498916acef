// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package store provides key-value persistence for the personalization
// records. The records are small consumer-opaque JSON blobs (one settings
// object, one bounded history array), so the interface is a plain
// get/set/delete over byte slices; BadgerDB backs it in production and an
// in-memory map backs it in tests.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no persisted value.
// Callers in the personalization layer treat it as "use defaults".
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence contract consumed by the personalization layer.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
