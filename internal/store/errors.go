// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package store

import "errors"

// errWriteFailed is the synthetic failure injected by MemoryStore.FailWrites.
var errWriteFailed = errors.New("store: write failed")
