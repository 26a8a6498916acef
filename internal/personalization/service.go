// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package personalization implements the preference store, the browsing
// history ledger, and the affinity scorer.
//
// The Service owns the two persisted records (settings, history) behind a
// single mutex. Every mutating call writes through to the KV store; reads
// prune the ledger lazily against the retention window. Persistence-read
// failures silently fall back to defaults (this is preference state, not
// transactional state), persistence-write failures are logged and the
// in-memory copy stays authoritative for the process lifetime.
//
// Service methods are split across files:
//   - service.go:  Service struct, constructor, loading
//   - settings.go: Settings / UpdateSettings and the cascade invariant
//   - ledger.go:   RecordView / History / ClearHistory / pruning
//   - scorer.go:   the category affinity scorer (pure functions)
package personalization

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/trendaryo/trendaryo/internal/logging"
	"github.com/trendaryo/trendaryo/internal/models"
	"github.com/trendaryo/trendaryo/internal/store"
)

// Storage keys for the two logical records.
const (
	settingsKey = "settings"
	historyKey  = "history"
)

// MaxEntries is the hard ledger capacity. Insertion evicts the oldest
// entries beyond this cap, independent of retention pruning.
const MaxEntries = 50

// Retention window bounds applied by normalize. The source accepted any
// integer here; values below one day would prune everything on the next
// read, so they are clamped instead.
const (
	MinRetentionDays = 1
	MaxRetentionDays = 365
)

// Service is the personalization subsystem: preference settings plus the
// browsing-history ledger, persisted through a KV store.
//
// Individual operations are atomic under an internal mutex. Read-modify-
// write sequences spanning multiple API calls remain last-write-wins,
// matching the original's concurrent-tab behavior; that limitation is
// accepted, not fixed.
type Service struct {
	mu sync.Mutex
	kv store.KV

	now func() time.Time

	settings       models.Settings
	settingsLoaded bool

	entries       []models.HistoryEntry
	entriesLoaded bool

	// generation increments on every ledger mutation. Consumers use it to
	// discard recommendation results computed against a superseded ledger.
	generation uint64
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a personalization service over the given store.
// Records are loaded lazily on first use.
func NewService(kv store.KV, opts ...Option) *Service {
	s := &Service{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generation returns the current ledger generation. It increments on every
// mutation (record, clear, effective prune), never decrements.
func (s *Service) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// loadSettingsLocked populates s.settings from the store on first use.
// Missing or corrupt data silently resets to defaults; preference state is
// never worth failing a request over.
func (s *Service) loadSettingsLocked(ctx context.Context) {
	if s.settingsLoaded {
		return
	}
	s.settingsLoaded = true
	s.settings = models.DefaultSettings()

	raw, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logging.Debug().Err(err).Msg("Settings record unreadable, using defaults")
		}
		return
	}

	var loaded models.Settings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		logging.Debug().Err(err).Msg("Settings record corrupt, using defaults")
		return
	}

	s.settings = normalize(loaded)
}

// loadHistoryLocked populates s.entries from the store on first use.
// Corrupt or missing data yields an empty ledger.
func (s *Service) loadHistoryLocked(ctx context.Context) {
	if s.entriesLoaded {
		return
	}
	s.entriesLoaded = true

	raw, err := s.kv.Get(ctx, historyKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logging.Debug().Err(err).Msg("History record unreadable, starting empty")
		}
		return
	}

	var loaded []models.HistoryEntry
	if err := json.Unmarshal(raw, &loaded); err != nil {
		logging.Debug().Err(err).Msg("History record corrupt, starting empty")
		return
	}

	if len(loaded) > MaxEntries {
		loaded = loaded[:MaxEntries]
	}
	s.entries = loaded
}

// persistSettingsLocked writes the settings record through to the store.
// Write failures are logged and swallowed: the in-memory copy stays
// authoritative for this process.
func (s *Service) persistSettingsLocked(ctx context.Context) {
	raw, err := json.Marshal(s.settings)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal settings record")
		return
	}
	if err := s.kv.Set(ctx, settingsKey, raw); err != nil {
		logging.Error().Err(err).Msg("Failed to persist settings record")
	}
}

// persistHistoryLocked writes the full ledger record through to the store.
func (s *Service) persistHistoryLocked(ctx context.Context) {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal history record")
		return
	}
	if err := s.kv.Set(ctx, historyKey, raw); err != nil {
		logging.Error().Err(err).Msg("Failed to persist history record")
	}
}
