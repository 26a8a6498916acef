// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package personalization

import (
	"context"

	"github.com/trendaryo/trendaryo/internal/logging"
	"github.com/trendaryo/trendaryo/internal/metrics"
	"github.com/trendaryo/trendaryo/internal/models"
)

// Settings returns the current preference settings, or defaults if none
// have been persisted. It never fails.
func (s *Service) Settings(ctx context.Context) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSettingsLocked(ctx)
	return s.settings
}

// UpdateSettings merges patch into the current settings, applies the
// cascading-disable invariant, persists, and returns the result.
//
// Cascade: Enabled=false forces TrackHistory and ShowRecommendations off.
// Disabling tracking, whether directly or through the master switch, wipes
// the ledger immediately. That is a privacy policy, not an accident.
func (s *Service) UpdateSettings(ctx context.Context, patch models.SettingsPatch) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSettingsLocked(ctx)
	prev := s.settings

	merged := prev
	if patch.Enabled != nil {
		merged.Enabled = *patch.Enabled
	}
	if patch.TrackHistory != nil {
		merged.TrackHistory = *patch.TrackHistory
	}
	if patch.ShowRecommendations != nil {
		merged.ShowRecommendations = *patch.ShowRecommendations
	}
	if patch.RetentionDays != nil {
		merged.RetentionDays = *patch.RetentionDays
	}

	merged = normalize(merged)

	// An explicit opt-out always clears, as does a cascade-induced
	// tracking transition.
	clearLedger := prev.TrackHistory && !merged.TrackHistory
	if patch.TrackHistory != nil && !*patch.TrackHistory {
		clearLedger = true
	}
	if patch.Enabled != nil && !*patch.Enabled {
		clearLedger = true
	}

	s.settings = merged
	s.persistSettingsLocked(ctx)
	metrics.SettingsUpdates.Inc()

	if clearLedger {
		s.clearHistoryLocked(ctx, "cascade")
	}

	logging.Debug().
		Bool("enabled", merged.Enabled).
		Bool("track_history", merged.TrackHistory).
		Bool("show_recommendations", merged.ShowRecommendations).
		Int("retention_days", merged.RetentionDays).
		Bool("history_cleared", clearLedger).
		Msg("Personalization settings updated")

	return merged
}

// normalize enforces the settings invariants: the master switch cascades
// to the dependent flags, and the retention window is clamped to
// [MinRetentionDays, MaxRetentionDays].
func normalize(s models.Settings) models.Settings {
	if !s.Enabled {
		s.TrackHistory = false
		s.ShowRecommendations = false
	}
	if s.RetentionDays < MinRetentionDays {
		s.RetentionDays = MinRetentionDays
	}
	if s.RetentionDays > MaxRetentionDays {
		s.RetentionDays = MaxRetentionDays
	}
	return s
}
