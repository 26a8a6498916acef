// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package personalization

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendaryo/trendaryo/internal/models"
	"github.com/trendaryo/trendaryo/internal/store"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// enableAll turns on every flag so ledger operations are live.
func enableAll(t *testing.T, s *Service) {
	t.Helper()
	s.UpdateSettings(context.Background(), models.SettingsPatch{
		Enabled:             boolPtr(true),
		TrackHistory:        boolPtr(true),
		ShowRecommendations: boolPtr(true),
	})
}

func TestSettings_DefaultsWhenEmpty(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	got := svc.Settings(context.Background())

	assert.False(t, got.Enabled)
	assert.False(t, got.TrackHistory)
	assert.False(t, got.ShowRecommendations)
	assert.Equal(t, models.DefaultRetentionDays, got.RetentionDays)
}

func TestUpdateSettings_PartialPatchKeepsOtherFields(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	svc.UpdateSettings(ctx, models.SettingsPatch{
		Enabled:      boolPtr(true),
		TrackHistory: boolPtr(true),
	})

	got := svc.UpdateSettings(ctx, models.SettingsPatch{
		RetentionDays: intPtr(7),
	})

	assert.True(t, got.Enabled)
	assert.True(t, got.TrackHistory)
	assert.Equal(t, 7, got.RetentionDays)
}

func TestUpdateSettings_DisableCascades(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()
	enableAll(t, svc)

	got := svc.UpdateSettings(ctx, models.SettingsPatch{Enabled: boolPtr(false)})

	assert.False(t, got.Enabled)
	assert.False(t, got.TrackHistory, "disabling the master switch must turn off tracking")
	assert.False(t, got.ShowRecommendations, "disabling the master switch must turn off recommendations")
}

func TestUpdateSettings_DisableClearsHistory(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()
	enableAll(t, svc)

	svc.RecordView(ctx, models.Product{ID: 1, Type: models.TypeTech})
	require.Len(t, svc.History(ctx), 1)

	svc.UpdateSettings(ctx, models.SettingsPatch{Enabled: boolPtr(false)})

	assert.Empty(t, svc.History(ctx))
}

func TestUpdateSettings_TrackHistoryFalseClearsHistory(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()
	enableAll(t, svc)

	svc.RecordView(ctx, models.Product{ID: 1, Type: models.TypeTech})
	svc.RecordView(ctx, models.Product{ID: 2, Type: models.TypeWellness})
	require.Len(t, svc.History(ctx), 2)

	got := svc.UpdateSettings(ctx, models.SettingsPatch{TrackHistory: boolPtr(false)})

	assert.True(t, got.Enabled, "master switch stays on")
	assert.False(t, got.TrackHistory)
	assert.Empty(t, svc.History(ctx))
}

// Sending trackHistory=false when tracking is already off still clears.
// An explicit opt-out is honored regardless of prior state.
func TestUpdateSettings_ExplicitOptOutAlwaysClears(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewService(kv)
	ctx := context.Background()
	enableAll(t, svc)

	svc.RecordView(ctx, models.Product{ID: 1, Type: models.TypeTech})

	// Simulate a second process that still has entries persisted but
	// sees tracking already off.
	svc.UpdateSettings(ctx, models.SettingsPatch{TrackHistory: boolPtr(false)})
	before := svc.Generation()

	svc.UpdateSettings(ctx, models.SettingsPatch{TrackHistory: boolPtr(false)})

	assert.Greater(t, svc.Generation(), before, "repeated opt-out still bumps the ledger generation")
	assert.Empty(t, svc.History(ctx))
}

func TestUpdateSettings_RetentionClamped(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 0, MinRetentionDays},
		{"negative", -5, MinRetentionDays},
		{"above maximum", 10000, MaxRetentionDays},
		{"in range", 90, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(store.NewMemoryStore())
			got := svc.UpdateSettings(context.Background(), models.SettingsPatch{
				RetentionDays: intPtr(tt.in),
			})
			assert.Equal(t, tt.want, got.RetentionDays)
		})
	}
}

func TestSettings_PersistAcrossServiceInstances(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	first := NewService(kv)
	first.UpdateSettings(ctx, models.SettingsPatch{
		Enabled:       boolPtr(true),
		RetentionDays: intPtr(14),
	})

	second := NewService(kv)
	got := second.Settings(ctx)

	assert.True(t, got.Enabled)
	assert.Equal(t, 14, got.RetentionDays)
}

func TestSettings_CorruptRecordFallsBackToDefaults(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "settings", []byte("{not json")))

	svc := NewService(kv)
	got := svc.Settings(ctx)

	assert.Equal(t, models.DefaultSettings(), got)
}

func TestUpdateSettings_WriteFailureKeepsInMemoryState(t *testing.T) {
	kv := store.NewMemoryStore()
	kv.FailWrites = true
	svc := NewService(kv, WithClock(func() time.Time { return time.Unix(0, 0) }))
	ctx := context.Background()

	got := svc.UpdateSettings(ctx, models.SettingsPatch{Enabled: boolPtr(true)})

	assert.True(t, got.Enabled)
	assert.True(t, svc.Settings(ctx).Enabled, "in-memory copy stays authoritative")
	assert.Equal(t, 0, kv.Len())
}
