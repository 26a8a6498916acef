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

// RecordView appends a product view to the ledger. It is a silent no-op
// unless both Enabled and TrackHistory are set; consent is checked here,
// at the write, not by the callers.
//
// A repeat view of the same product moves its entry to the front with a
// fresh timestamp rather than duplicating it. The ledger holds at most
// MaxEntries entries, newest first.
func (s *Service) RecordView(ctx context.Context, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSettingsLocked(ctx)
	if !s.settings.Enabled || !s.settings.TrackHistory {
		metrics.ViewsSkipped.Inc()
		return
	}

	s.loadHistoryLocked(ctx)

	entry := models.HistoryEntry{
		ProductID: product.ID,
		Timestamp: s.now().UnixMilli(),
		Category:  product.Category,
		Type:      product.Type,
	}

	// Dedup by product ID, then prepend.
	kept := make([]models.HistoryEntry, 0, len(s.entries)+1)
	kept = append(kept, entry)
	for _, e := range s.entries {
		if e.ProductID != product.ID {
			kept = append(kept, e)
		}
	}

	if len(kept) > MaxEntries {
		metrics.LedgerEvictions.Add(float64(len(kept) - MaxEntries))
		kept = kept[:MaxEntries]
	}

	s.entries = kept
	s.generation++
	s.persistHistoryLocked(ctx)

	metrics.ViewsRecorded.Inc()
	metrics.LedgerSize.Set(float64(len(s.entries)))

	logging.Debug().
		Int64("product_id", product.ID).
		Str("type", string(product.Type)).
		Int("ledger_size", len(s.entries)).
		Msg("Product view recorded")
}

// History returns a snapshot of the ledger, most recent first, after
// pruning entries older than the retention window. Pruning is lazy: it
// happens on read, and only writes through when it removed something.
func (s *Service) History(ctx context.Context) []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSettingsLocked(ctx)
	s.loadHistoryLocked(ctx)
	s.pruneLocked(ctx)

	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ClearHistory wipes the ledger on explicit user request.
func (s *Service) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadHistoryLocked(ctx)
	s.clearHistoryLocked(ctx, "manual")
}

// clearHistoryLocked empties the ledger and deletes the persisted record.
// reason distinguishes an explicit clear from a settings cascade in the
// metrics.
func (s *Service) clearHistoryLocked(ctx context.Context, reason string) {
	s.entries = nil
	s.generation++

	if err := s.kv.Delete(ctx, historyKey); err != nil {
		logging.Error().Err(err).Msg("Failed to delete history record")
	}

	metrics.HistoryClears.WithLabelValues(reason).Inc()
	metrics.LedgerSize.Set(0)

	logging.Debug().Str("reason", reason).Msg("Browsing history cleared")
}

// pruneLocked drops entries at or beyond the retention cutoff. Entries
// exactly at the cutoff are pruned; only strictly newer ones survive.
func (s *Service) pruneLocked(ctx context.Context) {
	if len(s.entries) == 0 {
		return
	}

	cutoff := s.now().AddDate(0, 0, -s.settings.RetentionDays).UnixMilli()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Timestamp > cutoff {
			kept = append(kept, e)
		}
	}

	removed := len(s.entries) - len(kept)
	if removed == 0 {
		return
	}

	s.entries = kept
	s.generation++
	metrics.PruneRemovals.Add(float64(removed))
	metrics.LedgerSize.Set(float64(len(s.entries)))

	if len(s.entries) == 0 {
		if err := s.kv.Delete(ctx, historyKey); err != nil {
			logging.Error().Err(err).Msg("Failed to delete history record")
		}
	} else {
		s.persistHistoryLocked(ctx)
	}

	logging.Debug().
		Int("removed", removed).
		Int("retention_days", s.settings.RetentionDays).
		Msg("Expired history entries pruned")
}
