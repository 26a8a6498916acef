// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/trendaryo/trendaryo/internal/logging"
	"github.com/trendaryo/trendaryo/internal/metrics"
	"github.com/trendaryo/trendaryo/internal/models"
)

// RemoteConfig configures the remote catalog client.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
	APIKey  string
}

// RemoteCatalog fetches products from an upstream catalog service over
// HTTP, with circuit breaker protection so a failing upstream cannot
// stall recommendation serving.
//
// The breaker uses real time for its interval and timeout calculations.
// That timing governs recovery, not data integrity; tests exercise the
// transport through a stub server rather than mocking the breaker.
type RemoteCatalog struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[[]models.Product]
	name    string
}

// NewRemoteCatalog creates a remote catalog client.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewRemoteCatalog(cfg RemoteConfig) *RemoteCatalog {
	cbName := "catalog-api"

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]models.Product](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &RemoteCatalog{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		cb:      cb,
		name:    cbName,
	}
}

// Products fetches the storefront product set from the upstream service.
func (r *RemoteCatalog) Products(ctx context.Context) ([]models.Product, error) {
	return r.fetchList(ctx, "/products")
}

// Pool fetches the recommendation candidate pool.
func (r *RemoteCatalog) Pool(ctx context.Context) ([]models.Product, error) {
	return r.fetchList(ctx, "/products/pool")
}

// GetProduct fetches a single product by ID.
func (r *RemoteCatalog) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	list, err := r.execute(func() ([]models.Product, error) {
		var p models.Product
		if err := r.getJSON(ctx, fmt.Sprintf("/products/%d", id), &p); err != nil {
			return nil, err
		}
		return []models.Product{p}, nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return list[0], nil
}

func (r *RemoteCatalog) fetchList(ctx context.Context, path string) ([]models.Product, error) {
	return r.execute(func() ([]models.Product, error) {
		var list []models.Product
		if err := r.getJSON(ctx, path, &list); err != nil {
			return nil, err
		}
		return list, nil
	})
}

// execute wraps an upstream call with circuit breaker protection and
// records the outcome in the breaker metrics.
func (r *RemoteCatalog) execute(fn func() ([]models.Product, error)) ([]models.Product, error) {
	result, err := r.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	return result, nil
}

func (r *RemoteCatalog) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("catalog request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response %s: %w", path, err)
	}
	return nil
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
