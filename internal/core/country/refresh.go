// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	stdctx "context"
	"errors"
	"log/slog"
	"time"
)

// Refresher fills a [Stats] store once, from the cache when possible and from the
// external source otherwise.
type Refresher struct {
	source Source
	cache  StatsCache
	stats  *Stats
	keys   []string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRefresher wires a refresher. cache may be nil.
func NewRefresher(source Source, cache StatsCache, stats *Stats, keys []string, ttl time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		source: source,
		cache:  cache,
		stats:  stats,
		keys:   keys,
		ttl:    ttl,
		logger: logger,
	}
}

/*
Refresh loads the figures into the store.

Cached figures win. On a miss the source is queried, the result is re-keyed through
the alias table and written back to the cache. A failure leaves the store untouched,
so every figure keeps reading as zero.
*/
func (refresher *Refresher) Refresh(context stdctx.Context) error {
	if refresher.cache != nil {
		figures, err := refresher.cache.Load(context)
		switch {
		case err == nil:
			refresher.stats.Replace(figures)
			refresher.logger.Info("country_stats_loaded", slog.String("from", "cache"), slog.Int("countries", len(figures)))
			return nil
		case !errors.Is(err, ErrCacheMiss):
			refresher.logger.Warn("country_stats_cache_unavailable", slog.Any("error", err))
		}
	}

	raw, err := refresher.source.FetchAll(context)
	if err != nil {
		return err
	}

	figures := Resolve(raw, refresher.keys)
	refresher.stats.Replace(figures)
	refresher.logger.Info("country_stats_loaded",
		slog.String("from", "source"),
		slog.Int("countries", len(figures)),
		slog.Int("unresolved", len(refresher.keys)-len(figures)),
	)

	if refresher.cache != nil {
		if err := refresher.cache.Save(context, figures, refresher.ttl); err != nil {
			refresher.logger.Warn("country_stats_cache_write_failed", slog.Any("error", err))
		}
	}
	return nil
}
