// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	stdctx "context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/core/taxonomy"
	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/pkg/slice"
)

// memoSize bounds the number of explorations kept in memory.
const memoSize = 256

// # Service Layer

// Service answers catalog reads over one immutable dataset.
type Service struct {
	engine    *query.Engine
	directory *country.Directory
	memo      *lru.Cache[string, *Exploration]
	inflight  singleflight.Group
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(engine *query.Engine, directory *country.Directory, logger *slog.Logger) *Service {
	// lru.New only fails on a non-positive size
	memo, _ := lru.New[string, *Exploration](memoSize)

	return &Service{
		engine:    engine,
		directory: directory,
		memo:      memo,
		logger:    logger,
	}
}

// Taxonomy returns the category tree.
func (service *Service) Taxonomy() *taxonomy.Taxonomy {
	return service.engine.Matcher().Taxonomy()
}

/*
Explore runs a query and computes the availability of every taxonomy node against
its result.

Description: Both are computed once per distinct params and memoized. Concurrent
identical requests share one computation. Country figures are part of the memo key
so a stats refresh invalidates population and area orderings.

Parameters:
  - context: context.Context
  - params: query.Params

Returns:
  - *Exploration: Shared, read-only result. Callers must not modify it.
  - error: The context error when the request was cancelled
*/
func (service *Service) Explore(context stdctx.Context, params query.Params) (*Exploration, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	key := service.memoKey(params)
	if exploration, ok := service.memo.Get(key); ok {
		return exploration, nil
	}

	value, _, _ := service.inflight.Do(key, func() (any, error) {
		start := time.Now()
		result := service.engine.Run(params)
		exploration := &Exploration{
			Result:       result,
			Availability: service.engine.Availability(params.Filters, result.Records),
		}
		service.memo.Add(key, exploration)

		service.logger.Debug("flag_query_computed",
			slog.Int("filtered", result.Filtered()),
			slog.Int("total", result.Total),
			slog.Duration("elapsed", time.Since(start)),
		)
		return exploration, nil
	})

	return value.(*Exploration), nil
}

/*
Detail returns the full view of the flag addressed by slug.

Returns:
  - *FlagDetail: The localized detail view
  - error: NOT_FOUND for an unknown slug
*/
func (service *Service) Detail(context stdctx.Context, slug string, lang country.Language) (*FlagDetail, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	rec, ok := service.engine.Dataset().BySlug(strings.ToLower(slug))
	if !ok {
		return nil, apperr.NotFound("Flag")
	}

	names := service.directory.Names(rec.CountryKey)
	ratio := service.directory.Ratio(rec.CountryKey)

	return &FlagDetail{
		Flag:       rec,
		Name:       service.directory.Name(rec.CountryKey, lang),
		Names:      Names{FR: names.FR, EN: names.EN},
		Ratio:      ratio.String(),
		Proportion: ratio.Bucket(),
		StarCount:  filter.StarCount(rec),
		Population: service.directory.Population(rec.CountryKey),
		Area:       service.directory.Area(rec.CountryKey),
	}, nil
}

// Summaries renders records as list rows in the given language.
func (service *Service) Summaries(records []*flag.Record, lang country.Language) []FlagSummary {
	return slice.Map(records, func(rec *flag.Record) FlagSummary {
		return FlagSummary{
			CountryKey: rec.CountryKey,
			Slug:       rec.Slug,
			Name:       service.directory.Name(rec.CountryKey, lang),
			Continent:  rec.Continent,
			Colors:     rec.Colors,
			Layout:     rec.Layout,
			Proportion: service.directory.Bucket(rec.CountryKey),
		}
	})
}

// memoKey encodes params and the stats version as JSON, so separators inside free
// text never merge two keys. Filters are keyed in the order given.
func (service *Service) memoKey(params query.Params) string {
	filters := make([][2]string, len(params.Filters))
	for i, f := range params.Filters {
		filters[i] = [2]string{f.CategoryID, f.ElementID}
	}

	// Only strings, bools and numbers, so encoding cannot fail
	key, _ := json.Marshal(struct {
		Filters  [][2]string      `json:"f"`
		Search   string           `json:"q"`
		Mode     query.ColorMode  `json:"m"`
		Schema   string           `json:"p"`
		Colors   []string         `json:"c"`
		Symbol   bool             `json:"s"`
		Sort     query.SortKey    `json:"o"`
		Language country.Language `json:"l"`
		Stats    int64            `json:"v"`
	}{
		Filters:  filters,
		Search:   params.Search,
		Mode:     params.Mode,
		Schema:   params.Pattern.SchemaID,
		Colors:   params.Pattern.Colors,
		Symbol:   params.Pattern.RequireSymbol,
		Sort:     params.Sort,
		Language: params.Language,
		Stats:    service.directory.Stats().UpdatedAt().UnixMilli(),
	})
	return string(key)
}
