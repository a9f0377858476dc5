// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/core/taxonomy"
)

/*
Open loads the flag dataset, the country directory and the taxonomy from fsys and
wires a [Service] over them.

Parameters:
  - fsys: fs.FS (the bundled data or a DATA_DIR override)
  - stats: *country.Stats (shared with the refresher, may still be empty)
  - logger: *slog.Logger

Returns:
  - *Service: Ready to answer queries
  - error: The first malformed or missing file
*/
func Open(fsys fs.FS, stats *country.Stats, logger *slog.Logger) (*Service, error) {
	dataset, err := flag.LoadFS(fsys, data.FlagsFile)
	if err != nil {
		return nil, err
	}

	directory, err := country.LoadDirectoryFS(fsys, data.CountriesFile, stats)
	if err != nil {
		return nil, err
	}

	tree, err := taxonomy.LoadFS(fsys, data.TaxonomyFile)
	if err != nil {
		return nil, err
	}

	// Every dataset key needs a display name
	for _, key := range dataset.Keys() {
		if !directory.Has(key) {
			return nil, fmt.Errorf("catalog: country %q has no entry in %s", key, data.CountriesFile)
		}
	}

	matcher := filter.NewEngine(filter.DefaultRegistry(), tree, directory)
	engine := query.NewEngine(dataset, matcher, directory)

	logger.Info("flag_dataset_loaded",
		slog.Int("flags", dataset.Len()),
		slog.Int("categories", len(tree.Categories)),
	)

	return NewService(engine, directory, logger), nil
}

// Keys returns the country keys of the dataset.
func (service *Service) Keys() []string {
	return service.engine.Dataset().Keys()
}

// Len returns the number of flags.
func (service *Service) Len() int {
	return service.engine.Dataset().Len()
}
