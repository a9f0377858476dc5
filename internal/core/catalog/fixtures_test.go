// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/flag"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/core/taxonomy"
)

// newService wires a catalog over the bundled data.
func newService(t *testing.T) (*catalog.Service, *flag.Dataset) {
	t.Helper()

	fsys := data.FS()
	dataset, err := flag.LoadFS(fsys, data.FlagsFile)
	require.NoError(t, err)
	directory, err := country.LoadDirectoryFS(fsys, data.CountriesFile, country.NewStats())
	require.NoError(t, err)
	tree, err := taxonomy.LoadFS(fsys, data.TaxonomyFile)
	require.NoError(t, err)

	matcher := filter.NewEngine(filter.DefaultRegistry(), tree, directory)
	engine := query.NewEngine(dataset, matcher, directory)

	return catalog.NewService(engine, directory, slog.New(slog.NewTextHandler(io.Discard, nil))), dataset
}
