// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"io"
	"io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
)

/*
TestOpen loads the bundled data and rejects a flag without a country entry.
*/
func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := catalog.Open(data.FS(), country.NewStats(), logger)
	require.NoError(t, err)
	assert.Equal(t, len(service.Keys()), service.Len())
	assert.Contains(t, service.Keys(), "France")

	taxonomyYAML, err := fs.ReadFile(data.FS(), data.TaxonomyFile)
	require.NoError(t, err)

	broken := fstest.MapFS{
		data.FlagsFile:     {Data: []byte(`{"Atlantis": {"colors": ["blue"], "color_count": 1, "layout": "plain", "continent": "europe"}}`)},
		data.CountriesFile: {Data: []byte(`{"France": {"fr": "France", "en": "France", "ratio": "2:3"}}`)},
		data.TaxonomyFile:  {Data: taxonomyYAML},
	}
	_, err = catalog.Open(broken, country.NewStats(), logger)
	assert.ErrorContains(t, err, "Atlantis")
}
