// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app holds the flagctl command tree.

Every command loads the bundled data (or --data-dir) into the same catalog service
the HTTP API uses, so results match the server exactly.
*/
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/platform/constants"
)

// options are the persistent flags shared by every command.
type options struct {
	dataDir    string
	lang       string
	jsonOutput bool
	verbose    bool
	fetchStats bool
	apiURL     string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "flagctl",
		Short:         "Explore the Flagdex flag catalog from the terminal",
		SilenceUsage:  true,
		Version:       constants.AppVersion,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory overriding the bundled data files")
	flags.StringVar(&opts.lang, "lang", string(country.DefaultLanguage), "Display language (fr, en)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log loading details to stderr")
	flags.BoolVar(&opts.fetchStats, "fetch-stats", false, "Download population and area figures before running")
	flags.StringVar(&opts.apiURL, "country-api-url", "https://restcountries.com/v3.1", "Country figures API used by --fetch-stats")

	root.AddCommand(
		newQueryCmd(opts),
		newAvailableCmd(opts),
		newTaxonomyCmd(opts),
		newShowCmd(opts),
		newMigrateCmd(opts),
	)
	return root
}

// # Shared Helpers

func (opts *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openCatalog loads the data and, with --fetch-stats, the country figures.
func (opts *options) openCatalog(cmd *cobra.Command) (*catalog.Service, error) {
	logger := opts.logger(cmd)
	stats := country.NewStats()

	service, err := catalog.Open(data.Open(opts.dataDir), stats, logger)
	if err != nil {
		return nil, err
	}

	if opts.fetchStats {
		ctx, cancel := context.WithTimeout(cmd.Context(), constants.StartupFetchTimeout)
		defer cancel()

		refresher := country.NewRefresher(
			country.NewClient(opts.apiURL, country.DefaultClientTimeout),
			nil, stats, service.Keys(), 0, logger,
		)
		if err := refresher.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("fetch country figures: %w", err)
		}
	}
	return service, nil
}

func (opts *options) language() (country.Language, error) {
	lang, ok := country.ParseLanguage(opts.lang)
	if !ok {
		return "", fmt.Errorf("unknown language %q, expected fr or en", opts.lang)
	}
	return lang, nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
