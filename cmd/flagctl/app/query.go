// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/pkg/convert"
)

// queryFlags mirrors the query parameters of GET /api/v1/flags.
type queryFlags struct {
	filters []string
	search  string
	mode    string
	schema  string
	colors  string
	symbol  bool
	sort    string
}

func (q *queryFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&q.filters, "filter", "f", nil, "Filter as category:element (repeatable)")
	flags.StringVarP(&q.search, "search", "q", "", "Name, keyword or motto search")
	flags.StringVar(&q.mode, "mode", "", "Color mode (or, and, not)")
	flags.StringVar(&q.schema, "schema", "", "Pattern schema id")
	flags.StringVar(&q.colors, "colors", "", "Comma separated band colors, empty slot is a wildcard")
	flags.BoolVar(&q.symbol, "symbol", false, "Pattern requires a symbol")
	flags.StringVar(&q.sort, "sort", "", "Sort key (name_asc, name_desc, population_desc, ...)")
}

func (q *queryFlags) input(lang string) catalog.Input {
	return catalog.Input{
		Filters:       q.filters,
		Search:        q.search,
		Mode:          q.mode,
		Schema:        q.schema,
		Colors:        convert.ToSlots(q.colors),
		RequireSymbol: q.symbol,
		Sort:          q.sort,
		Language:      lang,
	}
}

// # query

func newQueryCmd(opts *options) *cobra.Command {
	q := &queryFlags{}
	var limit int

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List the flags matching filters, search and pattern",
		Example: `  flagctl query -f continents:europe -f colors:red --mode and
  flagctl query --schema vertical_triband --colors ,white, --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := q.input(opts.lang).Params()
			if err != nil {
				return err
			}

			service, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}

			exploration, err := service.Explore(cmd.Context(), params)
			if err != nil {
				return err
			}

			records := exploration.Result.Records
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			summaries := service.Summaries(records, params.Language)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summaries)
			}

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, summary := range summaries {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", summary.Name, summary.Continent, strings.Join(summary.Colors, ","), summary.Layout)
			}
			fmt.Fprintf(out, "\n%d/%d flags\n", exploration.Result.Filtered(), exploration.Result.Total)
			return out.Flush()
		},
	}

	q.bind(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n flags (0 prints all)")
	return cmd
}

// # available

func newAvailableCmd(opts *options) *cobra.Command {
	q := &queryFlags{}
	var all bool

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List the taxonomy nodes that still leave at least one flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := q.input(opts.lang).Params()
			if err != nil {
				return err
			}

			service, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}

			exploration, err := service.Explore(cmd.Context(), params)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), catalog.AvailabilityView{
					Filtered:     exploration.Result.Filtered(),
					Total:        exploration.Result.Total,
					Availability: exploration.Availability,
				})
			}

			out := cmd.OutOrStdout()
			for _, category := range service.Taxonomy().Categories {
				for _, sub := range category.Subcategories {
					for _, element := range sub.Elements {
						available := exploration.Availability.Get(category.ID, element.ID)
						switch {
						case available && all:
							fmt.Fprintf(out, "+ %s:%s\n", category.ID, element.ID)
						case available:
							fmt.Fprintf(out, "%s:%s\n", category.ID, element.ID)
						case all:
							fmt.Fprintf(out, "- %s:%s\n", category.ID, element.ID)
						}
					}
				}
			}
			return nil
		},
	}

	q.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Also list unavailable nodes, marked with -")
	return cmd
}
