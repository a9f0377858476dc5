// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "show <slug>",
		Short:   "Print everything known about one flag",
		Example: "  flagctl show united-states --lang en",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}

			service, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}

			detail, err := service.Detail(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), detail)
			}

			elements := detail.Flag.Elements()
			if len(elements) == 0 {
				elements = []string{"-"}
			}

			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(out, "name\t%s / %s\n", detail.Names.FR, detail.Names.EN)
			fmt.Fprintf(out, "continent\t%s\n", detail.Flag.Continent)
			fmt.Fprintf(out, "colors\t%s (%d)\n", strings.Join(detail.Flag.Colors, ", "), detail.Flag.ColorCount)
			fmt.Fprintf(out, "layout\t%s\n", detail.Flag.Layout)
			fmt.Fprintf(out, "ratio\t%s (%s)\n", detail.Ratio, detail.Proportion)
			fmt.Fprintf(out, "stars\t%d\n", detail.StarCount)
			fmt.Fprintf(out, "elements\t%s\n", strings.Join(elements, ", "))
			fmt.Fprintf(out, "population\t%d\n", detail.Population)
			fmt.Fprintf(out, "area\t%.0f km²\n", detail.Area)
			return out.Flush()
		},
	}
}
