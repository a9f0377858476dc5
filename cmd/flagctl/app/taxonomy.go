// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTaxonomyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the category tree with ids and labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang, err := opts.language()
			if err != nil {
				return err
			}

			service, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}
			tree := service.Taxonomy()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), tree)
			}

			out := cmd.OutOrStdout()
			for _, category := range tree.Categories {
				fmt.Fprintf(out, "%s (%s)\n", category.ID, category.Label.Get(string(lang)))
				for _, sub := range category.Subcategories {
					fmt.Fprintf(out, "  %s (%s)\n", sub.ID, sub.Label.Get(string(lang)))
					for _, element := range sub.Elements {
						fmt.Fprintf(out, "    %s (%s)\n", element.ID, element.Label.Get(string(lang)))
					}
				}
			}
			return nil
		},
	}
}
