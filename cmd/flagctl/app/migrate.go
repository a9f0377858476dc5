// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/flagdex/data"
	"github.com/taibuivan/flagdex/internal/platform/migration"
)

func newMigrateCmd(opts *options) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the bundled preference migrations to a database",
		Long: `Apply every pending migration to the database holding UI preferences.
The API server does the same at startup; this command is for provisioning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("no database: pass --database-url or set DATABASE_URL")
			}
			return migration.RunUpFS(databaseURL, data.Open(opts.dataDir), data.MigrationsDir, opts.logger(cmd))
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (defaults to $DATABASE_URL)")
	return cmd
}
