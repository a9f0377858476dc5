// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package data bundles the static reference files the catalog is built from.

Files:

  - flags.json: one flag record per country key.
  - countries.json: bilingual names and aspect ratios per country key.
  - taxonomy.yaml: the category tree shown in the filter panel.
  - migrations/: SQL migrations for the preference store.

The files are embedded so the binary runs without a data directory. DATA_DIR
swaps them for a directory on disk holding the same file names.
*/
package data

import (
	"embed"
	"io/fs"
	"os"
)

// Bundled file names.
const (
	FlagsFile     = "flags.json"
	CountriesFile = "countries.json"
	TaxonomyFile  = "taxonomy.yaml"
	MigrationsDir = "migrations"
)

//go:embed flags.json countries.json taxonomy.yaml migrations/*.sql
var files embed.FS

// FS returns the embedded files.
func FS() fs.FS { return files }

// Open returns the directory at dir when it is set and the embedded files otherwise.
func Open(dir string) fs.FS {
	if dir == "" {
		return files
	}
	return os.DirFS(dir)
}
