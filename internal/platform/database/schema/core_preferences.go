// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by hand-written SQL.
package schema

import "github.com/taibuivan/flagdex/internal/platform/constants"

// CorePreferencesTable represents the 'core.preferences' table
type CorePreferencesTable struct {
	Table     string
	ClientID  string
	Zoom      string
	Theme     string
	Language  string
	CreatedAt string
	UpdatedAt string
}

// CorePreferences is the schema definition for core.preferences
var CorePreferences = CorePreferencesTable{
	Table:     constants.SchemaCore + ".preferences",
	ClientID:  "client_id",
	Zoom:      "zoom",
	Theme:     "theme",
	Language:  "language",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns the columns read back by the repository, in scan order.
func (t CorePreferencesTable) Columns() []string {
	return []string{t.ClientID, t.Zoom, t.Theme, t.Language, t.UpdatedAt}
}
