// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preference stores the display settings of an anonymous client.

A client is identified by an opaque id it generates itself. Settings that were
never saved read back as the defaults, so a GET never fails for a well-formed id.
*/
package preference

import "time"

// # Constants

const (
	MinZoom     = 50
	MaxZoom     = 200
	DefaultZoom = 100

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultTheme    = ThemeSystem
	DefaultLanguage = "fr"

	maxClientIDLen = 64
)

// Themes lists the accepted theme values.
var Themes = []string{ThemeLight, ThemeDark, ThemeSystem}

// # Core Entity

// Preference holds the UI settings of one client.
type Preference struct {
	ClientID  string    `json:"client_id"`
	Zoom      int       `json:"zoom"`
	Theme     string    `json:"theme"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Defaults returns the settings of a client that never saved any.
func Defaults(clientID string) *Preference {
	return &Preference{
		ClientID: clientID,
		Zoom:     DefaultZoom,
		Theme:    DefaultTheme,
		Language: DefaultLanguage,
	}
}

// Patch carries a partial update. Nil fields keep their stored value.
type Patch struct {
	Zoom     *int    `json:"zoom"`
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}
