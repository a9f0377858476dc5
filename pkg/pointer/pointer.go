// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Optional JSON fields (a partial preference update, an attribute count) are
modelled as pointers; these helpers build and read them without boilerplate.
*/
package pointer

// To returns a pointer to the provided value.
//
//	Attribute{Element: "stars_arc", Count: pointer.To(12)}
func To[T any](v T) *T {
	return &v
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
