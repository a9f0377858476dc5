// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query string values.

Malformed input falls back to a default instead of failing the request. Do not use
this package where a malformed value must be reported to the client.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "yes", "on" and their negatives).
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true
	}

	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}

// ToSlots splits a comma-separated list keeping empty positions.
//
//	ToSlots("red,,blue") // ["red", "", "blue"]
//	ToSlots("")          // nil
func ToSlots(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
