// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"strings"

	"github.com/taibuivan/flagdex/internal/core/flag"
)

// starWeights gives the number of stars an attribute element stands for when it
// carries no explicit count.
var starWeights = map[string]int{
	"single_star":    1,
	"multiple_stars": 2,
	"constellation":  4,
	"stars_arc":      5,
	"stars_circle":   10,
}

// StarCount returns the weighted number of stars drawn on rec. Only top-level
// attribute elements are counted. A single_star always counts as one.
func StarCount(rec *flag.Record) int {
	total := 0
	for _, a := range rec.Attributes {
		element := strings.ToLower(a.Element)
		weight, ok := starWeights[element]
		if !ok {
			continue
		}
		if element == "single_star" {
			total++
			continue
		}
		if n := a.CountOr(weight); n > 0 {
			total += n
		}
	}
	return total
}
