// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"fmt"
	"strconv"
	"strings"
)

// Proportion buckets, from squarest to longest.
const (
	BucketSquare         = "square"
	BucketCompact        = "compact"
	BucketWide           = "wide"
	BucketLong           = "long"
	BucketElongated      = "elongated"
	BucketNonRectangular = "non_rectangular"
)

// Ratio is a flag aspect ratio written height:width, as in "2:3".
type Ratio struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// DefaultRatio is assumed for flags missing from the ratio table.
var DefaultRatio = Ratio{Height: 2, Width: 3}

// ParseRatio reads the "height:width" form.
func ParseRatio(raw string) (Ratio, error) {
	h, w, ok := strings.Cut(raw, ":")
	if !ok {
		return Ratio{}, fmt.Errorf("ratio %q: expected height:width", raw)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil || height <= 0 {
		return Ratio{}, fmt.Errorf("ratio %q: invalid height", raw)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || width <= 0 {
		return Ratio{}, fmt.Errorf("ratio %q: invalid width", raw)
	}
	return Ratio{Height: height, Width: width}, nil
}

func (r Ratio) String() string {
	return strconv.FormatFloat(r.Height, 'f', -1, 64) + ":" + strconv.FormatFloat(r.Width, 'f', -1, 64)
}

/*
Bucket classifies the ratio by its width over height.

	< 1      non_rectangular (taller than wide)
	= 1      square
	< 1.45   compact
	<= 1.55  wide (3:2)
	<= 1.75  long (5:3, 7:4)
	> 1.75   elongated (2:1)
*/
func (r Ratio) Bucket() string {
	if r.Height <= 0 {
		return BucketWide
	}
	q := r.Width / r.Height
	switch {
	case q < 1:
		return BucketNonRectangular
	case q == 1:
		return BucketSquare
	case q < 1.45:
		return BucketCompact
	case q <= 1.55:
		return BucketWide
	case q <= 1.75:
		return BucketLong
	default:
		return BucketElongated
	}
}
