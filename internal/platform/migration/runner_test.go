// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestConvertToPgx5DSN rewrites postgres schemes and leaves others untouched.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"postgres://u:p@db:5432/flagdex", "pgx5://u:p@db:5432/flagdex"},
		{"postgresql://db/flagdex?sslmode=disable", "pgx5://db/flagdex?sslmode=disable"},
		{"pgx5://db/flagdex", "pgx5://db/flagdex"},
		{"host=db dbname=flagdex", "host=db dbname=flagdex"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, convertToPgx5DSN(tt.in))
		})
	}
}
