// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/internal/platform/validate"
)

/*
TestValidator_Rules runs each rule once on a passing and once on a failing value.
*/
func TestValidator_Rules(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(v *validate.Validator)
		hasError bool
	}{
		{"required_ok", func(v *validate.Validator) { v.Required("q", "france") }, false},
		{"required_blank", func(v *validate.Validator) { v.Required("q", "   ") }, true},
		{"max_len_ok", func(v *validate.Validator) { v.MaxLen("q", "étoile", 6) }, false},
		{"max_len_over", func(v *validate.Validator) { v.MaxLen("q", "étoiles", 6) }, true},
		{"range_ok", func(v *validate.Validator) { v.Range("zoom", 100, 50, 200) }, false},
		{"range_low", func(v *validate.Validator) { v.Range("zoom", 40, 50, 200) }, true},
		{"slug_ok", func(v *validate.Validator) { v.Slug("slug", "cote-d-ivoire") }, false},
		{"slug_upper", func(v *validate.Validator) { v.Slug("slug", "France") }, true},
		{"uuid_ok", func(v *validate.Validator) { v.UUID("id", "0190F5C2-7B1E-7000-8000-000000000000") }, false},
		{"uuid_bad", func(v *validate.Validator) { v.UUID("id", "not-a-uuid") }, true},
		{"one_of_ok", func(v *validate.Validator) { v.OneOf("mode", "and", "or", "and", "not") }, false},
		{"one_of_bad", func(v *validate.Validator) { v.OneOf("mode", "xor", "or", "and", "not") }, true},
		{"max_items_ok", func(v *validate.Validator) { v.MaxItems("filter", 3, 3) }, false},
		{"max_items_over", func(v *validate.Validator) { v.MaxItems("filter", 4, 3) }, true},
		{"custom", func(v *validate.Validator) { v.Custom("zoom", true, "odd") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.apply(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
			if !tt.hasError {
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain collects every failure into one error.
*/
func TestValidator_Chain(t *testing.T) {
	err := (&validate.Validator{}).
		OneOf("sort", "color", "name_asc", "name_desc").
		Range("zoom", 300, 50, 200).
		Required("schema", "vertical_triband").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "sort", ae.Details[0].Field)
	assert.Equal(t, "zoom", ae.Details[1].Field)
}

/*
TestFieldErr builds a one-field error.
*/
func TestFieldErr(t *testing.T) {
	err := validate.FieldErr("lang", "Unsupported language")
	assert.Equal(t, apperr.CodeValidation, err.Code)
	assert.Equal(t, "lang", err.Details[0].Field)
}
