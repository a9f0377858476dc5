// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/internal/platform/respond"
	"github.com/taibuivan/flagdex/pkg/pagination"
)

/*
TestError renders application errors and hides unknown ones.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected respond.ErrorEnvelope
	}{
		{
			name:     "not_found",
			err:      apperr.NotFound("Flag"),
			status:   http.StatusNotFound,
			expected: respond.ErrorEnvelope{Error: "Flag not found", Code: apperr.CodeNotFound},
		},
		{
			name:   "validation_details",
			err:    apperr.ValidationError("Invalid input", apperr.FieldError{Field: "sort", Message: "Unknown"}),
			status: http.StatusBadRequest,
			expected: respond.ErrorEnvelope{
				Error:   "Invalid input",
				Code:    apperr.CodeValidation,
				Details: []apperr.FieldError{{Field: "sort", Message: "Unknown"}},
			},
		},
		{
			name:   "plain_error",
			err:    errors.New("pq: relation does not exist"),
			status: http.StatusInternalServerError,
			expected: respond.ErrorEnvelope{
				Error: apperr.Internal(nil).Message,
				Code:  apperr.CodeInternal,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.expected, body)
			assert.NotContains(t, recorder.Body.String(), "relation")
		})
	}
}

/*
TestPaginated wraps data and meta side by side.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []string{"a", "b"}, pagination.NewMeta(1, 2, 5))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["a","b"],"meta":{"page":1,"limit":2,"total":5,"total_pages":3}}`, recorder.Body.String())
}
