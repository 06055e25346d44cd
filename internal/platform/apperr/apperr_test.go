// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
)

/*
TestFromResponse verifies that error envelopes are rebuilt with sensible defaults.
*/
func TestFromResponse(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		code            string
		message         string
		expectedCode    string
		expectedMessage string
	}{
		{"full_envelope", http.StatusNotFound, "NOT_FOUND", "Document not found", "NOT_FOUND", "Document not found"},
		{"missing_code", http.StatusBadGateway, "", "upstream down", "HTTP_502", "upstream down"},
		{"missing_message", http.StatusConflict, "CONFLICT", "", "CONFLICT", "Conflict"},
		{"unknown_status", 599, "", "", "HTTP_599", "Unexpected response status 599"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperr.FromResponse(tt.status, tt.code, tt.message, nil)
			assert.Equal(t, tt.expectedCode, err.Code)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

/*
TestMessageOr verifies the recognized/unrecognized error split.
*/
func TestMessageOr(t *testing.T) {
	wrapped := fmt.Errorf("apiclient: list: %w", apperr.NotFound("Document"))

	assert.Equal(t, "Document not found", apperr.MessageOr(wrapped, "Failed to load documents"))
	assert.Equal(t, "Failed to load documents", apperr.MessageOr(errors.New("dial tcp: refused"), "Failed to load documents"))
	assert.Equal(t, "Failed to load documents", apperr.MessageOr(nil, "Failed to load documents"))
}

/*
TestAs verifies extraction through wrapped chains.
*/
func TestAs(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("service: %w", apperr.Internal(cause))

	extracted := apperr.As(err)
	require.NotNil(t, extracted)
	assert.Equal(t, "INTERNAL_ERROR", extracted.Code)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperr.HasStatus(err, http.StatusInternalServerError))
	assert.False(t, apperr.IsAppError(cause))
}
