package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrSessionMismatch, http.StatusForbidden},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrIndexOutOfRange, http.StatusNotFound},
		{ErrUnknownField, http.StatusBadRequest},
		{ErrSubmissionSink, http.StatusBadGateway},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrIndexOutOfRange, "Linha não encontrada", map[string]int{"index": 3})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrIndexOutOfRange, body.Code)
	assert.Equal(t, "Linha não encontrada", body.Message)
	assert.Equal(t, map[string]any{"index": float64(3)}, body.Details)
}
