package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_Is(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		target   error
		expected bool
	}{
		{name: "404 is not found", status: http.StatusNotFound, target: ErrNotFound, expected: true},
		{name: "500 is not not found", status: http.StatusInternalServerError, target: ErrNotFound, expected: false},
		{name: "401 is unauthorized", status: http.StatusUnauthorized, target: ErrUnauthorized, expected: true},
		{name: "403 is unauthorized", status: http.StatusForbidden, target: ErrUnauthorized, expected: true},
		{name: "409 is conflict", status: http.StatusConflict, target: ErrConflict, expected: true},
		{name: "400 is invalid input", status: http.StatusBadRequest, target: ErrInvalidInput, expected: true},
		{name: "503 is upstream", status: http.StatusServiceUnavailable, target: ErrUpstream, expected: true},
		{name: "429 is not upstream", status: http.StatusTooManyRequests, target: ErrUpstream, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &StatusError{Method: http.MethodGet, URL: "http://x", StatusCode: tt.status})
			assert.Equal(t, tt.expected, Is(err, tt.target))
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{Method: http.MethodPut, URL: "http://x/y", StatusCode: 400, Body: `{"error":"bad"}`}
	assert.Equal(t, `PUT http://x/y: unexpected status 400: {"error":"bad"}`, err.Error())

	err.Body = ""
	assert.Equal(t, "PUT http://x/y: unexpected status 400", err.Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 404, StatusCode(fmt.Errorf("x: %w", &StatusError{StatusCode: 404})))
	assert.Equal(t, 0, StatusCode(fmt.Errorf("plain")))
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("campaign")
	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, "campaign not found", err.Error())
}
