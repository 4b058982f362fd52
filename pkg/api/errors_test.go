package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnscribe/hnscribe/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation error carries the field message",
			err:      services.NewValidationError("limit", "must be positive"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'limit': must be positive",
		},
		{
			name:     "wrapped invalid input keeps the caller's context",
			err:      fmt.Errorf("mode %q: %w", "bogus", services.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bogus",
		},
		{
			name:     "not found hides internals",
			err:      fmt.Errorf("story 42: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "already exists maps to conflict",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
			wantMsg:  "resource already exists",
		},
		{
			name:     "anything else is an opaque 500",
			err:      errors.New("connection reset by peer"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Contains(t, he.Message, tt.wantMsg)
		})
	}
}
