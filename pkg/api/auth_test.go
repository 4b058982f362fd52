package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hnscribe/hnscribe/pkg/config"
)

func TestCheckAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		wantErr    bool
	}{
		{
			name:       "empty configured key leaves the endpoint open",
			configured: "",
			provided:   "",
			wantErr:    false,
		},
		{
			name:       "empty configured key ignores whatever the client sends",
			configured: "",
			provided:   "anything",
			wantErr:    false,
		},
		{
			name:       "missing header is rejected",
			configured: "sekret",
			provided:   "",
			wantErr:    true,
		},
		{
			name:       "wrong key is rejected",
			configured: "sekret",
			provided:   "sekre",
			wantErr:    true,
		},
		{
			name:       "matching key passes",
			configured: "sekret",
			provided:   "sekret",
			wantErr:    false,
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.provided != "" {
				req.Header.Set("X-API-Key", tt.provided)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			s := &Server{cfg: &config.Config{APIKey: tt.configured}}
			err := s.checkAPIKey(c)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusForbidden, he.Code)
					assert.Contains(t, he.Message, "invalid or missing API key")
				}
			}
		})
	}
}
