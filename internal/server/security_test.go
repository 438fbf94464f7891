package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestSecurityMiddlewareHeaders(t *testing.T) {
	handler := SecurityMiddleware(DefaultSecurityConfig(), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", rec.Header().Get("Content-Security-Policy"))
}

func TestSecurityMiddlewareCORS(t *testing.T) {
	tests := []struct {
		name          string
		config        SecurityConfig
		requestOrigin string
		wantOrigin    string
	}{
		{
			name:          "wildcard allows any origin",
			config:        DefaultSecurityConfig(),
			requestOrigin: "http://example.com",
			wantOrigin:    "*",
		},
		{
			name: "listed origin is echoed",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://example.com"},
				AllowedMethods: []string{http.MethodGet},
			},
			requestOrigin: "http://example.com",
			wantOrigin:    "http://example.com",
		},
		{
			name: "unlisted origin gets nothing",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://example.com"},
				AllowedMethods: []string{http.MethodGet},
			},
			requestOrigin: "http://evil.test",
			wantOrigin:    "",
		},
		{
			name:          "CORS disabled",
			config:        SecurityConfig{EnableCORS: false},
			requestOrigin: "http://example.com",
			wantOrigin:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := SecurityMiddleware(tt.config, okHandler)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestSecurityMiddlewarePreflight(t *testing.T) {
	called := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/metrics", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called, "preflight must not reach the wrapped handler")
}
