package server

import "net/http"

// SecurityConfig controls the headers applied to every HTTP response.
type SecurityConfig struct {
	// EnableCORS turns on cross-origin response headers.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed to read responses. "*" allows
	// any origin.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to CORS clients.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used by the metrics
// endpoint: permissive CORS for read-only GET access.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with standard security headers, CORS
// handling, and OPTIONS preflight short-circuiting.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin returns the origin value to echo back, or "" when the request
// origin is not allowed. A configured "*" matches regardless of the request.
func allowedOrigin(allowed []string, requestOrigin string) string {
	for _, o := range allowed {
		if o == "*" {
			return "*"
		}
		if o == requestOrigin && requestOrigin != "" {
			return requestOrigin
		}
	}
	return ""
}

func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
