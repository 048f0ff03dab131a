package middleware

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
)

// RateLimit rejects clients that exhausted their token bucket with 429.
// Clients are keyed by IP; put chi's RealIP in front when behind a proxy.
func RateLimit(visitors *rate_limiter.Visitors) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				response.Error(w, nil, response.TooManyRequests("Too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
