package http

import (
	"net"
	"net/http"

	"github.com/salesboard/salesboard/internal/http/rate_limiter"
)

// RateLimitMiddleware applies a per-client token bucket keyed by the
// caller's IP address.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rate_limiter.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
