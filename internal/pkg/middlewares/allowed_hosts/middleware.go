package allowed_hosts

import (
	"net"
	"net/http"
	"strings"
)

// Middleware rejects requests whose Host header is not on the allow
// list. An empty list disables the check (development mode).
func Middleware(hosts []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(hosts))
	wildcard := false
	for _, h := range hosts {
		if h == "*" {
			wildcard = true
		}
		allowed[strings.ToLower(h)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowed) == 0 || wildcard {
				next.ServeHTTP(w, r)
				return
			}

			host := strings.ToLower(r.Host)
			if h, _, err := net.SplitHostPort(r.Host); err == nil {
				host = strings.ToLower(h)
			}

			if _, ok := allowed[host]; !ok {
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
