package basic_auth

import (
	"crypto/subtle"
	"net/http"
)

// Middleware guards the staff subrouter with the bootstrap superuser
// credentials. Comparison is constant-time so response timing leaks
// nothing about the expected values.
func Middleware(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !equal(user, username) || !equal(pass, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="staff"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
