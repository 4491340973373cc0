package middleware

import "net/http"

// CrossOriginOpenerPolicy marca toda resposta com Cross-Origin-Opener-Policy: same-origin.
func CrossOriginOpenerPolicy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
