package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"recipehub/internal/auth"
)

// withAuth verifies the bearer token and attaches the caller's credentials
// to the request context. Every plan and item handler runs behind it.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := s.verifier.FromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r.WithContext(auth.WithCredentials(r.Context(), creds)))
	}
}

// withRequestID tags each request with an ID for log correlation and logs
// the request line on completion.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}
