package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/folgas-app/folgas-backend-go/internal/handler/http/response"
)

// SecretHeader carries the shared admin secret on guarded requests.
const SecretHeader = "X-Admin-Secret"

// RequireSecret gates every mutating route behind the configured shared
// secret. A wrong or missing secret never reaches the handler; the client
// retries by re-sending the same request with the right header.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(SecretHeader)
			if provided == "" {
				response.Unauthorized(w, "Admin secret is required")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				response.Unauthorized(w, "Invalid admin secret")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
