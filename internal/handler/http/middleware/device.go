package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

const deviceKeyHeader = "X-Device-Api-Key"

// RequireDeviceKey guards the device ingestion endpoint with a shared API
// key instead of a user token.
func RequireDeviceKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(deviceKeyHeader)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid device API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
