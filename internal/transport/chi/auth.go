package chi

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/logger"
)

// keyRing holds SHA-256 digests of the accepted API keys, compared in constant time.
type keyRing [][sha256.Size]byte

func newKeyRing(apiKeys []string) keyRing {
	var ring keyRing
	for _, k := range apiKeys {
		if k != "" {
			ring = append(ring, sha256.Sum256([]byte(k)))
		}
	}
	return ring
}

func (kr keyRing) accepts(token string) bool {
	sum := sha256.Sum256([]byte(token))
	ok := 0
	for i := range kr {
		ok |= subtle.ConstantTimeCompare(kr[i][:], sum[:])
	}
	return ok == 1
}

// BearerAuth requires "Authorization: Bearer <key>" on every route except public ones.
// Without keys the middleware is a pass-through.
func BearerAuth(apiKeys []string, public ...string) func(http.Handler) http.Handler {
	ring := newKeyRing(apiKeys)
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if len(ring) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := open[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			if reason := authenticate(ring, r.Header.Get("Authorization")); reason != "" {
				logger.FromContext(r.Context()).Info("Request rejected", zap.String("reason", reason))
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, reason)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// authenticate returns an empty string when header carries an accepted key.
func authenticate(ring keyRing, header string) string {
	if header == "" {
		return "missing authorization header"
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "authorization header must use Bearer scheme"
	}
	if !ring.accepts(token) {
		return "invalid api key"
	}
	return ""
}
