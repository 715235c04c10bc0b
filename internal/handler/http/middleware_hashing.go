package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
)

// msgIntegrityCheckFailed is written when the body does not match its
// HashSHA256 header.
const msgIntegrityCheckFailed = "integrity check failed"

// withHashing verifies the HMAC-SHA256 of the request body against the
// [utils.HashHeader] header. It is a no-op when no hash key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := r.Header.Get(utils.HashHeader)
		if !utils.VerifyHash(body, sum) {
			log.Error().Str("func", "*Handler.withHashing").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, msgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
