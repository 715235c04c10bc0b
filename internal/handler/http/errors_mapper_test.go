package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("wrapped: %w", service.ErrEmptyDreamData), http.StatusBadRequest, app.RevertEmptyDreamData},
		{service.ErrDreamDoesNotExist, http.StatusNotFound, app.RevertDreamDoesNotExist},
		{store.ErrNoteNotFound, http.StatusNotFound, app.RevertDreamDoesNotExist},
		{fmt.Errorf("%w: bad handle", service.ErrInvalidInputProof), http.StatusUnprocessableEntity, app.RevertInvalidInputProof},
		{service.ErrInsufficientFunds, http.StatusPaymentRequired, app.RevertInsufficientFunds},
		{service.ErrNotAllowedToDecrypt, http.StatusForbidden, app.RevertACLNotAllowed},
		{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
		{fmt.Errorf("%w: %w", store.ErrTemporarilyUnavailable, store.ErrExecutingStatement), http.StatusServiceUnavailable, store.ErrTemporarilyUnavailable.Error()},
		{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
