package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
)

// errorResponses maps service and store errors to a status and the message
// written to the body. Reverts carry the exact reason the client matches on.
// Order matters: the first match wins.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrEmptyDreamData, http.StatusBadRequest, app.RevertEmptyDreamData},
	{service.ErrDreamDoesNotExist, http.StatusNotFound, app.RevertDreamDoesNotExist},
	{service.ErrInvalidInputProof, http.StatusUnprocessableEntity, app.RevertInvalidInputProof},
	{service.ErrInsufficientFunds, http.StatusPaymentRequired, app.RevertInsufficientFunds},
	{service.ErrNotAllowedToDecrypt, http.StatusForbidden, app.RevertACLNotAllowed},
	{service.ErrContractNotServed, http.StatusForbidden, app.MsgChainMismatch},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInvalidSignature, http.StatusUnauthorized, app.MsgInvalidSignature},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrNoteNotFound, http.StatusNotFound, app.RevertDreamDoesNotExist},
	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable, store.ErrTemporarilyUnavailable.Error()},
}

func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and answers with its mapped status and message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}
