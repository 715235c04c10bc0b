package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// msgForeignUser is returned when an input is requested for an account other
// than the token's.
const msgForeignUser = "input user does not match signed-in account"

func (h *Handler) runtimeMetadata(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.RelayerService.Metadata(r.Context()), http.StatusOK)
}

// encryptInput encrypts values for the signed-in account. Proofs are bound
// to the user, so an input for any other account is refused.
func (h *Handler) encryptInput(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoAccountProvided, http.StatusUnauthorized)
		return
	}

	var req models.InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptInput").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(req.User, account.Hex()) {
		log.Warn().Str("user", req.User).Str("account", account.Hex()).Msg(msgForeignUser)
		utils.WriteError(w, msgForeignUser, http.StatusForbidden)
		return
	}

	resp, err := h.services.RelayerService.EncryptInput(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.encryptInput", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) userDecrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoAccountProvided, http.StatusUnauthorized)
		return
	}

	var req models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.userDecrypt").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	value, err := h.services.RelayerService.UserDecrypt(r.Context(), account, req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.userDecrypt", err)
		return
	}

	utils.WriteJSON(w, models.DecryptResponse{Value: value}, http.StatusOK)
}
