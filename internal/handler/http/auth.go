package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// login exchanges a signed login message for a session token. The token is
// returned in the Authorization header and in the body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Str("account", token.Account.Hex()).Msg("account signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Address: token.Account.Hex(), Token: token.SignedString}, http.StatusOK)
}
