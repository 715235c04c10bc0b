// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dream-cipher/internal/app"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/models"
)

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoAccountProvided, http.StatusUnauthorized)
		return
	}

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.LedgerService.Submit(r.Context(), owner, req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.submit", err)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) incrementInterpretationCount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	interpreter, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoAccountProvided, http.StatusUnauthorized)
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var req models.IncrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.incrementInterpretationCount").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.LedgerService.IncrementInterpretationCount(r.Context(), interpreter, id, req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.incrementInterpretationCount", err)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusOK)
}

func (h *Handler) getCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.LedgerService.GetCount(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getCount", err)
		return
	}
	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) getCountByOwner(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	count, err := h.services.LedgerService.GetCountByOwner(r.Context(), owner)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getCountByOwner", err)
		return
	}
	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) getIDsByOwner(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	ids, err := h.services.LedgerService.GetIDsByOwner(r.Context(), owner)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getIDsByOwner", err)
		return
	}
	if ids == nil {
		ids = []uint64{}
	}
	utils.WriteJSON(w, models.IDsResponse{IDs: ids}, http.StatusOK)
}

func (h *Handler) getMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	meta, err := h.services.LedgerService.GetMeta(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getMeta", err)
		return
	}
	utils.WriteJSON(w, meta, http.StatusOK)
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	data, err := h.services.LedgerService.GetData(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getData", err)
		return
	}
	utils.WriteJSON(w, models.DataResponse{Data: data}, http.StatusOK)
}

func (h *Handler) getInterpretationCount(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	handle, err := h.services.LedgerService.GetInterpretationCount(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getInterpretationCount", err)
		return
	}
	utils.WriteJSON(w, models.HandleResponse{Handle: handle}, http.StatusOK)
}

// events serves the event log after ?from= (exclusive), at most ?limit=
// entries.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	from, err := queryUint(r, "from")
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	events, err := h.services.LedgerService.Events(r.Context(), from, limit)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.events", err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	utils.WriteJSON(w, models.EventsResponse{Events: events}, http.StatusOK)
}

// noteID parses the {id} URL parameter. A malformed id is answered with the
// same revert as an unknown one.
func noteID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, app.RevertDreamDoesNotExist, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func ownerParam(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	raw := chi.URLParam(r, "owner")
	if !common.IsHexAddress(raw) {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
