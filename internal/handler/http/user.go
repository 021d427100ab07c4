package http

import (
	"encoding/json"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.UserService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, registered, http.StatusCreated)
}

// updateUser applies a partial update to the authenticated account. The
// target id comes from the verified token, never from the payload.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	user.UserID = ownerID

	updated, err := h.services.UserService.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", ownerID).Msg("user update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
