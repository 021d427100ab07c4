package http

import (
	"encoding/json"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

// createPlaylist persists a playlist owned by the authenticated user.
func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var playlist models.Playlist
	if err := json.NewDecoder(r.Body).Decode(&playlist); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	playlist.UserID = ownerID

	created, err := h.services.PlaylistService.CreatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Msg("playlist creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var playlist models.Playlist
	if err := json.NewDecoder(r.Body).Decode(&playlist); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PlaylistService.UpdatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Int64("id", playlist.PlaylistID).Msg("playlist update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.PlaylistService.DeletePlaylist(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("playlist deletion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) getPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.PlaylistService.GetPlaylist(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("playlist lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) playlistsOfUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.PlaylistService.PlaylistsOfUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("playlist listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
