package http

import (
	"encoding/json"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

func (h *Handler) registerArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.ArtistService.RegisterArtist(ctx, artist)
	if err != nil {
		log.Err(err).Msg("artist registration failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) updateArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	artist.ArtistID = ownerID

	updated, err := h.services.ArtistService.UpdateArtist(ctx, artist)
	if err != nil {
		log.Err(err).Int64("id", ownerID).Msg("artist update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.ArtistService.GetArtist(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("artist lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
