package http

import (
	"encoding/json"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

func (h *Handler) createAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var album models.Album
	if err := json.NewDecoder(r.Body).Decode(&album); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AlbumService.CreateAlbum(ctx, album)
	if err != nil {
		log.Err(err).Msg("album creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var album models.Album
	if err := json.NewDecoder(r.Body).Decode(&album); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.AlbumService.UpdateAlbum(ctx, album)
	if err != nil {
		log.Err(err).Int64("id", album.AlbumID).Msg("album update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.AlbumService.DeleteAlbum(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("album deletion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) getAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.AlbumService.GetAlbum(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("album lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) albumsOfArtist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.AlbumService.AlbumsOfArtist(ctx, id)
	if err != nil {
		log.Err(err).Int64("artist_id", id).Msg("album listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
