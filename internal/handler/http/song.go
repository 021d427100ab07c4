package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

// idPathParam parses a positive integer path parameter.
func idPathParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("non-positive id")
	}
	return id, nil
}

func (h *Handler) createSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SongService.CreateSong(ctx, song)
	if err != nil {
		log.Err(err).Msg("song creation failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.SongService.UpdateSong(ctx, song)
	if err != nil {
		log.Err(err).Int64("id", song.SongID).Msg("song update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.SongService.DeleteSong(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("song deletion failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) getSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := h.services.SongService.GetSong(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("song lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) songsByGenre(w http.ResponseWriter, r *http.Request) {
	h.listSongs(w, r, func(ctx context.Context, id int64) ([]models.Song, error) {
		return h.services.SongService.SongsByGenre(ctx, id)
	})
}

func (h *Handler) songsOfPlaylist(w http.ResponseWriter, r *http.Request) {
	h.listSongs(w, r, func(ctx context.Context, id int64) ([]models.Song, error) {
		return h.services.SongService.SongsOfPlaylist(ctx, id)
	})
}

func (h *Handler) songsOfAlbum(w http.ResponseWriter, r *http.Request) {
	h.listSongs(w, r, func(ctx context.Context, id int64) ([]models.Song, error) {
		return h.services.SongService.SongsOfAlbum(ctx, id)
	})
}

func (h *Handler) songsOfArtist(w http.ResponseWriter, r *http.Request) {
	h.listSongs(w, r, func(ctx context.Context, id int64) ([]models.Song, error) {
		return h.services.SongService.SongsOfArtist(ctx, id)
	})
}

func (h *Handler) searchSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	word := chi.URLParam(r, "word")

	found, err := h.services.SongService.SearchSongs(ctx, word)
	if err != nil {
		log.Err(err).Str("word", word).Msg("song search failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) randomSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		http.Error(w, "invalid count", http.StatusBadRequest)
		return
	}

	found, err := h.services.SongService.RandomSongs(ctx, n)
	if err != nil {
		log.Err(err).Int("n", n).Msg("random song listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) topSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	chart, err := h.services.SongService.TopSongs(ctx)
	if err != nil {
		log.Err(err).Msg("chart listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, chart, http.StatusOK)
}

func (h *Handler) addSongToPlaylist(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "playlistId", h.services.SongService.AddSongToPlaylist)
}

func (h *Handler) removeSongFromPlaylist(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "playlistId", h.services.SongService.RemoveSongFromPlaylist)
}

func (h *Handler) replaySong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.SongService.ReplaySong(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("recording song replay failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) addSongToAlbum(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "albumId", h.services.SongService.AddSongToAlbum)
}

func (h *Handler) removeSongFromAlbum(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "albumId", h.services.SongService.RemoveSongFromAlbum)
}

func (h *Handler) addSongToArtist(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "artistId", h.services.SongService.AddSongToArtist)
}

func (h *Handler) removeSongFromArtist(w http.ResponseWriter, r *http.Request) {
	h.songAssociation(w, r, "artistId", h.services.SongService.RemoveSongFromArtist)
}

func (h *Handler) listSongs(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, id int64) ([]models.Song, error)) {
	log := logger.FromRequest(r)

	id, err := idPathParam(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	found, err := list(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("song listing failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) songAssociation(w http.ResponseWriter, r *http.Request, targetParam string, apply func(ctx context.Context, songID, targetID int64) error) {
	log := logger.FromRequest(r)

	songID, err := idPathParam(r, "songId")
	if err != nil {
		http.Error(w, "invalid song id", http.StatusBadRequest)
		return
	}
	targetID, err := idPathParam(r, targetParam)
	if err != nil {
		http.Error(w, "invalid target id", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), songID, targetID); err != nil {
		log.Err(err).Int64("song_id", songID).Int64("target_id", targetID).Msg("song association change failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
