package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/user", h.registerUser)
		r.Post("/api/artist", h.registerArtist)
	})

	// catalog and account routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/{id}", h.getUser)
		r.Put("/api/user", h.updateUser)

		r.Get("/api/artist/{id}", h.getArtist)
		r.Put("/api/artist", h.updateArtist)

		r.Route("/api/song", func(r chi.Router) {
			r.Post("/", h.createSong)
			r.Put("/", h.updateSong)
			r.Get("/top20", h.topSongs)
			r.Get("/search/{word}", h.searchSongs)
			r.Get("/random/{n}", h.randomSongs)
			r.Get("/genre/{id}", h.songsByGenre)
			r.Get("/playlist/{id}", h.songsOfPlaylist)
			r.Get("/album/{id}", h.songsOfAlbum)
			r.Get("/artist/{id}", h.songsOfArtist)
			r.Post("/replay/{id}", h.replaySong)
			r.Post("/playlist/{songId}/{playlistId}", h.addSongToPlaylist)
			r.Delete("/playlist/{songId}/{playlistId}", h.removeSongFromPlaylist)
			r.Post("/album/{songId}/{albumId}", h.addSongToAlbum)
			r.Delete("/album/{songId}/{albumId}", h.removeSongFromAlbum)
			r.Post("/artist/{songId}/{artistId}", h.addSongToArtist)
			r.Delete("/artist/{songId}/{artistId}", h.removeSongFromArtist)
			r.Get("/{id}", h.getSong)
			r.Delete("/{id}", h.deleteSong)
		})

		r.Route("/api/album", func(r chi.Router) {
			r.Post("/", h.createAlbum)
			r.Put("/", h.updateAlbum)
			r.Get("/artist/{id}", h.albumsOfArtist)
			r.Get("/{id}", h.getAlbum)
			r.Delete("/{id}", h.deleteAlbum)
		})

		r.Route("/api/playlist", func(r chi.Router) {
			r.Post("/", h.createPlaylist)
			r.Put("/", h.updatePlaylist)
			r.Get("/user/{id}", h.playlistsOfUser)
			r.Get("/{id}", h.getPlaylist)
			r.Delete("/{id}", h.deletePlaylist)
		})
	})

	return router
}
