package store

const (
	createUser = `INSERT INTO users (username, email, password, profile_picture, biography, country, birth)
    VALUES ($1, $2, $3, $4, $5, $6, $7::date)
    RETURNING user_id, username, email, password, profile_picture, biography, country, COALESCE(birth::text, ''), created_at;`

	// country and birth are optional at registration; a separate statement
	// keeps the NOT-provided case out of the bind parameters entirely.
	createUserNoCountry = `INSERT INTO users (username, email, password, profile_picture, biography)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, password, profile_picture, biography, country, COALESCE(birth::text, ''), created_at;`

	findUsersByEmail = `SELECT user_id, username, email, password, profile_picture, biography, country, COALESCE(birth::text, ''), created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password, profile_picture, biography, country, COALESCE(birth::text, ''), created_at
    FROM users
    WHERE user_id = $1;`

	createArtist = `INSERT INTO artists (name, email, password, image, country)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING artist_id, name, email, password, image, country, created_at;`

	findArtistsByEmail = `SELECT artist_id, name, email, password, image, country, created_at
    FROM artists
    WHERE email = $1;`

	findArtistByID = `SELECT artist_id, name, email, password, image, country, created_at
    FROM artists
    WHERE artist_id = $1;`

	recordUserLogin = `INSERT INTO histories_user (user_id, ip)
    VALUES ($1, $2)
    RETURNING user_id, ip, created_at;`

	recordArtistLogin = `INSERT INTO histories_artist (artist_id, ip)
    VALUES ($1, $2)
    RETURNING artist_id, ip, created_at;`

	createSong = `INSERT INTO songs (genre_id, name, lyrics, time, image, mp3)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING song_id, genre_id, name, lyrics, time, image, mp3;`

	deleteSong = `DELETE FROM songs
    WHERE song_id = $1
    RETURNING song_id, genre_id, name, lyrics, time, image, mp3;`

	findSongByID = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM songs
    WHERE song_id = $1;`

	findSongsByGenre = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM songs
    WHERE genre_id = $1;`

	searchSongs = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM songs
    WHERE LOWER(name) LIKE '%' || LOWER($1) || '%';`

	randomSongs = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM songs
    ORDER BY RANDOM()
    LIMIT $1;`

	songsFromPlaylist = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM playlists_songs_view
    WHERE playlist_id = $1;`

	songsFromAlbum = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM albums_songs_view
    WHERE album_id = $1;`

	songsFromArtist = `SELECT song_id, genre_id, name, lyrics, time, image, mp3
    FROM artists_songs_view
    WHERE artist_id = $1;`

	addSongToPlaylist = `INSERT INTO playlists_songs (song_id, playlist_id)
    VALUES ($1, $2);`

	removeSongFromPlaylist = `DELETE FROM playlists_songs
    WHERE song_id = $1 AND playlist_id = $2;`

	addSongToAlbum = `INSERT INTO albums_songs (song_id, album_id)
    VALUES ($1, $2);`

	removeSongFromAlbum = `DELETE FROM albums_songs
    WHERE song_id = $1 AND album_id = $2;`

	addSongToArtist = `INSERT INTO artists_songs (song_id, artist_id)
    VALUES ($1, $2);`

	removeSongFromArtist = `DELETE FROM artists_songs
    WHERE song_id = $1 AND artist_id = $2;`

	// every playback is one row; the chart aggregates these counts when the
	// top_songs view is refreshed.
	recordSongReplay = `INSERT INTO songs_replays (song_id)
    VALUES ($1);`

	// top_songs is a materialized view over songs JOIN songs_replays,
	// already ordered and capped at twenty rows.
	findTopSongs = `SELECT song_id, genre_id, name, lyrics, time, image, mp3, play_count
    FROM top_songs;`

	refreshTopSongs = `REFRESH MATERIALIZED VIEW top_songs;`

	createAlbum = `INSERT INTO albums (genre_id, name, description, image)
    VALUES ($1, $2, $3, $4)
    RETURNING album_id, genre_id, name, description, image;`

	deleteAlbum = `DELETE FROM albums
    WHERE album_id = $1
    RETURNING album_id, genre_id, name, description, image;`

	findAlbumByID = `SELECT album_id, genre_id, name, description, image
    FROM albums
    WHERE album_id = $1;`

	findAlbumsByArtist = `SELECT a.album_id, a.genre_id, a.name, a.description, a.image
    FROM albums a
    JOIN artists_albums aa ON aa.album_id = a.album_id
    WHERE aa.artist_id = $1;`

	createPlaylist = `INSERT INTO playlists (user_id, name, is_public)
    VALUES ($1, $2, $3)
    RETURNING playlist_id, user_id, name, is_public, created_at;`

	deletePlaylist = `DELETE FROM playlists
    WHERE playlist_id = $1
    RETURNING playlist_id, user_id, name, is_public, created_at;`

	findPlaylistByID = `SELECT playlist_id, user_id, name, is_public, created_at
    FROM playlists
    WHERE playlist_id = $1;`

	findPlaylistsByUser = `SELECT playlist_id, user_id, name, is_public, created_at
    FROM playlists
    WHERE user_id = $1;`
)
