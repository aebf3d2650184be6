package stores

import "github.com/desertthunder/mixtape/internal/models"

// PlaylistStore holds the static playlist collection. Playlists never change
// after construction, there are no mutation operations.
type PlaylistStore struct {
	playlists []models.Playlist
}

// NewPlaylistStore creates a PlaylistStore initialized with a defensive copy
// of the given playlists.
func NewPlaylistStore(playlists []models.Playlist) *PlaylistStore {
	cloned := make([]models.Playlist, len(playlists))
	copy(cloned, playlists)
	return &PlaylistStore{playlists: cloned}
}

// Playlists returns the seed list verbatim, in seed order.
func (s *PlaylistStore) Playlists() []models.Playlist {
	cloned := make([]models.Playlist, len(s.playlists))
	copy(cloned, s.playlists)
	return cloned
}
