// package controllers mediates between the data stores and a rendering layer
package controllers

import (
	"fmt"

	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
)

// Phase enumerates the lifecycle of a controller's published state.
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// CatalogSource is the catalog surface the controllers consume.
// [stores.CatalogStore] satisfies it.
type CatalogSource interface {
	Categories() []models.Category
	AllSongs() []models.Song
	ToggleFavorite(id string) bool
}

// PlaylistSource is the playlist surface the library controller consumes.
// [stores.PlaylistStore] satisfies it.
type PlaylistSource interface {
	Playlists() []models.Playlist
}

// loadError renders a recovered panic value as a load failure, falling back
// to a generic message when the value carries no text.
func loadError(recovered any) error {
	message := fmt.Sprintf("%v", recovered)
	if message == "" || message == "<nil>" {
		message = "unknown error"
	}
	return fmt.Errorf("%w: %s", shared.ErrLoadFailed, message)
}
