package controllers

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mixtape/internal/models"
)

// LibraryState is the view state published for the library tab. Playlists and
// favorites always land together in one Ready state, never separately.
type LibraryState struct {
	Phase         Phase
	Playlists     []models.Playlist
	FavoriteSongs []models.Song
	Message       string
}

// Library derives the favorited-songs view by filtering the catalog's
// flattened listing and republishes it alongside the playlist collection.
type Library struct {
	catalog   CatalogSource
	playlists PlaylistSource
	logger    *log.Logger
	pub       *Publisher[LibraryState]
}

// NewLibrary creates the library controller in the Loading phase. Call
// [Library.Load] to populate it.
func NewLibrary(catalog CatalogSource, playlists PlaylistSource, logger *log.Logger) *Library {
	return &Library{
		catalog:   catalog,
		playlists: playlists,
		logger:    logger,
		pub:       NewPublisher(LibraryState{Phase: Loading}),
	}
}

// Load reads the flattened song listing, filters it to favorites preserving
// flattened order, reads the playlist collection, and publishes both as a
// single Ready state.
func (l *Library) Load() {
	songs, playlists, err := l.read()
	if err != nil {
		l.logger.Error("library load failed", "error", err)
		l.pub.Publish(LibraryState{Phase: Failed, Message: err.Error()})
		return
	}

	favorites := []models.Song{}
	for _, song := range songs {
		if song.Favorite {
			favorites = append(favorites, song)
		}
	}

	l.pub.Publish(LibraryState{
		Phase:         Ready,
		Playlists:     playlists,
		FavoriteSongs: favorites,
	})
}

// Refresh re-executes Load. Repeated calls with no intervening catalog
// mutation publish value-equal states.
func (l *Library) Refresh() {
	l.Load()
}

// State returns the most recently published state.
func (l *Library) State() LibraryState {
	return l.pub.Latest()
}

// Subscribe registers an observer for every subsequent published state.
func (l *Library) Subscribe(fn func(LibraryState)) string {
	return l.pub.Subscribe(fn)
}

// Unsubscribe removes a previously registered observer.
func (l *Library) Unsubscribe(id string) {
	l.pub.Unsubscribe(id)
}

func (l *Library) read() (songs []models.Song, playlists []models.Playlist, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = loadError(r)
		}
	}()
	return l.catalog.AllSongs(), l.playlists.Playlists(), nil
}
