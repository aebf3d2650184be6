// package testing contains shared testing utilities
package testing

import (
	"errors"
	"testing"

	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/stores"
)

// NewSeededStores builds catalog and playlist stores from the embedded seed.
func NewSeededStores(t *testing.T) (*stores.CatalogStore, *stores.PlaylistStore) {
	t.Helper()
	seed := stores.DefaultSeed()
	return stores.NewCatalogStore(seed.Categories), stores.NewPlaylistStore(seed.Playlists)
}

// PanickySource is a test double for the controller source interfaces that
// throws on every read. An empty Msg exercises the generic-message fallback.
type PanickySource struct {
	Msg string
}

func (p *PanickySource) Categories() []models.Category { panic(p.Msg) }
func (p *PanickySource) AllSongs() []models.Song       { panic(p.Msg) }
func (p *PanickySource) ToggleFavorite(id string) bool { return false }
func (p *PanickySource) Playlists() []models.Playlist  { panic(p.Msg) }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
