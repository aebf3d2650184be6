package stores

import (
	"fmt"
	"testing"

	"github.com/go-test/deep"
)

func TestPlaylistStore(t *testing.T) {
	seed := DefaultSeed()

	t.Run("returns the six seed playlists with stable ids", func(t *testing.T) {
		store := NewPlaylistStore(seed.Playlists)

		playlists := store.Playlists()
		if len(playlists) != 6 {
			t.Fatalf("expected 6 playlists, got %d", len(playlists))
		}

		for i, playlist := range playlists {
			want := fmt.Sprintf("playlist_%d", i+1)
			if playlist.ID != want {
				t.Errorf("expected playlist id %s at position %d, got %s", want, i, playlist.ID)
			}
		}
	})

	t.Run("unaffected by favorite toggling", func(t *testing.T) {
		playlistStore := NewPlaylistStore(seed.Playlists)
		catalogStore := NewCatalogStore(seed.Categories)

		before := playlistStore.Playlists()
		catalogStore.ToggleFavorite("rock_1")
		catalogStore.ToggleFavorite("pop_4")

		if diff := deep.Equal(before, playlistStore.Playlists()); diff != nil {
			t.Errorf("playlists changed after catalog toggles: %v", diff)
		}
	})

	t.Run("returned slice does not alias store state", func(t *testing.T) {
		store := NewPlaylistStore(seed.Playlists)

		playlists := store.Playlists()
		playlists[0].Name = "Mutated"

		if store.Playlists()[0].Name == "Mutated" {
			t.Error("expected store playlist untouched")
		}
	})
}
