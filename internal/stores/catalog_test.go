package stores

import (
	"testing"

	"github.com/go-test/deep"
)

func TestCatalogStore(t *testing.T) {
	newStore := func(t *testing.T) *CatalogStore {
		t.Helper()
		return NewCatalogStore(DefaultSeed().Categories)
	}

	t.Run("AllSongs flattens every category in order", func(t *testing.T) {
		store := newStore(t)

		total := 0
		for _, category := range store.Categories() {
			total += len(category.Songs)
		}

		songs := store.AllSongs()
		if len(songs) != total {
			t.Errorf("expected %d songs, got %d", total, len(songs))
		}
		if len(songs) != 50 {
			t.Errorf("expected 50 songs in the fixture, got %d", len(songs))
		}

		if songs[0].ID != "rock_1" {
			t.Errorf("expected first song rock_1, got %s", songs[0].ID)
		}
		if songs[len(songs)-1].ID != "electronic_10" {
			t.Errorf("expected last song electronic_10, got %s", songs[len(songs)-1].ID)
		}
	})

	t.Run("SongByID", func(t *testing.T) {
		store := newStore(t)

		song, ok := store.SongByID("jazz_3")
		if !ok {
			t.Fatal("expected jazz_3 to exist")
		}
		if song.Title == "" || song.Artist == "" {
			t.Errorf("expected populated song, got %+v", song)
		}

		if _, ok := store.SongByID("missing_99"); ok {
			t.Error("expected missing id to report not found")
		}
	})

	t.Run("ToggleFavorite flips and restores", func(t *testing.T) {
		store := newStore(t)

		if song, _ := store.SongByID("rock_1"); song.Favorite {
			t.Fatal("expected rock_1 to start unfavorited")
		}

		if !store.ToggleFavorite("rock_1") {
			t.Fatal("expected toggle to match rock_1")
		}
		if song, _ := store.SongByID("rock_1"); !song.Favorite {
			t.Error("expected rock_1 favorited after first toggle")
		}

		if !store.ToggleFavorite("rock_1") {
			t.Fatal("expected second toggle to match rock_1")
		}
		if song, _ := store.SongByID("rock_1"); song.Favorite {
			t.Error("expected rock_1 unfavorited after second toggle")
		}
	})

	t.Run("toggle twice is an involution for every song", func(t *testing.T) {
		store := newStore(t)
		before := store.AllSongs()

		for _, song := range before {
			store.ToggleFavorite(song.ID)
			store.ToggleFavorite(song.ID)
		}

		if diff := deep.Equal(before, store.AllSongs()); diff != nil {
			t.Errorf("catalog changed after double toggles: %v", diff)
		}
	})

	t.Run("toggle on unknown id leaves the catalog unchanged", func(t *testing.T) {
		store := newStore(t)
		before := store.AllSongs()

		if store.ToggleFavorite("missing_99") {
			t.Error("expected toggle on unknown id to report no match")
		}

		if diff := deep.Equal(before, store.AllSongs()); diff != nil {
			t.Errorf("catalog changed after no-op toggle: %v", diff)
		}
	})

	t.Run("returned snapshots do not alias store state", func(t *testing.T) {
		store := newStore(t)

		categories := store.Categories()
		categories[0].Songs[0].Favorite = true
		categories[0].Name = "Mutated"

		fresh := store.Categories()
		if fresh[0].Name != "Rock" {
			t.Errorf("expected store category name untouched, got %s", fresh[0].Name)
		}
		if fresh[0].Songs[0].Favorite {
			t.Error("expected store favorite flag untouched")
		}
	})
}
