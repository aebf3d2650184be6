package stores

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/mixtape/internal/shared"
)

func TestSeed(t *testing.T) {
	t.Run("DefaultSeed parses the embedded fixture", func(t *testing.T) {
		seed := DefaultSeed()

		if len(seed.Categories) != 5 {
			t.Errorf("expected 5 categories, got %d", len(seed.Categories))
		}
		for _, category := range seed.Categories {
			if len(category.Songs) != 10 {
				t.Errorf("expected 10 songs in %s, got %d", category.Name, len(category.Songs))
			}
			for _, song := range category.Songs {
				if song.Favorite {
					t.Errorf("expected song %s to start unfavorited", song.ID)
				}
			}
		}
		if len(seed.Playlists) != 6 {
			t.Errorf("expected 6 playlists, got %d", len(seed.Playlists))
		}

		if err := seed.Validate(); err != nil {
			t.Errorf("embedded seed failed validation: %v", err)
		}
	})

	t.Run("LoadSeed reads an external document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.toml")
		doc := `
[[categories]]
name = "Ambient"

[[categories.songs]]
id = "ambient_1"
title = "Glacier Lines"
artist = "Fen"
color_seed = 2

[[playlists]]
id = "playlist_1"
name = "Drift"
description = "Slow textures"
song_count = 9
color_seed = 4
`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatalf("failed to write seed file: %v", err)
		}

		seed, err := LoadSeed(path)
		if err != nil {
			t.Fatalf("LoadSeed failed: %v", err)
		}

		if len(seed.Categories) != 1 || seed.Categories[0].Name != "Ambient" {
			t.Errorf("unexpected categories: %+v", seed.Categories)
		}
		if len(seed.Playlists) != 1 || seed.Playlists[0].ID != "playlist_1" {
			t.Errorf("unexpected playlists: %+v", seed.Playlists)
		}
	})

	t.Run("LoadSeed rejects missing files", func(t *testing.T) {
		if _, err := LoadSeed(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing seed file")
		}
	})

	t.Run("Validate rejects structural problems", func(t *testing.T) {
		cases := []struct {
			name string
			doc  string
		}{
			{"no categories", `[[playlists]]
id = "playlist_1"
name = "Drift"`},
			{"empty category name", `[[categories]]
name = ""`},
			{"empty song id", `[[categories]]
name = "Ambient"

[[categories.songs]]
id = ""
title = "Glacier Lines"
artist = "Fen"`},
			{"empty playlist name", `[[categories]]
name = "Ambient"

[[playlists]]
id = "playlist_1"
name = ""`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "seed.toml")
				if err := os.WriteFile(path, []byte(tc.doc), 0644); err != nil {
					t.Fatalf("failed to write seed file: %v", err)
				}

				_, err := LoadSeed(path)
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, shared.ErrInvalidSeed) {
					t.Errorf("expected ErrInvalidSeed, got %v", err)
				}
			})
		}
	})
}
