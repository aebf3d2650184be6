package stores

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/mixtape/internal/models"
	"github.com/desertthunder/mixtape/internal/shared"
)

//go:embed seed.toml
var embeddedSeed []byte

// Seed is the TOML document the demo stores are constructed from.
type Seed struct {
	Categories []models.Category `toml:"categories"`
	Playlists  []models.Playlist `toml:"playlists"`
}

// Validate checks structural requirements on the seed: at least one category,
// and non-empty ids and names throughout.
func (s *Seed) Validate() error {
	if len(s.Categories) == 0 {
		return fmt.Errorf("%w: no categories", shared.ErrInvalidSeed)
	}

	for _, category := range s.Categories {
		if category.Name == "" {
			return fmt.Errorf("%w: category with empty name", shared.ErrInvalidSeed)
		}
		for _, song := range category.Songs {
			if song.ID == "" {
				return fmt.Errorf("%w: song with empty id in category %q", shared.ErrInvalidSeed, category.Name)
			}
			if song.Title == "" {
				return fmt.Errorf("%w: song %q has empty title", shared.ErrInvalidSeed, song.ID)
			}
		}
	}

	for _, playlist := range s.Playlists {
		if playlist.ID == "" {
			return fmt.Errorf("%w: playlist with empty id", shared.ErrInvalidSeed)
		}
		if playlist.Name == "" {
			return fmt.Errorf("%w: playlist %q has empty name", shared.ErrInvalidSeed, playlist.ID)
		}
	}

	return nil
}

// LoadSeed reads and parses a TOML seed document from the specified path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidSeed, err)
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}

	return &seed, nil
}

// DefaultSeed returns the built-in demo catalog parsed from the embedded seed document.
func DefaultSeed() *Seed {
	var seed Seed
	if err := toml.Unmarshal(embeddedSeed, &seed); err != nil {
		panic(fmt.Sprintf("failed to parse embedded seed: %v", err))
	}
	return &seed
}
