package stores

import (
	"sync"

	"github.com/desertthunder/mixtape/internal/models"
)

// CatalogStore is the sole source of truth for song favorite state.
//
// State is held as a single snapshot reference guarded by a [sync.RWMutex].
// ToggleFavorite rebuilds the whole snapshot and swaps the reference under the
// lock, so readers never observe a partially updated catalog.
type CatalogStore struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewCatalogStore creates a CatalogStore initialized with a defensive copy of
// the given categories.
func NewCatalogStore(categories []models.Category) *CatalogStore {
	return &CatalogStore{categories: cloneCategories(categories)}
}

// Categories returns the current snapshot. The returned slices are fresh
// copies, callers cannot alias store internals through them.
func (s *CatalogStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCategories(s.categories)
}

// AllSongs flattens all categories' songs, preserving category order then
// within-category order.
func (s *CatalogStore) AllSongs() []models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()

	songs := []models.Song{}
	for _, category := range s.categories {
		songs = append(songs, category.Songs...)
	}
	return songs
}

// SongByID scans the flattened song listing for the given id. The second
// return value reports whether a song matched.
func (s *CatalogStore) SongByID(id string) (models.Song, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, category := range s.categories {
		for _, song := range category.Songs {
			if song.ID == id {
				return song, true
			}
		}
	}
	return models.Song{}, false
}

// ToggleFavorite negates the favorite flag of every song whose id matches.
//
// The flip is applied as a mapped transform over all categories and all songs
// rather than a short-circuiting lookup, so an id appearing in more than one
// category flips everywhere. Returns whether any song matched; on a miss the
// stored snapshot is left untouched.
func (s *CatalogStore) ToggleFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := false
	next := make([]models.Category, len(s.categories))
	for i, category := range s.categories {
		songs := make([]models.Song, len(category.Songs))
		for j, song := range category.Songs {
			if song.ID == id {
				song = song.Toggled()
				matched = true
			}
			songs[j] = song
		}
		next[i] = models.Category{Name: category.Name, Songs: songs}
	}

	if !matched {
		return false
	}

	s.categories = next
	return true
}

func cloneCategories(categories []models.Category) []models.Category {
	cloned := make([]models.Category, len(categories))
	for i, category := range categories {
		songs := make([]models.Song, len(category.Songs))
		copy(songs, category.Songs)
		cloned[i] = models.Category{Name: category.Name, Songs: songs}
	}
	return cloned
}
