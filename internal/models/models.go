// package models defines the data model for the streaming demo catalog
package models

// Song is a single playable entry in the catalog.
//
// Songs have value semantics: the favorite flag is never mutated in place,
// [Song.Toggled] returns a fresh value instead.
type Song struct {
	ID        string `toml:"id" json:"id"`
	Title     string `toml:"title" json:"title"`
	Artist    string `toml:"artist" json:"artist"`
	ColorSeed int    `toml:"color_seed" json:"color_seed"`
	Favorite  bool   `toml:"favorite" json:"favorite"`
}

// Toggled returns a copy of the song with the favorite flag negated.
func (s Song) Toggled() Song {
	s.Favorite = !s.Favorite
	return s
}

// Category groups songs for the home screen. Songs order is display order.
type Category struct {
	Name  string `toml:"name" json:"name"`
	Songs []Song `toml:"songs" json:"songs"`
}

// Playlist is static library metadata.
//
// SongCount is descriptive only, it is not derived from any membership list
// and no relation links a playlist to the songs it nominally contains.
type Playlist struct {
	ID          string `toml:"id" json:"id"`
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	SongCount   int    `toml:"song_count" json:"song_count"`
	ColorSeed   int    `toml:"color_seed" json:"color_seed"`
}
