package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mixtape/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song     models.Song
	category string
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string {
	if i.song.Favorite {
		return "♥ " + i.song.Title
	}
	return i.song.Title
}
func (i songItem) Description() string {
	return fmt.Sprintf("%s • %s", i.song.Artist, i.category)
}
