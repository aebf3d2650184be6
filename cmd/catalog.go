package main

import (
	"context"
	"errors"

	"github.com/desertthunder/mixtape/internal/controllers"
	"github.com/urfave/cli/v3"
)

// CatalogList prints all categories with their songs.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	r.home.Load()
	state := r.home.State()
	if state.Phase == controllers.Failed {
		return errors.New(state.Message)
	}

	if cmd.Bool("json") {
		return r.writeJSON(state.Categories, cmd.Bool("pretty"))
	}

	for _, category := range state.Categories {
		r.writePlainln("%s (%d songs)", category.Name, len(category.Songs))
		for i, song := range category.Songs {
			marker := " "
			if song.Favorite {
				marker = "♥"
			}
			r.writePlain("%s %2d. %s - %s [%s]\n", marker, i+1, song.Artist, song.Title, song.ID)
		}
	}
	return nil
}

// CatalogSongs prints the flattened song listing, category order then
// within-category order.
func (r *Runner) CatalogSongs(ctx context.Context, cmd *cli.Command) error {
	songs := r.catalog.AllSongs()

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	for i, song := range songs {
		marker := " "
		if song.Favorite {
			marker = "♥"
		}
		r.writePlain("%s %2d. %s - %s [%s]\n", marker, i+1, song.Artist, song.Title, song.ID)
	}
	return nil
}
