package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/mixtape/internal/controllers"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints the favorited songs in flattened catalog order.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	r.library.Refresh()
	state := r.library.State()
	if state.Phase == controllers.Failed {
		return errors.New(state.Message)
	}

	if cmd.Bool("json") {
		return r.writeJSON(state.FavoriteSongs, cmd.Bool("pretty"))
	}

	if len(state.FavoriteSongs) == 0 {
		r.writePlain("No favorites yet\n")
		return nil
	}

	for i, song := range state.FavoriteSongs {
		r.writePlain("♥ %2d. %s - %s [%s]\n", i+1, song.Artist, song.Title, song.ID)
	}
	return nil
}

// FavoritesToggle flips a song's favorite flag through the home controller.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	songID := cmd.String("id")

	matched := r.home.ToggleFavorite(songID)
	if !matched {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, songID)
	}

	song, ok := r.catalog.SongByID(songID)
	if !ok {
		// Unreachable with a consistent store, the toggle just matched.
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, songID)
	}

	status := "removed from"
	if song.Favorite {
		status = "added to"
	}
	r.writePlain("%s - %s %s favorites\n", song.Artist, song.Title, status)
	return nil
}
