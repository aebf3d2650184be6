package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// PlaylistsList prints the static playlist collection.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	playlists := r.playlists.Playlists()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	for _, playlist := range playlists {
		r.writePlainln("%s [%s]", playlist.Name, playlist.ID)
		r.writePlain("  %s\n  %d songs\n", playlist.Description, playlist.SongCount)
	}
	return nil
}
