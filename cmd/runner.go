package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mixtape/internal/controllers"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/stores"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	catalog   *stores.CatalogStore
	playlists *stores.PlaylistStore
	home      *controllers.Home
	library   *controllers.Library
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Catalog   *stores.CatalogStore
	Playlists *stores.PlaylistStore
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration. Stores
// default to ones seeded from the embedded demo catalog.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Catalog == nil || opts.Playlists == nil {
		seed := stores.DefaultSeed()
		if opts.Catalog == nil {
			opts.Catalog = stores.NewCatalogStore(seed.Categories)
		}
		if opts.Playlists == nil {
			opts.Playlists = stores.NewPlaylistStore(seed.Playlists)
		}
	}

	home := controllers.NewHome(opts.Catalog, opts.Logger)
	library := controllers.NewLibrary(opts.Catalog, opts.Playlists, opts.Logger)

	return &Runner{
		config:    opts.Config,
		catalog:   opts.Catalog,
		playlists: opts.Playlists,
		home:      home,
		library:   library,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// SetLogger replaces the runner's logger and rebuilds the controllers with
// it. The stores are shared, so rebuilding loses no catalog state.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.home = controllers.NewHome(r.catalog, logger)
	r.library = controllers.NewLibrary(r.catalog, r.playlists, logger)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		catalogCommand, favoritesCommand, playlistsCommand, exportCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
