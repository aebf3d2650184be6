package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mixtape/internal/formatter"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export writes the catalog (or just the favorites) to a file in the
// requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	switch format {
	case "csv", "markdown", "text":
	default:
		return fmt.Errorf("%w: --format must be csv, markdown or text", shared.ErrInvalidFlag)
	}

	categories := r.catalog.Categories()
	if cmd.Bool("favorites") {
		categories = formatter.FavoritesOnly(categories)
	}

	path, err := formatter.WriteExport(categories, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("export written", "format", format, "path", path)
	r.writePlain("Export written to %s\n", path)
	return nil
}
