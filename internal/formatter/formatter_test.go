package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mixtape/internal/models"
)

func fixtureCategories() []models.Category {
	return []models.Category{
		{
			Name: "Rock",
			Songs: []models.Song{
				{ID: "rock_1", Title: "Gravel Road Anthem", Artist: "The Marlow Strays", Favorite: true},
				{ID: "rock_2", Title: "Static Bloom", Artist: "Velvet Engine"},
			},
		},
		{
			Name: "Jazz",
			Songs: []models.Song{
				{ID: "jazz_1", Title: "Blue Umbrella", Artist: "The Delmar Quartet"},
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(fixtureCategories())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Artist,Category,Favorite") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "rock_1,Gravel Road Anthem,The Marlow Strays,Rock,true") {
			t.Errorf("CSV missing favorited rock_1 row, got: %s", output)
		}
		if !strings.Contains(output, "jazz_1,Blue Umbrella,The Delmar Quartet,Jazz,false") {
			t.Errorf("CSV missing jazz_1 row, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(fixtureCategories(), "Catalog")
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Catalog") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Songs**: 3") {
			t.Errorf("Markdown missing song count, got: %s", output)
		}
		if !strings.Contains(output, "## Rock") || !strings.Contains(output, "## Jazz") {
			t.Errorf("Markdown missing category sections")
		}
		if !strings.Contains(output, "1. The Marlow Strays - Gravel Road Anthem ♥") {
			t.Errorf("Markdown missing favorite marker, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(fixtureCategories())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Rock:") {
			t.Errorf("text missing category heading")
		}
		if !strings.Contains(output, "* 1. The Marlow Strays - Gravel Road Anthem") {
			t.Errorf("text missing favorite marker, got: %s", output)
		}
	})
}

func TestFavoritesOnly(t *testing.T) {
	favorites := FavoritesOnly(fixtureCategories())

	if len(favorites) != 1 {
		t.Fatalf("expected 1 category with favorites, got %d", len(favorites))
	}
	if favorites[0].Name != "Rock" {
		t.Errorf("expected Rock, got %s", favorites[0].Name)
	}
	if len(favorites[0].Songs) != 1 || favorites[0].Songs[0].ID != "rock_1" {
		t.Errorf("expected only rock_1, got %+v", favorites[0].Songs)
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("writes the requested format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		written, err := WriteExport(fixtureCategories(), "csv", path)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		if _, err := WriteExport(fixtureCategories(), "yaml", ""); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
