// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/mixtape/internal/models"
)

// FavoritesOnly maps categories to favorite-only song lists, dropping
// categories left empty. Flattened order is preserved.
func FavoritesOnly(categories []models.Category) []models.Category {
	result := []models.Category{}
	for _, category := range categories {
		favorites := []models.Song{}
		for _, song := range category.Songs {
			if song.Favorite {
				favorites = append(favorites, song)
			}
		}
		if len(favorites) > 0 {
			result = append(result, models.Category{Name: category.Name, Songs: favorites})
		}
	}
	return result
}

// ExportToCSV converts categories to CSV format with columns: ID, Title, Artist, Category, Favorite
func ExportToCSV(categories []models.Category) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Category", "Favorite"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, category := range categories {
		for _, song := range category.Songs {
			record := []string{
				song.ID,
				song.Title,
				song.Artist,
				category.Name,
				strconv.FormatBool(song.Favorite),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts categories to Markdown format with one section per category
func ExportToMarkdown(categories []models.Category, title string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	total := 0
	for _, category := range categories {
		total += len(category.Songs)
	}
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n", total))
	buf.WriteString(fmt.Sprintf("**Categories**: %d\n\n", len(categories)))

	for _, category := range categories {
		buf.WriteString(fmt.Sprintf("## %s\n\n", category.Name))
		for i, song := range category.Songs {
			marker := ""
			if song.Favorite {
				marker = " ♥"
			}
			buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, song.Artist, song.Title, marker))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts categories to plain text format
func ExportToText(categories []models.Category) ([]byte, error) {
	var buf bytes.Buffer

	for _, category := range categories {
		buf.WriteString(fmt.Sprintf("%s:\n", category.Name))
		for i, song := range category.Songs {
			marker := " "
			if song.Favorite {
				marker = "*"
			}
			buf.WriteString(fmt.Sprintf("%s %d. %s - %s\n", marker, i+1, song.Artist, song.Title))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// WriteExport exports categories in the given format ("csv", "markdown" or
// "text") to the specified file path and returns the path written.
func WriteExport(categories []models.Category, format, path string) (string, error) {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(categories)
	case "markdown":
		data, err = ExportToMarkdown(categories, "Catalog")
	case "text":
		data, err = ExportToText(categories)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate %s export: %w", format, err)
	}

	if path == "" {
		path = "catalog_export." + extensionFor(format)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func extensionFor(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}
