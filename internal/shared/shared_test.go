package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShared(t *testing.T) {
	t.Run("GenerateID produces unique ids", func(t *testing.T) {
		seen := map[string]bool{}
		for range 100 {
			id := GenerateID()
			if seen[id] {
				t.Fatalf("duplicate id generated: %s", id)
			}
			seen[id] = true
		}
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		type payload struct {
			Name string `json:"name"`
		}

		compact, err := MarshalJSON(payload{Name: "mixtape"}, false)
		if err != nil {
			t.Fatalf("MarshalJSON failed: %v", err)
		}
		if string(compact) != `{"name":"mixtape"}` {
			t.Errorf("unexpected compact output: %s", compact)
		}

		pretty, err := MarshalJSON(payload{Name: "mixtape"}, true)
		if err != nil {
			t.Fatalf("MarshalJSON pretty failed: %v", err)
		}
		if !strings.Contains(string(pretty), "\n") {
			t.Errorf("expected indented output, got: %s", pretty)
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}

		logger.Info("hello")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected log file to exist: %v", err)
		}
	})
}
