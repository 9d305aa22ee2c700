package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// writeSeed creates a temp seed file with the given extension.
func writeSeed(t *testing.T, ext string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses"+ext)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeSeed(t, ".json",
		`[`,
		`  {"id": 1, "name": "Kopi", "cost": 18000, "created_at": "2024-03-05T08:15:00"},`,
		`  {"id": 2, "name": "Roti", "cost": "12500.5", "created_at": "2024-03-05 09:00"}`,
		`]`,
	)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	if c[0].Name != "Kopi" || !c[0].Cost.Equal(decimal.NewFromInt(18000)) {
		t.Errorf("c[0] = %+v", c[0])
	}
	if !c[1].Cost.Equal(decimal.RequireFromString("12500.5")) {
		t.Errorf("c[1].Cost = %s, want 12500.5", c[1].Cost)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeSeed(t, ".yaml",
		`- id: 1`,
		`  name: Bakso`,
		`  cost: 20000`,
		`  created_at: "2024-03-07T18:45:00"`,
		`- id: 2`,
		`  name: Es teh`,
		`  cost: 5000`,
		`  created_at: "2024-03-07T19:00:00"`,
	)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	if c[1].Name != "Es teh" || !c[1].Cost.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("c[1] = %+v", c[1])
	}
	if c[0].CreatedAt != "2024-03-07T18:45:00" {
		t.Errorf("c[0].CreatedAt = %q", c[0].CreatedAt)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFile(writeSeed(t, ".csv", "id,name")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadFile(writeSeed(t, ".json", `{"id": 1`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := LoadFile(writeSeed(t, ".yml", `- id: 1`, `  cost: banyak`)); err == nil {
		t.Error("expected error for non-numeric YAML cost")
	}
}

func TestLoad_DefaultsToEmbeddedSeed(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) == 0 {
		t.Fatal("embedded seed is empty")
	}
	if _, err := Group(c); err != nil {
		t.Errorf("embedded seed does not group: %v", err)
	}
}
