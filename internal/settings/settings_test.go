package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	s, found, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing file")
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	// Partial file: only two keys set; everything else must fall back.
	content := `{"orders_per_column": 5, "enable_sounds": true}`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, found, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("expected found=true")
	}
	if s.OrdersPerColumn != 5 {
		t.Fatalf("orders_per_column: got %d", s.OrdersPerColumn)
	}
	if !s.EnableSounds {
		t.Fatalf("enable_sounds not applied")
	}
	if s.RefreshIntervalSec != 30 || s.DefaultPlatform != "pc" || !s.HideOffline {
		t.Fatalf("defaults not preserved: %+v", s)
	}
	if s.DefaultMinPrice != nil || s.DefaultMaxPrice != nil {
		t.Fatalf("price bounds should default to absent: %+v", s)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "settings.json")

	min := 10.0
	s := Defaults()
	s.OrdersPerColumn = 7
	s.DefaultMinPrice = &min
	s.Theme = "light"

	if err := Save(p, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("expected found=true after save")
	}
	if got.OrdersPerColumn != 7 || got.Theme != "light" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.DefaultMinPrice == nil || *got.DefaultMinPrice != 10 {
		t.Fatalf("min price lost: %+v", got.DefaultMinPrice)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, _, err := Load(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
