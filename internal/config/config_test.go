package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigcal.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VisibleHours.From != 7 || cfg.VisibleHours.To != 18 {
		t.Fatalf("default visible hours: %+v", cfg.VisibleHours)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("first run should write the config file: %v", err)
	}

	// Second load reads the file back.
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.HourHeight != cfg.HourHeight {
		t.Fatalf("reloaded config differs: %v vs %v", again.HourHeight, cfg.HourHeight)
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	cfg := &Config{
		BadgeVariant: "sparkly",
		VisibleHours: HourWindow{From: 20, To: 9},
		HourHeight:   -5,
	}
	cfg.Normalize()

	if cfg.BadgeVariant != BadgeColored {
		t.Fatalf("badge variant: %q", cfg.BadgeVariant)
	}
	if cfg.VisibleHours.From != 7 || cfg.VisibleHours.To != 18 {
		t.Fatalf("inverted window should reset: %+v", cfg.VisibleHours)
	}
	if cfg.HourHeight != 96 {
		t.Fatalf("hour height: %v", cfg.HourHeight)
	}
	if cfg.WorkingHours == nil {
		t.Fatal("working hours should default")
	}
}

func TestWorkingHourMap(t *testing.T) {
	cfg := DefaultConfig()
	wh := cfg.WorkingHourMap()

	if r := wh[time.Monday]; r.From != 8 || r.To != 17 {
		t.Fatalf("Monday window: %+v", r)
	}
	if r := wh[time.Sunday]; r.From != 0 || r.To != 0 {
		t.Fatalf("Sunday window: %+v", r)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("visible_hours: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
