package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultSnakeConfig()

	if cfg.Grid != def.Grid || cfg.Timing != def.Timing || cfg.Food != def.Food || cfg.Leaderboard != def.Leaderboard {
		t.Errorf("embedded config %+v differs from hardcoded %+v", cfg, def)
	}
	if len(cfg.Progression.Bands) != len(def.Progression.Bands) {
		t.Fatalf("bands: got %d, expected %d", len(cfg.Progression.Bands), len(def.Progression.Bands))
	}
	for i := range cfg.Progression.Bands {
		if cfg.Progression.Bands[i] != def.Progression.Bands[i] {
			t.Errorf("band %d: got %+v, expected %+v", i, cfg.Progression.Bands[i], def.Progression.Bands[i])
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "grid:\n  cols: 48\n  rows: 48\nfood:\n  scan_limit: 50\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Cols != 48 || cfg.Grid.Rows != 48 {
		t.Errorf("grid = %+v, expected 48x48", cfg.Grid)
	}
	if cfg.Food.ScanLimit != 50 {
		t.Errorf("scan_limit = %d, expected 50", cfg.Food.ScanLimit)
	}
	// Untouched keys keep defaults
	if cfg.Food.Reward != 10 || cfg.Progression.FoodsPerLevel != 15 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected parse error")
	}

	tiny := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("grid:\n  cols: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(tiny)
	if err == nil || !strings.Contains(err.Error(), "grid.cols") {
		t.Errorf("expected grid.cols validation error, got %v", err)
	}
}

func TestValidateRejectsBadBands(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Progression.Bands = []SpeedBand{
		{UntilLevel: 7, Speed: 4, Theme: ThemeClassic},
		{UntilLevel: 5, Speed: 0, Theme: "plaid"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"until_level", "speed must be positive", "invalid theme"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestBandFor(t *testing.T) {
	p := DefaultSnakeConfig().Progression

	tests := []struct {
		level int
		speed int
		theme Theme
	}{
		{1, 4, ThemeClassic},
		{7, 4, ThemeClassic},
		{8, 6, ThemeNeon},
		{14, 6, ThemeNeon},
		{15, 8, ThemeAmber},
		{21, 8, ThemeAmber},
		{99, 8, ThemeAmber},
	}
	for _, tc := range tests {
		b := p.BandFor(tc.level)
		if b.Speed != tc.speed || b.Theme != tc.theme {
			t.Errorf("BandFor(%d) = %+v, expected speed %d theme %s", tc.level, b, tc.speed, tc.theme)
		}
	}

	if !p.IsHardReset(8) || !p.IsHardReset(15) || p.IsHardReset(9) {
		t.Error("hard reset levels should be exactly 8 and 15")
	}
}

func TestDifficultyApplySpeed(t *testing.T) {
	tests := []struct {
		d        Difficulty
		speed    int
		expected int
	}{
		{DifficultySlow, 4, 3},
		{DifficultyNormal, 4, 4},
		{DifficultyFast, 4, 6},
		{DifficultySlow, 1, 1},
		{DifficultyFast, 24, 25},
	}
	for _, tc := range tests {
		if got := tc.d.ApplySpeed(tc.speed, 25); got != tc.expected {
			t.Errorf("%s.ApplySpeed(%d) = %d, expected %d", tc.d, tc.speed, got, tc.expected)
		}
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts, err := Options{PlayerName: "  \tAda Lovelace the Countess of Lovelace  "}.Normalize(18)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	if opts.PlayerName != "Ada Lovelace the C" {
		t.Errorf("PlayerName = %q", opts.PlayerName)
	}
	if opts.Mode != DefaultMode || opts.Difficulty != DifficultyNormal || opts.Theme != ThemeAuto {
		t.Errorf("defaults not applied: %+v", opts)
	}

	if _, err := (Options{Difficulty: "insane"}).Normalize(18); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if _, err := (Options{Theme: "plaid"}).Normalize(18); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"", DefaultPlayerName},
		{"   ", DefaultPlayerName},
		{"bob\x00\x07", "bob"},
		{"Ünïcødé-Ñame-Long-Enough", "Ünïcødé-Ñame-Long-"},
		{"<script>", "<script>"},
	}
	for _, tc := range tests {
		if got := SanitizeName(tc.in, 18); got != tc.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
