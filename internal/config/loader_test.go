package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/dodger/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseDodger(defaultDodgerYAML, FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgerConfig()) {
		t.Errorf("embedded YAML and DefaultDodgerConfig() differ:\n%+v\n%+v", cfg, DefaultDodgerConfig())
	}
}

func TestLoadCustomYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "enemy:\n  speed: 320\nrules:\n  restart_trigger: held\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}

	if cfg.Enemy.Speed != 320 {
		t.Errorf("enemy.speed = %v, expected 320", cfg.Enemy.Speed)
	}
	if cfg.Enemy.Size != 30 {
		t.Errorf("enemy.size = %v, expected default 30", cfg.Enemy.Size)
	}
	if cfg.Rules.RestartTrigger != RestartHeld {
		t.Errorf("restart_trigger = %q, expected held", cfg.Rules.RestartTrigger)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("player.speed = %v, expected default 250", cfg.Player.Speed)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[projectile]
speed = 500.0
color = "cyan"

[rules]
player_hit = "game_over"
cull_projectiles = true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}

	if cfg.Projectile.Speed != 500 || cfg.Projectile.Color != "cyan" {
		t.Errorf("projectile = %+v", cfg.Projectile)
	}
	if cfg.Projectile.Size != 25 {
		t.Errorf("projectile.size = %v, expected default 25", cfg.Projectile.Size)
	}
	if cfg.Rules.PlayerHit != PlayerHitGameOver || !cfg.Rules.CullProjectiles {
		t.Errorf("rules = %+v", cfg.Rules)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadDodger(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
		field  string
	}{
		{"zero player speed", func(c *DodgerConfig) { c.Player.Speed = 0 }, "player.speed"},
		{"negative enemy size", func(c *DodgerConfig) { c.Enemy.Size = -1 }, "enemy.size"},
		{"zero interval", func(c *DodgerConfig) { c.Spawn.Interval = 0 }, "spawn.interval"},
		{"zero font", func(c *DodgerConfig) { c.HUD.FontSize = 0 }, "hud.font_size"},
		{"bad player hit", func(c *DodgerConfig) { c.Rules.PlayerHit = "explode" }, "rules.player_hit"},
		{"bad restart", func(c *DodgerConfig) { c.Rules.RestartTrigger = "maybe" }, "rules.restart_trigger"},
		{"bad color", func(c *DodgerConfig) { c.Projectile.Color = "chartreuse" }, "projectile.color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name %s", err, tc.field)
			}
		})
	}

	if err := DefaultDodgerConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultDodgerConfig().Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.Player != core.ColorGreen || p.Projectile != core.ColorYellow || p.Background != core.ColorRed {
		t.Errorf("unexpected palette %+v", p)
	}
	if p.Score != core.ColorBlue || p.Message != core.ColorWhite {
		t.Errorf("unexpected HUD colors %+v", p)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []string{FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			data, err := EncodeDodger(DefaultDodgerConfig(), format)
			if err != nil {
				t.Fatalf("EncodeDodger() failed: %v", err)
			}
			cfg, err := ParseDodger(data, format)
			if err != nil {
				t.Fatalf("ParseDodger() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultDodgerConfig()) {
				t.Errorf("round trip changed config: %+v", cfg)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	if FormatForPath("a/b.TOML") != FormatTOML {
		t.Error("expected toml for .TOML")
	}
	if FormatForPath("a/b.yml") != FormatYAML || FormatForPath("noext") != FormatYAML {
		t.Error("expected yaml fallback")
	}
}
