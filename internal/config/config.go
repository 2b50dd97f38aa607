// Package config provides YAML/TOML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dodger/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Player-enemy contact handling.
const (
	PlayerHitIgnore   = "ignore"    // Contact is detected and has no effect
	PlayerHitGameOver = "game_over" // Contact ends the game
)

// Restart key handling while in game over.
const (
	RestartPressed = "pressed" // Edge-triggered: one restart per key press
	RestartHeld    = "held"    // Level-triggered: restarts every frame the key is down
)

// DodgerConfig contains all configuration for the Dodger game.
type DodgerConfig struct {
	Player     RoleConfig  `yaml:"player" toml:"player"`
	Enemy      RoleConfig  `yaml:"enemy" toml:"enemy"`
	Projectile RoleConfig  `yaml:"projectile" toml:"projectile"`
	Spawn      SpawnConfig `yaml:"spawn" toml:"spawn"`
	HUD        HUDConfig   `yaml:"hud" toml:"hud"`
	Rules      RulesConfig `yaml:"rules" toml:"rules"`
}

// RoleConfig holds the construction parameters of one entity role.
type RoleConfig struct {
	Speed float64 `yaml:"speed" toml:"speed"` // World units per second
	Size  float64 `yaml:"size" toml:"size"`   // Square edge length
	Color string  `yaml:"color" toml:"color"` // Palette name
}

// SpawnConfig defines spawn timing and placement.
type SpawnConfig struct {
	Interval           float64 `yaml:"interval" toml:"interval"`                         // Seconds between enemies
	PlayerBottomOffset float64 `yaml:"player_bottom_offset" toml:"player_bottom_offset"` // Player start distance above the bottom edge
}

// HUDConfig defines the score readout, the game over prompt, and the
// background.
type HUDConfig struct {
	Background   string  `yaml:"background" toml:"background"`
	ScoreX       float64 `yaml:"score_x" toml:"score_x"`
	ScoreY       float64 `yaml:"score_y" toml:"score_y"`
	FontSize     float64 `yaml:"font_size" toml:"font_size"`
	ScoreColor   string  `yaml:"score_color" toml:"score_color"`
	MessageColor string  `yaml:"message_color" toml:"message_color"`
	GameOverText string  `yaml:"game_over_text" toml:"game_over_text"`
}

// RulesConfig selects between behaviors that have more than one defensible
// reading.
type RulesConfig struct {
	PlayerHit       string `yaml:"player_hit" toml:"player_hit"`
	CullProjectiles bool   `yaml:"cull_projectiles" toml:"cull_projectiles"`
	RestartTrigger  string `yaml:"restart_trigger" toml:"restart_trigger"`
}

// Palette is the resolved set of colors used while rendering.
type Palette struct {
	Player     core.Color
	Enemy      core.Color
	Projectile core.Color
	Background core.Color
	Score      core.Color
	Message    core.Color
}

// Validate checks the config for values the game cannot run with.
func (c DodgerConfig) Validate() error {
	roles := []struct {
		name string
		role RoleConfig
	}{
		{"player", c.Player},
		{"enemy", c.Enemy},
		{"projectile", c.Projectile},
	}
	for _, r := range roles {
		if r.role.Speed <= 0 {
			return fmt.Errorf("%w: %s.speed must be positive, got %v", ErrInvalid, r.name, r.role.Speed)
		}
		if r.role.Size <= 0 {
			return fmt.Errorf("%w: %s.size must be positive, got %v", ErrInvalid, r.name, r.role.Size)
		}
	}

	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("%w: spawn.interval must be positive, got %v", ErrInvalid, c.Spawn.Interval)
	}
	if c.HUD.FontSize <= 0 {
		return fmt.Errorf("%w: hud.font_size must be positive, got %v", ErrInvalid, c.HUD.FontSize)
	}

	switch c.Rules.PlayerHit {
	case PlayerHitIgnore, PlayerHitGameOver:
	default:
		return fmt.Errorf("%w: rules.player_hit %q (want %q or %q)", ErrInvalid, c.Rules.PlayerHit, PlayerHitIgnore, PlayerHitGameOver)
	}
	switch c.Rules.RestartTrigger {
	case RestartPressed, RestartHeld:
	default:
		return fmt.Errorf("%w: rules.restart_trigger %q (want %q or %q)", ErrInvalid, c.Rules.RestartTrigger, RestartPressed, RestartHeld)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette resolves every color name in the config.
func (c DodgerConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		in   string
		out  *core.Color
	}{
		{"player.color", c.Player.Color, &p.Player},
		{"enemy.color", c.Enemy.Color, &p.Enemy},
		{"projectile.color", c.Projectile.Color, &p.Projectile},
		{"hud.background", c.HUD.Background, &p.Background},
		{"hud.score_color", c.HUD.ScoreColor, &p.Score},
		{"hud.message_color", c.HUD.MessageColor, &p.Message},
	}
	for _, f := range fields {
		col, ok := core.ColorByName(f.in)
		if !ok {
			return Palette{}, fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, f.name, f.in)
		}
		*f.out = col
	}
	return p, nil
}
