package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Player: RoleConfig{
			Speed: 250,
			Size:  60,
			Color: "green",
		},
		Enemy: RoleConfig{
			Speed: 200,
			Size:  30,
			Color: "green",
		},
		Projectile: RoleConfig{
			Speed: 400,
			Size:  25,
			Color: "yellow",
		},
		Spawn: SpawnConfig{
			Interval:           1.0,
			PlayerBottomOffset: 100,
		},
		HUD: HUDConfig{
			Background:   "red",
			ScoreX:       10,
			ScoreY:       30,
			FontSize:     40,
			ScoreColor:   "blue",
			MessageColor: "white",
			GameOverText: "Game Over! Press [ENTER] to continue",
		},
		Rules: RulesConfig{
			PlayerHit:       PlayerHitIgnore,
			CullProjectiles: false,
			RestartTrigger:  RestartPressed,
		},
	}
}
