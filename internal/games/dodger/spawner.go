package dodger

import (
	"math/rand"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// Fixed travel directions.
var (
	dirDown = core.V(0, 1)
	dirUp   = core.V(0, -1)
)

// Spawner builds entities for each role from the game config.
type Spawner struct {
	cfg     config.DodgerConfig
	palette config.Palette
	rng     *rand.Rand
}

// NewSpawner creates a spawner whose enemy placement is driven by seed.
func NewSpawner(cfg config.DodgerConfig, palette config.Palette, seed int64) *Spawner {
	return &Spawner{
		cfg:     cfg,
		palette: palette,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// SpawnPlayer places the player horizontally centered, a fixed offset above
// the bottom edge, at rest.
func (s *Spawner) SpawnPlayer(screenW, screenH float64) Entity {
	size := s.cfg.Player.Size
	return Entity{
		Position: core.V(screenW/2-size/2, screenH-s.cfg.Spawn.PlayerBottomOffset),
		Speed:    s.cfg.Player.Speed,
		Size:     size,
		Color:    s.palette.Player,
	}
}

// SpawnEnemy places an enemy on the top edge at a uniformly random x in
// [0, screenW), heading straight down.
func (s *Spawner) SpawnEnemy(screenW float64) Entity {
	return Entity{
		Position: core.V(s.rng.Float64()*screenW, 0),
		Velocity: dirDown,
		Speed:    s.cfg.Enemy.Speed,
		Size:     s.cfg.Enemy.Size,
		Color:    s.palette.Enemy,
	}
}

// SpawnProjectile anchors a projectile at the player's position offset by a
// third of the player's size on both axes, heading straight up.
func (s *Spawner) SpawnProjectile(player Entity) Entity {
	return Entity{
		Position: player.Position.AddScalar(player.Size / 3),
		Velocity: dirUp,
		Speed:    s.cfg.Projectile.Speed,
		Size:     s.cfg.Projectile.Size,
		Color:    s.palette.Projectile,
	}
}
