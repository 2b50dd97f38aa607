package dodger

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodger/internal/core"
)

func TestEntityIntegrate(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Vec2
		vel   core.Vec2
		speed float64
		dt    float64
		want  core.Vec2
	}{
		{"at rest", core.V(10, 20), core.V(0, 0), 250, 0.016, core.V(10, 20)},
		{"enemy down", core.V(5, 0), core.V(0, 1), 200, 0.5, core.V(5, 100)},
		{"projectile up", core.V(40, 300), core.V(0, -1), 400, 0.25, core.V(40, 200)},
		{"player right", core.V(0, 0), core.V(1, 0), 250, 2, core.V(500, 0)},
		{"zero dt", core.V(7, 7), core.V(1, 1), 1000, 0, core.V(7, 7)},
		{"off screen is allowed", core.V(0, 590), core.V(0, 1), 200, 1, core.V(0, 790)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Position: tc.pos, Velocity: tc.vel, Speed: tc.speed, Size: 10}
			e.Integrate(tc.dt)
			if e.Position != tc.want {
				t.Errorf("Integrate(%v) = %v, expected %v", tc.dt, e.Position, tc.want)
			}
		})
	}
}

func TestEntityIntegrateMatchesFormula(t *testing.T) {
	s := math.Sqrt2 / 2
	e := Entity{Position: core.V(123.5, 77.25), Velocity: core.V(s, -s), Speed: 250}
	before := e.Position

	dt := 1.0 / 60
	e.Integrate(dt)

	want := core.V(before.X+s*250*dt, before.Y-s*250*dt)
	if math.Abs(e.Position.X-want.X) > 1e-9 || math.Abs(e.Position.Y-want.Y) > 1e-9 {
		t.Errorf("position = %v, expected %v", e.Position, want)
	}
}

func TestEntityDestroyAndDraw(t *testing.T) {
	e := Entity{Position: core.V(3, 4), Size: 25, Color: core.ColorYellow}
	if e.PendingDestroy {
		t.Fatal("fresh entity should not be pending destroy")
	}
	e.Destroy()
	if !e.PendingDestroy {
		t.Error("Destroy should set PendingDestroy")
	}

	c := &recordingCanvas{}
	e.Draw(c)
	if len(c.calls) != 1 {
		t.Fatalf("expected one draw call, got %v", c.calls)
	}
	got := c.calls[0]
	if got.kind != "rect" || got.x != 3 || got.y != 4 || got.w != 25 || got.h != 25 || got.color != core.ColorYellow {
		t.Errorf("unexpected draw call %v", got)
	}

	if b := e.Bounds(); b != core.NewRect(3, 4, 25, 25) {
		t.Errorf("Bounds() = %+v", b)
	}
}
