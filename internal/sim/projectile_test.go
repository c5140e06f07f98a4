package sim

import (
	"math"
	"testing"
)

func TestProjectileExpiresAtMaxLife(t *testing.T) {
	surface := newGridSurface()
	m := NewProjectileManager(0, 2.0) // zero velocity: pure lifetime decay

	m.Spawn(32, 32, 0)

	// 0.25 is exact in binary, so eight ticks accumulate to exactly 2.0s.
	for i := 1; i <= 7; i++ {
		m.Update(0.25, surface)
		if m.Count() != 1 {
			t.Fatalf("projectile expired early after %d ticks", i)
		}
	}

	m.Update(0.25, surface)
	if m.Count() != 0 {
		t.Error("projectile alive after accumulated dt reached 2.0s")
	}
}

func TestProjectileDespawnsOnWallImpactSameTick(t *testing.T) {
	surface := newGridSurface()
	surface.blocked[[2]int{2, 0}] = true // wall at x in [128, 192)

	m := NewProjectileManager(1000, 5.0)
	m.Spawn(32, 32, 0) // flying +X at 1000 u/s

	// First tick carries it 100 units to x=132, inside the wall: it must
	// die on this exact tick, not the next one.
	m.Update(0.1, surface)
	if m.Count() != 0 {
		t.Errorf("projectile alive after entering an impassable tile, life=%v", m.Live())
	}
}

func TestProjectileFliesAlongAngle(t *testing.T) {
	surface := newGridSurface()
	m := NewProjectileManager(100, 5.0)

	m.Spawn(0, 0, math.Pi/2) // straight down
	m.Update(0.5, surface)

	live := m.Live()
	if len(live) != 1 {
		t.Fatalf("Count = %d, expected 1", len(live))
	}
	if math.Abs(live[0].Pos.X) > 1e-9 || math.Abs(live[0].Pos.Y-50) > 1e-9 {
		t.Errorf("position = %+v, expected (0, 50)", live[0].Pos)
	}
}

func TestProjectileSpeedOverride(t *testing.T) {
	surface := newGridSurface()
	m := NewProjectileManager(100, 5.0)

	m.SpawnWithSpeed(0, 0, 0, 400)
	m.Update(0.25, surface)

	live := m.Live()
	if len(live) != 1 {
		t.Fatalf("Count = %d, expected 1", len(live))
	}
	if math.Abs(live[0].Pos.X-100) > 1e-9 {
		t.Errorf("Pos.X = %v, expected 100 with speed override", live[0].Pos.X)
	}
}

func TestProjectileRemovalKeepsSurvivors(t *testing.T) {
	surface := newGridSurface()
	surface.blocked[[2]int{2, 0}] = true

	m := NewProjectileManager(1000, 5.0)
	m.Spawn(32, 32, 0)       // dies against the wall
	m.Spawn(32, 32, math.Pi) // flies away in -X, survives
	m.Spawn(32, 32, 0)       // dies against the wall

	m.Update(0.1, surface)

	live := m.Live()
	if len(live) != 1 {
		t.Fatalf("Count = %d, expected 1 survivor", len(live))
	}
	if live[0].Vel.X >= 0 {
		t.Errorf("survivor velocity = %+v, expected the -X projectile", live[0].Vel)
	}
}
