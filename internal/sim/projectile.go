package sim

import "github.com/vovakirdan/overland/internal/core"

// Projectile is a ballistic shot. Lifetime is entirely frame-driven: a
// projectile dies when its remaining life runs out or it enters an
// impassable tile.
type Projectile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
}

// ProjectileManager owns the live projectile collection.
type ProjectileManager struct {
	speed       float64
	maxLife     float64
	projectiles []Projectile
}

// NewProjectileManager creates a manager with the given default speed and
// lifetime.
func NewProjectileManager(speed, maxLife float64) *ProjectileManager {
	return &ProjectileManager{
		speed:   speed,
		maxLife: maxLife,
	}
}

// Spawn creates a projectile at (x, y) flying along angle at the default
// speed.
func (m *ProjectileManager) Spawn(x, y, angle float64) {
	m.SpawnWithSpeed(x, y, angle, m.speed)
}

// SpawnWithSpeed creates a projectile with an explicit speed override.
func (m *ProjectileManager) SpawnWithSpeed(x, y, angle, speed float64) {
	m.projectiles = append(m.projectiles, Projectile{
		Pos:     core.Vec2{X: x, Y: y},
		Vel:     core.FromAngle(angle).Scale(speed),
		Life:    m.maxLife,
		MaxLife: m.maxLife,
	})
}

// Update advances every live projectile: integrate position, burn life,
// and despawn instantly on wall impact rather than on the next frame.
// Removal compacts the slice in place, which is safe because the retained
// write index never overtakes the read index.
func (m *ProjectileManager) Update(dt float64, surface Surface) {
	for i := range m.projectiles {
		pr := &m.projectiles[i]
		pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
		pr.Life -= dt
		if pr.Life > 0 && !surface.IsPassable(pr.Pos.X, pr.Pos.Y) {
			pr.Life = 0
		}
	}

	retained := m.projectiles[:0]
	for _, pr := range m.projectiles {
		if pr.Life > 0 {
			retained = append(retained, pr)
		}
	}
	m.projectiles = retained
}

// Live returns the live projectiles, read-only, for rendering.
func (m *ProjectileManager) Live() []Projectile {
	return m.projectiles
}

// Count returns the number of live projectiles.
func (m *ProjectileManager) Count() int {
	return len(m.projectiles)
}
