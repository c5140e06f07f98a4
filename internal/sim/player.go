package sim

import (
	"math"

	"github.com/vovakirdan/overland/internal/core"
)

// Surface is the collision interface the simulation moves against.
// Implemented by world.Collider; tests substitute fixed grids.
type Surface interface {
	// OverlapsImpassable reports whether any tile covered by the box is
	// impassable.
	OverlapsImpassable(r core.Rect) bool
	// IsPassable reports whether the tile under a world point can be entered.
	IsPassable(x, y float64) bool
	// SpeedCostAt returns the terrain speed cost under a world point.
	SpeedCostAt(x, y float64) float64
}

// Tuning holds the player's kinematic constants.
type Tuning struct {
	BaseSpeed        float64 // world units per second
	SprintMultiplier float64
	RotationSpeed    float64 // exponential approach rate, 1/s
	HalfSize         float64 // half-extent of the collision box

	BaseStats Stats

	Dash   DashTuning
	Combat CombatTuning
}

// DashTuning holds the dash burst constants.
type DashTuning struct {
	Speed        float64
	Duration     float64
	RechargeTime float64
	Debounce     float64
	MaxCharges   int
}

// CombatTuning holds fire-rate and muzzle constants.
type CombatTuning struct {
	FireInterval    float64
	MuzzleOffset    float64
	ProjectileSpeed float64
	ProjectileLife  float64
}

// DefaultTuning returns the standard player constants.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:        220,
		SprintMultiplier: 1.6,
		RotationSpeed:    12,
		HalfSize:         20,
		BaseStats: Stats{
			Health:  100,
			Attack:  10,
			Defense: 5,
			Speed:   0,
		},
		Dash: DashTuning{
			Speed:        800,
			Duration:     0.2,
			RechargeTime: 3.0,
			Debounce:     0.2,
			MaxCharges:   2,
		},
		Combat: CombatTuning{
			FireInterval:    0.25,
			MuzzleOffset:    30,
			ProjectileSpeed: 900,
			ProjectileLife:  2.0,
		},
	}
}

// SpawnRequest asks the projectile manager for a shot fired this tick.
type SpawnRequest struct {
	Pos   core.Vec2
	Angle float64
}

// Player is the per-frame player state machine. It has two movement states,
// grounded and dashing; transitions are edge-triggered by input and timers.
// Mutated exactly once per tick by Update.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64 // radians, kept in (-pi, pi]
	Health   float64

	IsDashing   bool
	DashCharges int

	dashTimer         float64
	dashRechargeTimer float64
	dashDebounceTimer float64
	fireTimer         float64

	tuning Tuning
}

// NewPlayer creates a player at the given position with full dash charges
// and full health.
func NewPlayer(t Tuning, pos core.Vec2) *Player {
	return &Player{
		Pos:         pos,
		Health:      t.BaseStats.Health,
		DashCharges: t.Dash.MaxCharges,
		tuning:      t,
	}
}

// Tuning returns the player's kinematic constants.
func (p *Player) Tuning() Tuning {
	return p.tuning
}

// DashActive reports how much of the current dash remains, for HUD use.
func (p *Player) DashActive() float64 {
	return p.dashTimer
}

// Update advances the player by one tick. The step order is load-bearing:
// rotation, then combat timer, then dash regeneration, then movement
// selection, then axis-separated collision resolution. dt must already be
// clamped by the caller (core.ClampDelta).
//
// Returns a spawn request if the fire input triggered this tick, else nil.
func (p *Player) Update(dt float64, in core.InputFrame, eq Bonuses, surface Surface) *SpawnRequest {
	p.updateRotation(dt, in.Aim)
	spawn := p.updateCombat(dt, in.Fire)
	p.updateDashTimers(dt)

	desired := p.selectVelocity(dt, in, eq, surface)
	p.resolveMove(dt, desired, surface)
	return spawn
}

// updateRotation eases the facing angle toward the aim target.
func (p *Player) updateRotation(dt float64, aim core.Vec2) {
	target := math.Atan2(aim.Y-p.Pos.Y, aim.X-p.Pos.X)
	delta := core.AngleDelta(p.Rotation, target)
	p.Rotation = core.WrapAngle(p.Rotation + delta*p.tuning.RotationSpeed*dt)
}

// updateCombat runs the fire timer and emits a spawn request when the fire
// input is active and the timer has run out. The timer may go negative
// between shots; only its sign matters.
func (p *Player) updateCombat(dt float64, fire bool) *SpawnRequest {
	p.fireTimer -= dt
	if !fire || p.fireTimer > 0 {
		return nil
	}
	p.fireTimer = p.tuning.Combat.FireInterval

	muzzle := p.Pos.Add(core.FromAngle(p.Rotation).Scale(p.tuning.Combat.MuzzleOffset))
	return &SpawnRequest{Pos: muzzle, Angle: p.Rotation}
}

// updateDashTimers regenerates dash charges and cools down the debounce.
// Charges never exceed the maximum and never go negative.
func (p *Player) updateDashTimers(dt float64) {
	if p.DashCharges < p.tuning.Dash.MaxCharges {
		p.dashRechargeTimer += dt
		if p.dashRechargeTimer >= p.tuning.Dash.RechargeTime {
			p.DashCharges++
			p.dashRechargeTimer = 0
		}
	}

	p.dashDebounceTimer -= dt
	if p.dashDebounceTimer < 0 {
		p.dashDebounceTimer = 0
	}
}

// selectVelocity picks the desired velocity for this tick: continuing dash
// motion, a freshly triggered dash, or normal grounded movement.
func (p *Player) selectVelocity(dt float64, in core.InputFrame, eq Bonuses, surface Surface) core.Vec2 {
	if p.IsDashing {
		p.dashTimer -= dt
		if p.dashTimer <= 0 {
			p.dashTimer = 0
			p.IsDashing = false
			p.Vel = core.Vec2{}
			return core.Vec2{}
		}
		// Dash velocity is fixed at dash start; carried via stored velocity.
		return p.Vel
	}

	canDash := in.Dash && p.DashCharges > 0 && p.dashDebounceTimer <= 0 && in.HasMove()
	if canDash {
		p.IsDashing = true
		p.dashTimer = p.tuning.Dash.Duration
		p.DashCharges--
		p.dashDebounceTimer = p.tuning.Dash.Debounce
		// Normal movement is skipped entirely on the trigger tick.
		return in.Move.Normalize().Scale(p.tuning.Dash.Speed)
	}

	if !in.HasMove() {
		return core.Vec2{}
	}

	speed := p.tuning.BaseSpeed + eq.Speed
	if in.Sprint {
		speed *= p.tuning.SprintMultiplier
	}
	// Terrain drag applies to grounded movement only; dashing ignores it.
	if cost := surface.SpeedCostAt(p.Pos.X, p.Pos.Y); cost > 0 {
		speed /= cost
	}
	return in.Move.Normalize().Scale(speed)
}

// resolveMove attempts the X-axis move alone, then the Y-axis move from the
// (possibly updated) X position. A blocked axis zeroes that velocity
// component while the open axis keeps its displacement, which lets the
// player slide along walls instead of stopping dead on diagonal contact.
func (p *Player) resolveMove(dt float64, desired core.Vec2, surface Surface) {
	half := p.tuning.HalfSize
	vel := desired

	if vel.X != 0 {
		candX := p.Pos.X + vel.X*dt
		box := core.RectAround(core.Vec2{X: candX, Y: p.Pos.Y}, half, half)
		if surface.OverlapsImpassable(box) {
			vel.X = 0
		} else {
			p.Pos.X = candX
		}
	}

	if vel.Y != 0 {
		candY := p.Pos.Y + vel.Y*dt
		box := core.RectAround(core.Vec2{X: p.Pos.X, Y: candY}, half, half)
		if surface.OverlapsImpassable(box) {
			vel.Y = 0
		} else {
			p.Pos.Y = candY
		}
	}

	p.Vel = vel
}
