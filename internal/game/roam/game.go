// Package roam implements the overland game modes on top of the world and
// sim packages: free exploration ("roam") and a timed distance trial
// ("rush"). Both share the same simulation; only scoring and the end
// condition differ.
package roam

import (
	"github.com/vovakirdan/overland/internal/config"
	"github.com/vovakirdan/overland/internal/core"
	"github.com/vovakirdan/overland/internal/registry"
	"github.com/vovakirdan/overland/internal/sim"
	"github.com/vovakirdan/overland/internal/world"
)

// Mode selects the scoring rules.
type Mode string

const (
	ModeRoam Mode = "roam"
	ModeRush Mode = "rush"
)

// Game wires the world model, player controller, and projectile manager
// into a registry game mode.
type Game struct {
	mode Mode
	cfg  config.Config

	collider    *world.Collider
	player      *sim.Player
	projectiles *sim.ProjectileManager
	loadout     sim.Loadout

	visited  map[world.ChunkCoord]bool
	elapsed  float64
	distance float64 // world units traveled on foot or dash
	maxDist  float64 // greatest distance from spawn, world units
	shots    int

	paused   bool
	gameOver bool

	screenW int
	screenH int
}

// New creates a roam (free exploration) game.
func New() *Game {
	return &Game{mode: ModeRoam}
}

// NewRush creates a rush (timed distance trial) game.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

func init() {
	registry.Register("roam", func() registry.Game { return New() })
	registry.Register("rush", func() registry.Game { return NewRush() })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Overland Rush"
	}
	return "Overland Roam"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(rc.ConfigPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	params := world.Params{
		TileSize:          cfg.World.TileSize,
		ChunkSize:         cfg.World.ChunkSize,
		WorldRadiusChunks: cfg.World.WorldRadiusChunks,
		CacheChunks:       cfg.World.ChunkCache,
	}
	g.collider = world.NewCollider(world.NewStore(world.NewGenerator(params)))

	tuning := tuningFrom(cfg)
	spawn := core.Vec2{X: params.TileSize / 2, Y: params.TileSize / 2}
	g.player = sim.NewPlayer(tuning, spawn)
	g.projectiles = sim.NewProjectileManager(
		cfg.Combat.ProjectileSpeed, cfg.Combat.ProjectileLife)

	g.loadout = loadoutFrom(cfg.Equipment)
	g.visited = map[world.ChunkCoord]bool{
		g.collider.ChunkCoordOf(spawn.X, spawn.Y): true,
	}
	g.elapsed = 0
	g.distance = 0
	g.maxDist = 0
	g.shots = 0
	g.paused = false
	g.gameOver = false
}

// tuningFrom maps the YAML tuning onto the simulation constants.
func tuningFrom(cfg config.Config) sim.Tuning {
	return sim.Tuning{
		BaseSpeed:        cfg.Player.BaseSpeed,
		SprintMultiplier: cfg.Player.SprintMultiplier,
		RotationSpeed:    cfg.Player.RotationSpeed,
		HalfSize:         cfg.Player.HalfSize,
		BaseStats: sim.Stats{
			Health:  cfg.Player.Health,
			Attack:  cfg.Player.Attack,
			Defense: cfg.Player.Defense,
		},
		Dash: sim.DashTuning{
			Speed:        cfg.Dash.Speed,
			Duration:     cfg.Dash.Duration,
			RechargeTime: cfg.Dash.RechargeTime,
			Debounce:     cfg.Dash.Debounce,
			MaxCharges:   cfg.Dash.MaxCharges,
		},
		Combat: sim.CombatTuning{
			FireInterval:    cfg.Combat.FireInterval,
			MuzzleOffset:    cfg.Combat.MuzzleOffset,
			ProjectileSpeed: cfg.Combat.ProjectileSpeed,
			ProjectileLife:  cfg.Combat.ProjectileLife,
		},
	}
}

// loadoutFrom maps the equipment YAML onto the sim loadout.
func loadoutFrom(eq config.EquipmentConfig) sim.Loadout {
	loadout := make(sim.Loadout, 0, len(eq.Items))
	for _, item := range eq.Items {
		loadout = append(loadout, sim.Item{
			Name: item.Name,
			Bonus: sim.Bonuses{
				Speed:   item.Speed,
				Attack:  item.Attack,
				Defense: item.Defense,
				Health:  item.Health,
			},
		})
	}
	return loadout
}

// Step advances the run by one frame. The whole tick runs synchronously:
// player update (rotation, combat, dash, movement), then projectiles, then
// scoring.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Pause && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dt = core.ClampDelta(dt)
	if dt == 0 {
		return core.StepResult{State: g.State()}
	}
	g.elapsed += dt

	// Equipment bonuses are a cheap pure sum; recomputed every tick.
	bonuses := g.loadout.Totals()

	before := g.player.Pos
	if spawn := g.player.Update(dt, in, bonuses, g.collider); spawn != nil {
		g.projectiles.Spawn(spawn.Pos.X, spawn.Pos.Y, spawn.Angle)
		g.shots++
	}
	g.projectiles.Update(dt, g.collider)

	g.distance += g.player.Pos.Sub(before).Len()
	if d := g.player.Pos.Len(); d > g.maxDist {
		g.maxDist = d
	}
	g.visited[g.collider.ChunkCoordOf(g.player.Pos.X, g.player.Pos.Y)] = true

	if g.mode == ModeRush && g.elapsed >= g.cfg.Modes.RushTimeLimit {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// score returns the mode's current score: chunks discovered for roam,
// furthest distance in tiles for rush.
func (g *Game) score() int {
	if g.mode == ModeRush {
		return int(g.maxDist / g.cfg.World.TileSize)
	}
	return len(g.visited)
}

// State returns the current mode state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the accumulated run statistics for storage.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		Score:         g.score(),
		DurationSecs:  int(g.elapsed),
		DistanceTiles: int(g.distance / g.cfg.World.TileSize),
		ChunksSeen:    len(g.visited),
		ShotsFired:    g.shots,
	}
}

// AimOrigin returns the point manual aim rotates around.
func (g *Game) AimOrigin() core.Vec2 {
	if g.player == nil {
		return core.Vec2{}
	}
	return g.player.Pos
}

// Player exposes the player state for rendering and the HUD.
func (g *Game) Player() *sim.Player {
	return g.player
}

// Projectiles exposes the live projectile list for rendering.
func (g *Game) Projectiles() []sim.Projectile {
	return g.projectiles.Live()
}

// Collider exposes the world query surface for rendering.
func (g *Game) Collider() *world.Collider {
	return g.collider
}
