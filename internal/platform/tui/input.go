package tui

import (
	"math"

	"github.com/vovakirdan/overland/internal/core"
)

const (
	// keyHoldDuration is how long a pressed key counts as held. Terminals
	// only report presses (plus autorepeat), never releases, so each press
	// arms a short timer that autorepeat keeps refreshing.
	keyHoldDuration = 0.2

	// aimTurnStep is the manual aim rotation per , or . press.
	aimTurnStep = math.Pi / 12

	// aimReach is how far ahead of the player the aim point sits.
	aimReach = 200.0

	// manualAimHold is how long manual aim overrides movement-follow aim.
	manualAimHold = 1.5
)

// moveKey indexes the four held-movement timers.
type moveKey int

const (
	moveUp moveKey = iota
	moveDown
	moveLeft
	moveRight
	moveKeyCount
)

var moveDirs = [moveKeyCount]core.Vec2{
	moveUp:    {X: 0, Y: -1},
	moveDown:  {X: 0, Y: 1},
	moveLeft:  {X: -1, Y: 0},
	moveRight: {X: 1, Y: 0},
}

// InputTracker converts discrete terminal key presses into the continuous
// input frames the simulation expects. Movement and fire keys decay on a
// hold timer; dash and pause are edge-triggered.
type InputTracker struct {
	moveTimers  [moveKeyCount]float64
	sprintTimer float64
	dashTimer   float64
	fireTimer   float64

	aimAngle       float64
	manualAimTimer float64

	pausePending bool
}

// NewInputTracker creates a tracker with aim pointing east.
func NewInputTracker() InputTracker {
	return InputTracker{}
}

// HandleKey processes a single key press. Returns true if the key was
// recognized as a game input.
func (t *InputTracker) HandleKey(key string) bool {
	switch key {
	case "w", "up":
		t.moveTimers[moveUp] = keyHoldDuration
	case "s", "down":
		t.moveTimers[moveDown] = keyHoldDuration
	case "a", "left":
		t.moveTimers[moveLeft] = keyHoldDuration
	case "d", "right":
		t.moveTimers[moveRight] = keyHoldDuration
	case "W":
		t.moveTimers[moveUp] = keyHoldDuration
		t.sprintTimer = keyHoldDuration
	case "S":
		t.moveTimers[moveDown] = keyHoldDuration
		t.sprintTimer = keyHoldDuration
	case "A":
		t.moveTimers[moveLeft] = keyHoldDuration
		t.sprintTimer = keyHoldDuration
	case "D":
		t.moveTimers[moveRight] = keyHoldDuration
		t.sprintTimer = keyHoldDuration
	case " ":
		t.dashTimer = keyHoldDuration
	case "f":
		t.fireTimer = keyHoldDuration
	case ",":
		t.aimAngle = core.WrapAngle(t.aimAngle - aimTurnStep)
		t.manualAimTimer = manualAimHold
	case ".":
		t.aimAngle = core.WrapAngle(t.aimAngle + aimTurnStep)
		t.manualAimTimer = manualAimHold
	case "p", "esc":
		t.pausePending = true
	default:
		return false
	}
	return true
}

// Frame samples the current input state into a frame for one simulation
// tick. The aim point is placed ahead of the given origin (the player
// position in world space). Edge-triggered flags are consumed.
func (t *InputTracker) Frame(origin core.Vec2) core.InputFrame {
	var move core.Vec2
	for k, timer := range t.moveTimers {
		if timer > 0 {
			move = move.Add(moveDirs[k])
		}
	}

	// Aim follows movement unless recently steered by hand.
	if t.manualAimTimer <= 0 && !move.IsZero() {
		t.aimAngle = move.Angle()
	}

	frame := core.InputFrame{
		Move:   move,
		Aim:    origin.Add(core.FromAngle(t.aimAngle).Scale(aimReach)),
		Sprint: t.sprintTimer > 0,
		Dash:   t.dashTimer > 0,
		Fire:   t.fireTimer > 0,
		Pause:  t.pausePending,
	}
	t.pausePending = false
	return frame
}

// Advance decays the hold timers by one frame delta.
func (t *InputTracker) Advance(dt float64) {
	for k := range t.moveTimers {
		t.moveTimers[k] = decay(t.moveTimers[k], dt)
	}
	t.sprintTimer = decay(t.sprintTimer, dt)
	t.dashTimer = decay(t.dashTimer, dt)
	t.fireTimer = decay(t.fireTimer, dt)
	t.manualAimTimer = decay(t.manualAimTimer, dt)
}

// Clear resets all held state, keeping the aim direction.
func (t *InputTracker) Clear() {
	angle := t.aimAngle
	*t = InputTracker{aimAngle: angle}
}

func decay(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
