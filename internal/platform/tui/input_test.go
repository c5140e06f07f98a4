package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/overland/internal/core"
)

func TestTrackerHoldDecay(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey("d")

	frame := tr.Frame(core.Vec2{})
	if frame.Move.X != 1 || frame.Move.Y != 0 {
		t.Fatalf("Move = %+v, expected east", frame.Move)
	}

	// Still held before the hold window elapses.
	tr.Advance(keyHoldDuration / 2)
	if frame := tr.Frame(core.Vec2{}); !frame.HasMove() {
		t.Error("movement released too early")
	}

	// Released after the window.
	tr.Advance(keyHoldDuration)
	if frame := tr.Frame(core.Vec2{}); frame.HasMove() {
		t.Error("movement still held after hold window")
	}
}

func TestTrackerDiagonalMove(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey("d")
	tr.HandleKey("s")

	frame := tr.Frame(core.Vec2{})
	if frame.Move.X != 1 || frame.Move.Y != 1 {
		t.Errorf("Move = %+v, expected southeast", frame.Move)
	}
}

func TestTrackerSprintFromShiftedKeys(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey("W")

	frame := tr.Frame(core.Vec2{})
	if !frame.Sprint {
		t.Error("shifted movement key did not set sprint")
	}
	if frame.Move.Y != -1 {
		t.Errorf("Move = %+v, expected north", frame.Move)
	}
}

func TestTrackerPauseIsEdgeTriggered(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey("p")

	if frame := tr.Frame(core.Vec2{}); !frame.Pause {
		t.Fatal("pause not set on first frame")
	}
	if frame := tr.Frame(core.Vec2{}); frame.Pause {
		t.Error("pause not consumed after first frame")
	}
}

func TestTrackerAimFollowsMovement(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey("s")

	origin := core.Vec2{X: 100, Y: 100}
	frame := tr.Frame(origin)

	// Aim should sit south of the origin.
	if frame.Aim.Y <= origin.Y {
		t.Errorf("Aim = %+v, expected south of origin", frame.Aim)
	}
	if math.Abs(frame.Aim.X-origin.X) > 1e-9 {
		t.Errorf("Aim.X = %v, expected %v", frame.Aim.X, origin.X)
	}
}

func TestTrackerManualAimOverridesMovement(t *testing.T) {
	tr := NewInputTracker()

	// Rotate aim up from east; screen Y grows downward.
	for i := 0; i < 3; i++ {
		tr.HandleKey(",")
	}
	tr.HandleKey("d")

	origin := core.Vec2{X: 0, Y: 0}
	frame := tr.Frame(origin)

	// Manual aim holds: aim points above the origin despite eastward movement.
	if frame.Aim.Y >= 0 {
		t.Errorf("Aim = %+v, expected above origin while manual aim holds", frame.Aim)
	}

	// After the manual hold expires, aim snaps back to movement direction.
	tr.Advance(manualAimHold + 0.01)
	tr.HandleKey("d")
	frame = tr.Frame(origin)
	if frame.Aim.X <= 0 || math.Abs(frame.Aim.Y) > 1e-9 {
		t.Errorf("Aim = %+v, expected east of origin after manual aim expired", frame.Aim)
	}
}

func TestTrackerUnknownKeyIgnored(t *testing.T) {
	tr := NewInputTracker()
	if tr.HandleKey("x") {
		t.Error("unknown key reported as handled")
	}
	if frame := tr.Frame(core.Vec2{}); frame.HasMove() || frame.Fire || frame.Dash {
		t.Errorf("unknown key changed input state: %+v", frame)
	}
}

func TestTrackerClearKeepsAim(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(".")
	tr.HandleKey("d")
	tr.HandleKey("f")

	before := tr.Frame(core.Vec2{}).Aim
	tr.Clear()
	after := tr.Frame(core.Vec2{})

	if after.HasMove() || after.Fire {
		t.Error("Clear did not release held keys")
	}
	if after.Aim != before {
		t.Errorf("Clear changed aim: %+v vs %+v", after.Aim, before)
	}
}
