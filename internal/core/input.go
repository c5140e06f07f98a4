package core

// InputFrame is the input collaborator's view of a single simulation tick:
// a movement vector, action flags, and an aim target in world coordinates.
// The platform samples one frame per tick before the simulation step runs.
type InputFrame struct {
	// Move is the desired movement direction. It does not have to be
	// normalized; the simulation normalizes it before use.
	Move Vec2

	// Aim is the point in world space the player is aiming at.
	Aim Vec2

	// Sprint is true while the sprint modifier is held.
	Sprint bool

	// Dash is true while the dash key is held. Dash triggering is
	// edge-guarded inside the simulation by a debounce timer.
	Dash bool

	// Fire is true while the fire key is held.
	Fire bool

	// Pause is an edge-triggered pause toggle request.
	Pause bool
}

// HasMove reports whether the frame carries a non-zero movement intent.
func (f InputFrame) HasMove() bool {
	return !f.Move.IsZero()
}
