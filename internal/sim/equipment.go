// Package sim implements per-frame entity kinematics: the player controller
// state machine (rotation smoothing, dash mechanics, axis-separated collision
// resolution) and ballistic projectiles. The package is pure arithmetic over
// a collision surface; it performs no I/O and holds no global state.
package sim

// Bonuses are additive stat modifiers supplied by the equipment collaborator.
type Bonuses struct {
	Speed   float64
	Attack  float64
	Defense float64
	Health  float64
}

// Add returns the sum of two bonus sets.
func (b Bonuses) Add(o Bonuses) Bonuses {
	return Bonuses{
		Speed:   b.Speed + o.Speed,
		Attack:  b.Attack + o.Attack,
		Defense: b.Defense + o.Defense,
		Health:  b.Health + o.Health,
	}
}

// Item is a piece of equipment contributing additive bonuses.
type Item struct {
	Name  string
	Bonus Bonuses
}

// Loadout is the set of currently equipped items.
type Loadout []Item

// Totals sums the loadout's bonuses. Deliberately recomputed every tick
// rather than cached: the sum is a handful of additions and invalidation
// bookkeeping would cost more than it saves.
func (l Loadout) Totals() Bonuses {
	var total Bonuses
	for _, item := range l {
		total = total.Add(item.Bonus)
	}
	return total
}

// Stats are the player's combat statistics.
type Stats struct {
	Health  float64
	Attack  float64
	Defense float64
	Speed   float64
}

// DerivedStats applies equipment bonuses to base stats.
func DerivedStats(base Stats, b Bonuses) Stats {
	return Stats{
		Health:  base.Health + b.Health,
		Attack:  base.Attack + b.Attack,
		Defense: base.Defense + b.Defense,
		Speed:   base.Speed + b.Speed,
	}
}
