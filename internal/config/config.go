// Package config provides YAML-based tuning for the overland simulation:
// world constants, player kinematics, dash and combat timing, and the
// equipment loadout.
package config

// Config is the full tuning document.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Dash      DashConfig      `yaml:"dash"`
	Combat    CombatConfig    `yaml:"combat"`
	Equipment EquipmentConfig `yaml:"equipment"`
	Modes     ModesConfig     `yaml:"modes"`
}

// WorldConfig defines the fixed world constants. Chunk generation is a pure
// function of coordinates and these values, so changing them changes the
// world everywhere.
type WorldConfig struct {
	TileSize          float64 `yaml:"tile_size"`
	ChunkSize         int     `yaml:"chunk_size"`
	WorldRadiusChunks int     `yaml:"world_radius_chunks"`
	ChunkCache        int     `yaml:"chunk_cache"`
}

// PlayerConfig defines grounded movement and base stats.
type PlayerConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	RotationSpeed    float64 `yaml:"rotation_speed"`
	HalfSize         float64 `yaml:"half_size"`
	Health           float64 `yaml:"health"`
	Attack           float64 `yaml:"attack"`
	Defense          float64 `yaml:"defense"`
}

// DashConfig defines the dash burst parameters.
type DashConfig struct {
	Speed        float64 `yaml:"speed"`
	Duration     float64 `yaml:"duration"`
	RechargeTime float64 `yaml:"recharge_time"`
	Debounce     float64 `yaml:"debounce"`
	MaxCharges   int     `yaml:"max_charges"`
}

// CombatConfig defines fire-rate and projectile parameters.
type CombatConfig struct {
	FireInterval    float64 `yaml:"fire_interval"`
	MuzzleOffset    float64 `yaml:"muzzle_offset"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileLife  float64 `yaml:"projectile_life"`
}

// EquipmentConfig is the starting loadout. Bonuses are additive.
type EquipmentConfig struct {
	Items []ItemConfig `yaml:"items"`
}

// ItemConfig is one equipped item.
type ItemConfig struct {
	Name    string  `yaml:"name"`
	Speed   float64 `yaml:"speed"`
	Attack  float64 `yaml:"attack"`
	Defense float64 `yaml:"defense"`
	Health  float64 `yaml:"health"`
}

// ModesConfig holds per-mode tuning.
type ModesConfig struct {
	// RushTimeLimit is the rush mode time limit in seconds.
	RushTimeLimit float64 `yaml:"rush_time_limit"`
}
