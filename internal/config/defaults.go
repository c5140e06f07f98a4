package config

import (
	_ "embed"
)

//go:embed defaults/overland.yaml
var defaultYAML []byte

// Default returns the default tuning configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			TileSize:          64,
			ChunkSize:         16,
			WorldRadiusChunks: 6,
			ChunkCache:        256,
		},
		Player: PlayerConfig{
			BaseSpeed:        220,
			SprintMultiplier: 1.6,
			RotationSpeed:    12,
			HalfSize:         20,
			Health:           100,
			Attack:           10,
			Defense:          5,
		},
		Dash: DashConfig{
			Speed:        800,
			Duration:     0.2,
			RechargeTime: 3.0,
			Debounce:     0.2,
			MaxCharges:   2,
		},
		Combat: CombatConfig{
			FireInterval:    0.25,
			MuzzleOffset:    30,
			ProjectileSpeed: 900,
			ProjectileLife:  2.0,
		},
		Equipment: EquipmentConfig{
			Items: []ItemConfig{
				{Name: "traveler boots", Speed: 20},
				{Name: "leather vest", Defense: 3},
			},
		},
		Modes: ModesConfig{
			RushTimeLimit: 120,
		},
	}
}
