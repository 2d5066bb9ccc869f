// internal/defs/vehicles.go
package defs

import (
	"image/color"

	"go-tank-battle/internal/config"
)

// VehicleDefinition holds the static stats for one kind of tank.
type VehicleDefinition struct {
	ID           string
	Health       int
	Speed        float64
	FireCooldown float64
	Size         float64
	Color        color.RGBA
}

// Library — определения техники для одной сессии
type Library struct {
	Player VehicleDefinition
	Enemy  VehicleDefinition
}

// NewLibrary собирает определения из настроек
func NewLibrary(s config.Settings) Library {
	return Library{
		Player: VehicleDefinition{
			ID:           "PLAYER_TANK",
			Health:       config.TankInitialHealth,
			Speed:        s.PlayerSpeed,
			FireCooldown: s.PlayerFireCooldown,
			Size:         config.TankSize,
			Color:        config.PlayerTankColor,
		},
		Enemy: VehicleDefinition{
			ID:           "ENEMY_TANK",
			Health:       config.TankInitialHealth,
			Speed:        s.EnemySpeed,
			FireCooldown: s.EnemyFireCooldown,
			Size:         config.TankSize,
			Color:        config.EnemyTankColor,
		},
	}
}
