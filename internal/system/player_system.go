// internal/system/player_system.go
package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
)

// PlayerSystem создаёт танк игрока при старте и после гибели.
type PlayerSystem struct {
	eventDispatcher *event.Dispatcher
	def             defs.VehicleDefinition
	spawnX, spawnY  float64
}

func NewPlayerSystem(eventDispatcher *event.Dispatcher, def defs.VehicleDefinition, spawnX, spawnY float64) *PlayerSystem {
	return &PlayerSystem{
		eventDispatcher: eventDispatcher,
		def:             def,
		spawnX:          spawnX,
		spawnY:          spawnY,
	}
}

// Spawn ставит игрока на точку старта. ID игрока не меняется всю сессию,
// перезарядка считается завершённой.
func (s *PlayerSystem) Spawn(w *entity.World, now float64) *component.Tank {
	if w.PlayerID == 0 {
		w.PlayerID = w.NewEntity()
	}
	p := &component.Tank{
		ID:           w.PlayerID,
		X:            s.spawnX,
		Y:            s.spawnY,
		Width:        s.def.Size,
		Height:       s.def.Size,
		Direction:    component.Up,
		Color:        s.def.Color,
		Health:       s.def.Health,
		Role:         component.RolePlayer,
		LastShotTime: now - s.def.FireCooldown,
		Speed:        s.def.Speed,
	}
	w.Player = p
	emit(s.eventDispatcher, event.PlayerSpawned, now, tankData(p))
	return p
}

// Update возрождает игрока, пока остались жизни и сессия идёт
func (s *PlayerSystem) Update(w *entity.World, now float64) bool {
	if w.Player != nil || w.Lives <= 0 || w.Status != component.StatusActive {
		return false
	}
	s.Spawn(w, now)
	return true
}
