// internal/system/spawn.go
package system

import (
	"math"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/utils"
)

// SpawnSystem выпускает врагов на арену, не превышая лимит одновременно живых
type SpawnSystem struct {
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	def             defs.VehicleDefinition
	maxActive       int
	points          []config.SpawnPoint
}

func NewSpawnSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher,
	def defs.VehicleDefinition, maxActive int, points []config.SpawnPoint) *SpawnSystem {
	return &SpawnSystem{
		rng:             rng,
		eventDispatcher: eventDispatcher,
		def:             def,
		maxActive:       maxActive,
		points:          points,
	}
}

// FreeSpawnPoints возвращает точки, рядом с которыми нет танков.
// Для игрока зазор больше, чтобы враг не появился вплотную к нему.
func (s *SpawnSystem) FreeSpawnPoints(w *entity.World) []config.SpawnPoint {
	size := s.def.Size
	free := make([]config.SpawnPoint, 0, len(s.points))
	for _, sp := range s.points {
		if s.occupied(sp, w, size) {
			continue
		}
		free = append(free, sp)
	}
	return free
}

func (s *SpawnSystem) occupied(sp config.SpawnPoint, w *entity.World, size float64) bool {
	near := func(t *component.Tank, clearance float64) bool {
		return math.Abs(t.X-sp.X) < size*clearance && math.Abs(t.Y-sp.Y) < size*clearance
	}
	for _, e := range w.Enemies {
		if near(e, config.SpawnClearanceEnemy) {
			return true
		}
	}
	return w.Player != nil && near(w.Player, config.SpawnClearancePlayer)
}

// Update выпускает не более одного врага за шаг. Если все точки заняты,
// попытка повторится на следующем шаге.
func (s *SpawnSystem) Update(w *entity.World, now float64) bool {
	if w.EnemiesToSpawn <= 0 || len(w.Enemies) >= s.maxActive {
		return false
	}
	free := s.FreeSpawnPoints(w)
	if len(free) == 0 {
		return false
	}

	sp := free[s.rng.Intn(len(free))]
	enemy := &component.Tank{
		ID:        w.NewEntity(),
		X:         sp.X,
		Y:         sp.Y,
		Width:     s.def.Size,
		Height:    s.def.Size,
		Direction: component.Down,
		Color:     s.def.Color,
		Health:    s.def.Health,
		Role:      component.RoleEnemy,
		// Случайный сдвиг, чтобы новые враги не стреляли залпом
		LastShotTime: now + s.rng.Float64()*s.def.FireCooldown,
		Speed:        s.def.Speed,
	}
	w.Enemies = append(w.Enemies, enemy)
	w.EnemiesToSpawn--
	emit(s.eventDispatcher, event.EnemySpawned, now, tankData(enemy))
	return true
}
