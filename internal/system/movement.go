// internal/system/movement.go
package system

import (
	"go-tank-battle/internal/collision"
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/utils"
	"go-tank-battle/pkg/tilemap"
)

// MovementSystem двигает танки с проверкой столкновений
type MovementSystem struct {
	rng        *utils.PRNGService
	turnChance float64 // вероятность смены направления врагом за шаг при 60 шагах/с
}

func NewMovementSystem(rng *utils.PRNGService, turnChance float64) *MovementSystem {
	return &MovementSystem{rng: rng, turnChance: turnChance}
}

// TryMove поворачивает танк в dir и возвращает его новую позицию.
// Поворот применяется всегда. Если новый габарит задевает непустую клетку,
// другой танк или базу, ход отменяется целиком и возвращается прежняя позиция
// (без скольжения вдоль свободной оси).
func (s *MovementSystem) TryMove(t *component.Tank, dir component.Direction, deltaTime float64,
	grid *tilemap.Grid, others []*component.Tank, base *component.Base) (float64, float64) {
	t.Direction = dir

	dx, dy := dir.Vector()
	step := t.Speed * deltaTime * config.StepsPerSecond
	arena := grid.Size()
	newX := utils.Clamp(t.X+dx*step, arena.X, arena.Right()-t.Width)
	newY := utils.Clamp(t.Y+dy*step, arena.Y, arena.Bottom()-t.Height)

	hitbox := collision.NewRect(newX, newY, t.Width, t.Height)
	if grid.Blocks(hitbox) {
		return t.X, t.Y
	}
	for _, other := range others {
		if other == nil || other.ID == t.ID {
			continue
		}
		if collision.Overlaps(hitbox, other.Rect()) {
			return t.X, t.Y
		}
	}
	if base != nil && collision.Overlaps(hitbox, base.Rect()) {
		return t.X, t.Y
	}
	return newX, newY
}

// Update двигает сначала игрока, затем врагов в порядке их появления
func (s *MovementSystem) Update(w *entity.World, in component.Input, deltaTime float64) {
	tanks := make([]*component.Tank, 0, len(w.Enemies)+1)
	if w.Player != nil {
		tanks = append(tanks, w.Player)
	}
	tanks = append(tanks, w.Enemies...)

	if p := w.Player; p != nil {
		if dir, ok := in.Direction(); ok {
			p.X, p.Y = s.TryMove(p, dir, deltaTime, w.Grid, tanks, w.Base)
		}
	}

	for _, enemy := range w.Enemies {
		dir := enemy.Direction
		// Частота поворотов не зависит от частоты кадров
		if s.rng.Chance(s.turnChance * config.StepsPerSecond * deltaTime) {
			dir = component.Directions[s.rng.Intn(len(component.Directions))]
		}
		enemy.X, enemy.Y = s.TryMove(enemy, dir, deltaTime, w.Grid, tanks, w.Base)
	}
}
