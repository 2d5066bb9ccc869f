// internal/entity/world.go
package entity

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/types"
	"go-tank-battle/pkg/tilemap"
)

// World — снимок состояния арены. Опубликованный снимок не изменяется:
// каждый шаг работает с копией (Clone) и публикует её целиком.
type World struct {
	GameTime float64
	NextID   types.EntityID
	PlayerID types.EntityID // постоянный ID игрока на всю сессию

	Grid        *tilemap.Grid
	Player      *component.Tank // nil, пока игрок ждёт возрождения
	Enemies     []*component.Tank
	Projectiles []*component.Projectile
	Explosions  []*component.Explosion
	Base        *component.Base

	Score          int
	Lives          int
	EnemiesToSpawn int
	Status         component.GameStatus
}

// NewWorld создаёт пустой мир поверх сетки
func NewWorld(grid *tilemap.Grid) *World {
	return &World{
		NextID:      1,
		Grid:        grid,
		Enemies:     make([]*component.Tank, 0),
		Projectiles: make([]*component.Projectile, 0),
		Explosions:  make([]*component.Explosion, 0),
		Status:      component.StatusActive,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// EnemiesRemaining — ещё не появившиеся плюс живые враги (для HUD)
func (w *World) EnemiesRemaining() int {
	return w.EnemiesToSpawn + len(w.Enemies)
}

// RemoveEnemy удаляет врага по индексу, сохраняя порядок остальных
func (w *World) RemoveEnemy(i int) {
	w.Enemies = append(w.Enemies[:i:i], w.Enemies[i+1:]...)
}

// Clone делает глубокую копию всего, что меняется за шаг.
// Взрывы неизменяемы, копируется только срез.
func (w *World) Clone() *World {
	cp := *w
	cp.Grid = w.Grid.Clone()

	if w.Player != nil {
		p := *w.Player
		cp.Player = &p
	}
	if w.Base != nil {
		b := *w.Base
		cp.Base = &b
	}

	cp.Enemies = make([]*component.Tank, len(w.Enemies))
	for i, e := range w.Enemies {
		t := *e
		cp.Enemies[i] = &t
	}

	cp.Projectiles = make([]*component.Projectile, len(w.Projectiles))
	for i, p := range w.Projectiles {
		pr := *p
		cp.Projectiles[i] = &pr
	}

	cp.Explosions = make([]*component.Explosion, len(w.Explosions))
	copy(cp.Explosions, w.Explosions)
	return &cp
}
