// internal/system/projectile.go
package system

import (
	"go-tank-battle/internal/collision"
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
)

// resolveProjectile двигает снаряд и применяет первое подходящее попадание.
// Порядок проверок: клетка, игрок, враг, база, границы арены.
// Возвращает false, если снаряд должен исчезнуть.
func (s *CombatSystem) resolveProjectile(w *entity.World, p *component.Projectile, now, deltaTime float64) bool {
	dx, dy := p.Direction.Vector()
	step := p.Speed * deltaTime * config.StepsPerSecond
	p.X += dx * step
	p.Y += dy * step

	if s.hitTile(w, p, now) {
		return false
	}
	if s.hitPlayer(w, p, now) {
		return false
	}
	if s.hitEnemy(w, p, now) {
		return false
	}
	if s.hitBase(w, p, now) {
		return false
	}
	// Снаряд целиком вылетел за арену
	return collision.Overlaps(p.Rect(), w.Grid.Size())
}

// hitTile проверяет клетку под центром снаряда
func (s *CombatSystem) hitTile(w *entity.World, p *component.Projectile, now float64) bool {
	cx, cy := p.Center()
	cell := w.Grid.CellAt(cx, cy)
	if !w.Grid.Contains(cell) {
		return false
	}
	tile := w.Grid.At(cell)
	if !tile.Blocking() {
		return false
	}

	spawnExplosion(w, s.eventDispatcher, cx, cy, config.TileHitSize, config.TileExplosionColor, now)
	data := event.TileData{Cell: cell, Kind: tile.Kind}
	emit(s.eventDispatcher, event.TileHit, now, data)
	if w.Grid.Hit(cell) {
		emit(s.eventDispatcher, event.TileDestroyed, now, data)
	}
	return true
}

func (s *CombatSystem) hitPlayer(w *entity.World, p *component.Projectile, now float64) bool {
	player := w.Player
	if player == nil || p.OwnerID == w.PlayerID || !collision.Overlaps(p.Rect(), player.Rect()) {
		return false
	}

	player.Health--
	cx, cy := player.Center()
	spawnExplosion(w, s.eventDispatcher, cx, cy, config.ExplosionMaxSize, config.ExplosionColor, now)
	emit(s.eventDispatcher, event.PlayerHit, now, tankData(player))

	if player.Health <= 0 {
		w.Player = nil
		w.Lives--
		emit(s.eventDispatcher, event.PlayerDestroyed, now, event.DestroyedData{
			ID:        player.ID,
			KillerID:  p.OwnerID,
			Score:     w.Score,
			LivesLeft: w.Lives,
		})
	}
	return true
}

// hitEnemy поражает не более одного врага, владелец снаряда исключён
func (s *CombatSystem) hitEnemy(w *entity.World, p *component.Projectile, now float64) bool {
	for i, enemy := range w.Enemies {
		if enemy.ID == p.OwnerID || !collision.Overlaps(p.Rect(), enemy.Rect()) {
			continue
		}

		enemy.Health--
		cx, cy := enemy.Center()
		spawnExplosion(w, s.eventDispatcher, cx, cy, config.ExplosionMaxSize, config.EnemyTankColor, now)
		emit(s.eventDispatcher, event.EnemyHit, now, tankData(enemy))

		if enemy.Health <= 0 {
			w.RemoveEnemy(i)
			w.Score += config.EnemyKillScore
			emit(s.eventDispatcher, event.EnemyDestroyed, now, event.DestroyedData{
				ID:        enemy.ID,
				KillerID:  p.OwnerID,
				Score:     w.Score,
				LivesLeft: w.Lives,
			})
		}
		return true
	}
	return false
}

// hitBase — базу повреждают только снаряды врагов
func (s *CombatSystem) hitBase(w *entity.World, p *component.Projectile, now float64) bool {
	base := w.Base
	if base == nil || p.OwnerID == w.PlayerID || !collision.Overlaps(p.Rect(), base.Rect()) {
		return false
	}

	base.Health--
	cx, cy := base.Center()
	spawnExplosion(w, s.eventDispatcher, cx, cy, config.ExplosionMaxSize, config.BaseExplosionColor, now)
	emit(s.eventDispatcher, event.BaseHit, now, event.TankData{ID: base.ID, Health: base.Health, X: base.X, Y: base.Y})
	return true
}
