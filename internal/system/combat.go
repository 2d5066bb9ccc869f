// internal/system/combat.go
package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/utils"
)

// CombatSystem отвечает за выстрелы и полёт снарядов
type CombatSystem struct {
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	library         defs.Library
	projectileSpeed float64
	fireChance      float64 // вероятность выстрела врага за шаг при 60 шагах/с
}

func NewCombatSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher,
	library defs.Library, projectileSpeed, fireChance float64) *CombatSystem {
	return &CombatSystem{
		rng:             rng,
		eventDispatcher: eventDispatcher,
		library:         library,
		projectileSpeed: projectileSpeed,
		fireChance:      fireChance,
	}
}

// Cooldown возвращает перезарядку для роли танка
func (s *CombatSystem) Cooldown(role component.Role) float64 {
	if role == component.RolePlayer {
		return s.library.Player.FireCooldown
	}
	return s.library.Enemy.FireCooldown
}

// Fire создаёт снаряд у конца ствола. Возвращает nil, пока идёт перезарядка.
// LastShotTime обновляет вызывающий.
func (s *CombatSystem) Fire(w *entity.World, t *component.Tank, now float64) *component.Projectile {
	if now-t.LastShotTime < s.Cooldown(t.Role) {
		return nil
	}

	cx, cy := t.Center()
	width, height := config.ProjectileWidth, config.ProjectileHeight
	if t.Direction.Horizontal() {
		width, height = height, width
	}

	var x, y float64
	switch t.Direction {
	case component.Up:
		x, y = cx-width/2, cy-config.TurretLength-height
	case component.Down:
		x, y = cx-width/2, cy+config.TurretLength
	case component.Left:
		x, y = cx-config.TurretLength-width, cy-height/2
	case component.Right:
		x, y = cx+config.TurretLength, cy-height/2
	}

	return &component.Projectile{
		ID:        w.NewEntity(),
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Direction: t.Direction,
		OwnerID:   t.ID,
		Speed:     s.projectileSpeed,
	}
}

// tryFire стреляет, если танк перезарядился
func (s *CombatSystem) tryFire(w *entity.World, t *component.Tank, now float64) {
	p := s.Fire(w, t, now)
	if p == nil {
		return
	}
	t.LastShotTime = now
	w.Projectiles = append(w.Projectiles, p)
	emit(s.eventDispatcher, event.ProjectileFired, now, tankData(t))
}

// Update обрабатывает выстрелы, затем двигает все снаряды, включая только что выпущенные
func (s *CombatSystem) Update(w *entity.World, in component.Input, now, deltaTime float64) {
	if p := w.Player; p != nil && in.Fire {
		s.tryFire(w, p, now)
	}
	for _, enemy := range w.Enemies {
		if s.rng.Chance(s.fireChance * config.StepsPerSecond * deltaTime) {
			s.tryFire(w, enemy, now)
		}
	}

	survivors := make([]*component.Projectile, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		if s.resolveProjectile(w, p, now, deltaTime) {
			survivors = append(survivors, p)
		}
	}
	w.Projectiles = survivors
}
