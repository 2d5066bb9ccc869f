// internal/system/visual_effect.go
package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/entity"
)

// VisualEffectSystem убирает отыгравшие взрывы.
type VisualEffectSystem struct{}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// Update удаляет взрывы, время которых вышло
func (s *VisualEffectSystem) Update(w *entity.World, now float64) {
	alive := make([]*component.Explosion, 0, len(w.Explosions))
	for _, e := range w.Explosions {
		if !e.Expired(now) {
			alive = append(alive, e)
		}
	}
	w.Explosions = alive
}
