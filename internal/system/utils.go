// internal/system/utils.go
package system

import (
	"image/color"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
)

// emit отправляет событие, если диспетчер подключён
func emit(d *event.Dispatcher, t event.EventType, now float64, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(event.Event{Type: t, Time: now, Data: data})
}

// spawnExplosion добавляет взрыв с центром в (cx, cy)
func spawnExplosion(w *entity.World, d *event.Dispatcher, cx, cy, size float64, c color.RGBA, now float64) {
	e := &component.Explosion{
		ID:        w.NewEntity(),
		X:         cx,
		Y:         cy,
		Size:      size,
		StartTime: now,
		Duration:  config.ExplosionDuration,
		Color:     c,
	}
	w.Explosions = append(w.Explosions, e)
	emit(d, event.ExplosionSpawned, now, *e)
}

// tankData собирает полезную нагрузку события про танк
func tankData(t *component.Tank) event.TankData {
	return event.TankData{ID: t.ID, Health: t.Health, X: t.X, Y: t.Y}
}
