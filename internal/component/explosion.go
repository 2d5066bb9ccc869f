// internal/component/explosion.go
package component

import (
	"image/color"

	"go-tank-battle/internal/types"
)

// Explosion — запись о взрыве для отрисовки. Ядро её не читает.
type Explosion struct {
	ID        types.EntityID
	X, Y      float64 // центр
	Size      float64
	StartTime float64
	Duration  float64
	Color     color.RGBA
}

// Progress возвращает долю прошедшего времени в [0, 1]
func (e *Explosion) Progress(now float64) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := (now - e.StartTime) / e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Expired — взрыв закончился
func (e *Explosion) Expired(now float64) bool {
	return now-e.StartTime >= e.Duration
}
