// internal/component/base.go
package component

import (
	"image/color"

	"go-tank-battle/internal/collision"
	"go-tank-battle/internal/types"
)

// Base — защищаемая база, единственная на арене
type Base struct {
	ID            types.EntityID
	X, Y          float64
	Width, Height float64
	Health        int
	Color         color.RGBA
}

func (b *Base) Rect() collision.Rect {
	return collision.NewRect(b.X, b.Y, b.Width, b.Height)
}

func (b *Base) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Destroyed — база разрушена, это конец сессии
func (b *Base) Destroyed() bool {
	return b.Health <= 0
}
