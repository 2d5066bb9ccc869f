// internal/component/projectile.go
package component

import (
	"go-tank-battle/internal/collision"
	"go-tank-battle/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID            types.EntityID
	X, Y          float64
	Width, Height float64 // для горизонтального полёта ширина и высота меняются местами
	Direction     Direction
	OwnerID       types.EntityID
	Speed         float64
}

// Rect возвращает габарит снаряда
func (p *Projectile) Rect() collision.Rect {
	return collision.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Center возвращает центр снаряда
func (p *Projectile) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}
