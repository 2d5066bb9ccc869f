// internal/component/tank.go
package component

import (
	"image/color"

	"go-tank-battle/internal/collision"
	"go-tank-battle/internal/types"
)

// Role — чей это танк
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "enemy"
}

// Tank — танк игрока или противника. X, Y — левый верхний угол.
type Tank struct {
	ID            types.EntityID
	X, Y          float64
	Width, Height float64
	Direction     Direction
	Color         color.RGBA
	Health        int
	Role          Role
	LastShotTime  float64 // секунды игрового времени
	Speed         float64
}

// Rect возвращает габарит танка
func (t *Tank) Rect() collision.Rect {
	return collision.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Center возвращает центр корпуса
func (t *Tank) Center() (float64, float64) {
	return t.X + t.Width/2, t.Y + t.Height/2
}

// IsPlayer — танк под управлением игрока
func (t *Tank) IsPlayer() bool {
	return t.Role == RolePlayer
}

// Alive — танк остаётся в живом наборе
func (t *Tank) Alive() bool {
	return t.Health > 0
}
