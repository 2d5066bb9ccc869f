// internal/ui/lives_indicator.go
package ui

import (
	"go-tank-battle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeRadius  = 8.0
	LifeSpacing = 6.0
)

// LivesIndicator отображает оставшиеся жизни кружками в ряд.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует maxLives кружков, первые lives из них закрашены
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		cx, cy := i.lifeCenter(j)
		fill := config.HeartEmptyColor
		if j < lives {
			fill = config.HeartColor
		}
		vector.DrawFilledCircle(screen, cx, cy, LifeRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, LifeRadius, 1, config.TextColor, true)
	}
}

func (i *LivesIndicator) lifeCenter(j int) (float32, float32) {
	x := i.X + LifeRadius + float32(j)*(LifeRadius*2+LifeSpacing)
	return x, i.Y + LifeRadius
}

// Width возвращает ширину ряда из n кружков
func (i *LivesIndicator) Width(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*LifeRadius*2 + float32(n-1)*LifeSpacing
}
