// internal/ui/banner.go
package ui

import (
	"image/color"

	"go-tank-battle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Banner — затемнение поверх кадра с заголовком и подсказкой
type Banner struct {
	Title      string
	TitleColor color.Color
	Lines      []string
}

func (b Banner) Draw(screen *ebiten.Image, face font.Face) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	DrawScaledText(screen, b.Title, face, w/2, h/2-40, 4, b.TitleColor)
	for i, line := range b.Lines {
		DrawScaledText(screen, line, face, w/2, h/2+20+float64(i)*30, 2, config.TextColor)
	}
}

func MenuBanner() Banner {
	return Banner{
		Title:      "TANK BATTLE",
		TitleColor: config.PlayerTankColor,
		Lines:      []string{"Press ENTER to start", "Arrows move, J fires, P pauses"},
	}
}

func PauseBanner() Banner {
	return Banner{
		Title:      "PAUSED",
		TitleColor: config.PauseTitleColor,
		Lines:      []string{"Press P to resume"},
	}
}

// GameOverBanner — итог сессии со счётом
func GameOverBanner(won bool, score int) Banner {
	b := Banner{
		Title:      "GAME OVER",
		TitleColor: config.LoseTextColor,
		Lines:      []string{ScoreLabel(score), "ENTER to play again, ESC for menu"},
	}
	if won {
		b.Title = "YOU WIN!"
		b.TitleColor = config.WinTextColor
	}
	return b
}
