// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const hudPadding = 12

// HUD — верхняя панель: жизни слева, счёт по центру, враги справа.
type HUD struct {
	Width, Height int
	lives         *LivesIndicator
	face          font.Face
}

func NewHUD(width, height int, face font.Face) *HUD {
	return &HUD{
		Width:  width,
		Height: height,
		lives:  NewLivesIndicator(hudPadding, float32(height)/2-LifeRadius),
		face:   face,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, w *entity.World, maxLives int) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.Width), float32(h.Height), config.HUDBackgroundColor, false)
	h.lives.Draw(screen, w.Lives, maxLives)

	_, th := MeasureText(h.face, "0")
	baseline := h.Height/2 + th/2

	score := ScoreLabel(w.Score)
	sw, _ := MeasureText(h.face, score)
	DrawOutlinedText(screen, score, h.face, (h.Width-sw)/2, baseline, config.TextColor, config.BackgroundColor)

	enemies := EnemiesLabel(w.EnemiesRemaining())
	ew, _ := MeasureText(h.face, enemies)
	DrawOutlinedText(screen, enemies, h.face, h.Width-ew-hudPadding, baseline, config.TextColor, config.BackgroundColor)
}

func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// EnemiesLabel — враги в очереди плюс живые на арене
func EnemiesLabel(remaining int) string {
	return fmt.Sprintf("Enemies: %d", remaining)
}
