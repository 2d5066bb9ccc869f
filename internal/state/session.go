// internal/state/session.go
package state

import (
	"go-tank-battle/internal/app"
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/system"
	"go-tank-battle/internal/ui"
	"go-tank-battle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session — ресурсы, общие для всех состояний: игра и её отрисовка
type Session struct {
	Game *app.Game

	arena    *render.ArenaRenderer
	entities *system.RenderSystem
	hud      *ui.HUD
	canvas   *ebiten.Image // арена без смещения под HUD
}

func NewSession(game *app.Game) *Session {
	colors := render.ArenaColors{
		Background: config.BackgroundColor,
		Brick:      config.BrickColor,
		Mortar:     render.DarkenColor(config.BrickColor, 0.7),
		Steel:      config.SteelColor,
		SteelEdge:  render.LightenColor(config.SteelColor, 40),
	}
	w, h := int(config.ArenaWidth), int(config.ArenaHeight)
	return &Session{
		Game:     game,
		arena:    render.NewArenaRenderer(w, h, colors),
		entities: system.NewRenderSystem(),
		hud:      ui.NewHUD(config.ScreenWidth, config.HUDHeight, ui.DefaultFace),
		canvas:   ebiten.NewImage(w, h),
	}
}

// Restart начинает новую сессию и сбрасывает кэш арены
func (s *Session) Restart() {
	s.Game.Reset()
	s.arena.Invalidate()
}

// DrawWorld рисует HUD и арену последнего снимка
func (s *Session) DrawWorld(screen *ebiten.Image) {
	w := s.Game.Snapshot()
	screen.Fill(config.BackgroundColor)
	s.hud.Draw(screen, w, s.Game.Settings.Lives)

	s.arena.Draw(s.canvas, w.Grid)
	s.entities.Draw(s.canvas, w)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.HUDHeight)
	screen.DrawImage(s.canvas, op)
}

// ReadInput опрашивает клавиатуру. Удерживаемые клавиши двигают и стреляют.
func ReadInput() component.Input {
	return component.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
