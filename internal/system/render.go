// internal/system/render.go
package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/utils"
	"go-tank-battle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует подвижные сущности поверх арены
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, w *entity.World) {
	if b := w.Base; b != nil && !b.Destroyed() {
		s.drawBase(screen, b)
	}
	for _, e := range w.Enemies {
		s.drawTank(screen, e)
	}
	if w.Player != nil {
		s.drawTank(screen, w.Player)
	}
	for _, p := range w.Projectiles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), config.ProjectileColor, false)
	}
	for _, e := range w.Explosions {
		s.drawExplosion(screen, e, w.GameTime)
	}
}

func (s *RenderSystem) drawTank(screen *ebiten.Image, t *component.Tank) {
	x, y, w, h := float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height)
	vector.DrawFilledRect(screen, x, y, w, h, t.Color, true)

	// Гусеницы вдоль направления движения
	tracks := render.DarkenColor(t.Color, config.TurretColorDarkenBy)
	const track = 4
	if t.Direction.Horizontal() {
		vector.DrawFilledRect(screen, x, y, w, track, tracks, false)
		vector.DrawFilledRect(screen, x, y+h-track, w, track, tracks, false)
	} else {
		vector.DrawFilledRect(screen, x, y, track, h, tracks, false)
		vector.DrawFilledRect(screen, x+w-track, y, track, h, tracks, false)
	}

	// Башня и ствол
	cx, cy := t.Center()
	dx, dy := t.Direction.Vector()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), w/4, tracks, true)
	vector.StrokeLine(screen, float32(cx), float32(cy),
		float32(cx+dx*config.TurretLength), float32(cy+dy*config.TurretLength), 5, tracks, true)
}

func (s *RenderSystem) drawBase(screen *ebiten.Image, b *component.Base) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, b.Color, false)
	vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 2, config.BaseStrokeColor, false)

	// Эмблема
	cx, cy := x+w/2, y+h/2
	vector.DrawFilledCircle(screen, cx, cy, w/4, config.BaseStrokeColor, true)
	vector.DrawFilledRect(screen, cx-w/3, cy-1.5, w*2/3, 3, config.BaseStrokeColor, false)
}

// drawExplosion — вспышка растёт и тает к концу жизни
func (s *RenderSystem) drawExplosion(screen *ebiten.Image, e *component.Explosion, now float64) {
	p := e.Progress(now)
	radius := float32(e.Size / 2 * utils.Lerp(0.4, 1, p))
	c := render.WithAlpha(e.Color, 1-p)
	vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), radius, c, true)
}
