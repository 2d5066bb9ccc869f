// pkg/render/arena_renderer.go
package render

import (
	"go-tank-battle/internal/collision"
	"go-tank-battle/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer рисует клетки арены. Фон кэшируется в отдельном изображении
// и перерисовывается, только когда меняется набор клеток.
type ArenaRenderer struct {
	colors   ArenaColors
	mapImage *ebiten.Image

	// отпечаток сетки, с которой нарисован кэш
	bricks, steel int
	valid         bool
}

func NewArenaRenderer(width, height int, colors ArenaColors) *ArenaRenderer {
	return &ArenaRenderer{
		colors:   colors,
		mapImage: ebiten.NewImage(width, height),
	}
}

// Invalidate сбрасывает кэш, например после новой игры
func (r *ArenaRenderer) Invalidate() {
	r.valid = false
}

// Draw рисует арену одним вызовом, при необходимости обновив кэш
func (r *ArenaRenderer) Draw(screen *ebiten.Image, g *tilemap.Grid) {
	bricks, steel := g.Count(tilemap.Brick), g.Count(tilemap.Steel)
	if !r.valid || bricks != r.bricks || steel != r.steel {
		r.RenderMapImage(g)
		r.bricks, r.steel, r.valid = bricks, steel, true
	}
	screen.DrawImage(r.mapImage, nil)
}

// RenderMapImage создаёт предрендеренное изображение арены
func (r *ArenaRenderer) RenderMapImage(g *tilemap.Grid) {
	r.mapImage.Fill(r.colors.Background)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := tilemap.Cell{Row: row, Col: col}
			switch g.At(cell).Kind {
			case tilemap.Brick:
				r.drawBrick(r.mapImage, g.Bounds(cell))
			case tilemap.Steel:
				r.drawSteel(r.mapImage, g.Bounds(cell))
			}
		}
	}
}

// drawBrick — кирпичная кладка: заливка и швы со сдвигом через ряд
func (r *ArenaRenderer) drawBrick(target *ebiten.Image, b collision.Rect) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(target, x, y, w, h, r.colors.Brick, false)

	rowH := h / 4
	for i := 1; i < 4; i++ {
		ly := y + rowH*float32(i)
		vector.StrokeLine(target, x, ly, x+w, ly, 1, r.colors.Mortar, false)
	}
	for i := 0; i < 4; i++ {
		top := y + rowH*float32(i)
		offset := w / 2
		if i%2 == 1 {
			offset = w / 4
		}
		for jx := x + offset; jx < x+w; jx += w / 2 {
			vector.StrokeLine(target, jx, top, jx, top+rowH, 1, r.colors.Mortar, false)
		}
	}
}

// drawSteel — стальной блок с рамкой и заклёпкой
func (r *ArenaRenderer) drawSteel(target *ebiten.Image, b collision.Rect) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(target, x, y, w, h, r.colors.Steel, false)
	vector.StrokeRect(target, x+2, y+2, w-4, h-4, 2, r.colors.SteelEdge, false)
	vector.DrawFilledRect(target, x+w/2-3, y+h/2-3, 6, 6, r.colors.SteelEdge, false)
}
