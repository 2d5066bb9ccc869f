// internal/term/renderer.go
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/pkg/render"
	"go-tank-battle/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Одна клетка арены занимает две колонки и одну строку терминала
const (
	CellWidth  = config.TileSize / 2 // пикселей на колонку
	CellHeight = config.TileSize     // пикселей на строку
	ArenaCols  = config.ArenaCols * 2
	ArenaRows  = config.ArenaRows
	HUDRow     = ArenaRows
	MinWidth   = ArenaCols
	MinHeight  = ArenaRows + 1
)

// Overlay — надпись поверх арены
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayPause
	OverlayGameOver
)

// Renderer рисует снимок мира в терминал
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Color
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     rgb(config.BackgroundColor),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) style(fg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(r.bg)
}

// Draw рисует арену, HUD и надпись. Show вызывает драйвер.
func (r *Renderer) Draw(w *entity.World, overlay Overlay) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width < MinWidth || height < MinHeight {
		r.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", MinWidth, MinHeight), r.style(config.LoseTextColor))
		return
	}

	r.drawGrid(w.Grid)
	if w.Base != nil && !w.Base.Destroyed() {
		r.fill(w.Base.X, w.Base.Y, w.Base.Width, w.Base.Height, '◆', r.style(config.BaseColor))
	}
	for _, e := range w.Enemies {
		r.drawTank(e)
	}
	if w.Player != nil {
		r.drawTank(w.Player)
	}
	for _, p := range w.Projectiles {
		cx, cy := p.Center()
		r.set(cx, cy, '•', r.style(config.ProjectileColor))
	}
	for _, e := range w.Explosions {
		r.drawExplosion(e, w.GameTime)
	}
	r.drawHUD(w)

	switch overlay {
	case OverlayMenu:
		r.banner("TANK BATTLE", "Enter: start   Esc: quit", config.PauseTitleColor)
	case OverlayPause:
		r.banner("PAUSED", "P: resume", config.PauseTitleColor)
	case OverlayGameOver:
		if w.Status == component.StatusWon {
			r.banner("YOU WIN!", fmt.Sprintf("Score %d   Enter: play again", w.Score), config.WinTextColor)
		} else {
			r.banner("GAME OVER", fmt.Sprintf("Score %d   Enter: play again", w.Score), config.LoseTextColor)
		}
	}
}

func (r *Renderer) drawGrid(g *tilemap.Grid) {
	brick := tcell.StyleDefault.Foreground(rgb(render.DarkenColor(config.BrickColor, 0.7))).Background(rgb(config.BrickColor))
	steel := tcell.StyleDefault.Foreground(rgb(render.LightenColor(config.SteelColor, 40))).Background(rgb(config.SteelColor))
	empty := r.style(config.BackgroundColor)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			glyph, st := ' ', empty
			switch g.At(tilemap.Cell{Row: row, Col: col}).Kind {
			case tilemap.Brick:
				glyph, st = '▒', brick
			case tilemap.Steel:
				glyph, st = '▓', steel
			}
			r.screen.SetContent(col*2, row, glyph, nil, st)
			r.screen.SetContent(col*2+1, row, glyph, nil, st)
		}
	}
}

func tankGlyph(d component.Direction) rune {
	switch d {
	case component.Down:
		return '▼'
	case component.Left:
		return '◀'
	case component.Right:
		return '▶'
	}
	return '▲'
}

func (r *Renderer) drawTank(t *component.Tank) {
	r.fill(t.X, t.Y, t.Width, t.Height, tankGlyph(t.Direction), r.style(t.Color))
}

func (r *Renderer) drawExplosion(e *component.Explosion, now float64) {
	p := e.Progress(now)
	c := render.Fade(e.Color, config.BackgroundColor, p)
	glyph := '*'
	if p > 0.5 {
		glyph = '·'
	}
	half := e.Size / 2
	r.fill(e.X-half, e.Y-half, e.Size, e.Size, glyph, r.style(c))
}

// fill закрашивает все ячейки, которые задевает прямоугольник
func (r *Renderer) fill(x, y, w, h float64, glyph rune, st tcell.Style) {
	c0, r0 := toCell(x, y)
	c1, r1 := toCell(x+w-0.001, y+h-0.001)
	for row := max(r0, 0); row <= min(r1, ArenaRows-1); row++ {
		for col := max(c0, 0); col <= min(c1, ArenaCols-1); col++ {
			r.screen.SetContent(col, row, glyph, nil, st)
		}
	}
}

func (r *Renderer) set(x, y float64, glyph rune, st tcell.Style) {
	col, row := toCell(x, y)
	if col < 0 || col >= ArenaCols || row < 0 || row >= ArenaRows {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, st)
}

// toCell переводит пиксели арены в колонку и строку терминала
func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func (r *Renderer) drawHUD(w *entity.World) {
	hud := tcell.StyleDefault.Foreground(rgb(config.TextColor)).Background(rgb(config.HUDBackgroundColor))
	for x := 0; x < ArenaCols; x++ {
		r.screen.SetContent(x, HUDRow, ' ', nil, hud)
	}

	lives := max(w.Lives, 0)
	hearts := strings.Repeat("♥", lives) + strings.Repeat("♡", max(config.PlayerStartLives-lives, 0))
	x := r.text(1, HUDRow, hearts, hud.Foreground(rgb(config.HeartColor)))
	x = r.text(x+2, HUDRow, fmt.Sprintf("Score %d", w.Score), hud)
	r.text(x+2, HUDRow, fmt.Sprintf("Enemies %d", w.EnemiesRemaining()), hud)
}

func (r *Renderer) banner(title, hint string, c color.RGBA) {
	mid := ArenaRows / 2
	box := tcell.StyleDefault.Foreground(rgb(config.TextColor)).Background(tcell.ColorBlack)
	for row := mid - 2; row <= mid+2; row++ {
		for col := 4; col < ArenaCols-4; col++ {
			r.screen.SetContent(col, row, ' ', nil, box)
		}
	}
	r.centered(mid-1, title, box.Foreground(rgb(c)).Bold(true))
	r.centered(mid+1, hint, box)
}

func (r *Renderer) centered(row int, s string, st tcell.Style) {
	col := (ArenaCols - len([]rune(s))) / 2
	r.text(max(col, 0), row, s, st)
}

// text пишет строку и возвращает колонку после неё
func (r *Renderer) text(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
