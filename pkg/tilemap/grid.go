// pkg/tilemap/grid.go
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"go-tank-battle/internal/collision"
)

// Kind — тип клетки арены
type Kind int

const (
	Empty Kind = iota
	Brick
	Steel
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Brick:
		return "brick"
	case Steel:
		return "steel"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid проверяет, что значение — известный тип клетки
func (k Kind) Valid() bool {
	return k == Empty || k == Brick || k == Steel
}

var (
	ErrEmptyTemplate  = errors.New("tilemap: empty template")
	ErrRaggedTemplate = errors.New("tilemap: rows have different lengths")
	ErrUnknownKind    = errors.New("tilemap: unknown tile kind")
	ErrTemplateSize   = errors.New("tilemap: template size mismatch")
)

// Tile — клетка арены. Durability имеет смысл только для кирпича.
type Tile struct {
	Kind       Kind
	Durability int
}

// Blocking — клетка мешает движению и останавливает снаряды
func (t Tile) Blocking() bool {
	return t.Kind != Empty
}

// Cell — координаты клетки (строка, столбец)
type Cell struct {
	Row, Col int
}

// Grid — изменяемая матрица клеток фиксированного размера
type Grid struct {
	Rows, Cols      int
	TileSize        float64
	BrickDurability int
	tiles           []Tile
}

// ValidateTemplate проверяет форму и содержимое шаблона.
// rows/cols <= 0 отключают проверку размера.
func ValidateTemplate(template [][]Kind, rows, cols int) error {
	if len(template) == 0 || len(template[0]) == 0 {
		return ErrEmptyTemplate
	}
	width := len(template[0])
	for r, row := range template {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedTemplate, r, len(row), width)
		}
		for c, k := range row {
			if !k.Valid() {
				return fmt.Errorf("%w: %d at [%d][%d]", ErrUnknownKind, int(k), r, c)
			}
		}
	}
	if rows > 0 && cols > 0 && (len(template) != rows || width != cols) {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrTemplateSize, len(template), width, rows, cols)
	}
	return nil
}

// FromTemplate строит сетку по шаблону. Кирпич получает brickDurability.
func FromTemplate(template [][]Kind, tileSize float64, brickDurability int) (*Grid, error) {
	if err := ValidateTemplate(template, 0, 0); err != nil {
		return nil, err
	}
	g := &Grid{
		Rows:            len(template),
		Cols:            len(template[0]),
		TileSize:        tileSize,
		BrickDurability: brickDurability,
	}
	g.tiles = make([]Tile, g.Rows*g.Cols)
	for r, row := range template {
		for c, k := range row {
			t := Tile{Kind: k}
			if k == Brick {
				t.Durability = brickDurability
			}
			g.tiles[r*g.Cols+c] = t
		}
	}
	return g, nil
}

// NewEmpty создаёт пустую сетку rows×cols
func NewEmpty(rows, cols int, tileSize float64, brickDurability int) *Grid {
	return &Grid{
		Rows:            rows,
		Cols:            cols,
		TileSize:        tileSize,
		BrickDurability: brickDurability,
		tiles:           make([]Tile, rows*cols),
	}
}

// Contains проверяет, что клетка внутри сетки
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At возвращает клетку; за пределами сетки — пустая клетка
func (g *Grid) At(c Cell) Tile {
	if !g.Contains(c) {
		return Tile{}
	}
	return g.tiles[c.Row*g.Cols+c.Col]
}

// Set заменяет тип клетки, прочность выставляется как при построении
func (g *Grid) Set(c Cell, k Kind) {
	if !g.Contains(c) {
		return
	}
	t := Tile{Kind: k}
	if k == Brick {
		t.Durability = g.BrickDurability
	}
	g.tiles[c.Row*g.Cols+c.Col] = t
}

// CellAt переводит точку в пикселях в клетку (может быть вне сетки)
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{
		Row: int(math.Floor(y / g.TileSize)),
		Col: int(math.Floor(x / g.TileSize)),
	}
}

// Bounds возвращает прямоугольник клетки в пикселях
func (g *Grid) Bounds(c Cell) collision.Rect {
	return collision.NewRect(float64(c.Col)*g.TileSize, float64(c.Row)*g.TileSize, g.TileSize, g.TileSize)
}

// Size возвращает размер всей арены в пикселях
func (g *Grid) Size() collision.Rect {
	return collision.NewRect(0, 0, float64(g.Cols)*g.TileSize, float64(g.Rows)*g.TileSize)
}

// Hit наносит клетке одно попадание. Кирпич теряет прочность и при <= 0
// становится пустым, сталь не меняется. Возвращает true, если клетка разрушена.
func (g *Grid) Hit(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	t := &g.tiles[c.Row*g.Cols+c.Col]
	if t.Kind != Brick {
		return false
	}
	t.Durability--
	if t.Durability <= 0 {
		*t = Tile{Kind: Empty}
		return true
	}
	return false
}

// Blocks проверяет, пересекает ли прямоугольник хоть одну непустую клетку
func (g *Grid) Blocks(r collision.Rect) bool {
	minC := g.CellAt(r.X, r.Y)
	maxC := g.CellAt(r.Right(), r.Bottom())
	for row := max(minC.Row, 0); row <= min(maxC.Row, g.Rows-1); row++ {
		for col := max(minC.Col, 0); col <= min(maxC.Col, g.Cols-1); col++ {
			cell := Cell{Row: row, Col: col}
			if g.tiles[row*g.Cols+col].Blocking() && collision.Overlaps(r, g.Bounds(cell)) {
				return true
			}
		}
	}
	return false
}

// Count возвращает число клеток заданного типа
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, t := range g.tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Clone делает независимую копию сетки
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cp := *g
	cp.tiles = make([]Tile, len(g.tiles))
	copy(cp.tiles, g.tiles)
	return &cp
}
