// internal/defs/arenas.go
package defs

import "go-tank-battle/pkg/tilemap"

// ArenaDefinition — шаблон арены: матрица типов клеток
type ArenaDefinition struct {
	Name string  `json:"name"`
	Rows [][]int `json:"rows"`
}

// Kinds переводит числовой шаблон в типы клеток
func (a ArenaDefinition) Kinds() [][]tilemap.Kind {
	out := make([][]tilemap.Kind, len(a.Rows))
	for r, row := range a.Rows {
		out[r] = make([]tilemap.Kind, len(row))
		for c, v := range row {
			out[r][c] = tilemap.Kind(v)
		}
	}
	return out
}

// База в [14][11]. Кирпичи над базой: [13][10..12], по бокам: [14][10], [14][12].
// Игрок появляется в [14][7], враги — в [2][2], [2][11], [2][19].
var defaultArena = ArenaDefinition{
	Name: "default",
	Rows: [][]int{
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		{2, 0, 0, 0, 1, 1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 2},
		{2, 0, 0, 0, 0, 1, 0, 2, 2, 0, 2, 0, 2, 2, 0, 1, 0, 0, 2, 0, 0, 2},
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{2, 0, 1, 1, 0, 2, 2, 0, 1, 1, 1, 1, 1, 1, 0, 2, 2, 0, 1, 1, 0, 2},
		{2, 0, 0, 0, 0, 2, 0, 0, 0, 1, 2, 1, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2},
		{2, 1, 1, 0, 0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 2},
		{2, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 2},
		{2, 0, 2, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 2, 0, 0, 2},
		{2, 0, 0, 0, 2, 2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 2},
		{2, 1, 1, 0, 0, 0, 0, 1, 2, 0, 0, 0, 2, 1, 0, 0, 0, 0, 1, 1, 0, 2},
		{2, 0, 0, 0, 1, 1, 0, 0, 0, 1, 2, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 2},
		{2, 0, 2, 0, 0, 1, 2, 2, 0, 0, 2, 0, 0, 2, 2, 1, 0, 0, 2, 0, 0, 2},
		{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{2, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 2},
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	},
}

// DefaultArena возвращает копию встроенного шаблона
func DefaultArena() [][]tilemap.Kind {
	return defaultArena.Kinds()
}
