// internal/component/movement.go
package component

// Direction — одно из четырёх направлений
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions — порядок, в котором выбирается случайное направление
var Directions = [4]Direction{Up, Down, Left, Right}

// Vector возвращает единичный вектор направления (ось Y вниз)
func (d Direction) Vector() (float64, float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Horizontal — движение по оси X
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
