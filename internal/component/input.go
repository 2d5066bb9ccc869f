// internal/component/input.go
package component

// Input — состояние клавиш на начало шага
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// Direction возвращает направление движения игрока.
// Если зажато несколько клавиш, приоритет: вверх, вниз, влево, вправо.
func (in Input) Direction() (Direction, bool) {
	switch {
	case in.Up:
		return Up, true
	case in.Down:
		return Down, true
	case in.Left:
		return Left, true
	case in.Right:
		return Right, true
	}
	return Up, false
}
