package component

// GameStatus — состояние сессии
type GameStatus int

const (
	StatusActive GameStatus = iota
	StatusWon
	StatusLost
)

// IsTerminal — сессия завершена, дальнейшие шаги не выполняются
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

func (s GameStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "unknown"
}
