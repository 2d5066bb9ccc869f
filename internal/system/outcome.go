// internal/system/outcome.go
package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
)

// GameOverHandler получает итог сессии ровно один раз
type GameOverHandler func(won bool, score int)

// OutcomeSystem следит за условиями победы и поражения
type OutcomeSystem struct {
	eventDispatcher *event.Dispatcher
	onGameOver      GameOverHandler
}

func NewOutcomeSystem(eventDispatcher *event.Dispatcher, onGameOver GameOverHandler) *OutcomeSystem {
	return &OutcomeSystem{
		eventDispatcher: eventDispatcher,
		onGameOver:      onGameOver,
	}
}

// SetHandler заменяет обработчик итога
func (s *OutcomeSystem) SetHandler(h GameOverHandler) {
	s.onGameOver = h
}

// Evaluate вычисляет статус без побочных эффектов. Поражение проверяется первым.
func (s *OutcomeSystem) Evaluate(w *entity.World) component.GameStatus {
	if w.Status.IsTerminal() {
		return w.Status
	}
	if w.Lives <= 0 || (w.Base != nil && w.Base.Destroyed()) {
		return component.StatusLost
	}
	if w.EnemiesToSpawn <= 0 && len(w.Enemies) == 0 {
		return component.StatusWon
	}
	return component.StatusActive
}

// Update фиксирует переход в конечное состояние и сообщает о нём.
// Возвращает true только на шаге перехода.
func (s *OutcomeSystem) Update(w *entity.World, now float64) bool {
	if w.Status.IsTerminal() {
		return false
	}
	status := s.Evaluate(w)
	if status == component.StatusActive {
		return false
	}

	w.Status = status
	won := status == component.StatusWon
	if s.onGameOver != nil {
		s.onGameOver(won, w.Score)
	}
	emit(s.eventDispatcher, event.GameOver, now, event.GameOverData{Won: won, Score: w.Score})
	return true
}
