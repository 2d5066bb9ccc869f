// internal/state/game_over_state.go
package state

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог поверх последнего кадра
type GameOverState struct {
	sm   *StateMachine
	last *GameState
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.last.session.Restart()
		s.sm.SetState(NewGameState(s.sm, s.last.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.last.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	w := s.last.session.Game.Snapshot()
	ui.GameOverBanner(w.Status == component.StatusWon, w.Score).Draw(screen, ui.DefaultFace)
}

func (s *GameOverState) Exit() {}
