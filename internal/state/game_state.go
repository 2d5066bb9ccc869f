// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — идущая сессия. Ведёт собственные часы, которые стоят на паузе.
type GameState struct {
	sm      *StateMachine
	session *Session
	clock   float64
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	if g.session.Game.IsPaused() {
		g.session.Game.Resume(g.clock)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Game.Pause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.clock += deltaTime
	g.session.Game.Tick(ReadInput(), g.clock)

	if g.session.Game.Status().IsTerminal() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.DrawWorld(screen)
}

func (g *GameState) Exit() {}
