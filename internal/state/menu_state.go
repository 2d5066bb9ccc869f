// internal/state/menu_state.go
package state

import (
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.session.Restart()
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.MenuBanner().Draw(screen, ui.DefaultFace)
}

func (m *MenuState) Exit() {}
