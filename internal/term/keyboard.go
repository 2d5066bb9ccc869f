// internal/term/keyboard.go
package term

import (
	"sync"
	"time"

	"go-tank-battle/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Command — управляющая команда вне игрового ввода
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdEnter // старт из меню или новая игра после конца
)

type action int

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actFire
	actionCount
)

// DefaultHold — сколько клавиша считается зажатой после последнего нажатия.
// Терминал не присылает отпускания, поэтому удержание держится на автоповторе.
const DefaultHold = 180 * time.Millisecond

// Keyboard собирает события tcell в таблицу зажатых клавиш.
// HandleEvent вызывается из горутины опроса, Sample — из игрового цикла.
type Keyboard struct {
	mu      sync.Mutex
	pressed [actionCount]time.Time
	hold    time.Duration
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{hold: hold}
}

// HandleEvent запоминает нажатие в момент now и возвращает команду, если она есть
func (k *Keyboard) HandleEvent(ev tcell.Event, now time.Time) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return CmdNone
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyEnter:
		return CmdEnter
	case tcell.KeyUp:
		k.press(actUp, now)
	case tcell.KeyDown:
		k.press(actDown, now)
	case tcell.KeyLeft:
		k.press(actLeft, now)
	case tcell.KeyRight:
		k.press(actRight, now)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'W':
			k.press(actUp, now)
		case 's', 'S':
			k.press(actDown, now)
		case 'a', 'A':
			k.press(actLeft, now)
		case 'd', 'D':
			k.press(actRight, now)
		case 'j', 'J', ' ':
			k.press(actFire, now)
		case 'p', 'P':
			return CmdPause
		case 'q', 'Q':
			return CmdQuit
		}
	}
	return CmdNone
}

func (k *Keyboard) press(a action, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	// Направления взаимоисключающие: новое нажатие отменяет прежнее
	if a != actFire {
		for i := actUp; i <= actRight; i++ {
			k.pressed[i] = time.Time{}
		}
	}
	k.pressed[a] = now
}

// Sample возвращает состояние ввода на момент now
func (k *Keyboard) Sample(now time.Time) component.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	held := func(a action) bool {
		t := k.pressed[a]
		return !t.IsZero() && now.Sub(t) <= k.hold
	}
	return component.Input{
		Up:    held(actUp),
		Down:  held(actDown),
		Left:  held(actLeft),
		Right: held(actRight),
		Fire:  held(actFire),
	}
}

// Release сбрасывает все зажатые клавиши, например при паузе
func (k *Keyboard) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed = [actionCount]time.Time{}
}
