// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-tank-battle/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices — сколько сигналов может звучать одновременно
const maxVoices = 8

// SoundManager озвучивает события игры
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        map[event.EventType]Cue
	logger      zerolog.Logger
	initialized bool
}

func NewSoundManager(logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
		cues: map[event.EventType]Cue{
			event.ProjectileFired: CueShot,
			event.TileHit:         CueTileHit,
			event.EnemyDestroyed:  CueEnemyDestroyed,
			event.PlayerDestroyed: CuePlayerDestroyed,
			event.BaseHit:         CueBaseHit,
		},
	}
}

// Initialize открывает устройство вывода. Без него менеджер молчит.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит все звуки
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe подписывает менеджер на озвучиваемые события
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	types := make([]event.EventType, 0, len(sm.cues)+1)
	for t := range sm.cues {
		types = append(types, t)
	}
	types = append(types, event.GameOver)
	d.Subscribe(sm, types...)
}

// CueFor возвращает сигнал для события
func (sm *SoundManager) CueFor(e event.Event) (Cue, bool) {
	if e.Type == event.GameOver {
		if d, ok := e.Data.(event.GameOverData); ok && d.Won {
			return CueWin, true
		}
		return CueLose, true
	}
	c, ok := sm.cues[e.Type]
	return c, ok
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	cue, ok := sm.CueFor(e)
	if !ok {
		return
	}
	sm.Play(cue)
}

// Play добавляет сигнал в микшер
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := cue.Build(sampleRate)
	if err != nil {
		sm.logger.Warn().Err(err).Msg("Failed to build sound cue")
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	// Частые выстрелы не должны забивать микшер
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(s)
}
