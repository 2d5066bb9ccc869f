// internal/app/game.go
package app

import (
	"fmt"
	"math"
	"sync/atomic"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/system"
	"go-tank-battle/internal/utils"
	"go-tank-battle/pkg/tilemap"

	"github.com/rs/zerolog"
)

// Game владеет одной сессией: системами, генератором случайных чисел
// и текущим опубликованным снимком мира.
type Game struct {
	Settings        config.Settings
	Library         defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	SpawnSystem        *system.SpawnSystem
	OutcomeSystem      *system.OutcomeSystem
	VisualEffectSystem *system.VisualEffectSystem

	logger     zerolog.Logger
	arena      *tilemap.Grid // исходная арена, Reset берёт копию
	onGameOver system.GameOverHandler

	current  atomic.Pointer[entity.World]
	lastTime float64
	hasLast  bool
	isPaused bool
}

// Option настраивает Game при создании
type Option func(*Game)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithGameOverHandler задаёт обработчик итога сессии
func WithGameOverHandler(h func(won bool, score int)) Option {
	return func(g *Game) { g.onGameOver = h }
}

// WithRNG подменяет генератор, например для воспроизводимых тестов
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) { g.Rng = rng }
}

// NewGame проверяет шаблон арены и начинает первую сессию.
func NewGame(settings config.Settings, template [][]tilemap.Kind, opts ...Option) (*Game, error) {
	if err := tilemap.ValidateTemplate(template, config.ArenaRows, config.ArenaCols); err != nil {
		return nil, fmt.Errorf("invalid arena template: %w", err)
	}
	arena, err := tilemap.FromTemplate(template, config.TileSize, config.BrickHealth)
	if err != nil {
		return nil, fmt.Errorf("failed to build arena: %w", err)
	}

	g := &Game{
		Settings:        settings,
		Library:         defs.NewLibrary(settings),
		EventDispatcher: event.NewDispatcher(),
		logger:          zerolog.Nop(),
		arena:           arena,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(settings.Seed)
	}

	g.PlayerSystem = system.NewPlayerSystem(g.EventDispatcher, g.Library.Player, config.PlayerSpawnX, config.PlayerSpawnY)
	g.MovementSystem = system.NewMovementSystem(g.Rng, settings.EnemyTurnChance)
	g.CombatSystem = system.NewCombatSystem(g.Rng, g.EventDispatcher, g.Library, settings.ProjectileSpeed, settings.EnemyFireChance)
	g.SpawnSystem = system.NewSpawnSystem(g.Rng, g.EventDispatcher, g.Library.Enemy, settings.MaxActiveEnemies, config.EnemySpawnPoints)
	g.OutcomeSystem = system.NewOutcomeSystem(g.EventDispatcher, g.handleGameOver)
	g.VisualEffectSystem = system.NewVisualEffectSystem()

	listener := NewGameEventListener(g.logger)
	g.EventDispatcher.Subscribe(listener, event.AllTypes...)

	g.logger.Info().
		Int64("seed", g.Rng.Seed()).
		Int("lives", settings.Lives).
		Int("enemies", settings.EnemyCount).
		Int("maxActive", settings.MaxActiveEnemies).
		Msg("Game created")

	g.Reset()
	return g, nil
}

// SetGameOverHandler заменяет обработчик итога
func (g *Game) SetGameOverHandler(h func(won bool, score int)) {
	g.onGameOver = h
}

func (g *Game) handleGameOver(won bool, score int) {
	if g.onGameOver != nil {
		g.onGameOver(won, score)
	}
}

// Reset начинает сессию заново: свежая арена, игрок и база на местах,
// счётчики по настройкам, пауза снята.
func (g *Game) Reset() {
	w := entity.NewWorld(g.arena.Clone())
	w.Lives = g.Settings.Lives
	w.EnemiesToSpawn = g.Settings.EnemyCount

	g.PlayerSystem.Spawn(w, 0)
	w.Base = &component.Base{
		ID:     w.NewEntity(),
		X:      config.BaseX,
		Y:      config.BaseY,
		Width:  config.BaseSize,
		Height: config.BaseSize,
		Health: config.BaseInitialHealth,
		Color:  config.BaseColor,
	}

	g.current.Store(w)
	g.hasLast = false
	g.isPaused = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset, Data: w.EnemiesRemaining()})
}

// Step выполняет один шаг на копии prev и возвращает её. prev не изменяется.
func (g *Game) Step(prev *entity.World, in component.Input, now, deltaTime float64) *entity.World {
	w := prev.Clone()
	w.GameTime = now
	if w.Status.IsTerminal() {
		return w
	}

	g.PlayerSystem.Update(w, now)
	g.MovementSystem.Update(w, in, deltaTime)
	g.CombatSystem.Update(w, in, now, deltaTime)
	g.SpawnSystem.Update(w, now)
	g.OutcomeSystem.Update(w, now)
	g.VisualEffectSystem.Update(w, now)
	return w
}

// Tick продвигает сессию ко времени now (секунды часов драйвера).
// На паузе и после конца игры только сдвигает точку отсчёта.
// Возвращает true, если снимок обновился.
func (g *Game) Tick(in component.Input, now float64) bool {
	if g.isPaused || g.Status().IsTerminal() {
		g.lastTime, g.hasLast = now, true
		return false
	}

	deltaTime := 0.0
	if g.hasLast {
		deltaTime = math.Max(0, now-g.lastTime)
	}
	g.lastTime, g.hasLast = now, true

	g.current.Store(g.Step(g.current.Load(), in, now, deltaTime))
	return true
}

func (g *Game) Pause() {
	g.isPaused = true
}

// Resume снимает паузу, время паузы в шаг не попадает
func (g *Game) Resume(now float64) {
	g.isPaused = false
	g.lastTime, g.hasLast = now, true
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Snapshot возвращает последний опубликованный снимок. Его нельзя изменять.
func (g *Game) Snapshot() *entity.World {
	return g.current.Load()
}

func (g *Game) Status() component.GameStatus {
	return g.current.Load().Status
}
