// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	game "go-tank-battle/internal/app"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/logging"
	"go-tank-battle/internal/metrics"
	"go-tank-battle/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine *state.StateMachine
	showTPS      bool
}

// Update вызывается ebiten с постоянной частотой, поэтому шаг фиксирован
func (a *AppGame) Update() error {
	a.stateMachine.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
	if a.showTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 4, config.ScreenHeight-16)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigFileName)
	flag.Parse()

	bootstrap := logging.Setup("info", os.Stderr, nil)
	settings, err := config.Load(*configDir)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("Failed to load settings")
	}
	logger := logging.Setup(settings.LogLevel, os.Stderr, nil)

	template, err := defs.LoadArena(settings.ArenaFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load arena")
	}

	g, err := game.NewGame(settings, template, game.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game")
	}

	var recorder *metrics.Recorder
	if settings.Metrics {
		recorder, err = metrics.NewRecorder(metrics.Meter(), g.Snapshot)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create metrics recorder")
		}
		recorder.Subscribe(g.EventDispatcher)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.NewSession(g)))
	appGame := &AppGame{
		stateMachine: sm,
		showTPS:      logger.GetLevel() <= zerolog.DebugLevel,
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tank Battle")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}

	if recorder != nil {
		logTotals(logger, recorder.Totals())
	}
}

func logTotals(logger zerolog.Logger, t metrics.Totals) {
	logger.Info().
		Int64("shots", t.ShotsFired).
		Int64("tiles", t.TilesDestroyed).
		Int64("kills", t.EnemiesKilled).
		Int64("deaths", t.PlayerDeaths).
		Int64("baseHits", t.BaseHits).
		Int64("won", t.GamesWon).
		Int64("lost", t.GamesLost).
		Msg("Session totals")
}
