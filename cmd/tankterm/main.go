// cmd/tankterm/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	game "go-tank-battle/internal/app"
	"go-tank-battle/internal/audio"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/logging"
	"go-tank-battle/internal/metrics"
	"go-tank-battle/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const frameInterval = time.Second / config.StepsPerSecond

// terminalGame связывает экран tcell, клавиатуру и сессию
type terminalGame struct {
	screen   tcell.Screen
	game     *game.Game
	keyboard *term.Keyboard
	renderer *term.Renderer
	logger   zerolog.Logger

	overlay term.Overlay
	clock   float64 // игровые часы, стоят вне игры
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigFileName)
	flag.Parse()

	bootstrap := logging.Setup("info", os.Stderr, nil)
	settings, err := config.Load(*configDir)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("Failed to load settings")
	}

	// Экран занят игрой, поэтому лог пишется только в файл
	var logFile io.Writer
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			bootstrap.Fatal().Err(err).Str("path", settings.LogFile).Msg("Failed to open log file")
		}
		defer f.Close()
		logFile = f
	}
	logger := logging.Setup(settings.LogLevel, nil, logFile)

	template, err := defs.LoadArena(settings.ArenaFile)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("Failed to load arena")
	}
	g, err := game.NewGame(settings, template, game.WithLogger(logger))
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("Failed to create game")
	}

	var recorder *metrics.Recorder
	if settings.Metrics {
		if recorder, err = metrics.NewRecorder(metrics.Meter(), g.Snapshot); err != nil {
			bootstrap.Fatal().Err(err).Msg("Failed to create metrics recorder")
		}
		recorder.Subscribe(g.EventDispatcher)
	}

	if settings.Sound {
		sounds := audio.NewSoundManager(logger)
		if err := sounds.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Sound disabled")
		} else {
			defer sounds.Cleanup()
			sounds.Subscribe(g.EventDispatcher)
		}
	}

	if err := run(g, logger); err != nil {
		bootstrap.Fatal().Err(err).Msg("Terminal session failed")
	}

	if recorder != nil {
		printTotals(os.Stdout, recorder.Totals())
	}
}

// run владеет экраном: возвращается только после Fini
func run(g *game.Game, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	tg := &terminalGame{
		screen:   screen,
		game:     g,
		keyboard: term.NewKeyboard(term.DefaultHold),
		renderer: term.NewRenderer(screen),
		logger:   logger,
		overlay:  term.OverlayMenu,
	}
	tg.loop()
	return nil
}

func (tg *terminalGame) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := tg.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	tg.draw()
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				tg.screen.Sync()
				continue
			}
			if !tg.handleCommand(tg.keyboard.HandleEvent(ev, time.Now())) {
				return
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			tg.step(now, dt)
			tg.draw()
		}
	}
}

// step двигает игру, только пока нет надписи поверх арены
func (tg *terminalGame) step(now time.Time, dt float64) {
	if tg.overlay != term.OverlayNone {
		return
	}
	tg.clock += dt
	tg.game.Tick(tg.keyboard.Sample(now), tg.clock)
	if tg.game.Status().IsTerminal() {
		tg.overlay = term.OverlayGameOver
		tg.keyboard.Release()
	}
}

// handleCommand возвращает false, когда пора выходить
func (tg *terminalGame) handleCommand(cmd term.Command) bool {
	switch cmd {
	case term.CmdQuit:
		if tg.overlay == term.OverlayMenu {
			return false
		}
		tg.game.Pause()
		tg.keyboard.Release()
		tg.overlay = term.OverlayMenu
	case term.CmdPause:
		switch tg.overlay {
		case term.OverlayNone:
			tg.game.Pause()
			tg.keyboard.Release()
			tg.overlay = term.OverlayPause
		case term.OverlayPause:
			tg.game.Resume(tg.clock)
			tg.overlay = term.OverlayNone
		}
	case term.CmdEnter:
		if tg.overlay == term.OverlayMenu || tg.overlay == term.OverlayGameOver {
			tg.game.Reset()
			tg.overlay = term.OverlayNone
			tg.logger.Debug().Msg("New game from terminal")
		}
	}
	return true
}

func (tg *terminalGame) draw() {
	tg.renderer.Draw(tg.game.Snapshot(), tg.overlay)
	tg.screen.Show()
}

func printTotals(w io.Writer, t metrics.Totals) {
	fmt.Fprintf(w, "games won %d, lost %d\n", t.GamesWon, t.GamesLost)
	fmt.Fprintf(w, "shots %d, kills %d, tiles %d, deaths %d, base hits %d\n",
		t.ShotsFired, t.EnemiesKilled, t.TilesDestroyed, t.PlayerDeaths, t.BaseHits)
}
