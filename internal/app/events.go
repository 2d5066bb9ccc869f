// internal/app/events.go
package app

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/logging"

	"github.com/rs/zerolog"
)

// GameEventListener пишет события сессии в лог.
type GameEventListener struct {
	logger  zerolog.Logger
	sampled zerolog.Logger // для частых событий
}

func NewGameEventListener(logger zerolog.Logger) *GameEventListener {
	return &GameEventListener{
		logger:  logger,
		sampled: logging.Sampled(logger),
	}
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionReset:
		if remaining, ok := e.Data.(int); ok {
			l.logger.Info().Int("enemies", remaining).Msg("Session started")
		}
	case event.PlayerSpawned, event.EnemySpawned:
		if d, ok := e.Data.(event.TankData); ok {
			l.logger.Debug().
				Str("event", string(e.Type)).
				Uint64("id", uint64(d.ID)).
				Float64("x", d.X).
				Float64("y", d.Y).
				Float64("time", e.Time).
				Msg("Tank spawned")
		}
	case event.PlayerDestroyed:
		if d, ok := e.Data.(event.DestroyedData); ok {
			l.logger.Info().
				Uint64("killer", uint64(d.KillerID)).
				Int("livesLeft", d.LivesLeft).
				Float64("time", e.Time).
				Msg("Player destroyed")
		}
	case event.EnemyDestroyed:
		if d, ok := e.Data.(event.DestroyedData); ok {
			l.logger.Debug().
				Uint64("id", uint64(d.ID)).
				Uint64("killer", uint64(d.KillerID)).
				Int("score", d.Score).
				Msg("Enemy destroyed")
		}
	case event.BaseHit:
		if d, ok := e.Data.(event.TankData); ok {
			l.logger.Info().Int("health", d.Health).Msg("Base hit")
		}
	case event.TileDestroyed:
		if d, ok := e.Data.(event.TileData); ok {
			l.sampled.Debug().Int("row", d.Cell.Row).Int("col", d.Cell.Col).Msg("Tile destroyed")
		}
	case event.ProjectileFired, event.TileHit, event.PlayerHit, event.EnemyHit:
		l.sampled.Trace().Str("event", string(e.Type)).Float64("time", e.Time).Send()
	case event.GameOver:
		if d, ok := e.Data.(event.GameOverData); ok {
			status := component.StatusLost
			if d.Won {
				status = component.StatusWon
			}
			l.logger.Info().Str("status", status.String()).Int("score", d.Score).Msg("Game over")
		}
	}
}
