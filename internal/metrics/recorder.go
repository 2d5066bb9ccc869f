// internal/metrics/recorder.go
package metrics

import (
	"context"
	"fmt"
	"sync/atomic"

	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-tank-battle/internal/metrics"

// Meter возвращает meter глобального провайдера
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals — накопленные счётчики сессии
type Totals struct {
	ShotsFired     int64
	TilesDestroyed int64
	EnemiesKilled  int64
	PlayerDeaths   int64
	BaseHits       int64
	GamesWon       int64
	GamesLost      int64
}

// Recorder переводит события игры в метрики OpenTelemetry
// и параллельно считает итоги для вывода при выходе.
type Recorder struct {
	shots     metric.Int64Counter
	tiles     metric.Int64Counter
	kills     metric.Int64Counter
	deaths    metric.Int64Counter
	baseHits  metric.Int64Counter
	games     metric.Int64Counter
	score     metric.Int64ObservableGauge
	remaining metric.Int64ObservableGauge

	totals struct {
		shots, tiles, kills, deaths, baseHits, won, lost atomic.Int64
	}
}

// NewRecorder регистрирует инструменты. snapshot отдаёт текущий мир для
// наблюдаемых значений и может быть nil.
func NewRecorder(m metric.Meter, snapshot func() *entity.World) (*Recorder, error) {
	r := &Recorder{}
	var err error

	if r.shots, err = m.Int64Counter("tanks.projectiles.fired",
		metric.WithDescription("Projectiles fired by all tanks")); err != nil {
		return nil, fmt.Errorf("failed to create shots counter: %w", err)
	}
	if r.tiles, err = m.Int64Counter("tanks.tiles.destroyed",
		metric.WithDescription("Brick tiles destroyed")); err != nil {
		return nil, fmt.Errorf("failed to create tiles counter: %w", err)
	}
	if r.kills, err = m.Int64Counter("tanks.enemies.destroyed",
		metric.WithDescription("Enemy tanks destroyed")); err != nil {
		return nil, fmt.Errorf("failed to create kills counter: %w", err)
	}
	if r.deaths, err = m.Int64Counter("tanks.player.deaths",
		metric.WithDescription("Player tank losses")); err != nil {
		return nil, fmt.Errorf("failed to create deaths counter: %w", err)
	}
	if r.baseHits, err = m.Int64Counter("tanks.base.hits",
		metric.WithDescription("Hits taken by the base")); err != nil {
		return nil, fmt.Errorf("failed to create base hits counter: %w", err)
	}
	if r.games, err = m.Int64Counter("tanks.games.finished",
		metric.WithDescription("Finished sessions by result")); err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}

	if snapshot == nil {
		return r, nil
	}

	if r.score, err = m.Int64ObservableGauge("tanks.score",
		metric.WithDescription("Current session score")); err != nil {
		return nil, fmt.Errorf("failed to create score gauge: %w", err)
	}
	if r.remaining, err = m.Int64ObservableGauge("tanks.enemies.remaining",
		metric.WithDescription("Enemies left to spawn plus alive")); err != nil {
		return nil, fmt.Errorf("failed to create remaining gauge: %w", err)
	}
	_, err = m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		w := snapshot()
		if w == nil {
			return nil
		}
		o.ObserveInt64(r.score, int64(w.Score))
		o.ObserveInt64(r.remaining, int64(w.EnemiesRemaining()))
		return nil
	}, r.score, r.remaining)
	if err != nil {
		return nil, fmt.Errorf("failed to register gauge callback: %w", err)
	}
	return r, nil
}

// OnEvent реализует интерфейс event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.ProjectileFired:
		r.totals.shots.Add(1)
		r.shots.Add(ctx, 1)
	case event.TileDestroyed:
		r.totals.tiles.Add(1)
		r.tiles.Add(ctx, 1)
	case event.EnemyDestroyed:
		r.totals.kills.Add(1)
		r.kills.Add(ctx, 1)
	case event.PlayerDestroyed:
		r.totals.deaths.Add(1)
		r.deaths.Add(ctx, 1)
	case event.BaseHit:
		r.totals.baseHits.Add(1)
		r.baseHits.Add(ctx, 1)
	case event.GameOver:
		d, ok := e.Data.(event.GameOverData)
		if !ok {
			return
		}
		result := "lost"
		if d.Won {
			result = "won"
			r.totals.won.Add(1)
		} else {
			r.totals.lost.Add(1)
		}
		r.games.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}

// Subscribe подписывает Recorder на нужные события
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.Subscribe(r, event.ProjectileFired, event.TileDestroyed, event.EnemyDestroyed,
		event.PlayerDestroyed, event.BaseHit, event.GameOver)
}

// Totals возвращает накопленные значения
func (r *Recorder) Totals() Totals {
	return Totals{
		ShotsFired:     r.totals.shots.Load(),
		TilesDestroyed: r.totals.tiles.Load(),
		EnemiesKilled:  r.totals.kills.Load(),
		PlayerDeaths:   r.totals.deaths.Load(),
		BaseHits:       r.totals.baseHits.Load(),
		GamesWon:       r.totals.won.Load(),
		GamesLost:      r.totals.lost.Load(),
	}
}
