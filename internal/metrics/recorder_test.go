package metrics

import (
	"testing"

	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestRecorder_CountsEvents(t *testing.T) {
	r, err := NewRecorder(noop.NewMeterProvider().Meter("test"), func() *entity.World { return nil })
	require.NoError(t, err)

	d := event.NewDispatcher()
	r.Subscribe(d)

	for i := 0; i < 3; i++ {
		d.Dispatch(event.Event{Type: event.ProjectileFired})
	}
	d.Dispatch(event.Event{Type: event.TileDestroyed})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	d.Dispatch(event.Event{Type: event.PlayerDestroyed})
	d.Dispatch(event.Event{Type: event.BaseHit})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Won: true, Score: 200}})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Won: false}})
	// Событие без данных не считается
	d.Dispatch(event.Event{Type: event.GameOver})
	// Неподписанные типы игнорируются
	d.Dispatch(event.Event{Type: event.TileHit})

	assert.Equal(t, Totals{
		ShotsFired:     3,
		TilesDestroyed: 1,
		EnemiesKilled:  2,
		PlayerDeaths:   1,
		BaseHits:       1,
		GamesWon:       1,
		GamesLost:      1,
	}, r.Totals())
}

func TestRecorder_WithoutSnapshot(t *testing.T) {
	r, err := NewRecorder(noop.NewMeterProvider().Meter("test"), nil)
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.ProjectileFired})
	assert.Equal(t, int64(1), r.Totals().ShotsFired)
}

func TestMeter_GlobalProvider(t *testing.T) {
	_, err := NewRecorder(Meter(), nil)
	assert.NoError(t, err)
}
