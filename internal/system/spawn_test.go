package system

import (
	"testing"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawner(maxActive int) (*SpawnSystem, *recorder) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	s := NewSpawnSystem(utils.NewPRNGService(7), d, testLibrary().Enemy, maxActive, config.EnemySpawnPoints)
	return s, rec
}

func TestSpawnUpdate_CreatesEnemyAtSpawnPoint(t *testing.T) {
	w := newArena()
	s, rec := newSpawner(1)

	require.True(t, s.Update(w, 3))
	require.Len(t, w.Enemies, 1)
	e := w.Enemies[0]
	assert.Contains(t, config.EnemySpawnPoints, config.SpawnPoint{X: e.X, Y: e.Y})
	assert.Equal(t, component.Down, e.Direction)
	assert.Equal(t, component.RoleEnemy, e.Role)
	assert.Equal(t, config.TankInitialHealth, e.Health)
	assert.GreaterOrEqual(t, e.LastShotTime, 3.0)
	assert.Less(t, e.LastShotTime, 3.0+config.EnemyFireCooldown)
	assert.Equal(t, config.InitialEnemyCount-1, w.EnemiesToSpawn)
	assert.Equal(t, 1, rec.count(event.EnemySpawned))
}

func TestSpawnUpdate_RespectsCap(t *testing.T) {
	w := newArena()
	s, _ := newSpawner(2)

	for i := 0; i < 1000; i++ {
		s.Update(w, float64(i)*frame)
		require.LessOrEqual(t, len(w.Enemies), 2)
		// Враги уходят с точек, освобождая место
		for _, e := range w.Enemies {
			e.Y += 50
		}
		if i%100 == 0 && len(w.Enemies) > 0 {
			w.RemoveEnemy(0)
		}
	}
	assert.Len(t, w.Enemies, 2)
	assert.GreaterOrEqual(t, w.EnemiesToSpawn, 0)
}

func TestSpawnUpdate_StopsWhenNothingLeftToSpawn(t *testing.T) {
	w := newArena()
	w.EnemiesToSpawn = 0
	s, _ := newSpawner(3)

	assert.False(t, s.Update(w, 1))
	assert.Empty(t, w.Enemies)
	assert.Equal(t, 0, w.EnemiesToSpawn)
}

func TestSpawnUpdate_SkipsOccupiedPoints(t *testing.T) {
	w := newArena()
	s, _ := newSpawner(3)
	p0, p1, p2 := config.EnemySpawnPoints[0], config.EnemySpawnPoints[1], config.EnemySpawnPoints[2]
	addEnemy(w, p0.X+config.TankSize-1, p0.Y)
	// Игроку нужен зазор в полтора корпуса
	w.Player.X, w.Player.Y = p1.X, p1.Y+config.TankSize*1.4

	free := s.FreeSpawnPoints(w)
	assert.Equal(t, []config.SpawnPoint{p2}, free)

	require.True(t, s.Update(w, 1))
	last := w.Enemies[len(w.Enemies)-1]
	assert.Equal(t, p2.X, last.X)
	assert.Equal(t, p2.Y, last.Y)
}

func TestSpawnUpdate_ClearanceBoundaryIsFree(t *testing.T) {
	w := newArena()
	def := testLibrary().Enemy
	def.Size = 32
	s := NewSpawnSystem(utils.NewPRNGService(7), nil, def, 3, config.EnemySpawnPoints)
	p0 := config.EnemySpawnPoints[0]
	// Сосед ровно в одном корпусе от точки не мешает
	addEnemy(w, p0.X+32, p0.Y)
	w.Player = nil

	assert.Len(t, s.FreeSpawnPoints(w), len(config.EnemySpawnPoints))
}

func TestSpawnUpdate_AllPointsBlockedSkipsSilently(t *testing.T) {
	w := newArena()
	s, rec := newSpawner(5)
	for _, sp := range config.EnemySpawnPoints {
		addEnemy(w, sp.X, sp.Y)
	}
	before := w.EnemiesToSpawn

	assert.False(t, s.Update(w, 1))
	assert.Len(t, w.Enemies, len(config.EnemySpawnPoints))
	assert.Equal(t, before, w.EnemiesToSpawn)
	assert.Equal(t, 0, rec.count(event.EnemySpawned))
}
