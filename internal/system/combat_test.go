package system

import (
	"testing"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/types"
	"go-tank-battle/internal/utils"
	"go-tank-battle/pkg/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCombat(fireChance float64) (*CombatSystem, *recorder) {
	d := event.NewDispatcher()
	rec := newRecorder(d)
	return NewCombatSystem(utils.NewPRNGService(1), d, testLibrary(), config.ProjectileSpeed, fireChance), rec
}

// shoot кладёт снаряд в мир вручную
func shoot(w *entity.World, owner types.EntityID, x, y float64, dir component.Direction, speed float64) *component.Projectile {
	width, height := config.ProjectileWidth, config.ProjectileHeight
	if dir.Horizontal() {
		width, height = height, width
	}
	p := &component.Projectile{
		ID:        w.NewEntity(),
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Direction: dir,
		OwnerID:   owner,
		Speed:     speed,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func TestFire_PlacesProjectileAtMuzzle(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	tank := w.Player
	tank.X, tank.Y = 100, 100

	tank.Direction = component.Right
	p := s.Fire(w, tank, 0)
	require.NotNil(t, p)
	assert.InDelta(t, 100+config.TankSize/2+config.TurretLength, p.X, 1e-9)
	assert.InDelta(t, 100+config.TankSize/2-config.ProjectileWidth/2, p.Y, 1e-9)
	assert.Equal(t, config.ProjectileHeight, p.Width)
	assert.Equal(t, config.ProjectileWidth, p.Height)
	assert.Equal(t, tank.ID, p.OwnerID)

	tank.Direction = component.Up
	p = s.Fire(w, tank, 0)
	require.NotNil(t, p)
	assert.InDelta(t, 100+config.TankSize/2-config.TurretLength-config.ProjectileHeight, p.Y, 1e-9)
	assert.Equal(t, config.ProjectileWidth, p.Width)
	// Снаряд появляется за пределами корпуса
	assert.LessOrEqual(t, p.Rect().Bottom(), tank.Y)
}

func TestFire_Cooldown(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	tank := w.Player
	tank.LastShotTime = 10

	assert.Nil(t, s.Fire(w, tank, 10.3))
	assert.NotNil(t, s.Fire(w, tank, 10.5))
}

func TestCombatUpdate_TwoAttemptsWithinCooldownFireOnce(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	w.Player.X, w.Player.Y = 100, 300
	in := component.Input{Fire: true}

	s.Update(w, in, 10, frame)
	s.Update(w, in, 10.2, frame)
	assert.Equal(t, 1, rec.count(event.ProjectileFired))
	assert.Len(t, w.Projectiles, 1)
	assert.Equal(t, 10.0, w.Player.LastShotTime)

	s.Update(w, in, 10.6, frame)
	assert.Equal(t, 2, rec.count(event.ProjectileFired))
}

func TestCombatUpdate_EnemyFiresRandomlyWithCooldown(t *testing.T) {
	w := newArena()
	s, rec := newCombat(2)
	addEnemy(w, 300, 100)

	s.Update(w, component.Input{}, 5, frame)
	s.Update(w, component.Input{}, 5.5, frame)
	assert.Equal(t, 1, rec.count(event.ProjectileFired))

	s.Update(w, component.Input{}, 6, frame)
	assert.Equal(t, 2, rec.count(event.ProjectileFired))
}

func TestCombatUpdate_BrickScenario(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	// Клетка (5,5): x 160..192, y 160..192
	w.Grid.Set(tilemap.Cell{Row: 5, Col: 5}, tilemap.Brick)
	enemy := addEnemy(w, 400, 300)
	shoot(w, w.PlayerID, 152, 173, component.Right, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.Equal(t, tilemap.Empty, w.Grid.At(tilemap.Cell{Row: 5, Col: 5}).Kind)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, config.TankInitialHealth, w.Player.Health)
	assert.Equal(t, config.TankInitialHealth, enemy.Health)
	assert.Equal(t, config.BaseInitialHealth, w.Base.Health)
	assert.Equal(t, 1, rec.count(event.TileHit))
	assert.Equal(t, 1, rec.count(event.TileDestroyed))
	require.Len(t, w.Explosions, 1)
	assert.Equal(t, config.TileHitSize, w.Explosions[0].Size)
	assert.Equal(t, config.TileExplosionColor, w.Explosions[0].Color)
}

func TestCombatUpdate_WallShieldsTankBehindIt(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	// Клетка (5,7): x 224..256
	w.Grid.Set(tilemap.Cell{Row: 5, Col: 7}, tilemap.Brick)
	enemy := addEnemy(w, 256, 160)
	// За шаг снаряд пролетает 40 px: центр попадает в стену, а габарит уже задевает врага
	p := shoot(w, w.PlayerID, 210, 173, component.Right, 40)

	s.Update(w, component.Input{}, 1, frame)

	require.True(t, p.Rect().Right() > enemy.X)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, config.TankInitialHealth, enemy.Health)
	assert.Equal(t, tilemap.Empty, w.Grid.At(tilemap.Cell{Row: 5, Col: 7}).Kind)
	assert.Equal(t, 0, w.Score)
}

func TestCombatUpdate_SteelNeverChanges(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	cell := tilemap.Cell{Row: 5, Col: 5}
	w.Grid.Set(cell, tilemap.Steel)

	for i := 0; i < 5; i++ {
		shoot(w, w.PlayerID, 152, 173, component.Right, config.ProjectileSpeed)
		s.Update(w, component.Input{}, float64(i), frame)
		assert.Empty(t, w.Projectiles)
	}
	assert.Equal(t, tilemap.Steel, w.Grid.At(cell).Kind)
	assert.Equal(t, 5, rec.count(event.TileHit))
	assert.Equal(t, 0, rec.count(event.TileDestroyed))
}

func TestCombatUpdate_KillEnemyAddsScore(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	enemy := addEnemy(w, 300, 100)
	enemy.Health = 1
	shoot(w, w.PlayerID, 305, 120, component.Up, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, config.EnemyKillScore, w.Score)
	assert.Equal(t, 1, rec.count(event.EnemyDestroyed))
	require.Len(t, w.Explosions, 1)
	assert.Equal(t, config.EnemyTankColor, w.Explosions[0].Color)
}

func TestCombatUpdate_OneEnemyPerProjectile(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	first := addEnemy(w, 300, 100)
	second := addEnemy(w, 300, 100)
	shoot(w, w.PlayerID, 305, 120, component.Up, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.Equal(t, config.TankInitialHealth-1, first.Health)
	assert.Equal(t, config.TankInitialHealth, second.Health)
	assert.Equal(t, 0, w.Score)
}

func TestCombatUpdate_EnemyFireAlsoHitsOtherEnemies(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	shooter := addEnemy(w, 300, 300)
	target := addEnemy(w, 300, 100)
	target.Health = 1
	shoot(w, shooter.ID, 305, 120, component.Up, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	require.Len(t, w.Enemies, 1)
	assert.Equal(t, shooter.ID, w.Enemies[0].ID)
	assert.Equal(t, config.EnemyKillScore, w.Score)
}

func TestCombatUpdate_OwnerIsNeverHit(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	enemy := addEnemy(w, 300, 100)
	shoot(w, enemy.ID, 305, 120, component.Up, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.Equal(t, config.TankInitialHealth, enemy.Health)
	assert.Len(t, w.Projectiles, 1)
}

func TestCombatUpdate_PlayerDeath(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	enemy := addEnemy(w, 100, 100)
	w.Player.Health = 1
	px, py := w.Player.Center()
	shoot(w, enemy.ID, px-3, py, component.Down, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.Nil(t, w.Player)
	assert.Equal(t, config.PlayerStartLives-1, w.Lives)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 1, rec.count(event.PlayerHit))
	assert.Equal(t, 1, rec.count(event.PlayerDestroyed))
}

func TestCombatUpdate_OnlyEnemyFireDamagesBase(t *testing.T) {
	w := newArena()
	s, rec := newCombat(0)
	enemy := addEnemy(w, 100, 100)
	bx, by := w.Base.Center()

	own := shoot(w, w.PlayerID, bx-3, by, component.Up, config.ProjectileSpeed)
	s.Update(w, component.Input{}, 1, frame)
	assert.Equal(t, config.BaseInitialHealth, w.Base.Health)
	assert.Contains(t, w.Projectiles, own)

	w.Projectiles = nil
	shoot(w, enemy.ID, bx-3, by, component.Down, config.ProjectileSpeed)
	s.Update(w, component.Input{}, 2, frame)
	assert.Equal(t, config.BaseInitialHealth-1, w.Base.Health)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 1, rec.count(event.BaseHit))
}

func TestCombatUpdate_LeavingArenaRemovesProjectile(t *testing.T) {
	w := newArena()
	s, _ := newCombat(0)
	gone := shoot(w, w.PlayerID, -6, 100, component.Left, config.ProjectileSpeed)
	edge := shoot(w, w.PlayerID, -2, 100, component.Up, config.ProjectileSpeed)

	s.Update(w, component.Input{}, 1, frame)

	assert.NotContains(t, w.Projectiles, gone)
	assert.Contains(t, w.Projectiles, edge)
}

func TestCombatUpdate_ScoreNeverDecreases(t *testing.T) {
	w := newArena()
	s, _ := newCombat(2)
	w.Player.X, w.Player.Y = 300, 300
	addEnemy(w, 300, 100)
	addEnemy(w, 500, 100)

	last := w.Score
	for i := 0; i < 600; i++ {
		s.Update(w, component.Input{Fire: true}, float64(i)*frame, frame)
		require.GreaterOrEqual(t, w.Score, last)
		require.Zero(t, w.Score%config.EnemyKillScore)
		last = w.Score
		if w.Player == nil {
			break
		}
	}
}
