package system

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/defs"
	"go-tank-battle/internal/entity"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/types"
	"go-tank-battle/pkg/tilemap"
)

const frame = 1.0 / 60.0

// newArena — пустая арена 22×16 с игроком и базой на стандартных местах
func newArena() *entity.World {
	grid := tilemap.NewEmpty(config.ArenaRows, config.ArenaCols, config.TileSize, config.BrickHealth)
	w := entity.NewWorld(grid)
	w.PlayerID = w.NewEntity()
	w.Player = newTank(w.PlayerID, component.RolePlayer, config.PlayerSpawnX, config.PlayerSpawnY)
	w.Base = &component.Base{
		ID:     w.NewEntity(),
		X:      config.BaseX,
		Y:      config.BaseY,
		Width:  config.BaseSize,
		Height: config.BaseSize,
		Health: config.BaseInitialHealth,
	}
	w.Lives = config.PlayerStartLives
	w.EnemiesToSpawn = config.InitialEnemyCount
	return w
}

func newTank(id types.EntityID, role component.Role, x, y float64) *component.Tank {
	speed := config.PlayerTankSpeed
	if role == component.RoleEnemy {
		speed = config.EnemyTankSpeed
	}
	return &component.Tank{
		ID:           id,
		X:            x,
		Y:            y,
		Width:        config.TankSize,
		Height:       config.TankSize,
		Direction:    component.Up,
		Health:       config.TankInitialHealth,
		Role:         role,
		LastShotTime: -100,
		Speed:        speed,
	}
}

func addEnemy(w *entity.World, x, y float64) *component.Tank {
	e := newTank(w.NewEntity(), component.RoleEnemy, x, y)
	w.Enemies = append(w.Enemies, e)
	return e
}

func testLibrary() defs.Library {
	return defs.NewLibrary(config.Default())
}

// recorder собирает события по типам
type recorder struct {
	events []event.Event
}

func newRecorder(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.Subscribe(event.ListenerFunc(func(e event.Event) {
		r.events = append(r.events, e)
	}), event.AllTypes...)
	return r
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
