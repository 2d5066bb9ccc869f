// internal/event/types.go
package event

import (
	"go-tank-battle/internal/types"
	"go-tank-battle/pkg/tilemap"
)

const (
	SessionReset     EventType = "SessionReset"
	PlayerSpawned    EventType = "PlayerSpawned"
	EnemySpawned     EventType = "EnemySpawned"    // Враг появился
	ProjectileFired  EventType = "ProjectileFired" // Выстрел
	TileHit          EventType = "TileHit"
	TileDestroyed    EventType = "TileDestroyed" // Кирпич разрушен
	PlayerHit        EventType = "PlayerHit"
	PlayerDestroyed  EventType = "PlayerDestroyed"
	EnemyHit         EventType = "EnemyHit"
	EnemyDestroyed   EventType = "EnemyDestroyed" // Враг уничтожен
	BaseHit          EventType = "BaseHit"
	ExplosionSpawned EventType = "ExplosionSpawned"
	GameOver         EventType = "GameOver"
)

// AllTypes — все события, которые генерирует симуляция
var AllTypes = []EventType{
	SessionReset, PlayerSpawned, EnemySpawned, ProjectileFired,
	TileHit, TileDestroyed, PlayerHit, PlayerDestroyed,
	EnemyHit, EnemyDestroyed, BaseHit, ExplosionSpawned, GameOver,
}

// TankData — полезная нагрузка событий про танки и выстрелы
type TankData struct {
	ID     types.EntityID
	Health int
	X, Y   float64
}

// TileData — полезная нагрузка событий про клетки
type TileData struct {
	Cell tilemap.Cell
	Kind tilemap.Kind
}

// DestroyedData — уничтожение танка
type DestroyedData struct {
	ID        types.EntityID
	KillerID  types.EntityID
	Score     int // счёт после уничтожения
	LivesLeft int
}

// GameOverData — итог сессии
type GameOverData struct {
	Won   bool
	Score int
}
