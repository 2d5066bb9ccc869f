// internal/config/config.go
package config

import "image/color"

const (
	TileSize    = 32.0 // пикселей
	ArenaRows   = 16
	ArenaCols   = 22
	ArenaWidth  = ArenaCols * TileSize
	ArenaHeight = ArenaRows * TileSize

	HUDHeight    = 48
	ScreenWidth  = int(ArenaWidth)
	ScreenHeight = int(ArenaHeight) + HUDHeight

	// Скорости подобраны под 60 шагов в секунду
	StepsPerSecond   = 60.0
	MaxDeltaTime     = 0.1 // драйверы не передают ядру шаг длиннее
	PlayerTankSpeed  = 2.0
	EnemyTankSpeed   = 0.6
	ProjectileSpeed  = 5.0
	TankSize         = TileSize * 0.9
	TurretLength     = TankSize * 0.7
	ProjectileWidth  = 6.0  // для вертикального полёта
	ProjectileHeight = 10.0 // для вертикального полёта

	PlayerStartLives  = 3
	InitialEnemyCount = 20
	MaxActiveEnemies  = 1

	PlayerFireCooldown = 0.5 // секунды
	EnemyFireCooldown  = 1.0 // секунды

	// Вероятности за один шаг при 60 шагах в секунду
	EnemyTurnChance = 0.015
	EnemyFireChance = 0.025

	TankInitialHealth = 3
	BrickHealth       = 1
	BaseInitialHealth = 3
	BaseSize          = TileSize
	EnemyKillScore    = 100

	ExplosionDuration = 0.4 // секунды
	ExplosionMaxSize  = TileSize * 1.2
	TileHitSize       = TileSize * 0.5

	// Игрок стартует слева от базы, база у нижнего края по центру
	PlayerSpawnX = TileSize * (ArenaCols/2 - 4)
	PlayerSpawnY = TileSize * (ArenaRows - 2)
	BaseX        = TileSize * (ArenaCols / 2)
	BaseY        = TileSize * (ArenaRows - 2)

	SpawnClearanceEnemy  = 1.0 // в размерах танка
	SpawnClearancePlayer = 1.5
)

// SpawnPoint — точка появления врага (левый верхний угол)
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawnPoints — клетки [2][2], [2][11], [2][19]
var EnemySpawnPoints = []SpawnPoint{
	{X: TileSize * 2, Y: TileSize * 2},
	{X: TileSize * (ArenaCols / 2), Y: TileSize * 2},
	{X: TileSize * (ArenaCols - 3), Y: TileSize * 2},
}

var (
	BackgroundColor     = color.RGBA{17, 24, 39, 255}
	HUDBackgroundColor  = color.RGBA{55, 65, 81, 255}
	TextColor           = color.RGBA{243, 244, 246, 255}
	PlayerTankColor     = color.RGBA{234, 179, 8, 255}
	EnemyTankColor      = color.RGBA{220, 38, 38, 255}
	ProjectileColor     = color.RGBA{250, 204, 21, 255}
	BrickColor          = color.RGBA{194, 65, 12, 255}
	SteelColor          = color.RGBA{107, 114, 128, 255}
	BaseColor           = color.RGBA{250, 204, 21, 255}
	BaseStrokeColor     = color.RGBA{202, 138, 4, 255}
	ExplosionColor      = color.RGBA{249, 115, 22, 255}
	TileExplosionColor  = color.RGBA{156, 163, 175, 255}
	BaseExplosionColor  = color.RGBA{185, 28, 28, 255}
	HeartColor          = color.RGBA{239, 68, 68, 255}
	HeartEmptyColor     = color.RGBA{156, 163, 175, 255}
	OverlayColor        = color.RGBA{0, 0, 0, 190}
	WinTextColor        = color.RGBA{74, 222, 128, 255}
	LoseTextColor       = color.RGBA{248, 113, 113, 255}
	PauseTitleColor     = color.RGBA{250, 204, 21, 255}
	TurretColorDarkenBy = 0.6
)
