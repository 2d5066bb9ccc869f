// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigFileName — имя файла настроек, который ищется в каталоге конфигурации
const ConfigFileName = "tanks.cfg.json"

// Settings — настраиваемые параметры сессии
type Settings struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string `json:"logFile" mapstructure:"logFile"`
	Seed     int64  `json:"seed" mapstructure:"seed"`

	// Пустая строка — встроенная арена
	ArenaFile string `json:"arenaFile" mapstructure:"arenaFile"`

	Lives            int `json:"lives" mapstructure:"lives"`
	EnemyCount       int `json:"enemyCount" mapstructure:"enemyCount"`
	MaxActiveEnemies int `json:"maxActiveEnemies" mapstructure:"maxActiveEnemies"`

	PlayerSpeed        float64 `json:"playerSpeed" mapstructure:"playerSpeed"`
	EnemySpeed         float64 `json:"enemySpeed" mapstructure:"enemySpeed"`
	ProjectileSpeed    float64 `json:"projectileSpeed" mapstructure:"projectileSpeed"`
	PlayerFireCooldown float64 `json:"playerFireCooldown" mapstructure:"playerFireCooldown"`
	EnemyFireCooldown  float64 `json:"enemyFireCooldown" mapstructure:"enemyFireCooldown"`
	EnemyTurnChance    float64 `json:"enemyTurnChance" mapstructure:"enemyTurnChance"`
	EnemyFireChance    float64 `json:"enemyFireChance" mapstructure:"enemyFireChance"`

	Sound   bool `json:"sound" mapstructure:"sound"`
	Metrics bool `json:"metrics" mapstructure:"metrics"`
}

// Default возвращает настройки по умолчанию без обращения к viper
func Default() Settings {
	return Settings{
		LogLevel:           "info",
		LogFile:            "tankterm.log",
		Seed:               0,
		ArenaFile:          "",
		Lives:              PlayerStartLives,
		EnemyCount:         InitialEnemyCount,
		MaxActiveEnemies:   MaxActiveEnemies,
		PlayerSpeed:        PlayerTankSpeed,
		EnemySpeed:         EnemyTankSpeed,
		ProjectileSpeed:    ProjectileSpeed,
		PlayerFireCooldown: PlayerFireCooldown,
		EnemyFireCooldown:  EnemyFireCooldown,
		EnemyTurnChance:    EnemyTurnChance,
		EnemyFireChance:    EnemyFireChance,
		Sound:              true,
		Metrics:            true,
	}
}

// setDefaults регистрирует значения по умолчанию в viper
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("arenaFile", d.ArenaFile)
	v.SetDefault("lives", d.Lives)
	v.SetDefault("enemyCount", d.EnemyCount)
	v.SetDefault("maxActiveEnemies", d.MaxActiveEnemies)
	v.SetDefault("playerSpeed", d.PlayerSpeed)
	v.SetDefault("enemySpeed", d.EnemySpeed)
	v.SetDefault("projectileSpeed", d.ProjectileSpeed)
	v.SetDefault("playerFireCooldown", d.PlayerFireCooldown)
	v.SetDefault("enemyFireCooldown", d.EnemyFireCooldown)
	v.SetDefault("enemyTurnChance", d.EnemyTurnChance)
	v.SetDefault("enemyFireChance", d.EnemyFireChance)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("metrics", d.Metrics)
}

// Load читает tanks.cfg.json из configDir поверх значений по умолчанию.
// Отсутствующий файл не ошибка, битый файл или недопустимые значения — ошибка.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("TANKS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate проверяет значения, без которых сессию не запустить
func (s Settings) Validate() error {
	switch {
	case s.Lives < 1:
		return fmt.Errorf("invalid config: lives must be >= 1, got %d", s.Lives)
	case s.EnemyCount < 0:
		return fmt.Errorf("invalid config: enemyCount must be >= 0, got %d", s.EnemyCount)
	case s.MaxActiveEnemies < 1:
		return fmt.Errorf("invalid config: maxActiveEnemies must be >= 1, got %d", s.MaxActiveEnemies)
	case s.PlayerFireCooldown < 0 || s.EnemyFireCooldown < 0:
		return fmt.Errorf("invalid config: fire cooldowns must be >= 0")
	}
	return nil
}
