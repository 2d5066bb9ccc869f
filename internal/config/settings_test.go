package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 42,
		"lives": 5,
		"maxActiveEnemies": 4,
		"enemyFireCooldown": 2.5,
		"sound": false
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 5, s.Lives)
	assert.Equal(t, 4, s.MaxActiveEnemies)
	assert.Equal(t, 2.5, s.EnemyFireCooldown)
	assert.False(t, s.Sound)
	// не заданные в файле ключи берутся из значений по умолчанию
	assert.Equal(t, InitialEnemyCount, s.EnemyCount)
	assert.Equal(t, PlayerFireCooldown, s.PlayerFireCooldown)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"lives": `), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"maxActiveEnemies": 0}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxActiveEnemies")
}

func TestValidate(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	s.Lives = 0
	assert.Error(t, s.Validate())

	s = Default()
	s.EnemyCount = -1
	assert.Error(t, s.Validate())

	s = Default()
	s.PlayerFireCooldown = -0.1
	assert.Error(t, s.Validate())
}

func TestArenaGeometry(t *testing.T) {
	assert.Equal(t, 704.0, ArenaWidth)
	assert.Equal(t, 512.0, ArenaHeight)
	assert.Equal(t, 224.0, PlayerSpawnX)
	assert.Equal(t, 448.0, PlayerSpawnY)
	assert.Equal(t, 352.0, BaseX)
	assert.Len(t, EnemySpawnPoints, 3)
}
