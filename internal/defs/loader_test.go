package defs

import (
	"os"
	"path/filepath"
	"testing"

	"go-tank-battle/internal/config"
	"go-tank-battle/pkg/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArena(t *testing.T) {
	arena := DefaultArena()
	require.NoError(t, tilemap.ValidateTemplate(arena, config.ArenaRows, config.ArenaCols))

	// клетка базы и клетки появления свободны
	assert.Equal(t, tilemap.Empty, arena[14][11])
	assert.Equal(t, tilemap.Empty, arena[14][7])
	assert.Equal(t, tilemap.Empty, arena[2][2])
	assert.Equal(t, tilemap.Empty, arena[2][11])
	assert.Equal(t, tilemap.Empty, arena[2][19])
	// кирпичная защита базы
	assert.Equal(t, tilemap.Brick, arena[13][11])
	assert.Equal(t, tilemap.Brick, arena[14][10])
	assert.Equal(t, tilemap.Brick, arena[14][12])

	// копия, а не общий срез
	arena[0][0] = tilemap.Empty
	assert.Equal(t, tilemap.Steel, DefaultArena()[0][0])
}

func TestLoadArena_EmptyPathIsDefault(t *testing.T) {
	arena, err := LoadArena("")
	require.NoError(t, err)
	assert.Equal(t, DefaultArena(), arena)
}

func writeArena(t *testing.T, rows [][]int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.json")
	data := `{"name":"test","rows":[`
	for r, row := range rows {
		if r > 0 {
			data += ","
		}
		data += "["
		for c, v := range row {
			if c > 0 {
				data += ","
			}
			data += string(rune('0' + v))
		}
		data += "]"
	}
	data += "]}"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadArena_FromFile(t *testing.T) {
	rows := make([][]int, config.ArenaRows)
	for r := range rows {
		rows[r] = make([]int, config.ArenaCols)
	}
	rows[5][5] = 1
	rows[0][0] = 2

	arena, err := LoadArena(writeArena(t, rows))
	require.NoError(t, err)
	assert.Equal(t, tilemap.Brick, arena[5][5])
	assert.Equal(t, tilemap.Steel, arena[0][0])
	assert.Equal(t, tilemap.Empty, arena[1][1])
}

func TestLoadArena_WrongSize(t *testing.T) {
	_, err := LoadArena(writeArena(t, [][]int{{0, 1}, {2, 0}}))
	require.Error(t, err)
	assert.ErrorIs(t, err, tilemap.ErrTemplateSize)
}

func TestLoadArena_UnknownKind(t *testing.T) {
	rows := make([][]int, config.ArenaRows)
	for r := range rows {
		rows[r] = make([]int, config.ArenaCols)
	}
	rows[3][3] = 9

	_, err := LoadArena(writeArena(t, rows))
	assert.ErrorIs(t, err, tilemap.ErrUnknownKind)
}

func TestLoadArena_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": [[0,`), 0644))

	_, err := LoadArena(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal arena")
}

func TestLoadArena_MissingFile(t *testing.T) {
	_, err := LoadArena(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLibrary(t *testing.T) {
	s := config.Default()
	s.EnemyFireCooldown = 3
	lib := NewLibrary(s)

	assert.Equal(t, config.PlayerTankSpeed, lib.Player.Speed)
	assert.Equal(t, 0.5, lib.Player.FireCooldown)
	assert.Equal(t, 3.0, lib.Enemy.FireCooldown)
	assert.Equal(t, config.TankInitialHealth, lib.Enemy.Health)
	assert.NotEqual(t, lib.Player.Color, lib.Enemy.Color)
}
