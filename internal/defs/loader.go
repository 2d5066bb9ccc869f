// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-tank-battle/internal/config"
	"go-tank-battle/pkg/tilemap"
)

// LoadArena читает шаблон арены из JSON-файла и проверяет его размер.
// Пустой путь означает встроенную арену.
func LoadArena(path string) ([][]tilemap.Kind, error) {
	if path == "" {
		return DefaultArena(), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena file: %w", err)
	}

	var def ArenaDefinition
	if err := json.Unmarshal(file, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arena %s: %w", path, err)
	}

	kinds := def.Kinds()
	if err := tilemap.ValidateTemplate(kinds, config.ArenaRows, config.ArenaCols); err != nil {
		return nil, fmt.Errorf("invalid arena %q: %w", def.Name, err)
	}
	return kinds, nil
}
