// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and overrides the
// in-code defaults in EnemyDefs. Missing file is an error; the caller decides
// whether the defaults are good enough.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		EnemyDefs[def.ID] = def
	}

	fmt.Printf("Loaded %d enemy definitions\n", len(enemyDefs))
	return nil
}

// LoadWeaponDefinitions reads a weapon configuration file and overrides the
// in-code defaults in WeaponDefs.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	for _, def := range weaponDefs {
		WeaponDefs[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(weaponDefs))
	return nil
}
