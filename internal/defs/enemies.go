// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Values are the level-1 baseline; the difficulty manager scales them.
type EnemyDefinition struct {
	ID              EnemyTypeID `json:"id"`
	Name            string      `json:"name"`
	Health          float64     `json:"health"`
	Damage          float64     `json:"damage"`
	Speed           float64     `json:"speed"`
	Radius          float64     `json:"radius"`
	DetectionRadius float64     `json:"detection_radius"`
	XPValue         int         `json:"xp_value"`
	Heavy           bool        `json:"heavy"` // тяжелый тип — кандидат на босса
}

// EnemyDefs is the library of all enemy definitions, mapped by their ID.
var EnemyDefs = map[EnemyTypeID]EnemyDefinition{
	EnemyGoblin: {
		ID: EnemyGoblin, Name: "Goblin",
		Health: 30, Damage: 8, Speed: 130, Radius: 9,
		DetectionRadius: 220, XPValue: 5,
	},
	EnemyOgre: {
		ID: EnemyOgre, Name: "Ogre",
		Health: 90, Damage: 18, Speed: 80, Radius: 15,
		DetectionRadius: 200, XPValue: 15, Heavy: true,
	},
	EnemyArcher: {
		ID: EnemyArcher, Name: "Skeleton Archer",
		Health: 24, Damage: 10, Speed: 100, Radius: 9,
		DetectionRadius: 300, XPValue: 8,
	},
	EnemyWraith: {
		ID: EnemyWraith, Name: "Shadow Wraith",
		Health: 40, Damage: 6, Speed: 95, Radius: 10,
		DetectionRadius: 260, XPValue: 12,
	},
}
