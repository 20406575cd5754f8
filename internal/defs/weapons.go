// internal/defs/weapons.go
package defs

// WeaponDefinition holds the static parameters of a player weapon.
type WeaponDefinition struct {
	ID           WeaponID `json:"id"`
	Name         string   `json:"name"`
	Damage       float64  `json:"damage"`
	FireRate     float64  `json:"fire_rate"` // выстрелов в секунду
	BulletSpeed  float64  `json:"bullet_speed"`
	AmmoMax      int      `json:"ammo_max"`
	PelletCount  int      `json:"pellet_count"`
	Spread       float64  `json:"spread"` // полуширина разброса, радианы
	Range        float64  `json:"range"`  // дальность в пикселях
	Knockback    float64  `json:"knockback"`
	ReloadTime   float64  `json:"reload_time"`
	InfiniteAmmo bool     `json:"infinite_ammo"` // пистолет — запасной вариант
}

// WeaponDefs is the library of all weapon definitions, mapped by their ID.
var WeaponDefs = map[WeaponID]WeaponDefinition{
	WeaponPistol: {
		ID: WeaponPistol, Name: "Pistol",
		Damage: 12, FireRate: 3.5, BulletSpeed: 420,
		AmmoMax: 12, PelletCount: 1, Spread: 0.04,
		Range: 380, Knockback: 60, ReloadTime: 0.9,
		InfiniteAmmo: true,
	},
	WeaponShotgun: {
		ID: WeaponShotgun, Name: "Shotgun",
		Damage: 7, FireRate: 1.1, BulletSpeed: 380,
		AmmoMax: 6, PelletCount: 6, Spread: 0.28,
		Range: 220, Knockback: 160, ReloadTime: 1.6,
	},
	WeaponSMG: {
		ID: WeaponSMG, Name: "SMG",
		Damage: 6, FireRate: 9.0, BulletSpeed: 460,
		AmmoMax: 30, PelletCount: 1, Spread: 0.09,
		Range: 320, Knockback: 30, ReloadTime: 1.2,
	},
}

// WeaponOrder — порядок переключения оружия.
var WeaponOrder = []WeaponID{WeaponPistol, WeaponShotgun, WeaponSMG}
