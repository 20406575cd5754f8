// internal/defs/types.go
package defs

import "image/color"

// EnemyTypeID identifies one of the enemy archetypes.
type EnemyTypeID string

const (
	EnemyGoblin EnemyTypeID = "GOBLIN"
	EnemyOgre   EnemyTypeID = "OGRE"
	EnemyArcher EnemyTypeID = "ARCHER"
	EnemyWraith EnemyTypeID = "WRAITH"
)

// BandedMod is the level-banded modifier applied to regular enemies.
// The variants are mutually exclusive; which one is rolled depends on the
// level range the enemy was spawned at.
type BandedMod string

const (
	BandNone      BandedMod = ""
	BandExploding BandedMod = "EXPLODING"
	BandShielded  BandedMod = "SHIELDED"
	BandFast      BandedMod = "FAST"
)

// EliteModID is one of the stacking elite modifiers. An elite enemy carries
// one or two of them.
type EliteModID string

const (
	EliteShielded   EliteModID = "SHIELDED_E"
	EliteExplosive  EliteModID = "EXPLOSIVE_E"
	EliteFrenzied   EliteModID = "FRENZIED"
	EliteRegen      EliteModID = "REGEN"
	ElitePhase      EliteModID = "PHASE"
	EliteReflective EliteModID = "REFLECTIVE"
)

// AllEliteMods is the draw pool for elite promotion.
var AllEliteMods = []EliteModID{
	EliteShielded, EliteExplosive, EliteFrenzied, EliteRegen, ElitePhase, EliteReflective,
}

// WeaponID identifies a weapon definition.
type WeaponID string

const (
	WeaponPistol  WeaponID = "PISTOL"
	WeaponShotgun WeaponID = "SHOTGUN"
	WeaponSMG     WeaponID = "SMG"
)

// PerkID identifies a stacking player perk.
type PerkID string

const (
	PerkDmg       PerkID = "DMG"
	PerkCrit      PerkID = "CRIT"
	PerkFireRate  PerkID = "FIRERATE"
	PerkMaxHP     PerkID = "MAXHP"
	PerkResist    PerkID = "RESIST"
	PerkPotion    PerkID = "POTION"
	PerkLifesteal PerkID = "LIFESTEAL"
	PerkSpeed     PerkID = "SPEED"
	PerkDashCD    PerkID = "DASHCD"
	PerkReload    PerkID = "RELOAD"
)

// ItemID identifies a pickup kind in drop tables.
const (
	ItemPotion = "POTION"
	ItemAmmo   = "AMMO"
	ItemArmor  = "ARMOR"
)

// Visuals holds the drawing parameters shared by definition kinds.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}
