// internal/defs/perks.go
package defs

import "math"

// PerkDefinition describes a stacking player perk with diminishing returns.
// The first stack contributes Magnitude, the n-th contributes
// Magnitude * DiminishBase^(n-1).
type PerkDefinition struct {
	ID           PerkID  `json:"id"`
	Name         string  `json:"name"`
	Magnitude    float64 `json:"magnitude"`
	DiminishBase float64 `json:"diminish_base"`
}

// PerkDefs is the library of all perk definitions, mapped by their ID.
var PerkDefs = map[PerkID]PerkDefinition{
	PerkDmg:       {ID: PerkDmg, Name: "Damage Up", Magnitude: 0.15, DiminishBase: 0.8},
	PerkCrit:      {ID: PerkCrit, Name: "Critical Chance", Magnitude: 0.08, DiminishBase: 0.75},
	PerkFireRate:  {ID: PerkFireRate, Name: "Fire Rate", Magnitude: 0.12, DiminishBase: 0.8},
	PerkMaxHP:     {ID: PerkMaxHP, Name: "Max HP", Magnitude: 20, DiminishBase: 0.85},
	PerkResist:    {ID: PerkResist, Name: "Resistance", Magnitude: 0.10, DiminishBase: 0.7},
	PerkPotion:    {ID: PerkPotion, Name: "Potion Power", Magnitude: 0.25, DiminishBase: 0.8},
	PerkLifesteal: {ID: PerkLifesteal, Name: "Lifesteal", Magnitude: 0.04, DiminishBase: 0.7},
	PerkSpeed:     {ID: PerkSpeed, Name: "Move Speed", Magnitude: 0.08, DiminishBase: 0.8},
	PerkDashCD:    {ID: PerkDashCD, Name: "Dash Cooldown", Magnitude: 0.12, DiminishBase: 0.75},
	PerkReload:    {ID: PerkReload, Name: "Fast Reload", Magnitude: 0.15, DiminishBase: 0.75},
}

// AllPerks — пул для выбора награды за уровень.
var AllPerks = []PerkID{
	PerkDmg, PerkCrit, PerkFireRate, PerkMaxHP, PerkResist,
	PerkPotion, PerkLifesteal, PerkSpeed, PerkDashCD, PerkReload,
}

// StackedValue returns the summed contribution of count stacks of the perk:
// Magnitude * (1 + b + b^2 + ... + b^(count-1)).
func (d PerkDefinition) StackedValue(count int) float64 {
	if count <= 0 {
		return 0
	}
	if d.DiminishBase == 1 {
		return d.Magnitude * float64(count)
	}
	// Сумма геометрической прогрессии
	return d.Magnitude * (1 - math.Pow(d.DiminishBase, float64(count))) / (1 - d.DiminishBase)
}
