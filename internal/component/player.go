// internal/component/player.go
package component

import "go-dungeon-crawler/internal/defs"

// WeaponState — состояние одного оружия игрока: независимый боезапас и
// таймер перезарядки.
type WeaponState struct {
	DefID       defs.WeaponID
	Ammo        int
	Reserve     int     // запас вне магазина; оружие с бесконечным боезапасом его не тратит
	ReloadTimer float64 // > 0 — идет перезарядка
}

// Player хранит все состояние игрока. Сущность одна, уничтожается только
// вместе с окончанием игры.
type Player struct {
	Facing float64 // угол прицеливания, радианы

	Armor      float64
	MaxArmor   float64
	Stamina    float64
	MaxStamina float64

	Weapons       []WeaponState
	ActiveWeapon  int
	FireCooldown  float64
	MeleeCooldown float64

	Potions int

	// Перки: количество стаков на каждый ID
	Perks map[defs.PerkID]int

	// Переходные статусы — явные обратные отсчеты, проверяются в начале кадра
	DashTimer     float64 // > 0 — рывок активен
	DashCooldown  float64
	DashDirX      float64
	DashDirY      float64
	ShieldCharges int     // одноразовый щит: полностью гасит один удар
	InvulnTimer   float64 // аварийная неуязвимость
	InvulnCD      float64
	StunTimer     float64
	BuffTimer     float64
	BuffMult      float64 // временный множитель урона, 1.0 без баффа

	XP    int
	Kills int
}

// PerkCount возвращает число стаков перка.
func (p *Player) PerkCount(id defs.PerkID) int {
	if p.Perks == nil {
		return 0
	}
	return p.Perks[id]
}

// PerkValue возвращает суммарный бонус перка с учетом убывающей отдачи.
func (p *Player) PerkValue(id defs.PerkID) float64 {
	def, ok := defs.PerkDefs[id]
	if !ok {
		return 0
	}
	return def.StackedValue(p.PerkCount(id))
}

// ActiveWeaponState возвращает состояние текущего оружия.
func (p *Player) ActiveWeaponState() *WeaponState {
	if len(p.Weapons) == 0 {
		return nil
	}
	return &p.Weapons[p.ActiveWeapon]
}
