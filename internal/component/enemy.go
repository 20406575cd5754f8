// internal/component/enemy.go
package component

import "go-dungeon-crawler/internal/defs"

// AIState — состояние конечного автомата врага.
type AIState uint8

const (
	StateIdle AIState = iota
	StatePatrol
	StateChase
	StateRetreat
	StateSpecial
)

func (s AIState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateRetreat:
		return "retreat"
	case StateSpecial:
		return "special"
	}
	return "?"
}

// Enemy представляет вражескую сущность. Поведение подтипа выбирается
// таблицей стратегий по полю Type, модификаторы — ортогональный слой.
type Enemy struct {
	Type defs.EnemyTypeID

	// Масштабированные статы (база из defs умноженная менеджером сложности)
	Damage          float64
	Speed           float64
	Radius          float64
	DetectionRadius float64
	XPValue         int

	// Конечный автомат
	State      AIState
	StateTimer float64
	HeadingX   float64 // медленно дрейфующее направление патруля
	HeadingY   float64

	// Общие таймеры атак (конкретное значение зависит от подтипа)
	AttackCooldown  float64
	SpecialCooldown float64

	// Гоблин: серия уколов и перекат
	BurstLeft  int
	BurstTimer float64
	DodgeTimer float64

	// Огр: замах АОЕ-удара
	SmashTelegraph float64 // оставшееся время замаха; 0 — замаха нет
	SmashApplied   bool    // урон применяется один раз за активацию

	// Лучник и призрак
	StrafeDir     float64 // +1 / -1
	TeleportTimer float64
	DrainTimer    float64
	InvisTimer    float64
	InvisUsed     bool

	// Слой модификаторов
	Banded           defs.BandedMod
	BandedShieldHits int // заряды поглощения для SHIELDED
	IsElite          bool
	EliteMods        []defs.EliteModID
	EliteShieldHits  int
	PhaseTimer       float64

	// Босс
	IsBoss       bool
	BossTier     int
	PhaseHalf    bool // фаза 50% уже сработала
	PhaseQuarter bool // фаза 25% уже сработала

	Dead bool
}

// HasEliteMod проверяет наличие элитного модификатора.
func (e *Enemy) HasEliteMod(mod defs.EliteModID) bool {
	for _, m := range e.EliteMods {
		if m == mod {
			return true
		}
	}
	return false
}
