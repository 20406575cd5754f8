// internal/system/difficulty.go
package system

import (
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/utils"
	"math"
)

// DifficultyManager масштабирует статы врагов по уровню, решает вопросы
// элитного и боссового повышения и подкручивает шансы выпадения.
type DifficultyManager struct {
	rng *utils.PRNGService
}

func NewDifficultyManager(rng *utils.PRNGService) *DifficultyManager {
	return &DifficultyManager{rng: rng}
}

// ScaleHP возвращает здоровье врага на уровне level (геометрический рост).
func (d *DifficultyManager) ScaleHP(base float64, level int) float64 {
	return base * math.Pow(config.HPScaleBase, float64(level-1))
}

// ScaleDamage возвращает урон врага на уровне level.
func (d *DifficultyManager) ScaleDamage(base float64, level int) float64 {
	return base * math.Pow(config.DamageScaleBase, float64(level-1))
}

// ScaleSpeed возвращает скорость врага на уровне level. Множитель скорости
// ограничен сверху, иначе поздние уровни становятся нечитаемыми.
func (d *DifficultyManager) ScaleSpeed(base float64, level int) float64 {
	mult := math.Pow(config.SpeedScaleBase, float64(level-1))
	if mult > config.SpeedScaleCap {
		mult = config.SpeedScaleCap
	}
	return base * mult
}

// RollElite — независимый бросок Бернулли на элитность. До порогового
// уровня элита не встречается; дальше шанс растет и упирается в потолок.
func (d *DifficultyManager) RollElite(level int) bool {
	if level < config.EliteLevelGate {
		return false
	}
	chance := config.EliteChanceBase + config.EliteChancePerLvl*float64(level-config.EliteLevelGate)
	if chance > config.EliteChanceCap {
		chance = config.EliteChanceCap
	}
	return d.rng.Bool(chance)
}

// RollEliteMods выбирает 1-2 неповторяющихся элитных модификатора.
func (d *DifficultyManager) RollEliteMods() []defs.EliteModID {
	count := 1 + d.rng.Intn(2)
	pool := make([]defs.EliteModID, len(defs.AllEliteMods))
	copy(pool, defs.AllEliteMods)
	mods := make([]defs.EliteModID, 0, count)
	for i := 0; i < count; i++ {
		idx := d.rng.Intn(len(pool))
		mods = append(mods, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return mods
}

// BandFor возвращает модификатор уровневой полосы. Полоса определяет тип,
// сам модификатор достается не каждому врагу.
func (d *DifficultyManager) BandFor(level int) defs.BandedMod {
	var band defs.BandedMod
	switch {
	case level < 4:
		return defs.BandNone
	case level < 7:
		band = defs.BandExploding
	case level < 10:
		band = defs.BandShielded
	default:
		band = defs.BandFast
	}
	if !d.rng.Bool(0.3) {
		return defs.BandNone
	}
	return band
}

// BossTier возвращает ранг босса для уровня (каждый десятый уровень).
func (d *DifficultyManager) BossTier(level int) int {
	return level / config.BossLevelEvery
}

// RollDrop решает, выпадает ли предмет, и какой. Шанс зависит от того, был
// ли убийца элитой, и от доли здоровья игрока: ниже 30% шансы заметно круче.
func (d *DifficultyManager) RollDrop(killerElite bool, playerHPFrac float64) (string, bool) {
	chance := config.DropChanceBase
	if killerElite {
		chance = config.DropChanceElite
	}
	if playerHPFrac < config.LowHPFraction && chance < config.DropChanceLowHP {
		chance = config.DropChanceLowHP
	}
	if !d.rng.Bool(chance) {
		return "", false
	}
	return d.rng.ChooseWeighted(defs.EnemyDropTable), true
}
