// internal/system/combat.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/event"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"math"
)

// CombatGameContext определяет методы, которые CombatSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type CombatGameContext interface {
	PlayerID() types.EntityID
	TriggerHitStop(duration float64)
}

// CombatSystem — общая точка нанесения урона: порядок щитов у врагов,
// порядок смягчения у игрока, эффекты смерти и выпадение предметов.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	difficulty      *DifficultyManager
	game            CombatGameContext
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService,
	difficulty *DifficultyManager, game CombatGameContext) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: dispatcher,
		rng:             rng,
		difficulty:      difficulty,
		game:            game,
	}
}

// DamageEnemy наносит урон врагу. Порядок строго фиксирован: элитный щит →
// полосный щит → отражение → здоровье. fromPlayer управляет вампиризмом и
// отражением.
func (s *CombatSystem) DamageEnemy(id types.EntityID, damage float64, crit bool, kbX, kbY float64, fromPlayer bool) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dead {
		return
	}
	health := s.ecs.Healths[id]
	if health == nil {
		return
	}

	// 1. Элитный щит поглощает удар целиком, сколько бы урона в нем ни было.
	if enemy.EliteShieldHits > 0 {
		enemy.EliteShieldHits--
		s.flash(id)
		return
	}

	// 2. Полосный щит (SHIELDED) — то же самое, но от уровневой полосы.
	if enemy.Banded == defs.BandShielded && enemy.BandedShieldHits > 0 {
		enemy.BandedShieldHits--
		s.flash(id)
		return
	}

	// 3. Отражение: часть входящего урона возвращается игроку.
	if fromPlayer && enemy.HasEliteMod(defs.EliteReflective) {
		s.DamagePlayer(damage * config.EliteReflectFrac)
	}

	health.Value -= damage
	s.flash(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.HitData{ID: id, Damage: damage, Crit: crit}})

	// Отброс — импульс в вектор скорости.
	if vel := s.ecs.Velocities[id]; vel != nil && (kbX != 0 || kbY != 0) {
		vel.X += kbX
		vel.Y += kbY
	}

	// Вампиризм игрока.
	if fromPlayer {
		if player := s.ecs.Players[s.game.PlayerID()]; player != nil {
			if steal := player.PerkValue(defs.PerkLifesteal); steal > 0 {
				s.HealPlayer(damage * steal)
			}
		}
	}

	if health.Value <= 0 {
		s.KillEnemy(id)
	}
}

// KillEnemy помечает врага мертвым, выполняет эффекты смерти и удаляет
// сущность.
func (s *CombatSystem) KillEnemy(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dead {
		return
	}
	enemy.Dead = true

	pos := s.ecs.Positions[id]
	var x, y float64
	if pos != nil {
		x, y = pos.X, pos.Y
	}

	// Эффекты смерти: взрыв от полосного модификатора или элитного мода.
	if enemy.Banded == defs.BandExploding || enemy.HasEliteMod(defs.EliteExplosive) {
		s.SpawnExplosion(x, y)
	}

	// Выпадение предмета.
	playerHPFrac := 0.0
	if ph := s.ecs.Healths[s.game.PlayerID()]; ph != nil {
		playerHPFrac = ph.Fraction()
	}
	if itemID, ok := s.difficulty.RollDrop(enemy.IsElite, playerHPFrac); ok {
		s.SpawnItem(x, y, itemID)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{
		ID: id, X: x, Y: y,
		IsElite: enemy.IsElite, IsBoss: enemy.IsBoss,
		XPValue: enemy.XPValue,
	}})

	s.ecs.RemoveEntity(id)
}

// DamagePlayer проводит урон через цепочку смягчения игрока:
// неуязвимость → одноразовый щит → резист → броня → здоровье.
func (s *CombatSystem) DamagePlayer(damage float64) {
	playerID := s.game.PlayerID()
	player := s.ecs.Players[playerID]
	health := s.ecs.Healths[playerID]
	if player == nil || health == nil || damage <= 0 {
		return
	}

	// Рывок тоже дает кадры неуязвимости.
	if player.InvulnTimer > 0 || player.DashTimer > 0 {
		return
	}

	// Одноразовый щит гасит удар целиком.
	if player.ShieldCharges > 0 {
		player.ShieldCharges--
		return
	}

	// Процентное снижение от перка RESIST.
	resist := player.PerkValue(defs.PerkResist)
	if resist > 0.8 {
		resist = 0.8
	}
	damage *= 1 - resist

	// Броня принимает до 60% оставшегося урона, но не больше своего запаса.
	absorbed := math.Min(damage*config.ArmorAbsorbFraction, player.Armor)
	player.Armor -= absorbed
	damage -= absorbed

	health.Value -= damage
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.HitData{ID: playerID, Damage: damage}})

	// Сильный удар поднимает аварийный щит, если тот откатился.
	if damage > config.BigHitThreshold && player.InvulnCD <= 0 {
		player.InvulnTimer = config.EmergencyShieldTime
		player.InvulnCD = config.EmergencyShieldCD
	}

	if health.Value <= 0 {
		health.Value = 0
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// HealPlayer восстанавливает здоровье, не превышая максимум.
func (s *CombatSystem) HealPlayer(amount float64) {
	if health := s.ecs.Healths[s.game.PlayerID()]; health != nil {
		health.Value = math.Min(health.Value+amount, health.Max)
	}
}

// PlayerMelee выполняет дуговую атаку ближнего боя: все живые враги и ящики
// в радиусе и в пределах полуугла от направления взгляда получают урон и
// отброс. Любое попадание включает короткий хит-стоп.
func (s *CombatSystem) PlayerMelee(px, py, facing float64) {
	player := s.ecs.Players[s.game.PlayerID()]
	if player == nil {
		return
	}
	dmgMult := (1 + player.PerkValue(defs.PerkDmg)) * player.BuffMult
	damage := config.MeleeDamage * dmgMult

	hitAny := false
	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil || !s.inMeleeArc(px, py, facing, pos.X, pos.Y, enemy.Radius) {
			continue
		}
		kbX, kbY := utils.Normalize(pos.X-px, pos.Y-py)
		s.DamageEnemy(id, damage, false, kbX*config.MeleeKnockback, kbY*config.MeleeKnockback, true)
		hitAny = true
	}
	for id := range s.ecs.Crates {
		pos := s.ecs.Positions[id]
		if pos == nil || !s.inMeleeArc(px, py, facing, pos.X, pos.Y, config.TileSize/2) {
			continue
		}
		s.DamageCrate(id, damage)
		hitAny = true
	}

	if hitAny {
		s.game.TriggerHitStop(config.HitStopDuration)
	}
}

func (s *CombatSystem) inMeleeArc(px, py, facing, tx, ty, targetRadius float64) bool {
	if utils.DistSq(px, py, tx, ty) > (config.MeleeRange+targetRadius)*(config.MeleeRange+targetRadius) {
		return false
	}
	angle := math.Atan2(ty-py, tx-px)
	return math.Abs(utils.NormalizeAngle(angle-facing)) <= config.MeleeHalfAngle
}

// DamageCrate наносит урон ящику; разбитый ящик с шансом оставляет предмет.
func (s *CombatSystem) DamageCrate(id types.EntityID, damage float64) {
	crate, ok := s.ecs.Crates[id]
	if !ok {
		return
	}
	crate.HP -= damage
	s.flash(id)
	if crate.HP > 0 {
		return
	}
	pos := s.ecs.Positions[id]
	if pos != nil && s.rng.Bool(config.CrateDropChance) {
		s.SpawnItem(pos.X, pos.Y, s.rng.ChooseWeighted(defs.CrateDropTable))
	}
	s.ecs.RemoveEntity(id)
}

// SpawnExplosion создает взрыв: фиксированный радиус, урон по игроку один
// раз в момент появления. Враги взрывами не задеваются — осознанная
// асимметрия текущего дизайна.
func (s *CombatSystem) SpawnExplosion(x, y float64) {
	playerID := s.game.PlayerID()
	if pos := s.ecs.Positions[playerID]; pos != nil {
		if utils.DistSq(x, y, pos.X, pos.Y) <= config.ExplosionRadius*config.ExplosionRadius {
			s.DamagePlayer(config.ExplosionDamage)
		}
	}

	effectID := s.ecs.NewEntity()
	s.ecs.Positions[effectID] = &component.Position{X: x, Y: y}
	s.ecs.AoeEffects[effectID] = &component.AoeEffect{
		MaxRadius: config.ExplosionRadius,
		Duration:  config.ExplosionDuration,
		Color:     config.ExplosionColor,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.Explosion, Data: event.ExplosionData{X: x, Y: y, Radius: config.ExplosionRadius}})
}

// SpawnItem кладет предмет на пол.
func (s *CombatSystem) SpawnItem(x, y float64, itemID string) {
	var kind component.ItemKind
	var col = config.PotionColor
	switch itemID {
	case defs.ItemPotion:
		kind = component.ItemPotion
		col = config.PotionColor
	case defs.ItemAmmo:
		kind = component.ItemAmmo
		col = config.AmmoColor
	case defs.ItemArmor:
		kind = component.ItemArmor
		col = config.ArmorItemColor
	default:
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Items[id] = &component.Item{Kind: kind}
	s.ecs.Renderables[id] = &component.Renderable{Color: col, Radius: 6, Alpha: 1}
}

func (s *CombatSystem) flash(id types.EntityID) {
	s.ecs.DamageFlashes[id] = &component.DamageFlash{Duration: 0.12}
}
