// internal/system/player.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/event"
	"go-dungeon-crawler/internal/input"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"math"
)

// PlayerGameContext — узкий интерфейс для PlayerSystem.
type PlayerGameContext interface {
	Grid() *dungeon.Grid
	PlayerID() types.EntityID
}

// PlayerSystem обрабатывает ввод игрока: движение, рывок, стрельбу,
// ближний бой, зелья и перезарядку. Подписан на EnemyKilled ради счета
// опыта и убийств.
type PlayerSystem struct {
	ecs         *entity.ECS
	rng         *utils.PRNGService
	combat      *CombatSystem
	projectiles *ProjectileSystem
	game        PlayerGameContext
}

func NewPlayerSystem(ecs *entity.ECS, rng *utils.PRNGService, combat *CombatSystem,
	projectiles *ProjectileSystem, game PlayerGameContext) *PlayerSystem {
	return &PlayerSystem{
		ecs:         ecs,
		rng:         rng,
		combat:      combat,
		projectiles: projectiles,
		game:        game,
	}
}

func (s *PlayerSystem) Update(deltaTime float64, intent input.Intent) {
	pid := s.game.PlayerID()
	player, ok := s.ecs.Players[pid]
	if !ok {
		return
	}
	pos := s.ecs.Positions[pid]
	vel := s.ecs.Velocities[pid]
	hp := s.ecs.Healths[pid]
	if pos == nil || vel == nil || hp == nil {
		return
	}

	s.tickTimers(player, deltaTime)

	player.Facing = math.Atan2(intent.AimY-pos.Y, intent.AimX-pos.X)

	stunned := player.StunTimer > 0
	if !stunned {
		s.handleWeaponSwitch(player, intent)
		s.handleDash(player, intent)
		s.handleMovement(player, pos, vel, intent, deltaTime)
		s.handleReload(player, intent)
		s.handleFire(player, pos, intent)
		s.handleMelee(player, pos, intent)
		s.handlePotion(player, hp, intent)
	} else {
		// Оглушение: управление отключено, инерция гаснет.
		vel.X = utils.Lerp(vel.X, 0, 8*deltaTime)
		vel.Y = utils.Lerp(vel.Y, 0, 8*deltaTime)
	}

	if player.DashTimer <= 0 {
		player.Stamina = math.Min(player.MaxStamina, player.Stamina+config.StaminaRegenPerSec*deltaTime)
	}

	MoveWithCollision(s.game.Grid(), pos, vel, config.PlayerRadius, deltaTime)
}

// tickTimers — все переходные статусы игрока считаются вниз и зажимаются
// в нуле; никакой статус не уходит в минус.
func (s *PlayerSystem) tickTimers(player *component.Player, dt float64) {
	player.FireCooldown = math.Max(0, player.FireCooldown-dt)
	player.MeleeCooldown = math.Max(0, player.MeleeCooldown-dt)
	player.DashTimer = math.Max(0, player.DashTimer-dt)
	player.DashCooldown = math.Max(0, player.DashCooldown-dt)
	player.InvulnTimer = math.Max(0, player.InvulnTimer-dt)
	player.InvulnCD = math.Max(0, player.InvulnCD-dt)
	player.StunTimer = math.Max(0, player.StunTimer-dt)

	player.BuffTimer = math.Max(0, player.BuffTimer-dt)
	if player.BuffTimer <= 0 {
		player.BuffMult = 1
	}

	for i := range player.Weapons {
		ws := &player.Weapons[i]
		if ws.ReloadTimer > 0 {
			ws.ReloadTimer = math.Max(0, ws.ReloadTimer-dt)
			if ws.ReloadTimer <= 0 {
				finishReload(ws)
			}
		}
	}
}

// finishReload наполняет магазин из резерва. Оружие с бесконечным
// боезапасом (пистолет) резерв не трогает и заполняется всегда целиком.
func finishReload(ws *component.WeaponState) {
	def := defs.WeaponDefs[ws.DefID]
	if def.InfiniteAmmo {
		ws.Ammo = def.AmmoMax
		return
	}
	take := def.AmmoMax - ws.Ammo
	if take > ws.Reserve {
		take = ws.Reserve
	}
	ws.Ammo += take
	ws.Reserve -= take
}

// canReload: есть что досыпать и есть откуда.
func canReload(ws *component.WeaponState) bool {
	def := defs.WeaponDefs[ws.DefID]
	if ws.Ammo >= def.AmmoMax {
		return false
	}
	return def.InfiniteAmmo || ws.Reserve > 0
}

func (s *PlayerSystem) handleWeaponSwitch(player *component.Player, intent input.Intent) {
	if intent.WeaponSlot >= 0 && intent.WeaponSlot < len(player.Weapons) {
		player.ActiveWeapon = intent.WeaponSlot
	}
}

func (s *PlayerSystem) handleDash(player *component.Player, intent input.Intent) {
	if !intent.Dash || player.DashCooldown > 0 || player.Stamina < config.DashCost {
		return
	}
	dx, dy := intent.MoveX, intent.MoveY
	if dx == 0 && dy == 0 {
		dx, dy = math.Cos(player.Facing), math.Sin(player.Facing)
	}
	player.DashDirX, player.DashDirY = utils.Normalize(dx, dy)
	player.DashTimer = config.DashDuration
	player.DashCooldown = config.DashCooldown * (1 - player.PerkValue(defs.PerkDashCD))
	player.Stamina -= config.DashCost
}

func (s *PlayerSystem) handleMovement(player *component.Player, pos *component.Position,
	vel *component.Velocity, intent input.Intent, dt float64) {
	if player.DashTimer > 0 {
		vel.X = player.DashDirX * config.DashSpeed
		vel.Y = player.DashDirY * config.DashSpeed
		return
	}
	speed := config.PlayerSpeed * (1 + player.PerkValue(defs.PerkSpeed))
	// Плавное приближение к желаемой скорости: так внешние импульсы
	// (отброс от огра) гаснут, а не стираются перезаписью.
	vel.X = utils.Lerp(vel.X, intent.MoveX*speed, 18*dt)
	vel.Y = utils.Lerp(vel.Y, intent.MoveY*speed, 18*dt)
}

func (s *PlayerSystem) handleReload(player *component.Player, intent input.Intent) {
	ws := player.ActiveWeaponState()
	if ws == nil {
		return
	}
	if intent.Reload && ws.ReloadTimer <= 0 && canReload(ws) {
		ws.ReloadTimer = defs.WeaponDefs[ws.DefID].ReloadTime * (1 - player.PerkValue(defs.PerkReload))
	}
}

func (s *PlayerSystem) handleFire(player *component.Player, pos *component.Position, intent input.Intent) {
	if !intent.FireHeld || player.FireCooldown > 0 {
		return
	}
	ws := player.ActiveWeaponState()
	if ws == nil || ws.ReloadTimer > 0 {
		return
	}
	def := defs.WeaponDefs[ws.DefID]
	if ws.Ammo <= 0 {
		// Автоперезарядка по нажатию на пустом магазине; без резерва —
		// сухой щелчок, игрок переключается на пистолет сам.
		if canReload(ws) {
			ws.ReloadTimer = def.ReloadTime * (1 - player.PerkValue(defs.PerkReload))
		}
		return
	}

	// Крит решается один раз на активацию: все дробинки залпа критуют вместе.
	crit := s.rng.Bool(player.PerkValue(defs.PerkCrit))
	damage := def.Damage * (1 + player.PerkValue(defs.PerkDmg)) * player.BuffMult
	if crit {
		damage *= 1.5
	}

	for i := 0; i < def.PelletCount; i++ {
		angle := player.Facing + s.rng.Range(-def.Spread, def.Spread)
		s.projectiles.Spawn(pos.X, pos.Y, math.Cos(angle), math.Sin(angle),
			def.BulletSpeed, damage, def.Range, def.Knockback, crit, true)
	}

	ws.Ammo--
	player.FireCooldown = 1 / (def.FireRate * (1 + player.PerkValue(defs.PerkFireRate)))
	if ws.Ammo <= 0 && canReload(ws) {
		ws.ReloadTimer = def.ReloadTime * (1 - player.PerkValue(defs.PerkReload))
	}
}

func (s *PlayerSystem) handleMelee(player *component.Player, pos *component.Position, intent input.Intent) {
	if !intent.Melee || player.MeleeCooldown > 0 {
		return
	}
	s.combat.PlayerMelee(pos.X, pos.Y, player.Facing)
	player.MeleeCooldown = config.MeleeCooldown
}

func (s *PlayerSystem) handlePotion(player *component.Player, hp *component.Health, intent input.Intent) {
	if !intent.Potion || player.Potions <= 0 || hp.Value >= hp.Max {
		return
	}
	player.Potions--
	s.combat.HealPlayer(config.PotionHealBase * (1 + player.PerkValue(defs.PerkPotion)))
}

// OnEvent начисляет опыт и счет убийств. Убийство элиты или босса
// вдобавок дает короткий прилив урона.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.KillData)
	if !ok {
		return
	}
	if player, ok := s.ecs.Players[s.game.PlayerID()]; ok {
		player.XP += data.XPValue
		player.Kills++
		if data.IsElite || data.IsBoss {
			player.BuffMult = config.EliteKillBuffMult
			player.BuffTimer = config.EliteKillBuffTime
		}
	}
}
