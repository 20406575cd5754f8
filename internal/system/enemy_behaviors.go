// internal/system/enemy_behaviors.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/utils"
	"math"
)

// --- Гоблин: быстрый, серия из трех уколов, перекат от игрока ---

func goblinChase(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy
	reach := config.GoblinStabRange + e.Radius + config.PlayerRadius

	if ctx.dist <= reach && e.AttackCooldown <= 0 {
		e.State = component.StateSpecial
		e.BurstLeft = config.GoblinStabBurst
		e.BurstTimer = 0
		return
	}

	// Перекат перпендикулярно линии к игроку: дешевый способ уходить
	// от выстрелов без знания о снарядах.
	if e.DodgeTimer <= 0 && ctx.dist < 120 && s.rng.Bool(1.1*ctx.deltaTime) {
		dx, dy := utils.Normalize(ctx.px-ctx.pos.X, ctx.py-ctx.pos.Y)
		side := 1.0
		if s.rng.Bool(0.5) {
			side = -1.0
		}
		ctx.vel.X = -dy * side * config.GoblinDodgeSpeed
		ctx.vel.Y = dx * side * config.GoblinDodgeSpeed
		e.DodgeTimer = config.GoblinDodgeCD
		return
	}

	SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
}

func goblinSpecial(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy
	ctx.vel.X = utils.Lerp(ctx.vel.X, 0, 14*ctx.deltaTime)
	ctx.vel.Y = utils.Lerp(ctx.vel.Y, 0, 14*ctx.deltaTime)

	e.BurstTimer -= ctx.deltaTime
	if e.BurstTimer > 0 {
		return
	}
	if e.BurstLeft > 0 {
		reach := config.GoblinStabRange + e.Radius + config.PlayerRadius
		if ctx.dist <= reach {
			s.combat.DamagePlayer(e.Damage)
		}
		e.BurstLeft--
		e.BurstTimer = config.GoblinStabInterval
		return
	}
	e.AttackCooldown = config.GoblinAttackCD
	s.enterChase(e)
}

// --- Огр: медленный, удар с отбросом, замах АОЕ, отступает при малом HP ---

func ogreChase(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy

	// DodgeTimer у огра служит кулдауном отступления.
	if !e.IsBoss && ctx.hp.Fraction() < config.OgreRetreatHP && e.DodgeTimer <= 0 {
		e.DodgeTimer = 8
		s.enterRetreat(e)
		return
	}

	reach := config.OgreMeleeRange + e.Radius + config.PlayerRadius
	if ctx.dist <= reach && e.AttackCooldown <= 0 {
		s.combat.DamagePlayer(e.Damage)
		s.knockbackPlayer(ctx.pos.X, ctx.pos.Y, 280)
		e.AttackCooldown = config.OgreAttackCD
	}

	if e.SpecialCooldown <= 0 && ctx.dist > reach && ctx.dist < config.OgreSmashBand && ctx.hasLOS {
		e.State = component.StateSpecial
		e.SmashTelegraph = config.OgreSmashTelegraph
		e.SmashApplied = false
		return
	}

	SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
}

func ogreSpecial(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy
	ctx.vel.X = utils.Lerp(ctx.vel.X, 0, 8*ctx.deltaTime)
	ctx.vel.Y = utils.Lerp(ctx.vel.Y, 0, 8*ctx.deltaTime)

	e.SmashTelegraph -= ctx.deltaTime
	if e.SmashTelegraph > 0 {
		return
	}
	if !e.SmashApplied {
		e.SmashApplied = true
		if ctx.dist <= config.OgreSmashRadius+config.PlayerRadius {
			s.combat.DamagePlayer(e.Damage * 1.5)
			s.knockbackPlayer(ctx.pos.X, ctx.pos.Y, 360)
			s.stunPlayer(config.OgreSmashStun)
		}
		aoeID := s.ecs.NewEntity()
		s.ecs.Positions[aoeID] = &component.Position{X: ctx.pos.X, Y: ctx.pos.Y}
		s.ecs.AoeEffects[aoeID] = &component.AoeEffect{
			MaxRadius: config.OgreSmashRadius,
			Duration:  0.3,
			Color:     config.SmashColor,
		}
	}
	e.SpecialCooldown = config.OgreSmashCD
	e.AttackCooldown = config.OgreAttackCD
	s.enterChase(e)
}

// --- Лучник: держит дистанцию, стрейфит, стреляет с упреждением ---

func archerChase(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy

	switch {
	case ctx.dist > config.ArcherStandoff:
		SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
	case ctx.dist < config.ArcherMinRange:
		SteerAway(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
	default:
		// Стрейф по касательной, смена направления случайна и редка.
		if s.rng.Bool(0.5 * ctx.deltaTime) {
			e.StrafeDir = -e.StrafeDir
		}
		dx, dy := utils.Normalize(ctx.px-ctx.pos.X, ctx.py-ctx.pos.Y)
		speed := e.Speed * config.ArcherStrafeSpeed
		SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y,
			ctx.pos.X-dy*e.StrafeDir, ctx.pos.Y+dx*e.StrafeDir, speed, ctx.deltaTime)
	}

	if e.AttackCooldown <= 0 && ctx.hasLOS && ctx.dist < config.ArcherStandoff*1.3 {
		// Упреждение: целимся туда, где игрок окажется к прилету стрелы.
		flight := ctx.dist / config.EnemyBulletSpeed
		aimX := ctx.px + ctx.pvx*flight
		aimY := ctx.py + ctx.pvy*flight
		dirX, dirY := utils.Normalize(aimX-ctx.pos.X, aimY-ctx.pos.Y)
		s.projectiles.Spawn(ctx.pos.X, ctx.pos.Y, dirX, dirY,
			config.EnemyBulletSpeed, e.Damage, 520, 0, false, false)
		e.AttackCooldown = archerFireCooldown(s.game.Level())
	}
}

// archerFireCooldown сжимается с уровнем, но не ниже пола.
func archerFireCooldown(level int) float64 {
	return math.Max(0.9, config.ArcherBaseFireCD-0.05*float64(level))
}

// --- Призрак: телепорт к игроку, высасывание HP вблизи, разовая невидимость ---

func wraithUpdate(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy

	if !e.InvisUsed && ctx.hp.Fraction() < config.WraithInvisHP {
		e.InvisUsed = true
		e.InvisTimer = config.WraithInvisTime
	}

	e.DrainTimer = math.Max(0, e.DrainTimer-ctx.deltaTime)

	s.runStateMachine(ctx, enemyBehavior{chase: wraithChase})
}

func wraithChase(s *EnemySystem, ctx *aiContext) {
	e := ctx.enemy
	drainReach := config.WraithDrainRange + e.Radius + config.PlayerRadius

	if e.TeleportTimer <= 0 && ctx.dist > drainReach*2.5 {
		if s.teleportNear(ctx, ctx.px, ctx.py) {
			e.TeleportTimer = config.WraithTeleportCD
			return
		}
		e.TeleportTimer = 1 // ретрай скоро, а не через полный кулдаун
	}

	if ctx.dist <= drainReach {
		ctx.vel.X = utils.Lerp(ctx.vel.X, 0, 8*ctx.deltaTime)
		ctx.vel.Y = utils.Lerp(ctx.vel.Y, 0, 8*ctx.deltaTime)
		if e.DrainTimer <= 0 {
			s.combat.DamagePlayer(config.WraithDrainAmount)
			ctx.hp.Value = math.Min(ctx.hp.Max, ctx.hp.Value+config.WraithDrainAmount)
			e.DrainTimer = config.WraithDrainTick
		}
		return
	}

	speed := e.Speed
	if e.InvisTimer > 0 {
		speed *= 1.3
	}
	SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, speed, ctx.deltaTime)
}

// teleportNear ищет проходимую точку возле цели на кольце вокруг нее.
// Кандидаты только на полу: призрак не появляется в стене или пустоте.
func (s *EnemySystem) teleportNear(ctx *aiContext, tx, ty float64) bool {
	grid := s.game.Grid()
	for attempt := 0; attempt < 10; attempt++ {
		angle := s.rng.Float64() * 2 * math.Pi
		r := s.rng.Range(config.TileSize*2, config.WraithTeleportDist)
		nx := tx + math.Cos(angle)*r
		ny := ty + math.Sin(angle)*r
		if !grid.CircleBlocked(nx, ny, ctx.enemy.Radius, config.TileSize) {
			ctx.pos.X, ctx.pos.Y = nx, ny
			ctx.dist = utils.Dist(nx, ny, tx, ty)
			return true
		}
	}
	return false
}

// stunPlayer накладывает оглушение, не укорачивая уже идущее.
func (s *EnemySystem) stunPlayer(duration float64) {
	if player, ok := s.ecs.Players[s.game.PlayerID()]; ok && duration > player.StunTimer {
		player.StunTimer = duration
	}
}

func (s *EnemySystem) knockbackPlayer(fromX, fromY, power float64) {
	pid := s.game.PlayerID()
	ppos, ok := s.ecs.Positions[pid]
	if !ok {
		return
	}
	if pvel, ok := s.ecs.Velocities[pid]; ok {
		dx, dy := utils.Normalize(ppos.X-fromX, ppos.Y-fromY)
		pvel.X += dx * power
		pvel.Y += dy * power
	}
}
