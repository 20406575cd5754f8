// internal/system/enemy_ai.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"math"
)

// EnemyGameContext — узкий интерфейс для EnemySystem.
type EnemyGameContext interface {
	Grid() *dungeon.Grid
	PlayerID() types.EntityID
	Level() int
}

// EnemySystem гоняет конечные автоматы врагов. Поведение подтипа
// выбирается таблицей стратегий, а не иерархией типов: добавление
// нового врага — это новая строка таблицы.
type EnemySystem struct {
	ecs         *entity.ECS
	rng         *utils.PRNGService
	combat      *CombatSystem
	projectiles *ProjectileSystem
	spawner     *SpawnSystem
	game        EnemyGameContext

	behaviors map[defs.EnemyTypeID]enemyBehavior
}

// enemyBehavior — крючки подтипа. chase вызывается каждый кадр в
// состоянии погони; override (если задан) полностью заменяет автомат.
type enemyBehavior struct {
	chase    func(s *EnemySystem, ctx *aiContext)
	special  func(s *EnemySystem, ctx *aiContext)
	override func(s *EnemySystem, ctx *aiContext)
}

// aiContext — всё, что нужно крючку за один кадр.
type aiContext struct {
	id    types.EntityID
	enemy *component.Enemy
	pos   *component.Position
	vel   *component.Velocity
	hp    *component.Health

	px, py    float64 // позиция игрока
	pvx, pvy  float64 // скорость игрока (для упреждения)
	dist      float64
	hasLOS    bool
	deltaTime float64
}

func NewEnemySystem(ecs *entity.ECS, rng *utils.PRNGService, combat *CombatSystem,
	projectiles *ProjectileSystem, spawner *SpawnSystem, game EnemyGameContext) *EnemySystem {
	s := &EnemySystem{
		ecs:         ecs,
		rng:         rng,
		combat:      combat,
		projectiles: projectiles,
		spawner:     spawner,
		game:        game,
	}
	s.behaviors = map[defs.EnemyTypeID]enemyBehavior{
		defs.EnemyGoblin: {chase: goblinChase, special: goblinSpecial},
		defs.EnemyOgre:   {chase: ogreChase, special: ogreSpecial},
		defs.EnemyArcher: {chase: archerChase},
		defs.EnemyWraith: {override: wraithUpdate},
	}
	return s
}

func (s *EnemySystem) Update(deltaTime float64) {
	pid := s.game.PlayerID()
	ppos, ok := s.ecs.Positions[pid]
	if !ok {
		return
	}
	grid := s.game.Grid()

	for id, enemy := range s.ecs.Enemies {
		if enemy.Dead {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		hp := s.ecs.Healths[id]
		if pos == nil || vel == nil || hp == nil {
			continue
		}

		ctx := &aiContext{
			id:        id,
			enemy:     enemy,
			pos:       pos,
			vel:       vel,
			hp:        hp,
			px:        ppos.X,
			py:        ppos.Y,
			dist:      utils.Dist(pos.X, pos.Y, ppos.X, ppos.Y),
			deltaTime: deltaTime,
		}
		if pvel, ok := s.ecs.Velocities[pid]; ok {
			ctx.pvx, ctx.pvy = pvel.X, pvel.Y
		}
		ctx.hasLOS = grid.LineOfSight(pos.X, pos.Y, ppos.X, ppos.Y, config.TileSize)

		s.tickTimers(enemy, deltaTime)
		s.tickEliteMods(ctx)
		s.tickBossPhases(ctx)

		behavior := s.behaviors[enemy.Type]
		if behavior.override != nil {
			behavior.override(s, ctx)
		} else {
			s.runStateMachine(ctx, behavior)
		}

		blockedX, blockedY := MoveWithCollision(grid, pos, vel, enemy.Radius, deltaTime)
		if (blockedX || blockedY) && enemy.State == component.StatePatrol {
			// Увод вдоль стены, чтобы патруль не толкался в угол.
			angle := config.WallDriftAngle
			if s.rng.Bool(0.5) {
				angle = -angle
			}
			DriftVelocity(vel, angle)
			enemy.HeadingX, enemy.HeadingY = utils.Normalize(vel.X, vel.Y)
		}
	}
}

func (s *EnemySystem) tickTimers(enemy *component.Enemy, dt float64) {
	enemy.AttackCooldown = math.Max(0, enemy.AttackCooldown-dt)
	enemy.SpecialCooldown = math.Max(0, enemy.SpecialCooldown-dt)
	enemy.DodgeTimer = math.Max(0, enemy.DodgeTimer-dt)
	enemy.TeleportTimer = math.Max(0, enemy.TeleportTimer-dt)
	enemy.PhaseTimer = math.Max(0, enemy.PhaseTimer-dt)
	enemy.InvisTimer = math.Max(0, enemy.InvisTimer-dt)
}

// tickEliteMods обрабатывает постоянные эффекты элитных модификаторов.
// Порядок не важен: REGEN и PHASE независимы.
func (s *EnemySystem) tickEliteMods(ctx *aiContext) {
	e := ctx.enemy
	if !e.IsElite {
		return
	}
	if e.HasEliteMod(defs.EliteRegen) && ctx.hp.Value < ctx.hp.Max {
		ctx.hp.Value = math.Min(ctx.hp.Max, ctx.hp.Value+ctx.hp.Max*config.EliteRegenPerSec*ctx.deltaTime)
	}
	if e.HasEliteMod(defs.ElitePhase) && e.State == component.StateChase && e.PhaseTimer <= 0 && ctx.dist > 90 {
		if s.blinkToward(ctx, ctx.px, ctx.py, 70) {
			e.PhaseTimer = config.ElitePhaseCD
		}
	}
}

// tickBossPhases проверяет пороговые фазы босса. Каждая фаза срабатывает
// ровно один раз за жизнь босса.
func (s *EnemySystem) tickBossPhases(ctx *aiContext) {
	e := ctx.enemy
	if !e.IsBoss {
		return
	}
	frac := ctx.hp.Fraction()
	if !e.PhaseHalf && frac < 0.5 {
		e.PhaseHalf = true
		for i := 0; i < config.BossAddCount; i++ {
			angle := float64(i) / float64(config.BossAddCount) * 2 * math.Pi
			x := ctx.pos.X + math.Cos(angle)*config.TileSize*1.5
			y := ctx.pos.Y + math.Sin(angle)*config.TileSize*1.5
			if s.game.Grid().CircleBlocked(x, y, 9, config.TileSize) {
				x, y = ctx.pos.X, ctx.pos.Y
			}
			addID := s.spawner.SpawnEnemy(defs.EnemyGoblin, x, y, s.game.Level(), false)
			if add, ok := s.ecs.Enemies[addID]; ok {
				add.State = component.StateChase
			}
		}
	}
	if !e.PhaseQuarter && frac < 0.25 {
		e.PhaseQuarter = true
		e.Speed *= config.OgreRageSpeedMult
	}
}

func (s *EnemySystem) runStateMachine(ctx *aiContext, behavior enemyBehavior) {
	e := ctx.enemy
	e.StateTimer -= ctx.deltaTime

	detected := ctx.dist < e.DetectionRadius && ctx.hasLOS

	switch e.State {
	case component.StateIdle:
		ctx.vel.X = utils.Lerp(ctx.vel.X, 0, 10*ctx.deltaTime)
		ctx.vel.Y = utils.Lerp(ctx.vel.Y, 0, 10*ctx.deltaTime)
		if detected {
			s.enterChase(e)
		} else if e.StateTimer <= 0 {
			s.enterPatrol(ctx)
		}

	case component.StatePatrol:
		// Курс медленно дрейфует, маршрут не вырождается в прямую.
		drift := s.rng.Range(-config.PatrolDriftRate, config.PatrolDriftRate) * ctx.deltaTime
		sin, cos := math.Sin(drift), math.Cos(drift)
		e.HeadingX, e.HeadingY = e.HeadingX*cos-e.HeadingY*sin, e.HeadingX*sin+e.HeadingY*cos
		SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y,
			ctx.pos.X+e.HeadingX, ctx.pos.Y+e.HeadingY,
			e.Speed*config.PatrolSpeedScale, ctx.deltaTime)
		if detected {
			s.enterChase(e)
		} else if e.StateTimer <= 0 {
			e.State = component.StateIdle
			e.StateTimer = s.rng.Range(config.IdleTimeMin, config.IdleTimeMax)
		}

	case component.StateChase:
		// Потеря цели: далеко за радиусом обнаружения и без прямой видимости.
		if ctx.dist > e.DetectionRadius*1.6 && !ctx.hasLOS {
			e.State = component.StateIdle
			e.StateTimer = s.rng.Range(config.IdleTimeMin, config.IdleTimeMax)
			return
		}
		if behavior.chase != nil {
			behavior.chase(s, ctx)
		} else {
			SteerToward(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
		}

	case component.StateRetreat:
		SteerAway(ctx.vel, ctx.pos.X, ctx.pos.Y, ctx.px, ctx.py, e.Speed, ctx.deltaTime)
		if e.StateTimer <= 0 {
			s.enterChase(e)
		}

	case component.StateSpecial:
		if behavior.special != nil {
			behavior.special(s, ctx)
		} else {
			s.enterChase(e)
		}
	}
}

func (s *EnemySystem) enterChase(e *component.Enemy) {
	e.State = component.StateChase
	e.StateTimer = 0
}

func (s *EnemySystem) enterPatrol(ctx *aiContext) {
	e := ctx.enemy
	e.State = component.StatePatrol
	e.StateTimer = s.rng.Range(config.PatrolTimeMin, config.PatrolTimeMax)
	angle := s.rng.Float64() * 2 * math.Pi
	e.HeadingX, e.HeadingY = math.Cos(angle), math.Sin(angle)
}

func (s *EnemySystem) enterRetreat(e *component.Enemy) {
	e.State = component.StateRetreat
	e.StateTimer = config.RetreatTime
}

// blinkToward мгновенно переносит врага в проходимую точку на пути к
// цели, не ближе minDist до нее. Возвращает false, если проходимой
// точки не нашлось.
func (s *EnemySystem) blinkToward(ctx *aiContext, tx, ty, minDist float64) bool {
	grid := s.game.Grid()
	dx, dy := utils.Normalize(tx-ctx.pos.X, ty-ctx.pos.Y)
	for step := ctx.dist - minDist; step > config.TileSize; step -= config.TileSize {
		nx := ctx.pos.X + dx*step
		ny := ctx.pos.Y + dy*step
		if !grid.CircleBlocked(nx, ny, ctx.enemy.Radius, config.TileSize) {
			ctx.pos.X, ctx.pos.Y = nx, ny
			ctx.dist = utils.Dist(nx, ny, tx, ty)
			return true
		}
	}
	return false
}
