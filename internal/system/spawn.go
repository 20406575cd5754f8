// internal/system/spawn.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"image/color"
	"log"
)

// SpawnSystem превращает дескрипторы генератора в конкретные сущности и
// создает врагов по ходу игры (подкрепления босса).
type SpawnSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	difficulty *DifficultyManager
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, difficulty *DifficultyManager) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng, difficulty: difficulty}
}

// SpawnFromDescriptor создает врага из дескриптора комнаты.
func (s *SpawnSystem) SpawnFromDescriptor(desc dungeon.SpawnDescriptor, level int) types.EntityID {
	x, y := dungeon.TileCenter(desc.TX, desc.TY, config.TileSize)
	return s.SpawnEnemy(defs.EnemyTypeID(desc.EnemyType), x, y, level, desc.Boss)
}

// SpawnEnemy создает врага указанного типа с учетом масштабирования
// сложности, полосного модификатора, элитного и боссового повышения.
func (s *SpawnSystem) SpawnEnemy(enemyType defs.EnemyTypeID, x, y float64, level int, boss bool) types.EntityID {
	def, ok := defs.EnemyDefs[enemyType]
	if !ok {
		log.Printf("SpawnSystem: unknown enemy type %q, skipping", enemyType)
		return 0
	}
	if boss && !def.Heavy {
		log.Printf("SpawnSystem: %s is not a heavy type, demoting boss spawn", def.Name)
		boss = false
	}

	id := s.ecs.NewEntity()

	hp := s.difficulty.ScaleHP(def.Health, level)
	damage := s.difficulty.ScaleDamage(def.Damage, level)
	speed := s.difficulty.ScaleSpeed(def.Speed, level)

	enemy := &component.Enemy{
		Type:            def.ID,
		Damage:          damage,
		Speed:           speed,
		Radius:          def.Radius,
		DetectionRadius: def.DetectionRadius,
		XPValue:         def.XPValue,
		State:           component.StateIdle,
		StateTimer:      s.rng.Range(config.IdleTimeMin, config.IdleTimeMax),
		StrafeDir:       1,
	}

	if boss {
		// Боссовое повышение детерминировано: каждый десятый уровень.
		tier := s.difficulty.BossTier(level)
		if tier < 1 {
			tier = 1
		}
		enemy.IsBoss = true
		enemy.BossTier = tier
		hp *= config.BossHPMultPerTier * float64(tier)
		enemy.Damage *= config.BossDmgMultPerTier * float64(tier)
		enemy.Radius *= 1.5
	} else {
		// Полосный модификатор и независимый бросок на элитность.
		enemy.Banded = s.difficulty.BandFor(level)
		if enemy.Banded == defs.BandShielded {
			enemy.BandedShieldHits = 2
		}
		if enemy.Banded == defs.BandFast {
			enemy.Speed *= 1.3
		}
		if s.difficulty.RollElite(level) {
			enemy.IsElite = true
			enemy.EliteMods = s.difficulty.RollEliteMods()
			hp *= config.EliteStatMult
			enemy.Damage *= config.EliteStatMult
			if enemy.HasEliteMod(defs.EliteShielded) {
				enemy.EliteShieldHits = config.EliteShieldHits
			}
			if enemy.HasEliteMod(defs.EliteFrenzied) {
				enemy.Speed *= config.EliteFrenzyMult
			}
		}
	}

	s.ecs.Enemies[id] = enemy
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Renderables[id] = s.renderableFor(enemy)

	return id
}

func (s *SpawnSystem) renderableFor(enemy *component.Enemy) *component.Renderable {
	var col color.RGBA
	switch enemy.Type {
	case defs.EnemyGoblin:
		col = config.GoblinColor
	case defs.EnemyOgre:
		col = config.OgreColor
	case defs.EnemyArcher:
		col = config.ArcherColor
	case defs.EnemyWraith:
		col = config.WraithColor
	default:
		col = config.ColorGray
	}

	r := &component.Renderable{Color: col, Radius: float32(enemy.Radius), Alpha: 1}
	if enemy.IsBoss {
		r.HasStroke = true
		r.StrokeColor = config.BossStroke
	} else if enemy.IsElite {
		r.HasStroke = true
		r.StrokeColor = config.EliteStroke
	}
	return r
}

// SpawnCrate создает разрушаемый ящик на клетке.
func (s *SpawnSystem) SpawnCrate(tx, ty int) types.EntityID {
	id := s.ecs.NewEntity()
	x, y := dungeon.TileCenter(tx, ty, config.TileSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Crates[id] = &component.Crate{HP: 30}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.CrateColor, Radius: 12, Alpha: 1}
	return id
}

// SpawnChest создает супер-сундук в центре комнаты добычи.
func (s *SpawnSystem) SpawnChest(tx, ty int) types.EntityID {
	id := s.ecs.NewEntity()
	x, y := dungeon.TileCenter(tx, ty, config.TileSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Chests[id] = &component.SuperChest{}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.ChestColor, Radius: 13, Alpha: 1}
	return id
}

// SpawnPlayer создает сущность игрока со стартовым снаряжением.
func (s *SpawnSystem) SpawnPlayer(x, y float64) types.EntityID {
	id := s.ecs.NewEntity()

	weapons := make([]component.WeaponState, 0, len(defs.WeaponOrder))
	for _, wid := range defs.WeaponOrder {
		def := defs.WeaponDefs[wid]
		ws := component.WeaponState{DefID: wid, Ammo: def.AmmoMax}
		if !def.InfiniteAmmo {
			ws.Reserve = def.AmmoMax * config.ReserveClipsStart
		}
		weapons = append(weapons, ws)
	}

	s.ecs.Players[id] = &component.Player{
		MaxArmor:   config.PlayerMaxArmor,
		Stamina:    config.PlayerMaxStamina,
		MaxStamina: config.PlayerMaxStamina,
		Weapons:    weapons,
		Potions:    1,
		Perks:      make(map[defs.PerkID]int),
		BuffMult:   1,
	}
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHP, Max: config.PlayerMaxHP}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius, Alpha: 1}

	return id
}
