// internal/system/projectile.go
package system

import (
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/event"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"log"
)

// projectileSlot — одна ячейка арены снарядов. Ячейка либо "в полете"
// (active), либо в списке свободных, но никогда в обоих состояниях сразу.
type projectileSlot struct {
	active     bool
	x, y       float64
	vx, vy     float64
	damage     float64
	knockback  float64
	crit       bool
	fromPlayer bool
	ttl        float64 // оставшееся время жизни, из дальности/скорости
}

// ProjectileSystem владеет ареной снарядов фиксированной емкости и
// обрабатывает их интеграцию и попадания. Индексные дескрипторы вместо
// переиспользования идентичности объектов.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	grid            *dungeon.Grid

	slots []projectileSlot
	free  []int
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, combatSystem *CombatSystem) *ProjectileSystem {
	s := &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: dispatcher,
		combatSystem:    combatSystem,
		slots:           make([]projectileSlot, config.ProjectilePoolSize),
		free:            make([]int, 0, config.ProjectilePoolSize),
	}
	for i := config.ProjectilePoolSize - 1; i >= 0; i-- {
		s.free = append(s.free, i)
	}
	return s
}

// SetGrid подключает карту текущего уровня и гасит все снаряды прошлого.
func (s *ProjectileSystem) SetGrid(grid *dungeon.Grid) {
	s.grid = grid
	for i := range s.slots {
		if s.slots[i].active {
			s.retire(i)
		}
	}
}

// Spawn берет ячейку из пула и запускает снаряд. Исчерпание пула не
// останавливает игру: арена расширяется свежей ячейкой.
func (s *ProjectileSystem) Spawn(x, y, dirX, dirY, speed, damage, rangePx, knockback float64, crit, fromPlayer bool) {
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		// Недостаток пула — деградируем в обычную аллокацию.
		log.Printf("ProjectileSystem: pool exhausted, growing arena to %d", len(s.slots)+1)
		s.slots = append(s.slots, projectileSlot{})
		idx = len(s.slots) - 1
	}

	nx, ny := utils.Normalize(dirX, dirY)
	s.slots[idx] = projectileSlot{
		active:     true,
		x:          x,
		y:          y,
		vx:         nx * speed,
		vy:         ny * speed,
		damage:     damage,
		knockback:  knockback,
		crit:       crit,
		fromPlayer: fromPlayer,
		ttl:        rangePx / speed,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for i := range s.slots {
		p := &s.slots[i]
		if !p.active {
			continue
		}

		p.ttl -= deltaTime
		if p.ttl <= 0 {
			s.retire(i)
			continue
		}

		nextX := p.x + p.vx*deltaTime
		nextY := p.y + p.vy*deltaTime

		// Следующая клетка карты: стена или пустота убивают снаряд.
		tx, ty := dungeon.WorldToTile(nextX, nextY, config.TileSize)
		if s.grid != nil && s.grid.BlocksSight(tx, ty) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileWall, Data: event.WallHitData{
				X: p.x, Y: p.y, DX: p.vx, DY: p.vy,
			}})
			s.retire(i)
			continue
		}

		p.x, p.y = nextX, nextY

		if s.hitEntities(i, p) {
			s.retire(i)
		}
	}
}

// hitEntities проверяет круг-круг против целей. Один снаряд не может задеть
// две цели в одном кадре: побеждает первое совпадение.
func (s *ProjectileSystem) hitEntities(idx int, p *projectileSlot) bool {
	if p.fromPlayer {
		for id, enemy := range s.ecs.Enemies {
			if enemy.Dead {
				continue
			}
			pos := s.ecs.Positions[id]
			if pos == nil {
				continue
			}
			r := enemy.Radius + config.ProjectileRadius
			if utils.DistSq(p.x, p.y, pos.X, pos.Y) <= r*r {
				kx, ky := utils.Normalize(p.vx, p.vy)
				s.combatSystem.DamageEnemy(id, p.damage, p.crit, kx*p.knockback, ky*p.knockback, true)
				return true
			}
		}
		for id := range s.ecs.Crates {
			pos := s.ecs.Positions[id]
			if pos == nil {
				continue
			}
			r := config.TileSize/2 + config.ProjectileRadius
			if utils.DistSq(p.x, p.y, pos.X, pos.Y) <= r*r {
				s.combatSystem.DamageCrate(id, p.damage)
				return true
			}
		}
		return false
	}

	playerID := s.combatSystem.game.PlayerID()
	pos := s.ecs.Positions[playerID]
	if pos == nil {
		return false
	}
	r := config.PlayerRadius + config.ProjectileRadius
	if utils.DistSq(p.x, p.y, pos.X, pos.Y) <= r*r {
		s.combatSystem.DamagePlayer(p.damage)
		return true
	}
	return false
}

// retire возвращает ячейку в пул. Повторный возврат одной ячейки — класс
// ошибок, от которого охраняет проверка active.
func (s *ProjectileSystem) retire(idx int) {
	if !s.slots[idx].active {
		return
	}
	s.slots[idx].active = false
	s.free = append(s.free, idx)
}

// ActiveCount возвращает число снарядов в полете.
func (s *ProjectileSystem) ActiveCount() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].active {
			n++
		}
	}
	return n
}

// FreeCount возвращает размер списка свободных ячеек.
func (s *ProjectileSystem) FreeCount() int {
	return len(s.free)
}

// Capacity возвращает текущий размер арены.
func (s *ProjectileSystem) Capacity() int {
	return len(s.slots)
}

// ForEach вызывает fn для каждого активного снаряда (для отрисовки).
func (s *ProjectileSystem) ForEach(fn func(x, y float64, fromPlayer bool)) {
	for i := range s.slots {
		if s.slots[i].active {
			fn(s.slots[i].x, s.slots[i].y, s.slots[i].fromPlayer)
		}
	}
}
