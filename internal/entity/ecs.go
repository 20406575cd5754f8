// internal/entity/ecs.go
package entity

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/types"
)

// ECS хранит все сущности и их компоненты в типизированных картах.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Crates        map[types.EntityID]*component.Crate
	Items         map[types.EntityID]*component.Item
	Chests        map[types.EntityID]*component.SuperChest
	DamageFlashes map[types.EntityID]*component.DamageFlash
	AoeEffects    map[types.EntityID]*component.AoeEffect
	Players       map[types.EntityID]*component.Player
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Crates:        make(map[types.EntityID]*component.Crate),
		Items:         make(map[types.EntityID]*component.Item),
		Chests:        make(map[types.EntityID]*component.SuperChest),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		AoeEffects:    make(map[types.EntityID]*component.AoeEffect),
		Players:       make(map[types.EntityID]*component.Player),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Crates, id)
	delete(ecs.Items, id)
	delete(ecs.Chests, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.AoeEffects, id)
	delete(ecs.Players, id)
}
