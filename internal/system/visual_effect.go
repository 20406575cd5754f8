// internal/system/visual_effect.go
package system

import (
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/types"
)

// VisualEffectSystem отсчитывает время визуальных эффектов и убирает
// истекшие. Никакой игровой логики здесь нет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	var expired []types.EntityID
	for id, aoe := range s.ecs.AoeEffects {
		aoe.CurrentTimer += deltaTime
		if aoe.CurrentTimer >= aoe.Duration {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}
