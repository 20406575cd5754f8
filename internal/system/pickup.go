// internal/system/pickup.go
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

// PickupSystem подбирает лежащие на полу предметы, когда игрок их касается.
type PickupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	game            PlayerGameContext
}

func NewPickupSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, game PlayerGameContext) *PickupSystem {
	return &PickupSystem{ecs: ecs, eventDispatcher: dispatcher, game: game}
}

func (s *PickupSystem) Update(deltaTime float64) {
	pid := s.game.PlayerID()
	player, ok := s.ecs.Players[pid]
	if !ok {
		return
	}
	ppos := s.ecs.Positions[pid]
	hp := s.ecs.Healths[pid]
	if ppos == nil || hp == nil {
		return
	}

	pickRange := config.PlayerRadius + 8
	var collected []types.EntityID

	for id, item := range s.ecs.Items {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if utils.DistSq(ppos.X, ppos.Y, pos.X, pos.Y) > pickRange*pickRange {
			continue
		}
		if s.apply(player, hp, item.Kind) {
			collected = append(collected, id)
		}
	}

	for _, id := range collected {
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ItemPickedUp, Data: id})
	}
}

// apply возвращает false, если предмет игроку сейчас не нужен — тогда он
// остается лежать (полный запас зелий, полная броня).
func (s *PickupSystem) apply(player *component.Player, hp *component.Health, kind component.ItemKind) bool {
	switch kind {
	case component.ItemPotion:
		if player.Potions >= config.MaxPotions {
			return false
		}
		player.Potions += config.PotionAmount
	case component.ItemAmmo:
		// Патроны идут в резерв: сперва активному оружию, иначе первому
		// оружию с неполным резервом. Бесконечный боезапас не пополняется.
		ws := ammoTarget(player)
		if ws == nil {
			return false
		}
		reserveCap := defs.WeaponDefs[ws.DefID].AmmoMax * config.ReserveClipsCap
		gain := int(math.Ceil(float64(reserveCap) * config.AmmoPickupFraction))
		ws.Reserve = min(reserveCap, ws.Reserve+gain)
	case component.ItemArmor:
		if player.Armor >= player.MaxArmor {
			return false
		}
		player.Armor = math.Min(player.MaxArmor, player.Armor+config.ArmorPickupAmount)
	default:
		return false
	}
	return true
}

// ammoTarget выбирает оружие, чей резерв пополнит подобранный боезапас.
func ammoTarget(player *component.Player) *component.WeaponState {
	if ws := player.ActiveWeaponState(); ws != nil && reserveBelowCap(ws) {
		return ws
	}
	for i := range player.Weapons {
		if reserveBelowCap(&player.Weapons[i]) {
			return &player.Weapons[i]
		}
	}
	return nil
}

func reserveBelowCap(ws *component.WeaponState) bool {
	def := defs.WeaponDefs[ws.DefID]
	return !def.InfiniteAmmo && ws.Reserve < def.AmmoMax*config.ReserveClipsCap
}
