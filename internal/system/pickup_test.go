// internal/system/pickup_test.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"math"
	"testing"
)

func newPickupWorld(t *testing.T) (*testWorld, *PickupSystem) {
	t.Helper()
	w := newTestWorld(t)
	return w, NewPickupSystem(w.ecs, w.dispatcher, w.game)
}

func dropItemAtPlayer(w *testWorld, kind component.ItemKind) {
	pos := w.ecs.Positions[w.game.playerID]
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	w.ecs.Items[id] = &component.Item{Kind: kind}
}

func TestAmmoPickupFillsActiveReserve(t *testing.T) {
	w, ps := newPickupWorld(t)
	player := w.player()
	player.ActiveWeapon = 1 // дробовик
	ws := player.ActiveWeaponState()
	ws.Reserve = 0

	dropItemAtPlayer(w, component.ItemAmmo)
	ps.Update(0.016)

	reserveCap := defs.WeaponDefs[ws.DefID].AmmoMax * config.ReserveClipsCap
	want := int(math.Ceil(float64(reserveCap) * config.AmmoPickupFraction))
	if ws.Reserve != want {
		t.Fatalf("reserve = %d, want %d", ws.Reserve, want)
	}
	if len(w.ecs.Items) != 0 {
		t.Fatal("collected item still on the floor")
	}
}

func TestAmmoPickupSkipsInfinitePistol(t *testing.T) {
	w, ps := newPickupWorld(t)
	player := w.player()
	// Активен пистолет: патроны уходят первому оружию с конечным резервом.
	player.Weapons[1].Reserve = 0

	dropItemAtPlayer(w, component.ItemAmmo)
	ps.Update(0.016)

	if player.Weapons[0].Reserve != 0 {
		t.Fatal("pistol reserve must stay empty")
	}
	if player.Weapons[1].Reserve == 0 {
		t.Fatal("finite weapon reserve not refilled")
	}
}

func TestAmmoPickupLeftOnFloorWhenReservesFull(t *testing.T) {
	w, ps := newPickupWorld(t)
	player := w.player()
	for i := range player.Weapons {
		def := defs.WeaponDefs[player.Weapons[i].DefID]
		if !def.InfiniteAmmo {
			player.Weapons[i].Reserve = def.AmmoMax * config.ReserveClipsCap
		}
	}

	dropItemAtPlayer(w, component.ItemAmmo)
	ps.Update(0.016)

	if len(w.ecs.Items) != 1 {
		t.Fatal("unneeded ammo must stay on the floor")
	}
}
