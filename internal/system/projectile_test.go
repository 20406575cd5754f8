// internal/system/projectile_test.go
package system

import (
	"go-dungeon-crawler/internal/config"
	"testing"
)

func newProjectileWorld(t *testing.T) (*testWorld, *ProjectileSystem) {
	t.Helper()
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher, w.combat)
	ps.SetGrid(w.game.grid)
	return w, ps
}

func TestPoolReusesSlotsAcrossCycles(t *testing.T) {
	w, ps := newProjectileWorld(t)
	_ = w

	// Несколько циклов "выстрелил — истек" суммарно больше емкости пула:
	// арена обязана переиспользовать ячейки, а не расти.
	for cycle := 0; cycle < 4; cycle++ {
		for i := 0; i < config.ProjectilePoolSize/2; i++ {
			// Дальность 1 пиксель — снаряд умирает на первом же тике
			ps.Spawn(480, 480, 1, 0, 100, 1, 1, 0, false, true)
		}
		ps.Update(0.1)
	}

	if got := ps.Capacity(); got != config.ProjectilePoolSize {
		t.Fatalf("pool grew to %d, want fixed %d", got, config.ProjectilePoolSize)
	}
	if got := ps.ActiveCount(); got != 0 {
		t.Fatalf("active = %d after all expired, want 0", got)
	}
	if got := ps.FreeCount(); got != config.ProjectilePoolSize {
		t.Fatalf("free = %d, want full pool %d", got, config.ProjectilePoolSize)
	}
}

func TestPoolGrowsOnOverflow(t *testing.T) {
	_, ps := newProjectileWorld(t)

	over := config.ProjectilePoolSize + 10
	for i := 0; i < over; i++ {
		ps.Spawn(480, 480, 1, 0, 10, 1, 10000, 0, false, true)
	}

	if got := ps.ActiveCount(); got != over {
		t.Fatalf("active = %d, want %d", got, over)
	}
	if got := ps.Capacity(); got != over {
		t.Fatalf("capacity = %d, want grown to %d", got, over)
	}
}

func TestActiveAndFreeNeverOverlap(t *testing.T) {
	_, ps := newProjectileWorld(t)

	for i := 0; i < 40; i++ {
		ps.Spawn(480, 480, 1, 0, 200, 1, 30, 0, false, true)
	}
	for step := 0; step < 10; step++ {
		ps.Update(0.05)
		if ps.ActiveCount()+ps.FreeCount() != ps.Capacity() {
			t.Fatalf("step %d: active(%d) + free(%d) != capacity(%d)",
				step, ps.ActiveCount(), ps.FreeCount(), ps.Capacity())
		}
	}
}

func TestProjectileStoppedByWall(t *testing.T) {
	_, ps := newProjectileWorld(t)

	// Выстрел в сторону внешней стены
	ps.Spawn(480, 480, -1, 0, 400, 1, 100000, 0, false, true)
	for i := 0; i < 200 && ps.ActiveCount() > 0; i++ {
		ps.Update(0.016)
	}
	if got := ps.ActiveCount(); got != 0 {
		t.Fatalf("projectile flew through wall, active = %d", got)
	}
}

func TestPlayerProjectileDamagesEnemy(t *testing.T) {
	w, ps := newProjectileWorld(t)
	id, _ := w.addEnemy(30, 560, 480)

	ps.Spawn(480, 480, 1, 0, 400, 12, 300, 0, false, true)
	for i := 0; i < 30; i++ {
		ps.Update(0.016)
	}

	if got := w.ecs.Healths[id].Value; got != 18 {
		t.Fatalf("enemy hp = %v, want 18 after one 12 damage hit", got)
	}
	if ps.ActiveCount() != 0 {
		t.Fatal("projectile must retire after hitting an enemy")
	}
}

func TestEnemyProjectileDamagesPlayer(t *testing.T) {
	w, ps := newProjectileWorld(t)
	w.player().Armor = 0
	ppos := w.ecs.Positions[w.game.playerID]

	ps.Spawn(ppos.X-80, ppos.Y, 1, 0, 400, 10, 300, 0, false, false)
	for i := 0; i < 30; i++ {
		ps.Update(0.016)
	}

	if got := w.playerHP().Value; got != config.PlayerMaxHP-10 {
		t.Fatalf("player hp = %v, want %v", got, config.PlayerMaxHP-10)
	}
}

func TestEnemyProjectileIgnoresEnemies(t *testing.T) {
	w, ps := newProjectileWorld(t)
	id, _ := w.addEnemy(30, 560, 480)

	// Вражеская стрела летит сквозь врага на той же линии
	ps.Spawn(520, 480, 1, 0, 400, 12, 200, 0, false, false)
	for i := 0; i < 40; i++ {
		ps.Update(0.016)
	}

	if got := w.ecs.Healths[id].Value; got != 30 {
		t.Fatalf("enemy hp = %v, enemy projectiles must not hit enemies", got)
	}
}

func TestSetGridRetiresActiveProjectiles(t *testing.T) {
	w, ps := newProjectileWorld(t)

	for i := 0; i < 20; i++ {
		ps.Spawn(480, 480, 1, 0, 100, 1, 10000, 0, false, true)
	}
	ps.SetGrid(w.game.grid)

	if got := ps.ActiveCount(); got != 0 {
		t.Fatalf("active = %d after level change, want 0", got)
	}
}
