// internal/system/enemy_ai_test.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"math"
	"testing"
)

func newAIWorld(t *testing.T) (*testWorld, *EnemySystem) {
	t.Helper()
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher, w.combat)
	ps.SetGrid(w.game.grid)
	es := NewEnemySystem(w.ecs, w.rng, w.combat, ps, w.spawner, w.game)
	return w, es
}

func countByType(w *testWorld, id defs.EnemyTypeID) int {
	n := 0
	for _, e := range w.ecs.Enemies {
		if e.Type == id {
			n++
		}
	}
	return n
}

func TestIdleEnemySpotsPlayerInLineOfSight(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	_, enemy := w.addEnemy(30, ppos.X+100, ppos.Y) // в радиусе обнаружения, стен нет
	enemy.State = component.StateIdle
	enemy.StateTimer = 10

	es.Update(0.016)

	if enemy.State != component.StateChase {
		t.Fatalf("state = %v, want chase", enemy.State)
	}
}

func TestEnemyOutOfSightStaysIdle(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	// Стена между врагом и игроком
	grid := w.game.grid
	for y := 1; y < 29; y++ {
		grid.Tiles[y][18] = dungeon.TileWall
	}

	_, enemy := w.addEnemy(30, 20*config.TileSize, ppos.Y)
	enemy.State = component.StateIdle
	enemy.StateTimer = 10

	es.Update(0.016)

	if enemy.State != component.StateIdle {
		t.Fatalf("state = %v, want idle behind a wall", enemy.State)
	}
}

func TestBossSpawnsAddsExactlyOnce(t *testing.T) {
	w, es := newAIWorld(t)

	bossID := w.spawner.SpawnEnemy(defs.EnemyOgre, 700, 700, 10, true)
	boss := w.ecs.Enemies[bossID]
	bossHP := w.ecs.Healths[bossID]

	bossHP.Value = bossHP.Max * 0.4
	es.Update(0.016)

	if !boss.PhaseHalf {
		t.Fatal("50% phase did not trigger")
	}
	if got := countByType(w, defs.EnemyGoblin); got != config.BossAddCount {
		t.Fatalf("boss adds = %d, want %d", got, config.BossAddCount)
	}

	// Фаза не должна повторяться ни на последующих тиках, ни после лечения
	for i := 0; i < 10; i++ {
		es.Update(0.016)
	}
	bossHP.Value = bossHP.Max * 0.9
	es.Update(0.016)
	bossHP.Value = bossHP.Max * 0.3
	es.Update(0.016)

	if got := countByType(w, defs.EnemyGoblin); got != config.BossAddCount {
		t.Fatalf("boss adds after re-cross = %d, want still %d", got, config.BossAddCount)
	}
}

func TestBossRagePhaseBoostsSpeedOnce(t *testing.T) {
	w, es := newAIWorld(t)

	bossID := w.spawner.SpawnEnemy(defs.EnemyOgre, 700, 700, 10, true)
	boss := w.ecs.Enemies[bossID]
	baseSpeed := boss.Speed

	w.ecs.Healths[bossID].Value = w.ecs.Healths[bossID].Max * 0.2
	es.Update(0.016)

	want := baseSpeed * config.OgreRageSpeedMult
	if boss.Speed != want {
		t.Fatalf("rage speed = %v, want %v", boss.Speed, want)
	}

	es.Update(0.016)
	if boss.Speed != want {
		t.Fatal("rage must not stack on repeated ticks")
	}
}

func TestWraithTeleportLandsOnWalkableTile(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	id, enemy := w.addEnemy(40, ppos.X+380, ppos.Y)
	enemy.Type = defs.EnemyWraith
	enemy.State = component.StateChase
	enemy.TeleportTimer = 0
	enemy.DetectionRadius = 2000 // не терять цель в тесте

	es.Update(0.016)

	pos := w.ecs.Positions[id]
	if enemy.TeleportTimer <= 0 {
		t.Fatal("teleport did not fire")
	}
	if w.game.grid.CircleBlocked(pos.X, pos.Y, enemy.Radius, config.TileSize) {
		t.Fatal("wraith teleported into a blocked tile")
	}
	if utils.Dist(pos.X, pos.Y, ppos.X, ppos.Y) > config.WraithTeleportDist+config.TileSize {
		t.Fatalf("wraith landed too far from the player: %v", utils.Dist(pos.X, pos.Y, ppos.X, ppos.Y))
	}
}

func TestWraithInvisibilityTriggersOnce(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	id, enemy := w.addEnemy(40, ppos.X+60, ppos.Y)
	enemy.Type = defs.EnemyWraith
	enemy.State = component.StateChase
	enemy.TeleportTimer = 100

	w.ecs.Healths[id].Value = 15 // ниже половины
	es.Update(0.016)

	if !enemy.InvisUsed || enemy.InvisTimer <= 0 {
		t.Fatal("invisibility did not trigger below half health")
	}

	// Таймер тикает вниз и не перезапускается
	first := enemy.InvisTimer
	es.Update(0.016)
	if enemy.InvisTimer >= first {
		t.Fatal("invisibility timer must count down without restarting")
	}
}

func TestRegenEliteHealsOverTime(t *testing.T) {
	w, es := newAIWorld(t)

	id, enemy := w.addEnemy(100, 800, 800)
	enemy.IsElite = true
	enemy.EliteMods = []defs.EliteModID{defs.EliteRegen}
	w.ecs.Healths[id].Value = 50

	es.Update(1.0)

	want := 50 + 100*config.EliteRegenPerSec
	if got := w.ecs.Healths[id].Value; math.Abs(got-want) > 1e-9 {
		t.Fatalf("hp after 1s regen = %v, want %v", got, want)
	}
}

func TestGoblinEntersStabBurstInRange(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	_, enemy := w.addEnemy(30, ppos.X+25, ppos.Y)
	enemy.State = component.StateChase

	es.Update(0.016)

	if enemy.State != component.StateSpecial {
		t.Fatalf("state = %v, want special (stab burst)", enemy.State)
	}
	if enemy.BurstLeft != config.GoblinStabBurst {
		t.Fatalf("burst = %d, want %d", enemy.BurstLeft, config.GoblinStabBurst)
	}
}

func TestOgreRetreatsAtLowHealth(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	id, enemy := w.addEnemy(90, ppos.X+200, ppos.Y)
	enemy.Type = defs.EnemyOgre
	enemy.State = component.StateChase
	w.ecs.Healths[id].Value = 10 // ниже порога отступления

	es.Update(0.016)

	if enemy.State != component.StateRetreat {
		t.Fatalf("state = %v, want retreat at low hp", enemy.State)
	}
}

func TestArcherKeepsStandoffDistance(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	id, enemy := w.addEnemy(24, ppos.X+60, ppos.Y) // глубоко внутри минимальной дистанции
	enemy.Type = defs.EnemyArcher
	enemy.State = component.StateChase
	enemy.AttackCooldown = 100 // в тесте важно движение, не стрельба

	for i := 0; i < 60; i++ {
		es.Update(0.016)
	}

	pos := w.ecs.Positions[id]
	if utils.Dist(pos.X, pos.Y, ppos.X, ppos.Y) <= 60 {
		t.Fatal("archer did not back away from the player")
	}
}

func TestArcherCooldownTightensWithDepth(t *testing.T) {
	if archerFireCooldown(1) <= archerFireCooldown(15) {
		t.Fatal("fire cooldown must shrink with level")
	}
	if archerFireCooldown(1000) < 0.9 {
		t.Fatal("fire cooldown must not drop below the floor")
	}
}

func TestOgreSmashStunsPlayer(t *testing.T) {
	w, es := newAIWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	id := w.spawner.SpawnEnemy(defs.EnemyOgre, ppos.X+90, ppos.Y, 1, false)
	enemy := w.ecs.Enemies[id]
	enemy.State = component.StateChase
	enemy.AttackCooldown = 10 // обычный удар не перебивает замах

	es.Update(0.016)
	if enemy.State != component.StateSpecial {
		t.Fatalf("state = %v, want special (smash telegraph)", enemy.State)
	}

	es.Update(config.OgreSmashTelegraph + 0.1)

	if w.player().StunTimer <= 0 {
		t.Fatal("smash did not stun the player")
	}
}

func TestPatrolHeadingDrifts(t *testing.T) {
	w, es := newAIWorld(t)

	// Враг далеко за радиусом обнаружения, стен рядом нет.
	_, enemy := w.addEnemy(30, 3*config.TileSize, 3*config.TileSize)
	enemy.State = component.StatePatrol
	enemy.StateTimer = 100
	enemy.HeadingX, enemy.HeadingY = 1, 0

	for i := 0; i < 10; i++ {
		es.Update(0.016)
	}

	if enemy.HeadingX == 1 && enemy.HeadingY == 0 {
		t.Fatal("patrol heading never drifted")
	}
	length := math.Hypot(enemy.HeadingX, enemy.HeadingY)
	if math.Abs(length-1) > 1e-9 {
		t.Fatalf("heading length = %v, want unit", length)
	}
}
