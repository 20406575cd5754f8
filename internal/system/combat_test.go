// internal/system/combat_test.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/event"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"testing"
)

// stubGame реализует все контекстные интерфейсы систем для тестов.
type stubGame struct {
	playerID types.EntityID
	grid     *dungeon.Grid
	level    int
	hitStops int
}

func (g *stubGame) PlayerID() types.EntityID        { return g.playerID }
func (g *stubGame) TriggerHitStop(duration float64) { g.hitStops++ }
func (g *stubGame) Grid() *dungeon.Grid             { return g.grid }
func (g *stubGame) Level() int                      { return g.level }

// testWorld собирает минимальный мир: открытая комната, игрок в центре.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	difficulty *DifficultyManager
	game       *stubGame
	combat     *CombatSystem
	spawner    *SpawnSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	g := dungeon.NewGrid(30, 30)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if x == 0 || y == 0 || x == 29 || y == 29 {
				g.Tiles[y][x] = dungeon.TileWall
			} else {
				g.Tiles[y][x] = dungeon.TileFloor
			}
		}
	}

	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
		game:       &stubGame{grid: g, level: 1},
	}
	w.difficulty = NewDifficultyManager(w.rng)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.rng, w.difficulty, w.game)
	w.spawner = NewSpawnSystem(w.ecs, w.rng, w.difficulty)

	w.game.playerID = w.spawner.SpawnPlayer(15*config.TileSize, 15*config.TileSize)
	return w
}

func (w *testWorld) player() *component.Player {
	return w.ecs.Players[w.game.playerID]
}

func (w *testWorld) playerHP() *component.Health {
	return w.ecs.Healths[w.game.playerID]
}

// addEnemy кладет врага рядом с игроком, минуя броски сложности.
func (w *testWorld) addEnemy(hp float64, x, y float64) (types.EntityID, *component.Enemy) {
	id := w.ecs.NewEntity()
	enemy := &component.Enemy{
		Type:            defs.EnemyGoblin,
		Damage:          8,
		Speed:           130,
		Radius:          9,
		DetectionRadius: 220,
		XPValue:         5,
		State:           component.StateIdle,
		StrafeDir:       1,
	}
	w.ecs.Enemies[id] = enemy
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Renderables[id] = &component.Renderable{Radius: 9, Alpha: 1}
	return id, enemy
}

func TestPlayerDamageMitigationOrder(t *testing.T) {
	w := newTestWorld(t)
	w.player().Armor = 40
	w.playerHP().Value = 100

	// 60% от 50 = 30 в броню, остаток 20 в здоровье
	w.combat.DamagePlayer(50)

	if got := w.player().Armor; got != 10 {
		t.Fatalf("armor = %v, want 10", got)
	}
	if got := w.playerHP().Value; got != 80 {
		t.Fatalf("hp = %v, want 80", got)
	}
}

func TestArmorAbsorbCappedByStock(t *testing.T) {
	w := newTestWorld(t)
	w.player().Armor = 5
	w.playerHP().Value = 100

	// Броня может принять лишь свои 5, остальные 45 идут в здоровье
	w.combat.DamagePlayer(50)

	if got := w.player().Armor; got != 0 {
		t.Fatalf("armor = %v, want 0", got)
	}
	if got := w.playerHP().Value; got != 55 {
		t.Fatalf("hp = %v, want 55", got)
	}
}

func TestShieldChargeAbsorbsWholeHit(t *testing.T) {
	w := newTestWorld(t)
	w.player().ShieldCharges = 1
	w.playerHP().Value = 100

	w.combat.DamagePlayer(999)

	if got := w.playerHP().Value; got != 100 {
		t.Fatalf("hp = %v, want untouched 100", got)
	}
	if got := w.player().ShieldCharges; got != 0 {
		t.Fatalf("shield charges = %d, want 0", got)
	}
}

func TestInvulnerabilityIgnoresDamage(t *testing.T) {
	w := newTestWorld(t)
	w.player().InvulnTimer = 1
	w.combat.DamagePlayer(50)
	if got := w.playerHP().Value; got != config.PlayerMaxHP {
		t.Fatalf("hp = %v, want full", got)
	}
}

func TestBigHitRaisesEmergencyShield(t *testing.T) {
	w := newTestWorld(t)
	w.player().Armor = 0

	w.combat.DamagePlayer(40) // больше порога BigHitThreshold

	if w.player().InvulnTimer <= 0 {
		t.Fatal("emergency shield did not trigger on big hit")
	}
	hpAfterFirst := w.playerHP().Value

	// Пока щит активен, урон не проходит
	w.combat.DamagePlayer(40)
	if w.playerHP().Value != hpAfterFirst {
		t.Fatal("damage leaked through emergency shield")
	}
}

func TestEliteShieldAbsorbsFixedHits(t *testing.T) {
	w := newTestWorld(t)
	id, enemy := w.addEnemy(30, 400, 400)
	enemy.IsElite = true
	enemy.EliteMods = []defs.EliteModID{defs.EliteShielded}
	enemy.EliteShieldHits = config.EliteShieldHits

	for i := 0; i < config.EliteShieldHits; i++ {
		w.combat.DamageEnemy(id, 1000, false, 0, 0, true)
		if w.ecs.Healths[id].Value != 30 {
			t.Fatalf("hit %d leaked through elite shield", i+1)
		}
	}

	w.combat.DamageEnemy(id, 10, false, 0, 0, true)
	if got := w.ecs.Healths[id].Value; got != 20 {
		t.Fatalf("hp after shield depleted = %v, want 20", got)
	}
}

func TestShieldOrderEliteBeforeBanded(t *testing.T) {
	w := newTestWorld(t)
	id, enemy := w.addEnemy(50, 400, 400)
	enemy.EliteShieldHits = 1
	enemy.Banded = defs.BandShielded
	enemy.BandedShieldHits = 1

	w.combat.DamageEnemy(id, 10, false, 0, 0, true)
	if enemy.EliteShieldHits != 0 || enemy.BandedShieldHits != 1 {
		t.Fatalf("elite shield must be consumed first: elite=%d banded=%d",
			enemy.EliteShieldHits, enemy.BandedShieldHits)
	}

	w.combat.DamageEnemy(id, 10, false, 0, 0, true)
	if enemy.BandedShieldHits != 0 {
		t.Fatal("banded shield must be consumed second")
	}
	if w.ecs.Healths[id].Value != 50 {
		t.Fatal("both shielded hits must not damage health")
	}
}

func TestReflectiveReturnsFractionToPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.player().Armor = 0
	id, enemy := w.addEnemy(200, 400, 400)
	enemy.IsElite = true
	enemy.EliteMods = []defs.EliteModID{defs.EliteReflective}

	w.combat.DamageEnemy(id, 40, false, 0, 0, true)

	want := config.PlayerMaxHP - 40*config.EliteReflectFrac
	if got := w.playerHP().Value; got != want {
		t.Fatalf("player hp = %v, want %v", got, want)
	}
	if got := w.ecs.Healths[id].Value; got != 160 {
		t.Fatalf("enemy hp = %v, want full damage taken 160", got)
	}
}

func TestReflectOnlyAgainstPlayerDamage(t *testing.T) {
	w := newTestWorld(t)
	id, enemy := w.addEnemy(200, 400, 400)
	enemy.IsElite = true
	enemy.EliteMods = []defs.EliteModID{defs.EliteReflective}

	w.combat.DamageEnemy(id, 40, false, 0, 0, false)
	if got := w.playerHP().Value; got != config.PlayerMaxHP {
		t.Fatalf("environmental damage reflected to player: hp = %v", got)
	}
}

type killRecorder struct {
	kills []event.KillData
}

func (r *killRecorder) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.KillData); ok {
		r.kills = append(r.kills, data)
	}
}

func TestKillRemovesEntityAndDispatches(t *testing.T) {
	w := newTestWorld(t)
	rec := &killRecorder{}
	w.dispatcher.Subscribe(event.EnemyKilled, rec)

	id, _ := w.addEnemy(10, 400, 400)
	w.combat.DamageEnemy(id, 10, false, 0, 0, true)

	if _, alive := w.ecs.Enemies[id]; alive {
		t.Fatal("killed enemy still present in ECS")
	}
	if len(rec.kills) != 1 {
		t.Fatalf("EnemyKilled dispatched %d times, want 1", len(rec.kills))
	}
	if rec.kills[0].XPValue != 5 {
		t.Fatalf("kill XP = %d, want 5", rec.kills[0].XPValue)
	}
}

func TestExplodingEnemyHurtsPlayerOnDeath(t *testing.T) {
	w := newTestWorld(t)
	w.player().Armor = 0
	ppos := w.ecs.Positions[w.game.playerID]

	// Взрыв игрока заденет: враг вплотную
	id, enemy := w.addEnemy(10, ppos.X+20, ppos.Y)
	enemy.Banded = defs.BandExploding

	w.combat.DamageEnemy(id, 10, false, 0, 0, true)

	if got := w.playerHP().Value; got >= config.PlayerMaxHP {
		t.Fatal("explosion on death did not damage the player")
	}
}

func TestMeleeArcHitsOnlyInFront(t *testing.T) {
	w := newTestWorld(t)
	ppos := w.ecs.Positions[w.game.playerID]

	frontID, _ := w.addEnemy(100, ppos.X+30, ppos.Y)
	backID, _ := w.addEnemy(100, ppos.X-30, ppos.Y)

	w.combat.PlayerMelee(ppos.X, ppos.Y, 0) // взгляд строго вправо

	if w.ecs.Healths[frontID].Value >= 100 {
		t.Fatal("enemy in front of the arc was not hit")
	}
	if w.ecs.Healths[backID].Value < 100 {
		t.Fatal("enemy behind the player was hit")
	}
	if w.game.hitStops == 0 {
		t.Fatal("successful melee hit must trigger hit stop")
	}
}

func TestHealPlayerCappedAtMax(t *testing.T) {
	w := newTestWorld(t)
	w.playerHP().Value = 90
	w.combat.HealPlayer(50)
	if got := w.playerHP().Value; got != config.PlayerMaxHP {
		t.Fatalf("hp = %v, want capped at %v", got, float64(config.PlayerMaxHP))
	}
}

func TestDashFramesDodgeDamage(t *testing.T) {
	w := newTestWorld(t)
	player := w.player()
	hp := w.playerHP()
	player.DashTimer = 0.1

	w.combat.DamagePlayer(50)

	if hp.Value != config.PlayerMaxHP {
		t.Fatalf("hp = %v, want untouched %v during a dash", hp.Value, config.PlayerMaxHP)
	}
}
