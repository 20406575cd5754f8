// internal/app/game.go
package app

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/entity"
	"go-dungeon-crawler/internal/event"
	"go-dungeon-crawler/internal/input"
	"go-dungeon-crawler/internal/system"
	"go-dungeon-crawler/internal/types"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"log"
	"math"
	"time"
)

// Phase — фаза игрового цикла.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePerkSelect
	PhaseGameOver
)

// Game — контроллер симуляции: владеет ECS, системами и текущим уровнем.
// Отрисовка живет в состояниях, здесь только логика.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	DifficultyManager *system.DifficultyManager
	CombatSystem      *system.CombatSystem
	ProjectileSystem  *system.ProjectileSystem
	SpawnSystem       *system.SpawnSystem
	EnemySystem       *system.EnemySystem
	PlayerSystem      *system.PlayerSystem
	PickupSystem      *system.PickupSystem
	VisualSystem      *system.VisualEffectSystem
	RenderSystem      *system.RenderSystem

	seed        int64
	level       *dungeon.Level
	levelNumber int
	playerID    types.EntityID

	phase        Phase
	hitStopTimer float64
	perkOffer    []defs.PerkID
	levelCleared bool
}

// NewGame собирает все системы и загружает первый уровень.
// seed == 0 означает случайное зерно от времени.
func NewGame(seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
		seed:            seed,
		levelNumber:     1,
	}

	g.DifficultyManager = system.NewDifficultyManager(g.Rng)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.EventDispatcher, g.Rng, g.DifficultyManager, g)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.EventDispatcher, g.CombatSystem)
	g.SpawnSystem = system.NewSpawnSystem(g.ECS, g.Rng, g.DifficultyManager)
	g.EnemySystem = system.NewEnemySystem(g.ECS, g.Rng, g.CombatSystem, g.ProjectileSystem, g.SpawnSystem, g)
	g.PlayerSystem = system.NewPlayerSystem(g.ECS, g.Rng, g.CombatSystem, g.ProjectileSystem, g)
	g.PickupSystem = system.NewPickupSystem(g.ECS, g.EventDispatcher, g)
	g.VisualSystem = system.NewVisualEffectSystem(g.ECS)
	g.RenderSystem = system.NewRenderSystem(g.ECS, g.ProjectileSystem)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.PlayerDied, listener)
	g.EventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)

	g.LoadLevel(g.levelNumber)
	return g
}

// --- Контекстные методы для систем ---

func (g *Game) PlayerID() types.EntityID { return g.playerID }

func (g *Game) Grid() *dungeon.Grid { return g.level.Grid }

func (g *Game) Level() int { return g.levelNumber }

func (g *Game) CurrentLevel() *dungeon.Level { return g.level }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) PerkOffer() []defs.PerkID { return g.perkOffer }

func (g *Game) LevelCleared() bool { return g.levelCleared }

// TriggerHitStop замедляет симуляцию на короткое время после удачного
// попадания в ближнем бою.
func (g *Game) TriggerHitStop(duration float64) {
	if duration > g.hitStopTimer {
		g.hitStopTimer = duration
	}
}

// LoadLevel генерирует уровень с номером n и заселяет его. Игрок
// переносится между уровнями, все остальные сущности создаются заново.
func (g *Game) LoadLevel(n int) {
	g.levelNumber = n
	g.levelCleared = false
	g.perkOffer = nil

	// Все сущности кроме игрока принадлежат уровню
	for id := range g.ECS.Positions {
		if id != g.playerID {
			g.ECS.RemoveEntity(id)
		}
	}

	g.level = dungeon.Generate(dungeon.Config{Seed: g.seed, Level: n})
	g.ProjectileSystem.SetGrid(g.level.Grid)

	sx, sy := g.level.SpawnRoom.CenterWorld(config.TileSize)
	if g.playerID == 0 {
		g.playerID = g.SpawnSystem.SpawnPlayer(sx, sy)
	} else if pos, ok := g.ECS.Positions[g.playerID]; ok {
		pos.X, pos.Y = sx, sy
		if vel, ok := g.ECS.Velocities[g.playerID]; ok {
			vel.X, vel.Y = 0, 0
		}
	}

	for _, room := range g.level.Rooms {
		for _, spawn := range room.Spawns {
			g.SpawnSystem.SpawnFromDescriptor(spawn, n)
		}
		for _, crate := range room.Crates {
			g.SpawnSystem.SpawnCrate(crate.X, crate.Y)
		}
		if room.Role == dungeon.RoleLoot {
			cx, cy := room.CenterTile()
			g.SpawnSystem.SpawnChest(cx, cy)
		}
	}

	log.Printf("level %d: %d rooms, %d enemies", n, len(g.level.Rooms), len(g.ECS.Enemies))
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: n})
}

// Update продвигает симуляцию на dt. Порядок систем фиксирован: игрок →
// враги → снаряды → подбор → визуальные эффекты → проверки уровня.
func (g *Game) Update(deltaTime float64, intent input.Intent) {
	if g.phase != PhasePlaying {
		return
	}

	if g.hitStopTimer > 0 {
		g.hitStopTimer = math.Max(0, g.hitStopTimer-deltaTime)
		deltaTime *= config.HitStopScale
	}

	g.ECS.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime, intent)
	g.EnemySystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.PickupSystem.Update(deltaTime)
	g.VisualSystem.Update(deltaTime)

	if intent.Interact {
		g.handleInteract()
	}

	if !g.levelCleared && len(g.ECS.Enemies) == 0 {
		g.levelCleared = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: g.levelNumber})
		g.offerPerks()
	}
}

// handleInteract обрабатывает нажатие E: сундук в радиусе или выход.
// И то и другое доступно только на зачищенном уровне.
func (g *Game) handleInteract() {
	if !g.levelCleared {
		return
	}
	ppos, ok := g.ECS.Positions[g.playerID]
	if !ok {
		return
	}

	for id, chest := range g.ECS.Chests {
		if chest.Opened {
			continue
		}
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		if utils.DistSq(ppos.X, ppos.Y, pos.X, pos.Y) <= config.ChestInteractRange*config.ChestInteractRange {
			g.openChest(id, chest, pos.X, pos.Y)
			return
		}
	}

	ex, ey := g.level.ExitRoom.CenterWorld(config.TileSize)
	if utils.DistSq(ppos.X, ppos.Y, ex, ey) <= config.ExitInteractRange*config.ExitInteractRange {
		g.NextLevel()
	}
}

// openChest выкатывает несколько наград из таблицы сундука и раскладывает
// их вокруг.
func (g *Game) openChest(id types.EntityID, chest *component.SuperChest, x, y float64) {
	chest.Opened = true
	for i := 0; i < defs.ChestRollCount; i++ {
		itemID := g.Rng.ChooseWeighted(defs.ChestDropTable)
		angle := float64(i) / float64(defs.ChestRollCount) * 2 * math.Pi
		g.CombatSystem.SpawnItem(x+math.Cos(angle)*18, y+math.Sin(angle)*18, itemID)
	}
	// Сверх предметов сундук заряжает одноразовый щит.
	if player := g.ECS.Players[g.playerID]; player != nil {
		player.ShieldCharges++
	}
	if r, ok := g.ECS.Renderables[id]; ok {
		r.Color = config.ColorGray
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ChestOpened, Data: id})
}

// offerPerks подбирает варианты награды за зачистку уровня.
func (g *Game) offerPerks() {
	pool := make([]defs.PerkID, len(defs.AllPerks))
	copy(pool, defs.AllPerks)
	g.perkOffer = g.perkOffer[:0]
	for i := 0; i < config.PerkChoices && len(pool) > 0; i++ {
		k := g.Rng.Intn(len(pool))
		g.perkOffer = append(g.perkOffer, pool[k])
		pool = append(pool[:k], pool[k+1:]...)
	}
	g.phase = PhasePerkSelect
}

// ChoosePerk применяет выбранный перк и возвращает игру в бой.
func (g *Game) ChoosePerk(index int) {
	if g.phase != PhasePerkSelect || index < 0 || index >= len(g.perkOffer) {
		return
	}
	id := g.perkOffer[index]
	player := g.ECS.Players[g.playerID]
	if player == nil {
		return
	}

	before := player.PerkValue(id)
	player.Perks[id]++

	// MAXHP — единственный перк с мгновенным побочным эффектом
	if id == defs.PerkMaxHP {
		gained := player.PerkValue(id) - before
		if hp, ok := g.ECS.Healths[g.playerID]; ok {
			hp.Max += gained
			hp.Value += gained
		}
	}

	g.perkOffer = nil
	g.phase = PhasePlaying
}

// NextLevel переводит игрока на следующий уровень через выход.
func (g *Game) NextLevel() {
	g.LoadLevel(g.levelNumber + 1)
}

// GameEventListener переводит фазы по глобальным событиям.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		l.game.phase = PhaseGameOver
	}
}
