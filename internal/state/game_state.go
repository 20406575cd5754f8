// internal/state/game_state.go
package state

import (
	game "go-dungeon-crawler/internal/app"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/input"
	"go-dungeon-crawler/internal/ui"
	"go-dungeon-crawler/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры: симуляция, камера и HUD.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	renderer  *render.DungeonRenderer
	hud       *ui.HUD
	perkPanel *ui.PerkPanel

	camX, camY float64
	bakedLevel int // номер уровня, для которого запечена карта
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic := game.NewGame(seed)

	mapColors := render.MapColors{
		Void:     config.VoidColor,
		Floor:    config.FloorColor,
		Corridor: config.CorridorColor,
		Wall:     config.WallColor,
		Torch:    config.TorchColor,
		Exit:     config.ExitColor,
	}

	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  render.NewDungeonRenderer(config.TileSize, mapColors),
		hud:       ui.NewHUD(),
		perkPanel: ui.NewPerkPanel(),
	}
	gs.renderer.Bake(gameLogic.CurrentLevel())
	gs.bakedLevel = gameLogic.Level()
	return gs
}

// GetGame отдает логику игры состоянию паузы.
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.game.Phase() == game.PhasePlaying {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	switch g.game.Phase() {
	case game.PhasePerkSelect:
		if choice := g.perkPanel.HandleInput(); choice >= 0 {
			g.game.ChoosePerk(choice)
		}
	case game.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(NewGameState(g.sm, 0))
		}
		return
	default:
		intent := input.Gather(g.camX, g.camY)
		g.game.Update(deltaTime, intent)
	}

	// Карта перепекается при смене уровня
	if g.game.Level() != g.bakedLevel {
		g.renderer.Bake(g.game.CurrentLevel())
		g.bakedLevel = g.game.Level()
	}

	g.updateCamera()
}

// updateCamera держит игрока в центре экрана, не выходя за края карты.
func (g *GameState) updateCamera() {
	pos, ok := g.game.ECS.Positions[g.game.PlayerID()]
	if !ok {
		return
	}
	grid := g.game.Grid()
	worldW := float64(grid.Width) * config.TileSize
	worldH := float64(grid.Height) * config.TileSize

	g.camX = pos.X - float64(config.ScreenWidth)/2
	g.camY = pos.Y - float64(config.ScreenHeight)/2

	if worldW > config.ScreenWidth {
		g.camX = clamp(g.camX, 0, worldW-config.ScreenWidth)
	} else {
		g.camX = (worldW - config.ScreenWidth) / 2
	}
	if worldH > config.ScreenHeight {
		g.camY = clamp(g.camY, 0, worldH-config.ScreenHeight)
	} else {
		g.camY = (worldH - config.ScreenHeight) / 2
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.camX, g.camY)
	g.game.RenderSystem.Draw(screen, g.camX, g.camY)

	g.hud.Draw(screen, g.game)

	switch g.game.Phase() {
	case game.PhasePerkSelect:
		g.perkPanel.Draw(screen, g.game.PerkOffer())
	case game.PhaseGameOver:
		g.hud.DrawGameOver(screen, g.game)
	}
}

func (g *GameState) Exit() {}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
