// internal/state/menu_state.go
package state

import (
	"go-dungeon-crawler/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm   *StateMachine
	seed int64
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{sm: sm, seed: seed}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	cx := config.ScreenWidth/2 - 60
	cy := config.ScreenHeight / 2
	ebitenutil.DebugPrintAt(screen, "DUNGEON CRAWLER", cx, cy-20)
	ebitenutil.DebugPrintAt(screen, "press SPACE to descend", cx-24, cy+10)
}

func (m *MenuState) Exit() {}
