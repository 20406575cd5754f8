// internal/ui/perk_panel.go
package ui

import (
	"fmt"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	cardWidth  = 230.0
	cardHeight = 110.0
	cardGap    = 24.0
)

// PerkPanel — выбор награды за зачистку уровня: карточки с перками,
// выбор цифрами или кликом.
type PerkPanel struct {
	face font.Face
}

func NewPerkPanel() *PerkPanel {
	return &PerkPanel{face: basicfont.Face7x13}
}

// HandleInput возвращает индекс выбранной карточки или -1.
func (p *PerkPanel) HandleInput() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		return 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		return 1
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		return 2
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i := 0; i < config.PerkChoices; i++ {
			x, y := p.cardPos(i, config.PerkChoices)
			if float64(mx) >= x && float64(mx) <= x+cardWidth &&
				float64(my) >= y && float64(my) <= y+cardHeight {
				return i
			}
		}
	}
	return -1
}

func (p *PerkPanel) Draw(screen *ebiten.Image, offer []defs.PerkID) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 140}, false)

	title := "choose your reward"
	text.Draw(screen, title, p.face, config.ScreenWidth/2-len(title)*7/2,
		config.ScreenHeight/2-int(cardHeight), config.ColorWhite)

	for i, id := range offer {
		def, ok := defs.PerkDefs[id]
		if !ok {
			continue
		}
		x, y := p.cardPos(i, len(offer))

		vector.DrawFilledRect(screen, float32(x), float32(y), cardWidth, cardHeight,
			color.RGBA{36, 32, 46, 240}, false)
		vector.StrokeRect(screen, float32(x), float32(y), cardWidth, cardHeight,
			2, config.EliteStroke, false)

		text.Draw(screen, fmt.Sprintf("[%d] %s", i+1, def.Name), p.face, int(x)+14, int(y)+28, config.ColorWhite)
		text.Draw(screen, p.describe(def), p.face, int(x)+14, int(y)+56, config.ColorGray)
	}
}

func (p *PerkPanel) cardPos(i, total int) (float64, float64) {
	rowWidth := float64(total)*cardWidth + float64(total-1)*cardGap
	x := (config.ScreenWidth-rowWidth)/2 + float64(i)*(cardWidth+cardGap)
	y := float64(config.ScreenHeight)/2 - cardHeight/2
	return x, y
}

func (p *PerkPanel) describe(def defs.PerkDefinition) string {
	if def.Magnitude >= 1 {
		return fmt.Sprintf("+%.0f (first stack)", def.Magnitude)
	}
	return fmt.Sprintf("+%.0f%% (first stack)", def.Magnitude*100)
}
