// internal/ui/hud.go
package ui

import (
	"fmt"
	game "go-dungeon-crawler/internal/app"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	barWidth  = 220.0
	barHeight = 12.0
	barX      = 18.0
	barY      = 18.0
	barGap    = 6.0
)

// HUD рисует полосы состояния игрока, боезапас и номер уровня.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, g *game.Game) {
	player, ok := g.ECS.Players[g.PlayerID()]
	if !ok {
		return
	}
	hp := g.ECS.Healths[g.PlayerID()]
	if hp == nil {
		return
	}

	y := barY
	h.drawBar(screen, barX, y, hp.Value/hp.Max, color.RGBA{200, 60, 60, 255})
	y += barHeight + barGap
	h.drawBar(screen, barX, y, player.Armor/player.MaxArmor, color.RGBA{110, 150, 220, 255})
	y += barHeight + barGap
	h.drawBar(screen, barX, y, player.Stamina/player.MaxStamina, color.RGBA{110, 200, 120, 255})
	y += barHeight + barGap + 6

	ws := player.ActiveWeaponState()
	if ws != nil {
		def := defs.WeaponDefs[ws.DefID]
		reserve := fmt.Sprintf("%d", ws.Reserve)
		if def.InfiniteAmmo {
			reserve = "inf"
		}
		ammoLine := fmt.Sprintf("%s  %d/%s", def.Name, ws.Ammo, reserve)
		if ws.ReloadTimer > 0 {
			ammoLine = fmt.Sprintf("%s  reloading...", def.Name)
		}
		text.Draw(screen, ammoLine, h.face, int(barX), int(y)+12, config.ColorWhite)
		y += 18
	}

	text.Draw(screen, fmt.Sprintf("potions %d/%d", player.Potions, config.MaxPotions),
		h.face, int(barX), int(y)+12, config.ColorWhite)

	// Правый верхний угол: глубина, опыт, счет
	info := fmt.Sprintf("depth %d   xp %d   kills %d", g.Level(), player.XP, player.Kills)
	text.Draw(screen, info, h.face, config.ScreenWidth-len(info)*7-18, 30, config.ColorWhite)

	if player.ShieldCharges > 0 {
		text.Draw(screen, "SHIELD", h.face, int(barX)+int(barWidth)+12, int(barY)+11,
			color.RGBA{140, 220, 255, 255})
	}

	if g.LevelCleared() {
		msg := "level cleared: E at the exit to descend"
		text.Draw(screen, msg, h.face, config.ScreenWidth/2-len(msg)*7/2, 56, config.ExitColor)
	}
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y, frac float64, col color.RGBA) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight,
		color.RGBA{0, 0, 0, 170}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barWidth*frac), barHeight, col, false)
}

// DrawGameOver рисует финальный экран поверх замершей сцены.
func (h *HUD) DrawGameOver(screen *ebiten.Image, g *game.Game) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 180}, false)

	player := g.ECS.Players[g.PlayerID()]
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	text.Draw(screen, "YOU DIED", h.face, cx-28, cy-20, config.ColorRed)
	if player != nil {
		stats := fmt.Sprintf("depth %d   kills %d   xp %d", g.Level(), player.Kills, player.XP)
		text.Draw(screen, stats, h.face, cx-len(stats)*7/2, cy+4, config.ColorWhite)
	}
	text.Draw(screen, "press ENTER to try again", h.face, cx-84, cy+28, config.ColorGray)
}
