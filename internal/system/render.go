// internal/system/render.go
package system

import (
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/entity"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности поверх запеченной карты. Камера задается
// смещением мира относительно экрана.
type RenderSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
}

func NewRenderSystem(ecs *entity.ECS, projectiles *ProjectileSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, projectiles: projectiles}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, camX, camY float64) {
	// Телеграфы замаха рисуются под всеми сущностями.
	for id, enemy := range s.ecs.Enemies {
		if enemy.SmashTelegraph <= 0 {
			continue
		}
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			progress := 1 - enemy.SmashTelegraph/config.OgreSmashTelegraph
			r := float32(config.OgreSmashRadius * progress)
			vector.StrokeCircle(screen, float32(pos.X-camX), float32(pos.Y-camY), r, 2.0, config.SmashColor, true)
		}
	}

	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		x, y := float32(pos.X-camX), float32(pos.Y-camY)

		col := render.Color
		alpha := render.Alpha
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy && enemy.InvisTimer > 0 {
			alpha = 0.35
		}
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			col = config.ColorWhite
		}
		if alpha < 1 {
			col = scaleAlpha(col, alpha)
		}

		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, render.StrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, col, true)

		// Полоска здоровья над врагами, потерявшими HP
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy {
			if hp, hasHP := s.ecs.Healths[id]; hasHP && hp.Value < hp.Max {
				s.drawHealthBar(screen, x, y-render.Radius-7, render.Radius*2, hp.Fraction(), enemy.IsBoss)
			}
		}
	}

	// Направление взгляда игрока
	for id, player := range s.ecs.Players {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			x, y := float32(pos.X-camX), float32(pos.Y-camY)
			tipX := x + float32(math.Cos(player.Facing))*config.PlayerRadius*1.6
			tipY := y + float32(math.Sin(player.Facing))*config.PlayerRadius*1.6
			vector.StrokeLine(screen, x, y, tipX, tipY, 2.0, config.ColorWhite, true)
		}
	}

	s.projectiles.ForEach(func(px, py float64, fromPlayer bool) {
		col := config.EnemyShotColor
		if fromPlayer {
			col = config.PlayerShotColor
		}
		vector.DrawFilledCircle(screen, float32(px-camX), float32(py-camY), config.ProjectileRadius, col, true)
	})

	// Расширяющиеся кольца взрывов и ударов
	for id, aoe := range s.ecs.AoeEffects {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			progress := aoe.CurrentTimer / aoe.Duration
			r := float32(aoe.MaxRadius * progress)
			col := scaleAlpha(aoe.Color, 1-progress)
			vector.StrokeCircle(screen, float32(pos.X-camX), float32(pos.Y-camY), r, 3.0, col, true)
		}
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, x, y, width float32, frac float64, boss bool) {
	if frac < 0 {
		frac = 0
	}
	barColor := config.GoblinColor
	if boss {
		barColor = config.ColorRed
	}
	vector.DrawFilledRect(screen, x-width/2, y, width, 3, color.RGBA{0, 0, 0, 160}, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*float32(frac), 3, barColor, false)
}

// scaleAlpha возвращает цвет с предумноженной альфой.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
