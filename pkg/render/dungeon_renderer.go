// pkg/render/dungeon_renderer.go
package render

import (
	"go-dungeon-crawler/pkg/dungeon"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DungeonRenderer запекает тайловую сетку уровня в одно изображение.
// Карта статична внутри уровня, перерисовывать ее по тайлам каждый кадр
// незачем.
type DungeonRenderer struct {
	tileSize float64
	colors   MapColors
	baked    *ebiten.Image
}

func NewDungeonRenderer(tileSize float64, colors MapColors) *DungeonRenderer {
	return &DungeonRenderer{tileSize: tileSize, colors: colors}
}

// Bake перерисовывает изображение карты. Вызывается один раз при загрузке
// уровня.
func (r *DungeonRenderer) Bake(level *dungeon.Level) {
	grid := level.Grid
	w := int(float64(grid.Width) * r.tileSize)
	h := int(float64(grid.Height) * r.tileSize)
	if r.baked == nil || r.baked.Bounds().Dx() != w || r.baked.Bounds().Dy() != h {
		r.baked = ebiten.NewImage(w, h)
	}
	r.baked.Fill(r.colors.Void)

	ts := float32(r.tileSize)
	for ty := 0; ty < grid.Height; ty++ {
		for tx := 0; tx < grid.Width; tx++ {
			var col color.RGBA
			switch grid.At(tx, ty) {
			case dungeon.TileFloor:
				col = r.colors.Floor
			case dungeon.TileCorridor:
				col = r.colors.Corridor
			case dungeon.TileWall:
				col = r.colors.Wall
			default:
				// Пустота, примыкающая к стене, рисуется ее тенью.
				if !touchesWall(grid, tx, ty) {
					continue
				}
				col = DarkenColor(r.colors.Wall)
			}
			vector.DrawFilledRect(r.baked, float32(tx)*ts, float32(ty)*ts, ts, ts, col, false)
		}
	}

	// Факелы — декоративные точки по углам комнат.
	for _, room := range level.Rooms {
		for _, t := range room.Torches {
			cx := float32(t.X)*ts + ts/2
			cy := float32(t.Y)*ts + ts/2
			vector.DrawFilledCircle(r.baked, cx, cy, ts/6, r.colors.Torch, true)
		}
	}

	// Подсветка клетки выхода
	if level.ExitRoom != nil {
		ex, ey := level.ExitRoom.CenterTile()
		vector.DrawFilledRect(r.baked, float32(ex)*ts+ts/4, float32(ey)*ts+ts/4, ts/2, ts/2,
			r.colors.Exit, false)
	}
}

func touchesWall(g *dungeon.Grid, tx, ty int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(tx+dx, ty+dy) == dungeon.TileWall {
				return true
			}
		}
	}
	return false
}

// Draw рисует запеченную карту со смещением камеры.
func (r *DungeonRenderer) Draw(screen *ebiten.Image, camX, camY float64) {
	if r.baked == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-camX, -camY)
	screen.DrawImage(r.baked, op)
}
