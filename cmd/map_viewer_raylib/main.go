// cmd/map_viewer_raylib/main.go
//
// Отладочный просмотрщик генератора: рисует сетку уровня, роли комнат и
// точки спавна без запуска симуляции. Стрелки меняют уровень, пробел —
// зерно, R — перегенерация.
package main

import (
	"flag"
	"fmt"
	"go-dungeon-crawler/pkg/dungeon"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tilePx = 18

func main() {
	seed := flag.Int64("seed", 1, "зерно генератора")
	level := flag.Int("level", 1, "номер уровня")
	flag.Parse()

	rl.InitWindow(1280, 820, "dungeon generator viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	curSeed, curLevel := *seed, *level
	lvl := dungeon.Generate(dungeon.Config{Seed: curSeed, Level: curLevel})

	for !rl.WindowShouldClose() {
		regen := false
		switch {
		case rl.IsKeyPressed(rl.KeyRight):
			curLevel++
			regen = true
		case rl.IsKeyPressed(rl.KeyLeft) && curLevel > 1:
			curLevel--
			regen = true
		case rl.IsKeyPressed(rl.KeySpace):
			curSeed++
			regen = true
		case rl.IsKeyPressed(rl.KeyR):
			regen = true
		}
		if regen {
			lvl = dungeon.Generate(dungeon.Config{Seed: curSeed, Level: curLevel})
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 10, 16, 255))
		drawGrid(lvl)
		drawRooms(lvl)
		rl.DrawText(fmt.Sprintf("seed %d  level %d  rooms %d", curSeed, curLevel, len(lvl.Rooms)),
			12, 790, 18, rl.RayWhite)
		rl.EndDrawing()
	}
}

func drawGrid(lvl *dungeon.Level) {
	for ty := 0; ty < lvl.Grid.Height; ty++ {
		for tx := 0; tx < lvl.Grid.Width; tx++ {
			var col rl.Color
			switch lvl.Grid.At(tx, ty) {
			case dungeon.TileFloor:
				col = rl.NewColor(70, 62, 84, 255)
			case dungeon.TileCorridor:
				col = rl.NewColor(52, 48, 64, 255)
			case dungeon.TileWall:
				col = rl.NewColor(110, 94, 84, 255)
			default:
				continue
			}
			rl.DrawRectangle(int32(tx*tilePx), int32(ty*tilePx), tilePx-1, tilePx-1, col)
		}
	}
}

func drawRooms(lvl *dungeon.Level) {
	for _, room := range lvl.Rooms {
		col := rl.Gray
		switch room.Role {
		case dungeon.RoleSpawn:
			col = rl.SkyBlue
		case dungeon.RoleExit:
			col = rl.Green
		case dungeon.RoleLoot:
			col = rl.Gold
		case dungeon.RoleBoss:
			col = rl.Red
		}
		cx, cy := room.CenterTile()
		rl.DrawText(room.Role.String(), int32(cx*tilePx)-14, int32(cy*tilePx)-8, 12, col)

		for _, spawn := range room.Spawns {
			marker := rl.Orange
			if spawn.Boss {
				marker = rl.Red
			}
			rl.DrawCircle(int32(spawn.TX*tilePx+tilePx/2), int32(spawn.TY*tilePx+tilePx/2), 4, marker)
		}
		for _, crate := range room.Crates {
			rl.DrawRectangleLines(int32(crate.X*tilePx+3), int32(crate.Y*tilePx+3), tilePx-6, tilePx-6, rl.Beige)
		}
	}
}
