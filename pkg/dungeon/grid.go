package dungeon

import "math"

// Tile is one cell of the generated map.
type Tile uint8

const (
	TileVoid Tile = iota
	TileFloor
	TileWall
	TileCorridor
)

// Grid is the tile map of one level. It is built once by the generator and
// immutable afterwards.
type Grid struct {
	Width, Height int
	Tiles         [][]Tile // [y][x], row-major
}

// NewGrid returns a grid filled with TileVoid.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the tile coordinate lies inside the grid.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.Width && ty < g.Height
}

// At returns the tile at the coordinate, TileVoid for out-of-bounds.
func (g *Grid) At(tx, ty int) Tile {
	if !g.InBounds(tx, ty) {
		return TileVoid
	}
	return g.Tiles[ty][tx]
}

// IsWalkable reports whether entities may stand on the tile.
func (g *Grid) IsWalkable(tx, ty int) bool {
	t := g.At(tx, ty)
	return t == TileFloor || t == TileCorridor
}

// BlocksSight reports whether the tile stops a line-of-sight ray.
func (g *Grid) BlocksSight(tx, ty int) bool {
	t := g.At(tx, ty)
	return t == TileWall || t == TileVoid
}

// WorldToTile converts world coordinates to tile coordinates.
func WorldToTile(wx, wy, tileSize float64) (int, int) {
	return int(math.Floor(wx / tileSize)), int(math.Floor(wy / tileSize))
}

// TileCenter converts tile coordinates to the world coordinates of the tile center.
func TileCenter(tx, ty int, tileSize float64) (float64, float64) {
	return (float64(tx) + 0.5) * tileSize, (float64(ty) + 0.5) * tileSize
}

// LineOfSight performs a grid raymarch between two world points and fails if
// any traversed tile is a wall or void. Sampling step is half a tile, which is
// enough because walls are always at least one tile thick.
func (g *Grid) LineOfSight(x0, y0, x1, y1, tileSize float64) bool {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		tx, ty := WorldToTile(x0, y0, tileSize)
		return !g.BlocksSight(tx, ty)
	}
	step := tileSize / 2
	steps := int(dist/step) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		tx, ty := WorldToTile(x0+dx*t, y0+dy*t, tileSize)
		if g.BlocksSight(tx, ty) {
			return false
		}
	}
	return true
}

// CircleBlocked reports whether a circle at the given world position overlaps
// any non-walkable tile. Used for wall collision of moving entities.
func (g *Grid) CircleBlocked(wx, wy, radius, tileSize float64) bool {
	minX, minY := WorldToTile(wx-radius, wy-radius, tileSize)
	maxX, maxY := WorldToTile(wx+radius, wy+radius, tileSize)
	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if g.IsWalkable(tx, ty) {
				continue
			}
			// Точная проверка круга против клетки
			cx := clampf(wx, float64(tx)*tileSize, float64(tx+1)*tileSize)
			cy := clampf(wy, float64(ty)*tileSize, float64(ty+1)*tileSize)
			ddx := wx - cx
			ddy := wy - cy
			if ddx*ddx+ddy*ddy < radius*radius {
				return true
			}
		}
	}
	return false
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
