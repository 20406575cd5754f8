package dungeon

import "math/rand"

const (
	minLeafSize = 10 // минимальный размер региона, который еще можно делить
	roomMargin  = 2  // отступ комнаты от краев листа
	minRoomSize = 4
	maxRoomSize = 14
)

// bspNode is a node of the partition tree. Transient — discarded after
// generation.
type bspNode struct {
	x, y, w, h  int
	left, right *bspNode
	room        *Room
}

// split divides the node into two children along its longer axis at a bounded
// random offset. Returns false when the node is too small to split.
func (n *bspNode) split(rng *rand.Rand) bool {
	if n.left != nil || n.right != nil {
		return false // уже разделен
	}

	// Делим вдоль длинной оси; при квадрате — подбрасываем монету.
	splitH := n.h > n.w
	if n.w == n.h {
		splitH = rng.Intn(2) == 0
	}

	span := n.w
	if splitH {
		span = n.h
	}
	if span < minLeafSize*2 {
		return false // слишком маленький регион
	}

	// Смещение разреза ограничено так, чтобы обе половины остались делимыми.
	lo := minLeafSize
	hi := span - minLeafSize
	offset := lo + rng.Intn(hi-lo+1)

	if splitH {
		n.left = &bspNode{x: n.x, y: n.y, w: n.w, h: offset}
		n.right = &bspNode{x: n.x, y: n.y + offset, w: n.w, h: n.h - offset}
	} else {
		n.left = &bspNode{x: n.x, y: n.y, w: offset, h: n.h}
		n.right = &bspNode{x: n.x + offset, y: n.y, w: n.w - offset, h: n.h}
	}
	return true
}

// splitRecursive builds the partition tree down to the requested depth,
// stopping early where regions are too small.
func (n *bspNode) splitRecursive(rng *rand.Rand, depth int) {
	if depth <= 0 {
		return
	}
	if !n.split(rng) {
		return
	}
	n.left.splitRecursive(rng, depth-1)
	n.right.splitRecursive(rng, depth-1)
}

// createRooms carves one room per terminal leaf: a randomized sub-rectangle
// inset from the leaf edges, clamped to minimum/maximum room dimensions.
func (n *bspNode) createRooms(g *Grid, rooms *[]*Room, rng *rand.Rand) {
	if n.left != nil || n.right != nil {
		n.left.createRooms(g, rooms, rng)
		n.right.createRooms(g, rooms, rng)
		return
	}

	availW := n.w - 2*roomMargin
	availH := n.h - 2*roomMargin
	if availW < minRoomSize {
		availW = minRoomSize
	}
	if availH < minRoomSize {
		availH = minRoomSize
	}

	rw := minRoomSize + rng.Intn(availW-minRoomSize+1)
	rh := minRoomSize + rng.Intn(availH-minRoomSize+1)
	if rw > maxRoomSize {
		rw = maxRoomSize
	}
	if rh > maxRoomSize {
		rh = maxRoomSize
	}
	if rw > n.w-2*roomMargin {
		rw = n.w - 2*roomMargin
	}
	if rh > n.h-2*roomMargin {
		rh = n.h - 2*roomMargin
	}
	if rw < 3 || rh < 3 {
		return // вырожденный лист, комнату не размещаем
	}

	rx := n.x + roomMargin + rng.Intn(n.w-rw-2*roomMargin+1)
	ry := n.y + roomMargin + rng.Intn(n.h-rh-2*roomMargin+1)

	room := &Room{ID: len(*rooms), Role: RoleCombat, X: rx, Y: ry, W: rw, H: rh}
	n.room = room
	*rooms = append(*rooms, room)

	for ty := ry; ty < ry+rh; ty++ {
		for tx := rx; tx < rx+rw; tx++ {
			g.Tiles[ty][tx] = TileFloor
		}
	}
}

// firstRoom returns the representative room of this subtree.
func (n *bspNode) firstRoom() *Room {
	if n == nil {
		return nil
	}
	if n.room != nil {
		return n.room
	}
	if r := n.left.firstRoom(); r != nil {
		return r
	}
	return n.right.firstRoom()
}

// connectChildren walks the tree post-order and joins the representative
// rooms of each internal node's subtrees with an L-shaped corridor, adding an
// undirected edge to the room graph.
func (n *bspNode) connectChildren(g *Grid, rooms []*Room, rng *rand.Rand) {
	if n.left == nil || n.right == nil {
		return
	}
	n.left.connectChildren(g, rooms, rng)
	n.right.connectChildren(g, rooms, rng)

	a := n.left.firstRoom()
	b := n.right.firstRoom()
	if a == nil || b == nil {
		return
	}

	ax, ay := a.CenterTile()
	bx, by := b.CenterTile()

	// Направление буквы L выбирается случайно.
	if rng.Intn(2) == 0 {
		carveCorridorH(g, ax, bx, ay)
		carveCorridorV(g, ay, by, bx)
	} else {
		carveCorridorV(g, ay, by, ax)
		carveCorridorH(g, ax, bx, by)
	}

	rooms[a.ID].Connected = append(rooms[a.ID].Connected, b.ID)
	rooms[b.ID].Connected = append(rooms[b.ID].Connected, a.ID)
}

// carveCorridorH carves a horizontal corridor segment at row ty, widened by
// one extra parallel tile. Carving only ever overwrites void tiles.
func carveCorridorH(g *Grid, x0, x1, ty int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for tx := x0; tx <= x1; tx++ {
		carveTile(g, tx, ty)
		carveTile(g, tx, ty+1)
	}
}

// carveCorridorV carves a vertical corridor segment at column tx, widened by
// one extra parallel tile.
func carveCorridorV(g *Grid, y0, y1, tx int) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for ty := y0; ty <= y1; ty++ {
		carveTile(g, tx, ty)
		carveTile(g, tx+1, ty)
	}
}

func carveTile(g *Grid, tx, ty int) {
	if !g.InBounds(tx, ty) {
		return
	}
	if g.Tiles[ty][tx] == TileVoid {
		g.Tiles[ty][tx] = TileCorridor
	}
}
