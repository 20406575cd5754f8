package dungeon

// RoomRole tags the purpose of a room. Exactly one spawn and one exit room
// exist per level.
type RoomRole uint8

const (
	RoleSpawn RoomRole = iota
	RoleExit
	RoleCombat
	RoleLoot
	RoleBoss
)

func (r RoomRole) String() string {
	switch r {
	case RoleSpawn:
		return "SPAWN"
	case RoleExit:
		return "EXIT"
	case RoleCombat:
		return "COMBAT"
	case RoleLoot:
		return "LOOT"
	case RoleBoss:
		return "BOSS"
	}
	return "UNKNOWN"
}

// TilePoint is a tile coordinate inside the grid.
type TilePoint struct {
	X, Y int
}

// SpawnDescriptor describes one enemy to instantiate at level load.
// EnemyType matches a definition ID ("GOBLIN", "OGRE", "ARCHER", "WRAITH").
type SpawnDescriptor struct {
	EnemyType string
	TX, TY    int
	Boss      bool // назначенный босс уровня (каждый 10-й уровень)
}

// Room is one rectangular room carved from a BSP leaf.
type Room struct {
	ID        int
	Role      RoomRole
	X, Y      int // верхний левый угол в клетках
	W, H      int
	Connected []int // неориентированные ребра графа комнат

	Torches   []TilePoint
	Obstacles []TilePoint
	Crates    []TilePoint
	Spawns    []SpawnDescriptor
}

// CenterTile returns the tile coordinate of the room center.
func (r *Room) CenterTile() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterWorld returns the world coordinate of the room center.
func (r *Room) CenterWorld(tileSize float64) (float64, float64) {
	cx, cy := r.CenterTile()
	return TileCenter(cx, cy, tileSize)
}

// ContainsTile reports whether the tile coordinate lies inside the room bounds.
func (r *Room) ContainsTile(tx, ty int) bool {
	return tx >= r.X && ty >= r.Y && tx < r.X+r.W && ty < r.Y+r.H
}
