package dungeon

import "math/rand"

const (
	torchChance      = 0.6
	crateChance      = 0.2
	placementRetries = 8
	maxObstacles     = 4
)

// placeContent fills every room with static content and enemy spawn
// descriptors. Placement failures are non-fatal: a spot that cannot be found
// within the retry budget is silently dropped.
func placeContent(lvl *Level, rng *rand.Rand) {
	// На боссовом уровне назначенный босс ровно один, даже если комнат
	// с ролью BOSS несколько.
	bossRoom := -1
	if lvl.Number%10 == 0 {
		for _, room := range lvl.Rooms {
			if room.Role == RoleBoss {
				bossRoom = room.ID
				break
			}
		}
	}
	for _, room := range lvl.Rooms {
		placeTorches(room, rng)
		placeObstacles(lvl.Grid, room, rng)
		placeCrate(lvl.Grid, room, rng)
		placeEnemies(lvl, room, rng, room.ID == bossRoom)
	}
}

// placeTorches puts a torch in each room corner with a fixed probability.
func placeTorches(room *Room, rng *rand.Rand) {
	corners := []TilePoint{
		{room.X, room.Y},
		{room.X + room.W - 1, room.Y},
		{room.X, room.Y + room.H - 1},
		{room.X + room.W - 1, room.Y + room.H - 1},
	}
	for _, c := range corners {
		if rng.Float64() < torchChance {
			room.Torches = append(room.Torches, c)
		}
	}
}

// placeObstacles marks a bounded number of interior pillar tiles as walls.
// Spawn and exit rooms stay clear, and pillars never block the room center.
func placeObstacles(g *Grid, room *Room, rng *rand.Rand) {
	if room.Role == RoleSpawn || room.Role == RoleExit {
		return
	}
	if room.W < 6 || room.H < 6 {
		return // слишком тесно для колонн
	}
	cx, cy := room.CenterTile()
	count := rng.Intn(maxObstacles + 1)
	for i := 0; i < count; i++ {
		tx := room.X + 1 + rng.Intn(room.W-2)
		ty := room.Y + 1 + rng.Intn(room.H-2)
		// Не перекрываем центр комнаты и его окрестность.
		if abs(tx-cx) <= 1 && abs(ty-cy) <= 1 {
			continue
		}
		if g.Tiles[ty][tx] != TileFloor {
			continue
		}
		g.Tiles[ty][tx] = TileWall
		room.Obstacles = append(room.Obstacles, TilePoint{tx, ty})
	}
}

// placeCrate puts at most one crate per room at a fixed probability. Spawn
// and boss rooms never get crates.
func placeCrate(g *Grid, room *Room, rng *rand.Rand) {
	if room.Role == RoleSpawn || room.Role == RoleBoss {
		return
	}
	if rng.Float64() >= crateChance {
		return
	}
	if p, ok := findFloorTile(g, room, rng); ok {
		room.Crates = append(room.Crates, p)
	}
}

// placeEnemies fills the room's spawn descriptor list depending on its role
// and the level number.
func placeEnemies(lvl *Level, room *Room, rng *rand.Rand, designatedBoss bool) {
	level := lvl.Number
	switch room.Role {
	case RoleSpawn, RoleExit:
		return // вход и выход всегда пустые

	case RoleLoot:
		// Небольшая фиксированная пара охраны.
		addSpawn(lvl.Grid, room, rng, string(enemyGoblin), false)
		addSpawn(lvl.Grid, room, rng, string(enemyGoblin), false)

	case RoleBoss:
		// Всегда один тяжелый тип; на боссовом уровне он назначенный босс.
		cx, cy := room.CenterTile()
		room.Spawns = append(room.Spawns, SpawnDescriptor{
			EnemyType: string(enemyOgre),
			TX:        cx, TY: cy,
			Boss: designatedBoss,
		})
		extras := 1 + rng.Intn(2)
		pool := enemyPool(level)
		for i := 0; i < extras; i++ {
			addSpawn(lvl.Grid, room, rng, pool[rng.Intn(len(pool))], false)
		}

	default: // RoleCombat
		count := 2 + level/2
		if count > 6 {
			count = 6
		}
		pool := enemyPool(level)
		for i := 0; i < count; i++ {
			addSpawn(lvl.Grid, room, rng, pool[rng.Intn(len(pool))], false)
		}
	}
}

// Локальные копии идентификаторов типов врагов: pkg/dungeon не зависит от
// internal/defs, совпадение проверяется тестом на стороне симуляции.
const (
	enemyGoblin = "GOBLIN"
	enemyOgre   = "OGRE"
	enemyArcher = "ARCHER"
	enemyWraith = "WRAITH"
)

// enemyPool returns the enemy types available at the level.
func enemyPool(level int) []string {
	pool := []string{enemyGoblin}
	if level >= 2 {
		pool = append(pool, enemyArcher)
	}
	if level >= 3 {
		pool = append(pool, enemyOgre)
	}
	if level >= 4 {
		pool = append(pool, enemyWraith)
	}
	return pool
}

// addSpawn tries to place one enemy on a floor tile of the room within the
// retry budget; exhaustion silently drops the enemy.
func addSpawn(g *Grid, room *Room, rng *rand.Rand, enemyType string, boss bool) {
	if p, ok := findFloorTile(g, room, rng); ok {
		room.Spawns = append(room.Spawns, SpawnDescriptor{EnemyType: enemyType, TX: p.X, TY: p.Y, Boss: boss})
	}
}

// findFloorTile picks a random floor tile inside the room, retrying a bounded
// number of times.
func findFloorTile(g *Grid, room *Room, rng *rand.Rand) (TilePoint, bool) {
	for i := 0; i < placementRetries; i++ {
		tx := room.X + rng.Intn(room.W)
		ty := room.Y + rng.Intn(room.H)
		if g.Tiles[ty][tx] == TileFloor {
			return TilePoint{tx, ty}, true
		}
	}
	return TilePoint{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
