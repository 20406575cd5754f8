package dungeon

import "math/rand"

// Config drives procedural generation for one level. Regeneration is
// parameterized only by (Seed, Level): the same pair always produces a
// bit-identical result.
type Config struct {
	Seed  int64
	Level int // номер уровня, начиная с 1
}

// Level is the generated dungeon: the tile grid, the room graph and the
// references the simulation needs to place entities.
type Level struct {
	Grid      *Grid
	Rooms     []*Room
	SpawnRoom *Room // комната появления игрока
	ExitRoom  *Room // комната выхода
	Number    int
	Seed      int64
}

const (
	baseMapWidth  = 44
	baseMapHeight = 32
	mapWidthStep  = 10
	mapHeightStep = 7
	maxSizeSteps  = 4
)

// Generate builds a complete level. The generator never fails: degenerate
// regions fall back to single rooms and exhausted placement retries are
// silently dropped, so the result is always a playable, connected level.
func Generate(cfg Config) *Level {
	// Отдельный поток для каждой пары (seed, level).
	rng := rand.New(rand.NewSource(cfg.Seed + int64(cfg.Level)*7919))

	// 1. Размер карты растет ступенями с уровнем.
	step := (cfg.Level - 1) / 3
	if step > maxSizeSteps {
		step = maxSizeSteps
	}
	width := baseMapWidth + step*mapWidthStep
	height := baseMapHeight + step*mapHeightStep

	grid := NewGrid(width, height)

	// 2-3. Рекурсивное разбиение и комнаты в листьях.
	depth := 3 + cfg.Level/5
	if depth > 6 {
		depth = 6
	}
	root := &bspNode{x: 0, y: 0, w: width, h: height}
	root.splitRecursive(rng, depth)

	var rooms []*Room
	root.createRooms(grid, &rooms, rng)
	if len(rooms) == 0 {
		// Регион не удалось разбить вообще — одна комната на всю карту.
		room := &Room{ID: 0, Role: RoleSpawn, X: 2, Y: 2, W: width - 4, H: height - 4}
		for ty := room.Y; ty < room.Y+room.H; ty++ {
			for tx := room.X; tx < room.X+room.W; tx++ {
				grid.Tiles[ty][tx] = TileFloor
			}
		}
		rooms = append(rooms, room)
	}

	// 4. Коридоры и граф связности.
	root.connectChildren(grid, rooms, rng)

	// 5. Синтез стен: любая пустота, примыкающая к полу или коридору.
	synthesizeWalls(grid)

	lvl := &Level{
		Grid:   grid,
		Rooms:  rooms,
		Number: cfg.Level,
		Seed:   cfg.Seed,
	}

	// 6. Роли комнат.
	tagRooms(lvl)

	// 7. Содержимое комнат.
	placeContent(lvl, rng)

	return lvl
}

// synthesizeWalls turns every void tile 8-adjacent to a floor or corridor
// tile into a wall. All remaining void stays impassable.
func synthesizeWalls(g *Grid) {
	for ty := 0; ty < g.Height; ty++ {
		for tx := 0; tx < g.Width; tx++ {
			if g.Tiles[ty][tx] != TileVoid {
				continue
			}
			adjacent := false
			for dy := -1; dy <= 1 && !adjacent; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					t := g.At(tx+dx, ty+dy)
					if t == TileFloor || t == TileCorridor {
						adjacent = true
						break
					}
				}
			}
			if adjacent {
				g.Tiles[ty][tx] = TileWall
			}
		}
	}
}

// tagRooms assigns roles: room 0 is the spawn, the farthest room by BFS over
// the connectivity graph is the exit (first found wins ties), and the rest
// are cycled into loot/boss roles by index pattern — roughly one of each per
// five rooms.
func tagRooms(lvl *Level) {
	rooms := lvl.Rooms
	rooms[0].Role = RoleSpawn
	lvl.SpawnRoom = rooms[0]

	if len(rooms) == 1 {
		lvl.ExitRoom = rooms[0]
		return
	}

	dist := bfsDistances(rooms, 0)
	exit := 0
	best := -1
	for i, d := range dist {
		if i == 0 || d < 0 {
			continue
		}
		if d > best {
			best = d
			exit = i
		}
	}
	if exit == 0 {
		// Несвязный граф невозможен по построению, но на всякий случай
		// берем последнюю комнату.
		exit = len(rooms) - 1
	}
	rooms[exit].Role = RoleExit
	lvl.ExitRoom = rooms[exit]

	// Остальные комнаты циклически получают роли по шаблону индексов.
	counter := 0
	bossAssigned := -1
	for _, r := range rooms {
		if r.Role != RoleCombat {
			continue
		}
		counter++
		switch counter % 5 {
		case 2:
			r.Role = RoleLoot
		case 4:
			r.Role = RoleBoss
			bossAssigned = r.ID
		}
	}

	// Комната босса обязана существовать, когда уровень кратен десяти:
	// повышаем самую дальнюю боевую комнату.
	if bossAssigned < 0 && lvl.Number%10 == 0 {
		best := -1
		for _, r := range rooms {
			if r.Role != RoleCombat {
				continue
			}
			if dist[r.ID] > best {
				best = dist[r.ID]
				bossAssigned = r.ID
			}
		}
		if bossAssigned >= 0 {
			rooms[bossAssigned].Role = RoleBoss
		}
	}
}

// bfsDistances returns graph distances from the start room; -1 marks
// unreachable rooms.
func bfsDistances(rooms []*Room, start int) []int {
	dist := make([]int, len(rooms))
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := []int{start}
	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++
		for _, next := range rooms[cur].Connected {
			if dist[next] < 0 {
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}
