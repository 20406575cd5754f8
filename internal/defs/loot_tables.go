// internal/defs/loot_tables.go
package defs

// DropEntry представляет одну запись в таблице выпадения.
// ItemID - это ID предмета, а Weight - его "вес" или относительный шанс выпадения.
type DropEntry struct {
	ItemID string `json:"item_id"`
	Weight int    `json:"weight"`
}

// EnemyDropTable — что выпадает из врагов.
var EnemyDropTable = []DropEntry{
	{ItemID: ItemPotion, Weight: 3},
	{ItemID: ItemAmmo, Weight: 5},
	{ItemID: ItemArmor, Weight: 2},
}

// CrateDropTable — что выпадает из разбитых ящиков.
var CrateDropTable = []DropEntry{
	{ItemID: ItemPotion, Weight: 4},
	{ItemID: ItemAmmo, Weight: 4},
	{ItemID: ItemArmor, Weight: 2},
}

// ChestDropTable — награды из супер-сундука. Сундук выдает несколько бросков.
var ChestDropTable = []DropEntry{
	{ItemID: ItemPotion, Weight: 4},
	{ItemID: ItemAmmo, Weight: 3},
	{ItemID: ItemArmor, Weight: 3},
}

// ChestRollCount — сколько предметов выдает супер-сундук.
const ChestRollCount = 3
