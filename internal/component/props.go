// internal/component/props.go
package component

// Crate — разрушаемый ящик с таблицей наград.
type Crate struct {
	HP float64
}

// ItemKind — вид подбираемого предмета.
type ItemKind string

const (
	ItemPotion ItemKind = "POTION"
	ItemAmmo   ItemKind = "AMMO"
	ItemArmor  ItemKind = "ARMOR"
)

// Item — лежащий на полу предмет.
type Item struct {
	Kind ItemKind
}

// SuperChest — сундук в комнате добычи. Открывается только когда все враги
// уровня мертвы; попытка открыть раньше — no-op.
type SuperChest struct {
	Opened bool
}
