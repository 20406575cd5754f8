// internal/event/types.go
package event

import "go-dungeon-crawler/internal/types"

const (
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен
	EnemyHit       EventType = "EnemyHit"       // Враг получил урон
	PlayerHit      EventType = "PlayerHit"      // Игрок получил урон
	PlayerDied     EventType = "PlayerDied"     // Игрок погиб
	ItemPickedUp   EventType = "ItemPickedUp"   // Предмет подобран
	ChestOpened    EventType = "ChestOpened"    // Сундук открыт
	Explosion      EventType = "Explosion"      // Взрыв
	ProjectileWall EventType = "ProjectileWall" // Снаряд попал в стену (для искр)
	LevelCleared   EventType = "LevelCleared"   // Все враги уровня мертвы
	LevelStarted   EventType = "LevelStarted"   // Новый уровень загружен
)

// KillData — полезная нагрузка события EnemyKilled.
type KillData struct {
	ID      types.EntityID
	X, Y    float64
	IsElite bool
	IsBoss  bool
	XPValue int
}

// HitData — полезная нагрузка событий EnemyHit/PlayerHit.
type HitData struct {
	ID     types.EntityID
	Damage float64
	Crit   bool
}

// ExplosionData — полезная нагрузка события Explosion.
type ExplosionData struct {
	X, Y   float64
	Radius float64
}

// WallHitData — координаты и направление попадания снаряда в стену.
type WallHitData struct {
	X, Y   float64
	DX, DY float64
}
