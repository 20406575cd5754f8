// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// AoeEffect — расширяющееся кольцо (взрыв, удар огра). Чисто визуальный
// компонент: урон применяется системой боя в момент создания.
type AoeEffect struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
	Color        color.RGBA
}
