// internal/system/movement.go
package system

import (
	"go-dungeon-crawler/internal/component"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/utils"
	"go-dungeon-crawler/pkg/dungeon"
	"math"
)

// MoveWithCollision интегрирует позицию по скорости, разрешая столкновения
// со стенами поосно: заблокированная ось откатывается, движение по второй
// оси сохраняется (скольжение вдоль стены). Возвращает, какие оси были
// заблокированы.
func MoveWithCollision(grid *dungeon.Grid, pos *component.Position, vel *component.Velocity, radius, dt float64) (blockedX, blockedY bool) {
	newX := pos.X + vel.X*dt
	if grid.CircleBlocked(newX, pos.Y, radius, config.TileSize) {
		blockedX = true
	} else {
		pos.X = newX
	}

	newY := pos.Y + vel.Y*dt
	if grid.CircleBlocked(pos.X, newY, radius, config.TileSize) {
		blockedY = true
	} else {
		pos.Y = newY
	}
	return blockedX, blockedY
}

// SteerToward смещает вектор скорости к желаемому направлению на цель.
// Ускорение взвешено по dt, итоговая скорость ограничена maxSpeed.
func SteerToward(vel *component.Velocity, fromX, fromY, toX, toY, maxSpeed, dt float64) {
	dirX, dirY := utils.Normalize(toX-fromX, toY-fromY)
	t := utils.Clamp(config.SteerAccel*dt, 0, 1)
	vel.X = utils.Lerp(vel.X, dirX*maxSpeed, t)
	vel.Y = utils.Lerp(vel.Y, dirY*maxSpeed, t)
	vel.X, vel.Y = utils.ClampLen(vel.X, vel.Y, maxSpeed)
}

// SteerAway — то же, что SteerToward, но от цели.
func SteerAway(vel *component.Velocity, fromX, fromY, toX, toY, maxSpeed, dt float64) {
	SteerToward(vel, fromX, fromY, 2*fromX-toX, 2*fromY-toY, maxSpeed, dt)
}

// DriftVelocity поворачивает вектор скорости на заданный угол. Используется
// для углового увода при контакте со стеной, чтобы враг не залипал.
func DriftVelocity(vel *component.Velocity, angle float64) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	x := vel.X*cos - vel.Y*sin
	y := vel.X*sin + vel.Y*cos
	vel.X, vel.Y = x, y
}
