// component/movement.go
package component

// Position — компонент позиции (мировые координаты)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (вектор, пикселей в секунду)
type Velocity struct {
	X, Y float64
}
