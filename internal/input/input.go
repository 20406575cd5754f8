// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intent — снимок ввода за один кадр. Дискретные действия взводятся по
// фронту ("just pressed"), потребляются один раз и сбрасываются при
// следующем сборе.
type Intent struct {
	MoveX, MoveY float64 // вектор намерения движения, нормированный
	AimX, AimY   float64 // точка прицеливания в мировых координатах

	FireHeld   bool
	Melee      bool
	Dash       bool
	Interact   bool
	Potion     bool
	Reload     bool
	WeaponSlot int // -1 — без переключения, иначе индекс слота
}

// Gather собирает состояние устройств ввода ebiten в Intent.
// cameraX/cameraY — смещение вида для перевода курсора в мировые координаты.
func Gather(cameraX, cameraY float64) Intent {
	in := Intent{WeaponSlot: -1}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if in.MoveX != 0 && in.MoveY != 0 {
		// Диагональ не должна быть быстрее
		const inv = 0.7071067811865476
		in.MoveX *= inv
		in.MoveY *= inv
	}

	mx, my := ebiten.CursorPosition()
	in.AimX = float64(mx) + cameraX
	in.AimY = float64(my) + cameraY

	in.FireHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Melee = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Potion = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		in.WeaponSlot = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		in.WeaponSlot = 1
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		in.WeaponSlot = 2
	}

	return in
}
