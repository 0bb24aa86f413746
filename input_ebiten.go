package flycam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys maps each KeyCode to the ebiten key that drives it.
var ebitenKeys = [keyCount]ebiten.Key{
	KeyW:      ebiten.KeyW,
	KeyA:      ebiten.KeyA,
	KeyS:      ebiten.KeyS,
	KeyD:      ebiten.KeyD,
	KeyQ:      ebiten.KeyQ,
	KeyE:      ebiten.KeyE,
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeySpace:  ebiten.KeySpace,
	KeyShift:  ebiten.KeyShiftLeft,
	KeyEscape: ebiten.KeyEscape,
}

// EbitenInput translates ebiten's polled keyboard and cursor state into
// InputState transitions and pointer deltas.
type EbitenInput struct {
	// Sensitivity converts cursor pixels into radians.
	Sensitivity float32

	lastX, lastY int
	hasLast      bool
}

// NewEbitenInput returns a poller with the given sensitivity.
func NewEbitenInput(sensitivity float32) *EbitenInput {
	return &EbitenInput{Sensitivity: sensitivity}
}

// Poll feeds this tick's key transitions and cursor motion into in. Cursor
// motion only counts while the cursor is captured or the right mouse
// button is held.
func (e *EbitenInput) Poll(in *InputState) {
	for k := KeyCode(1); k < keyCount; k++ {
		ek := ebitenKeys[k]
		if inpututil.IsKeyJustPressed(ek) {
			in.PressKey(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			in.ReleaseKey(k)
		}
	}

	mx, my := ebiten.CursorPosition()
	looking := ebiten.CursorMode() == ebiten.CursorModeCaptured ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if looking && e.hasLast {
		in.AddPointerDelta(float32(mx-e.lastX)*e.Sensitivity, float32(my-e.lastY)*e.Sensitivity)
	}
	e.lastX, e.lastY = mx, my
	e.hasLast = true
}

// ToggleCapture switches between a captured (hidden, relative) cursor and a
// visible one.
func (e *EbitenInput) ToggleCapture() {
	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	// The first position after a mode switch can jump; drop it.
	e.hasLast = false
}
