package flycam

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// KeyCode identifies a keyboard key recognised by the viewer.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "unknown",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyQ:       "q",
	KeyE:       "e",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeySpace:   "space",
	KeyShift:   "shift",
	KeyEscape:  "escape",
}

// String returns the lower-case key name used in config files.
func (k KeyCode) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKeyCode looks up a key by its case-insensitive name.
func ParseKeyCode(name string) (KeyCode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if KeyCode(i) != KeyUnknown && n == name {
			return KeyCode(i), nil
		}
	}
	return KeyUnknown, errors.Errorf("unknown key %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k KeyCode) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *KeyCode) UnmarshalText(text []byte) error {
	parsed, err := ParseKeyCode(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// InputState accumulates keyboard and pointer input between frames.
//
// A key is either held or not. justReleased is a transient overlay that only
// ResetJustReleased clears; pressing a key again does not remove it.
type InputState struct {
	held         [keyCount]bool
	justReleased [keyCount]bool
	pointerDelta mgl32.Vec2
}

// NewInputState returns an empty InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// PressKey records a key-down transition.
func (in *InputState) PressKey(k KeyCode) {
	if k >= keyCount {
		return
	}
	in.held[k] = true
}

// ReleaseKey records a key-up transition. Releasing a key that was not held
// is a no-op.
func (in *InputState) ReleaseKey(k KeyCode) {
	if k >= keyCount || !in.held[k] {
		return
	}
	in.held[k] = false
	in.justReleased[k] = true
}

// KeyDown reports whether k is currently held.
func (in *InputState) KeyDown(k KeyCode) bool {
	return k < keyCount && in.held[k]
}

// KeyJustReleased reports whether k was released since the last
// ResetJustReleased.
func (in *InputState) KeyJustReleased(k KeyCode) bool {
	return k < keyCount && in.justReleased[k]
}

// ResetJustReleased clears the released overlay. The frame loop calls this
// once per frame after the update.
func (in *InputState) ResetJustReleased() {
	in.justReleased = [keyCount]bool{}
}

// AddPointerDelta accumulates relative pointer motion. Several OS events may
// arrive between frames; they add up.
func (in *InputState) AddPointerDelta(dx, dy float32) {
	in.pointerDelta[0] += dx
	in.pointerDelta[1] += dy
}

// PointerDelta returns the accumulated motion without consuming it.
func (in *InputState) PointerDelta() mgl32.Vec2 {
	return in.pointerDelta
}

// ConsumePointerDelta returns the accumulated motion and resets it to zero.
func (in *InputState) ConsumePointerDelta() mgl32.Vec2 {
	d := in.pointerDelta
	in.pointerDelta = mgl32.Vec2{}
	return d
}
