package flycam

// syntheticKind selects what a queued synthetic event does to InputState.
type syntheticKind uint8

const (
	syntheticIdle syntheticKind = iota // consumes a frame, changes nothing
	syntheticPress
	syntheticRelease
	syntheticPointer
)

// syntheticInputEvent is a single injected input event. Exactly one is
// applied per stepped or skipped frame, before the camera reads the input.
type syntheticInputEvent struct {
	kind   syntheticKind
	key    KeyCode
	dx, dy float32
}

// InjectKeyPress queues a key-down transition for the next frame.
func (s *Scene) InjectKeyPress(k KeyCode) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{kind: syntheticPress, key: k})
}

// InjectKeyRelease queues a key-up transition for the next frame.
func (s *Scene) InjectKeyRelease(k KeyCode) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{kind: syntheticRelease, key: k})
}

// InjectPointer queues relative pointer motion for the next frame.
func (s *Scene) InjectPointer(dx, dy float32) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{kind: syntheticPointer, dx: dx, dy: dy})
}

// InjectHold queues a press of k that stays held for frames frames and is
// released on the frame after. Minimum frames is 1.
func (s *Scene) InjectHold(k KeyCode, frames int) {
	if frames < 1 {
		frames = 1
	}
	s.InjectKeyPress(k)
	for i := 1; i < frames; i++ {
		s.injectQueue = append(s.injectQueue, syntheticInputEvent{kind: syntheticIdle})
	}
	s.InjectKeyRelease(k)
}

// InjectLook queues a pointer sweep of (dx, dy) spread evenly over frames
// frames. Minimum frames is 1.
func (s *Scene) InjectLook(dx, dy float32, frames int) {
	if frames < 1 {
		frames = 1
	}
	n := float32(frames)
	for i := 0; i < frames; i++ {
		s.InjectPointer(dx/n, dy/n)
	}
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it
// to input. Returns true if an event was consumed.
func (s *Scene) processInjectedInput(input *InputState) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPress:
		input.PressKey(evt.key)
	case syntheticRelease:
		input.ReleaseKey(evt.key)
	case syntheticPointer:
		input.AddPointerDelta(evt.dx, evt.dy)
	}
	return true
}
