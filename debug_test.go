package flycam

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func TestDebugModeLogsFrames(t *testing.T) {
	s := NewScene(DefaultCamera())
	log, hook := newTestLogger()
	s.SetLogger(log)
	s.SetDebugMode(true)
	s.SetFPSSource(func() float64 { return 47.5 })
	s.AddGrid(NewCubeMesh(1), 2, 1)

	if err := s.Step(NewInputState(), testFrame); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry in debug mode")
	}
	if e.Level != logrus.DebugLevel || e.Message != "frame" {
		t.Errorf("entry = %v %q", e.Level, e.Message)
	}
	if e.Data["frame"] != uint64(1) || e.Data["instances"] != 4 {
		t.Errorf("fields = %v", e.Data)
	}
	if e.Data["fps"] != 47.5 {
		t.Errorf("fps = %v, want 47.5", e.Data["fps"])
	}
	if e.Data["dt"] != float32(1.0/DefaultTPS) {
		t.Errorf("dt = %v", e.Data["dt"])
	}
}

func TestDebugModeMeasuresFPS(t *testing.T) {
	s := NewScene(DefaultCamera())
	log, hook := newTestLogger()
	s.SetLogger(log)
	s.SetDebugMode(true)

	// Same DT every step; the logged rate comes from the wall clock.
	if err := s.Step(NewInputState(), testFrame); err != nil {
		t.Fatal(err)
	}
	if fps := hook.LastEntry().Data["fps"]; fps != 0.0 {
		t.Errorf("first frame fps = %v, want 0", fps)
	}
	time.Sleep(5 * time.Millisecond)
	if err := s.Step(NewInputState(), testFrame); err != nil {
		t.Fatal(err)
	}
	fps, ok := hook.LastEntry().Data["fps"].(float64)
	if !ok || fps <= 0 || fps > 1000.0/5 {
		t.Errorf("second frame fps = %v, want in (0, 200]", hook.LastEntry().Data["fps"])
	}
}

func TestReleaseModeIsSilent(t *testing.T) {
	s := NewScene(DefaultCamera())
	log, hook := newTestLogger()
	s.SetLogger(log)

	if err := s.Step(NewInputState(), testFrame); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(NewInputState(), Frame{}); err != nil {
		t.Fatal(err)
	}
	if n := len(hook.AllEntries()); n != 0 {
		t.Errorf("%d log entries with debug off", n)
	}
}

func TestDebugModeLogsSkippedFrames(t *testing.T) {
	s := NewScene(DefaultCamera())
	log, hook := newTestLogger()
	s.SetLogger(log)
	s.SetDebugMode(true)

	if err := s.Step(NewInputState(), Frame{Width: 0, Height: 480}); err != nil {
		t.Fatal(err)
	}
	e := hook.LastEntry()
	if e == nil || e.Message != "frame skipped" || e.Data["height"] != 480 {
		t.Errorf("entry = %+v", e)
	}
}

func TestDebugLogRender(t *testing.T) {
	s := NewScene(DefaultCamera())
	log, hook := newTestLogger()
	s.SetLogger(log)

	s.debugLogRender(renderStats{items: 3})
	if len(hook.AllEntries()) != 0 {
		t.Fatal("render stats logged with debug off")
	}
	s.SetDebugMode(true)
	s.debugLogRender(renderStats{items: 3, triangles: 36, culled: 18, batches: 1})
	e := hook.LastEntry()
	if e == nil || e.Message != "render" || e.Data["triangles"] != 36 || e.Data["culled"] != 18 {
		t.Errorf("entry = %+v", e)
	}
}

func TestSetLoggerNilRestoresStandard(t *testing.T) {
	s := NewScene(DefaultCamera())
	s.SetLogger(nil)
	if s.log != logrus.StandardLogger() {
		t.Error("SetLogger(nil) did not restore the standard logger")
	}
}
