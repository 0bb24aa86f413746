// Package flycam is a small real-time 3D scene viewer for [Ebitengine]: a
// free-fly camera, per-instance transforms and a CPU triangle renderer.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	cfg := flycam.DefaultConfig()
//	mesh, _ := flycam.LoadMesh(cfg)
//	scene, _ := flycam.NewSceneFromConfig(cfg, mesh)
//	flycam.Run(scene, flycam.RunConfig{Title: "teapots", Width: 1280, Height: 720})
//
// For full control, drive [Scene.Step] yourself and read the draw list:
//
//	input := flycam.NewInputState()
//	// feed key transitions and pointer motion into input ...
//	err := scene.Step(input, flycam.Frame{Width: w, Height: h, DT: dt})
//	input.ResetJustReleased()
//	vp := scene.ViewProjection()
//	for _, item := range scene.DrawList() {
//		// submit item.Mesh with vp * item.World
//	}
//
// # Camera
//
// [Camera] keeps yaw and pitch as its canonical orientation and rebuilds the
// forward/right/up basis from them on every update. Pitch is clamped just
// short of straight up and down. The orbit mode is reachable but not
// implemented: constructing or updating it returns [ErrNotImplemented].
//
// # Instances
//
// A [Mesh] is immutable and shared by pointer. Each [ModelInstance] owns a
// [Transform] whose world matrix is Translate * Rotate * Scale, rebuilt on
// demand. An [InstanceHook] may rewrite every transform once per frame; the
// default, [SpinY], turns each instance one degree per frame. Tweens (via
// [gween]) animate translation, scale and spin.
//
// # Integration
//
// Configuration loads from YAML ([LoadConfig]), meshes from glTF/GLB
// ([LoadGLTF]), logging goes through logrus, and scene events can be
// forwarded to a [Donburi] world with the adapter in flycam/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package flycam
