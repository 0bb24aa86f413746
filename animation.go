package flycam

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float32 fields of an instance transform
// simultaneously. Create one via TweenTranslation, TweenScale or TweenSpin,
// then either call Update(dt) yourself or hand it to Scene.AddTween.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float32
	target *ModelInstance
	// apply runs after the fields are written, for values that are not
	// stored directly in the transform (such as a spin angle).
	apply func()
	Done  bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	if g.apply != nil {
		g.apply()
	}
	g.Done = allDone
}

// Target returns the animated instance.
func (g *TweenGroup) Target() *ModelInstance {
	return g.target
}

// TweenTranslation moves inst to (x, y, z) over duration seconds.
func TweenTranslation(inst *ModelInstance, x, y, z, duration float32, fn ease.TweenFunc) *TweenGroup {
	t := &inst.Transform.Translation
	g := &TweenGroup{count: 3, target: inst}
	g.tweens[0] = gween.New(t[0], x, duration, fn)
	g.tweens[1] = gween.New(t[1], y, duration, fn)
	g.tweens[2] = gween.New(t[2], z, duration, fn)
	g.fields[0] = &t[0]
	g.fields[1] = &t[1]
	g.fields[2] = &t[2]
	return g
}

// TweenScale scales inst to (x, y, z) over duration seconds.
func TweenScale(inst *ModelInstance, x, y, z, duration float32, fn ease.TweenFunc) *TweenGroup {
	s := &inst.Transform.Scale
	g := &TweenGroup{count: 3, target: inst}
	g.tweens[0] = gween.New(s[0], x, duration, fn)
	g.tweens[1] = gween.New(s[1], y, duration, fn)
	g.tweens[2] = gween.New(s[2], z, duration, fn)
	g.fields[0] = &s[0]
	g.fields[1] = &s[1]
	g.fields[2] = &s[2]
	return g
}

// TweenSpin rotates inst about +Y from one angle to another (radians) over
// duration seconds. The rotation is replaced, not composed.
func TweenSpin(inst *ModelInstance, from, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: inst}
	angle := new(float32)
	*angle = from
	g.tweens[0] = gween.New(from, to, duration, fn)
	g.fields[0] = angle
	g.apply = func() { inst.Transform.SetRotationY(*angle) }
	return g
}
