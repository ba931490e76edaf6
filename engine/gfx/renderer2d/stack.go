package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

func (r *Renderer2D) resetStacks() {
	r.transforms = append(r.transforms[:0], geom.Identity())
	r.targets = append(r.targets[:0], gfx.Screen())
}

// Transform is the top of the transform stack.
func (r *Renderer2D) Transform() geom.Transform { return r.transforms[len(r.transforms)-1] }

// TransformDepth counts stack entries, including the base identity.
func (r *Renderer2D) TransformDepth() int { return len(r.transforms) }

// PushTransform duplicates the top of the stack.
func (r *Renderer2D) PushTransform() {
	r.transforms = append(r.transforms, r.Transform())
}

// PopTransform removes the top; the base entry cannot be popped.
func (r *Renderer2D) PopTransform() error {
	if len(r.transforms) == 1 {
		return errs.State("renderer2d.PopTransform", "cannot pop the base transform")
	}
	r.transforms = r.transforms[:len(r.transforms)-1]
	return nil
}

// SetTransform replaces the top in place.
func (r *Renderer2D) SetTransform(m geom.Transform) {
	r.transforms[len(r.transforms)-1] = m
}

// Target is the top of the target stack.
func (r *Renderer2D) Target() gfx.Target { return r.targets[len(r.targets)-1] }

func (r *Renderer2D) TargetDepth() int { return len(r.targets) }

// setTarget flushes pending work against the old target before switching.
func (r *Renderer2D) setTarget(t gfx.Target) error {
	if r.Target() == t {
		return nil
	}
	if err := r.flush("target change"); err != nil {
		return err
	}
	r.targets[len(r.targets)-1] = t
	return nil
}

// SetViewport clips the current target to rect, in logical units; nil
// removes the clip. Draw coordinates become relative to the rectangle.
func (r *Renderer2D) SetViewport(rect *geom.Rect) error {
	t := r.Target()
	if rect == nil {
		t.Clip, t.Clipped = geom.Rect{}, false
	} else {
		t.Clip, t.Clipped = *rect, true
	}
	return r.setTarget(t)
}

// Viewport returns the clip of the current target, if any.
func (r *Renderer2D) Viewport() (geom.Rect, bool) {
	t := r.Target()
	return t.Clip, t.Clipped
}

// SetCanvas redirects drawing to c; nil returns to the default framebuffer.
// The clip is dropped in both cases.
func (r *Renderer2D) SetCanvas(c gfx.Canvas) error {
	return r.setTarget(gfx.Target{Canvas: c})
}

func (r *Renderer2D) Canvas() gfx.Canvas { return r.Target().Canvas }

// PushTarget duplicates the current target so it can be restored by PopTarget.
func (r *Renderer2D) PushTarget() {
	r.targets = append(r.targets, r.Target())
}

// PopTarget restores the previous target.
func (r *Renderer2D) PopTarget() error {
	if len(r.targets) == 1 {
		return errs.State("renderer2d.PopTarget", "cannot pop the base target")
	}
	if err := r.flush("target change"); err != nil {
		return err
	}
	r.targets = r.targets[:len(r.targets)-1]
	return nil
}

// TargetSize is the logical size draw coordinates span on the current target.
func (r *Renderer2D) TargetSize() geom.Vec2 {
	t := r.Target()
	switch {
	case t.Clipped:
		return t.Clip.Size()
	case t.Canvas != nil:
		w, h := t.Canvas.Size()
		return geom.V(float32(w), float32(h))
	}
	w, h := r.dev.LogicalSize()
	return geom.V(w, h)
}
