package geom

import "github.com/chewxy/math32"

// Transform is a 2x3 affine matrix:
//
//	| A C Tx |
//	| B D Ty |
//
// mapping (x, y) to (A*x + C*y + Tx, B*x + D*y + Ty).
//
// The builder methods compose in reading order, so
//
//	Identity().Scale(2, 2).Rotate(a).Translate(100, 0)
//
// scales first, then rotates, then places the result at (100, 0).
type Transform struct {
	A, B, C, D, Tx, Ty float32
}

// Identity returns the transform that maps every point onto itself.
func Identity() Transform { return Transform{A: 1, D: 1} }

func Translation(x, y float32) Transform { return Transform{A: 1, D: 1, Tx: x, Ty: y} }

func Scaling(sx, sy float32) Transform { return Transform{A: sx, D: sy} }

// Rotation rotates by rad radians; positive is clockwise on a Y-down screen.
func Rotation(rad float32) Transform {
	s, c := math32.Sin(rad), math32.Cos(rad)
	return Transform{A: c, B: s, C: -s, D: c}
}

// Mul returns t·o: o is applied first, then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		Tx: t.A*o.Tx + t.C*o.Ty + t.Tx,
		Ty: t.B*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Then returns the transform that applies t and afterwards o.
func (t Transform) Then(o Transform) Transform { return o.Mul(t) }

func (t Transform) Translate(x, y float32) Transform { return t.Then(Translation(x, y)) }
func (t Transform) Scale(sx, sy float32) Transform   { return t.Then(Scaling(sx, sy)) }
func (t Transform) Rotate(rad float32) Transform     { return t.Then(Rotation(rad)) }

// Apply maps a point.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{t.A*p.X + t.C*p.Y + t.Tx, t.B*p.X + t.D*p.Y + t.Ty}
}

// Invert returns the inverse transform. ok is false for a singular matrix,
// in which case the identity is returned.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Identity(), false
	}
	id := 1 / det
	inv = Transform{
		A: t.D * id,
		B: -t.B * id,
		C: -t.C * id,
		D: t.A * id,
	}
	inv.Tx = -(inv.A*t.Tx + inv.C*t.Ty)
	inv.Ty = -(inv.B*t.Tx + inv.D*t.Ty)
	return inv, true
}

func (t Transform) IsIdentity() bool { return t == Identity() }
