// Package geom is the small float32 math contract the renderer needs:
// vectors, rectangles and 2D affine transforms.
package geom

import "github.com/chewxy/math32"

type Vec2 struct{ X, Y float32 }

func V(x, y float32) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2          { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2          { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2     { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float32             { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) Near(o Vec2, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct{ X, Y, W, H float32 }

func R(x, y, w, h float32) Rect { return Rect{x, y, w, h} }

func (r Rect) Min() Vec2  { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2  { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Scale multiplies every component, e.g. logical to physical pixels.
func (r Rect) Scale(s float32) Rect { return Rect{r.X * s, r.Y * s, r.W * s, r.H * s} }

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * math32.Pi / 180 }
