package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertNear(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.True(t, want.Near(got, tol), "want %v, got %v", want, got)
}

func TestIdentity(t *testing.T) {
	p := V(3, -4)
	assert.Equal(t, p, Identity().Apply(p))
	assert.True(t, Identity().IsIdentity())
}

func TestBuilderOrder(t *testing.T) {
	// (1,0) -> scale 2 -> (2,0) -> rotate 90° -> (0,2) -> translate (1,1) -> (1,3)
	m := Identity().Scale(2, 2).Rotate(math32.Pi / 2).Translate(1, 1)
	assertNear(t, V(1, 3), m.Apply(V(1, 0)))

	// explicit product in reverse order matches the builder.
	explicit := Translation(1, 1).Mul(Rotation(math32.Pi / 2)).Mul(Scaling(2, 2))
	assertNear(t, explicit.Apply(V(5, 7)), m.Apply(V(5, 7)))
}

func TestTranslateThenScaleDiffers(t *testing.T) {
	a := Identity().Translate(10, 0).Scale(2, 2)
	b := Identity().Scale(2, 2).Translate(10, 0)
	assertNear(t, V(20, 0), a.Apply(V(0, 0)))
	assertNear(t, V(10, 0), b.Apply(V(0, 0)))
}

func TestInvert(t *testing.T) {
	m := Identity().Scale(3, 0.5).Rotate(0.7).Translate(-12, 40)
	inv, ok := m.Invert()
	assert.True(t, ok)
	p := V(9, -2)
	assertNear(t, p, inv.Apply(m.Apply(p)))

	_, ok = Scaling(0, 1).Invert()
	assert.False(t, ok)
}

func TestRect(t *testing.T) {
	r := R(10, 20, 30, 40)
	assert.True(t, r.Contains(V(10, 20)))
	assert.True(t, r.Contains(V(40, 60)))
	assert.False(t, r.Contains(V(41, 60)))
	assert.Equal(t, V(40, 60), r.Max())
	assert.Equal(t, R(20, 40, 60, 80), r.Scale(2))
	assert.True(t, R(0, 0, 0, 5).Empty())
}
