package renderer2d_test

import (
	"testing"

	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/gfx/gfxtest"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T, opts renderer2d.Options) (*renderer2d.Renderer2D, *gfxtest.Device) {
	t.Helper()
	dev := gfxtest.NewDevice(800, 600)
	r, err := renderer2d.New(dev, opts)
	require.NoError(t, err)
	t.Cleanup(r.Release)
	require.NoError(t, r.BeginFrame())
	return r, dev
}

func sprite() renderer2d.SpriteParams {
	return renderer2d.SpriteParams{Region: geom.R(0, 0, 16, 16)}
}

func TestSameStateSpritesShareOneBatch(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	tex := &gfxtest.Texture{Name: "a", W: 32, H: 32}

	require.NoError(t, r.DrawSprite(tex, sprite(), geom.Identity()))
	require.NoError(t, r.DrawSprite(tex, sprite(), geom.Translation(20, 0)))
	assert.Empty(t, dev.Draws, "nothing is drawn before a flush")
	require.NoError(t, r.EndFrame())

	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.Equal(t, gfx.Triangles, d.Primitive)
	assert.Equal(t, 12, d.Count)
	assert.Len(t, d.Vertices, 8*gfx.VertexStride)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, d.Indices)
	assert.Same(t, tex, d.Texture)

	st := r.Stats()
	assert.Equal(t, 1, st.DrawCalls)
	assert.Equal(t, 2, st.QuadCount)
	assert.Equal(t, 8, st.VertexCount)
	assert.Equal(t, 12, st.IndexCount)
}

func TestTextureChangeSplitsBatches(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	a := &gfxtest.Texture{Name: "a", W: 16, H: 16}
	b := &gfxtest.Texture{Name: "b", W: 16, H: 16}

	require.NoError(t, r.DrawSprite(a, sprite(), geom.Identity()))
	require.NoError(t, r.DrawSprite(b, sprite(), geom.Identity()))
	require.NoError(t, r.DrawSprite(a, sprite(), geom.Identity()))
	require.NoError(t, r.EndFrame())

	require.Len(t, dev.Draws, 3)
	assert.Same(t, a, dev.Draws[0].Texture)
	assert.Same(t, b, dev.Draws[1].Texture)
	assert.Same(t, a, dev.Draws[2].Texture)
}

func TestTransformChangeFlushes(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	r.SetTransform(geom.Translation(5, 5))
	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.EndFrame())

	require.Len(t, dev.Draws, 2)
	assert.Equal(t, []float32{5, 5}, dev.Draws[1].Vertices[:2], "positions are baked with the stack top")
}

func TestFlatSpriteUsesWhiteTexel(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	red := colors.Red
	require.NoError(t, r.DrawSprite(nil, sprite().Tinted(red), geom.Identity()))
	require.NoError(t, r.Flush())

	require.Len(t, dev.Draws, 1)
	white, ok := dev.Draws[0].Texture.(*gfxtest.Texture)
	require.True(t, ok)
	assert.Equal(t, 1, white.W)
	assert.Equal(t, 1, white.H)
	assert.Equal(t, []float32{1, 0, 0, 1}, dev.Draws[0].Vertices[4:8])
}

func TestSpriteVertexLayout(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	tex := &gfxtest.Texture{W: 32, H: 32}
	p := renderer2d.SpriteParams{
		Region: geom.R(16, 0, 16, 8),
		Origin: geom.V(8, 4),
		Colors: &[4]colors.Color{colors.Red, colors.Green, colors.Blue, colors.White},
	}
	require.NoError(t, r.DrawSprite(tex, p, geom.Translation(100, 50)))
	require.NoError(t, r.Flush())

	v := dev.Draws[0].Vertices
	// top-left: position, uv, color
	assert.Equal(t, []float32{92, 46, 0.5, 0, 1, 0, 0, 1}, v[0:8])
	// bottom-right
	assert.Equal(t, []float32{108, 54, 1, 0.25, 0, 0, 1, 1}, v[16:24])
}

func TestFlippedTextureUV(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	c, err := r.NewCanvas(64, 64)
	require.NoError(t, err)

	require.NoError(t, r.DrawSprite(c.Texture(), renderer2d.SpriteParams{}, geom.Identity()))
	require.NoError(t, r.Flush())
	v := dev.Draws[0].Vertices
	assert.Equal(t, float32(1), v[3], "top edge samples the last row")
	assert.Equal(t, float32(0), v[2*gfx.VertexStride+3])
}

func TestEmptyUntexturedSpriteDrawsNothing(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	require.NoError(t, r.DrawSprite(nil, renderer2d.SpriteParams{}, geom.Identity()))
	require.NoError(t, r.EndFrame())
	assert.Empty(t, dev.Draws)
}

func TestBeginFrameFlushesDrawsOutsideFrame(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	require.NoError(t, r.EndFrame())

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	r.PushTransform()
	require.NoError(t, r.BeginFrame())

	require.Len(t, dev.Draws, 1, "the pending sprite is not dropped")
	assert.Equal(t, 6, dev.Draws[0].Count)
	assert.Equal(t, 1, r.Stats().DrawCalls)
	assert.Equal(t, 1, r.TransformDepth(), "stacks return to their base")

	require.NoError(t, r.EndFrame())
	assert.Len(t, dev.Draws, 1)
}

func TestTransformStackRoundTrip(t *testing.T) {
	r, _ := newRenderer(t, renderer2d.Options{})
	before := geom.Identity().Scale(2, 2).Translate(3, 4)
	r.SetTransform(before)

	r.PushTransform()
	assert.Equal(t, 2, r.TransformDepth())
	assert.Equal(t, before, r.Transform(), "push duplicates the top")
	r.SetTransform(geom.Rotation(1))
	require.NoError(t, r.PopTransform())

	assert.Equal(t, before, r.Transform())
	assert.Equal(t, 1, r.TransformDepth())
}

func TestPopBaseTransformFails(t *testing.T) {
	r, _ := newRenderer(t, renderer2d.Options{})
	err := r.PopTransform()
	assert.ErrorIs(t, err, errs.ErrState)
	assert.Equal(t, 1, r.TransformDepth())
	assert.True(t, r.Transform().IsIdentity())

	assert.ErrorIs(t, r.PopTarget(), errs.ErrState)
}

func TestTargetSwitchFlushesAndKeepsTransforms(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	m := geom.Translation(1, 2)
	r.PushTransform()
	r.SetTransform(m)

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	c, err := r.NewCanvas(128, 128)
	require.NoError(t, err)
	require.NoError(t, r.SetCanvas(c))
	assert.Equal(t, c, r.Canvas())
	require.Len(t, dev.Draws, 1, "pending batch flushed against the old target")
	assert.True(t, dev.Draws[0].Target.IsScreen())

	assert.Equal(t, 2, r.TransformDepth())
	assert.Equal(t, m, r.Transform())

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.SetCanvas(nil))
	assert.Nil(t, r.Canvas())
	require.Len(t, dev.Draws, 2)
	assert.Equal(t, c, dev.Draws[1].Target.Canvas)
	assert.Equal(t, geom.V(800, 600), r.TargetSize())
}

func TestViewportClipsTargetAndPopRestores(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	r.PushTarget()
	vp := geom.R(10, 10, 200, 100)
	require.NoError(t, r.SetViewport(&vp))
	assert.Equal(t, geom.V(200, 100), r.TargetSize())

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.PopTarget())
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, gfx.Target{Clip: vp, Clipped: true}, dev.Draws[0].Target)

	got, clipped := r.Viewport()
	assert.False(t, clipped)
	assert.Equal(t, geom.Rect{}, got)
}

func TestClearBindsAndRecords(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.Clear(colors.Black))
	assert.Len(t, dev.Draws, 1, "pending work lands before the clear")
	assert.Equal(t, []colors.Color{colors.Black}, dev.Clears)
}

func TestDrawLargerThanBufferIsExhaustion(t *testing.T) {
	// 4 vertices of 8 floats fit into 128 bytes.
	r, dev := newRenderer(t, renderer2d.Options{InitialVertices: 4, MaxBufferBytes: 128})

	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	assert.Len(t, dev.Draws, 1, "a full batch flushes instead of growing past the limit")

	five := make([]renderer2d.Vertex, 5)
	err := r.DrawMesh(nil, renderer2d.MeshParams{Primitive: renderer2d.MeshPoints, Vertices: five}, geom.Identity())
	assert.ErrorIs(t, err, errs.ErrResourceExhausted)
}

func TestMeshTopologiesNormalize(t *testing.T) {
	verts := make([]renderer2d.Vertex, 4)
	for i := range verts {
		verts[i].Color = colors.White
	}
	tests := []struct {
		name string
		prim renderer2d.MeshPrimitive
		kind gfx.Primitive
		want []uint32
	}{
		{"triangles", renderer2d.MeshTriangles, gfx.Triangles, []uint32{0, 1, 2}},
		{"strip", renderer2d.MeshTriangleStrip, gfx.Triangles, []uint32{0, 1, 2, 2, 1, 3}},
		{"fan", renderer2d.MeshTriangleFan, gfx.Triangles, []uint32{0, 1, 2, 0, 2, 3}},
		{"lines", renderer2d.MeshLines, gfx.Lines, []uint32{0, 1, 2, 3}},
		{"line strip", renderer2d.MeshLineStrip, gfx.Lines, []uint32{0, 1, 1, 2, 2, 3}},
		{"line loop", renderer2d.MeshLineLoop, gfx.Lines, []uint32{0, 1, 1, 2, 2, 3, 3, 0}},
		{"points", renderer2d.MeshPoints, gfx.Points, []uint32{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dev := newRenderer(t, renderer2d.Options{})
			require.NoError(t, r.DrawMesh(nil, renderer2d.MeshParams{Primitive: tt.prim, Vertices: verts}, geom.Identity()))
			require.NoError(t, r.Flush())
			require.Len(t, dev.Draws, 1)
			assert.Equal(t, tt.kind, dev.Draws[0].Primitive)
			assert.Equal(t, tt.want, dev.Draws[0].Indices)
		})
	}
}

func TestStripAndListMeshesShareBatch(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	verts := make([]renderer2d.Vertex, 3)
	require.NoError(t, r.DrawMesh(nil, renderer2d.MeshParams{Primitive: renderer2d.MeshTriangles, Vertices: verts}, geom.Identity()))
	require.NoError(t, r.DrawMesh(nil, renderer2d.MeshParams{Primitive: renderer2d.MeshTriangleFan, Vertices: verts}, geom.Identity()))
	require.NoError(t, r.DrawSprite(nil, sprite(), geom.Identity()))
	require.NoError(t, r.EndFrame())

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 8, 9}, dev.Draws[0].Indices)
	assert.Equal(t, 2, r.Stats().MeshCount)
}

func TestMeshIndexOutOfRange(t *testing.T) {
	r, _ := newRenderer(t, renderer2d.Options{})
	err := r.DrawMesh(nil, renderer2d.MeshParams{
		Vertices: make([]renderer2d.Vertex, 3),
		Indices:  []uint32{0, 1, 3},
	}, geom.Identity())
	assert.ErrorIs(t, err, errs.ErrState)
}

func TestGlyphsUseQuadPathAndSkipBlanks(t *testing.T) {
	r, dev := newRenderer(t, renderer2d.Options{})
	atlas := &gfxtest.Texture{Name: "atlas", W: 64, H: 64}
	glyphs := []renderer2d.Glyph{
		{Rune: 'A', Src: geom.R(0, 0, 8, 10), Dst: geom.R(0, 0, 16, 20)},
		{Rune: ' '},
		{Rune: 'B', Src: geom.R(8, 0, 8, 10), Dst: geom.R(20, 0, 8, 10)},
	}
	require.NoError(t, r.DrawGlyphs(atlas, glyphs, colors.Yellow, geom.Translation(100, 0)))
	require.NoError(t, r.EndFrame())

	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.Len(t, d.Vertices, 8*gfx.VertexStride)
	assert.Same(t, atlas, d.Texture)
	// 'A' bottom-right is scaled to its destination size.
	assert.Equal(t, []float32{116, 20}, d.Vertices[2*gfx.VertexStride:2*gfx.VertexStride+2])
	// 'B' top-left.
	assert.Equal(t, []float32{120, 0, 0.125, 0}, d.Vertices[4*gfx.VertexStride:4*gfx.VertexStride+4])
}

func TestSubTextureRegion(t *testing.T) {
	tex := &gfxtest.Texture{W: 64, H: 32}
	s := renderer2d.FromGrid(tex, 1, 1, 16, 16)
	assert.Equal(t, geom.R(16, 16, 16, 16), s.Region)
	u0, v0, u1, v1 := s.UV()
	assert.Equal(t, []float32{0.25, 0.5, 0.5, 1}, []float32{u0, v0, u1, v1})
}

func TestNewCanvasRejectsEmpty(t *testing.T) {
	r, _ := newRenderer(t, renderer2d.Options{})
	_, err := r.NewCanvas(0, 10)
	assert.ErrorIs(t, err, errs.ErrState)
}

func TestNewFailsWhenBufferCreationFails(t *testing.T) {
	dev := gfxtest.NewDevice(10, 10)
	dev.FailCreateBuffer = true
	_, err := renderer2d.New(dev, renderer2d.Options{})
	assert.ErrorIs(t, err, errs.ErrInit)
}
