package gfx

// Vertex attribute layout shared by the pipeline and every backend:
// position(2), uv(2), rgba(4), all float32.
const (
	AttribPositionSize = 2
	AttribUVSize       = 2
	AttribColorSize    = 4

	AttribPositionOffset = 0
	AttribUVOffset       = AttribPositionOffset + AttribPositionSize
	AttribColorOffset    = AttribUVOffset + AttribUVSize

	// VertexStride in float32s.
	VertexStride = AttribPositionSize + AttribUVSize + AttribColorSize
)
