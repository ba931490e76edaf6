package gfx

import (
	"unsafe"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/logx"
)

type BufferKind uint8

const (
	VertexBuffer BufferKind = iota
	IndexBuffer
)

func (k BufferKind) String() string {
	if k == IndexBuffer {
		return "index"
	}
	return "vertex"
}

type BufferUsage uint8

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
)

// BufferID is a backend buffer name. Zero is never a valid buffer.
type BufferID uint32

// BufferBackend is the raw buffer API a Device exposes. Only Buffer calls it.
type BufferBackend interface {
	CreateBuffer(kind BufferKind) (BufferID, error)
	DeleteBuffer(id BufferID)
	// BindBuffer binds id to the kind's binding point; 0 unbinds.
	BindBuffer(kind BufferKind, id BufferID)
	// AllocBuffer (re)allocates storage of the bound buffer, discarding contents.
	AllocBuffer(kind BufferKind, usage BufferUsage, bytes int)
	// BufferSubData writes data at offset into the bound buffer.
	BufferSubData(kind BufferKind, offset int, data []byte)
}

// Element is what a Buffer can hold.
type Element interface{ ~float32 | ~uint32 | ~uint16 }

// Buffer owns one backend buffer. Capacity, counted in elements, only grows,
// and at least doubles each time, up to a byte limit.
type Buffer[T Element] struct {
	backend  BufferBackend
	id       BufferID
	kind     BufferKind
	usage    BufferUsage
	capacity int
	limit    int // max elements
	bound    bool
}

func elemSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// NewBuffer creates and allocates a buffer of initial elements; growth is
// bounded by maxBytes.
func NewBuffer[T Element](b BufferBackend, kind BufferKind, usage BufferUsage, initial, maxBytes int) (*Buffer[T], error) {
	const op = "gfx.NewBuffer"
	size := elemSize[T]()
	limit := maxBytes / size
	if initial <= 0 || initial > limit {
		return nil, errs.Errorf(errs.ErrInit, op, "%s buffer initial capacity %d outside (0, %d]", kind, initial, limit)
	}
	id, err := b.CreateBuffer(kind)
	if err != nil {
		return nil, errs.New(errs.ErrInit, op, err)
	}
	buf := &Buffer[T]{backend: b, id: id, kind: kind, usage: usage, capacity: initial, limit: limit}
	buf.Bind()
	b.AllocBuffer(kind, usage, initial*size)
	buf.Unbind()
	return buf, nil
}

func (b *Buffer[T]) ID() BufferID     { return b.id }
func (b *Buffer[T]) Kind() BufferKind { return b.kind }
func (b *Buffer[T]) Cap() int         { return b.capacity }
func (b *Buffer[T]) Limit() int       { return b.limit }
func (b *Buffer[T]) Bound() bool      { return b.bound }
func (b *Buffer[T]) Released() bool   { return b.id == 0 }

func (b *Buffer[T]) Bind() {
	if b.id == 0 {
		return
	}
	b.backend.BindBuffer(b.kind, b.id)
	b.bound = true
}

func (b *Buffer[T]) Unbind() {
	if !b.bound {
		return
	}
	b.backend.BindBuffer(b.kind, 0)
	b.bound = false
}

// Reserve grows capacity so that n elements fit.
func (b *Buffer[T]) Reserve(n int) error {
	const op = "gfx.Buffer.Reserve"
	if b.id == 0 {
		return errs.State(op, "%s buffer already released", b.kind)
	}
	if n <= b.capacity {
		return nil
	}
	if n > b.limit {
		return errs.Errorf(errs.ErrResourceExhausted, op, "%s buffer needs %d elements, limit is %d", b.kind, n, b.limit)
	}
	next := b.capacity * 2
	if next < n {
		next = n
	}
	if next > b.limit {
		next = b.limit
	}
	logx.Logger().Debug("grow gpu buffer", "kind", b.kind, "from", b.capacity, "to", next)
	b.capacity = next
	b.backend.AllocBuffer(b.kind, b.usage, next*elemSize[T]())
	return nil
}

// Upload writes data at the start of the bound buffer, growing it first when
// it does not fit.
func (b *Buffer[T]) Upload(data []T) error {
	if !b.bound {
		return errs.State("gfx.Buffer.Upload", "%s buffer %d is not bound", b.kind, b.id)
	}
	if err := b.Reserve(len(data)); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*elemSize[T]())
	b.backend.BufferSubData(b.kind, 0, raw)
	return nil
}

// Release deletes the backend buffer. Safe to call more than once; the
// backend sees exactly one delete.
func (b *Buffer[T]) Release() {
	if b.id == 0 {
		return
	}
	b.Unbind()
	b.backend.DeleteBuffer(b.id)
	b.id = 0
}
