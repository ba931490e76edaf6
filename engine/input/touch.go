package input

import (
	"slices"

	"github.com/hubastard/grove/v2/engine/geom"
)

type TouchPhase uint8

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// Touch is a present/absent model keyed by the platform touch id.
type Touch struct {
	positions map[uint64]geom.Vec2
}

func NewTouch() *Touch { return &Touch{positions: make(map[uint64]geom.Vec2)} }

func (t *Touch) Handle(id uint64, phase TouchPhase, p geom.Vec2) {
	switch phase {
	case TouchStart, TouchMove:
		t.positions[id] = p
	case TouchEnd, TouchCancel:
		delete(t.positions, id)
	}
}

// IDs returns the active touch ids in ascending order.
func (t *Touch) IDs() []uint64 {
	ids := make([]uint64, 0, len(t.positions))
	for id := range t.positions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (t *Touch) Position(id uint64) (geom.Vec2, bool) {
	p, ok := t.positions[id]
	return p, ok
}

func (t *Touch) Count() int { return len(t.positions) }
