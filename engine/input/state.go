// Package input turns raw platform notifications into edge-triggered
// (Down, Up) and level-triggered (Hold) queries.
//
// Mutators are called by the run loop in event order; ClearStates is called
// once after every presented frame.
package input

import "github.com/hubastard/grove/v2/engine/logx"

// Action is the raw transition reported by the platform.
type Action uint8

const (
	ActionDown Action = iota + 1
	ActionUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	}
	return "unknown"
}

// KeyState of a single key or button.
type KeyState uint8

const (
	Idle KeyState = iota
	Down          // pressed this frame
	Hold          // pressed in an earlier frame and not released yet
	Up            // released this frame
)

func (s KeyState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Down:
		return "down"
	case Hold:
		return "hold"
	case Up:
		return "up"
	}
	return "invalid"
}

// States tracks the KeyState of every code seen since the last collapse.
// Codes never seen, or released and collapsed, read as Idle.
type States[K comparable] struct {
	m     map[K]KeyState
	limit int
}

// NewStates returns a tracker holding at most limit codes (0 is unbounded).
func NewStates[K comparable](limit int) *States[K] {
	return &States[K]{m: make(map[K]KeyState), limit: limit}
}

// Handle applies one platform transition and reports whether it is a
// repeated down notification (the code was already down or held).
//
//	Idle/Up   × Down → Down
//	Down/Hold × Down → Hold (repeated)
//	any       × Up   → Up
func (s *States[K]) Handle(code K, action Action) (repeated bool) {
	cur, tracked := s.m[code]
	if !tracked && s.limit > 0 && len(s.m) >= s.limit {
		logx.Logger().Warn("input tracker at capacity, ignoring code", "code", code, "limit", s.limit)
		return false
	}
	switch action {
	case ActionDown:
		if cur == Down || cur == Hold {
			s.m[code] = Hold
			return true
		}
		s.m[code] = Down
	case ActionUp:
		s.m[code] = Up
	}
	return false
}

// State returns the current state of code.
func (s *States[K]) State(code K) KeyState { return s.m[code] }

// IsDown is true only in the frame the code went down.
func (s *States[K]) IsDown(code K) bool { return s.m[code] == Down }

// IsHold is true from the down frame until the matching up.
func (s *States[K]) IsHold(code K) bool {
	st := s.m[code]
	return st == Down || st == Hold
}

// IsUp is true only in the frame the code went up.
func (s *States[K]) IsUp(code K) bool { return s.m[code] == Up }

// Clear collapses the per-frame edges: Down and Hold become Hold, Up and Idle
// entries are dropped.
func (s *States[K]) Clear() {
	for code, st := range s.m {
		switch st {
		case Down, Hold:
			s.m[code] = Hold
		default:
			delete(s.m, code)
		}
	}
}

// Len is the number of tracked codes.
func (s *States[K]) Len() int { return len(s.m) }

// Held returns every code currently down or held, in no particular order.
func (s *States[K]) Held() []K {
	out := make([]K, 0, len(s.m))
	for code, st := range s.m {
		if st == Down || st == Hold {
			out = append(out, code)
		}
	}
	return out
}
