//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hubastard/grove/v2/engine/errs"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init allocates a ring of capacity scope events. Older events are
// overwritten once the ring is full.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a named scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := names.intern(name)
	at := time.Now().UnixNano()
	ring.push(event{atNS: at, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), at)
		ring.push(event{atNS: end, frame: id})
	}
}

// Dump writes the recorded scopes to path in the speedscope evented format.
func Dump(path string) error {
	const op = "profiler.Dump"
	evs := ring.snapshot()
	if len(evs) == 0 {
		return errs.New(errs.ErrState, op, fmt.Errorf("no events recorded"))
	}
	doc, ok := buildDoc(evs, names.snapshot())
	if !ok {
		return errs.New(errs.ErrState, op, fmt.Errorf("no balanced scopes"))
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errs.New(errs.ErrIO, op, err)
	}
	if err := f.Close(); err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	return nil
}

type event struct {
	atNS  int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the live window of the ring in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

type interner struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

var names = interner{index: map[string]int{}}

func (in *interner) intern(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[name]; ok {
		return id
	}
	id := len(in.list)
	in.index[name] = id
	in.list = append(in.list, name)
	return id
}

func (in *interner) snapshot() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.list...)
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// buildDoc converts events into balanced speedscope events. Closes without a
// matching open (their open was overwritten by the ring) are dropped, and
// scopes still open at the end are closed at the last timestamp.
func buildDoc(evs []event, frameNames []string) (ssFile, bool) {
	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}

	base := evs[0].atNS
	var (
		out    = make([]ssEvent, 0, len(evs))
		stack  = make([]int, 0, 64)
		lastUS int64
	)
	for _, e := range evs {
		at := max((e.atNS-base)/1000, lastUS)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		lastUS = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	if len(out) == 0 {
		return ssFile{}, false
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "grove frame loop",
			Unit:     "microseconds",
			EndValue: lastUS,
			Events:   out,
		}},
		Exporter: "grove-profiler",
		Name:     "grove capture",
	}, true
}
