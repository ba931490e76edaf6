package core_test

import (
	"errors"
	"testing"

	"github.com/hubastard/grove/v2/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLayer struct {
	name    string
	log     *[]string
	handles bool
	fail    error
}

func (l *testLayer) record(what string) { *l.log = append(*l.log, l.name+":"+what) }

func (l *testLayer) OnAttach(*core.Context) error {
	l.record("attach")
	return nil
}

func (l *testLayer) OnDetach(*core.Context) { l.record("detach") }

func (l *testLayer) OnUpdate(*core.Context) error {
	l.record("update")
	return l.fail
}

func (l *testLayer) OnRender(*core.Context) error {
	l.record("render")
	return nil
}

func (l *testLayer) OnEvent(*core.Context, core.Event) (bool, error) {
	l.record("event")
	return l.handles, nil
}

func TestLayerStackOrder(t *testing.T) {
	var log []string
	var ls core.LayerStack
	ls.Push(&testLayer{name: "world", log: &log})
	ls.Push(&testLayer{name: "ui", log: &log, handles: true})
	require.Equal(t, 2, ls.Len())

	require.NoError(t, ls.Start(nil))
	require.NoError(t, ls.Update(nil))
	require.NoError(t, ls.Render(nil))
	handled, err := ls.Event(nil, core.ReceivedChar{Rune: 'a'})
	require.NoError(t, err)
	assert.True(t, handled)
	ls.Shutdown(nil)

	assert.Equal(t, []string{
		"world:attach", "ui:attach",
		"world:update", "ui:update",
		"world:render", "ui:render",
		"ui:event", // handled, world never sees it
		"ui:detach", "world:detach",
	}, log)
}

func TestLayerStackStopsOnError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	var ls core.LayerStack
	ls.Push(&testLayer{name: "a", log: &log, fail: boom})
	ls.Push(&testLayer{name: "b", log: &log})

	assert.ErrorIs(t, ls.Update(nil), boom)
	assert.Equal(t, []string{"a:update"}, log)

	l, ok := ls.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", l.(*testLayer).name)
	ls.Pop()
	_, ok = ls.Pop()
	assert.False(t, ok)
}

func TestLayerStackAsGame(t *testing.T) {
	var log []string
	ls := &core.LayerStack{}
	ls.Push(&testLayer{name: "only", log: &log})
	g := &recorder{}
	e, _, _ := newEngine(t, g, nil, redraw())
	require.NoError(t, e.Run(ls))
	assert.Equal(t, []string{"only:attach", "only:update", "only:render", "only:detach"}, log)
}
