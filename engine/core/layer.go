package core

type Layer interface {
	OnAttach(ctx *Context) error
	OnDetach(ctx *Context)
	OnUpdate(ctx *Context) error
	OnRender(ctx *Context) error
	OnEvent(ctx *Context, ev Event) (handled bool, err error) // true stops propagation
}

// LayerStack is a Game made of layers. Update and render run bottom-up;
// events run top-down until a layer handles them.
type LayerStack struct{ list []Layer }

var (
	_ Game       = (*LayerStack)(nil)
	_ Starter    = (*LayerStack)(nil)
	_ Shutdowner = (*LayerStack)(nil)
)

// Push adds l on top. Layers pushed before Run are attached by Start.
func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer) error) error {
	for _, l := range ls.list {
		if err := f(l); err != nil {
			return err
		}
	}
	return nil
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

func (ls *LayerStack) Start(ctx *Context) error {
	return ls.ForEach(func(l Layer) error { return l.OnAttach(ctx) })
}

func (ls *LayerStack) Shutdown(ctx *Context) {
	ls.ForEachReverse(func(l Layer) bool {
		l.OnDetach(ctx)
		return false
	})
}

func (ls *LayerStack) Update(ctx *Context) error {
	return ls.ForEach(func(l Layer) error { return l.OnUpdate(ctx) })
}

func (ls *LayerStack) Render(ctx *Context) error {
	return ls.ForEach(func(l Layer) error { return l.OnRender(ctx) })
}

func (ls *LayerStack) Event(ctx *Context, ev Event) (handled bool, err error) {
	ls.ForEachReverse(func(l Layer) bool {
		handled, err = l.OnEvent(ctx, ev)
		return handled || err != nil
	})
	return handled, err
}
