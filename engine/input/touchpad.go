package input

import "github.com/hubastard/grove/v2/engine/geom"

// Touchpad keeps the pixel-precise scroll of the current frame and the last
// reported pressure.
type Touchpad struct {
	scroll     geom.Vec2
	phase      TouchPhase
	pressure   float32
	clickStage int64
}

func NewTouchpad() *Touchpad { return &Touchpad{phase: TouchEnd} }

func (t *Touchpad) HandleScroll(delta geom.Vec2, phase TouchPhase) {
	t.scroll = t.scroll.Add(delta)
	t.phase = phase
}

func (t *Touchpad) HandlePress(pressure float32, stage int64) {
	t.pressure, t.clickStage = pressure, stage
}

func (t *Touchpad) ScrollDelta() geom.Vec2 { return t.scroll }
func (t *Touchpad) ScrollPhase() TouchPhase { return t.phase }
func (t *Touchpad) Pressure() float32      { return t.pressure }
func (t *Touchpad) ClickStage() int64      { return t.clickStage }

func (t *Touchpad) clear() { t.scroll = geom.Vec2{} }
