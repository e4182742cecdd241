package zenith

import "github.com/tanema/gween/ease"

// PanCallback is invoked on every update of a running pan with the scroll
// position applied this frame.
type PanCallback func(cam *Camera, progress, scrollX, scrollY float64)

// PanEffect scrolls the camera so that it ends centered on a world point.
// While a pan is running, follow logic is suspended.
type PanEffect struct {
	effect
	source      Vec2
	destination Vec2
	current     Vec2
	onUpdate    PanCallback
}

// Start begins a pan toward the world point (x, y) over duration
// milliseconds. A nil easeFn means linear. It returns false without changing
// state if a pan is running and force is false.
func (p *PanEffect) Start(x, y float64, duration int, easeFn ease.TweenFunc, force bool, onUpdate PanCallback) bool {
	if p.blocked(force) {
		return false
	}
	cam := p.camera
	p.begin(duration, easeFn)
	p.source.Set(cam.scrollX, cam.scrollY)
	p.destination = cam.GetScroll(x, y)
	p.current = p.source
	p.onUpdate = onUpdate
	p.emit(EventPanStart)
	return true
}

// Destination returns the scroll position the pan ends at.
func (p *PanEffect) Destination() Vec2 { return p.destination }

func (p *PanEffect) update(_, delta uint32) {
	if !p.runnable() {
		return
	}
	cam := p.camera
	progress, done := p.advance(delta)
	if !done {
		v := p.eased()
		p.current.Set(
			Linear(p.source.X, p.destination.X, v),
			Linear(p.source.Y, p.destination.Y, v),
		)
		cam.SetScroll(p.current.X, p.current.Y)
		if p.onUpdate != nil {
			p.onUpdate(cam, progress, cam.scrollX, cam.scrollY)
		}
		return
	}
	p.current = p.destination
	cam.SetScroll(p.destination.X, p.destination.Y)
	if p.onUpdate != nil {
		p.onUpdate(cam, progress, cam.scrollX, cam.scrollY)
	}
	p.onUpdate = nil
	p.finish()
	p.emit(EventPanComplete)
}

// Reset stops the pan where it is.
func (p *PanEffect) Reset() {
	p.resetTiming()
	p.onUpdate = nil
}
