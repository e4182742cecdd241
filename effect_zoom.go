package zenith

import "github.com/tanema/gween/ease"

// ZoomCallback is invoked on every update of a running zoom with the zoom
// applied this frame.
type ZoomCallback func(cam *Camera, progress, zoom float64)

// ZoomEffect animates both camera zoom axes to a single target value.
type ZoomEffect struct {
	effect
	source      float64
	destination float64
	onUpdate    ZoomCallback
}

// Start begins a zoom toward zoom over duration milliseconds, starting from
// the camera's current horizontal zoom. A nil easeFn means linear. It
// returns false without changing state if a zoom is running and force is
// false.
func (z *ZoomEffect) Start(zoom float64, duration int, easeFn ease.TweenFunc, force bool, onUpdate ZoomCallback) bool {
	if z.blocked(force) {
		return false
	}
	z.begin(duration, easeFn)
	z.source = z.camera.zoomX
	z.destination = zoom
	z.onUpdate = onUpdate
	z.emit(EventZoomStart)
	return true
}

// Destination returns the target zoom.
func (z *ZoomEffect) Destination() float64 { return z.destination }

func (z *ZoomEffect) update(_, delta uint32) {
	if !z.runnable() {
		return
	}
	cam := z.camera
	progress, done := z.advance(delta)
	if !done {
		v := Linear(z.source, z.destination, z.eased())
		cam.SetZoom(v, v)
		if z.onUpdate != nil {
			z.onUpdate(cam, progress, cam.zoomX)
		}
		return
	}
	cam.SetZoom(z.destination, z.destination)
	if z.onUpdate != nil {
		z.onUpdate(cam, progress, cam.zoomX)
	}
	z.onUpdate = nil
	z.finish()
	z.emit(EventZoomComplete)
}

// Reset stops the zoom at the current value.
func (z *ZoomEffect) Reset() {
	z.resetTiming()
	z.onUpdate = nil
}
