package zenith

import "github.com/tanema/gween/ease"

// RotateCallback is invoked on every update of a running rotation with the
// angle applied this frame.
type RotateCallback func(cam *Camera, progress, angle float64)

// RotateToEffect rotates the camera to a target angle.
type RotateToEffect struct {
	effect
	source      float64
	destination float64
	delta       float64
	clockwise   bool
	onUpdate    RotateCallback
}

// Start begins a rotation toward radians over duration milliseconds. When
// shortestPath is true the camera turns whichever way covers the smaller
// angle, wrapping through +/-Pi; otherwise it turns by the plain difference.
// A nil easeFn means linear. It returns false without changing state if a
// rotation is running and force is false.
func (r *RotateToEffect) Start(radians float64, shortestPath bool, duration int, easeFn ease.TweenFunc, force bool, onUpdate RotateCallback) bool {
	if r.blocked(force) {
		return false
	}
	r.begin(duration, easeFn)
	r.source = r.camera.rotation
	r.destination = radians
	r.delta = radians - r.source
	if shortestPath {
		r.delta = WrapRadians(r.delta)
	}
	r.clockwise = r.delta >= 0
	r.onUpdate = onUpdate
	r.emit(EventRotateStart)
	return true
}

// Clockwise reports the direction of the current or most recent rotation.
// Positive angles turn clockwise on screen.
func (r *RotateToEffect) Clockwise() bool { return r.clockwise }

// Destination returns the target angle in radians.
func (r *RotateToEffect) Destination() float64 { return r.destination }

func (r *RotateToEffect) update(_, delta uint32) {
	if !r.runnable() {
		return
	}
	cam := r.camera
	progress, done := r.advance(delta)
	if !done {
		cam.SetRotation(r.source + r.delta*r.eased())
		if r.onUpdate != nil {
			r.onUpdate(cam, progress, cam.rotation)
		}
		return
	}
	cam.SetRotation(r.destination)
	if r.onUpdate != nil {
		r.onUpdate(cam, progress, cam.rotation)
	}
	r.onUpdate = nil
	r.finish()
	r.emit(EventRotateComplete)
}

// Reset stops the rotation at the current angle.
func (r *RotateToEffect) Reset() {
	r.resetTiming()
	r.onUpdate = nil
}
