package zenith

import "math/rand/v2"

// ShakeCallback is invoked on every update of a running shake.
type ShakeCallback func(cam *Camera, progress float64)

// ShakeEffect jitters the camera transform by a random offset every frame.
// Intensity is a fraction of the viewport size per axis.
type ShakeEffect struct {
	effect
	intensity Vec2
	offsetX   float64
	offsetY   float64
	onUpdate  ShakeCallback

	// rand returns values in [0, 1). Replaceable for deterministic tests.
	rand func() float64
}

func newShakeEffect(cam *Camera) *ShakeEffect {
	s := &ShakeEffect{rand: rand.Float64}
	s.camera = cam
	return s
}

// Start begins a shake lasting duration milliseconds. It returns false
// without changing state if a shake is running and force is false.
func (s *ShakeEffect) Start(duration int, intensity Vec2, force bool, onUpdate ShakeCallback) bool {
	if s.blocked(force) {
		return false
	}
	s.begin(duration, nil)
	s.intensity = intensity
	s.offsetX = 0
	s.offsetY = 0
	s.onUpdate = onUpdate
	s.emit(EventShakeStart)
	return true
}

// Intensity returns the intensity of the current or most recent shake.
func (s *ShakeEffect) Intensity() Vec2 { return s.intensity }

// Offset returns the translation applied to the camera matrix this frame.
func (s *ShakeEffect) Offset() (x, y float64) { return s.offsetX, s.offsetY }

// preRender applies this frame's offset to the freshly rebuilt camera matrix.
func (s *ShakeEffect) preRender() {
	if s.IsRunning() {
		s.camera.matrix.Translate(s.offsetX, s.offsetY)
	}
}

func (s *ShakeEffect) update(_, delta uint32) {
	if !s.runnable() {
		return
	}
	progress, done := s.advance(delta)
	if s.onUpdate != nil {
		s.onUpdate(s.camera, progress)
	}
	if !done {
		cam := s.camera
		ix := s.intensity.X * cam.width
		iy := s.intensity.Y * cam.height
		s.offsetX = (s.rand()*ix*2 - ix) * cam.zoomX
		s.offsetY = (s.rand()*iy*2 - iy) * cam.zoomY
		if cam.RoundPixels {
			s.offsetX = float64(int(s.offsetX))
			s.offsetY = float64(int(s.offsetY))
		}
		return
	}
	s.offsetX = 0
	s.offsetY = 0
	s.onUpdate = nil
	s.finish()
	s.emit(EventShakeComplete)
}

// Reset stops the shake and clears its offset.
func (s *ShakeEffect) Reset() {
	s.resetTiming()
	s.offsetX = 0
	s.offsetY = 0
	s.onUpdate = nil
}
