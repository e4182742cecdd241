package zenith

// FlashCallback is invoked on every update of a running flash.
type FlashCallback func(cam *Camera, progress float64)

// FlashEffect fills the camera with a color that fades out over the duration.
type FlashEffect struct {
	effect

	// PeakAlpha is the overlay alpha at the start of a flash. Defaults to 1.
	PeakAlpha float64

	color    Color
	alpha    float64
	onUpdate FlashCallback
}

func newFlashEffect(cam *Camera) *FlashEffect {
	f := &FlashEffect{PeakAlpha: 1}
	f.camera = cam
	return f
}

// Start begins a flash lasting duration milliseconds. It returns false
// without changing state if a flash is running and force is false.
func (f *FlashEffect) Start(duration int, r, g, b uint8, force bool, onUpdate FlashCallback) bool {
	if f.blocked(force) {
		return false
	}
	f.begin(duration, nil)
	f.color = ColorFromRGBA8(r, g, b, 0xff)
	f.alpha = f.PeakAlpha
	f.onUpdate = onUpdate
	f.emit(EventFlashStart)
	return true
}

// Alpha returns the current overlay alpha.
func (f *FlashEffect) Alpha() float64 { return f.alpha }

// Overlay returns the color to composite over the camera and whether it
// should be drawn at all.
func (f *FlashEffect) Overlay() (Color, bool) {
	if !f.IsRunning() {
		return Color{}, false
	}
	return f.color.WithAlpha(f.alpha), true
}

func (f *FlashEffect) update(_, delta uint32) {
	if !f.runnable() {
		return
	}
	progress, done := f.advance(delta)
	if f.onUpdate != nil {
		f.onUpdate(f.camera, progress)
	}
	if !done {
		f.alpha = f.PeakAlpha * (1 - f.eased())
		return
	}
	f.alpha = f.PeakAlpha
	f.onUpdate = nil
	f.finish()
	f.emit(EventFlashComplete)
}

// Reset stops the flash.
func (f *FlashEffect) Reset() {
	f.resetTiming()
	f.alpha = f.PeakAlpha
	f.onUpdate = nil
}
