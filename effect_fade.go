package zenith

// FadeCallback is invoked on every update of a running fade.
type FadeCallback func(cam *Camera, progress float64)

// FadeEffect fades the camera to or from a solid color. After a fade-out
// completes the overlay stays fully opaque until the effect is restarted or
// reset.
type FadeEffect struct {
	effect
	fadeOut  bool
	color    Color
	alpha    float64
	complete bool
	onUpdate FadeCallback
}

// Start begins a fade over duration milliseconds. fadeOut selects the
// direction: true goes from clear to color, false from color to clear.
// It returns false without changing state if a fade is running and force is
// false.
func (f *FadeEffect) Start(fadeOut bool, duration int, r, g, b uint8, force bool, onUpdate FadeCallback) bool {
	if f.blocked(force) {
		return false
	}
	f.begin(duration, nil)
	f.fadeOut = fadeOut
	f.color = ColorFromRGBA8(r, g, b, 0xff)
	f.complete = false
	f.onUpdate = onUpdate
	if fadeOut {
		f.alpha = 0
		f.emit(EventFadeOutStart)
	} else {
		f.alpha = 1
		f.emit(EventFadeInStart)
	}
	return true
}

// IsFadeOut reports the direction of the current or most recent fade.
func (f *FadeEffect) IsFadeOut() bool { return f.fadeOut }

// IsComplete reports whether the last fade ran to completion and has not been
// reset since.
func (f *FadeEffect) IsComplete() bool { return f.complete }

// Alpha returns the current overlay alpha.
func (f *FadeEffect) Alpha() float64 { return f.alpha }

// Overlay returns the color to composite over the camera and whether it
// should be drawn at all.
func (f *FadeEffect) Overlay() (Color, bool) {
	if !f.IsRunning() && !f.complete {
		return Color{}, false
	}
	return f.color.WithAlpha(f.alpha), true
}

func (f *FadeEffect) update(_, delta uint32) {
	if !f.runnable() {
		return
	}
	progress, done := f.advance(delta)
	if f.onUpdate != nil {
		f.onUpdate(f.camera, progress)
	}
	if !done {
		v := f.eased()
		if f.fadeOut {
			f.alpha = v
		} else {
			f.alpha = 1 - v
		}
		return
	}

	if f.fadeOut {
		f.alpha = 1
	} else {
		f.alpha = 0
	}
	f.complete = true
	f.onUpdate = nil
	f.finish()
	if f.fadeOut {
		f.emit(EventFadeOutComplete)
	} else {
		f.emit(EventFadeInComplete)
	}
}

// Reset stops the fade and removes its overlay.
func (f *FadeEffect) Reset() {
	f.resetTiming()
	f.complete = false
	f.alpha = 0
	f.onUpdate = nil
}
