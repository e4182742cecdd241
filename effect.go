package zenith

import "github.com/tanema/gween/ease"

// EffectState is the lifecycle state of a camera effect.
type EffectState uint8

const (
	EffectIdle    EffectState = iota // not running; start() begins a new run
	EffectRunning                    // advancing on every camera update
)

// Effect is the lifecycle shared by every camera effect.
type Effect interface {
	State() EffectState
	IsRunning() bool
	Progress() float64
	Reset()
	update(now, delta uint32)
}

// effect holds the timing state shared by all six camera effects. Durations
// and elapsed time are in milliseconds.
type effect struct {
	camera   *Camera
	state    EffectState
	duration float64
	elapsed  float64
	progress float64
	easeFn   ease.TweenFunc
}

// State returns the effect's lifecycle state.
func (e *effect) State() EffectState { return e.state }

// IsRunning reports whether the effect is in progress.
func (e *effect) IsRunning() bool { return e.state == EffectRunning }

// Progress returns the raw (uneased) progress in [0, 1] of the current or
// most recent run.
func (e *effect) Progress() float64 { return e.progress }

// Elapsed returns the milliseconds elapsed in the current or most recent run.
func (e *effect) Elapsed() float64 { return e.elapsed }

// Duration returns the duration in milliseconds of the current or most
// recent run.
func (e *effect) Duration() float64 { return e.duration }

// blocked reports whether a start call must be ignored.
func (e *effect) blocked(force bool) bool {
	return !force && e.state == EffectRunning
}

// begin transitions to EffectRunning with fresh timing state.
func (e *effect) begin(duration int, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	e.state = EffectRunning
	e.duration = float64(duration)
	e.elapsed = 0
	e.progress = 0
	e.easeFn = fn
}

// advance adds delta to the elapsed time and returns the clamped progress and
// whether the run has reached its end. A non-positive duration ends the run on
// the first call.
func (e *effect) advance(delta uint32) (progress float64, done bool) {
	e.elapsed += float64(delta)
	if e.duration <= 0 {
		e.progress = 1
		return 1, true
	}
	e.progress = Clamp(e.elapsed/e.duration, 0, 1)
	return e.progress, e.elapsed >= e.duration
}

// eased returns the current progress mapped through the easing function.
func (e *effect) eased() float64 {
	return applyEase(e.easeFn, e.progress)
}

// runnable reports whether update should do any work this frame.
func (e *effect) runnable() bool {
	return e.state == EffectRunning && (e.camera == nil || e.camera.Visible)
}

func (e *effect) finish() {
	e.state = EffectIdle
}

func (e *effect) resetTiming() {
	e.state = EffectIdle
	e.elapsed = 0
	e.progress = 0
}

func (e *effect) emit(name string) {
	if e.camera != nil {
		e.camera.emit(name)
	}
}
