package zenith

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a camera script. Which fields apply
// depends on Action.
type scriptStep struct {
	Action   string  `json:"action"`
	Camera   string  `json:"camera,omitempty"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Ease     string  `json:"ease,omitempty"`
	Color    string  `json:"color,omitempty"`
	Shortest bool    `json:"shortest,omitempty"`
	Force    bool    `json:"force,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// cameraScript is the top-level JSON structure for a camera script.
type cameraScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a sequence of camera actions across frames, one step
// per frame, for demos and automated visual checks. Attach it to a Scene
// with SetScriptRunner.
//
// Supported actions:
//
//	scroll      x, y            set the scroll directly
//	center      x, y            center on a world point
//	pan         x, y, duration, ease
//	zoom        value, duration, ease
//	rotate      value, duration, ease, shortest
//	shake       x, y (intensity), duration
//	flash       duration, color (default white)
//	fade-in     duration, color (default black)
//	fade-out    duration, color (default black)
//	reset-fx
//	screenshot  label
//	wait        frames
//
// Every action except screenshot and wait targets the main camera unless
// camera names another one.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

var errNoSteps = errors.New("no steps")

// LoadCameraScript parses a JSON camera script and returns a ScriptRunner
// ready to attach to a Scene.
func LoadCameraScript(jsonData []byte) (*ScriptRunner, error) {
	var script cameraScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse camera script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse camera script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse camera script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "scroll", "center", "pan", "zoom", "rotate", "shake",
		"flash", "fade-in", "fade-out", "reset-fx", "screenshot", "wait":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if st.Ease != "" {
		if _, ok := EaseByName(st.Ease); !ok {
			return fmt.Errorf("unknown ease %q", st.Ease)
		}
	}
	if st.Color != "" {
		if _, err := ParseHexColor(st.Color); err != nil {
			return err
		}
	}
	return nil
}

// SetScriptRunner attaches a ScriptRunner to the scene. The runner advances
// at the start of every Scene.Update, before camera effects.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether every step has run, or the script stopped on an
// error.
func (r *ScriptRunner) Done() bool { return r.done }

// Err returns the error that stopped the script, if any.
func (r *ScriptRunner) Err() error { return r.err }

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		cam := s.Camera()
		if st.Camera != "" {
			cam = s.cameras.GetCamera(st.Camera)
		}
		if cam == nil {
			r.err = fmt.Errorf("camera script: step %d: no camera %q", r.cursor-1, st.Camera)
			r.done = true
			return
		}
		st.apply(cam)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// apply runs a camera action on cam.
func (st scriptStep) apply(cam *Camera) {
	fn, _ := EaseByName(st.Ease)
	switch st.Action {
	case "scroll":
		cam.SetScroll(st.X, st.Y)
	case "center":
		cam.CenterOn(st.X, st.Y)
	case "pan":
		cam.Pan(st.X, st.Y, st.Duration, fn, st.Force, nil)
	case "zoom":
		cam.ZoomTo(st.Value, st.Duration, fn, st.Force, nil)
	case "rotate":
		cam.RotateTo(st.Value, st.Shortest, st.Duration, fn, st.Force, nil)
	case "shake":
		cam.Shake(st.Duration, Vec2{st.X, st.Y}, st.Force, nil)
	case "flash":
		r, g, b := st.rgb(0xff)
		cam.Flash(st.Duration, r, g, b, st.Force, nil)
	case "fade-in":
		r, g, b := st.rgb(0)
		cam.FadeFrom(st.Duration, r, g, b, st.Force, nil)
	case "fade-out":
		r, g, b := st.rgb(0)
		cam.Fade(st.Duration, r, g, b, st.Force, nil)
	case "reset-fx":
		cam.ResetFX()
	}
}

// rgb returns the step's color, or a gray level of def when none is set.
func (st scriptStep) rgb(def uint8) (r, g, b uint8) {
	c, err := ParseHexColor(st.Color)
	if err != nil {
		return def, def, def
	}
	r, g, b, _ = c.RGBA8()
	return r, g, b
}
