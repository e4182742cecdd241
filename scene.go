package zenith

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is a GameObject that can render itself. view maps the object's
// parent space (world space, already offset by the camera scroll) to screen
// pixels.
type Drawable interface {
	GameObject
	Draw(dst *ebiten.Image, view ebiten.GeoM)
}

// DrawableSource supplies additional drawables each frame, for example the
// sprite entities of an ECS world.
type DrawableSource interface {
	Drawables() []Drawable
}

// depther is implemented by drawables with a draw order.
type depther interface {
	RenderDepth() float64
}

// RenderDepth returns the node's Depth.
func (n *Node) RenderDepth() float64 { return n.Depth }

const defaultDisplayCap = 256

// Scene is the top-level object that owns the display list, cameras and
// tweens, and drives them once per frame.
type Scene struct {
	list    []Drawable
	sources []DrawableSource

	cameras *CameraManager
	store   EntityStore
	debug   bool

	tweens []*TweenGroup

	// Render buffers, reused every frame.
	frame      []Drawable
	candidates []GameObject

	updateFunc func() error
	script     *ScriptRunner
	stats      []cameraStats

	// ScreenshotDir is where Screenshot writes its PNG files.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates a scene sized to the default game size with one main
// camera covering it. Run resizes it to the configured window size.
func NewScene() *Scene {
	cfg := DefaultGameConfig()
	return NewSceneSize(float64(cfg.Width), float64(cfg.Height))
}

// NewSceneSize creates a scene for a game area of width x height pixels with
// one main camera covering it.
func NewSceneSize(width, height float64) *Scene {
	s := &Scene{
		list:       make([]Drawable, 0, defaultDisplayCap),
		frame:      make([]Drawable, 0, defaultDisplayCap),
		candidates: make([]GameObject, 0, defaultDisplayCap),

		ScreenshotDir: "screenshots",
	}
	s.cameras = newCameraManager(s, width, height)
	s.cameras.Add(0, 0, width, height, true, "main")
	return s
}

// Cameras returns the scene's camera manager.
func (s *Scene) Cameras() *CameraManager { return s.cameras }

// Camera returns the main camera.
func (s *Scene) Camera() *Camera { return s.cameras.Main() }

// --- Display list ---

// Add appends drawables to the display list. Nodes already in a container
// are detached from it first.
func (s *Scene) Add(objects ...Drawable) {
	for _, obj := range objects {
		if n, ok := obj.(*Node); ok {
			if n.scene == s {
				continue
			}
			if globalDebug {
				debugCheckDisposed(n, "Scene.Add")
			}
			n.RemoveFromParent()
			n.scene = s
		}
		s.list = append(s.list, obj)
	}
}

// Remove drops obj from the display list. It returns false if obj is not in
// the list.
func (s *Scene) Remove(obj Drawable) bool {
	for i, d := range s.list {
		if d != obj {
			continue
		}
		copy(s.list[i:], s.list[i+1:])
		s.list[len(s.list)-1] = nil
		s.list = s.list[:len(s.list)-1]
		if n, ok := obj.(*Node); ok {
			n.scene = nil
		}
		return true
	}
	return false
}

// DisplayList returns the top-level drawables in insertion order. The
// returned slice MUST NOT be mutated.
func (s *Scene) DisplayList() []Drawable { return s.list }

// AddSource registers a supplier of extra drawables, merged into the display
// list every frame.
func (s *Scene) AddSource(src DrawableSource) {
	s.sources = append(s.sources, src)
}

// --- Tweens ---

// AddTween registers g to be advanced by Update until it is done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// NumTweens returns the number of running tweens.
func (s *Scene) NumTweens() int { return len(s.tweens) }

func (s *Scene) updateTweens(delta uint32) {
	dt := float32(delta) / 1000
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// --- Frame ---

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the camera script, tweens and camera effects. now and
// delta are in milliseconds.
func (s *Scene) Update(now, delta uint32) error {
	if s.script != nil {
		s.script.step(s)
	}
	s.updateTweens(delta)
	s.cameras.Update(now, delta)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// PreRender rebuilds every visible camera's transform for this frame.
func (s *Scene) PreRender() {
	for _, cam := range s.cameras.cameras {
		if !cam.Visible {
			continue
		}
		cam.PreRender()
		cam.emit(EventPreRender)
	}
}

// Draw runs PreRender followed by Render.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.PreRender()
	s.Render(screen)
}

// collect builds this frame's depth-ordered drawables and the parallel
// GameObject slice handed to Cull.
func (s *Scene) collect() {
	s.frame = append(s.frame[:0], s.list...)
	for _, src := range s.sources {
		s.frame = append(s.frame, src.Drawables()...)
	}
	sortByDepth(s.frame)

	s.candidates = s.candidates[:0]
	for _, d := range s.frame {
		s.candidates = append(s.candidates, d)
	}
}

// sortByDepth orders drawables by RenderDepth, keeping insertion order for
// equal depths. Drawables without a depth sort as 0. Uses insertion sort:
// zero allocations, stable, and O(n) when the list is already ordered.
func sortByDepth(list []Drawable) {
	for i := 1; i < len(list); i++ {
		key := list[i]
		kd := depthOf(key)
		j := i - 1
		for j >= 0 && depthOf(list[j]) > kd {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = key
	}
}

func depthOf(d Drawable) float64 {
	if dd, ok := d.(depther); ok {
		return dd.RenderDepth()
	}
	return 0
}

// SetEntityStore sets the optional ECS bridge that receives camera events.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, use of destroyed
// cameras and disposed nodes panics, tree depth and child count warnings are
// printed, and per-camera render stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// and camera operations (which lack a Scene pointer) can check it cheaply.
// Only valid with a single Scene; multiple Scenes with differing debug modes
// will reflect whichever called SetDebugMode last.
var globalDebug bool
