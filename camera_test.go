package zenith

import (
	"math"
	"testing"
)

// point is a simple follow target.
type point struct{ x, y float64 }

func (p *point) Position() (float64, float64) { return p.x, p.y }

// --- Construction ---

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera(10, 20, 800, 600)

	if cam.X() != 10 || cam.Y() != 20 || cam.Width() != 800 || cam.Height() != 600 {
		t.Errorf("viewport = %+v", cam.Viewport())
	}
	if cam.ZoomX() != 1 || cam.ZoomY() != 1 {
		t.Errorf("zoom = (%v, %v), want (1, 1)", cam.ZoomX(), cam.ZoomY())
	}
	if ox, oy := cam.Origin(); ox != 0.5 || oy != 0.5 {
		t.Errorf("origin = (%v, %v), want (0.5, 0.5)", ox, oy)
	}
	if !cam.Visible {
		t.Error("camera should start visible")
	}
	if !cam.Transparent() {
		t.Error("camera should start transparent")
	}
	if cam.ID() != 0 {
		t.Errorf("standalone camera ID = %d, want 0", cam.ID())
	}
	if l := cam.Lerp(); l.X != 1 || l.Y != 1 {
		t.Errorf("lerp = %+v, want (1, 1)", l)
	}
	if _, ok := cam.Deadzone(); ok {
		t.Error("camera should start without a deadzone")
	}
}

// --- Viewport ---

func TestCameraSetViewportSquare(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)
	cam.SetViewport(5, 6, 300, -1)
	if cam.Width() != 300 || cam.Height() != 300 {
		t.Errorf("size = (%v, %v), want (300, 300)", cam.Width(), cam.Height())
	}
	if cam.X() != 5 || cam.Y() != 6 {
		t.Errorf("pos = (%v, %v), want (5, 6)", cam.X(), cam.Y())
	}
	if !cam.Dirty() {
		t.Error("SetViewport should mark the camera dirty")
	}
}

func TestCameraDisplaySize(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetZoom(2, 4)
	assertNear(t, "DisplayWidth", cam.DisplayWidth(), 400)
	assertNear(t, "DisplayHeight", cam.DisplayHeight(), 150)
}

// --- Zoom, rotation ---

func TestCameraSetZoomZeroSnaps(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"x zero", 0, 2, minZoom, 2},
		{"y zero", 3, 0, 3, minZoom},
		{"both zero", 0, 0, minZoom, minZoom},
		{"small kept", 0.0001, 1, 0.0001, 1},
		{"negative kept", -1, 1, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(0, 0, 100, 100)
			cam.SetZoom(tt.x, tt.y)
			if cam.ZoomX() != tt.wx || cam.ZoomY() != tt.wy {
				t.Errorf("zoom = (%v, %v), want (%v, %v)", cam.ZoomX(), cam.ZoomY(), tt.wx, tt.wy)
			}
		})
	}
}

func TestCameraSetAngle(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)
	cam.SetAngle(90)
	assertNear(t, "rotation", cam.Rotation(), math.Pi/2)
}

// --- Background ---

func TestCameraBackgroundTransparency(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)

	cam.SetBackgroundColor(0xff0000)
	if cam.Transparent() {
		t.Error("opaque hex color should clear transparency")
	}
	if r, _, _, a := cam.BackgroundColor().RGBA8(); r != 0xff || a != 0xff {
		t.Errorf("color = %+v", cam.BackgroundColor())
	}

	cam.SetBackgroundColorRGBA(10, 20, 30, 0)
	if !cam.Transparent() {
		t.Error("zero alpha should be transparent")
	}

	cam.SetBackgroundColorValue(Color{0, 0, 1, 0.5})
	if cam.Transparent() {
		t.Error("half alpha should not be transparent")
	}
}

// --- Scroll and bounds ---

func TestCameraSetScrollClampsToBounds(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(0, 0, 1600, 1200, false)
	cam.SetScroll(2000, 2000)
	cam.PreRender()

	if cam.ScrollX() != 800 || cam.ScrollY() != 600 {
		t.Errorf("scroll = (%v, %v), want (800, 600)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraSetScrollNoBounds(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetScroll(-5000, 7000)
	cam.PreRender()
	if cam.ScrollX() != -5000 || cam.ScrollY() != 7000 {
		t.Errorf("scroll = (%v, %v)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraClampRange(t *testing.T) {
	bounds := []Rect{
		{0, 0, 1600, 1200},
		{-300, 50, 900, 700},
		{100, 100, 200, 100}, // smaller than the viewport
	}
	zooms := []float64{0.5, 1, 2}
	inputs := []float64{-1e6, -100, 0, 123.4, 999, 1e6}

	for _, b := range bounds {
		for _, z := range zooms {
			cam := NewCamera(0, 0, 800, 600)
			cam.SetZoom(z, z)
			cam.SetBounds(b.X, b.Y, b.Width, b.Height, false)

			dw, dh := cam.DisplayWidth(), cam.DisplayHeight()
			loX := b.X + (dw-800)/2
			hiX := math.Max(loX, loX+b.Width-dw)
			loY := b.Y + (dh-600)/2
			hiY := math.Max(loY, loY+b.Height-dh)

			for _, in := range inputs {
				x := cam.ClampX(in)
				y := cam.ClampY(in)
				if x < loX || x > hiX {
					t.Errorf("bounds %+v zoom %v: ClampX(%v) = %v outside [%v, %v]", b, z, in, x, loX, hiX)
				}
				if y < loY || y > hiY {
					t.Errorf("bounds %+v zoom %v: ClampY(%v) = %v outside [%v, %v]", b, z, in, y, loY, hiY)
				}
			}
		}
	}
}

func TestCameraClampSmallBoundsIsConstant(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(100, 100, 200, 100, false)

	first := cam.ClampX(-1000)
	for _, in := range []float64{-50, 0, 500, 1e5} {
		if got := cam.ClampX(in); got != first {
			t.Errorf("ClampX(%v) = %v, want constant %v", in, got, first)
		}
	}
	firstY := cam.ClampY(-1000)
	if got := cam.ClampY(1000); got != firstY {
		t.Errorf("ClampY not constant: %v vs %v", got, firstY)
	}
}

func TestCameraSetBoundsCenterOn(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(0, 0, 2000, 1000, true)

	if !cam.UseBounds {
		t.Error("SetBounds should enable UseBounds")
	}
	assertNear(t, "scrollX", cam.ScrollX(), 600)
	assertNear(t, "scrollY", cam.ScrollY(), 200)
	if mp := cam.MidPoint(); mp.X != 1000 || mp.Y != 500 {
		t.Errorf("midPoint = %+v, want (1000, 500)", mp)
	}
}

func TestCameraSetBoundsReclampsScroll(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetScroll(5000, -5000)
	cam.SetBounds(0, 0, 1600, 1200, false)
	if cam.ScrollX() != 800 || cam.ScrollY() != 0 {
		t.Errorf("scroll = (%v, %v), want (800, 0)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraRemoveBounds(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(0, 0, 1600, 1200, false)
	cam.RemoveBounds()
	if cam.UseBounds {
		t.Error("RemoveBounds should disable UseBounds")
	}
	if cam.GetBounds() != (Rect{}) {
		t.Errorf("bounds = %+v, want empty", cam.GetBounds())
	}
	cam.SetScroll(5000, 5000)
	if cam.ScrollX() != 5000 {
		t.Errorf("scroll should be unclamped, got %v", cam.ScrollX())
	}
}

func TestCameraGetScroll(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	got := cam.GetScroll(1000, 1000)
	if got.X != 600 || got.Y != 700 {
		t.Errorf("GetScroll = %+v, want (600, 700)", got)
	}
	if cam.ScrollX() != 0 || cam.ScrollY() != 0 {
		t.Error("GetScroll must not move the camera")
	}

	cam.SetBounds(0, 0, 1200, 900, false)
	got = cam.GetScroll(1000, 1000)
	if got.X != 400 || got.Y != 300 {
		t.Errorf("clamped GetScroll = %+v, want (400, 300)", got)
	}
}

func TestCameraCenterOn(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.CenterOn(500, 400)
	if cam.ScrollX() != 100 || cam.ScrollY() != 100 {
		t.Errorf("scroll = (%v, %v), want (100, 100)", cam.ScrollX(), cam.ScrollY())
	}
	cam.CenterToSize()
	if cam.ScrollX() != 400 || cam.ScrollY() != 300 {
		t.Errorf("CenterToSize scroll = (%v, %v), want (400, 300)", cam.ScrollX(), cam.ScrollY())
	}
}

// --- Follow ---

func TestCameraFollowSnaps(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	target := &point{100, 100}
	cam.StartFollow(target, 1, 1, 0, 0)
	cam.PreRender()

	if mp := cam.MidPoint(); mp.X != 100 || mp.Y != 100 {
		t.Errorf("midPoint = %+v, want (100, 100)", mp)
	}
	if cam.ScrollX() != -300 || cam.ScrollY() != -200 {
		t.Errorf("scroll = (%v, %v), want (-300, -200)", cam.ScrollX(), cam.ScrollY())
	}
	if cam.Following() != target {
		t.Error("Following should return the target")
	}
}

func TestCameraFollowUsesOrigin(t *testing.T) {
	tests := []struct {
		name         string
		ox, oy       float64
		wantX, wantY float64
	}{
		{"top-left", 0, 0, 100, 100},
		{"center", 0.5, 0.5, -300, -200},
		{"bottom-right", 1, 1, -700, -500},
		{"mixed", 0.25, 0.75, -100, -350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(0, 0, 800, 600)
			cam.SetOrigin(tt.ox, tt.oy)
			cam.StartFollow(&point{100, 100}, 1, 1, 0, 0)
			cam.PreRender()
			assertNear(t, "scrollX", cam.ScrollX(), tt.wantX)
			assertNear(t, "scrollY", cam.ScrollY(), tt.wantY)
		})
	}
}

func TestCameraFollowLerp(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	target := &point{400, 300}
	cam.StartFollow(target, 0.5, 0.25, 0, 0)
	cam.PreRender()

	target.x, target.y = 600, 700
	cam.PreRender()

	assertNear(t, "scrollX", cam.ScrollX(), 100)
	assertNear(t, "scrollY", cam.ScrollY(), 100)
}

func TestCameraFollowLerpClamped(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)
	cam.StartFollow(&point{}, 5, -1, 0, 0)
	if l := cam.Lerp(); l.X != 1 || l.Y != 0 {
		t.Errorf("lerp = %+v, want (1, 0)", l)
	}
}

func TestCameraFollowOffset(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.StartFollow(&point{500, 500}, 1, 1, 100, 50)
	cam.PreRender()
	if cam.ScrollX() != 0 || cam.ScrollY() != 150 {
		t.Errorf("scroll = (%v, %v), want (0, 150)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraFollowRespectsBounds(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(0, 0, 1600, 1200, false)
	cam.StartFollow(&point{10, 10}, 1, 1, 0, 0)
	if cam.ScrollX() != 0 || cam.ScrollY() != 0 {
		t.Errorf("scroll = (%v, %v), want (0, 0)", cam.ScrollX(), cam.ScrollY())
	}
	cam.PreRender()
	if cam.ScrollX() != 0 || cam.ScrollY() != 0 {
		t.Errorf("after PreRender scroll = (%v, %v), want (0, 0)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraStopFollow(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	target := &point{0, 0}
	cam.StartFollow(target, 1, 1, 0, 0)
	cam.StopFollow()
	target.x = 1000
	cam.PreRender()
	if cam.ScrollX() != -400 {
		t.Errorf("scrollX = %v, want -400", cam.ScrollX())
	}
}

func TestCameraDeadzone(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	target := &point{400, 300}
	cam.StartFollow(target, 1, 1, 0, 0)
	cam.SetDeadzone(200, 100)
	cam.PreRender()

	dz, ok := cam.Deadzone()
	if !ok {
		t.Fatal("deadzone should be set")
	}
	if dz.X != 300 || dz.Y != 250 || dz.Width != 200 || dz.Height != 100 {
		t.Errorf("deadzone = %+v", dz)
	}

	// Inside the deadzone: no scroll.
	target.x, target.y = 450, 320
	cam.PreRender()
	if cam.ScrollX() != 0 || cam.ScrollY() != 0 {
		t.Errorf("inside deadzone scroll = (%v, %v), want (0, 0)", cam.ScrollX(), cam.ScrollY())
	}

	// Past the right edge by 50 and the bottom edge by 30.
	target.x, target.y = 550, 380
	cam.PreRender()
	if cam.ScrollX() != 50 || cam.ScrollY() != 30 {
		t.Errorf("past edge scroll = (%v, %v), want (50, 30)", cam.ScrollX(), cam.ScrollY())
	}

	// The deadzone now sits at (350, 280); go past its left and top edges.
	target.x, target.y = 250, 200
	cam.PreRender()
	if cam.ScrollX() != -50 || cam.ScrollY() != -50 {
		t.Errorf("left edge scroll = (%v, %v), want (-50, -50)", cam.ScrollX(), cam.ScrollY())
	}

	cam.SetDeadzone(-1, 0)
	if _, ok := cam.Deadzone(); ok {
		t.Error("negative width should remove the deadzone")
	}
}

func TestCameraDeadzoneLerp(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	target := &point{400, 300}
	cam.StartFollow(target, 0.5, 0.25, 0, 0)
	cam.SetDeadzone(200, 100)
	cam.PreRender()

	// 50 past the right edge and 40 past the bottom edge.
	target.x, target.y = 550, 390
	cam.PreRender()
	assertNear(t, "scrollX", cam.ScrollX(), 25)
	assertNear(t, "scrollY", cam.ScrollY(), 10)

	// The deadzone recenters on the new mid-point (425, 310), so the target
	// is still 25 past the right edge and 30 past the bottom edge.
	cam.PreRender()
	assertNear(t, "scrollX", cam.ScrollX(), 37.5)
	assertNear(t, "scrollY", cam.ScrollY(), 17.5)
}

func TestCameraCenterToBoundsClamps(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetBounds(0, 0, 400, 300, true)

	// Bounds narrower than the display pin the scroll to the clamp point.
	if cam.ScrollX() != 0 || cam.ScrollY() != 0 {
		t.Errorf("scroll = (%v, %v), want (0, 0)", cam.ScrollX(), cam.ScrollY())
	}
	if mp := cam.MidPoint(); mp.X != 200 || mp.Y != 150 {
		t.Errorf("midPoint = %+v, want (200, 150)", mp)
	}

	cam.SetBounds(0, 0, 2000, 1000, false)
	cam.CenterToBounds()
	if cam.ScrollX() != 600 || cam.ScrollY() != 200 {
		t.Errorf("scroll = (%v, %v), want (600, 200)", cam.ScrollX(), cam.ScrollY())
	}
}

func TestCameraFollowUpdateEvent(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	n := 0
	cam.On(EventFollowUpdate, func(*Camera) { n++ })

	cam.PreRender()
	if n != 0 {
		t.Error("follow-update should not fire without a target")
	}
	cam.StartFollow(&point{}, 1, 1, 0, 0)
	cam.PreRender()
	cam.PreRender()
	if n != 2 {
		t.Errorf("follow-update fired %d times, want 2", n)
	}
}

// --- Coordinates ---

func TestCameraMatrix(t *testing.T) {
	cam := NewCamera(10, 20, 800, 600)
	cam.PreRender()
	assertMatrix(t, "identity view", cam.Matrix().Vector(), [6]float64{1, 0, 0, 1, 10, 20})

	cam.SetZoom(2, 2)
	cam.PreRender()
	// Zoom pivots around the viewport center (400, 300).
	assertMatrix(t, "zoomed", cam.Matrix().Vector(), [6]float64{2, 0, 0, 2, 10 - 400, 20 - 300})
}

func TestCameraWorldView(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetScroll(100, 50)
	cam.SetZoom(2, 2)
	cam.PreRender()
	wv := cam.WorldView()
	if wv.X != 300 || wv.Y != 200 || wv.Width != 400 || wv.Height != 300 {
		t.Errorf("worldView = %+v, want {300 200 400 300}", wv)
	}
}

func TestCameraWorldPointRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		scroll   Vec2
		zoom     float64
		rotation float64
	}{
		{"identity", Vec2{}, 1, 0},
		{"scrolled", Vec2{120, -45}, 1, 0},
		{"zoomed", Vec2{30, 60}, 2.5, 0},
		{"rotated", Vec2{-80, 10}, 1, 0.6},
		{"everything", Vec2{300, 200}, 0.75, -2.1},
	}
	points := []Vec2{{0, 0}, {400, 300}, {-123.5, 987.25}, {799, 1}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(16, 8, 800, 600)
			cam.SetScroll(tt.scroll.X, tt.scroll.Y)
			cam.SetZoom(tt.zoom, tt.zoom)
			cam.SetRotation(tt.rotation)
			cam.PreRender()

			for _, p := range points {
				w := cam.GetWorldPoint(p.X, p.Y)
				s := cam.GetScreenPoint(w.X, w.Y)
				if math.Abs(s.X-p.X) > 1e-6 || math.Abs(s.Y-p.Y) > 1e-6 {
					t.Errorf("screen %+v -> world %+v -> screen %+v", p, w, s)
				}
				s = cam.GetScreenPoint(p.X, p.Y)
				w = cam.GetWorldPoint(s.X, s.Y)
				if math.Abs(w.X-p.X) > 1e-6 || math.Abs(w.Y-p.Y) > 1e-6 {
					t.Errorf("world %+v -> screen %+v -> world %+v", p, s, w)
				}
			}
		})
	}
}

func TestCameraWorldPointScrollOffset(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.SetScroll(100, 50)
	cam.PreRender()
	// No rotation: oy = -scrollY * zoom, so the y offset is subtracted.
	w := cam.GetWorldPoint(10, 10)
	assertNear(t, "x", w.X, 110)
	assertNear(t, "y", w.Y, -40)
}

func TestCameraWorldPointSingular(t *testing.T) {
	cam := NewCamera(0, 0, 800, 600)
	cam.matrix = Matrix{0, 0, 0, 0, 0, 0}
	w := cam.GetWorldPoint(12, 34)
	if w.X != 12 || w.Y != 34 {
		t.Errorf("singular GetWorldPoint = %+v, want input", w)
	}
	s := cam.GetScreenPoint(12, 34)
	if s.X != 12 || s.Y != 34 {
		t.Errorf("singular GetScreenPoint = %+v, want input", s)
	}
}

// --- Events, lifecycle ---

func TestCameraEventsOnceOff(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)
	var on, once int
	id := cam.On(EventFlashStart, func(*Camera) { on++ })
	cam.Once(EventFlashStart, func(*Camera) { once++ })

	cam.Flash(100, 255, 255, 255, true, nil)
	cam.Flash(100, 255, 255, 255, true, nil)
	if on != 2 || once != 1 {
		t.Errorf("on = %d, once = %d; want 2, 1", on, once)
	}

	cam.Off(EventFlashStart, id)
	if cam.ListenerCount(EventFlashStart) != 0 {
		t.Errorf("ListenerCount = %d, want 0", cam.ListenerCount(EventFlashStart))
	}
}

func TestCameraDestroy(t *testing.T) {
	cam := NewCamera(0, 0, 100, 100)
	cam.StartFollow(&point{}, 1, 1, 0, 0)
	cam.FadeOut(1000, 0, 0, 0, nil)
	cam.Shake(1000, Vec2{0.1, 0.1}, false, nil)

	destroyed := 0
	cam.On(EventDestroy, func(*Camera) { destroyed++ })
	cam.Destroy()
	cam.Destroy()

	if destroyed != 1 {
		t.Errorf("destroy fired %d times, want 1", destroyed)
	}
	if !cam.IsDestroyed() {
		t.Error("IsDestroyed should be true")
	}
	if cam.FadeEffect().IsRunning() || cam.ShakeEffect().IsRunning() {
		t.Error("Destroy should reset effects")
	}
	if cam.Following() != nil {
		t.Error("Destroy should stop following")
	}
	if cam.ListenerCount(EventDestroy) != 0 {
		t.Error("Destroy should drop listeners")
	}
}

func TestCameraDestroyedPanicsInDebug(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	cam := NewCamera(0, 0, 100, 100)
	cam.Destroy()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic updating a destroyed camera in debug mode")
		}
	}()
	cam.Update(0, 16)
}
