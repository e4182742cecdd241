package zenith

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Render draws the scene once per visible camera, in camera order. Each
// camera clears its viewport to its background color (unless transparent),
// culls the display list, draws what survives its camera filter, and
// composites its flash and fade overlays. Queued screenshots are captured
// last. PreRender must have run this frame.
func (s *Scene) Render(screen *ebiten.Image) {
	s.collect()
	if s.debug {
		s.stats = s.stats[:0]
	}
	for _, cam := range s.cameras.cameras {
		if !cam.Visible {
			continue
		}
		s.renderCamera(screen, cam)
		cam.emit(EventPostRender)
	}
	if s.debug {
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// renderCamera draws the current frame through cam onto screen.
func (s *Scene) renderCamera(screen *ebiten.Image, cam *Camera) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	vp := cam.Viewport()
	target := screen.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)

	if !cam.Transparent() {
		target.Fill(cam.BackgroundColor().toRGBA())
	}

	visible := cam.Cull(s.candidates)
	camGeoM := cam.Matrix().GeoM()
	for _, obj := range visible {
		if !cam.WillRender(obj) {
			continue
		}
		d, ok := obj.(Drawable)
		if !ok {
			continue
		}
		cam.AddToRenderList(obj)
		sfx, sfy := obj.ScrollFactor()
		var view ebiten.GeoM
		view.Translate(-cam.scrollX*sfx, -cam.scrollY*sfy)
		view.Concat(camGeoM)
		d.Draw(target, view)
	}

	if c, ok := cam.flash.Overlay(); ok {
		drawOverlay(target, vp, c)
	}
	if c, ok := cam.fade.Overlay(); ok {
		drawOverlay(target, vp, c)
	}

	if s.debug {
		s.stats = append(s.stats, cameraStats{
			name:       cam.Name,
			candidates: len(s.candidates),
			culled:     len(s.candidates) - len(visible),
			rendered:   len(cam.renderList),
			renderTime: time.Since(t0),
		})
	}
}

// drawOverlay fills the viewport rectangle with c using the white pixel.
func drawOverlay(dst *ebiten.Image, vp Rect, c Color) {
	if c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(vp.Width, vp.Height)
	op.GeoM.Translate(vp.X, vp.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(clamp01(c.A)))
	dst.DrawImage(WhitePixel, &op)
}
