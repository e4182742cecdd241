package zenith

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the widget redraws its text.
const fpsRefresh = 500 * time.Millisecond

// FPSWidget is a sprite that shows the measured FPS and TPS. It ignores
// camera scroll and draws above everything else. Game draws one directly on
// the screen when GameConfig.ShowFPS is set; it can also be added to a scene
// like any other drawable.
type FPSWidget struct {
	*Node
	img  *ebiten.Image
	last time.Time
}

// NewFPSWidget creates an FPS widget.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	n := NewSprite("fps_widget", img)
	n.SetScrollFactor(0, 0)
	n.Depth = math.MaxFloat64
	return &FPSWidget{Node: n, img: img}
}

// Draw refreshes the text if it is stale and draws the widget.
func (w *FPSWidget) Draw(dst *ebiten.Image, view ebiten.GeoM) {
	if now := time.Now(); now.Sub(w.last) >= fpsRefresh {
		w.last = now
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	w.Node.Draw(dst, view)
}
