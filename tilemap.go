package zenith

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GID flag bits (same convention as Tiled TMX format).
const (
	TileFlipH    uint32 = 1 << 31 // horizontal flip
	TileFlipV    uint32 = 1 << 30 // vertical flip
	TileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	tileFlagMask uint32 = TileFlipH | TileFlipV | TileFlipD
)

// TileLayer is a grid of tiles drawn from a single tileset image. Cameras
// cull it as one rectangle; when drawn it only visits the tiles inside the
// region the camera shows, so large maps cost no more than the viewport.
//
// GIDs are 1-based indices into the tileset, read left to right and top to
// bottom. GID 0 is an empty cell. The high bits may carry TileFlip flags.
type TileLayer struct {
	Name string

	// X and Y are the world position of the top-left tile.
	X, Y float64

	ScrollFactorX float64
	ScrollFactorY float64

	Visible bool
	Depth   float64
	Color   Color

	tileWidth  int
	tileHeight int
	cols, rows int
	data       []uint32

	tileset     *ebiten.Image
	tilesetCols int
	tiles       []*ebiten.Image // sub-images indexed by GID-1

	cameraFilter uint32
	drawn        int
}

// NewTileLayer creates a layer of cols x rows tiles of tileWidth x tileHeight
// pixels. data holds the row-major GIDs and must have cols*rows entries; nil
// starts with an empty grid.
func NewTileLayer(name string, tileset *ebiten.Image, tileWidth, tileHeight, cols, rows int, data []uint32) *TileLayer {
	if tileWidth <= 0 || tileHeight <= 0 {
		panic(fmt.Sprintf("zenith: tile layer %q: tile size %dx%d", name, tileWidth, tileHeight))
	}
	if data == nil {
		data = make([]uint32, cols*rows)
	}
	if len(data) != cols*rows {
		panic(fmt.Sprintf("zenith: tile layer %q: %d tiles for a %dx%d grid", name, len(data), cols, rows))
	}
	l := &TileLayer{
		Name:          name,
		ScrollFactorX: 1,
		ScrollFactorY: 1,
		Visible:       true,
		Color:         ColorWhite,
		tileWidth:     tileWidth,
		tileHeight:    tileHeight,
		cols:          cols,
		rows:          rows,
		data:          data,
		tileset:       tileset,
	}
	l.sliceTileset()
	return l
}

// sliceTileset cuts the tileset into one sub-image per tile.
func (l *TileLayer) sliceTileset() {
	if l.tileset == nil {
		return
	}
	b := l.tileset.Bounds()
	l.tilesetCols = b.Dx() / l.tileWidth
	tilesetRows := b.Dy() / l.tileHeight
	l.tiles = make([]*ebiten.Image, 0, l.tilesetCols*tilesetRows)
	for r := 0; r < tilesetRows; r++ {
		for c := 0; c < l.tilesetCols; c++ {
			x := b.Min.X + c*l.tileWidth
			y := b.Min.Y + r*l.tileHeight
			rect := image.Rect(x, y, x+l.tileWidth, y+l.tileHeight)
			l.tiles = append(l.tiles, l.tileset.SubImage(rect).(*ebiten.Image))
		}
	}
}

// Cols returns the grid width in tiles.
func (l *TileLayer) Cols() int { return l.cols }

// Rows returns the grid height in tiles.
func (l *TileLayer) Rows() int { return l.rows }

// Tile returns the GID at (col, row), or 0 outside the grid.
func (l *TileLayer) Tile(col, row int) uint32 {
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return 0
	}
	return l.data[row*l.cols+col]
}

// SetTile sets the GID at (col, row). Out-of-range cells are ignored.
func (l *TileLayer) SetTile(col, row int, gid uint32) {
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return
	}
	l.data[row*l.cols+col] = gid
}

// TileAt returns the grid cell containing the world point (x, y) and whether
// it lies inside the layer.
func (l *TileLayer) TileAt(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor((x - l.X) / float64(l.tileWidth)))
	row = int(math.Floor((y - l.Y) / float64(l.tileHeight)))
	ok = col >= 0 && row >= 0 && col < l.cols && row < l.rows
	return col, row, ok
}

// Drawn returns how many tiles the last Draw call issued.
func (l *TileLayer) Drawn() int { return l.drawn }

// --- GameObject ---

// Position returns the world position of the top-left tile.
func (l *TileLayer) Position() (x, y float64) { return l.X, l.Y }

// Size returns the full map size in pixels.
func (l *TileLayer) Size() (w, h float64) {
	return float64(l.cols * l.tileWidth), float64(l.rows * l.tileHeight)
}

// Origin is always the top-left corner.
func (l *TileLayer) Origin() (x, y float64) { return 0, 0 }

// ScrollFactor returns how strongly camera scroll moves the layer.
func (l *TileLayer) ScrollFactor() (x, y float64) { return l.ScrollFactorX, l.ScrollFactorY }

// HasParent is always false; layers live directly in a scene.
func (l *TileLayer) HasParent() bool { return false }

// CameraFilter returns the ids of cameras that skip the layer.
func (l *TileLayer) CameraFilter() uint32 { return l.cameraFilter }

// SetCameraFilter replaces the camera filter.
func (l *TileLayer) SetCameraFilter(mask uint32) { l.cameraFilter = mask }

// IsVisible reports whether the layer should be drawn.
func (l *TileLayer) IsVisible() bool { return l.Visible }

// RenderDepth returns the layer's Depth.
func (l *TileLayer) RenderDepth() float64 { return l.Depth }

// --- Drawing ---

// visibleRange returns the half-open cell range [c0, c1) x [r0, r1) whose
// tiles can land inside bounds under view. ok is false when nothing can.
func (l *TileLayer) visibleRange(view ebiten.GeoM, bounds image.Rectangle) (c0, r0, c1, r1 int, ok bool) {
	if !view.IsInvertible() || bounds.Empty() {
		return 0, 0, 0, 0, false
	}
	inv := view
	inv.Invert()

	corners := [4][2]float64{
		{float64(bounds.Min.X), float64(bounds.Min.Y)},
		{float64(bounds.Max.X), float64(bounds.Min.Y)},
		{float64(bounds.Min.X), float64(bounds.Max.Y)},
		{float64(bounds.Max.X), float64(bounds.Max.Y)},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := inv.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	tw, th := float64(l.tileWidth), float64(l.tileHeight)
	c0 = max(int(math.Floor((minX-l.X)/tw)), 0)
	r0 = max(int(math.Floor((minY-l.Y)/th)), 0)
	c1 = min(int(math.Ceil((maxX-l.X)/tw)), l.cols)
	r1 = min(int(math.Ceil((maxY-l.Y)/th)), l.rows)
	if c0 >= c1 || r0 >= r1 {
		return 0, 0, 0, 0, false
	}
	return c0, r0, c1, r1, true
}

// Draw renders the tiles that fall inside dst. view maps world space to dst
// pixels.
func (l *TileLayer) Draw(dst *ebiten.Image, view ebiten.GeoM) {
	l.drawn = 0
	if !l.Visible || len(l.tiles) == 0 {
		return
	}
	c0, r0, c1, r1, ok := l.visibleRange(view, dst.Bounds())
	if !ok {
		return
	}

	tw, th := float64(l.tileWidth), float64(l.tileHeight)
	var op ebiten.DrawImageOptions
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			gid := l.data[row*l.cols+col]
			idx := int(gid&^tileFlagMask) - 1
			if idx < 0 || idx >= len(l.tiles) {
				continue
			}
			op.GeoM.Reset()
			op.ColorScale.Reset()
			if gid&tileFlagMask != 0 {
				tileFlipGeoM(&op.GeoM, gid, tw, th)
			}
			op.GeoM.Translate(l.X+float64(col)*tw, l.Y+float64(row)*th)
			op.GeoM.Concat(view)
			op.ColorScale.Scale(float32(l.Color.R), float32(l.Color.G), float32(l.Color.B), float32(l.Color.A))
			dst.DrawImage(l.tiles[idx], &op)
			l.drawn++
		}
	}
}

// tileFlipGeoM applies the GID's flip flags about the tile center. The
// diagonal flip is applied first, then horizontal, then vertical.
func tileFlipGeoM(m *ebiten.GeoM, gid uint32, tw, th float64) {
	m.Translate(-tw/2, -th/2)
	if gid&TileFlipD != 0 {
		var d ebiten.GeoM
		d.SetElement(0, 0, 0)
		d.SetElement(0, 1, 1)
		d.SetElement(1, 0, 1)
		d.SetElement(1, 1, 0)
		m.Concat(d)
	}
	if gid&TileFlipH != 0 {
		m.Scale(-1, 1)
	}
	if gid&TileFlipV != 0 {
		m.Scale(1, -1)
	}
	m.Translate(tw/2, th/2)
}
