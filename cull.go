package zenith

// GameObject is the view of a display object that cameras need for culling
// and filtering.
type GameObject interface {
	// Position returns the object's world position.
	Position() (x, y float64)
	// Size returns the unscaled display size.
	Size() (w, h float64)
	// Origin returns the normalized anchor within Size.
	Origin() (x, y float64)
	// ScrollFactor returns how strongly camera scroll moves the object.
	// 1 tracks the world, 0 pins the object to the screen.
	ScrollFactor() (x, y float64)
	// HasParent reports whether the object lives inside a container.
	HasParent() bool
	// CameraFilter returns the bitmask of camera ids that skip this object.
	CameraFilter() uint32
	// SetCameraFilter replaces the camera filter bitmask.
	SetCameraFilter(mask uint32)
}

// visibler is implemented by objects that can be hidden.
type visibler interface {
	IsVisible() bool
}

// Cull returns the objects whose screen rectangle intersects the camera
// viewport. Objects inside a container are always kept, as is everything when
// DisableCull is set or the camera matrix is singular. Order is preserved.
//
// The returned slice is reused by the next call.
func (c *Camera) Cull(objects []GameObject) []GameObject {
	if c.DisableCull {
		return objects
	}
	if c.matrix.Determinant() == 0 {
		return objects
	}

	left, top := c.x, c.y
	right, bottom := c.x+c.width, c.y+c.height

	c.culled = c.culled[:0]
	for _, obj := range objects {
		if obj.HasParent() {
			c.culled = append(c.culled, obj)
			continue
		}
		x, y := obj.Position()
		w, h := obj.Size()
		ox, oy := obj.Origin()
		sfx, sfy := obj.ScrollFactor()

		tx := x - c.scrollX*sfx - w*ox
		ty := y - c.scrollY*sfy - h*oy
		r := aabbOf(c.matrix, tx, ty, w, h)

		if r.Right() > left && r.X < right && r.Bottom() > top && r.Y < bottom {
			c.culled = append(c.culled, obj)
		}
	}
	return c.culled
}

// Ignore sets this camera's bit in each object's camera filter so the camera
// skips it when rendering. Cameras without an id ignore nothing.
func (c *Camera) Ignore(objects ...GameObject) {
	if c.id == 0 {
		return
	}
	for _, obj := range objects {
		obj.SetCameraFilter(obj.CameraFilter() | c.id)
	}
}

// WillRender reports whether the camera would draw obj: the object is
// visible and its camera filter does not name this camera.
func (c *Camera) WillRender(obj GameObject) bool {
	if v, ok := obj.(visibler); ok && !v.IsVisible() {
		return false
	}
	return obj.CameraFilter()&c.id == 0
}

// AddToRenderList records obj as drawn by this camera in the current frame.
func (c *Camera) AddToRenderList(obj GameObject) {
	c.renderList = append(c.renderList, obj)
}

// RenderList returns the objects drawn by this camera in the current frame,
// in draw order. The slice is reset by the next PreRender.
func (c *Camera) RenderList() []GameObject {
	return c.renderList
}
