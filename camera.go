package zenith

import (
	"math"

	"github.com/tanema/gween/ease"
)

// minZoom replaces a zero zoom, which would make the camera matrix singular.
const minZoom = 0.001

// Target is anything a camera can follow.
type Target interface {
	Position() (x, y float64)
}

// Camera is a viewport into a scene plus the 2D transform used to render it.
//
// The viewport (X, Y, Width, Height) is in screen pixels. Scroll is the
// world-space offset the camera looks at; it is applied before rotation and
// zoom, which pivot around the origin (normalized, default 0.5, 0.5).
type Camera struct {
	// Name is informational and need not be unique.
	Name string

	// Visible gates effect updates and rendering.
	Visible bool
	// DisableCull makes Cull return its input unchanged.
	DisableCull bool
	// UseBounds enables scroll clamping to the rectangle set with SetBounds.
	UseBounds bool
	// RoundPixels truncates shake offsets to whole pixels.
	RoundPixels bool

	id uint32

	x, y, width, height float64
	scrollX, scrollY    float64
	zoomX, zoomY        float64
	rotation            float64
	originX, originY    float64

	matrix    Matrix
	midPoint  Vec2
	worldView Rect
	dirty     bool

	bounds Rect

	follow       Target
	followOffset Vec2
	lerp         Vec2
	deadzone     *Rect

	backgroundColor Color
	transparent     bool

	culled     []GameObject
	renderList []GameObject

	fade   *FadeEffect
	flash  *FlashEffect
	shake  *ShakeEffect
	pan    *PanEffect
	rotate *RotateToEffect
	zoom   *ZoomEffect

	events emitter

	manager        *CameraManager
	customViewport bool
	destroyed      bool
}

// NewCamera creates a standalone camera with the given viewport. Cameras
// created through a CameraManager also get an id for Ignore.
func NewCamera(x, y, width, height float64) *Camera {
	c := &Camera{
		Visible:         true,
		x:               x,
		y:               y,
		width:           width,
		height:          height,
		zoomX:           1,
		zoomY:           1,
		originX:         0.5,
		originY:         0.5,
		lerp:            Vec2{1, 1},
		backgroundColor: ColorTransparent,
		transparent:     true,
		dirty:           true,
	}
	c.fade = &FadeEffect{}
	c.fade.camera = c
	c.flash = newFlashEffect(c)
	c.shake = newShakeEffect(c)
	c.pan = &PanEffect{}
	c.pan.camera = c
	c.rotate = &RotateToEffect{}
	c.rotate.camera = c
	c.zoom = &ZoomEffect{}
	c.zoom.camera = c
	c.midPoint.Set(width/2, height/2)
	c.updateView()
	return c
}

// --- Accessors ---

// ID returns the camera's filter bit, or 0 if it has none.
func (c *Camera) ID() uint32 { return c.id }

// X returns the viewport's left edge in screen pixels.
func (c *Camera) X() float64 { return c.x }

// Y returns the viewport's top edge in screen pixels.
func (c *Camera) Y() float64 { return c.y }

// Width returns the viewport width in screen pixels.
func (c *Camera) Width() float64 { return c.width }

// Height returns the viewport height in screen pixels.
func (c *Camera) Height() float64 { return c.height }

// Viewport returns the viewport rectangle in screen pixels.
func (c *Camera) Viewport() Rect { return Rect{c.x, c.y, c.width, c.height} }

// ScrollX returns the horizontal scroll.
func (c *Camera) ScrollX() float64 { return c.scrollX }

// ScrollY returns the vertical scroll.
func (c *Camera) ScrollY() float64 { return c.scrollY }

// Zoom returns the horizontal zoom.
func (c *Camera) Zoom() float64 { return c.zoomX }

// ZoomX returns the horizontal zoom.
func (c *Camera) ZoomX() float64 { return c.zoomX }

// ZoomY returns the vertical zoom.
func (c *Camera) ZoomY() float64 { return c.zoomY }

// Rotation returns the rotation in radians.
func (c *Camera) Rotation() float64 { return c.rotation }

// Origin returns the normalized rotation/zoom pivot within the viewport.
func (c *Camera) Origin() (x, y float64) { return c.originX, c.originY }

// Matrix returns the transform built by the last PreRender.
func (c *Camera) Matrix() Matrix { return c.matrix }

// MidPoint returns the world-space point at the center of the viewport.
func (c *Camera) MidPoint() Vec2 { return c.midPoint }

// WorldView returns the world-space rectangle visible through the camera.
func (c *Camera) WorldView() Rect { return c.worldView }

// DisplayWidth returns the viewport width in world units (width / zoomX).
func (c *Camera) DisplayWidth() float64 { return c.width / c.zoomX }

// DisplayHeight returns the viewport height in world units (height / zoomY).
func (c *Camera) DisplayHeight() float64 { return c.height / c.zoomY }

// Dirty reports whether transform inputs changed since the last PreRender.
func (c *Camera) Dirty() bool { return c.dirty }

// BackgroundColor returns the color the viewport is cleared to.
func (c *Camera) BackgroundColor() Color { return c.backgroundColor }

// Transparent reports whether the background color has zero alpha.
func (c *Camera) Transparent() bool { return c.transparent }

// IsDestroyed reports whether Destroy has been called.
func (c *Camera) IsDestroyed() bool { return c.destroyed }

// Effect accessors.

// FadeEffect returns the camera's fade effect.
func (c *Camera) FadeEffect() *FadeEffect { return c.fade }

// FlashEffect returns the camera's flash effect.
func (c *Camera) FlashEffect() *FlashEffect { return c.flash }

// ShakeEffect returns the camera's shake effect.
func (c *Camera) ShakeEffect() *ShakeEffect { return c.shake }

// PanEffect returns the camera's pan effect.
func (c *Camera) PanEffect() *PanEffect { return c.pan }

// RotateToEffect returns the camera's rotate-to effect.
func (c *Camera) RotateToEffect() *RotateToEffect { return c.rotate }

// ZoomEffect returns the camera's zoom effect.
func (c *Camera) ZoomEffect() *ZoomEffect { return c.zoom }

// effects returns all six effects in update order.
func (c *Camera) effects() [6]Effect {
	return [6]Effect{c.rotate, c.pan, c.zoom, c.shake, c.flash, c.fade}
}

// --- Viewport ---

// SetPosition moves the viewport. It does not change where the camera looks;
// see SetScroll for that.
func (c *Camera) SetPosition(x, y float64) {
	c.x = x
	c.y = y
	c.dirty = true
	c.updateSystem()
}

// SetSize resizes the viewport.
func (c *Camera) SetSize(width, height float64) {
	c.width = width
	c.height = height
	c.dirty = true
	c.updateSystem()
}

// SetViewport sets position and size at once. A negative height makes the
// viewport square.
func (c *Camera) SetViewport(x, y, width, height float64) {
	if height < 0 {
		height = width
	}
	c.x = x
	c.y = y
	c.width = width
	c.height = height
	c.dirty = true
	c.updateSystem()
}

// SetOrigin sets the normalized pivot for rotation and zoom.
func (c *Camera) SetOrigin(x, y float64) {
	c.originX = x
	c.originY = y
	c.dirty = true
}

// updateSystem keeps the manager's custom-viewport count in step with
// whether this camera covers the whole game area.
func (c *Camera) updateSystem() {
	if c.manager == nil {
		return
	}
	custom := c.x != 0 || c.y != 0 ||
		c.width != c.manager.width || c.height != c.manager.height
	if custom == c.customViewport {
		return
	}
	if custom {
		c.manager.customViewports++
	} else {
		c.manager.customViewports--
	}
	c.customViewport = custom
}

// --- Transform inputs ---

// SetScroll sets the world-space scroll. With bounds active the values are
// clamped before being stored.
func (c *Camera) SetScroll(x, y float64) {
	c.SetScrollX(x)
	c.SetScrollY(y)
}

// SetScrollX sets the horizontal scroll, clamped when bounds are active.
func (c *Camera) SetScrollX(x float64) {
	if c.UseBounds {
		x = c.ClampX(x)
	}
	c.scrollX = x
	c.dirty = true
}

// SetScrollY sets the vertical scroll, clamped when bounds are active.
func (c *Camera) SetScrollY(y float64) {
	if c.UseBounds {
		y = c.ClampY(y)
	}
	c.scrollY = y
	c.dirty = true
}

// SetZoom sets the zoom per axis. A zero value is replaced by 0.001.
func (c *Camera) SetZoom(x, y float64) {
	if x == 0 {
		x = minZoom
	}
	if y == 0 {
		y = minZoom
	}
	c.zoomX = x
	c.zoomY = y
	c.dirty = true
}

// SetRotation sets the rotation in radians. Rotating a camera does not rotate
// its viewport; it is applied during rendering.
func (c *Camera) SetRotation(rad float64) {
	c.rotation = rad
	c.dirty = true
}

// SetAngle sets the rotation in degrees.
func (c *Camera) SetAngle(deg float64) {
	c.SetRotation(DegToRad(deg))
}

// --- Background ---

// SetBackgroundColor sets the clear color from a hex value (see ColorFromHex).
func (c *Camera) SetBackgroundColor(hex uint32) {
	c.SetBackgroundColorValue(ColorFromHex(hex))
}

// SetBackgroundColorRGBA sets the clear color from 8-bit components.
func (c *Camera) SetBackgroundColorRGBA(r, g, b, a uint8) {
	c.SetBackgroundColorValue(ColorFromRGBA8(r, g, b, a))
}

// SetBackgroundColorValue sets the clear color.
func (c *Camera) SetBackgroundColorValue(col Color) {
	c.backgroundColor = col
	c.transparent = col.Alpha8() == 0
}

// --- Centering ---

// GetScroll returns the scroll that would center the camera on (x, y),
// clamped to the bounds when active, without moving the camera.
func (c *Camera) GetScroll(x, y float64) Vec2 {
	out := Vec2{x - c.width*0.5, y - c.height*0.5}
	if c.UseBounds {
		out.X = c.ClampX(out.X)
		out.Y = c.ClampY(out.Y)
	}
	return out
}

// CenterOnX scrolls horizontally so the camera is centered on x, bounds
// allowing. The vertical scroll is unchanged.
func (c *Camera) CenterOnX(x float64) {
	c.midPoint.X = x
	c.SetScrollX(x - c.width*0.5)
}

// CenterOnY scrolls vertically so the camera is centered on y, bounds
// allowing. The horizontal scroll is unchanged.
func (c *Camera) CenterOnY(y float64) {
	c.midPoint.Y = y
	c.SetScrollY(y - c.height*0.5)
}

// CenterOn scrolls so the camera is centered on (x, y), bounds allowing.
func (c *Camera) CenterOn(x, y float64) {
	c.CenterOnX(x)
	c.CenterOnY(y)
}

// CenterToBounds centers the camera on its bounds. No-op without bounds.
func (c *Camera) CenterToBounds() {
	if !c.UseBounds {
		return
	}
	cx, cy := c.bounds.CenterX(), c.bounds.CenterY()
	c.midPoint.Set(cx, cy)
	c.SetScroll(cx-c.width*0.5, cy-c.height*0.5)
}

// CenterToSize scrolls by half the viewport size, centering the camera on
// the point (width, height).
func (c *Camera) CenterToSize() {
	c.SetScroll(c.width*0.5, c.height*0.5)
}

// --- Bounds ---

// SetBounds restricts scrolling so the camera never shows outside the given
// world rectangle. If centerOn is true the camera is centered on the new
// bounds; otherwise the current scroll is re-clamped. Bounds smaller than the
// viewport pin the scroll to a single value.
func (c *Camera) SetBounds(x, y, width, height float64, centerOn bool) {
	c.bounds = Rect{x, y, width, height}
	c.dirty = true
	c.UseBounds = true
	if centerOn {
		c.CenterToBounds()
		return
	}
	c.scrollX = c.ClampX(c.scrollX)
	c.scrollY = c.ClampY(c.scrollY)
}

// GetBounds returns a copy of the bounds rectangle.
func (c *Camera) GetBounds() Rect { return c.bounds }

// RemoveBounds disables bounds clamping and empties the bounds rectangle.
func (c *Camera) RemoveBounds() {
	c.UseBounds = false
	c.dirty = true
	c.bounds = Rect{}
}

// ClampX clamps a horizontal scroll value to the bounds. The result is
// meaningless when bounds are not in use.
func (c *Camera) ClampX(x float64) float64 {
	dw := c.DisplayWidth()
	bx := c.bounds.X + (dw-c.width)/2
	bw := max(bx, bx+c.bounds.Width-dw)
	return Clamp(x, bx, bw)
}

// ClampY clamps a vertical scroll value to the bounds. The result is
// meaningless when bounds are not in use.
func (c *Camera) ClampY(y float64) float64 {
	dh := c.DisplayHeight()
	by := c.bounds.Y + (dh-c.height)/2
	bh := max(by, by+c.bounds.Height-dh)
	return Clamp(y, by, bh)
}

// --- Follow ---

// StartFollow makes the camera track target. Lerp values are clamped to
// [0, 1]: 1 snaps to the target each frame, smaller values approach it
// gradually, 0 never moves. The offset is subtracted from the target
// position. The camera jumps to the target immediately.
func (c *Camera) StartFollow(target Target, lerpX, lerpY, offsetX, offsetY float64) {
	c.follow = target
	c.lerp.Set(Clamp(lerpX, 0, 1), Clamp(lerpY, 0, 1))
	c.followOffset.Set(offsetX, offsetY)

	if target == nil {
		return
	}
	tx, ty := target.Position()
	fx := tx - offsetX
	fy := ty - offsetY
	c.midPoint.Set(fx, fy)
	c.scrollX = fx - c.width*0.5
	c.scrollY = fy - c.height*0.5
	if c.UseBounds {
		c.scrollX = c.ClampX(c.scrollX)
		c.scrollY = c.ClampY(c.scrollY)
	}
	c.dirty = true
}

// StopFollow stops tracking the current target.
func (c *Camera) StopFollow() {
	c.follow = nil
}

// Following returns the current follow target, or nil.
func (c *Camera) Following() Target { return c.follow }

// SetLerp sets the per-axis follow smoothing, clamped to [0, 1].
func (c *Camera) SetLerp(x, y float64) {
	c.lerp.Set(Clamp(x, 0, 1), Clamp(y, 0, 1))
}

// Lerp returns the per-axis follow smoothing.
func (c *Camera) Lerp() Vec2 { return c.lerp }

// SetFollowOffset sets the offset subtracted from the target position.
func (c *Camera) SetFollowOffset(x, y float64) {
	c.followOffset.Set(x, y)
}

// FollowOffset returns the follow offset.
func (c *Camera) FollowOffset() Vec2 { return c.followOffset }

// SetDeadzone sets a rectangle, centered on the camera mid-point, inside
// which the follow target may move without scrolling the camera. A negative
// width removes the deadzone.
func (c *Camera) SetDeadzone(width, height float64) {
	if width < 0 {
		c.deadzone = nil
		return
	}
	if c.deadzone == nil {
		c.deadzone = &Rect{}
	}
	c.deadzone.Width = width
	c.deadzone.Height = height

	if c.follow != nil {
		tx, ty := c.follow.Position()
		fx := tx - c.followOffset.X
		fy := ty - c.followOffset.Y
		c.midPoint.Set(fx, fy)
		c.scrollX = fx - c.width*0.5
		c.scrollY = fy - c.height*0.5
		c.dirty = true
	}
	c.deadzone.CenterOn(c.midPoint.X, c.midPoint.Y)
}

// Deadzone returns a copy of the deadzone and whether one is set.
func (c *Camera) Deadzone() (Rect, bool) {
	if c.deadzone == nil {
		return Rect{}, false
	}
	return *c.deadzone, true
}

// followScroll returns the scroll for this frame after applying follow logic,
// and whether follow moved it. A running pan suspends following.
func (c *Camera) followScroll() (sx, sy float64, followed bool) {
	sx, sy = c.scrollX, c.scrollY
	if c.follow == nil || c.pan.IsRunning() {
		return sx, sy, false
	}
	tx, ty := c.follow.Position()
	fx := tx - c.followOffset.X
	fy := ty - c.followOffset.Y

	if dz := c.deadzone; dz != nil {
		if fx < dz.X {
			sx = Linear(sx, sx-(dz.X-fx), c.lerp.X)
		} else if fx > dz.Right() {
			sx = Linear(sx, sx+(fx-dz.Right()), c.lerp.X)
		}
		if fy < dz.Y {
			sy = Linear(sy, sy-(dz.Y-fy), c.lerp.Y)
		} else if fy > dz.Bottom() {
			sy = Linear(sy, sy+(fy-dz.Bottom()), c.lerp.Y)
		}
	} else {
		sx = Linear(sx, fx-c.width*c.originX, c.lerp.X)
		sy = Linear(sy, fy-c.height*c.originY, c.lerp.Y)
	}
	return sx, sy, true
}

// --- Effects ---

// FadeIn fades from the given color to clear, restarting any running fade.
func (c *Camera) FadeIn(duration int, r, g, b uint8, onUpdate FadeCallback) bool {
	return c.fade.Start(false, duration, r, g, b, true, onUpdate)
}

// FadeOut fades from clear to the given color, restarting any running fade.
func (c *Camera) FadeOut(duration int, r, g, b uint8, onUpdate FadeCallback) bool {
	return c.fade.Start(true, duration, r, g, b, true, onUpdate)
}

// FadeFrom fades from the given color to clear.
func (c *Camera) FadeFrom(duration int, r, g, b uint8, force bool, onUpdate FadeCallback) bool {
	return c.fade.Start(false, duration, r, g, b, force, onUpdate)
}

// Fade fades from clear to the given color.
func (c *Camera) Fade(duration int, r, g, b uint8, force bool, onUpdate FadeCallback) bool {
	return c.fade.Start(true, duration, r, g, b, force, onUpdate)
}

// Flash flashes the given color, fading it out over duration.
func (c *Camera) Flash(duration int, r, g, b uint8, force bool, onUpdate FlashCallback) bool {
	return c.flash.Start(duration, r, g, b, force, onUpdate)
}

// Shake shakes the camera. Intensity is a fraction of the viewport per axis.
func (c *Camera) Shake(duration int, intensity Vec2, force bool, onUpdate ShakeCallback) bool {
	return c.shake.Start(duration, intensity, force, onUpdate)
}

// Pan scrolls the camera until it is centered on the world point (x, y).
func (c *Camera) Pan(x, y float64, duration int, easeFn ease.TweenFunc, force bool, onUpdate PanCallback) bool {
	return c.pan.Start(x, y, duration, easeFn, force, onUpdate)
}

// RotateTo rotates the camera to radians.
func (c *Camera) RotateTo(radians float64, shortestPath bool, duration int, easeFn ease.TweenFunc, force bool, onUpdate RotateCallback) bool {
	return c.rotate.Start(radians, shortestPath, duration, easeFn, force, onUpdate)
}

// ZoomTo animates the zoom on both axes to zoom.
func (c *Camera) ZoomTo(zoom float64, duration int, easeFn ease.TweenFunc, force bool, onUpdate ZoomCallback) bool {
	return c.zoom.Start(zoom, duration, easeFn, force, onUpdate)
}

// ResetFX stops every effect. Safe to call when nothing is running.
func (c *Camera) ResetFX() {
	for _, fx := range c.effects() {
		fx.Reset()
	}
}

// --- Frame ---

// Update advances all effects. now and delta are in milliseconds. Effects do
// not advance while the camera is invisible.
func (c *Camera) Update(now, delta uint32) {
	if globalDebug {
		debugCheckDestroyed(c, "Update")
	}
	if !c.Visible {
		return
	}
	for _, fx := range c.effects() {
		fx.update(now, delta)
	}
}

// PreRender runs follow and bounds logic, commits the scroll, and rebuilds
// the mid-point, world view and transform for this frame.
func (c *Camera) PreRender() {
	if globalDebug {
		debugCheckDestroyed(c, "PreRender")
	}
	c.renderList = c.renderList[:0]

	if c.deadzone != nil {
		c.deadzone.CenterOn(c.midPoint.X, c.midPoint.Y)
	}

	sx, sy, followed := c.followScroll()

	if c.UseBounds {
		sx = c.ClampX(sx)
		sy = c.ClampY(sy)
	}
	c.scrollX = sx
	c.scrollY = sy

	c.updateView()
	c.shake.preRender()
	c.dirty = false

	if followed {
		c.emit(EventFollowUpdate)
	}
}

// updateView recomputes the mid-point, world view and matrix from the
// committed scroll.
func (c *Camera) updateView() {
	midX := c.scrollX + c.width*0.5
	midY := c.scrollY + c.height*0.5
	c.midPoint.Set(midX, midY)

	dw := c.DisplayWidth()
	dh := c.DisplayHeight()
	c.worldView = Rect{midX - dw/2, midY - dh/2, dw, dh}

	ox := c.width * c.originX
	oy := c.height * c.originY
	c.matrix.ApplyITRS(c.x+ox, c.y+oy, c.rotation, c.zoomX, c.zoomY)
	c.matrix.Translate(-ox, -oy)
}

// --- Coordinates ---

// scrollOffset returns the screen-space offset of the camera scroll after
// rotation and zoom. The y term keeps the engine's historical sign
// (scrollX*sin - scrollY*cos); see GetWorldPoint.
func (c *Camera) scrollOffset() (float64, float64) {
	sin, cos := math.Sincos(c.rotation)
	ox := (c.scrollX*cos - c.scrollY*sin) * c.zoomX
	oy := (c.scrollX*sin - c.scrollY*cos) * c.zoomY
	return ox, oy
}

// GetWorldPoint converts a screen point to world space using the inverse of
// the camera matrix, after offsetting by the rotated and zoomed scroll. If the
// matrix is singular the input is returned unchanged.
//
// The vertical scroll offset uses scrollX*sin - scrollY*cos, which matches
// the engine this camera is modeled on but is not a plain rotation.
func (c *Camera) GetWorldPoint(x, y float64) Vec2 {
	inv, ok := c.matrix.Invert()
	if !ok {
		return Vec2{x, y}
	}
	ox, oy := c.scrollOffset()
	wx, wy := inv.TransformPoint(x+ox, y+oy)
	return Vec2{wx, wy}
}

// GetScreenPoint is the inverse of GetWorldPoint: it maps a world point to the
// screen point GetWorldPoint would convert back to it.
func (c *Camera) GetScreenPoint(x, y float64) Vec2 {
	if c.matrix.Determinant() == 0 {
		return Vec2{x, y}
	}
	ox, oy := c.scrollOffset()
	sx, sy := c.matrix.TransformPoint(x, y)
	return Vec2{sx - ox, sy - oy}
}

// --- Events ---

// On registers a handler for the named camera event.
func (c *Camera) On(name string, fn EventHandler) int { return c.events.On(name, fn) }

// Once registers a handler for the next emission of the named event.
func (c *Camera) Once(name string, fn EventHandler) int { return c.events.Once(name, fn) }

// Off removes the handler with the given id.
func (c *Camera) Off(name string, id int) { c.events.Off(name, id) }

// ListenerCount returns the number of handlers for name.
func (c *Camera) ListenerCount(name string) int { return c.events.ListenerCount(name) }

// RemoveAllListeners drops every handler registered on this camera.
func (c *Camera) RemoveAllListeners() { c.events.RemoveAllListeners() }

func (c *Camera) emit(name string) {
	c.events.dispatch(name, c)
	if c.manager != nil && c.manager.scene != nil && c.manager.scene.store != nil {
		c.manager.scene.store.EmitEvent(CameraEvent{Name: name, Camera: c})
	}
}

// --- Lifecycle ---

// Destroy stops all effects, emits EventDestroy, drops listeners and
// per-frame lists, and releases the camera's custom viewport slot.
func (c *Camera) Destroy() {
	if c.destroyed {
		return
	}
	c.ResetFX()
	c.emit(EventDestroy)
	c.RemoveAllListeners()
	c.culled = nil
	if c.customViewport && c.manager != nil {
		c.manager.customViewports--
		c.customViewport = false
	}
	c.renderList = nil
	c.follow = nil
	c.destroyed = true
}
