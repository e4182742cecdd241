package zenith

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter; zenith is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // draws Image stretched to Width x Height
	NodeTypeRect                      // solid Color rectangle of Width x Height
)

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// Node is a display object: a sprite, a solid rectangle, or a container of
// other nodes. A single flat struct is used for all node types to avoid
// interface dispatch on the hot path. Node implements GameObject, so cameras
// can cull, ignore and follow it.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). X, Y is the position of the origin point.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// OriginX, OriginY is the normalized anchor within Width x Height.
	OriginX, OriginY float64

	// ScrollFactorX, ScrollFactorY scale how much camera scroll moves the
	// node. Only top-level nodes use them.
	ScrollFactorX, ScrollFactorY float64

	// Width, Height is the unscaled display size. NewSprite sets it from the
	// image bounds.
	Width, Height float64

	// Appearance
	Alpha     float64
	Visible   bool
	Color     Color
	BlendMode BlendMode
	Image     *ebiten.Image

	// Depth orders siblings (and top-level nodes in the scene). Higher draws
	// later. Equal depths keep insertion order.
	Depth float64

	// Metadata
	UserData any
	EntityID uint32

	cameraFilter   uint32
	scene          *Scene
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for Depth-sorted draw order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.ScrollFactorX = 1
	n.ScrollFactorY = 1
	n.Alpha = 1
	n.Color = Color{1, 1, 1, 1}
	n.Visible = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that draws img. A nil img draws a 1x1
// white pixel tinted by Color.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	if img == nil {
		n.Image = WhitePixel
	}
	b := n.Image.Bounds()
	n.Width = float64(b.Dx())
	n.Height = float64(b.Dy())
	return n
}

// NewRect creates a solid rectangle node of the given size and color.
func NewRect(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- GameObject ---

// Position returns the node's local position.
func (n *Node) Position() (x, y float64) { return n.X, n.Y }

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Size returns the scaled display size.
func (n *Node) Size() (w, h float64) {
	return n.Width * math.Abs(n.ScaleX), n.Height * math.Abs(n.ScaleY)
}

// Origin returns the normalized anchor.
func (n *Node) Origin() (x, y float64) { return n.OriginX, n.OriginY }

// SetOrigin sets the normalized anchor.
func (n *Node) SetOrigin(x, y float64) {
	n.OriginX = x
	n.OriginY = y
}

// ScrollFactor returns the scroll factor.
func (n *Node) ScrollFactor() (x, y float64) { return n.ScrollFactorX, n.ScrollFactorY }

// SetScrollFactor sets the scroll factor. (0, 0) pins the node to the screen.
func (n *Node) SetScrollFactor(x, y float64) {
	n.ScrollFactorX = x
	n.ScrollFactorY = y
}

// HasParent reports whether the node is inside a container.
func (n *Node) HasParent() bool { return n.Parent != nil }

// CameraFilter returns the bitmask of camera ids that skip this node.
func (n *Node) CameraFilter() uint32 { return n.cameraFilter }

// SetCameraFilter replaces the camera filter bitmask.
func (n *Node) SetCameraFilter(mask uint32) { n.cameraFilter = mask }

// IsVisible reports whether the node and all of its ancestors are visible.
func (n *Node) IsVisible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible || p.Alpha == 0 {
			return false
		}
	}
	return true
}

// SetDepth sets the node's Depth and marks the siblings' order as unsorted.
// Top-level nodes are re-sorted every frame, so writing Depth directly is
// enough for them.
func (n *Node) SetDepth(d float64) {
	if n.Depth == d {
		return
	}
	n.Depth = d
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("zenith: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("zenith: adding child would create a cycle")
	}
	if child.scene != nil {
		child.scene.Remove(child)
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("zenith: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent or scene, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.scene != nil {
		n.scene.Remove(n)
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Drawing ---

// localGeoM returns the node's transform relative to its parent.
func (n *Node) localGeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-n.Width*n.OriginX, -n.Height*n.OriginY)
	m.Scale(n.ScaleX, n.ScaleY)
	if n.Rotation != 0 {
		m.Rotate(n.Rotation)
	}
	m.Translate(n.X, n.Y)
	return m
}

// Draw renders the node and its children onto dst. parent maps the node's
// parent space to dst pixels.
func (n *Node) Draw(dst *ebiten.Image, parent ebiten.GeoM) {
	n.draw(dst, parent, 1)
}

func (n *Node) draw(dst *ebiten.Image, parent ebiten.GeoM, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	world := n.localGeoM()
	world.Concat(parent)

	switch n.Type {
	case NodeTypeSprite:
		if n.Image != nil {
			n.drawImage(dst, n.Image, world, alpha)
		}
	case NodeTypeRect:
		n.drawImage(dst, WhitePixel, world, alpha)
	}

	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		n.rebuildSortedChildren()
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		child.draw(dst, world, alpha)
	}
}

// drawImage stretches img over the node's Width x Height rectangle.
func (n *Node) drawImage(dst, img *ebiten.Image, world ebiten.GeoM, alpha float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width/iw, n.Height/ih)
	op.GeoM.Concat(world)
	op.ColorScale.Scale(float32(n.Color.R), float32(n.Color.G), float32(n.Color.B), float32(n.Color.A))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = n.BlendMode.EbitenBlend()
	dst.DrawImage(img, &op)
}

// rebuildSortedChildren rebuilds the Depth-sorted draw order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func (n *Node) rebuildSortedChildren() {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].Depth > key.Depth {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
