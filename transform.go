package zenith

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Matrix is a 2D affine transform stored as [a, b, c, d, e, f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// so that x' = a*x + c*y + e and y' = b*x + d*y + f.
type Matrix [6]float64

// identityTransform is the identity affine matrix.
var identityTransform = Matrix{1, 0, 0, 1, 0, 0}

// LoadIdentity resets m to the identity matrix.
func (m *Matrix) LoadIdentity() {
	*m = identityTransform
}

// ApplyITRS overwrites m with Identity -> Translate(x, y) -> Rotate(rotation)
// -> Scale(scaleX, scaleY).
func (m *Matrix) ApplyITRS(x, y, rotation, scaleX, scaleY float64) {
	sin, cos := math.Sincos(rotation)
	m[0] = cos * scaleX
	m[1] = sin * scaleX
	m[2] = -sin * scaleY
	m[3] = cos * scaleY
	m[4] = x
	m[5] = y
}

// Translate post-multiplies m by a translation of (x, y), i.e. the
// translation is applied in m's local space.
func (m *Matrix) Translate(x, y float64) {
	m[4] = m[0]*x + m[2]*y + m[4]
	m[5] = m[1]*x + m[3]*y + m[5]
}

// Vector returns the six coefficients [a, b, c, d, e, f].
func (m Matrix) Vector() [6]float64 {
	return m
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of m. ok is false when m is singular, in which
// case the identity matrix is returned.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return identityTransform, false
	}
	id := 1 / det
	return Matrix{
		m[3] * id,
		-m[1] * id,
		-m[2] * id,
		m[0] * id,
		(m[2]*m[5] - m[3]*m[4]) * id,
		(m[1]*m[4] - m[0]*m[5]) * id,
	}, true
}

// TransformPoint applies m to the point (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// multiplyAffine multiplies two affine matrices: result = p * c, so c is
// applied first.
func multiplyAffine(p, c Matrix) Matrix {
	return Matrix{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// GeoM converts m to an ebiten.GeoM.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// aabbOf returns the axis-aligned bounds of the rectangle (x, y, w, h)
// after transforming all four corners by m.
func aabbOf(m Matrix, x, y, w, h float64) Rect {
	x0, y0 := m.TransformPoint(x, y)
	x1, y1 := m.TransformPoint(x+w, y)
	x2, y2 := m.TransformPoint(x+w, y+h)
	x3, y3 := m.TransformPoint(x, y+h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
