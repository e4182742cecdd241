package zenith

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestMatrixLoadIdentity(t *testing.T) {
	m := Matrix{2, 3, 4, 5, 6, 7}
	m.LoadIdentity()
	assertMatrix(t, "identity", m.Vector(), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestMatrixApplyITRS(t *testing.T) {
	tests := []struct {
		name              string
		x, y, rot, sx, sy float64
		want              [6]float64
	}{
		{"translate", 10, 20, 0, 1, 1, [6]float64{1, 0, 0, 1, 10, 20}},
		{"scale", 0, 0, 0, 2, 3, [6]float64{2, 0, 0, 3, 0, 0}},
		{"rotate90", 0, 0, math.Pi / 2, 1, 1, [6]float64{0, 1, -1, 0, 0, 0}},
		{"all", 5, 6, math.Pi, 2, 2, [6]float64{-2, 0, 0, -2, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Matrix
			m.ApplyITRS(tt.x, tt.y, tt.rot, tt.sx, tt.sy)
			assertMatrix(t, tt.name, m.Vector(), tt.want)
		})
	}
}

func TestMatrixTranslateIsLocal(t *testing.T) {
	var m Matrix
	m.ApplyITRS(100, 50, 0, 2, 2)
	m.Translate(-10, -5)
	assertMatrix(t, "translated", m.Vector(), [6]float64{2, 0, 0, 2, 80, 40})
}

func TestMatrixDeterminant(t *testing.T) {
	var m Matrix
	m.ApplyITRS(0, 0, 0.7, 2, 3)
	assertNear(t, "det", m.Determinant(), 6)

	m.ApplyITRS(0, 0, 0, 0, 1)
	assertNear(t, "singular det", m.Determinant(), 0)
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	var m Matrix
	m.ApplyITRS(30, -40, 0.4, 1.5, 0.5)
	m.Translate(-12, -7)

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular")
	}
	x, y := m.TransformPoint(17, 23)
	bx, by := inv.TransformPoint(x, y)
	assertNear(t, "x", bx, 17)
	assertNear(t, "y", by, 23)

	assertMatrix(t, "m*inv", multiplyAffine(m, inv).Vector(), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Matrix{0, 0, 0, 0, 5, 5}
	inv, ok := m.Invert()
	if ok {
		t.Error("Invert should fail on singular matrix")
	}
	assertMatrix(t, "fallback", inv.Vector(), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestMultiplyAffineOrder(t *testing.T) {
	var scale, move Matrix
	scale.ApplyITRS(0, 0, 0, 2, 2)
	move.ApplyITRS(10, 0, 0, 1, 1)

	// move applied first, then scale.
	x, _ := multiplyAffine(scale, move).TransformPoint(1, 0)
	assertNear(t, "scale*move", x, 22)

	x, _ = multiplyAffine(move, scale).TransformPoint(1, 0)
	assertNear(t, "move*scale", x, 12)
}

func TestMatrixGeoM(t *testing.T) {
	var m Matrix
	m.ApplyITRS(7, 9, 0.3, 2, 1.5)
	g := m.GeoM()
	gx, gy := g.Apply(3, 4)
	mx, my := m.TransformPoint(3, 4)
	assertNear(t, "x", gx, mx)
	assertNear(t, "y", gy, my)
}

func TestAABBOfRotated(t *testing.T) {
	var m Matrix
	m.ApplyITRS(0, 0, math.Pi/2, 1, 1)
	r := aabbOf(m, 0, 0, 10, 20)
	assertNear(t, "x", r.X, -20)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "w", r.Width, 20)
	assertNear(t, "h", r.Height, 10)
}
