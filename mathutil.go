package zenith

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linear interpolates between a and b by t.
func Linear(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap wraps v into the half-open range [lo, hi).
func Wrap(v, lo, hi float64) float64 {
	r := hi - lo
	return lo + math.Mod(math.Mod(v-lo, r)+r, r)
}

// WrapRadians wraps an angle into [-Pi, Pi).
func WrapRadians(rad float64) float64 {
	return Wrap(rad, -math.Pi, math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
