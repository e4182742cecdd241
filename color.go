package zenith

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorFromHex converts a packed hex value to a Color. Values up to 0xFFFFFF
// are read as 0xRRGGBB and are fully opaque; larger values are read as
// 0xAARRGGBB.
func ColorFromHex(hex uint32) Color {
	a := uint8(0xff)
	if hex > 0xffffff {
		a = uint8(hex >> 24)
	}
	return ColorFromRGBA8(uint8(hex>>16), uint8(hex>>8), uint8(hex), a)
}

// ColorFromRGBA8 builds a Color from 8-bit channel values.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// ParseHexColor parses "#RRGGBB", "#RRGGBBAA", "0xRRGGBB" or "0xAARRGGBB".
func ParseHexColor(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		digits := s[1:]
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		switch len(digits) {
		case 6:
			return ColorFromRGBA8(uint8(v>>16), uint8(v>>8), uint8(v), 0xff), nil
		case 8:
			return ColorFromRGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return ColorFromHex(uint32(v)), nil
	}
	return Color{}, fmt.Errorf("parse color %q: missing # or 0x prefix", s)
}

// RGBA8 returns the color as 8-bit channel values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Hex returns the color packed as 0xAARRGGBB.
func (c Color) Hex() uint32 {
	r, g, b, a := c.RGBA8()
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Alpha8 returns the alpha channel as an 8-bit value.
func (c Color) Alpha8() uint8 {
	return to8(c.A)
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// GL returns the color as float32 components in [0, 1], suitable for
// ebiten.ColorScale and shader uniforms.
func (c Color) GL() [4]float32 {
	return [4]float32{
		float32(clamp01(c.R)),
		float32(clamp01(c.G)),
		float32(clamp01(c.B)),
		float32(clamp01(c.A)),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toRGBA converts a Color to a color.Color (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}
