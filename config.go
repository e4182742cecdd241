package zenith

import (
	"encoding/json"
	"fmt"
)

// CameraConfig describes a camera for CameraManager.FromConfig. A zero Width
// or Height means the game size; a zero Zoom means 1.
type CameraConfig struct {
	Name     string  `json:"name,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Zoom     float64 `json:"zoom,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
	ScrollX  float64 `json:"scrollX,omitempty"`
	ScrollY  float64 `json:"scrollY,omitempty"`

	// BackgroundColor is "#RRGGBB", "#RRGGBBAA" or empty for transparent.
	BackgroundColor string `json:"backgroundColor,omitempty"`

	// Bounds, when non-empty, enables bounds clamping.
	Bounds *Rect `json:"bounds,omitempty"`

	// Visible defaults to true when omitted.
	Visible *bool `json:"visible,omitempty"`
}

// LoadCameraConfigs parses a JSON array of camera configs.
func LoadCameraConfigs(jsonData []byte) ([]CameraConfig, error) {
	var configs []CameraConfig
	if err := json.Unmarshal(jsonData, &configs); err != nil {
		return nil, fmt.Errorf("parse camera configs: %w", err)
	}
	for i, cfg := range configs {
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("parse camera configs: camera %d: %w", i, err)
		}
	}
	return configs, nil
}

func (cfg CameraConfig) validate() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("negative viewport size %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.BackgroundColor != "" {
		if _, err := ParseHexColor(cfg.BackgroundColor); err != nil {
			return fmt.Errorf("background color: %w", err)
		}
	}
	return nil
}

// apply copies the non-viewport settings onto c.
func (cfg CameraConfig) apply(c *Camera) {
	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = 1
	}
	c.SetZoom(zoom, zoom)
	c.SetRotation(cfg.Rotation)
	if cfg.Bounds != nil && !cfg.Bounds.IsEmpty() {
		c.SetBounds(cfg.Bounds.X, cfg.Bounds.Y, cfg.Bounds.Width, cfg.Bounds.Height, false)
	}
	c.SetScroll(cfg.ScrollX, cfg.ScrollY)
	if col, err := ParseHexColor(cfg.BackgroundColor); err == nil {
		c.SetBackgroundColorValue(col)
	}
	c.Visible = cfg.Visible == nil || *cfg.Visible
}
