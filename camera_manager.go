package zenith

import (
	"fmt"
	"os"
)

// maxCameras is the number of distinct camera ids that fit in a filter mask.
const maxCameras = 32

// CameraManager owns a scene's cameras. Cameras it creates get a unique id
// bit used by Ignore and object camera filters.
type CameraManager struct {
	scene   *Scene
	cameras []*Camera
	main    *Camera

	// width and height are the game size; a camera covering exactly this
	// area at the origin has a default viewport.
	width, height float64

	customViewports int
}

func newCameraManager(s *Scene, width, height float64) *CameraManager {
	return &CameraManager{scene: s, width: width, height: height}
}

// nextID returns the lowest id bit not used by any managed camera, or 0 if
// all 32 are taken.
func (m *CameraManager) nextID() uint32 {
	var used uint32
	for _, c := range m.cameras {
		used |= c.id
	}
	for i := range maxCameras {
		bit := uint32(1) << i
		if used&bit == 0 {
			return bit
		}
	}
	return 0
}

// Add creates a camera with the given viewport and adds it to the manager.
// The first camera added becomes the main camera unless makeMain is false
// and a main camera already exists.
func (m *CameraManager) Add(x, y, width, height float64, makeMain bool, name string) *Camera {
	c := NewCamera(x, y, width, height)
	c.Name = name
	m.attach(c, makeMain)
	return c
}

// AddExisting adds a camera created with NewCamera. It returns false if the
// camera is already managed.
func (m *CameraManager) AddExisting(c *Camera, makeMain bool) bool {
	for _, existing := range m.cameras {
		if existing == c {
			return false
		}
	}
	m.attach(c, makeMain)
	return true
}

func (m *CameraManager) attach(c *Camera, makeMain bool) {
	c.id = m.nextID()
	if c.id == 0 && m.scene != nil && m.scene.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[zenith] warning: camera %q has no id, %d cameras already in use\n",
			c.Name, maxCameras)
	}
	c.manager = m
	c.customViewport = false
	c.updateSystem()
	m.cameras = append(m.cameras, c)
	if makeMain || m.main == nil {
		m.main = c
	}
}

// FromConfig creates one camera per config and returns them in order.
func (m *CameraManager) FromConfig(configs []CameraConfig) []*Camera {
	out := make([]*Camera, 0, len(configs))
	for i, cfg := range configs {
		w, h := cfg.Width, cfg.Height
		if w == 0 {
			w = m.width
		}
		if h == 0 {
			h = m.height
		}
		c := m.Add(cfg.X, cfg.Y, w, h, i == 0 && m.main == nil, cfg.Name)
		cfg.apply(c)
		out = append(out, c)
	}
	return out
}

// Remove destroys c and drops it from the manager. It returns false if c is
// not managed here.
func (m *CameraManager) Remove(c *Camera) bool {
	for i, existing := range m.cameras {
		if existing != c {
			continue
		}
		copy(m.cameras[i:], m.cameras[i+1:])
		m.cameras[len(m.cameras)-1] = nil
		m.cameras = m.cameras[:len(m.cameras)-1]
		c.Destroy()
		c.manager = nil
		if m.main == c {
			m.main = nil
			if len(m.cameras) > 0 {
				m.main = m.cameras[0]
			}
		}
		return true
	}
	return false
}

// Main returns the main camera, or nil if there are no cameras.
func (m *CameraManager) Main() *Camera { return m.main }

// SetMain makes c the main camera. c must already be managed.
func (m *CameraManager) SetMain(c *Camera) { m.main = c }

// Cameras returns the managed cameras in render order. The returned slice
// MUST NOT be mutated.
func (m *CameraManager) Cameras() []*Camera { return m.cameras }

// Len returns the number of managed cameras.
func (m *CameraManager) Len() int { return len(m.cameras) }

// GetCamera returns the first camera with the given name, or nil.
func (m *CameraManager) GetCamera(name string) *Camera {
	for _, c := range m.cameras {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// CustomViewports returns how many managed cameras do not cover the whole
// game area.
func (m *CameraManager) CustomViewports() int { return m.customViewports }

// ResetAll destroys every camera and leaves a single main camera covering the
// game area.
func (m *CameraManager) ResetAll() *Camera {
	for _, c := range m.cameras {
		c.Destroy()
		c.manager = nil
	}
	m.cameras = m.cameras[:0]
	m.main = nil
	m.customViewports = 0
	return m.Add(0, 0, m.width, m.height, true, "")
}

// Update advances the effects of every camera.
func (m *CameraManager) Update(now, delta uint32) {
	for _, c := range m.cameras {
		c.Update(now, delta)
	}
}

// Resize changes the game size. Cameras that covered the old game area are
// resized to cover the new one.
func (m *CameraManager) Resize(width, height float64) {
	oldW, oldH := m.width, m.height
	m.width, m.height = width, height
	for _, c := range m.cameras {
		if c.x == 0 && c.y == 0 && c.width == oldW && c.height == oldH {
			c.SetSize(width, height)
			continue
		}
		c.updateSystem()
	}
}
