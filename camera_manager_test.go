package zenith

import "testing"

func TestCameraManagerMainCamera(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	main := m.Main()
	if main.Name != "main" || main.ID() != 1 {
		t.Errorf("main = %q id %d", main.Name, main.ID())
	}
	if m.CustomViewports() != 0 {
		t.Errorf("CustomViewports = %d, want 0", m.CustomViewports())
	}
}

func TestCameraManagerIDs(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	a := m.Add(0, 0, 100, 100, false, "a")
	b := m.Add(0, 0, 100, 100, false, "b")
	if a.ID() != 2 || b.ID() != 4 {
		t.Errorf("ids = %d, %d; want 2, 4", a.ID(), b.ID())
	}

	m.Remove(a)
	c := m.Add(0, 0, 100, 100, false, "c")
	if c.ID() != 2 {
		t.Errorf("freed id should be reused, got %d", c.ID())
	}
}

func TestCameraManagerRemoveReleasesSlot(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	a := m.Add(0, 0, 100, 100, false, "a")
	m.Add(0, 0, 100, 100, false, "b")

	if !m.Remove(a) {
		t.Fatal("Remove returned false")
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	backing := m.cameras[:m.Len()+1]
	if backing[m.Len()] != nil {
		t.Error("removed camera still referenced by the backing array")
	}
	if m.GetCamera("b") == nil || m.GetCamera("a") != nil {
		t.Error("wrong camera removed")
	}
}

func TestCameraManagerIDsExhausted(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	for range maxCameras - 1 {
		m.Add(0, 0, 10, 10, false, "")
	}
	extra := m.Add(0, 0, 10, 10, false, "extra")
	if extra.ID() != 0 {
		t.Errorf("33rd camera id = %d, want 0", extra.ID())
	}
	n := rectAt("n", 0, 0, 1, 1)
	extra.Ignore(n)
	if n.CameraFilter() != 0 {
		t.Error("camera without id should ignore nothing")
	}
}

func TestCameraManagerMainSelection(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	first := m.Main()
	second := m.Add(0, 0, 800, 600, true, "second")
	if m.Main() != second {
		t.Error("makeMain should replace the main camera")
	}
	m.SetMain(first)
	if m.Main() != first {
		t.Error("SetMain should change the main camera")
	}
	m.Remove(first)
	if m.Main() != second {
		t.Error("removing main should promote the first remaining camera")
	}
	if !first.IsDestroyed() {
		t.Error("removed camera should be destroyed")
	}
	if m.Remove(first) {
		t.Error("removing twice should return false")
	}
}

func TestCameraManagerAddExisting(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	cam := NewCamera(0, 0, 200, 200)
	if !m.AddExisting(cam, false) {
		t.Fatal("AddExisting should succeed")
	}
	if cam.ID() == 0 {
		t.Error("managed camera should get an id")
	}
	if m.AddExisting(cam, false) {
		t.Error("adding a camera twice should fail")
	}
	if m.CustomViewports() != 1 {
		t.Errorf("CustomViewports = %d, want 1", m.CustomViewports())
	}
}

func TestCameraManagerCustomViewports(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	mini := m.Add(600, 0, 200, 150, false, "minimap")
	if m.CustomViewports() != 1 {
		t.Fatalf("CustomViewports = %d, want 1", m.CustomViewports())
	}

	mini.SetViewport(0, 0, 800, 600)
	if m.CustomViewports() != 0 {
		t.Errorf("full viewport: CustomViewports = %d, want 0", m.CustomViewports())
	}
	mini.SetSize(400, 300)
	if m.CustomViewports() != 1 {
		t.Errorf("resized: CustomViewports = %d, want 1", m.CustomViewports())
	}
	m.Remove(mini)
	if m.CustomViewports() != 0 {
		t.Errorf("removed: CustomViewports = %d, want 0", m.CustomViewports())
	}
}

func TestCameraManagerGetCamera(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	ui := m.Add(0, 0, 800, 600, false, "ui")
	if m.GetCamera("ui") != ui {
		t.Error("GetCamera should find by name")
	}
	if m.GetCamera("missing") != nil {
		t.Error("GetCamera should return nil for unknown names")
	}
}

func TestCameraManagerResetAll(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	old := m.Main()
	m.Add(10, 10, 100, 100, false, "a")
	m.Add(20, 20, 100, 100, false, "b")

	cam := m.ResetAll()
	if m.Len() != 1 || m.Main() != cam {
		t.Errorf("Len = %d, main = %p; want 1, %p", m.Len(), m.Main(), cam)
	}
	if !old.IsDestroyed() {
		t.Error("ResetAll should destroy the old cameras")
	}
	if cam.ID() != 1 || m.CustomViewports() != 0 {
		t.Errorf("id = %d, custom = %d", cam.ID(), m.CustomViewports())
	}
}

func TestCameraManagerResize(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	mini := m.Add(0, 0, 200, 150, false, "minimap")

	m.Resize(1024, 768)
	main := m.Main()
	if main.Width() != 1024 || main.Height() != 768 {
		t.Errorf("main size = %vx%v, want 1024x768", main.Width(), main.Height())
	}
	if mini.Width() != 200 {
		t.Error("custom viewport should keep its size")
	}
	if m.CustomViewports() != 1 {
		t.Errorf("CustomViewports = %d, want 1", m.CustomViewports())
	}
}

func TestCameraManagerUpdateAdvancesEffects(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	other := m.Add(0, 0, 800, 600, false, "other")
	m.Main().Flash(100, 0, 0, 0, false, nil)
	other.Flash(100, 0, 0, 0, false, nil)

	m.Update(50, 50)
	assertNear(t, "main", m.Main().FlashEffect().Progress(), 0.5)
	assertNear(t, "other", other.FlashEffect().Progress(), 0.5)
}

func TestCameraManagerFromConfig(t *testing.T) {
	s := NewSceneSize(800, 600)
	m := s.Cameras()
	visible := false
	cams := m.FromConfig([]CameraConfig{
		{Name: "world", Zoom: 2, ScrollX: 100, BackgroundColor: "#102030"},
		{Name: "radar", X: 600, Width: 200, Height: 200, Visible: &visible},
	})
	if len(cams) != 2 || m.Len() != 3 {
		t.Fatalf("created %d, total %d", len(cams), m.Len())
	}

	world := cams[0]
	if world.Width() != 800 || world.Height() != 600 {
		t.Errorf("zero size should mean game size, got %vx%v", world.Width(), world.Height())
	}
	if world.Zoom() != 2 || world.ScrollX() != 100 {
		t.Errorf("zoom %v scroll %v", world.Zoom(), world.ScrollX())
	}
	if world.Transparent() {
		t.Error("background color should make the camera opaque")
	}
	if m.Main() == world {
		t.Error("existing main camera should be kept")
	}

	radar := cams[1]
	if radar.Visible {
		t.Error("visible=false should hide the camera")
	}
	if radar.Zoom() != 1 {
		t.Errorf("zero zoom should mean 1, got %v", radar.Zoom())
	}
}
