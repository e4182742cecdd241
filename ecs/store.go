package ecs

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/zenith"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// CameraEventType is the Donburi event type for zenith camera events.
// Subscribe to this in your ECS systems to receive effect, follow and
// lifecycle notifications.
var CameraEventType = events.NewEventType[zenith.CameraEvent]()

// drawQuery matches every entity the store exposes to cameras.
var drawQuery = donburi.NewQuery(filter.Contains(Position, Size))

// Store exposes a Donburi world to a zenith scene.
type Store struct {
	world   donburi.World
	objects map[donburi.Entity]*Object
	buf     []zenith.Drawable
}

// NewStore creates a Store backed by world.
func NewStore(world donburi.World) *Store {
	return &Store{
		world:   world,
		objects: make(map[donburi.Entity]*Object),
	}
}

// World returns the backing world.
func (s *Store) World() donburi.World { return s.world }

// EmitEvent implements zenith.EntityStore. Events are queued; they reach
// subscribers when CameraEventType.ProcessEvents runs.
func (s *Store) EmitEvent(event zenith.CameraEvent) {
	CameraEventType.Publish(s.world, event)
}

// Spawn creates a drawable entity at (x, y) of the given size. A nil img
// draws a white rectangle.
func (s *Store) Spawn(x, y, width, height float64, img *ebiten.Image) donburi.Entity {
	entity := s.world.Create(Position, Size, Sprite)
	entry := s.world.Entry(entity)
	Position.SetValue(entry, math.NewVec2(x, y))
	Size.SetValue(entry, SizeData{Width: width, Height: height})
	Sprite.SetValue(entry, SpriteData{Image: img, Color: zenith.ColorWhite})
	return entity
}

// AttachCamera stores cam on entity.
func (s *Store) AttachCamera(entity donburi.Entity, cam *zenith.Camera) {
	entry := s.world.Entry(entity)
	if !entry.HasComponent(Camera) {
		entry.AddComponent(Camera)
	}
	Camera.SetValue(entry, CameraData{Camera: cam})
}

// Camera returns the camera attached to entity. It panics if the entity has
// no Camera component.
func (s *Store) Camera(entity donburi.Entity) *zenith.Camera {
	return mustGet(s.world.Entry(entity), Camera, "Camera").Camera
}

// Object returns the GameObject view of entity. The same pointer is returned
// for the lifetime of the entity.
func (s *Store) Object(entity donburi.Entity) *Object {
	if obj, ok := s.objects[entity]; ok {
		return obj
	}
	obj := &Object{world: s.world, entity: entity}
	s.objects[entity] = obj
	return obj
}

// Drawables implements zenith.DrawableSource. Entities are returned in
// creation order; the scene then orders them by sprite depth.
func (s *Store) Drawables() []zenith.Drawable {
	for entity := range s.objects {
		if !s.world.Valid(entity) {
			delete(s.objects, entity)
		}
	}

	entities := make([]donburi.Entity, 0, len(s.objects))
	drawQuery.Each(s.world, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	slices.SortFunc(entities, func(a, b donburi.Entity) int {
		return int(a.Id()) - int(b.Id())
	})

	s.buf = s.buf[:0]
	for _, entity := range entities {
		s.buf = append(s.buf, s.Object(entity))
	}
	return s.buf
}

// Object is the zenith.Drawable view of an entity. It reads and writes
// components on every call; nothing is cached.
type Object struct {
	world  donburi.World
	entity donburi.Entity
}

// Entity returns the backing entity.
func (o *Object) Entity() donburi.Entity { return o.entity }

func (o *Object) entry() *donburi.Entry {
	return o.world.Entry(o.entity)
}

// Position implements zenith.GameObject and zenith.Target.
func (o *Object) Position() (x, y float64) {
	p := mustGet(o.entry(), Position, "Position")
	return p.X, p.Y
}

// SetPosition moves the entity.
func (o *Object) SetPosition(x, y float64) {
	p := mustGet(o.entry(), Position, "Position")
	p.X, p.Y = x, y
}

// Size implements zenith.GameObject.
func (o *Object) Size() (w, h float64) {
	sz := mustGet(o.entry(), Size, "Size")
	return sz.Width, sz.Height
}

// Origin implements zenith.GameObject.
func (o *Object) Origin() (x, y float64) {
	entry := o.entry()
	if !entry.HasComponent(Origin) {
		return 0, 0
	}
	v := Origin.Get(entry)
	return v.X, v.Y
}

// ScrollFactor implements zenith.GameObject.
func (o *Object) ScrollFactor() (x, y float64) {
	entry := o.entry()
	if !entry.HasComponent(ScrollFactor) {
		return 1, 1
	}
	v := ScrollFactor.Get(entry)
	return v.X, v.Y
}

// HasParent implements zenith.GameObject.
func (o *Object) HasParent() bool {
	return o.entry().HasComponent(Parent)
}

// CameraFilter implements zenith.GameObject.
func (o *Object) CameraFilter() uint32 {
	entry := o.entry()
	if !entry.HasComponent(CameraFilter) {
		return 0
	}
	return CameraFilter.Get(entry).Mask
}

// SetCameraFilter implements zenith.GameObject, adding the CameraFilter
// component if needed.
func (o *Object) SetCameraFilter(mask uint32) {
	entry := o.entry()
	if !entry.HasComponent(CameraFilter) {
		entry.AddComponent(CameraFilter)
	}
	CameraFilter.Get(entry).Mask = mask
}

// IsVisible reports whether the entity has a sprite that is not hidden.
func (o *Object) IsVisible() bool {
	entry := o.entry()
	return entry.HasComponent(Sprite) && !Sprite.Get(entry).Hidden
}

// RenderDepth orders the entity among the scene's drawables.
func (o *Object) RenderDepth() float64 {
	entry := o.entry()
	if !entry.HasComponent(Sprite) {
		return 0
	}
	return Sprite.Get(entry).Depth
}

// Draw implements zenith.Drawable.
func (o *Object) Draw(dst *ebiten.Image, view ebiten.GeoM) {
	entry := o.entry()
	sp := mustGet(entry, Sprite, "Sprite")
	x, y := o.Position()
	w, h := o.Size()
	ox, oy := o.Origin()

	img := sp.Image
	if img == nil {
		img = zenith.WhitePixel
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(-w*ox, -h*oy)
	if sp.Rotation != 0 {
		op.GeoM.Rotate(sp.Rotation)
	}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(view)
	gl := sp.Color.GL()
	op.ColorScale.Scale(gl[0], gl[1], gl[2], gl[3])
	dst.DrawImage(img, &op)
}
