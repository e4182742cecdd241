package ecs

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/zenith"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SizeData is an entity's unscaled display size.
type SizeData struct {
	Width, Height float64
}

// CameraFilterData holds the ids of cameras that skip the entity.
type CameraFilterData struct {
	Mask uint32
}

// ParentData marks an entity as living inside a container entity.
type ParentData struct {
	Entity donburi.Entity
}

// SpriteData describes how an entity is drawn.
type SpriteData struct {
	// Image is stretched to the entity's Size. Nil draws a solid rectangle
	// in Color.
	Image    *ebiten.Image
	Color    zenith.Color
	Rotation float64
	Depth    float64
	Hidden   bool
}

// CameraData attaches a zenith camera to an entity.
type CameraData struct {
	Camera *zenith.Camera
}

// Position is the entity's world position (required).
var Position = donburi.NewComponentType[math.Vec2]()

// Size is the entity's display size (required).
var Size = donburi.NewComponentType[SizeData]()

// Origin is the normalized anchor within Size. Defaults to (0, 0).
var Origin = donburi.NewComponentType[math.Vec2]()

// ScrollFactor scales how far camera scroll moves the entity. Defaults to
// (1, 1).
var ScrollFactor = donburi.NewComponentType[math.Vec2]()

// CameraFilter lists cameras that skip the entity. Defaults to none.
var CameraFilter = donburi.NewComponentType[CameraFilterData]()

// Parent marks the entity as a container child. Cameras never cull it.
var Parent = donburi.NewComponentType[ParentData]()

// Sprite makes the entity drawable.
var Sprite = donburi.NewComponentType[SpriteData]()

// Camera attaches a camera to the entity.
var Camera = donburi.NewComponentType[CameraData]()

// mustGet returns the component data of c on entry, panicking if the entity
// lacks it.
func mustGet[T any](entry *donburi.Entry, c *donburi.ComponentType[T], name string) *T {
	if !entry.HasComponent(c) {
		panic(fmt.Sprintf("ecs: entity %v has no %s component", entry.Entity(), name))
	}
	return c.Get(entry)
}
