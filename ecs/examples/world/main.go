// World demonstrates driving zenith cameras from a Donburi world. Sprites
// are entities with Position, Size and Sprite components, a movement system
// updates them every step, and camera events arrive as typed Donburi events.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/phanxgames/zenith"
	"github.com/phanxgames/zenith/ecs"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

const (
	windowTitle = "Zenith - ECS Example"
	screenW     = 640
	screenH     = 480
	worldW      = 3000
	worldH      = 2000
	numCrates   = 400
)

// Velocity moves an entity every step, in pixels per second.
var Velocity = donburi.NewComponentType[math.Vec2]()

var movers = donburi.NewQuery(filter.Contains(ecs.Position, Velocity))

// move advances every entity with a velocity and bounces it off the world
// edges.
func move(world donburi.World, dt float64) {
	movers.Each(world, func(entry *donburi.Entry) {
		p := ecs.Position.Get(entry)
		v := Velocity.Get(entry)
		p.X += v.X * dt
		p.Y += v.Y * dt
		if p.X < 0 || p.X > worldW {
			v.X = -v.X
		}
		if p.Y < 0 || p.Y > worldH {
			v.Y = -v.Y
		}
	})
}

func main() {
	world := donburi.NewWorld()
	store := ecs.NewStore(world)

	scene := zenith.NewSceneSize(screenW, screenH)
	scene.SetEntityStore(store)
	scene.AddSource(store)

	for i := 0; i < numCrates; i++ {
		e := store.Spawn(rand.Float64()*worldW, rand.Float64()*worldH, 20, 20, nil)
		entry := world.Entry(e)
		ecs.Sprite.Get(entry).Color = zenith.ColorFromHex(0x8a7a55)
	}

	hero := store.Spawn(worldW/2, worldH/2, 24, 24, nil)
	heroEntry := world.Entry(hero)
	heroEntry.AddComponent(Velocity)
	Velocity.SetValue(heroEntry, math.NewVec2(180, 120))
	heroEntry.AddComponent(ecs.Origin)
	ecs.Origin.SetValue(heroEntry, math.NewVec2(0.5, 0.5))
	sprite := ecs.Sprite.Get(heroEntry)
	sprite.Color = zenith.ColorFromHex(0x50b4ff)
	sprite.Depth = 1

	cam := scene.Camera()
	cam.SetBounds(0, 0, worldW, worldH, false)
	cam.StartFollow(store.Object(hero), 0.1, 0.1, 0, 0)
	store.AttachCamera(hero, cam)

	ecs.CameraEventType.Subscribe(world, func(w donburi.World, e zenith.CameraEvent) {
		if e.Name == zenith.EventShakeComplete {
			log.Printf("camera %q finished shaking", e.Camera.Name)
		}
	})

	g := zenith.NewGame(scene, zenith.GameConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
	})
	var lastBounce uint32
	g.Step = func(now, delta uint32) {
		v := *Velocity.Get(heroEntry)
		move(world, float64(delta)/1000)
		if nv := Velocity.Get(heroEntry); (nv.X != v.X || nv.Y != v.Y) && now-lastBounce > 500 {
			lastBounce = now
			store.Camera(hero).Shake(250, zenith.Vec2{X: 0.01, Y: 0.01}, false, nil)
		}
	}
	g.PostStep = func(_, _ uint32) {
		ecs.CameraEventType.ProcessEvents(world)
	}

	if err := zenith.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
