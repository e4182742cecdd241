// Package zenith is a 2D camera framework for [Ebitengine].
//
// Zenith provides cameras that scroll, zoom and rotate a scene, follow a
// target with optional smoothing and a dead-zone, clamp to world bounds, cull
// what they cannot see, and run time-based effects: fade, flash, shake, pan,
// rotate-to and zoom-to.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := zenith.NewScene()
//	hero := zenith.NewRect("hero", 16, 16, zenith.ColorWhite)
//	scene.Add(hero)
//	scene.Camera().StartFollow(hero, 0.1, 0.1, 0, 0)
//	zenith.Run(scene, zenith.GameConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// with a millisecond clock and [Scene.Draw] directly:
//
//	func (g *Game) Update() error {
//		g.now += 16
//		return g.scene.Update(g.now, 16)
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//
// # Cameras
//
// Every scene starts with one main camera covering the game area. Add more
// through [CameraManager.Add] or from JSON with [LoadCameraConfigs] and
// [CameraManager.FromConfig]. Each managed camera gets an id bit;
// [Camera.Ignore] sets that bit in an object's camera filter so the camera
// skips it.
//
// Per frame a camera advances its effects in [Camera.Update], then
// [Camera.PreRender] applies follow and bounds logic, commits the scroll and
// rebuilds the transform. [Camera.Cull] filters the display list to what
// intersects the viewport.
//
// Effects are started with methods such as [Camera.FadeOut], [Camera.Shake]
// and [Camera.Pan]. Starting an effect that is already running is ignored
// unless force is true. Durations are in milliseconds; easing uses [gween]
// ease functions, looked up by name with [EaseByName].
//
// # Extras
//
// [TileLayer] draws large tile maps at viewport cost. [LoadCameraScript]
// plays a JSON sequence of camera actions, one per frame, and
// [Scene.Screenshot] captures the rendered frame to PNG.
//
// # Events
//
// Cameras emit named events ("destroy", "follow-update", effect start and
// complete). Listen with [Camera.On] or forward them to an ECS through
// [Scene.SetEntityStore]; the [Donburi] adapter lives in zenith/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package zenith
