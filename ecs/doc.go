// Package ecs binds zenith cameras to a [Donburi] world.
//
// [NewStore] returns a [Store] that is both a zenith.EntityStore and a
// zenith.DrawableSource. As an EntityStore it republishes camera events
// (fade complete, follow-update, destroy, ...) as typed Donburi events;
// subscribe to [CameraEventType] in your systems to receive them. As a
// DrawableSource it turns every entity with [Position] and [Size] components
// into an object the scene's cameras cull, filter and draw.
//
// Usage:
//
//	store := ecs.NewStore(world)
//	scene.SetEntityStore(store)
//	scene.AddSource(store)
//
//	hero := store.Spawn(100, 100, 16, 16, img)
//	scene.Camera().StartFollow(store.Object(hero), 0.1, 0.1, 0, 0)
//
// Accessing a required component on an entity that lacks it panics.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
