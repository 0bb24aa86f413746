// Package ecs provides ECS adapters for flycam's scene event stream.
//
// The primary adapter is [NewDonburiStore], which bridges flycam scene
// events (instance added, camera moved, resize, skipped frame) into a
// [Donburi] world as typed events, and mirrors every added instance as an
// entity carrying an [InstanceRef] component.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
