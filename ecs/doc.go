// Package ecs provides ECS adapters for gesture's event system.
//
// The primary adapter is [NewDonburiStore], which bridges recognized gestures
// (tap, doubletap, press, drag, flick) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// Only gestures attributed to nodes with a non-zero EntityID are forwarded.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
