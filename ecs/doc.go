// Package ecs provides ECS adapters for glib particle engines.
//
// [Attach] puts an engine on a [Donburi] entity as an [Effect] component and
// routes its lifecycle events (bursts, expiries, clears) into the world as
// typed events. [UpdateEffects] and [DrawEffects] drive every attached
// engine from your systems.
//
// Usage:
//
//	entity := ecs.Attach(world, engine)
//	ecs.EngineEventType.Subscribe(world, onEngineEvent)
//
//	// each frame
//	_ = ecs.UpdateEffects(world, dt)
//	ecs.EngineEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
