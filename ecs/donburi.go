package ecs

import (
	"errors"
	"time"

	"github.com/glen3b/glib"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// EngineEventType is the Donburi event type for glib engine events.
// Subscribe to this in your ECS systems to react to bursts and expiries.
var EngineEventType = events.NewEventType[glib.EngineEvent]()

// Effect is the component attaching a particle engine to an entity.
type Effect struct {
	Engine *glib.Engine
}

// EffectComponent is the Donburi component type for Effect.
var EffectComponent = donburi.NewComponentType[Effect]()

var effectQuery = donburi.NewQuery(filter.Contains(EffectComponent))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EngineEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) glib.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glib.EngineEvent) {
	EngineEventType.Publish(s.world, event)
}

// Attach creates an entity carrying e and routes e's events into world.
func Attach(world donburi.World, e *glib.Engine) donburi.Entity {
	entity := world.Create(EffectComponent)
	EffectComponent.SetValue(world.Entry(entity), Effect{Engine: e})
	e.Events = NewDonburiSink(world)
	return entity
}

// Detach returns the entity's particles to their pool and removes the entity.
func Detach(world donburi.World, entity donburi.Entity) error {
	if !world.Valid(entity) {
		return nil
	}
	var err error
	entry := world.Entry(entity)
	if entry.HasComponent(EffectComponent) {
		if eff := EffectComponent.Get(entry); eff.Engine != nil {
			err = eff.Engine.Clear()
		}
	}
	world.Remove(entity)
	return err
}

// UpdateEffects advances every attached engine by elapsed. All engines are
// updated even if some fail; the failures are joined.
func UpdateEffects(world donburi.World, elapsed time.Duration) error {
	var errs []error
	effectQuery.Each(world, func(entry *donburi.Entry) {
		eff := EffectComponent.Get(entry)
		if eff.Engine == nil {
			return
		}
		if err := eff.Engine.Update(elapsed); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// DrawEffects draws every attached engine. Batching is left to the caller.
func DrawEffects(world donburi.World) error {
	var errs []error
	effectQuery.Each(world, func(entry *donburi.Entry) {
		eff := EffectComponent.Get(entry)
		if eff.Engine == nil {
			return
		}
		if err := eff.Engine.Draw(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}
