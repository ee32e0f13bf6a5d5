package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
