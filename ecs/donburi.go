package ecs

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/flycam"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SceneEventType is the Donburi event type for flycam scene events.
// Subscribe to this in your ECS systems to receive them.
var SceneEventType = events.NewEventType[flycam.SceneEvent]()

// InstanceRef links an entity to a flycam instance id.
type InstanceRef struct {
	ID uint32
	// Spawn is the instance translation when it was added.
	Spawn mgl32.Vec3
}

// InstanceRefComponent is attached to every entity mirrored from a scene
// instance.
var InstanceRefComponent = donburi.NewComponentType[InstanceRef]()

// instanceQuery matches every mirrored instance entity.
var instanceQuery = donburi.NewQuery(filter.Contains(InstanceRefComponent))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents. EventInstanceAdded also creates an
// entity with an InstanceRef.
func NewDonburiStore(world donburi.World) flycam.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event flycam.SceneEvent) {
	if event.Type == flycam.EventInstanceAdded {
		e := s.world.Create(InstanceRefComponent)
		InstanceRefComponent.SetValue(s.world.Entry(e), InstanceRef{
			ID:    event.InstanceID,
			Spawn: event.Position,
		})
	}
	SceneEventType.Publish(s.world, event)
}

// CountInstances returns the number of mirrored instance entities.
func CountInstances(world donburi.World) int {
	return instanceQuery.Count(world)
}

// FindInstance returns the entry mirroring the instance with the given id.
func FindInstance(world donburi.World, id uint32) (*donburi.Entry, bool) {
	var found *donburi.Entry
	instanceQuery.Each(world, func(e *donburi.Entry) {
		if found == nil && InstanceRefComponent.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
