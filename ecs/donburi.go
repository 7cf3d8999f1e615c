// Package ecs provides an ECS adapter for arcade.
package ecs

import (
	"github.com/yasoob/arcade"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ActorData is the component payload: a reference to the sprite-layer actor.
// The ECS stores the reference only; the actor's state lives on the actor.
type ActorData struct {
	Actor arcade.Actor
}

// ActorComponent is the Donburi component type for sprite-layer actors.
var ActorComponent = donburi.NewComponentType[ActorData]()

var actorQuery = donburi.NewQuery(filter.Contains(ActorComponent))

// Spawn creates an entity carrying a, and returns its entry so callers can
// attach further components.
func Spawn(world donburi.World, a arcade.Actor) *donburi.Entry {
	entity := world.Create(ActorComponent)
	entry := world.Entry(entity)
	ActorComponent.SetValue(entry, ActorData{Actor: a})
	return entry
}

// Update calls Update on every actor in the world, in entity storage order.
func Update(world donburi.World) {
	actorQuery.Each(world, func(entry *donburi.Entry) {
		ActorComponent.Get(entry).Actor.Update()
	})
}

// Draw submits every actor in the world to the renderer.
func Draw(world donburi.World, r arcade.Renderer) {
	actorQuery.Each(world, func(entry *donburi.Entry) {
		ActorComponent.Get(entry).Actor.Draw(r)
	})
}
