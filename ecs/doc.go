// Package ecs provides an ECS adapter for arcade's sprite layer.
//
// The adapter attaches an [arcade.Actor] to a [Donburi] entity via
// [ActorComponent], so sprite update and draw can run as ordinary ECS
// systems alongside game logic:
//
//	world := donburi.NewWorld()
//	ecs.Spawn(world, arcade.NewSpriteFromTexture(tex, 1))
//
//	// each frame
//	ecs.Update(world)
//	ecs.Draw(world, renderer)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
