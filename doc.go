// Package arcade is a 2D sprite management layer for [Ebitengine].
//
// Arcade tracks drawable entities — position, rotation, scale, texture
// frame — groups them into [SpriteList] collections for batch update and
// draw, and computes derived bounding geometry for collision and layout
// queries. Rendering itself is delegated to a backend behind the narrow
// [Renderer] interface; [EbitenRenderer] is the stock implementation.
//
// # Quick start
//
//	tex, err := arcade.LoadTexture("meteor.png", 0, 0, 0, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	meteors := arcade.NewSpriteList()
//	for i := 0; i < 100; i++ {
//		m := arcade.NewSpriteFromTexture(tex, 0.5)
//		m.SetPosition(rand.Float64()*640, rand.Float64()*480)
//		m.ChangeAngle = 1
//		meteors.Append(m)
//	}
//
// Each frame, update then draw:
//
//	meteors.Update()
//
//	renderer.Begin(screen)
//	meteors.Draw(renderer)
//	renderer.End()
//
// # Coordinates
//
// The package works in the standard Cartesian plane: Y increases upward and
// positive angles rotate counter-clockwise (see [Rotate]). EbitenRenderer
// converts to ebiten's Y-down screen space at submission time.
//
// # Membership and Kill
//
// Appending a sprite to a list registers the list in the sprite's
// back-reference set, so [Sprite.Kill] can remove the sprite from every list
// that still holds it. Call [SpriteList.Dispose] before discarding a list
// whose sprites outlive it.
//
// # Variants
//
// [TurningSprite] keeps its angle aligned with its travel direction.
// [PlatformerSprite] selects walk, stand, and jump frames from per-direction
// frame tables. Both embed [Sprite] and dispatch through the [Actor]
// interface, so they mix freely in one list.
//
// Tween helpers built on [gween] ([TweenPosition], [TweenAngle],
// [TweenAlpha], [TweenSize]) animate sprite fields; an adapter for the
// [Donburi] ECS lives in the arcade/ecs submodule.
//
// Arcade is single-threaded: all operations run synchronously on the caller's
// goroutine, which is how ebiten games are structured anyway.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arcade
