package arcade

// Point is a 2D point or offset. Value type, no identity.
//
// The coordinate system is the standard Cartesian plane: the origin is at the
// bottom-left and Y increases upward. Rendering backends that use screen
// coordinates (Y down) are responsible for the flip; see EbitenRenderer.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in Cartesian coordinates: (X, Y) is the
// bottom-left corner and Width/Height extend right and up.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Facing identifies the horizontal direction a directional sprite is facing.
type Facing uint8

const (
	FacingRight Facing = iota // facing toward +X (default)
	FacingLeft                // facing toward -X
)

// Actor is the capability set shared by Sprite and its behavioral variants
// (TurningSprite, PlatformerSprite). SpriteList stores Actors so that a
// variant's Update override runs during list-level updates.
//
// The set of Actors is closed: only types in this package that embed Sprite
// can satisfy it.
type Actor interface {
	// Update advances the actor by one step.
	Update()
	// Draw submits the actor to the rendering backend.
	Draw(r Renderer)
	// Points returns the four corners of the actor's rotated bounding
	// rectangle.
	Points() [4]Point

	// base returns the embedded Sprite, which carries identity and the
	// list back-reference set.
	base() *Sprite
}
