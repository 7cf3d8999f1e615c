package arcade

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Rotate rotates the point (x, y) about the pivot (cx, cy) by angleDegrees
// and returns the result. Positive angles rotate counter-clockwise in the
// Cartesian (Y-up) plane. This is the single angle convention for the whole
// package; Sprite.Angle and the edge accessors all follow it.
//
// Pure function: any real inputs are accepted, including angles outside
// [0, 360).
func Rotate(x, y, cx, cy, angleDegrees float64) Point {
	sin, cos := math.Sincos(angleDegrees * degToRad)
	dx := x - cx
	dy := y - cy
	return Point{
		X: cx + dx*cos - dy*sin,
		Y: cy + dx*sin + dy*cos,
	}
}
