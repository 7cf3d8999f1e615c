package arcade

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenAngle,
// TweenAlpha, TweenSize) and call Update(dt) each frame with the elapsed time
// in seconds. Values are applied directly to the sprite's fields.
//
// There is no global animation manager — callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the sprite's center to
// (toX, toY) over the specified duration using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.CenterX), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.CenterY), float32(toY), duration, fn)
	g.fields[0] = &s.CenterX
	g.fields[1] = &s.CenterY
	return g
}

// TweenAngle creates a TweenGroup that animates the sprite's angle (degrees)
// to the target value over the specified duration using the easing function.
func TweenAngle(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Angle), float32(to), duration, fn)
	g.fields[0] = &s.Angle
	return g
}

// TweenAlpha creates a TweenGroup that animates the sprite's alpha to the
// target value over the specified duration using the easing function.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Alpha), float32(to), duration, fn)
	g.fields[0] = &s.Alpha
	return g
}

// TweenSize creates a TweenGroup that animates the sprite's Width and Height
// to the target values over the specified duration. Note that SetTexture
// recomputes both from the active frame, clobbering an in-flight size tween.
func TweenSize(s *Sprite, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(s.Height), float32(toH), duration, fn)
	g.fields[0] = &s.Width
	g.fields[1] = &s.Height
	return g
}
