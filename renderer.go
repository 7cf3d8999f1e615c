package arcade

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer is the narrow draw interface the sprite layer consumes. The core
// never touches pixels itself; Sprite.Draw and SpriteList.Draw delegate every
// visible rectangle to a Renderer.
//
// Backend failures (such as drawing without an active target) are the
// backend's to report and are not intercepted by the sprite layer.
type Renderer interface {
	// DrawTexturedRect draws tex scaled to width×height, centered on
	// (centerX, centerY), rotated by angleDegrees (counter-clockwise, Y-up
	// convention), with the given alpha in [0, 1]. When transparent is
	// false the backend may skip alpha blending entirely.
	DrawTexturedRect(centerX, centerY, width, height float64, tex *Texture, angleDegrees, alpha float64, transparent bool)
}

// whitePixel is a 1x1 white image drawn in place of a missing texture, so a
// frame-less sprite renders as a solid rectangle instead of crashing.
// Plain lazy init, no sync.Once — arcade is single-threaded.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// EbitenRenderer renders textured rectangles onto an ebiten image.
//
// It converts from the package's Cartesian (Y-up, counter-clockwise)
// convention to ebiten's screen space (Y-down): the Y coordinate is flipped
// against the target height and the rotation sign is negated, so a positive
// Angle still reads as counter-clockwise on screen.
type EbitenRenderer struct {
	target *ebiten.Image
	height float64
}

// NewEbitenRenderer creates a renderer with no active target.
// Call Begin each frame before drawing.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Begin sets the draw target for the current frame. Typically called at the
// top of an ebiten Draw callback with the screen image.
func (r *EbitenRenderer) Begin(target *ebiten.Image) {
	r.target = target
	r.height = float64(target.Bounds().Dy())
}

// End releases the current target. Drawing after End panics until the next
// Begin.
func (r *EbitenRenderer) End() {
	r.target = nil
}

// DrawTexturedRect implements Renderer. A nil texture draws a solid white
// rectangle (tint it by drawing a white texture of your own if you need
// color). Zero width or height draws nothing.
func (r *EbitenRenderer) DrawTexturedRect(centerX, centerY, width, height float64, tex *Texture, angleDegrees, alpha float64, transparent bool) {
	if r.target == nil {
		panic("arcade: DrawTexturedRect called outside Begin/End")
	}
	if width == 0 || height == 0 {
		return
	}

	img := ensureWhitePixel()
	texW, texH := 1.0, 1.0
	if tex != nil {
		img = tex.Image
		texW, texH = tex.Width, tex.Height
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(width/texW, height/texH)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(-angleDegrees * degToRad)
	op.GeoM.Translate(centerX, r.height-centerY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	if transparent {
		op.Blend = ebiten.BlendSourceOver
	} else {
		op.Blend = ebiten.BlendCopy
	}
	r.target.DrawImage(img, &op)
}
