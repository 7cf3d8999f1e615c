package arcade

import (
	"fmt"
)

// Sprite is a positioned, rotatable, scalable drawable with an ordered frame
// sequence of shared Textures. Plain exported fields are the primary API,
// matching the rest of the package; Width and Height are derived from the
// active frame and Scale, so change frames through SetTexture rather than
// writing them directly.
type Sprite struct {
	// CenterX and CenterY position the sprite's center in Cartesian (Y-up)
	// coordinates.
	CenterX, CenterY float64
	// Angle is the rotation about the center, in degrees, counter-clockwise
	// (the Rotate convention).
	Angle float64
	// Scale is the uniform scale factor applied to the active frame's pixel
	// size to produce Width and Height.
	Scale float64
	// ChangeX, ChangeY, and ChangeAngle are per-update deltas applied by
	// Update.
	ChangeX, ChangeY, ChangeAngle float64
	// Alpha is the draw opacity in [0, 1].
	Alpha float64
	// Transparent selects alpha blending at draw time. When false the
	// backend may draw opaquely.
	Transparent bool
	// Width and Height are the drawn size: active frame pixel size × Scale.
	// Both are zero for a frame-less sprite.
	Width, Height float64

	textures        []*Texture
	curTextureIndex int
	texture         *Texture

	// lists holds a back-reference to every SpriteList currently containing
	// this sprite. The relation is membership lookup only: lists own their
	// sequences, the sprite owns nothing.
	lists []*SpriteList
}

// spriteDefaults sets the field values shared by every sprite constructor.
func spriteDefaults(s *Sprite) {
	s.Alpha = 1
	s.Transparent = true
}

// NewSprite creates a sprite, optionally seeded with a single texture loaded
// from filename. An empty filename creates a frame-less sprite with zero
// Width and Height.
//
// When filename is given, (x, y, width, height) select a sub-region of the
// image (all zeros = whole image) and the sprite's Width/Height become the
// texture pixel size × scale.
//
// Returns ErrInvalidDimensions (wrapped) when width or height is negative, or
// when exactly one of them is zero while the other is not. A failed
// construction returns nil; no partially-initialized sprite escapes.
func NewSprite(filename string, scale, x, y, width, height float64) (*Sprite, error) {
	if width < 0 {
		return nil, fmt.Errorf("arcade: width %v: %w", width, ErrInvalidDimensions)
	}
	if height < 0 {
		return nil, fmt.Errorf("arcade: height %v: %w", height, ErrInvalidDimensions)
	}
	if width == 0 && height != 0 {
		return nil, fmt.Errorf("arcade: width is zero but height is %v: %w", height, ErrInvalidDimensions)
	}
	if height == 0 && width != 0 {
		return nil, fmt.Errorf("arcade: height is zero but width is %v: %w", width, ErrInvalidDimensions)
	}

	s := &Sprite{Scale: scale}
	spriteDefaults(s)

	if filename != "" {
		tex, err := LoadTexture(filename, x, y, width, height)
		if err != nil {
			return nil, err
		}
		s.texture = tex
		s.textures = []*Texture{tex}
		s.Width = tex.Width * scale
		s.Height = tex.Height * scale
	}
	return s, nil
}

// NewSpriteFromTexture creates a sprite seeded with an already-loaded
// texture. Width and Height are the texture pixel size × scale.
func NewSpriteFromTexture(tex *Texture, scale float64) *Sprite {
	s := &Sprite{Scale: scale}
	spriteDefaults(s)
	s.texture = tex
	s.textures = []*Texture{tex}
	s.Width = tex.Width * scale
	s.Height = tex.Height * scale
	return s
}

// AppendTexture appends a frame to the frame sequence. Frames need not share
// dimensions; switching to a differently-sized frame resizes the sprite.
func (s *Sprite) AppendTexture(tex *Texture) {
	s.textures = append(s.textures, tex)
}

// SetTexture makes the frame at the given index the active one and recomputes
// Width and Height from that frame's pixel size and Scale.
//
// Returns ErrFrameIndex (wrapped) when the index is outside the frame
// sequence; the active frame is left unchanged.
func (s *Sprite) SetTexture(frameIndex int) error {
	if frameIndex < 0 || frameIndex >= len(s.textures) {
		return fmt.Errorf("arcade: frame %d of %d: %w", frameIndex, len(s.textures), ErrFrameIndex)
	}
	s.texture = s.textures[frameIndex]
	s.curTextureIndex = frameIndex
	s.Width = s.texture.Width * s.Scale
	s.Height = s.texture.Height * s.Scale
	return nil
}

// SetActiveTexture sets the active texture directly, bypassing the frame
// sequence. Returns ErrNilTexture for a nil texture; Width and Height are not
// recomputed (mirroring direct assignment semantics — use SetTexture for
// that).
func (s *Sprite) SetActiveTexture(tex *Texture) error {
	if tex == nil {
		return fmt.Errorf("arcade: set active texture: %w", ErrNilTexture)
	}
	s.texture = tex
	return nil
}

// Texture returns the active texture, or nil for a frame-less sprite.
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// TextureCount returns the number of frames in the frame sequence.
func (s *Sprite) TextureCount() int {
	return len(s.textures)
}

// CurrentTextureIndex returns the index of the active frame.
func (s *Sprite) CurrentTextureIndex() int {
	return s.curTextureIndex
}

// SetPosition moves the sprite's center to (x, y). No validation.
func (s *Sprite) SetPosition(x, y float64) {
	s.CenterX = x
	s.CenterY = y
}

// Points returns the four corners of the sprite's rotated bounding rectangle,
// computed fresh from the current center, size, and angle. The pre-rotation
// corner order is bottom-left, bottom-right, top-right, top-left; each corner
// is rotated about the center by Angle.
func (s *Sprite) Points() [4]Point {
	cx, cy := s.CenterX, s.CenterY
	hw, hh := s.Width/2, s.Height/2
	return [4]Point{
		Rotate(cx-hw, cy-hh, cx, cy, s.Angle),
		Rotate(cx+hw, cy-hh, cx, cy, s.Angle),
		Rotate(cx+hw, cy+hh, cx, cy, s.Angle),
		Rotate(cx-hw, cy+hh, cx, cy, s.Angle),
	}
}

// Bottom returns the lowest Y coordinate across the four corner points.
func (s *Sprite) Bottom() float64 {
	p := s.Points()
	return min(p[0].Y, p[1].Y, p[2].Y, p[3].Y)
}

// SetBottom translates the sprite vertically so its lowest point lands at
// amount. Width, Height, and Angle are unchanged.
func (s *Sprite) SetBottom(amount float64) {
	s.CenterY -= s.Bottom() - amount
}

// Top returns the highest Y coordinate across the four corner points.
func (s *Sprite) Top() float64 {
	p := s.Points()
	return max(p[0].Y, p[1].Y, p[2].Y, p[3].Y)
}

// SetTop translates the sprite vertically so its highest point lands at
// amount. Width, Height, and Angle are unchanged.
func (s *Sprite) SetTop(amount float64) {
	s.CenterY -= s.Top() - amount
}

// Left returns the leftmost X coordinate across the four corner points.
func (s *Sprite) Left() float64 {
	p := s.Points()
	return min(p[0].X, p[1].X, p[2].X, p[3].X)
}

// SetLeft translates the sprite horizontally so its leftmost point lands at
// amount. Width, Height, and Angle are unchanged.
func (s *Sprite) SetLeft(amount float64) {
	s.CenterX += amount - s.Left()
}

// Right returns the rightmost X coordinate across the four corner points.
func (s *Sprite) Right() float64 {
	p := s.Points()
	return max(p[0].X, p[1].X, p[2].X, p[3].X)
}

// SetRight translates the sprite horizontally so its rightmost point lands at
// amount. Width, Height, and Angle are unchanged.
func (s *Sprite) SetRight(amount float64) {
	s.CenterX -= s.Right() - amount
}

// BoundingRect returns the axis-aligned bounding rectangle of the (possibly
// rotated) sprite, for collision and layout queries.
func (s *Sprite) BoundingRect() Rect {
	left, bottom := s.Left(), s.Bottom()
	return Rect{
		X:      left,
		Y:      bottom,
		Width:  s.Right() - left,
		Height: s.Top() - bottom,
	}
}

// Draw submits the sprite to the rendering backend with its current
// transform, active texture, alpha, and transparency.
func (s *Sprite) Draw(r Renderer) {
	r.DrawTexturedRect(s.CenterX, s.CenterY, s.Width, s.Height,
		s.texture, s.Angle, s.Alpha, s.Transparent)
}

// Update integrates the sprite's velocities: center moves by
// (ChangeX, ChangeY) and Angle advances by ChangeAngle. No clamping.
func (s *Sprite) Update() {
	s.CenterX += s.ChangeX
	s.CenterY += s.ChangeY
	s.Angle += s.ChangeAngle
}

// Kill removes the sprite from every list that currently contains it. The
// sprite itself keeps its state and may be re-appended later. Calling Kill
// again is a no-op: it finds no memberships left to remove.
func (s *Sprite) Kill() {
	for _, list := range s.lists {
		if list.disposed {
			continue
		}
		if list.Contains(s) {
			// Membership was just checked, Remove cannot fail.
			_ = list.Remove(s)
		}
	}
}

// base makes Sprite (and, by embedding, its variants) satisfy Actor.
func (s *Sprite) base() *Sprite {
	return s
}

// registerList records a back-reference to a list that now contains this
// sprite. Called by SpriteList.Append.
func (s *Sprite) registerList(list *SpriteList) {
	s.lists = append(s.lists, list)
}

// unregisterList drops one back-reference to list. Called by
// SpriteList.Dispose. Uses copy+nil to avoid retaining a dangling pointer in
// the backing array.
func (s *Sprite) unregisterList(list *SpriteList) {
	for i, l := range s.lists {
		if l == list {
			copy(s.lists[i:], s.lists[i+1:])
			s.lists[len(s.lists)-1] = nil
			s.lists = s.lists[:len(s.lists)-1]
			return
		}
	}
}
