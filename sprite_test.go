package arcade

import (
	"errors"
	"testing"
)

// newTestTexture returns a texture handle with the given pixel size and no
// backing image. The geometry and membership paths never touch pixels.
func newTestTexture(w, h float64) *Texture {
	return &Texture{Width: w, Height: h}
}

// recordingRenderer captures DrawTexturedRect calls for delegation tests.
type drawCall struct {
	cx, cy, w, h float64
	tex          *Texture
	angle, alpha float64
	transparent  bool
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawTexturedRect(cx, cy, w, h float64, tex *Texture, angle, alpha float64, transparent bool) {
	r.calls = append(r.calls, drawCall{cx, cy, w, h, tex, angle, alpha, transparent})
}

// --- Construction ---

func TestNewSpriteFramelessDefaults(t *testing.T) {
	s, err := NewSprite("", 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	if s.Width != 0 || s.Height != 0 {
		t.Errorf("frame-less sprite size = %vx%v, want 0x0", s.Width, s.Height)
	}
	if s.TextureCount() != 0 {
		t.Errorf("frame count = %d, want 0", s.TextureCount())
	}
	if s.CenterX != 0 || s.CenterY != 0 || s.Angle != 0 {
		t.Error("position and angle should start at zero")
	}
	if s.ChangeX != 0 || s.ChangeY != 0 || s.ChangeAngle != 0 {
		t.Error("velocities should start at zero")
	}
	assertNear(t, "alpha", s.Alpha, 1)
	if !s.Transparent {
		t.Error("Transparent should default to true")
	}
}

func TestNewSpriteInvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
	}{
		{"negative width", -1, 5},
		{"negative height", 5, -1},
		{"zero width only", 0, 5},
		{"zero height only", 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSprite("", 1, 0, 0, tc.width, tc.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("err = %v, want ErrInvalidDimensions", err)
			}
			if s != nil {
				t.Error("failed construction must not return a sprite")
			}
		})
	}
}

func TestNewSpriteFromTexture(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(100, 50), 0.5)
	assertNear(t, "width", s.Width, 50)
	assertNear(t, "height", s.Height, 25)
	if s.TextureCount() != 1 || s.CurrentTextureIndex() != 0 {
		t.Errorf("frames = %d cur = %d, want 1 and 0", s.TextureCount(), s.CurrentTextureIndex())
	}
}

// --- Frame switching ---

func TestSetTexture(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(10, 10), 2)
	s.AppendTexture(newTestTexture(20, 30))

	if err := s.SetTexture(1); err != nil {
		t.Fatalf("SetTexture(1): %v", err)
	}
	if s.CurrentTextureIndex() != 1 {
		t.Errorf("cur = %d, want 1", s.CurrentTextureIndex())
	}
	assertNear(t, "width", s.Width, 40)
	assertNear(t, "height", s.Height, 60)
}

func TestSetTextureOutOfRange(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(10, 10), 1)
	before := s.Texture()

	for _, i := range []int{-1, 1, 99} {
		if err := s.SetTexture(i); !errors.Is(err, ErrFrameIndex) {
			t.Errorf("SetTexture(%d) err = %v, want ErrFrameIndex", i, err)
		}
	}
	if s.Texture() != before || s.CurrentTextureIndex() != 0 {
		t.Error("failed SetTexture must leave the active frame unchanged")
	}
}

func TestSetActiveTexture(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(10, 10), 1)
	tex := newTestTexture(4, 4)
	if err := s.SetActiveTexture(tex); err != nil {
		t.Fatalf("SetActiveTexture: %v", err)
	}
	if s.Texture() != tex {
		t.Error("active texture not set")
	}
	if err := s.SetActiveTexture(nil); !errors.Is(err, ErrNilTexture) {
		t.Errorf("err = %v, want ErrNilTexture", err)
	}
}

// --- Corner points ---

func TestPointsUnrotated(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(4, 2), 1)
	s.SetPosition(10, 20)

	p := s.Points()
	assertPoint(t, "bottom-left", p[0], 8, 19)
	assertPoint(t, "bottom-right", p[1], 12, 19)
	assertPoint(t, "top-right", p[2], 12, 21)
	assertPoint(t, "top-left", p[3], 8, 21)
}

func TestPointsMatchRotateUtility(t *testing.T) {
	// The sprite's corner math and the standalone Rotate utility must agree.
	s := NewSpriteFromTexture(newTestTexture(6, 4), 1)
	s.SetPosition(5, 5)

	for _, angle := range []float64{90, 180, 270} {
		s.Angle = angle
		got := s.Points()
		corners := [4]Point{
			{5 - 3, 5 - 2}, {5 + 3, 5 - 2}, {5 + 3, 5 + 2}, {5 - 3, 5 + 2},
		}
		for i, c := range corners {
			want := Rotate(c.X, c.Y, 5, 5, angle)
			assertPoint(t, "corner", got[i], want.X, want.Y)
		}
	}
}

func TestPointsComputedFresh(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(2, 2), 1)
	p1 := s.Points()
	s.SetPosition(100, 100)
	p2 := s.Points()
	if p1 == p2 {
		t.Error("points must reflect the current center, not a cached value")
	}
	assertPoint(t, "moved bottom-left", p2[0], 99, 99)
}

// --- Edge accessors ---

func TestEdgesUnrotated(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(4, 2), 1)
	s.SetPosition(10, 20)

	assertNear(t, "bottom", s.Bottom(), 19)
	assertNear(t, "top", s.Top(), 21)
	assertNear(t, "left", s.Left(), 8)
	assertNear(t, "right", s.Right(), 12)
}

func TestSetBottomExample(t *testing.T) {
	// Unit sprite at the origin: bottom = -0.5; setting bottom = 1 shifts
	// the center to 1.5 and reading bottom back gives exactly 1.
	s := NewSpriteFromTexture(newTestTexture(1, 1), 1)
	assertNear(t, "bottom", s.Bottom(), -0.5)

	s.SetBottom(1)
	assertNear(t, "centerY", s.CenterY, 1.5)
	assertNear(t, "bottom after", s.Bottom(), 1.0)
}

func TestEdgeSettersRoundTrip(t *testing.T) {
	// Each setter must translate the sprite so a re-read returns the target,
	// regardless of prior angle and scale.
	angles := []float64{0, 30, 90, 200, -45}
	for _, angle := range angles {
		s := NewSpriteFromTexture(newTestTexture(8, 6), 1.5)
		s.SetPosition(3, -7)
		s.Angle = angle

		s.SetTop(12)
		assertNear(t, "top", s.Top(), 12)
		s.SetBottom(-2)
		assertNear(t, "bottom", s.Bottom(), -2)
		s.SetLeft(4)
		assertNear(t, "left", s.Left(), 4)
		s.SetRight(9)
		assertNear(t, "right", s.Right(), 9)
	}
}

func TestEdgeSettersPreserveShape(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(8, 6), 1)
	s.Angle = 33

	w, h, a := s.Width, s.Height, s.Angle
	s.SetTop(5)
	s.SetLeft(-3)
	if s.Width != w || s.Height != h || s.Angle != a {
		t.Error("edge setters must only translate, never resize or rotate")
	}
}

func TestBoundingRect(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(4, 2), 1)
	s.SetPosition(10, 20)

	r := s.BoundingRect()
	assertNear(t, "x", r.X, 8)
	assertNear(t, "y", r.Y, 19)
	assertNear(t, "w", r.Width, 4)
	assertNear(t, "h", r.Height, 2)

	// Rotated 90°, width and height swap in the AABB.
	s.Angle = 90
	r = s.BoundingRect()
	assertNear(t, "rot w", r.Width, 2)
	assertNear(t, "rot h", r.Height, 4)
}

// --- Update / Draw ---

func TestUpdateIntegratesVelocity(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(2, 2), 1)
	s.ChangeX = 1.5
	s.ChangeY = -0.5
	s.ChangeAngle = 10

	s.Update()
	s.Update()

	assertNear(t, "centerX", s.CenterX, 3)
	assertNear(t, "centerY", s.CenterY, -1)
	assertNear(t, "angle", s.Angle, 20)
}

func TestDrawDelegatesToRenderer(t *testing.T) {
	s := NewSpriteFromTexture(newTestTexture(10, 20), 2)
	s.SetPosition(5, 6)
	s.Angle = 45
	s.Alpha = 0.5
	s.Transparent = false

	r := &recordingRenderer{}
	s.Draw(r)

	if len(r.calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(r.calls))
	}
	c := r.calls[0]
	if c.cx != 5 || c.cy != 6 || c.w != 20 || c.h != 40 ||
		c.tex != s.Texture() || c.angle != 45 || c.alpha != 0.5 || c.transparent {
		t.Errorf("unexpected draw call %+v", c)
	}
}

// --- Benchmarks ---

func BenchmarkPoints(b *testing.B) {
	s := NewSpriteFromTexture(newTestTexture(64, 64), 1)
	s.SetPosition(100, 200)
	s.Angle = 33
	b.ReportAllocs()
	for b.Loop() {
		_ = s.Points()
	}
}
