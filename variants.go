package arcade

import (
	"log"
	"math"
)

// TurningSprite is a sprite that keeps its angle aligned with its direction
// of travel. After the base position update, the angle is set to
// atan2(ChangeY, ChangeX) in degrees minus 90, so artwork authored facing up
// points along the velocity vector.
type TurningSprite struct {
	Sprite
}

// NewTurningSprite creates a heading-aligned sprite seeded with tex.
func NewTurningSprite(tex *Texture, scale float64) *TurningSprite {
	t := &TurningSprite{}
	spriteDefaults(&t.Sprite)
	t.Scale = scale
	t.texture = tex
	t.textures = []*Texture{tex}
	t.Width = tex.Width * scale
	t.Height = tex.Height * scale
	return t
}

// Update integrates position like the base sprite, then aligns the angle
// with the travel direction.
func (t *TurningSprite) Update() {
	t.Sprite.Update()
	t.Angle = math.Atan2(t.ChangeY, t.ChangeX)/degToRad - 90
}

// PlatformerSprite is a multi-frame directional sprite for platformer games.
// It holds per-direction lists of frame indices into the sprite's frame
// sequence (configure them with the Set*Frames methods) and a Facing state,
// and selects walk, stand, or jump frames each update based on its velocity.
//
// Update performs frame selection only; position integration is left to the
// caller or its physics step, which is also what drives the walk-cycle
// distance threshold.
type PlatformerSprite struct {
	Sprite

	// Facing is the current horizontal facing, used to pick stand and jump
	// frames when there is no horizontal motion.
	Facing Facing
	// FrameChangeDistance is how far the sprite must travel horizontally
	// before the walk cycle advances one frame.
	FrameChangeDistance float64
	// Speed is the horizontal speed applied by GoLeft and GoRight.
	Speed float64
	// JumpSpeed is the vertical speed applied by Jump.
	JumpSpeed float64

	lastFrameX float64 // CenterX at the last walk-frame swap

	leftWalkFrames   []int
	rightWalkFrames  []int
	leftStandFrames  []int
	rightStandFrames []int
	leftJumpFrames   []int
	rightJumpFrames  []int
}

// NewPlatformerSprite creates a frame-less platformer sprite facing right.
// Append frames with AppendTexture, then configure the per-direction frame
// tables and Speed/JumpSpeed before use.
func NewPlatformerSprite() *PlatformerSprite {
	p := &PlatformerSprite{Facing: FacingRight}
	spriteDefaults(&p.Sprite)
	p.lastFrameX = p.CenterX
	return p
}

// SetLeftWalkFrames sets the frame indices of the leftward walk cycle.
func (p *PlatformerSprite) SetLeftWalkFrames(frames []int) { p.leftWalkFrames = frames }

// SetRightWalkFrames sets the frame indices of the rightward walk cycle.
func (p *PlatformerSprite) SetRightWalkFrames(frames []int) { p.rightWalkFrames = frames }

// SetLeftStandFrames sets the frame indices shown standing still facing left.
func (p *PlatformerSprite) SetLeftStandFrames(frames []int) { p.leftStandFrames = frames }

// SetRightStandFrames sets the frame indices shown standing still facing right.
func (p *PlatformerSprite) SetRightStandFrames(frames []int) { p.rightStandFrames = frames }

// SetLeftJumpFrames sets the frame indices shown airborne facing left.
func (p *PlatformerSprite) SetLeftJumpFrames(frames []int) { p.leftJumpFrames = frames }

// SetRightJumpFrames sets the frame indices shown airborne facing right.
func (p *PlatformerSprite) SetRightJumpFrames(frames []int) { p.rightJumpFrames = frames }

// Update selects the frame to display from the current velocity:
//
//   - airborne (ChangeY != 0): first jump frame for the current facing
//   - walking (ChangeX != 0): once the horizontal distance since the last
//     swap exceeds FrameChangeDistance, the next frame of the matching walk
//     cycle, wrapping at the end
//   - standing: first stand frame for the current facing
func (p *PlatformerSprite) Update() {
	if p.ChangeY != 0 {
		if p.Facing == FacingLeft {
			p.selectFrame(p.leftJumpFrames, 0)
		} else {
			p.selectFrame(p.rightJumpFrames, 0)
		}
		return
	}

	switch {
	case p.ChangeX < 0:
		p.advanceWalk(p.leftWalkFrames)
	case p.ChangeX > 0:
		p.advanceWalk(p.rightWalkFrames)
	default:
		if p.Facing == FacingLeft {
			p.selectFrame(p.leftStandFrames, 0)
		} else {
			p.selectFrame(p.rightStandFrames, 0)
		}
	}
}

// advanceWalk steps to the next frame of cycle once enough horizontal ground
// has been covered, wrapping to the start. A current frame that is not part of
// the cycle restarts it.
func (p *PlatformerSprite) advanceWalk(cycle []int) {
	if math.Abs(p.lastFrameX-p.CenterX) <= p.FrameChangeDistance {
		return
	}
	pos := indexOf(cycle, p.curTextureIndex) + 1
	if pos >= len(cycle) {
		pos = 0
	}
	p.selectFrame(cycle, pos)
	p.lastFrameX = p.CenterX
}

// selectFrame switches to frames[pos] if the table is usable. A frame table
// entry outside the frame sequence is a configuration bug; it is skipped, with
// a warning in debug mode.
func (p *PlatformerSprite) selectFrame(frames []int, pos int) {
	if pos >= len(frames) {
		return
	}
	if err := p.SetTexture(frames[pos]); err != nil && globalDebug {
		log.Printf("arcade: platformer frame table: %v", err)
	}
}

// GoLeft starts leftward motion at Speed.
func (p *PlatformerSprite) GoLeft() {
	if p.ChangeX >= 0 {
		p.ChangeX = -p.Speed
	}
}

// StopLeft stops leftward motion. Rightward motion set elsewhere is
// untouched.
func (p *PlatformerSprite) StopLeft() {
	if p.ChangeX < 0 {
		p.ChangeX = 0
	}
}

// GoRight starts rightward motion at Speed.
func (p *PlatformerSprite) GoRight() {
	if p.ChangeX <= 0 {
		p.ChangeX = p.Speed
	}
}

// StopRight stops rightward motion. Leftward motion set elsewhere is
// untouched.
func (p *PlatformerSprite) StopRight() {
	if p.ChangeX > 0 {
		p.ChangeX = 0
	}
}

// FaceLeft sets the facing to left.
func (p *PlatformerSprite) FaceLeft() {
	if p.Facing != FacingLeft {
		p.Facing = FacingLeft
	}
}

// FaceRight sets the facing to right.
func (p *PlatformerSprite) FaceRight() {
	if p.Facing != FacingRight {
		p.Facing = FacingRight
	}
}

// Jump starts upward motion at JumpSpeed.
func (p *PlatformerSprite) Jump() {
	p.ChangeY = p.JumpSpeed
}

// indexOf returns the index of v in s, or -1.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
