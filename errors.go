package arcade

import "errors"

// Sentinel errors. Call sites wrap these with fmt.Errorf("arcade: ...: %w")
// so callers can test with errors.Is while still getting context.
var (
	// ErrInvalidDimensions is returned by NewSprite when width or height is
	// negative, or when exactly one of them is zero.
	ErrInvalidDimensions = errors.New("invalid sprite dimensions")

	// ErrFrameIndex is returned by Sprite.SetTexture when the frame index is
	// outside the frame sequence.
	ErrFrameIndex = errors.New("frame index out of range")

	// ErrNilTexture is returned by Sprite.SetActiveTexture when the texture
	// is nil.
	ErrNilTexture = errors.New("nil texture")

	// ErrNotFound is returned by SpriteList.Remove when the actor is not a
	// member of the list.
	ErrNotFound = errors.New("sprite not found in list")

	// ErrEmptyList is returned by SpriteList.Pop when the list is empty.
	ErrEmptyList = errors.New("sprite list is empty")
)
