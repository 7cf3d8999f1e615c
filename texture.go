package arcade

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	// Register the decoders for the common game asset formats.
	_ "image/jpeg"
	_ "image/png"
)

// Texture is an opaque handle to a loaded image region with a known pixel
// size. Textures are immutable once created and freely shared: many sprites
// may reference the same Texture, and a frame sequence stores references, not
// copies.
type Texture struct {
	// Image is the backing region. May be a SubImage of a larger sheet.
	Image *ebiten.Image
	// Width and Height are the region's pixel dimensions.
	Width, Height float64
}

// NewTextureFromImage wraps an already-created ebiten image as a Texture.
// The texture's pixel size is taken from the image bounds.
func NewTextureFromImage(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		Image:  img,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// LoadTexture loads an image file and returns a Texture for the sub-region
// (x, y, width, height), in image pixel coordinates with the origin at the
// top-left. Passing all zeros selects the whole image.
//
// Errors from opening or decoding the file are returned wrapped; a requested
// region that falls outside the image bounds is also an error.
func LoadTexture(path string, x, y, width, height float64) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("arcade: open texture %q: %w", path, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("arcade: decode texture %q: %w", path, err)
	}

	img := ebiten.NewImageFromImage(src)
	if x == 0 && y == 0 && width == 0 && height == 0 {
		return NewTextureFromImage(img), nil
	}

	region := image.Rect(int(x), int(y), int(x+width), int(y+height))
	if !region.In(img.Bounds()) {
		return nil, fmt.Errorf("arcade: texture %q: region %v outside image bounds %v",
			path, region, img.Bounds())
	}
	return NewTextureFromImage(img.SubImage(region).(*ebiten.Image)), nil
}
