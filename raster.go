package halftone

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage flattens img into a row-major grayscale plane using the standard
// luminance conversion. *image.Gray sources are copied row-wise without
// per-pixel color model round trips.
func FromImage(img image.Image) (pix []uint8, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]uint8, width*height)
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*width:(y+1)*width], g.Pix[off:off+width])
		}
		return pix, width, height
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			pix[y*width+x] = c.Y
		}
	}
	return pix, width, height
}

// ToGray wraps a row-major grayscale plane in an *image.Gray. The plane is
// copied; the caller keeps ownership of pix.
func ToGray(pix []uint8, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d", ErrInvalidParameter, len(pix), width, height)
	}
	g := image.NewGray(image.Rect(0, 0, width, height))
	copy(g.Pix, pix)
	return g, nil
}

// GrayPalette returns the quantization level set as a color.Palette, each
// entry carrying the same truncated 8-bit value the engine stores.
func GrayPalette(levels int) (color.Palette, error) {
	set, err := quantizationLevels(levels)
	if err != nil {
		return nil, err
	}
	palette := make(color.Palette, len(set))
	for i, l := range set {
		palette[i] = color.Gray{Y: uint8(int(l) & 0xFF)}
	}
	return palette, nil
}

// ToPaletted assembles engine output into an *image.Paletted over the level
// palette. Pixel values are expected to lie exactly on the level set, as
// produced by Dither for the same levels; any other value maps to index 0.
func ToPaletted(pix []uint8, width, height, levels int) (*image.Paletted, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d", ErrInvalidParameter, len(pix), width, height)
	}
	palette, err := GrayPalette(levels)
	if err != nil {
		return nil, err
	}

	// Level spacing is at least 1, so truncated palette values are distinct
	// and a direct value-to-index table is exact.
	var index [256]uint8
	for i, c := range palette {
		index[c.(color.Gray).Y] = uint8(i)
	}

	p := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	for y := 0; y < height; y++ {
		row := pix[y*width : (y+1)*width]
		dst := p.Pix[y*p.Stride : y*p.Stride+width]
		for x, v := range row {
			dst[x] = index[v]
		}
	}
	return p, nil
}
