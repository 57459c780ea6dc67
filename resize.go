package halftone

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// ResizeMode selects how a source image is mapped onto target dimensions
// before dithering.
type ResizeMode int

const (
	// ResizeStretch scales to the exact target dimensions, ignoring aspect
	// ratio.
	ResizeStretch ResizeMode = iota
	// ResizeFit scales to fit inside the target, centering on a black canvas.
	ResizeFit
	// ResizeFill scales to cover the target and crops the overflow centered.
	ResizeFill
)

func (m ResizeMode) String() string {
	switch m {
	case ResizeFit:
		return "fit"
	case ResizeFill:
		return "fill"
	default:
		return "stretch"
	}
}

// ParseResizeMode resolves a mode name as used by cmd/halftone.
func ParseResizeMode(s string) (ResizeMode, bool) {
	switch s {
	case "stretch":
		return ResizeStretch, true
	case "fit":
		return ResizeFit, true
	case "fill":
		return ResizeFill, true
	}
	return 0, false
}

// interpolationFor picks the resampling filter: Lanczos for downscale,
// bilinear for upscale.
func interpolationFor(srcW, srcH, dstW, dstH int) resize.InterpolationFunction {
	if dstW < srcW || dstH < srcH {
		return resize.Lanczos3
	}
	return resize.Bilinear
}

// Resize scales img to the target dimensions according to mode.
func Resize(img image.Image, targetWidth, targetHeight int, mode ResizeMode) image.Image {
	switch mode {
	case ResizeFit:
		return ResizeToFit(img, targetWidth, targetHeight)
	case ResizeFill:
		return ResizeToFill(img, targetWidth, targetHeight)
	default:
		b := img.Bounds()
		return resize.Resize(uint(targetWidth), uint(targetHeight), img,
			interpolationFor(b.Dx(), b.Dy(), targetWidth, targetHeight))
	}
}

// ResizeToFit scales img to fit within the target dimensions preserving
// aspect ratio, centered on a black canvas.
func ResizeToFit(img image.Image, targetWidth, targetHeight int) image.Image {
	b := img.Bounds()
	newW, newH := scaledDimensions(b.Dx(), b.Dy(), targetWidth, targetHeight, false)

	scaled := resize.Resize(uint(newW), uint(newH), img,
		interpolationFor(b.Dx(), b.Dy(), newW, newH))

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	offsetX := (targetWidth - newW) / 2
	offsetY := (targetHeight - newH) / 2
	draw.Draw(canvas, image.Rect(offsetX, offsetY, offsetX+newW, offsetY+newH), scaled, scaled.Bounds().Min, draw.Src)
	return canvas
}

// ResizeToFill scales img to cover the target dimensions preserving aspect
// ratio, cropping the overflow centered.
func ResizeToFill(img image.Image, targetWidth, targetHeight int) image.Image {
	b := img.Bounds()
	newW, newH := scaledDimensions(b.Dx(), b.Dy(), targetWidth, targetHeight, true)

	scaled := resize.Resize(uint(newW), uint(newH), img,
		interpolationFor(b.Dx(), b.Dy(), newW, newH))

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	offsetX := (newW - targetWidth) / 2
	offsetY := (newH - targetHeight) / 2
	draw.Draw(canvas, canvas.Bounds(), scaled, scaled.Bounds().Min.Add(image.Pt(offsetX, offsetY)), draw.Src)
	return canvas
}

// scaledDimensions computes the scaled size that fits within (fill=false) or
// covers (fill=true) the target while preserving aspect ratio.
func scaledDimensions(srcW, srcH, targetW, targetH int, fill bool) (int, int) {
	scaleX := float64(targetW) / float64(srcW)
	scaleY := float64(targetH) / float64(srcH)
	scale := scaleX
	if fill {
		if scaleY > scaleX {
			scale = scaleY
		}
	} else {
		if scaleY < scaleX {
			scale = scaleY
		}
	}
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ScalePreview upscales a dithered result by an integer factor using
// nearest-neighbor sampling, which keeps every pixel on its quantization
// level. Factors below 2 return img unchanged.
func ScalePreview(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
