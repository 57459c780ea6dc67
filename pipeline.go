package halftone

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ProcessOptions controls the full dithering pipeline around the engine.
type ProcessOptions struct {
	Method Method
	Levels int
	// Width and Height select the pre-dither resize target. Zero keeps the
	// source dimensions.
	Width  int
	Height int
	Mode   ResizeMode
	// Gamma pre-adjusts tone before grayscale conversion. Values of 0 or 1
	// leave the image untouched.
	Gamma float64
	// PreviewScale upscales the dithered result by an integer factor using
	// nearest-neighbor sampling. Values below 2 are ignored.
	PreviewScale int
	// OnProgress spans the whole pipeline: resize, engine call, and preview
	// scale report into one monotonically non-decreasing percentage chain.
	OnProgress func(percent int)
}

func defaultProcessOptions() ProcessOptions {
	return ProcessOptions{
		Method: FloydSteinberg,
		Levels: 2,
		Gamma:  1,
	}
}

// Process runs the pipeline on a decoded image: optional gamma adjustment,
// optional resize, grayscale conversion, error-diffusion dithering, and
// paletted assembly. The result is an *image.Paletted over the level
// palette, or an upscaled RGBA preview when PreviewScale is set.
func Process(img image.Image, opts ...func(o *ProcessOptions)) (image.Image, error) {
	opt := defaultProcessOptions()
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	report := monotonicProgress(opt.OnProgress)

	if opt.Gamma > 0 && opt.Gamma != 1 {
		img = imaging.AdjustGamma(img, opt.Gamma)
	}
	report(10)

	b := img.Bounds()
	resizeNeeded := opt.Width > 0 && opt.Height > 0 &&
		(opt.Width != b.Dx() || opt.Height != b.Dy())

	var (
		pix  []uint8
		w, h int
	)
	if g, ok := img.(*image.Gray); ok && resizeNeeded && opt.Mode == ResizeStretch {
		// Single-channel source: resample the plane directly.
		pix, w, h = FromImage(g)
		pix = resizeGrayPlane(pix, w, h, opt.Width, opt.Height)
		w, h = opt.Width, opt.Height
	} else {
		if resizeNeeded {
			img = Resize(img, opt.Width, opt.Height, opt.Mode)
		}
		pix, w, h = FromImage(img)
	}
	report(30)

	dithered, err := Dither(pix, w, h, opt.Method, opt.Levels, func(o *Options) {
		o.OnProgress = func(p int) { report(30 + p*60/100) }
	})
	if err != nil {
		return nil, err
	}

	result, err := ToPaletted(dithered, w, h, opt.Levels)
	if err != nil {
		return nil, err
	}
	report(95)

	var out image.Image = result
	if opt.PreviewScale >= 2 {
		out = ScalePreview(result, opt.PreviewScale)
	}
	report(100)
	return out, nil
}

// ProcessFile reads an image from inPath (PNG or JPEG), runs Process, and
// writes the result to outPath as PNG. The paletted result keeps the output
// small at low level counts.
func ProcessFile(inPath, outPath string, opts ...func(o *ProcessOptions)) error {
	data, err := os.ReadFile(filepath.Clean(inPath))
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	opt := defaultProcessOptions()
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	report := monotonicProgress(opt.OnProgress)
	report(5)

	chained := append([]func(o *ProcessOptions){}, opts...)
	chained = append(chained, func(o *ProcessOptions) {
		o.OnProgress = func(p int) { report(5 + p*90/100) }
	})
	result, err := Process(img, chained...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(outPath), buf.Bytes(), 0o644); err != nil {
		return err
	}
	report(100)
	return nil
}

// monotonicProgress wraps a progress callback so repeated or regressing
// percentages are dropped. A nil callback yields a no-op.
func monotonicProgress(fn func(int)) func(int) {
	if fn == nil {
		return func(int) {}
	}
	last := -1
	return func(p int) {
		if p > last {
			last = p
			fn(p)
		}
	}
}
