package halftone

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a precondition violation: bad dimensions, a
// buffer/dimension mismatch, an out-of-range level count, or an unknown
// method. It always surfaces before any pixel is processed.
var ErrInvalidParameter = errors.New("invalid parameter")

// Options controls a single Dither invocation.
type Options struct {
	// OnProgress, when set, receives coarse completion percentages at fixed
	// milestones of the row sweep. It is fire-and-forget: the engine ignores
	// its behavior and never blocks on it. Percentages are monotonically
	// non-decreasing and end at 100.
	OnProgress func(percent int)
}

// Dither quantizes a row-major grayscale plane to the given number of evenly
// spaced levels, diffusing quantization error with the selected kernel. The
// input is never mutated; a fresh output plane of identical dimensions is
// returned. Every output pixel is an exact member of the level set.
func Dither(pix []uint8, width, height int, method Method, levels int, opts ...func(o *Options)) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidParameter, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d", ErrInvalidParameter, len(pix), width, height)
	}
	set, err := quantizationLevels(levels)
	if err != nil {
		return nil, err
	}

	opt := Options{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	out := make([]uint8, len(pix))
	report := rowMilestones(height, opt.OnProgress)

	switch method {
	case FloydSteinberg:
		ditherFloydSteinberg(pix, width, height, set, out, report)
	case SierraLite:
		ditherSierraLite(pix, width, height, set, out, report)
	case JarvisJudiceNinke:
		ditherJarvisJudiceNinke(pix, width, height, set, out, report)
	default:
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidParameter, int(method))
	}
	return out, nil
}

// rowMilestones maps completed-row counts onto quarter-mark percentages so
// the progress hook is not invoked per row.
func rowMilestones(height int, onProgress func(int)) func(rowsDone int) {
	if onProgress == nil {
		return nil
	}
	next := 1
	return func(rowsDone int) {
		for next <= 4 && rowsDone*4 >= height*next {
			onProgress(next * 25)
			next++
		}
	}
}
