package halftone

import (
	"fmt"
	"runtime"
	"sync"
)

// Spec describes one dithering rendition in a batch.
type Spec struct {
	Method Method
	Levels int
}

// BatchResult pairs a Spec with its dithered plane.
type BatchResult struct {
	Spec Spec
	Pix  []uint8
}

// DitherBatch produces several renditions of one source plane, one per spec,
// in input order. Renditions run in parallel: each invocation owns private
// error buffers and shares nothing. All specs are validated before any work
// starts, so a bad spec never yields partial results.
func DitherBatch(pix []uint8, width, height int, specs []Spec) ([]BatchResult, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no specs", ErrInvalidParameter)
	}
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d", ErrInvalidParameter, len(pix), width, height)
	}
	for i, s := range specs {
		if _, err := quantizationLevels(s.Levels); err != nil {
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
		switch s.Method {
		case FloydSteinberg, SierraLite, JarvisJudiceNinke:
		default:
			return nil, fmt.Errorf("spec %d: %w: unknown method %d", i, ErrInvalidParameter, int(s.Method))
		}
	}

	results := make([]BatchResult, len(specs))
	errs := make([]error, len(specs))
	parallelFor(len(specs), func(start, end int) {
		for i := start; i < end; i++ {
			out, err := Dither(pix, width, height, specs[i].Method, specs[i].Levels)
			if err != nil {
				errs[i] = err
				continue
			}
			results[i] = BatchResult{Spec: specs[i], Pix: out}
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// parallelFor splits total into contiguous chunks across up to GOMAXPROCS
// goroutines and waits for all of them.
func parallelFor(total int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	step := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * step
		end := start + step
		if end > total {
			end = total
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
