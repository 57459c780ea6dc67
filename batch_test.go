package halftone

import (
	"bytes"
	"errors"
	"testing"
)

func TestDitherBatchMatchesSingle(t *testing.T) {
	pix := gradientPlane(32, 24)

	specs := []Spec{
		{Method: FloydSteinberg, Levels: 2},
		{Method: SierraLite, Levels: 4},
		{Method: JarvisJudiceNinke, Levels: 3},
		{Method: FloydSteinberg, Levels: 16},
	}

	batch, err := DitherBatch(pix, 32, 24, specs)
	if err != nil {
		t.Fatalf("batch dither: %v", err)
	}
	if len(batch) != len(specs) {
		t.Fatalf("unexpected outputs: got %d want %d", len(batch), len(specs))
	}

	for i, s := range specs {
		if batch[i].Spec != s {
			t.Fatalf("spec mismatch at index %d", i)
		}
		single, err := Dither(pix, 32, 24, s.Method, s.Levels)
		if err != nil {
			t.Fatalf("single dither %d: %v", i, err)
		}
		if !bytes.Equal(batch[i].Pix, single) {
			t.Fatalf("output mismatch at index %d", i)
		}
	}
}

func TestDitherBatchInvalid(t *testing.T) {
	pix := gradientPlane(8, 8)

	if _, err := DitherBatch(pix, 8, 8, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected error for empty specs, got %v", err)
	}
	if _, err := DitherBatch(pix, 8, 8, []Spec{{Method: FloydSteinberg, Levels: 1}}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected error for bad levels, got %v", err)
	}
	if _, err := DitherBatch(pix, 8, 8, []Spec{{Method: Method(9), Levels: 2}}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected error for unknown method, got %v", err)
	}
	if _, err := DitherBatch(pix, 9, 8, []Spec{{Method: FloydSteinberg, Levels: 2}}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected error for dimension mismatch, got %v", err)
	}
}
