package halftone

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func gradientImage(width, height int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetGray(x, y, color.Gray{Y: uint8((x*255 + width/2) / width)})
		}
	}
	return g
}

func TestProcessDefaults(t *testing.T) {
	out, err := Process(gradientImage(32, 24))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	p, ok := out.(*image.Paletted)
	if !ok {
		t.Fatalf("expected *image.Paletted, got %T", out)
	}
	if p.Bounds() != image.Rect(0, 0, 32, 24) {
		t.Fatalf("bounds %v", p.Bounds())
	}
	if len(p.Palette) != 2 {
		t.Fatalf("palette size %d, want 2", len(p.Palette))
	}
	for i, v := range p.Pix {
		if v > 1 {
			t.Fatalf("pixel %d index %d out of palette", i, v)
		}
	}
}

func TestProcessResizeAndLevels(t *testing.T) {
	out, err := Process(gradientImage(32, 24), func(o *ProcessOptions) {
		o.Method = JarvisJudiceNinke
		o.Levels = 4
		o.Width = 16
		o.Height = 12
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	p := out.(*image.Paletted)
	if p.Bounds() != image.Rect(0, 0, 16, 12) {
		t.Fatalf("bounds %v", p.Bounds())
	}
	if len(p.Palette) != 4 {
		t.Fatalf("palette size %d, want 4", len(p.Palette))
	}
}

func TestProcessPreviewScale(t *testing.T) {
	out, err := Process(gradientImage(32, 24), func(o *ProcessOptions) {
		o.PreviewScale = 2
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("preview bounds %v", b)
	}
}

func TestProcessGamma(t *testing.T) {
	out, err := Process(gradientImage(16, 16), func(o *ProcessOptions) {
		o.Gamma = 2.2
		o.Levels = 4
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Fatalf("bounds %v", out.Bounds())
	}
}

func TestProcessProgressChain(t *testing.T) {
	var percents []int
	_, err := Process(gradientImage(32, 24), func(o *ProcessOptions) {
		o.Width = 16
		o.Height = 12
		o.OnProgress = func(p int) { percents = append(percents, p) }
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(percents) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] <= percents[i-1] {
			t.Fatalf("progress not strictly increasing: %v", percents)
		}
	}
	if last := percents[len(percents)-1]; last != 100 {
		t.Fatalf("final progress %d, want 100", last)
	}
}

func TestProcessInvalidLevels(t *testing.T) {
	if _, err := Process(gradientImage(8, 8), func(o *ProcessOptions) {
		o.Levels = 1
	}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, gradientImage(40, 30)); err != nil {
		t.Fatalf("encode input: %v", err)
	}
	if err := os.WriteFile(inPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var percents []int
	err := ProcessFile(inPath, outPath, func(o *ProcessOptions) {
		o.Levels = 2
		o.OnProgress = func(p int) { percents = append(percents, p) }
	})
	if err != nil {
		t.Fatalf("process file: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("output bounds %v", b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) value %d, want 0 or 255", x, y, v)
			}
		}
	}
	if last := percents[len(percents)-1]; last != 100 {
		t.Fatalf("final progress %d, want 100", last)
	}
}

func TestProcessFileMissingInput(t *testing.T) {
	if err := ProcessFile(filepath.Join(t.TempDir(), "missing.png"), "out.png"); err == nil {
		t.Fatal("expected error for missing input")
	}
}
