package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/vearutop/halftone"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "dither":
		if err := runDither(os.Args[2:]); err != nil {
			fail(err)
		}
	case "batch":
		if err := runBatch(os.Args[2:]); err != nil {
			fail(err)
		}
	case "methods":
		for _, m := range halftone.Methods() {
			fmt.Fprintln(os.Stdout, m)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: halftone <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  dither  -in input.png -out output.png [-method floyd-steinberg] [-levels 2]")
	fmt.Fprintln(os.Stderr, "          [-w 800 -h 480] [-mode stretch|fit|fill] [-gamma 1.0] [-scale 1] [-v]")
	fmt.Fprintln(os.Stderr, "  batch   -in input.png -out-dir out/ [-methods all] [-levels 2,4]")
	fmt.Fprintln(os.Stderr, "  methods")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func runDither(args []string) error {
	fs := flag.NewFlagSet("dither", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image (PNG or JPEG)")
	outPath := fs.String("out", "", "output PNG")
	method := fs.String("method", "floyd-steinberg", "dithering method")
	levels := fs.Int("levels", 2, "number of output levels (2-256)")
	width := fs.Int("w", 0, "target width (0 keeps source)")
	height := fs.Int("h", 0, "target height (0 keeps source)")
	mode := fs.String("mode", "stretch", "resize mode: stretch, fit, or fill")
	gamma := fs.Float64("gamma", 1, "gamma adjustment before dithering")
	scale := fs.Int("scale", 1, "nearest-neighbor preview upscale factor")
	verbose := fs.Bool("v", false, "verbose progress logging")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	m, err := halftone.ParseMethod(*method)
	if err != nil {
		return err
	}
	rm, ok := halftone.ParseResizeMode(*mode)
	if !ok {
		return fmt.Errorf("unknown resize mode %q", *mode)
	}

	log := newLogger(*verbose)
	start := time.Now()
	err = halftone.ProcessFile(*inPath, *outPath, func(o *halftone.ProcessOptions) {
		o.Method = m
		o.Levels = *levels
		o.Width = *width
		o.Height = *height
		o.Mode = rm
		o.Gamma = *gamma
		o.PreviewScale = *scale
		o.OnProgress = func(percent int) {
			log.Debug("processing", "percent", percent)
		}
	})
	if err != nil {
		return err
	}
	log.Info("done", "in", *inPath, "out", *outPath, "method", m.String(), "levels", *levels, "elapsed", time.Since(start))
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image (PNG or JPEG)")
	outDir := fs.String("out-dir", "", "output directory")
	methods := fs.String("methods", "all", "comma-separated methods, or all")
	levels := fs.String("levels", "2", "comma-separated level counts")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outDir == "" {
		return errors.New("missing required arguments")
	}

	var ms []halftone.Method
	if *methods == "all" {
		ms = halftone.Methods()
	} else {
		for _, name := range strings.Split(*methods, ",") {
			m, err := halftone.ParseMethod(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			ms = append(ms, m)
		}
	}
	var ls []int
	for _, s := range strings.Split(*levels, ",") {
		l, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("bad level count %q: %w", s, err)
		}
		ls = append(ls, l)
	}

	data, err := os.ReadFile(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", *inPath, err)
	}
	pix, w, h := halftone.FromImage(img)

	var specs []halftone.Spec
	for _, m := range ms {
		for _, l := range ls {
			specs = append(specs, halftone.Spec{Method: m, Levels: l})
		}
	}

	log := newLogger(*verbose)
	start := time.Now()
	results, err := halftone.DitherBatch(pix, w, h, specs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(*inPath), filepath.Ext(*inPath))
	for _, res := range results {
		p, err := halftone.ToPaletted(res.Pix, w, h, res.Spec.Levels)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s_%s_l%d.png", base, res.Spec.Method, res.Spec.Levels)
		var buf bytes.Buffer
		if err := png.Encode(&buf, p); err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		outPath := filepath.Join(*outDir, name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return err
		}
		log.Debug("wrote", "path", outPath)
	}
	log.Info("done", "renditions", len(results), "elapsed", time.Since(start))
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
