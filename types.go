package halftone

import "fmt"

// Method selects the error-diffusion kernel.
type Method int

const (
	// FloydSteinberg distributes error over four neighbors (7, 3, 5, 1 of 16).
	FloydSteinberg Method = iota
	// SierraLite distributes error over three neighbors (2, 1, 1 of 4).
	SierraLite
	// JarvisJudiceNinke distributes error over twelve neighbors across two
	// rows of lookahead (denominator 48).
	JarvisJudiceNinke
)

// Methods lists every supported kernel in dispatch order.
func Methods() []Method {
	return []Method{FloydSteinberg, SierraLite, JarvisJudiceNinke}
}

func (m Method) String() string {
	switch m {
	case FloydSteinberg:
		return "floyd-steinberg"
	case SierraLite:
		return "sierra-lite"
	case JarvisJudiceNinke:
		return "jarvis-judice-ninke"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves a kernel name as used by cmd/halftone.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "floyd-steinberg", "fs":
		return FloydSteinberg, nil
	case "sierra-lite", "sierra":
		return SierraLite, nil
	case "jarvis-judice-ninke", "jjn":
		return JarvisJudiceNinke, nil
	}
	return 0, fmt.Errorf("%w: unknown dithering method %q", ErrInvalidParameter, s)
}
