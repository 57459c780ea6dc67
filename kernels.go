package halftone

// The kernels share one skeleton: rows top to bottom, columns left to right,
// an error-in buffer carrying diffusion from previous rows and one or two
// error-out buffers for the row(s) below. Out-of-bounds targets are dropped,
// never wrapped or clamped. Intermediate values are not clamped either; the
// nearest-level search resolves out-of-range candidates to an endpoint.
// The quantized level is stored truncated toward zero and masked to 8 bits.

func ditherFloydSteinberg(pix []uint8, width, height int, set []float64, out []uint8, report func(rowsDone int)) {
	errIn := make([]float64, width)
	errOut := make([]float64, width)
	for y := 0; y < height; y++ {
		for i := range errOut {
			errOut[i] = 0
		}
		row := y * width
		for x := 0; x < width; x++ {
			value := float64(pix[row+x]) + errIn[x]
			chosen := nearestLevel(value, set)
			out[row+x] = uint8(int(chosen) & 0xFF)
			diff := value - chosen
			if x+1 < width {
				errIn[x+1] += diff * 7.0 / 16.0
				errOut[x+1] += diff * 1.0 / 16.0
			}
			if x-1 >= 0 {
				errOut[x-1] += diff * 3.0 / 16.0
			}
			errOut[x] += diff * 5.0 / 16.0
		}
		errIn, errOut = errOut, errIn
		if report != nil {
			report(y + 1)
		}
	}
}

func ditherSierraLite(pix []uint8, width, height int, set []float64, out []uint8, report func(rowsDone int)) {
	errIn := make([]float64, width)
	errOut := make([]float64, width)
	for y := 0; y < height; y++ {
		for i := range errOut {
			errOut[i] = 0
		}
		row := y * width
		for x := 0; x < width; x++ {
			value := float64(pix[row+x]) + errIn[x]
			chosen := nearestLevel(value, set)
			out[row+x] = uint8(int(chosen) & 0xFF)
			diff := value - chosen
			if x+1 < width {
				errIn[x+1] += diff * 1.0 / 2.0
			}
			if x-1 >= 0 {
				errOut[x-1] += diff * 1.0 / 4.0
			}
			errOut[x] += diff * 1.0 / 4.0
		}
		errIn, errOut = errOut, errIn
		if report != nil {
			report(y + 1)
		}
	}
}

// Jarvis-Judice-Ninke neighbor weights at column offsets x-2..x+2.
var (
	jjnNextRow   = [5]float64{3.0 / 48.0, 5.0 / 48.0, 7.0 / 48.0, 5.0 / 48.0, 3.0 / 48.0}
	jjnSecondRow = [5]float64{1.0 / 48.0, 3.0 / 48.0, 5.0 / 48.0, 3.0 / 48.0, 1.0 / 48.0}
)

func ditherJarvisJudiceNinke(pix []uint8, width, height int, set []float64, out []uint8, report func(rowsDone int)) {
	errIn := make([]float64, width)
	errNext := make([]float64, width)  // row y+1
	errNext2 := make([]float64, width) // row y+2
	for y := 0; y < height; y++ {
		for i := range errNext2 {
			errNext2[i] = 0
		}
		row := y * width
		for x := 0; x < width; x++ {
			value := float64(pix[row+x]) + errIn[x]
			chosen := nearestLevel(value, set)
			out[row+x] = uint8(int(chosen) & 0xFF)
			diff := value - chosen
			if x+1 < width {
				errIn[x+1] += diff * 7.0 / 48.0
			}
			if x+2 < width {
				errIn[x+2] += diff * 5.0 / 48.0
			}
			for i := 0; i < 5; i++ {
				xi := x + i - 2
				if xi < 0 || xi >= width {
					continue
				}
				errNext[xi] += diff * jjnNextRow[i]
				errNext2[xi] += diff * jjnSecondRow[i]
			}
		}
		// errNext becomes the next row's carry, errNext2 shifts into its
		// place, and the consumed errIn is recycled for row y+2.
		errIn, errNext, errNext2 = errNext, errNext2, errIn
		if report != nil {
			report(y + 1)
		}
	}
}
