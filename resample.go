package halftone

import (
	"math"
	"sync"
)

// Separable two-pass resampler over flat gray planes. This is the fast path
// for sources that are already single-channel: the pipeline resizes the
// plane directly instead of bouncing through a color image.

type resampleWeights struct {
	coeffs       []float64
	start        []int
	filterLength int
}

type weightsKey struct {
	src  int
	dst  int
	taps int
}

var weightsCache sync.Map

// resizeGrayPlane scales a row-major gray plane to dstW x dstH, using
// Lanczos3 for downscale and a linear kernel for upscale. Edge samples clamp
// to the border pixel.
func resizeGrayPlane(pix []uint8, srcW, srcH, dstW, dstH int) []uint8 {
	if srcW == dstW && srcH == dstH {
		out := make([]uint8, len(pix))
		copy(out, pix)
		return out
	}
	taps, kernel := 2, linearKernel
	if dstW < srcW || dstH < srcH {
		taps, kernel = 6, lanczos3Kernel
	}
	wx := grayWeights(srcW, dstW, taps, kernel)
	wy := grayWeights(srcH, dstH, taps, kernel)

	temp := make([]float64, dstW*srcH)
	for y := 0; y < srcH; y++ {
		row := pix[y*srcW:]
		outRow := temp[y*dstW:]
		for x := 0; x < dstW; x++ {
			s := wx.start[x]
			base := x * wx.filterLength
			var sum float64
			for i := 0; i < wx.filterLength; i++ {
				xi := s + i
				if xi < 0 {
					xi = 0
				} else if xi >= srcW {
					xi = srcW - 1
				}
				sum += float64(row[xi]) * wx.coeffs[base+i]
			}
			outRow[x] = sum
		}
	}

	out := make([]uint8, dstW*dstH)
	for y := 0; y < dstH; y++ {
		s := wy.start[y]
		base := y * wy.filterLength
		row := out[y*dstW:]
		for x := 0; x < dstW; x++ {
			var sum float64
			for i := 0; i < wy.filterLength; i++ {
				yi := s + i
				if yi < 0 {
					yi = 0
				} else if yi >= srcH {
					yi = srcH - 1
				}
				sum += temp[yi*dstW+x] * wy.coeffs[base+i]
			}
			row[x] = clampToByte(sum)
		}
	}
	return out
}

func grayWeights(src, dst, taps int, kernel func(float64) float64) resampleWeights {
	key := weightsKey{src: src, dst: dst, taps: taps}
	if cached, ok := weightsCache.Load(key); ok {
		return cached.(resampleWeights)
	}
	scale := float64(src) / float64(dst)
	filterLength := taps * int(math.Max(math.Ceil(scale), 1))
	filterFactor := math.Min(1.0/scale, 1.0)
	coeffs := make([]float64, dst*filterLength)
	start := make([]int, dst)
	for y := 0; y < dst; y++ {
		interpX := scale*(float64(y)+0.5) - 0.5
		start[y] = int(interpX) - filterLength/2 + 1
		interpX -= float64(start[y])
		base := y * filterLength
		var sum float64
		for i := 0; i < filterLength; i++ {
			w := kernel((interpX - float64(i)) * filterFactor)
			coeffs[base+i] = w
			sum += w
		}
		if sum != 0 {
			inv := 1.0 / sum
			for i := 0; i < filterLength; i++ {
				coeffs[base+i] *= inv
			}
		}
	}
	weights := resampleWeights{coeffs: coeffs, start: start, filterLength: filterLength}
	weightsCache.Store(key, weights)
	return weights
}

func linearKernel(in float64) float64 {
	in = math.Abs(in)
	if in <= 1 {
		return 1 - in
	}
	return 0
}

func sinc(x float64) float64 {
	x = math.Abs(x) * math.Pi
	if x >= 1.220703e-4 {
		return math.Sin(x) / x
	}
	return 1
}

func lanczos3Kernel(in float64) float64 {
	if in > -3 && in < 3 {
		return sinc(in) * sinc(in/3)
	}
	return 0
}

func clampToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
