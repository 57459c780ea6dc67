// Package halftone implements error-diffusion dithering of grayscale rasters.
//
// The engine quantizes a continuous-tone grayscale buffer to a fixed number of
// evenly spaced intensity levels, diffusing the rounding error of each pixel
// to not-yet-processed neighbors using Floyd-Steinberg, Sierra Lite, or
// Jarvis-Judice-Ninke weights. The package also carries the plumbing around
// the engine: flattening an image.Image into a row-major gray plane, resizing,
// assembling paletted output, and a file-to-file pipeline used by cmd/halftone.
package halftone
