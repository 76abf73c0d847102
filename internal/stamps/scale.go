package stamps

import (
	"image"
	"math"
	"sort"

	"github.com/disintegration/imaging"
)

const (
	clipLowPct  = 0.5
	clipHighPct = 99.5

	// midGray is the output value for stamps with no dynamic range.
	midGray = 128
)

// Rescale maps one stamp onto an 8-bit grayscale square of the given size.
//
// Intensities are clipped to the 0.5/99.5 percentile window of the
// stamp's finite samples and rescaled linearly onto 0-255. Non-finite
// samples are treated as the low clip bound, and a constant stamp (or one
// with no finite samples at all) maps to uniform mid-gray. The rescaled
// stamp is then resampled to size×size with a box filter, which averages
// the source area covered by each destination pixel.
func Rescale(f *Frame, size int) *image.Gray {
	lo, hi := clipWindow(f.Pix)

	gray := image.NewGray(image.Rect(0, 0, f.W, f.H))
	if hi > lo {
		scale := 255.0 / (hi - lo)
		for i, v := range f.Pix {
			if !isFinite(v) {
				v = lo
			} else if v < lo {
				v = lo
			} else if v > hi {
				v = hi
			}
			gray.Pix[i] = uint8(math.Round((v - lo) * scale))
		}
	} else {
		for i := range gray.Pix {
			gray.Pix[i] = midGray
		}
	}

	if f.W == size && f.H == size {
		return gray
	}
	return toGray(imaging.Resize(gray, size, size, imaging.Box))
}

// clipWindow returns the low and high percentile bounds of the finite
// samples in pix. Both are zero when no finite sample exists.
func clipWindow(pix []float64) (lo, hi float64) {
	finite := make([]float64, 0, len(pix))
	for _, v := range pix {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0
	}
	sort.Float64s(finite)
	return percentile(finite, clipLowPct), percentile(finite, clipHighPct)
}

// percentile interpolates the p-th percentile of an ascending-sorted
// slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	i := int(math.Floor(rank))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(i)
	return sorted[i]*(1-frac) + sorted[i+1]*frac
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// toGray collapses an NRGBA resize result back to a grayscale image. The
// source had equal channels, so the red channel carries the value.
func toGray(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Pix[gray.PixOffset(x, y)] = img.Pix[img.PixOffset(x, y)]
		}
	}
	return gray
}
