package stamps

import "github.com/waqasbhatti/fits-to-stamps/internal/fits"

// Frame is a dense 2-D float64 pixel array, row-major with row 0 first.
type Frame struct {
	Pix  []float64
	W, H int
}

// NewFrame wraps a pixel slice of length w*h in a Frame.
func NewFrame(pix []float64, w, h int) *Frame {
	return &Frame{Pix: pix, W: w, H: h}
}

// At returns the sample at column x, row y. No bounds checking.
func (f *Frame) At(x, y int) float64 {
	return f.Pix[y*f.W+x]
}

// Crop returns a copy of the frame restricted to sec. The section must
// already be clipped to the frame bounds.
func (f *Frame) Crop(sec fits.Section) *Frame {
	w, h := sec.Dx(), sec.Dy()
	pix := make([]float64, 0, w*h)
	for y := sec.Y0; y < sec.Y1; y++ {
		row := f.Pix[y*f.W : y*f.W+f.W]
		pix = append(pix, row[sec.X0:sec.X1]...)
	}
	return &Frame{Pix: pix, W: w, H: h}
}

// FlipVertical reverses the row order in place. FITS stores rows
// bottom-up; display rasters want the top row first.
func (f *Frame) FlipVertical() {
	for y := 0; y < f.H/2; y++ {
		top := f.Pix[y*f.W : y*f.W+f.W]
		bot := f.Pix[(f.H-1-y)*f.W : (f.H-1-y)*f.W+f.W]
		for x := range top {
			top[x], bot[x] = bot[x], top[x]
		}
	}
}

// Trim applies a header-derived section to the frame. When ok is false
// (no section found) or the clipped section is empty, the frame is
// returned unchanged; cropping never fails.
func Trim(f *Frame, sec fits.Section, ok bool) *Frame {
	if !ok {
		return f
	}
	clipped, valid := sec.Clip(f.W, f.H)
	if !valid {
		return f
	}
	return f.Crop(clipped)
}
