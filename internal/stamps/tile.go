package stamps

import (
	"fmt"

	"github.com/waqasbhatti/fits-to-stamps/internal/fits"
)

// StampTooSmallError indicates an image too small to cut into a 3×3 grid
// with at least one pixel per stamp.
type StampTooSmallError struct {
	W, H int
}

func (e *StampTooSmallError) Error() string {
	return fmt.Sprintf("image %dx%d too small to tile into 3x3 stamps", e.W, e.H)
}

// Tile partitions a frame into a 3×3 grid of equal-size stamps.
//
// Height and width are each divided into three floor-sized segments;
// remainder rows and columns (at most two per axis) are dropped from the
// trailing edge. Stamps are returned in row-major order: top-left,
// top-middle, top-right, middle-left, and so on to bottom-right.
func Tile(f *Frame) ([9]*Frame, error) {
	var tiles [9]*Frame

	tw, th := f.W/3, f.H/3
	if tw < 1 || th < 1 {
		return tiles, &StampTooSmallError{W: f.W, H: f.H}
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			tiles[row*3+col] = f.Crop(fits.Section{
				X0: col * tw, X1: (col + 1) * tw,
				Y0: row * th, Y1: (row + 1) * th,
			})
		}
	}
	return tiles, nil
}
