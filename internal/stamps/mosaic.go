package stamps

import (
	"image"
	"image/color"
	"image/draw"
)

// separatorFill is the gray value of the bands around and between stamps.
const separatorFill = 255

// CanvasSide returns the edge length of the mosaic canvas for a stamp
// size and separator width: three stamps plus four separator bands.
func CanvasSide(size, sep int) int {
	return 3*size + 4*sep
}

// Composite assembles nine equally-sized stamps into the output mosaic.
//
// Stamps are placed in row-major grid order with separator bands of width
// sep on all four canvas edges and between adjacent stamps, so the canvas
// is CanvasSide(size, sep) pixels on each axis. Each stamp must already be
// size×size; Rescale guarantees that.
func Composite(tiles [9]*image.Gray, size, sep int) *image.Gray {
	side := CanvasSide(size, sep)
	canvas := image.NewGray(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Gray{Y: separatorFill}), image.Point{}, draw.Src)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			x0 := sep + col*(size+sep)
			y0 := sep + row*(size+sep)
			tile := tiles[row*3+col]
			r := image.Rect(x0, y0, x0+size, y0+size)
			draw.Draw(canvas, r, tile, tile.Bounds().Min, draw.Src)
		}
	}
	return canvas
}
