package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/waqasbhatti/fits-to-stamps/internal/fits"
	"github.com/waqasbhatti/fits-to-stamps/internal/stamps"
)

// Options configures one conversion run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// TrimKeys are the header keys tried, in order, for the trim section.
	TrimKeys []string

	// TrimBox, when non-empty, is a [c1:c2,r1:r2] section applied instead
	// of any header lookup.
	TrimBox string

	// FitsExt selects the image extension explicitly; negative means
	// auto-detect.
	FitsExt int

	// StampSize is the output edge length of each stamp in pixels.
	StampSize int

	// SeparatorWidth is the width of the bands drawn around and between
	// stamps.
	SeparatorWidth int

	// Workers bounds the conversion pool in directory mode.
	Workers int

	// Glob matches FITS files inside a target directory.
	Glob string
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		TrimKeys:       []string{"TRIMSEC", "DATASEC", "TRIMSEC0"},
		FitsExt:        -1,
		StampSize:      256,
		SeparatorWidth: 1,
		Workers:        8,
		Glob:           "*.fits*",
	}
}

// Result records the outcome of converting one input file.
type Result struct {
	// Path is the input FITS file.
	Path string

	// Out is the written raster file, empty on failure.
	Out string

	// Err is nil on success.
	Err error
}

// Failed reports whether the conversion failed.
func (r Result) Failed() bool { return r.Err != nil }

// Convert runs the full pipeline for one FITS file and writes the stamp
// mosaic PNG alongside it.
//
// All failure modes (unreadable container, no usable extension, image
// too small to tile, encoder rejection) are folded into the Result;
// Convert never panics and never returns errors out of band.
func Convert(path string, opts Options) Result {
	res := Result{Path: path}

	src, err := fits.Open(path)
	if err != nil {
		res.Err = err
		return res
	}

	extIdx, err := fits.Resolve(src, opts.FitsExt)
	if err != nil {
		res.Err = err
		return res
	}
	ext := &src.Exts[extIdx]

	frame := stamps.NewFrame(ext.Pix, ext.Width, ext.Height)

	var sec fits.Section
	var found bool
	if opts.TrimBox != "" {
		sec, found = fits.ParseSection(opts.TrimBox)
	} else {
		sec, found = fits.LookupSection(ext.Cards, opts.TrimKeys)
	}
	frame = stamps.Trim(frame, sec, found)
	frame.FlipVertical()

	tiles, err := stamps.Tile(frame)
	if err != nil {
		res.Err = err
		return res
	}

	var scaled [9]*image.Gray
	for i, tile := range tiles {
		scaled[i] = stamps.Rescale(tile, opts.StampSize)
	}
	canvas := stamps.Composite(scaled, opts.StampSize, opts.SeparatorWidth)

	out := OutputPath(path)
	if err := imaging.Save(canvas, out); err != nil {
		res.Err = fmt.Errorf("failed to encode %s: %w", out, err)
		return res
	}

	res.Out = out
	return res
}

// compression suffixes stripped before the FITS extension itself.
var compressionExts = map[string]bool{
	".fz":  true,
	".gz":  true,
	".bz2": true,
}

// OutputPath derives the raster output path for an input FITS file: same
// directory, compression suffix and FITS extension replaced with ".png".
// So both image.fits and image.fits.fz map to image.png.
func OutputPath(path string) string {
	base := path
	if ext := filepath.Ext(base); compressionExts[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".png"
}
