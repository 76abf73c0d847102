package fits

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/astrogo/fitsio"
)

// ErrNoImageData indicates that no extension in a source carries a readable
// two-dimensional pixel array.
var ErrNoImageData = errors.New("no image data in any extension")

// ExtensionNotFoundError indicates that an explicitly requested extension
// does not exist or has no pixel data.
type ExtensionNotFoundError struct {
	Ext    int
	Count  int
	Reason string
}

func (e *ExtensionNotFoundError) Error() string {
	return fmt.Sprintf("extension %d (of %d): %s", e.Ext, e.Count, e.Reason)
}

// Extension is one flattened header/data unit of a FITS source.
type Extension struct {
	// Name is the EXTNAME of the HDU, empty for the primary HDU.
	Name string

	// Table reports whether the HDU is an ASCII or binary table rather
	// than an image HDU.
	Table bool

	// Cards maps header keyword names to their values rendered as strings.
	Cards map[string]string

	// Width and Height are the NAXIS1/NAXIS2 dimensions of the pixel
	// array, zero when the HDU has none.
	Width  int
	Height int

	// Pix is the pixel array in FITS storage order (row 0 first, NAXIS1
	// varying fastest), length Width*Height. Nil when the HDU carries no
	// readable 2-D array.
	Pix []float64
}

// HasPixels reports whether the extension carries a usable pixel array.
func (e *Extension) HasPixels() bool {
	return e.Pix != nil && e.Width > 0 && e.Height > 0
}

// Source is a parsed FITS file, flattened to the parts the conversion
// pipeline needs.
type Source struct {
	Path string
	Exts []Extension
}

// Open reads and flattens a FITS file.
//
// Every HDU is retained, including tables and pixel-free stubs, so that
// the extension resolver can inspect container structure. HDUs whose data
// cannot be decoded (for example tile-compressed arrays the parser does
// not decompress) appear with a nil Pix rather than failing the whole
// open.
//
// Returns a wrapped error when the file cannot be read or is not a valid
// FITS structure.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FITS file: %w", err)
	}
	defer f.Close()

	fit, err := fitsio.Open(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FITS file: %w", err)
	}
	defer fit.Close()

	hdus := fit.HDUs()
	if len(hdus) == 0 {
		return nil, fmt.Errorf("failed to parse FITS file %s: no HDUs", path)
	}

	src := &Source{Path: path, Exts: make([]Extension, 0, len(hdus))}
	for _, hdu := range hdus {
		src.Exts = append(src.Exts, flattenHDU(hdu))
	}
	return src, nil
}

func flattenHDU(hdu fitsio.HDU) Extension {
	hdr := hdu.Header()

	ext := Extension{
		Name:  strings.TrimSpace(hdu.Name()),
		Table: hdu.Type() != fitsio.IMAGE_HDU,
		Cards: make(map[string]string, len(hdr.Keys())),
	}
	for _, key := range hdr.Keys() {
		if card := hdr.Get(key); card != nil {
			ext.Cards[key] = fmt.Sprint(card.Value)
		}
	}

	if ext.Table {
		return ext
	}

	axes := hdr.Axes()
	if len(axes) < 2 || axes[0] <= 0 || axes[1] <= 0 {
		return ext
	}

	img, ok := hdu.(fitsio.Image)
	if !ok {
		return ext
	}

	// The buffer must span every axis: fitsio reads the full data block,
	// so a cube needs w*h*depth elements even though only the first
	// plane is kept.
	n := 1
	for _, ax := range axes {
		if ax > 0 {
			n *= ax
		}
	}

	w, h := axes[0], axes[1]
	pix, err := readPixels(img, hdr.Bitpix(), n)
	if err != nil {
		// Undecodable data is treated as a pixel-free extension; the
		// resolver reports NoImageData if nothing else qualifies.
		return ext
	}

	ext.Width = w
	ext.Height = h
	ext.Pix = pix[:w*h]
	return ext
}

// readPixels decodes n samples from an image HDU into float64, reading
// through the slice type matching the header BITPIX. fitsio rejects
// element-size mismatches, so each integer and float width gets its own
// buffer.
func readPixels(img fitsio.Image, bitpix, n int) ([]float64, error) {
	out := make([]float64, n)

	switch bitpix {
	case 8:
		buf := make([]int8, n)
		if err := img.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case 16:
		buf := make([]int16, n)
		if err := img.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case 32:
		buf := make([]int32, n)
		if err := img.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case 64:
		buf := make([]int64, n)
		if err := img.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case -32:
		buf := make([]float32, n)
		if err := img.Read(&buf); err != nil {
			return nil, err
		}
		for i, v := range buf {
			out[i] = float64(v)
		}
	case -64:
		if err := img.Read(&out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
	return out, nil
}
