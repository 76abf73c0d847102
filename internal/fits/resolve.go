package fits

import "strings"

// Variant classifies the container shape of a FITS source.
type Variant int

const (
	// VariantPlain means the pixel array lives in a regular image HDU,
	// usually the primary one.
	VariantPlain Variant = iota

	// VariantCompressed means the image is stored in a tile-compressed
	// binary-table extension (fpack-style *.fits.fz containers).
	VariantCompressed
)

func (v Variant) String() string {
	if v == VariantCompressed {
		return "compressed"
	}
	return "plain"
}

// Classify determines the container variant of a source.
//
// A ZIMAGE card on a table extension is the structural marker of tile
// compression; the .fz filename suffix is used as a fallback for
// containers whose marker cards are missing.
func Classify(src *Source) Variant {
	for i, ext := range src.Exts {
		if i == 0 || !ext.Table {
			continue
		}
		if _, ok := ext.Cards["ZIMAGE"]; ok {
			return VariantCompressed
		}
	}
	if strings.HasSuffix(strings.ToLower(src.Path), ".fz") {
		return VariantCompressed
	}
	return VariantPlain
}

// Resolve picks the extension holding the image to convert.
//
// When explicit is non-negative it is used verbatim; an out-of-range index
// or a pixel-free extension yields an *ExtensionNotFoundError. Otherwise
// the container variant is inspected: compressed containers prefer the
// extension after the primary stub, plain containers use the first
// extension carrying pixels. ErrNoImageData is returned when nothing in
// the source has a readable pixel array.
func Resolve(src *Source, explicit int) (int, error) {
	if explicit >= 0 {
		if explicit >= len(src.Exts) {
			return 0, &ExtensionNotFoundError{
				Ext:    explicit,
				Count:  len(src.Exts),
				Reason: "index out of range",
			}
		}
		if !src.Exts[explicit].HasPixels() {
			return 0, &ExtensionNotFoundError{
				Ext:    explicit,
				Count:  len(src.Exts),
				Reason: "extension has no pixel data",
			}
		}
		return explicit, nil
	}

	if Classify(src) == VariantCompressed && len(src.Exts) > 1 {
		if src.Exts[1].HasPixels() {
			return 1, nil
		}
		// The compressed extension exists but its data could not be
		// decoded; nothing else in the container is the image.
		return 0, ErrNoImageData
	}

	for i, ext := range src.Exts {
		if ext.HasPixels() {
			return i, nil
		}
	}
	return 0, ErrNoImageData
}
