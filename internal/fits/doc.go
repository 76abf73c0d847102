// Package fits provides read access to FITS image containers for stamp
// conversion.
//
// This package wraps the astrogo/fitsio parser and flattens each
// header/data unit (HDU) into an Extension holding the header cards and,
// where present, a two-dimensional float64 pixel array. It also implements
// the two header-level decisions the conversion pipeline needs: locating a
// trim section among a prioritized list of header keys, and resolving which
// extension of a container actually carries the image.
//
// # Container Variants
//
// Two container shapes are recognized:
//
//   - Plain: the pixel array lives in the primary HDU (or the first
//     extension that has one). Typical for *.fits files.
//   - Compressed: the pixel array lives in a tile-compressed binary-table
//     extension, marked by a ZIMAGE header card. Typical for *.fits.fz
//     files, where the primary HDU is an empty stub.
//
// Variant detection inspects the structural marker first and falls back to
// the filename suffix, so a renamed compressed file is still classified
// correctly when its headers are intact.
//
// # Coordinate Conventions
//
// Section strings in headers ([c1:c2,r1:r2], TRIMSEC/DATASEC style) are
// 1-based and inclusive on both ends, with the column range first. Parsed
// Sections are 0-based and half-open, columns as X and rows as Y. Pixel
// rows are kept in FITS storage order (row 0 is the bottom of the image);
// callers flip for display.
package fits
