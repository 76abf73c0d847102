// Package stamps implements the pixel pipeline that turns one FITS image
// into a 3×3 stamp mosaic.
//
// The pipeline stages, in order:
//
//  1. Trim: crop the raw array to the section found in the header, if any.
//  2. Flip: reorder rows into display orientation (FITS stores bottom-up).
//  3. Tile: partition into nine equal stamps, dropping remainder pixels.
//  4. Rescale: percentile-clip each stamp, map to 8-bit gray, resize to
//     the configured stamp size with an area-averaging filter.
//  5. Composite: assemble the nine stamps with separator bands into one
//     grayscale canvas.
//
// All stages are pure transforms on value types; nothing here touches the
// filesystem, so every stage can run concurrently for different files
// without coordination.
//
// # Intensity Mapping
//
// Stamp intensities are clipped to the 0.5th and 99.5th percentiles of the
// stamp's finite samples and mapped linearly onto 0-255. Non-finite
// samples (NaN, ±Inf) are treated as the low clip bound, and a stamp with
// no dynamic range at all maps to uniform mid-gray. The output therefore
// never contains anything but bytes.
package stamps
