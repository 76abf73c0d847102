// Package batch runs the FITS-to-stamps conversion over one file or a
// directory of files.
//
// The conversion driver (Convert) owns everything for a single file:
// opening the container, resolving the image extension, trimming,
// tiling, rescaling, compositing, and writing the PNG next to the input.
// Every per-file failure is captured in the returned Result and never
// escapes, so one bad file cannot take down a batch.
//
// The dispatcher (Run) handles target resolution. A single file converts
// inline with no concurrency; a directory is globbed and fanned out over
// a fixed-size pool of worker goroutines, each fully owning the pixel
// data of the file it is converting. Workers share nothing, so there is
// no locking anywhere in the pipeline. Only two conditions are fatal to a
// whole run: a target that does not exist, and a directory glob that
// matches nothing.
package batch
