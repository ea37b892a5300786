// Package imaging provides the image plumbing used by the background remover.
//
// This package loads source sprites, converts them into a non-premultiplied
// RGBA working copy, samples and compares colors, and writes the resulting
// PNG files. All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Working Copy
//
// Load always returns an *image.NRGBA with bounds starting at (0,0). The
// non-premultiplied layout matters: lowering a pixel's alpha in an NRGBA
// image leaves its R, G and B bytes untouched, which is what the background
// classifier relies on.
//
// # Color Representation
//
// Colors are carried as RGB triples with 8-bit components (0-255). Alpha is
// handled separately by callers. Hex strings use the "#rrggbb" form.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Empty sample sets
//   - File I/O errors during image loading
//   - Encoding errors during image output
//
// Load and Save wrap the underlying error with %w so callers can still test
// for fs.ErrNotExist.
package imaging
