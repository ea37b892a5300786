package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads an image file and returns an NRGBA working copy of it.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - *image.NRGBA: A freshly allocated copy with bounds (0,0)-(w,h). Callers
//     may mutate it freely.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// JPEG files carrying an EXIF orientation tag are rotated upright before the
// copy is made.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image
func Load(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return ToNRGBA(img), nil
}

// ToNRGBA returns a non-premultiplied copy of img with bounds starting at
// (0,0). The input is never modified.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Save writes img as a PNG file at path.
//
// The image is first encoded to a hidden temporary file in the destination
// directory and then renamed into place, so a failed encode never leaves a
// truncated PNG behind. The destination directory must already exist.
func Save(path string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".cutout-*.png.tmp")
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	tmp := f.Name()

	encode := imgio.PNGEncoder()
	if err := encode(f, img); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write image: %w", err)
	}

	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write image: %w", err)
	}

	return nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the pixel dimensions of img.
func GetDimensions(img image.Image) DimensionsResult {
	bounds := img.Bounds()
	return DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}
