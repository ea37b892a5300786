package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// White is the nominal background of the fixed-threshold heuristic.
var White = RGBColor{R: 255, G: 255, B: 255}

// ErrNoSamples is returned by ModeColor when given an empty sample set.
var ErrNoSamples = errors.New("no color samples")

// Hex returns the color as "#rrggbb".
func (c RGBColor) Hex() string {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}

// String implements fmt.Stringer.
func (c RGBColor) String() string {
	return c.Hex()
}

// AllAbove reports whether every channel is strictly greater than v.
func (c RGBColor) AllAbove(v uint8) bool {
	return c.R > v && c.G > v && c.B > v
}

// L1Distance returns the sum of absolute per-channel differences between
// two colors. The result ranges from 0 (identical) to 765 (black vs white).
func L1Distance(a, b RGBColor) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

// MaxChannelDistance returns the largest absolute per-channel difference
// between two colors (Chebyshev distance).
func MaxChannelDistance(a, b RGBColor) int {
	d := absDiff(a.R, b.R)
	if g := absDiff(a.G, b.G); g > d {
		d = g
	}
	if bl := absDiff(a.B, b.B); bl > d {
		d = bl
	}
	return d
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// PixelRGB returns the color channels stored at (x, y) of an NRGBA image.
//
// The values are the raw non-premultiplied bytes, so a fully transparent
// pixel still reports the color it carries.
func PixelRGB(img *image.NRGBA, x, y int) RGBColor {
	i := img.PixOffset(x, y)
	return RGBColor{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// SampleColor returns the color at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - RGBColor: The color channels at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
func SampleColor(img *image.NRGBA, x, y int) (RGBColor, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return PixelRGB(img, x, y), nil
}

// SampleColorsMulti returns the colors at multiple pixel coordinates, in the
// same order as points. On error no partial results are returned.
func SampleColorsMulti(img *image.NRGBA, points []image.Point) ([]RGBColor, error) {
	samples := make([]RGBColor, 0, len(points))
	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		samples = append(samples, c)
	}
	return samples, nil
}

// ColorFrequency represents a color and how many samples carried it.
type ColorFrequency struct {
	RGB   RGBColor `json:"rgb"`
	Count int      `json:"count"`
}

// ModeColor returns the most frequent color among samples.
//
// Ties are broken in favour of the color that appears first in samples, so
// the result is deterministic for a given sampling order.
func ModeColor(samples []RGBColor) (ColorFrequency, error) {
	if len(samples) == 0 {
		return ColorFrequency{}, ErrNoSamples
	}

	counts := make(map[RGBColor]int, len(samples))
	order := make([]RGBColor, 0, len(samples))
	for _, c := range samples {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	best := ColorFrequency{RGB: order[0], Count: counts[order[0]]}
	for _, c := range order[1:] {
		if counts[c] > best.Count {
			best = ColorFrequency{RGB: c, Count: counts[c]}
		}
	}
	return best, nil
}
