package background

import (
	"errors"
	"image"

	"github.com/ironsheep/sprite-cutout/internal/imaging"
)

var (
	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrUnknownStrategy is returned for a Strategy value outside the
	// declared constants.
	ErrUnknownStrategy = errors.New("unknown background strategy")
)

// ReferenceColor derives the background color that s compares pixels
// against. FixedThreshold has no sampling step and always reports white.
func ReferenceColor(img image.Image, s Strategy) (imaging.RGBColor, error) {
	if img.Bounds().Empty() {
		return imaging.RGBColor{}, ErrEmptyImage
	}
	return referenceColor(imaging.ToNRGBA(img), s)
}

func referenceColor(img *image.NRGBA, s Strategy) (imaging.RGBColor, error) {
	var points []image.Point
	switch s {
	case FixedThreshold:
		return imaging.White, nil
	case EdgeSampled:
		points = EdgeSamplePoints(img.Bounds())
	case CornerMode:
		points = CornerPoints(img.Bounds())
	default:
		return imaging.RGBColor{}, ErrUnknownStrategy
	}

	samples, err := imaging.SampleColorsMulti(img, points)
	if err != nil {
		return imaging.RGBColor{}, err
	}
	mode, err := imaging.ModeColor(samples)
	if err != nil {
		return imaging.RGBColor{}, err
	}
	return mode.RGB, nil
}

// EdgeSamplePoints returns the border coordinates sampled by EdgeSampled.
//
// Along the top and bottom rows x steps by max(1, width/10); along the left
// and right columns y steps by max(1, height/10). Points are ordered top,
// bottom pairs first, then left, right pairs, so corners appear more than once.
func EdgeSamplePoints(bounds image.Rectangle) []image.Point {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	stepX := max(1, w/10)
	stepY := max(1, h/10)
	minX, minY := bounds.Min.X, bounds.Min.Y

	points := make([]image.Point, 0, 2*(w/stepX+1)+2*(h/stepY+1))
	for x := 0; x < w; x += stepX {
		points = append(points,
			image.Pt(minX+x, minY),
			image.Pt(minX+x, minY+h-1),
		)
	}
	for y := 0; y < h; y += stepY {
		points = append(points,
			image.Pt(minX, minY+y),
			image.Pt(minX+w-1, minY+y),
		)
	}
	return points
}

// CornerPoints returns top-left, top-right, bottom-left and bottom-right.
func CornerPoints(bounds image.Rectangle) []image.Point {
	if bounds.Empty() {
		return nil
	}
	maxX, maxY := bounds.Max.X-1, bounds.Max.Y-1
	return []image.Point{
		bounds.Min,
		image.Pt(maxX, bounds.Min.Y),
		image.Pt(bounds.Min.X, maxY),
		image.Pt(maxX, maxY),
	}
}

// Stats counts how many pixels landed in each alpha band.
type Stats struct {
	// Bands[i] is the number of pixels matched by band i of the table.
	Bands []int `json:"bands"`
	// Unmatched is the number of pixels that fell through every band.
	Unmatched int `json:"unmatched"`
}

// Transparent returns the number of pixels assigned to the first band.
func (s Stats) Transparent() int {
	if len(s.Bands) == 0 {
		return 0
	}
	return s.Bands[0]
}

// Output is the result of one classification.
type Output struct {
	Image     *image.NRGBA
	Strategy  Strategy
	Reference imaging.RGBColor
	Stats     Stats
}

// Classify returns a copy of img whose alpha channel has been rewritten by
// strategy s. The copy has the same dimensions as img and carries the same
// R, G and B values in every pixel.
//
// # Errors
//
//   - ErrEmptyImage if img has zero width or height
//   - ErrUnknownStrategy if s is not a declared Strategy
func Classify(img image.Image, s Strategy) (*Output, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	table, err := s.Bands()
	if err != nil {
		return nil, err
	}

	out := imaging.ToNRGBA(img)
	ref, err := referenceColor(out, s)
	if err != nil {
		return nil, err
	}

	stats := Stats{Bands: make([]int, len(table.Bands))}
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := out.PixOffset(x, y)
			px := imaging.PixelRGB(out, x, y)
			alpha, band := table.Alpha(px, ref, out.Pix[i+3])
			out.Pix[i+3] = alpha
			if band < 0 {
				stats.Unmatched++
			} else {
				stats.Bands[band]++
			}
		}
	}

	return &Output{
		Image:     out,
		Strategy:  s,
		Reference: ref,
		Stats:     stats,
	}, nil
}
