package background

import "github.com/ironsheep/sprite-cutout/internal/imaging"

// Metric measures how far a pixel color is from the reference color.
type Metric func(pixel, reference imaging.RGBColor) int

// Band assigns Alpha to every pixel whose distance is strictly below Below.
type Band struct {
	Below int
	Alpha uint8
}

// Fallthrough decides the alpha of a pixel that matched no band.
type Fallthrough int

const (
	// KeepAlpha leaves the pixel's input alpha untouched.
	KeepAlpha Fallthrough = iota
	// ForceOpaque sets the pixel's alpha to 255.
	ForceOpaque
)

// BandTable is an ordered set of distance bands. Bands are tried in order and
// the first match wins, so they must be listed closest first.
type BandTable struct {
	Metric      Metric
	Bands       []Band
	Fallthrough Fallthrough
}

// Alpha returns the output alpha for a pixel with the given color and input
// alpha, along with the index of the matching band (-1 for fallthrough).
func (t BandTable) Alpha(pixel, reference imaging.RGBColor, alpha uint8) (uint8, int) {
	d := t.Metric(pixel, reference)
	for i, b := range t.Bands {
		if d < b.Below {
			return b.Alpha, i
		}
	}
	if t.Fallthrough == ForceOpaque {
		return 255, -1
	}
	return alpha, -1
}

// The fixed-threshold rules "every channel > 240" and "every channel > 200"
// are expressed as Chebyshev distance from white: a channel above 240 is
// within 14 of 255, a channel above 200 is within 54.
var fixedThresholdBands = BandTable{
	Metric: imaging.MaxChannelDistance,
	Bands: []Band{
		{Below: 255 - 240, Alpha: 0},
		{Below: 255 - 200, Alpha: 50},
	},
	Fallthrough: KeepAlpha,
}

var edgeSampledBands = BandTable{
	Metric: imaging.L1Distance,
	Bands: []Band{
		{Below: 25, Alpha: 0},
		{Below: 60, Alpha: 100},
	},
	Fallthrough: ForceOpaque,
}

// Within 30 on every channel, inclusive.
var cornerModeBands = BandTable{
	Metric: imaging.MaxChannelDistance,
	Bands: []Band{
		{Below: 31, Alpha: 0},
	},
	Fallthrough: KeepAlpha,
}

// Bands returns the alpha band table used by s.
func (s Strategy) Bands() (BandTable, error) {
	switch s {
	case FixedThreshold:
		return fixedThresholdBands, nil
	case EdgeSampled:
		return edgeSampledBands, nil
	case CornerMode:
		return cornerModeBands, nil
	default:
		return BandTable{}, ErrUnknownStrategy
	}
}
