// Package background classifies sprite pixels as background or foreground
// by color proximity and rewrites their alpha accordingly.
//
// A classification runs in two steps:
//
//  1. Derive a reference background color from the image using the chosen
//     Strategy.
//  2. Compare every pixel against the reference and pick its alpha from the
//     strategy's band table, closest band first.
//
// # Strategies
//
//   - FixedThreshold: no sampling. Pixels whose channels all exceed 240 become
//     fully transparent, pixels whose channels all exceed 200 get alpha 50.
//   - EdgeSampled: the reference is the mode of pixels sampled along the four
//     borders every max(1, dimension/10) pixels. L1 distance below 25 gives
//     alpha 0, below 60 gives alpha 100, anything else is forced opaque.
//   - CornerMode: the reference is the mode of the four corner pixels. Pixels
//     within 30 of it on every channel become transparent.
//
// Classification never modifies the input image and never changes a pixel's
// R, G or B value. Output dimensions always equal input dimensions.
package background
