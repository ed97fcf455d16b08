package core

import (
	"shadowbox/math"
)

// Color is an 8-bit-per-channel RGB color. Vertex colors travel to the
// GPU as normalized bytes.
type Color struct {
	R, G, B uint8
}

var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
	ColorRed   = Color{255, 0, 0}
	ColorGreen = Color{0, 255, 0}
	ColorBlue  = Color{0, 0, 255}
)

// ToFloats returns the channels normalized to [0,1] for use as a
// shader uniform.
func (c Color) ToFloats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Color
}
