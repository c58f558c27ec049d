// Package lighting provides the scene's light sources and the day/night cycle.
package lighting

// PointLight represents a point light source.
type PointLight struct {
	Position  [3]float32 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32    // Light intensity multiplier
}

// ColorFromHex converts a 0xRRGGBB value to normalized RGB.
func ColorFromHex(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xFF) / 255.0,
		float32((hex>>8)&0xFF) / 255.0,
		float32(hex&0xFF) / 255.0,
	}
}
