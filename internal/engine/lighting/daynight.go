package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Day/night cycle constants.
const (
	OrbitRadius      = 1400.0
	OrbitSpeed       = 0.0015 // radians per tick
	HorizonThreshold = -50.0  // sun Y at which sun and moon swap

	SunColor      = 0xfdfbd3
	SunIntensity  = 1.0
	MoonColor     = 0xffffff
	MoonIntensity = 0.3
)

// CelestialBody is a sun or moon riding the orbit.
type CelestialBody struct {
	Name    string
	Rest    mgl32.Vec3 // Position at orbit angle zero
	Visible bool
	Light   PointLight
	Lit     bool // Light attached and casting
}

// DayNightCycle rotates the sun and moon around the X axis and swaps which
// of the two is visible when the sun crosses the horizon.
type DayNightCycle struct {
	Angle float32
	Speed float32
	Sun   CelestialBody
	Moon  CelestialBody
}

// NewDayNightCycle creates a cycle starting at noon.
func NewDayNightCycle() *DayNightCycle {
	return &DayNightCycle{
		Speed: OrbitSpeed,
		Sun: CelestialBody{
			Name:    "sun",
			Rest:    mgl32.Vec3{0, OrbitRadius, 0},
			Visible: true,
			Lit:     true,
			Light:   PointLight{Color: ColorFromHex(SunColor), Intensity: SunIntensity},
		},
		Moon: CelestialBody{
			Name:  "moon",
			Rest:  mgl32.Vec3{0, -OrbitRadius, 0},
			Light: PointLight{Color: ColorFromHex(MoonColor), Intensity: MoonIntensity},
		},
	}
}

// Animate advances the orbit by one tick.
func (c *DayNightCycle) Animate() {
	c.Angle += c.Speed
}

// LightCheck swaps sun and moon once the sun has crossed the horizon.
func (c *DayNightCycle) LightCheck() {
	sunY := c.SunPosition().Y()

	if sunY <= HorizonThreshold && !c.Moon.Visible {
		c.Sun.Visible, c.Sun.Lit = false, false
		c.Moon.Visible, c.Moon.Lit = true, true
	} else if sunY >= HorizonThreshold && !c.Sun.Visible {
		c.Sun.Visible, c.Sun.Lit = true, true
		c.Moon.Visible, c.Moon.Lit = false, false
	}
}

// Update runs one tick: animate, then check the horizon.
func (c *DayNightCycle) Update() {
	c.Animate()
	c.LightCheck()
}

// SunPosition returns the sun's world position.
func (c *DayNightCycle) SunPosition() mgl32.Vec3 {
	return c.position(c.Sun.Rest)
}

// MoonPosition returns the moon's world position.
func (c *DayNightCycle) MoonPosition() mgl32.Vec3 {
	return c.position(c.Moon.Rest)
}

func (c *DayNightCycle) position(rest mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Rotate3DX(c.Angle).Mul3x1(rest)
}

// IsDay reports whether the sun is the visible body.
func (c *DayNightCycle) IsDay() bool {
	return c.Sun.Visible
}

// ActiveLight returns the casting light positioned in the world, and the
// unit direction from the origin toward it. ok is false when neither body
// is lit.
func (c *DayNightCycle) ActiveLight() (light PointLight, dir mgl32.Vec3, ok bool) {
	var pos mgl32.Vec3
	switch {
	case c.Sun.Lit:
		light, pos = c.Sun.Light, c.SunPosition()
	case c.Moon.Lit:
		light, pos = c.Moon.Light, c.MoonPosition()
	default:
		return PointLight{}, mgl32.Vec3{}, false
	}

	light.Position = pos
	return light, pos.Normalize(), true
}
