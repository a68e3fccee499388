package geodetic

import "math"

// Angle conversion factors. Multiply degrees by Degree to get radians and
// radians by Radian to get degrees.
const (
	TwoPi  = 2 * math.Pi
	Degree = math.Pi / 180
	Radian = 180 / math.Pi

	// MilliArcsecond in radians
	MilliArcsecond = 4.847309743e-9
)

// NormAngle maps an angle in radians into [0, 2π).
func NormAngle(rad float64) float64 {
	rad = math.Mod(rad, TwoPi)
	if rad < 0 {
		rad += TwoPi
	}
	// math.Mod of a tiny negative can round up to exactly 2π
	if rad >= TwoPi {
		rad = 0
	}
	return rad
}
