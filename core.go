package geodetic

import "math"

// The functions in this file take the two defining parameters of an
// ellipsoid, the semi-major axis a and the flattening f, directly. They
// perform no validation. Lengths are returned in the unit of a.

// EccentricitySquared returns the squared first eccentricity
// e² = (a²-b²)/a² = (2-f)f.
func EccentricitySquared(f float64) float64 {
	return (2 - f) * f
}

// ThirdFlattening returns n = (a-b)/(a+b) = f/(2-f).
func ThirdFlattening(f float64) float64 {
	return f / (2 - f)
}

// SemiMinor returns the semi-minor (polar) axis b = a(1-f).
func SemiMinor(a, f float64) float64 {
	return a * (1 - f)
}

// LinearEccentricity returns E = sqrt(a²-b²).
func LinearEccentricity(a, f float64) float64 {
	b := SemiMinor(a, f)
	return math.Sqrt(a*a - b*b)
}

// PolarRadiusOfCurvature returns c = a²/b.
func PolarRadiusOfCurvature(a, f float64) float64 {
	b := SemiMinor(a, f)
	return a * a / b
}

// MeanEarthRadius returns the IUGG mean radius R1 = (2a+b)/3.
func MeanEarthRadius(a, f float64) float64 {
	return 2*a/3 + SemiMinor(a, f)/3
}

// NormalRadius returns the radius of curvature in the prime vertical, N, at
// the geodetic latitude lat (radians).
func NormalRadius(a, f, lat float64) float64 {
	n, _ := normalRadius(a, f, lat)
	return n
}

// normalRadius is NormalRadius that also hands back sin(lat).
func normalRadius(a, f, lat float64) (n, sinlat float64) {
	sinlat = math.Sin(lat)
	return a / math.Sqrt(1-EccentricitySquared(f)*sinlat*sinlat), sinlat
}

// MeridionalRadius returns the radius of curvature in the meridian, M, at the
// geodetic latitude lat (radians).
func MeridionalRadius(a, f, lat float64) float64 {
	rn, slat := normalRadius(a, f, lat)
	e2 := EccentricitySquared(f)
	return rn * ((1 - e2) / (1 - e2*slat*slat))
}

// GeocentricLatitude converts the geodetic latitude of a point on the
// ellipsoid surface (zero height) to geocentric latitude:
// θ = atan((1-f)² tan φ). Both latitudes agree at the equator and the poles.
func GeocentricLatitude(f, lat float64) float64 {
	return math.Atan((1 - f) * (1 - f) * math.Tan(lat))
}

// ReducedLatitude returns the parametric (reduced) latitude
// β = atan((1-f) tan φ).
func ReducedLatitude(f, lat float64) float64 {
	return math.Atan((1 - f) * math.Tan(lat))
}
