// Package geodetic computes reference ellipsoid geometry and converts points
// between geodetic, geocentric Cartesian and spherical coordinates.
//
// All angles are radians and all lengths share the unit of the semi-major
// axis (meters for the built-in ellipsoids).
package geodetic

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Reference identifies one of the well-known reference ellipsoids.
type Reference uint8

const (
	ReferenceGRS80 Reference = iota
	ReferenceWGS84
	ReferencePZ90
)

// Defining constants of the built-in reference ellipsoids.
const (
	// https://en.wikipedia.org/wiki/GRS_80
	GRS80SemiMajor  = 6378137.0
	GRS80Flattening = 1.0 / 298.257222101

	// https://en.wikipedia.org/wiki/World_Geodetic_System
	WGS84SemiMajor  = 6378137.0
	WGS84Flattening = 1.0 / 298.257223563

	// GLONASS reference frame
	PZ90SemiMajor  = 6378136.0
	PZ90Flattening = 1.0 / 298.257839303
)

var references = [...]Ellipsoid{
	ReferenceGRS80: {a: GRS80SemiMajor, f: GRS80Flattening, name: "GRS80"},
	ReferenceWGS84: {a: WGS84SemiMajor, f: WGS84Flattening, name: "WGS84"},
	ReferencePZ90:  {a: PZ90SemiMajor, f: PZ90Flattening, name: "PZ90"},
}

// Pre-initialized reference ellipsoids.
var (
	GRS80 = ReferenceGRS80.Ellipsoid()
	WGS84 = ReferenceWGS84.Ellipsoid()
	PZ90  = ReferencePZ90.Ellipsoid()
)

// ErrUnknownEllipsoid is returned by Lookup for names outside the catalog.
var ErrUnknownEllipsoid = errors.New("unknown reference ellipsoid")

// Ellipsoid returns the reference ellipsoid identified by r. An out of range
// Reference yields the zero Ellipsoid.
func (r Reference) Ellipsoid() Ellipsoid {
	if int(r) >= len(references) {
		return Ellipsoid{}
	}
	return references[r]
}

func (r Reference) String() string {
	if int(r) >= len(references) {
		return fmt.Sprintf("Reference(%d)", uint8(r))
	}
	return references[r].name
}

// References returns all the catalogued reference ellipsoids.
func References() []Reference {
	return []Reference{ReferenceGRS80, ReferenceWGS84, ReferencePZ90}
}

// Lookup returns the catalogued ellipsoid with the given name. Matching
// ignores case, dashes and spaces, so "WGS-84" and "wgs84" are the same.
func Lookup(name string) (Ellipsoid, error) {
	key := strings.NewReplacer("-", "", " ", "", "_", "").Replace(name)
	for _, e := range references {
		if strings.EqualFold(key, e.name) {
			return e, nil
		}
	}
	return Ellipsoid{}, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
}

// Ellipsoid is a reference ellipsoid defined by its semi-major axis and its
// flattening. It is a small immutable value and safe for concurrent use.
//
// The zero value is not a usable ellipsoid. Nothing is validated: a
// non-positive semi-major axis or a flattening of one or more yields NaN or
// meaningless results rather than an error.
type Ellipsoid struct {
	a    float64
	f    float64
	name string
}

// NewEllipsoid returns a user-defined ellipsoid.
//
// Param a is the semi-major axis (equatorial radius), usually in meters.
// Param f is the flattening (a-b)/a.
func NewEllipsoid(a, f float64) Ellipsoid {
	return Ellipsoid{a: a, f: f}
}

// SemiMajor returns a, the equatorial radius.
func (e Ellipsoid) SemiMajor() float64 {
	return e.a
}

// Flattening of the Ellipsoid
func (e Ellipsoid) Flattening() float64 {
	return e.f
}

// Name returns the catalog name, or an empty string for a user-defined
// ellipsoid.
func (e Ellipsoid) Name() string {
	return e.name
}

func (e Ellipsoid) String() string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("Ellipsoid(a=%g, f=1/%g)", e.a, 1/e.f)
}

// EccentricitySquared returns e².
func (e Ellipsoid) EccentricitySquared() float64 {
	return EccentricitySquared(e.f)
}

// ThirdFlattening returns n.
func (e Ellipsoid) ThirdFlattening() float64 {
	return ThirdFlattening(e.f)
}

// SemiMinor returns b, the polar radius.
func (e Ellipsoid) SemiMinor() float64 {
	return SemiMinor(e.a, e.f)
}

// LinearEccentricity returns sqrt(a²-b²).
func (e Ellipsoid) LinearEccentricity() float64 {
	return LinearEccentricity(e.a, e.f)
}

// PolarRadiusOfCurvature returns a²/b.
func (e Ellipsoid) PolarRadiusOfCurvature() float64 {
	return PolarRadiusOfCurvature(e.a, e.f)
}

// MeanEarthRadius returns (2a+b)/3.
func (e Ellipsoid) MeanEarthRadius() float64 {
	return MeanEarthRadius(e.a, e.f)
}

// NormalRadius returns the prime vertical radius of curvature at lat
// (radians).
func (e Ellipsoid) NormalRadius(lat float64) float64 {
	return NormalRadius(e.a, e.f, lat)
}

// MeridionalRadius returns the meridional radius of curvature at lat
// (radians).
func (e Ellipsoid) MeridionalRadius(lat float64) float64 {
	return MeridionalRadius(e.a, e.f, lat)
}

// GeocentricLatitude returns the geocentric latitude of a point on the
// ellipsoid at geodetic latitude lat. Use GeocentricLatitudeAt for points
// off the surface.
func (e Ellipsoid) GeocentricLatitude(lat float64) float64 {
	return GeocentricLatitude(e.f, lat)
}

// GeocentricLatitudeAt returns the geocentric latitude of a point at
// geodetic latitude lat (radians) and ellipsoidal height h.
func (e Ellipsoid) GeocentricLatitudeAt(lat, h float64) float64 {
	rn, slat := normalRadius(e.a, e.f, lat)
	rho := (rn + h) * math.Cos(lat)
	z := (rn*(1-e.EccentricitySquared()) + h) * slat
	return math.Atan(z / rho)
}

// ReducedLatitude returns the parametric latitude at geodetic latitude lat.
func (e Ellipsoid) ReducedLatitude(lat float64) float64 {
	return ReducedLatitude(e.f, lat)
}

// InfinitesimalMeridianArc returns the length of the meridian arc spanning
// dlat radians at latitude lat. Only valid for small dlat; it is not a
// meridian arc integral.
func (e Ellipsoid) InfinitesimalMeridianArc(lat, dlat float64) float64 {
	return e.MeridionalRadius(lat) * dlat
}

// ParallelArcLength returns the length of the arc along the parallel at lat
// spanning dlon radians.
func (e Ellipsoid) ParallelArcLength(lat, dlon float64) float64 {
	return e.NormalRadius(lat) * math.Cos(lat) * dlon
}
