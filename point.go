package geodetic

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// GeodeticPoint is a position given by geodetic latitude and longitude
// (radians) and the height above the ellipsoid.
type GeodeticPoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// CartesianPoint is a geocentric, right-handed position with Z along the
// polar axis.
type CartesianPoint struct {
	X, Y, Z float64
}

// SphericalPoint is a geocentric spherical position. Lat is the geocentric
// latitude, not the geodetic one.
type SphericalPoint struct {
	R   float64
	Lat float64
	Lon float64
}

// GeodeticFromDegrees builds a GeodeticPoint from latitude and longitude in
// degrees.
func GeodeticFromDegrees(lat, lon, h float64) GeodeticPoint {
	return GeodeticPoint{Lat: lat * Degree, Lon: lon * Degree, Height: h}
}

// LatLng returns the horizontal position of p as an s2.LatLng.
func (p GeodeticPoint) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(p.Lat), Lng: s1.Angle(p.Lon)}
}

// GeodeticFromLatLng builds a GeodeticPoint from an s2.LatLng and a height.
func GeodeticFromLatLng(ll s2.LatLng, h float64) GeodeticPoint {
	return GeodeticPoint{Lat: ll.Lat.Radians(), Lon: ll.Lng.Radians(), Height: h}
}

// OrbPoint returns the horizontal position of p as a (lon, lat) orb.Point in
// degrees.
func (p GeodeticPoint) OrbPoint() orb.Point {
	return orb.Point{p.Lon * Radian, p.Lat * Radian}
}

// GeodeticFromOrb builds a GeodeticPoint from a (lon, lat) orb.Point in
// degrees and a height.
func GeodeticFromOrb(pt orb.Point, h float64) GeodeticPoint {
	return GeodeticFromDegrees(pt.Lat(), pt.Lon(), h)
}

func (p GeodeticPoint) String() string {
	return fmt.Sprintf("(%.9f°, %.9f°, %.4fm)", p.Lat*Radian, p.Lon*Radian, p.Height)
}

func (p CartesianPoint) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

func (p SphericalPoint) String() string {
	return fmt.Sprintf("(%.4f, %.9f°, %.9f°)", p.R, p.Lat*Radian, p.Lon*Radian)
}
