package geodetic

import "math"

// CartesianToSpherical converts geocentric Cartesian coordinates to
// geocentric spherical ones.
//
// Out r is the distance from the origin.
// Out lat is the geocentric latitude in [-π/2, π/2] (radians).
// Out lon is the longitude in [-π, π] (radians).
//
// The origin maps to r = lat = lon = 0.
func CartesianToSpherical(x, y, z float64) (r, lat, lon float64) {
	p2 := x*x + y*y
	r = math.Sqrt(p2 + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	lat = math.Atan2(z, math.Sqrt(p2))
	if p2 != 0 {
		lon = math.Atan2(y, x)
	}
	return r, lat, lon
}

// SphericalToCartesian converts geocentric spherical coordinates (radius,
// geocentric latitude and longitude in radians) to Cartesian ones.
func SphericalToCartesian(r, lat, lon float64) (x, y, z float64) {
	sf, cf := math.Sincos(lat)
	sl, cl := math.Sincos(lon)
	x = r * cf * cl
	y = r * cf * sl
	z = r * sf
	return x, y, z
}

// Spherical returns the geocentric spherical form of p.
func (p CartesianPoint) Spherical() SphericalPoint {
	var s SphericalPoint
	s.R, s.Lat, s.Lon = CartesianToSpherical(p.X, p.Y, p.Z)
	return s
}

// Cartesian returns the geocentric Cartesian form of p.
func (p SphericalPoint) Cartesian() CartesianPoint {
	var c CartesianPoint
	c.X, c.Y, c.Z = SphericalToCartesian(p.R, p.Lat, p.Lon)
	return c
}
