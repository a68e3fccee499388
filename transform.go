package geodetic

import "math"

// PoleThreshold scales a² to give the squared distance from the polar axis
// below which CartesianToGeodetic treats a point as lying on the axis.
//
// It is an absolute heuristic carried over from Fukushima's algorithm and has
// not been derived for ellipsoids far from Earth size.
const PoleThreshold = 1e-32

// GeodeticToCartesian converts geodetic coordinates to geocentric Cartesian
// coordinates.
//
// Param lat is the geodetic latitude in [-π/2, π/2] (radians).
// Param lon is the longitude in (-π, π] (radians).
// Param h is the ellipsoidal height (unit of the semi-major axis).
func (e Ellipsoid) GeodeticToCartesian(lat, lon, h float64) (x, y, z float64) {
	e2 := e.EccentricitySquared()
	rn, sf := normalRadius(e.a, e.f, lat)
	cf := math.Cos(lat)
	sl, cl := math.Sincos(lon)

	x = (rn + h) * cf * cl
	y = (rn + h) * cf * sl
	z = ((1-e2)*rn + h) * sf
	return x, y, z
}

// CartesianToGeodetic converts geocentric Cartesian coordinates to geodetic
// latitude, longitude (radians) and ellipsoidal height.
//
// The conversion is Fukushima's non-iterative method: a single Newton step
// on the latitude equation, corrected with Halley's third order term, which
// reaches near machine precision for terrestrial and orbital points.
//
// Fukushima, T., "Transformation from Cartesian to geodetic coordinates
// accelerated by Halley's method", J. Geodesy (2006) 79(12): 689-693.
//
// On the polar axis the longitude is 0 and the latitude ±π/2.
func (e Ellipsoid) CartesianToGeodetic(x, y, z float64) (lat, lon, h float64) {
	a := e.a
	e2 := e.EccentricitySquared()
	ep2 := 1 - e2
	ep := math.Sqrt(ep2)

	// squared distance from the polar axis
	p2 := x*x + y*y
	if p2 != 0 {
		lon = math.Atan2(y, x)
	}
	absz := math.Abs(z)

	if p2 > a*a*PoleThreshold {
		p := math.Sqrt(p2)

		// normalize
		s0 := absz / a
		pn := p / a
		zp := ep * s0

		// Newton correction factors
		c0 := ep * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zp*a03 + e2*s03
		f0 := pn*a03 - e2*c03

		// Halley correction factor
		b0 := 1.5 * e2 * e2 * s02 * c02 * pn * (a0 - ep)
		s1 := d0*f0 - b0*s0
		cp := ep * (f0*f0 - b0*c0)

		lat = math.Atan(s1 / cp)
		s12 := s1 * s1
		cp2 := cp * cp
		h = (p*cp + absz*s1 - a*math.Sqrt(ep2*s12+cp2)) / math.Sqrt(s12+cp2)
	} else {
		lat = math.Pi / 2
		h = absz - a*ep
	}

	if z < 0 {
		lat = -lat
	}
	return lat, lon, h
}

// ToCartesian converts a geodetic point to geocentric Cartesian coordinates.
func (e Ellipsoid) ToCartesian(p GeodeticPoint) CartesianPoint {
	var c CartesianPoint
	c.X, c.Y, c.Z = e.GeodeticToCartesian(p.Lat, p.Lon, p.Height)
	return c
}

// ToGeodetic converts a geocentric Cartesian point to geodetic coordinates.
func (e Ellipsoid) ToGeodetic(p CartesianPoint) GeodeticPoint {
	var g GeodeticPoint
	g.Lat, g.Lon, g.Height = e.CartesianToGeodetic(p.X, p.Y, p.Z)
	return g
}

// ToCartesianAll appends the Cartesian form of every point in src to dst and
// returns the extended slice. Passing dst[:0] of a large enough buffer
// avoids allocation.
func (e Ellipsoid) ToCartesianAll(dst []CartesianPoint, src []GeodeticPoint) []CartesianPoint {
	for _, p := range src {
		dst = append(dst, e.ToCartesian(p))
	}
	return dst
}

// ToGeodeticAll appends the geodetic form of every point in src to dst and
// returns the extended slice.
func (e Ellipsoid) ToGeodeticAll(dst []GeodeticPoint, src []CartesianPoint) []GeodeticPoint {
	for _, p := range src {
		dst = append(dst, e.ToGeodetic(p))
	}
	return dst
}
