package geodetic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ENU is a displacement in the East-North-Up frame tangent to the ellipsoid
// at some origin.
type ENU struct {
	E, N, U float64
}

// AzEl returns the azimuth (clockwise from north, in [0, 2π)), the
// elevation above the local horizon (radians) and the length of enu.
func AzEl(enu ENU) (az, el, dist float64) {
	rho := math.Hypot(enu.E, enu.N)
	az = NormAngle(math.Atan2(enu.E, enu.N))
	el = math.Atan(enu.U / rho)
	dist = math.Sqrt(rho*rho + enu.U*enu.U)
	return az, el, dist
}

// AzElPartials is AzEl that also returns the partial derivatives of the
// azimuth and of the elevation with respect to the (E, N, U) components.
// Both are undefined straight up or down, where rho is zero.
func AzElPartials(enu ENU) (az, el, dist float64, dAz, dEl [3]float64) {
	az, el, dist = AzEl(enu)

	e, n, u := enu.E, enu.N, enu.U
	rho2 := e*e + n*n
	rho := math.Sqrt(rho2)
	dAz = [3]float64{n / rho2, -e / rho2, 0}

	r2 := rho2 + u*u
	dEl = [3]float64{-e * u / rho / r2, -n * u / rho / r2, rho / r2}
	return az, el, dist, dAz, dEl
}

// enuRotation returns the matrix taking a geocentric displacement into the
// local frame at geodetic latitude lat and longitude lon.
func enuRotation(lat, lon float64) *mat.Dense {
	sf, cf := math.Sincos(lat)
	sl, cl := math.Sincos(lon)
	return mat.NewDense(3, 3, []float64{
		-sl, cl, 0,
		-sf * cl, -sf * sl, cf,
		cf * cl, cf * sl, sf,
	})
}

// ENU returns the displacement from origin to target expressed in the
// East-North-Up frame of origin.
func (e Ellipsoid) ENU(origin GeodeticPoint, target CartesianPoint) ENU {
	o := e.ToCartesian(origin)
	d := mat.NewVecDense(3, []float64{target.X - o.X, target.Y - o.Y, target.Z - o.Z})

	var v mat.VecDense
	v.MulVec(enuRotation(origin.Lat, origin.Lon), d)
	return ENU{E: v.AtVec(0), N: v.AtVec(1), U: v.AtVec(2)}
}

// Cartesian returns the geocentric position reached by moving enu away from
// origin.
func (enu ENU) Cartesian(e Ellipsoid, origin GeodeticPoint) CartesianPoint {
	o := e.ToCartesian(origin)
	var v mat.VecDense
	v.MulVec(enuRotation(origin.Lat, origin.Lon).T(), mat.NewVecDense(3, []float64{enu.E, enu.N, enu.U}))
	return CartesianPoint{X: o.X + v.AtVec(0), Y: o.Y + v.AtVec(1), Z: o.Z + v.AtVec(2)}
}

// LookAngles returns the azimuth, elevation and range of target seen from
// origin.
func (e Ellipsoid) LookAngles(origin GeodeticPoint, target CartesianPoint) (az, el, dist float64) {
	return AzEl(e.ENU(origin, target))
}
