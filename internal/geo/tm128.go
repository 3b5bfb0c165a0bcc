package geo

import "math"

// TM128 is the legacy planar system the local search API returns mapx/mapy
// in: Bessel 1841 ellipsoid, central meridian 128°E, scale factor 0.9999,
// false easting 400000, false northing 600000.
const (
	besselA = 6377397.155
	besselF = 1.0 / 299.1528128

	tmLon0          = 128.0 * math.Pi / 180.0
	tmScale         = 0.9999
	tmFalseEasting  = 400000.0
	tmFalseNorthing = 600000.0
)

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToWgs84 converts a TM128 planar pair into geographic latitude/longitude in
// degrees. Closed-form inverse transverse-Mercator with a first-order series
// for the footpoint latitude; defined for all finite input.
func ToWgs84(mapx, mapy float64) Coord {
	e2 := 2*besselF - besselF*besselF
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	x := (mapx - tmFalseEasting) / tmScale
	y := (mapy - tmFalseNorthing) / tmScale

	mu := y / (besselA * (1 - e2/4 - 3*e2*e2/64))
	phi1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)

	c1 := e2 * cosPhi1 * cosPhi1 / (1 - e2)
	t1 := math.Tan(phi1) * math.Tan(phi1)
	n1 := besselA / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	r1 := besselA * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	d := x / n1

	latRad := phi1 - (n1*math.Tan(phi1)/r1)*
		(d*d/2-(5+3*t1+10*c1-4*c1*c1)*d*d*d*d/24)
	lngRad := tmLon0 + (d-(1+2*t1+c1)*d*d*d/6)/cosPhi1

	return Coord{
		Lat: latRad * 180 / math.Pi,
		Lng: lngRad * 180 / math.Pi,
	}
}
