package starmap

import "math"

// Project maps a horizontal position to planar map coordinates using the
// azimuthal equidistant projection. The zenith sits at the origin, the
// horizon is the circle of radius 90, north is +y and east is +x.
func Project(altDeg, azDeg float64) (x, y float64) {
	r := 90 - altDeg
	az := azDeg * math.Pi / 180
	return r * math.Sin(az), r * math.Cos(az)
}
