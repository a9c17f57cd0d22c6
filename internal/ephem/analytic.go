package ephem

import (
	"math"

	"celestialguide/internal/astro"
)

// Analytic is the built-in ephemeris binding. The Sun uses the low-precision
// solar theory from Meeus, the Moon a truncated set of the dominant periodic
// terms, and the planets J2000 osculating elements with centennial rates
// (valid roughly 1800-2050, accurate to a few arcminutes). Longitude speed
// is obtained by central difference over one day.
type Analytic struct{}

// NewAnalytic returns the built-in analytic provider.
func NewAnalytic() *Analytic {
	return &Analytic{}
}

// EclipticPosition implements Provider.
func (a *Analytic) EclipticPosition(jd float64, body Body) (EclipticPosition, error) {
	pos, err := a.positionAt(jd, body)
	if err != nil {
		return EclipticPosition{}, err
	}

	before, err := a.positionAt(jd-0.5, body)
	if err != nil {
		return EclipticPosition{}, err
	}
	after, err := a.positionAt(jd+0.5, body)
	if err != nil {
		return EclipticPosition{}, err
	}

	delta := after.Longitude - before.Longitude
	// Unwrap across the 0/360 seam; no body moves 180° in a day.
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	pos.Speed = delta

	return pos, nil
}

func (a *Analytic) positionAt(jd float64, body Body) (EclipticPosition, error) {
	switch body {
	case Sun:
		lon, dist := sunLongitude(jd)
		return EclipticPosition{Longitude: lon, DistanceAU: dist}, nil
	case Moon:
		lon, lat, dist := moonPosition(jd)
		return EclipticPosition{Longitude: lon, Latitude: lat, DistanceAU: dist}, nil
	case MeanNode:
		return EclipticPosition{Longitude: meanNodeLongitude(jd), DistanceAU: moonMeanDistanceAU}, nil
	}

	el, ok := planetElements[body]
	if !ok {
		return EclipticPosition{}, ErrUnknownBody
	}

	px, py, pz := heliocentric(jd, el)
	ex, ey, ez := heliocentric(jd, planetElements[earthKey])

	gx, gy, gz := px-ex, py-ey, pz-ez
	dist := math.Sqrt(gx*gx + gy*gy + gz*gz)

	lon := astro.Normalize360(astro.Rad2Deg(math.Atan2(gy, gx)))
	lat := astro.Rad2Deg(math.Atan2(gz, math.Sqrt(gx*gx+gy*gy)))

	return EclipticPosition{Longitude: lon, Latitude: lat, DistanceAU: dist}, nil
}

// sunLongitude returns the Sun's apparent geocentric ecliptic longitude in
// degrees and its distance in AU (Meeus, Astronomical Algorithms ch. 25).
func sunLongitude(jd float64) (lonDeg, distAU float64) {
	T := (jd - astro.J2000) / 36525.0

	l0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	m := 357.52911 + 35999.05029*T - 0.0001537*T*T
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T

	mRad := astro.Deg2Rad(m)
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(mRad) +
		(0.019993-0.000101*T)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLon := l0 + c
	trueAnom := astro.Deg2Rad(m + c)
	dist := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(trueAnom))

	return astro.Normalize360(trueLon), dist
}

const moonMeanDistanceAU = 0.00257

// moonPosition returns the Moon's geocentric ecliptic longitude and latitude
// in degrees and distance in AU, from the dominant periodic terms of the
// lunar theory.
func moonPosition(jd float64) (lonDeg, latDeg, distAU float64) {
	d := jd - astro.J2000

	// Fundamental arguments, degrees (linear coefficients in deg/day).
	lp := astro.Normalize360(218.3164477 + 13.17639648*d) // mean longitude
	m := astro.Normalize360(357.5291092 + 0.98560028*d)   // solar mean anomaly
	mm := astro.Normalize360(134.9633964 + 13.06499295*d) // lunar mean anomaly
	dd := astro.Normalize360(297.8501921 + 12.19074912*d) // mean elongation
	f := astro.Normalize360(93.2720950 + 13.22935024*d)   // argument of latitude

	mr := astro.Deg2Rad(m)
	mmr := astro.Deg2Rad(mm)
	dr := astro.Deg2Rad(dd)
	fr := astro.Deg2Rad(f)

	lon := lp +
		6.289*math.Sin(mmr) +
		1.274*math.Sin(2*dr-mmr) +
		0.658*math.Sin(2*dr) +
		0.214*math.Sin(2*mmr) -
		0.186*math.Sin(mr) -
		0.114*math.Sin(2*fr)

	lat := 5.128*math.Sin(fr) +
		0.280*math.Sin(mmr+fr) +
		0.277*math.Sin(mmr-fr) +
		0.173*math.Sin(2*dr-fr)

	distKm := 385000.56 - 20905.355*math.Cos(mmr) - 3699.111*math.Cos(2*dr-mmr)
	const auKm = 149597870.7

	return astro.Normalize360(lon), lat, distKm / auKm
}

// meanNodeLongitude returns the mean ascending node of the lunar orbit in
// degrees. The node regresses about 0.053° per day.
func meanNodeLongitude(jd float64) float64 {
	T := (jd - astro.J2000) / 36525.0
	return astro.Normalize360(125.04452 - 1934.136261*T + 0.0020708*T*T)
}

// elements holds J2000 osculating orbital elements and their centennial
// rates: semi-major axis (AU), eccentricity, inclination, mean longitude,
// longitude of perihelion, longitude of ascending node (degrees).
type elements struct {
	a, aDot       float64
	e, eDot       float64
	i, iDot       float64
	l, lDot       float64
	peri, periDot float64
	node, nodeDot float64
}

// earthKey indexes the Earth-Moon barycenter elements used for the
// geocentric reduction; it is not a queryable Body.
const earthKey = Body("earth")

var planetElements = map[Body]elements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	earthKey: {1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0},
	Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	Uranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
	Pluto: {39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818,
		238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482},
}

// heliocentric returns rectangular heliocentric ecliptic coordinates in AU.
func heliocentric(jd float64, el elements) (x, y, z float64) {
	T := (jd - astro.J2000) / 36525.0

	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	i := astro.Deg2Rad(el.i + el.iDot*T)
	l := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	// Argument of perihelion and mean anomaly.
	w := astro.Deg2Rad(peri - node)
	m := astro.Deg2Rad(astro.Normalize360(l - peri))
	omega := astro.Deg2Rad(node)

	ea := solveKepler(m, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	cosW, sinW := math.Cos(w), math.Sin(w)
	cosO, sinO := math.Cos(omega), math.Sin(omega)
	cosI, sinI := math.Cos(i), math.Sin(i)

	x = (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp
	y = (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp
	z = (sinW*sinI)*xp + (cosW*sinI)*yp

	return x, y, z
}

// solveKepler finds the eccentric anomaly for mean anomaly m (radians) and
// eccentricity e by Newton iteration.
func solveKepler(m, e float64) float64 {
	ea := m
	if e > 0.8 {
		ea = math.Pi
	}
	for range 20 {
		delta := (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ea
}
