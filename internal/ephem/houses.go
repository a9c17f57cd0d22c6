package ephem

import (
	"fmt"
	"math"

	"celestialguide/internal/astro"
)

// Houses implements Provider. Quadrant systems (Placidus, Koch) degenerate
// above the polar circles, where some ecliptic degrees never rise; there the
// calculation falls back to Porphyry, which divides the arcs between the
// angles proportionally and stays defined at any latitude.
func (a *Analytic) Houses(jd float64, latDeg, lonDeg float64, system HouseSystem) (Houses, error) {
	theta := astro.Normalize360(astro.GMSTJD(jd) + lonDeg) // ARMC, degrees
	eps := astro.MeanObliquity(jd)

	mc := midheaven(theta, eps)
	asc := ascendant(theta, eps, latDeg, mc)

	h := Houses{Ascendant: asc, Midheaven: mc}

	switch system {
	case Equal:
		for i := range 12 {
			h.Cusps[i] = astro.Normalize360(asc + float64(i)*30)
		}
	case WholeSign:
		start := math.Floor(asc/30) * 30
		for i := range 12 {
			h.Cusps[i] = astro.Normalize360(start + float64(i)*30)
		}
	case Placidus:
		if aboveHouseLimit(latDeg, eps) {
			porphyry(&h, asc, mc)
			break
		}
		c11, ok11 := placidusCusp(theta, latDeg, jd, mc, 1.0/3.0, true)
		c12, ok12 := placidusCusp(theta, latDeg, jd, mc, 2.0/3.0, true)
		c2, ok2 := placidusCusp(theta, latDeg, jd, mc, 2.0/3.0, false)
		c3, ok3 := placidusCusp(theta, latDeg, jd, mc, 1.0/3.0, false)
		if !ok11 || !ok12 || !ok2 || !ok3 {
			porphyry(&h, asc, mc)
			break
		}
		quadrant(&h, asc, mc, c11, c12, c2, c3)
	case Koch:
		if aboveHouseLimit(latDeg, eps) {
			porphyry(&h, asc, mc)
			break
		}
		_, decMC := astro.EclipticToEquatorial(mc, 0, jd)
		x := math.Tan(astro.Deg2Rad(latDeg)) * math.Tan(astro.Deg2Rad(decMC))
		if math.Abs(x) >= 1 {
			porphyry(&h, asc, mc)
			break
		}
		ad := astro.Rad2Deg(math.Asin(x))
		sa := 90 + ad // diurnal semi-arc of the culminating degree
		c11 := ascendant(astro.Normalize360(theta-2*sa/3), eps, latDeg, mc)
		c12 := ascendant(astro.Normalize360(theta-sa/3), eps, latDeg, mc)
		c2 := ascendant(astro.Normalize360(theta+sa/3), eps, latDeg, mc)
		c3 := ascendant(astro.Normalize360(theta+2*sa/3), eps, latDeg, mc)
		quadrant(&h, asc, mc, c11, c12, c2, c3)
	case Regiomontanus:
		c11 := houseCircleCusp(theta, eps, latDeg, mc, equatorPoint(theta+30))
		c12 := houseCircleCusp(theta, eps, latDeg, mc, equatorPoint(theta+60))
		c2 := houseCircleCusp(theta, eps, latDeg, mc, equatorPoint(theta+120))
		c3 := houseCircleCusp(theta, eps, latDeg, mc, equatorPoint(theta+150))
		quadrant(&h, asc, mc, c11, c12, c2, c3)
	case Campanus:
		c11 := houseCircleCusp(theta, eps, latDeg, mc, primeVerticalPoint(theta, latDeg, 60))
		c12 := houseCircleCusp(theta, eps, latDeg, mc, primeVerticalPoint(theta, latDeg, 30))
		c2 := houseCircleCusp(theta, eps, latDeg, mc, primeVerticalPoint(theta, latDeg, -30))
		c3 := houseCircleCusp(theta, eps, latDeg, mc, primeVerticalPoint(theta, latDeg, -60))
		quadrant(&h, asc, mc, c11, c12, c2, c3)
	default:
		return Houses{}, fmt.Errorf("unknown house system %q", system)
	}

	return h, nil
}

// midheaven returns the ecliptic longitude on the meridian for ARMC theta.
func midheaven(theta, eps float64) float64 {
	t := astro.Deg2Rad(theta)
	lam := math.Atan2(math.Sin(t), math.Cos(t)*math.Cos(astro.Deg2Rad(eps)))
	return astro.Normalize360(astro.Rad2Deg(lam))
}

// ascendant returns the ecliptic longitude rising on the eastern horizon for
// ARMC theta. The Ascendant is always within the half turn east of mc.
func ascendant(theta, eps, latDeg, mc float64) float64 {
	t := astro.Deg2Rad(theta)
	e := astro.Deg2Rad(eps)
	phi := astro.Deg2Rad(latDeg)

	lam := math.Atan2(math.Cos(t), -(math.Sin(t)*math.Cos(e) + math.Tan(phi)*math.Sin(e)))
	asc := astro.Normalize360(astro.Rad2Deg(lam))
	if astro.Normalize360(asc-mc) >= 180 {
		asc = astro.Normalize360(asc + 180)
	}
	return asc
}

// aboveHouseLimit reports whether latDeg is beyond the polar circle, where
// time-based quadrant systems are undefined.
func aboveHouseLimit(latDeg, eps float64) bool {
	return math.Abs(latDeg) >= 90-eps
}

// porphyry trisects the two eastern quadrants between the angles and fills
// the west by opposition.
func porphyry(h *Houses, asc, mc float64) {
	upper := astro.Normalize360(asc - mc)       // MC -> Asc
	lower := astro.Normalize360(mc + 180 - asc) // Asc -> IC
	quadrant(h, asc, mc,
		astro.Normalize360(mc+upper/3),
		astro.Normalize360(mc+2*upper/3),
		astro.Normalize360(asc+lower/3),
		astro.Normalize360(asc+2*lower/3))
}

// quadrant fills the cusp array from the four computed intermediate cusps;
// houses 4 through 9 oppose houses 10 through 3.
func quadrant(h *Houses, asc, mc, c11, c12, c2, c3 float64) {
	h.Cusps[0] = asc
	h.Cusps[1] = c2
	h.Cusps[2] = c3
	h.Cusps[9] = mc
	h.Cusps[10] = c11
	h.Cusps[11] = c12
	for i := 3; i <= 8; i++ {
		h.Cusps[i] = astro.Normalize360(h.Cusps[(i+6)%12] + 180)
	}
}

// placidusCusp solves for the ecliptic longitude whose meridian distance east
// of the ARMC equals the given fraction of its own semi-arc. diurnal selects
// the pair of cusps above the horizon (11 and 12); otherwise the target is
// measured from the IC (cusps 2 and 3). Root-finding is a coarse scan
// followed by bisection.
func placidusCusp(theta, latDeg, jd, mc, frac float64, diurnal bool) (float64, bool) {
	tanLat := math.Tan(astro.Deg2Rad(latDeg))

	g := func(lam float64) float64 {
		raHours, dec := astro.EclipticToEquatorial(astro.Normalize360(lam), 0, jd)
		md := astro.Normalize360(raHours*15 - theta)
		ad := astro.Rad2Deg(math.Asin(astro.Clamp(tanLat*math.Tan(astro.Deg2Rad(dec)), -1, 1)))
		if diurnal {
			return md - frac*(90+ad)
		}
		return md - (180 - frac*(90-ad))
	}

	// The diurnal cusps sit in the quadrant between MC and Asc, the
	// nocturnal ones between Asc and IC. Scan the relevant quadrant,
	// offset east of the MC in ecliptic longitude, for a sign change.
	lo, hi := 3.0, 95.0
	if !diurnal {
		lo, hi = 85.0, 177.0
	}

	prevLam, prev := 0.0, 0.0
	found := false
	for off := lo; off <= hi; off++ {
		lam := mc + off
		v := g(lam)
		if off > lo && prev*v <= 0 {
			lo, hi = prevLam, lam
			found = true
			break
		}
		prevLam, prev = lam, v
	}
	if !found {
		return 0, false
	}

	for range 60 {
		mid := (lo + hi) / 2
		if g(lo)*g(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return astro.Normalize360((lo + hi) / 2), true
}

// equatorPoint returns the unit vector of the celestial equator point at
// right ascension ra degrees, in equatorial rectangular coordinates.
func equatorPoint(ra float64) [3]float64 {
	r := astro.Deg2Rad(astro.Normalize360(ra))
	return [3]float64{math.Cos(r), math.Sin(r), 0}
}

// primeVerticalPoint returns the unit vector at altitude gamma degrees above
// the east point on the prime vertical, for an observer at latitude latDeg
// with ARMC theta.
func primeVerticalPoint(theta, latDeg, gamma float64) [3]float64 {
	t := astro.Deg2Rad(theta)
	phi := astro.Deg2Rad(latDeg)
	g := astro.Deg2Rad(gamma)

	east := [3]float64{-math.Sin(t), math.Cos(t), 0}
	zenith := [3]float64{math.Cos(phi) * math.Cos(t), math.Cos(phi) * math.Sin(t), math.Sin(phi)}

	return [3]float64{
		math.Cos(g)*east[0] + math.Sin(g)*zenith[0],
		math.Cos(g)*east[1] + math.Sin(g)*zenith[1],
		math.Cos(g)*east[2] + math.Sin(g)*zenith[2],
	}
}

// houseCircleCusp intersects the great circle through the north and south
// points of the horizon and the given direction q with the ecliptic, and
// returns the intersection east of the meridian.
func houseCircleCusp(theta, eps, latDeg, mc float64, q [3]float64) float64 {
	t := astro.Deg2Rad(theta)
	phi := astro.Deg2Rad(latDeg)
	e := astro.Deg2Rad(eps)

	// North point of the horizon.
	a := [3]float64{-math.Sin(phi) * math.Cos(t), -math.Sin(phi) * math.Sin(t), math.Cos(phi)}

	// Normal of the house circle plane.
	n := [3]float64{
		a[1]*q[2] - a[2]*q[1],
		a[2]*q[0] - a[0]*q[2],
		a[0]*q[1] - a[1]*q[0],
	}

	lam := astro.Normalize360(astro.Rad2Deg(math.Atan2(-n[0], n[1]*math.Cos(e)+n[2]*math.Sin(e))))
	if astro.Normalize360(lam-mc) >= 180 {
		lam = astro.Normalize360(lam + 180)
	}
	return lam
}
