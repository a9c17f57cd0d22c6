// Package astro provides the time and coordinate math shared by the
// position and chart engines: Julian Day conversion, sidereal time,
// obliquity, and frame transformations.
package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00 TT).
const J2000 = 2451545.0

// JulianDay converts a time.Time (interpreted as UTC) to Julian Day.
// Uses the standard astronomical algorithm with the Gregorian correction.
func JulianDay(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Treat January and February as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// JulianDayToTime converts a Julian Day back to UTC civil time.
func JulianDayToTime(jd float64) time.Time {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e) + f

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	dayInt := math.Floor(day)
	frac := (day - dayInt) * 24
	hour := math.Floor(frac)
	frac = (frac - hour) * 60
	minute := math.Floor(frac)
	sec := (frac - minute) * 60

	return time.Date(int(year), time.Month(int(month)), int(dayInt),
		int(hour), int(minute), int(sec), 0, time.UTC)
}

// GMST calculates Greenwich Mean Sidereal Time in degrees for a UTC time,
// using the IAU 1982 polynomial.
func GMST(t time.Time) float64 {
	return GMSTJD(JulianDay(t))
}

// GMSTJD is GMST for a Julian Day.
func GMSTJD(jd float64) float64 {
	T := (jd - J2000) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(gmst)
}

// LocalSiderealHours returns the Local Sidereal Time in hours for a UTC time
// and an east-positive longitude in degrees.
func LocalSiderealHours(t time.Time, lonDeg float64) float64 {
	lst := GMST(t) + lonDeg
	return Normalize360(lst) / 15.0
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees for a
// Julian Day, using the IAU 1980 linearized model.
func MeanObliquity(jd float64) float64 {
	T := (jd - J2000) / 36525.0
	return 23.4392911 - 0.0130042*T - 1.64e-7*T*T
}

// EclipticToEquatorial converts ecliptic longitude/latitude (degrees) at a
// given Julian Day to right ascension (hours) and declination (degrees).
func EclipticToEquatorial(lonDeg, latDeg, jd float64) (raHours, decDeg float64) {
	eps := Deg2Rad(MeanObliquity(jd))
	lon := Deg2Rad(lonDeg)
	lat := Deg2Rad(latDeg)

	sinDec := math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon)
	dec := math.Asin(Clamp(sinDec, -1, 1))

	y := math.Sin(lon)*math.Cos(eps) - math.Tan(lat)*math.Sin(eps)
	x := math.Cos(lon)
	ra := math.Atan2(y, x)

	return Normalize360(Rad2Deg(ra)) / 15.0, Rad2Deg(dec)
}

// AngularSeparation returns the great-circle separation in degrees between
// two equatorial positions given as (RA hours, Dec degrees).
func AngularSeparation(ra1Hours, dec1Deg, ra2Hours, dec2Deg float64) float64 {
	ra1 := Deg2Rad(ra1Hours * 15)
	dec1 := Deg2Rad(dec1Deg)
	ra2 := Deg2Rad(ra2Hours * 15)
	dec2 := Deg2Rad(dec2Deg)

	cosSep := math.Sin(dec1)*math.Sin(dec2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Cos(ra1-ra2)

	// Clamp against floating rounding before the inverse call.
	return Rad2Deg(math.Acos(Clamp(cosSep, -1, 1)))
}

// Normalize360 wraps an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }
