package sky

import (
	"math"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/types"
)

// bodyInfo carries the approximate apparent magnitude and display color for
// each body the map renderer draws.
type bodyInfo struct {
	body      ephem.Body
	magnitude float64
	color     string
}

var bodyTable = []bodyInfo{
	{ephem.Sun, -26.7, "gold"},
	{ephem.Moon, -12.7, "lightgray"},
	{ephem.Mercury, 0.0, "lightgray"},
	{ephem.Venus, -4.0, "lightyellow"},
	{ephem.Mars, 0.5, "orangered"},
	{ephem.Jupiter, -2.0, "wheat"},
	{ephem.Saturn, 0.5, "khaki"},
	{ephem.Uranus, 5.7, "lightblue"},
	{ephem.Neptune, 7.8, "cornflowerblue"},
	{ephem.Pluto, 14.0, "slategray"},
}

func (s *service) BodyPositions(obs types.Observer) []types.BodyPosition {
	jd := astro.JulianDay(obs.Time)

	positions := make([]types.BodyPosition, 0, len(bodyTable))
	for _, info := range bodyTable {
		ecl, err := s.provider.EclipticPosition(jd, info.body)
		if err != nil {
			// A body missing from the ephemeris is omitted, not an error.
			s.logger.Debug("body not in ephemeris", "body", string(info.body))
			continue
		}

		ra, dec := astro.EclipticToEquatorial(ecl.Longitude, ecl.Latitude, jd)
		alt, az := s.topocentric(ra, dec, obs)

		pos := types.BodyPosition{
			Name:      string(info.body),
			Altitude:  alt,
			Azimuth:   az,
			Visible:   alt > s.minAltitude,
			Magnitude: info.magnitude,
			Color:     info.color,
		}
		if info.body == ephem.Moon {
			pos.Illumination = MoonIllumination(s.provider, jd)
		}

		positions = append(positions, pos)
	}
	return positions
}

// MoonIllumination returns the sunlit fraction of the Moon's disc [0, 1],
// derived from the Sun-Moon elongation.
func MoonIllumination(provider ephem.Provider, jd float64) float64 {
	sun, err := provider.EclipticPosition(jd, ephem.Sun)
	if err != nil {
		return 0
	}
	moon, err := provider.EclipticPosition(jd, ephem.Moon)
	if err != nil {
		return 0
	}

	elong := math.Acos(astro.Clamp(
		math.Cos(astro.Deg2Rad(moon.Latitude))*math.Cos(astro.Deg2Rad(moon.Longitude-sun.Longitude)),
		-1, 1))
	return (1 - math.Cos(elong)) / 2
}
