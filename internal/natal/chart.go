// Package natal computes natal charts: house cusps and angles, ecliptic
// planet positions, and the aspects between them.
package natal

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/types"
)

// ErrInvalidTimezone is returned when an IANA timezone name cannot be
// resolved.
var ErrInvalidTimezone = errors.New("natal: invalid timezone")

// chartBodies is the calculation order. The Mean Node is included in the
// chart but excluded from the aspect scan.
var chartBodies = []ephem.Body{
	ephem.Sun, ephem.Moon, ephem.Mercury, ephem.Venus, ephem.Mars,
	ephem.Jupiter, ephem.Saturn, ephem.Uranus, ephem.Neptune, ephem.Pluto,
	ephem.MeanNode,
}

var majorBodies = chartBodies[:10]

// Bodies names the chart points in calculation order.
func Bodies() []string {
	out := make([]string, len(chartBodies))
	for i, body := range chartBodies {
		out[i] = string(body)
	}
	return out
}

// Service computes natal charts and planetary motion scans.
type Service interface {
	// Chart computes the complete natal chart for a local birth time in the
	// given IANA timezone.
	Chart(local time.Time, tzName string, lat, lon float64, system ephem.HouseSystem) (types.NatalChart, error)

	// RetrogradePeriods scans [start, end] one day at a time and returns the
	// closed retrograde intervals of body. An episode still open at the end
	// of the range is not reported.
	RetrogradePeriods(body ephem.Body, start, end time.Time) ([]types.RetrogradePeriod, error)

	// TransitEvents lists Mercury retrograde boundaries and new/full moons
	// in [start, end], sorted by date.
	TransitEvents(start, end time.Time) ([]TransitEvent, error)
}

type service struct {
	provider ephem.Provider
	logger   *slog.Logger
}

// NewService builds a Service with the built-in ephemeris provider.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, ephem.NewAnalytic())
}

// NewServiceWithProvider builds a Service with an explicit ephemeris
// binding.
func NewServiceWithProvider(logger *slog.Logger, provider ephem.Provider) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "natal"),
	}
}

// JulianDayAt converts a local civil time in an IANA timezone to a Julian
// Day (UT).
func JulianDayAt(local time.Time, tzName string) (float64, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimezone, tzName)
	}

	t := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), 0, loc)
	return astro.JulianDay(t), nil
}

func (s *service) Chart(local time.Time, tzName string, lat, lon float64, system ephem.HouseSystem) (types.NatalChart, error) {
	jd, err := JulianDayAt(local, tzName)
	if err != nil {
		return types.NatalChart{}, err
	}

	houses, err := s.provider.Houses(jd, lat, lon, system)
	if err != nil {
		return types.NatalChart{}, fmt.Errorf("calculating houses: %w", err)
	}

	chart := types.NatalChart{
		Ascendant: SignPosition(houses.Ascendant),
		Midheaven: SignPosition(houses.Midheaven),
		Houses:    make([]types.HouseCusp, 12),
	}
	for i, cusp := range houses.Cusps {
		chart.Houses[i] = types.HouseCusp{
			House:          i + 1,
			ZodiacPosition: SignPosition(cusp),
		}
	}

	longitudes := make(map[ephem.Body]float64, len(chartBodies))
	for _, body := range chartBodies {
		pos, err := s.provider.EclipticPosition(jd, body)
		if err != nil {
			// A single failed body is dropped, not fatal for the chart.
			s.logger.Warn("skipping body", "body", string(body), "error", err)
			continue
		}

		chart.Planets = append(chart.Planets, types.PlanetPosition{
			Name:           string(body),
			ZodiacPosition: SignPosition(pos.Longitude),
			House:          HouseFor(pos.Longitude, houses.Cusps),
			Retrograde:     pos.Speed < 0,
		})
		longitudes[body] = pos.Longitude
	}

	for i, p1 := range majorBodies {
		lon1, ok := longitudes[p1]
		if !ok {
			continue
		}
		for _, p2 := range majorBodies[i+1:] {
			lon2, ok := longitudes[p2]
			if !ok {
				continue
			}
			if aspect, ok := CalculateAspect(lon1, lon2); ok {
				aspect.Planet1 = string(p1)
				aspect.Planet2 = string(p2)
				chart.Aspects = append(chart.Aspects, aspect)
			}
		}
	}

	return chart, nil
}

// HouseFor finds the house whose cusp range contains the longitude, with
// wraparound at 0°/360°. Falls back to house 1 when no range matches, which
// cannot happen for a well formed cusp set.
func HouseFor(longitude float64, cusps [12]float64) int {
	lon := astro.Normalize360(longitude)
	for i := range 12 {
		start := cusps[i]
		end := cusps[(i+1)%12]

		if start > end {
			if lon >= start || lon < end {
				return i + 1
			}
		} else if lon >= start && lon < end {
			return i + 1
		}
	}
	return 1
}
