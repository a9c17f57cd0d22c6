// Package ephem provides ephemeris data for solar-system bodies and
// astrological house cusps.
//
// The Provider interface is the narrow seam the rest of the application
// depends on; Analytic is the built-in binding. A higher-precision binding
// (e.g. one backed by a JPL DE kernel) can be swapped in without touching
// callers.
package ephem

import (
	"errors"
	"fmt"
)

// Body identifies a solar-system body or calculated point.
type Body string

const (
	Sun      Body = "Sun"
	Moon     Body = "Moon"
	Mercury  Body = "Mercury"
	Venus    Body = "Venus"
	Mars     Body = "Mars"
	Jupiter  Body = "Jupiter"
	Saturn   Body = "Saturn"
	Uranus   Body = "Uranus"
	Neptune  Body = "Neptune"
	Pluto    Body = "Pluto"
	MeanNode Body = "North Node"
)

// ErrUnknownBody is returned when a provider has no data for a body.
var ErrUnknownBody = errors.New("ephem: unknown body")

// EclipticPosition is a geocentric position on the ecliptic.
type EclipticPosition struct {
	Longitude  float64 // degrees, [0, 360)
	Latitude   float64 // degrees
	DistanceAU float64 // astronomical units
	Speed      float64 // longitude rate, degrees per day (negative = retrograde)
}

// HouseSystem selects one of the supported house calculation methods.
type HouseSystem string

const (
	Placidus      HouseSystem = "Placidus"
	Koch          HouseSystem = "Koch"
	WholeSign     HouseSystem = "Whole Sign"
	Equal         HouseSystem = "Equal"
	Campanus      HouseSystem = "Campanus"
	Regiomontanus HouseSystem = "Regiomontanus"
)

// HouseSystems lists the supported systems in presentation order.
func HouseSystems() []HouseSystem {
	return []HouseSystem{Placidus, Koch, WholeSign, Equal, Campanus, Regiomontanus}
}

// ParseHouseSystem validates a house system name.
func ParseHouseSystem(name string) (HouseSystem, error) {
	for _, hs := range HouseSystems() {
		if string(hs) == name {
			return hs, nil
		}
	}
	return "", fmt.Errorf("unknown house system %q", name)
}

// Houses holds the cusps and angles returned by a house calculation.
type Houses struct {
	Cusps     [12]float64 // absolute ecliptic degrees, cusp 1 first
	Ascendant float64
	Midheaven float64
}

// Provider supplies geocentric ecliptic positions and house cusps at
// sub-degree precision. Implementations must be safe for concurrent use.
type Provider interface {
	// EclipticPosition returns the geocentric ecliptic position of body at
	// the given Julian Day (UT). Returns ErrUnknownBody for bodies the
	// provider has no theory for.
	EclipticPosition(jd float64, body Body) (EclipticPosition, error)

	// Houses returns the 12 house cusps plus Ascendant and Midheaven for an
	// observer at the given geographic latitude and longitude (degrees,
	// east positive).
	Houses(jd float64, latDeg, lonDeg float64, system HouseSystem) (Houses, error)
}
