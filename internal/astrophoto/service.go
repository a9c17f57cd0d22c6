// Package astrophoto suggests imaging windows for deep sky objects and
// bright planets: it samples a night in five minute steps and scores each
// instant on target altitude, darkness and moon interference.
package astrophoto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	_ "embed"

	"github.com/sj14/astral/pkg/astral"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/sky"
	"celestialguide/internal/solar"
)

//go:embed targets.json
var targetsJSON []byte

// ErrTargetNotFound reports a target name that matches nothing in the
// catalog.
var ErrTargetNotFound = errors.New("astrophoto: target not found")

// DefaultMinAltitude is the floor below which a target is not considered
// worth imaging.
const DefaultMinAltitude = 30.0

// Target is one entry of the built-in imaging catalog. Planets carry no
// fixed coordinates; their position comes from the ephemeris at plan time.
type Target struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	RAHours    float64  `json:"raHours,omitempty"`
	DecDegrees float64  `json:"decDegrees,omitempty"`
	Magnitude  *float64 `json:"magnitude,omitempty"`
}

// IsPlanet reports whether the target must be resolved via the ephemeris.
func (t Target) IsPlanet() bool { return t.Type == "Planet" }

// TimelinePoint is one five minute sample of the night.
type TimelinePoint struct {
	TimeUTC        string  `json:"timeUtc"`
	Altitude       float64 `json:"altitude"`
	Azimuth        float64 `json:"azimuth"`
	MoonSeparation float64 `json:"moonSeparation"`
	MoonAltitude   float64 `json:"moonAltitude"`
	SunAltitude    float64 `json:"sunAltitude"`
	QualityScore   float64 `json:"qualityScore"`
}

// Plan is the result of scoring a night for one target. The best-time
// fields are zero when the target never clears the minimum altitude, or
// when no astronomical night could be determined.
type Plan struct {
	TargetName             string          `json:"targetName"`
	TargetID               string          `json:"targetId"`
	BestTimeUTC            string          `json:"bestTimeUtc,omitempty"`
	Altitude               float64         `json:"altitude,omitempty"`
	Azimuth                float64         `json:"azimuth,omitempty"`
	MoonPhase              string          `json:"moonPhase"`
	MoonIllumination       float64         `json:"moonIllumination"`
	MoonSeparation         float64         `json:"moonSeparation,omitempty"`
	SunAltitude            float64         `json:"sunAltitude,omitempty"`
	AstronomicalNightStart string          `json:"astronomicalNightStart,omitempty"`
	AstronomicalNightEnd   string          `json:"astronomicalNightEnd,omitempty"`
	Recommendation         string          `json:"recommendation"`
	QualityScore           float64         `json:"qualityScore,omitempty"`
	Timeline               []TimelinePoint `json:"timeline"`
}

// Service plans astrophotography sessions.
type Service interface {
	// Targets lists every catalog entry, deep sky objects first.
	Targets() []Target

	// FindTarget resolves a query against catalog ids and names,
	// case-insensitively.
	FindTarget(query string) (Target, error)

	// Plan scores the night following date (local noon to next noon) for
	// the named target and returns the best imaging time with a sampled
	// timeline.
	Plan(query string, lat, lon float64, date time.Time, minAltitude float64) (Plan, error)
}

type service struct {
	provider ephem.Provider
	targets  []Target
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, ephem.NewAnalytic())
}

func NewServiceWithProvider(logger *slog.Logger, provider ephem.Provider) Service {
	var catalog struct {
		DeepSky []Target `json:"deepSky"`
		Planets []Target `json:"planets"`
	}
	if err := json.Unmarshal(targetsJSON, &catalog); err != nil {
		// The catalog is compiled in; failing to parse it is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("astrophoto: bad embedded catalog: %v", err))
	}

	return &service{
		provider: provider,
		targets:  append(catalog.DeepSky, catalog.Planets...),
		logger:   logger.With("component", "astrophoto"),
	}
}

func (s *service) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

func (s *service) FindTarget(query string) (Target, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, t := range s.targets {
		if strings.ToLower(t.ID) == q || strings.ToLower(t.Name) == q {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("%w: %q", ErrTargetNotFound, query)
}

var planetBodies = map[string]ephem.Body{
	"venus":   ephem.Venus,
	"mars":    ephem.Mars,
	"jupiter": ephem.Jupiter,
	"saturn":  ephem.Saturn,
}

func (s *service) Plan(query string, lat, lon float64, date time.Time, minAltitude float64) (Plan, error) {
	target, err := s.FindTarget(query)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		TargetName: target.Name,
		TargetID:   target.ID,
		MoonPhase:  "Unknown",
		Timeline:   []TimelinePoint{},
	}

	observer := astral.Observer{Latitude: lat, Longitude: lon}
	sunset, sunsetErr := astral.Sunset(observer, date)
	sunrise, sunriseErr := astral.Sunrise(observer, date.AddDate(0, 0, 1))

	// Astronomical night approximated as 90 minutes inside the
	// sunset/sunrise bracket.
	nightStart := sunset.UTC().Add(90 * time.Minute)
	nightEnd := sunrise.UTC().Add(-90 * time.Minute)

	if sunsetErr != nil || sunriseErr != nil || !nightStart.Before(nightEnd) {
		s.logger.Debug("no usable night", "lat", lat, "lon", lon, "date", date.Format("2006-01-02"))
		plan.Recommendation = "Could not determine night times for this location and date"
		return plan, nil
	}

	plan.AstronomicalNightStart = nightStart.Format(time.RFC3339)
	plan.AstronomicalNightEnd = nightEnd.Format(time.RFC3339)

	illumination := sky.MoonIllumination(s.provider, astro.JulianDay(sunset))
	plan.MoonIllumination = round3(illumination)
	plan.MoonPhase = solar.PhaseName(illumination)

	bestScore := -1.0
	var best *TimelinePoint

	for t := nightStart; t.Before(nightEnd); t = t.Add(5 * time.Minute) {
		point, err := s.sample(target, lat, lon, t, minAltitude)
		if err != nil {
			s.logger.Warn("sample failed", "target", target.ID, "time", t, "error", err)
			continue
		}

		plan.Timeline = append(plan.Timeline, point)
		if point.QualityScore > bestScore && point.Altitude > minAltitude {
			bestScore = point.QualityScore
			p := point
			best = &p
		}
	}

	if best == nil {
		plan.Recommendation = fmt.Sprintf("Target does not rise above %.0f° during astronomical night.", minAltitude)
		return plan, nil
	}

	plan.BestTimeUTC = best.TimeUTC
	plan.Altitude = best.Altitude
	plan.Azimuth = best.Azimuth
	plan.MoonSeparation = best.MoonSeparation
	plan.SunAltitude = best.SunAltitude
	plan.QualityScore = best.QualityScore
	plan.Recommendation = recommendation(bestScore)
	return plan, nil
}

// sample computes one timeline point at t.
func (s *service) sample(target Target, lat, lon float64, t time.Time, minAltitude float64) (TimelinePoint, error) {
	jd := astro.JulianDay(t)

	sunPos, err := s.provider.EclipticPosition(jd, ephem.Sun)
	if err != nil {
		return TimelinePoint{}, err
	}
	sunRA, sunDec := astro.EclipticToEquatorial(sunPos.Longitude, sunPos.Latitude, jd)
	sunAlt, _ := altAz(sunRA, sunDec, lat, lon, t)

	moonPos, err := s.provider.EclipticPosition(jd, ephem.Moon)
	if err != nil {
		return TimelinePoint{}, err
	}
	moonRA, moonDec := astro.EclipticToEquatorial(moonPos.Longitude, moonPos.Latitude, jd)
	moonAlt, _ := altAz(moonRA, moonDec, lat, lon, t)

	raHours, decDeg := target.RAHours, target.DecDegrees
	if target.IsPlanet() {
		body, ok := planetBodies[target.ID]
		if !ok {
			return TimelinePoint{}, fmt.Errorf("%w: %q", ephem.ErrUnknownBody, target.ID)
		}
		pos, err := s.provider.EclipticPosition(jd, body)
		if err != nil {
			return TimelinePoint{}, err
		}
		raHours, decDeg = astro.EclipticToEquatorial(pos.Longitude, pos.Latitude, jd)
	}
	alt, az := altAz(raHours, decDeg, lat, lon, t)

	moonSep := astro.AngularSeparation(raHours, decDeg, moonRA, moonDec)

	score := 0.0
	if alt > minAltitude {
		score += math.Min(100, alt/60*100) * 0.4
	}
	if sunAlt < -18 {
		score += 100 * 0.2
	}
	score += math.Min(100, moonSep/90*100) * 0.2
	if moonAlt < 0 {
		score += 100 * 0.2
	} else {
		score += math.Max(0, 100-moonAlt*2) * 0.2
	}

	return TimelinePoint{
		TimeUTC:        t.Format(time.RFC3339),
		Altitude:       round2(alt),
		Azimuth:        round2(az),
		MoonSeparation: round2(moonSep),
		MoonAltitude:   round2(moonAlt),
		SunAltitude:    round2(sunAlt),
		QualityScore:   round2(score),
	}, nil
}

// altAz converts an equatorial position to horizontal coordinates at t.
func altAz(raHours, decDeg, lat, lon float64, t time.Time) (alt, az float64) {
	lst := astro.LocalSiderealHours(t, lon)
	ha := astro.Deg2Rad((lst - raHours) * 15)
	latRad := astro.Deg2Rad(lat)
	decRad := astro.Deg2Rad(decDeg)

	sinAlt := math.Sin(decRad)*math.Sin(latRad) + math.Cos(decRad)*math.Cos(latRad)*math.Cos(ha)
	altRad := math.Asin(astro.Clamp(sinAlt, -1, 1))

	cosAlt := math.Cos(altRad)
	if math.Abs(cosAlt) < 1e-10 {
		cosAlt = 1e-10
	}
	sinAz := -math.Cos(decRad) * math.Sin(ha) / cosAlt
	cosAz := (math.Sin(decRad) - math.Sin(altRad)*math.Sin(latRad)) / (cosAlt * math.Cos(latRad))

	return astro.Rad2Deg(altRad), astro.Normalize360(astro.Rad2Deg(math.Atan2(sinAz, cosAz)))
}

func recommendation(score float64) string {
	switch {
	case score > 80:
		return "Excellent imaging conditions!"
	case score > 60:
		return "Good imaging conditions."
	case score > 40:
		return "Fair imaging conditions - some compromises needed."
	default:
		return "Poor imaging conditions - consider another date."
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
