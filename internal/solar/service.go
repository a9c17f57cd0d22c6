// Package solar builds per-day tables of solar and lunar events: rise and
// set times, twilights, photographer's hours, moon phase and day length.
package solar

import (
	"log/slog"
	"math"
	"time"

	"github.com/sj14/astral/pkg/astral"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/sky"
)

// DayEvents holds every event computed for one calendar day. Times are
// RFC 3339 UTC strings; empty means the event does not occur that day
// (polar day/night, or the moon staying up or down).
type DayEvents struct {
	Date                      string  `json:"date"`
	Sunrise                   string  `json:"sunrise,omitempty"`
	Sunset                    string  `json:"sunset,omitempty"`
	SolarNoon                 string  `json:"solarNoon,omitempty"`
	GoldenHourMorningStart    string  `json:"goldenHourMorningStart,omitempty"`
	GoldenHourMorningEnd      string  `json:"goldenHourMorningEnd,omitempty"`
	GoldenHourEveningStart    string  `json:"goldenHourEveningStart,omitempty"`
	GoldenHourEveningEnd      string  `json:"goldenHourEveningEnd,omitempty"`
	BlueHourMorningStart      string  `json:"blueHourMorningStart,omitempty"`
	BlueHourMorningEnd        string  `json:"blueHourMorningEnd,omitempty"`
	BlueHourEveningStart      string  `json:"blueHourEveningStart,omitempty"`
	BlueHourEveningEnd        string  `json:"blueHourEveningEnd,omitempty"`
	AstronomicalTwilightBegin string  `json:"astronomicalTwilightBegin,omitempty"`
	AstronomicalTwilightEnd   string  `json:"astronomicalTwilightEnd,omitempty"`
	NauticalTwilightBegin     string  `json:"nauticalTwilightBegin,omitempty"`
	NauticalTwilightEnd       string  `json:"nauticalTwilightEnd,omitempty"`
	CivilTwilightBegin        string  `json:"civilTwilightBegin,omitempty"`
	CivilTwilightEnd          string  `json:"civilTwilightEnd,omitempty"`
	Moonrise                  string  `json:"moonrise,omitempty"`
	Moonset                   string  `json:"moonset,omitempty"`
	MoonPhase                 string  `json:"moonPhase"`
	MoonIllumination          float64 `json:"moonIllumination"`
	DayLengthHours            float64 `json:"dayLengthHours,omitempty"`
}

// Service computes solar and lunar event tables.
type Service interface {
	// Events returns one DayEvents per day, starting at start, for days
	// consecutive days.
	Events(lat, lon float64, start time.Time, days int) []DayEvents
}

type service struct {
	provider ephem.Provider
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, ephem.NewAnalytic())
}

func NewServiceWithProvider(logger *slog.Logger, provider ephem.Provider) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "solar"),
	}
}

func (s *service) Events(lat, lon float64, start time.Time, days int) []DayEvents {
	observer := astral.Observer{Latitude: lat, Longitude: lon}

	events := make([]DayEvents, 0, days)
	for i := range days {
		date := start.UTC().AddDate(0, 0, i)
		events = append(events, s.dayEvents(observer, lat, lon, date))
	}
	return events
}

const timeLayout = time.RFC3339

func (s *service) dayEvents(observer astral.Observer, lat, lon float64, date time.Time) DayEvents {
	day := DayEvents{Date: date.Format("2006-01-02")}

	sunrise, riseErr := astral.Sunrise(observer, date)
	sunset, setErr := astral.Sunset(observer, date)

	if riseErr == nil {
		day.Sunrise = sunrise.UTC().Format(timeLayout)
		// Golden hour runs until an hour after sunrise, blue hour sits in
		// the 50 to 30 minutes before it.
		day.GoldenHourMorningStart = sunrise.Add(-time.Hour).UTC().Format(timeLayout)
		day.GoldenHourMorningEnd = day.Sunrise
		day.BlueHourMorningStart = sunrise.Add(-50 * time.Minute).UTC().Format(timeLayout)
		day.BlueHourMorningEnd = sunrise.Add(-30 * time.Minute).UTC().Format(timeLayout)
	}
	if setErr == nil {
		day.Sunset = sunset.UTC().Format(timeLayout)
		day.GoldenHourEveningStart = day.Sunset
		day.GoldenHourEveningEnd = sunset.Add(time.Hour).UTC().Format(timeLayout)
		day.BlueHourEveningStart = sunset.Add(30 * time.Minute).UTC().Format(timeLayout)
		day.BlueHourEveningEnd = sunset.Add(50 * time.Minute).UTC().Format(timeLayout)
	}
	if riseErr == nil && setErr == nil {
		noon := sunrise.Add(sunset.Sub(sunrise) / 2)
		day.SolarNoon = noon.UTC().Format(timeLayout)
		day.DayLengthHours = sunset.Sub(sunrise).Hours()
	}

	if dawn, err := astral.Dawn(observer, date, astral.DepressionCivil); err == nil {
		day.CivilTwilightBegin = dawn.UTC().Format(timeLayout)
	}
	if dusk, err := astral.Dusk(observer, date, astral.DepressionCivil); err == nil {
		day.CivilTwilightEnd = dusk.UTC().Format(timeLayout)
	}
	if dawn, err := astral.Dawn(observer, date, astral.DepressionNautical); err == nil {
		day.NauticalTwilightBegin = dawn.UTC().Format(timeLayout)
	}
	if dusk, err := astral.Dusk(observer, date, astral.DepressionNautical); err == nil {
		day.NauticalTwilightEnd = dusk.UTC().Format(timeLayout)
	}
	if dawn, err := astral.Dawn(observer, date, astral.DepressionAstronomical); err == nil {
		day.AstronomicalTwilightBegin = dawn.UTC().Format(timeLayout)
	}
	if dusk, err := astral.Dusk(observer, date, astral.DepressionAstronomical); err == nil {
		day.AstronomicalTwilightEnd = dusk.UTC().Format(timeLayout)
	}

	if rise, ok := s.moonCrossing(lat, lon, date, true); ok {
		day.Moonrise = rise.Format(timeLayout)
	}
	if set, ok := s.moonCrossing(lat, lon, date, false); ok {
		day.Moonset = set.Format(timeLayout)
	}

	noonJD := astro.JulianDay(time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC))
	day.MoonIllumination = sky.MoonIllumination(s.provider, noonJD)
	day.MoonPhase = PhaseName(day.MoonIllumination)

	return day
}

// moonCrossing scans the day in ten minute steps for the moon's altitude
// crossing the horizon, then bisects the bracketing interval down to the
// minute. rising selects an upward crossing.
func (s *service) moonCrossing(lat, lon float64, date time.Time, rising bool) (time.Time, bool) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	const step = 10 * time.Minute
	prev := s.moonAltitude(lat, lon, dayStart)

	for t := dayStart.Add(step); !t.After(dayStart.Add(24 * time.Hour)); t = t.Add(step) {
		alt := s.moonAltitude(lat, lon, t)

		crossed := (rising && prev < 0 && alt >= 0) || (!rising && prev >= 0 && alt < 0)
		if crossed {
			lo, hi := t.Add(-step), t
			for hi.Sub(lo) > time.Minute {
				mid := lo.Add(hi.Sub(lo) / 2)
				midAlt := s.moonAltitude(lat, lon, mid)
				if (rising && midAlt < 0) || (!rising && midAlt >= 0) {
					lo = mid
				} else {
					hi = mid
				}
			}
			return hi.Truncate(time.Minute), true
		}
		prev = alt
	}
	return time.Time{}, false
}

func (s *service) moonAltitude(lat, lon float64, t time.Time) float64 {
	jd := astro.JulianDay(t)

	moon, err := s.provider.EclipticPosition(jd, ephem.Moon)
	if err != nil {
		return math.NaN()
	}

	ra, dec := astro.EclipticToEquatorial(moon.Longitude, moon.Latitude, jd)
	lst := astro.LocalSiderealHours(t, lon)

	ha := astro.Deg2Rad((lst - ra) * 15)
	latRad := astro.Deg2Rad(lat)
	decRad := astro.Deg2Rad(dec)

	sinAlt := math.Sin(decRad)*math.Sin(latRad) + math.Cos(decRad)*math.Cos(latRad)*math.Cos(ha)
	return astro.Rad2Deg(math.Asin(astro.Clamp(sinAlt, -1, 1)))
}

// PhaseName maps an illuminated fraction [0, 1] to the conventional phase
// label.
func PhaseName(illumination float64) string {
	switch {
	case illumination < 0.05:
		return "New Moon"
	case illumination < 0.25:
		return "Waxing Crescent"
	case illumination < 0.35:
		return "First Quarter"
	case illumination < 0.65:
		return "Waxing Gibbous"
	case illumination < 0.75:
		return "Full Moon"
	case illumination < 0.85:
		return "Waning Gibbous"
	case illumination < 0.95:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
