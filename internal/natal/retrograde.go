package natal

import (
	"fmt"
	"sort"
	"time"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/types"
)

const dateLayout = "2006-01-02"

func (s *service) RetrogradePeriods(body ephem.Body, start, end time.Time) ([]types.RetrogradePeriod, error) {
	jdStart := astro.JulianDay(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC))
	jdEnd := astro.JulianDay(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC))

	var periods []types.RetrogradePeriod
	inRetrograde := false
	retroStart := 0.0

	for jd := jdStart; jd <= jdEnd; jd++ {
		pos, err := s.provider.EclipticPosition(jd, body)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", string(body), err)
		}

		switch {
		case pos.Speed < 0 && !inRetrograde:
			inRetrograde = true
			retroStart = jd
		case pos.Speed >= 0 && inRetrograde:
			inRetrograde = false
			periods = append(periods, types.RetrogradePeriod{
				Planet: string(body),
				Start:  astro.JulianDayToTime(retroStart).Format(dateLayout),
				End:    astro.JulianDayToTime(jd).Format(dateLayout),
			})
		}
	}
	// An episode still open at jdEnd is dropped, matching the scan's
	// closed-interval contract.

	return periods, nil
}

// TransitEvent is a dated astrological event in a scanned range.
type TransitEvent struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Description string `json:"description"`
}

func (s *service) TransitEvents(start, end time.Time) ([]TransitEvent, error) {
	var events []TransitEvent

	retro, err := s.RetrogradePeriods(ephem.Mercury, start, end)
	if err != nil {
		return nil, err
	}
	for _, period := range retro {
		events = append(events,
			TransitEvent{
				Date:        period.Start,
				Event:       "Mercury Retrograde Starts",
				Description: "Mercury begins retrograde motion",
			},
			TransitEvent{
				Date:        period.End,
				Event:       "Mercury Retrograde Ends",
				Description: "Mercury resumes direct motion",
			})
	}

	jdStart := astro.JulianDay(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC))
	jdEnd := astro.JulianDay(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC))

	for jd := jdStart; jd <= jdEnd; jd++ {
		sun, err := s.provider.EclipticPosition(jd, ephem.Sun)
		if err != nil {
			return nil, fmt.Errorf("scanning Sun: %w", err)
		}
		moon, err := s.provider.EclipticPosition(jd, ephem.Moon)
		if err != nil {
			return nil, fmt.Errorf("scanning Moon: %w", err)
		}

		diff := moon.Longitude - sun.Longitude
		if diff < 0 {
			diff = -diff
		}
		if diff > 180 {
			diff = 360 - diff
		}

		date := astro.JulianDayToTime(jd).Format(dateLayout)
		switch {
		case diff < 2:
			events = append(events, TransitEvent{
				Date:        date,
				Event:       "New Moon",
				Description: fmt.Sprintf("New Moon in %s", SignPosition(sun.Longitude).Sign),
			})
		case diff > 178 && diff < 182:
			events = append(events, TransitEvent{
				Date:        date,
				Event:       "Full Moon",
				Description: fmt.Sprintf("Full Moon - Moon in %s, Sun in %s",
					SignPosition(moon.Longitude).Sign, SignPosition(sun.Longitude).Sign),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}
