// Package starmap renders all-sky charts: every Bright Star Catalogue star
// above the horizon, optional constellation figures and planet markers,
// drawn on an azimuthal equidistant projection and returned as base64 PNG.
package starmap

import (
	"fmt"
	"log/slog"

	"celestialguide/internal/catalog"
	"celestialguide/internal/sky"
	"celestialguide/internal/types"
)

// The renderer plots everything the catalog holds below this magnitude.
const mapMagnitudeLimit = 10.0

// FOV marks a telescope field of view to overlay on the chart.
type FOV struct {
	RAHours    float64
	DecDegrees float64
	RadiusDeg  float64
}

// Options selects optional chart layers.
type Options struct {
	ShowConstellations bool
	ShowLabels         bool
	FOV                *FOV
}

// Chart is a rendered sky map plus the headline numbers drawn from it.
type Chart struct {
	ImageBase64      string  `json:"imageBase64"`
	StarsVisible     int     `json:"starsVisible"`
	SunAltitude      float64 `json:"sunAltitude"`
	MoonAltitude     float64 `json:"moonAltitude"`
	MoonIllumination float64 `json:"moonIllumination"`
}

// Service renders sky charts for an observer.
type Service interface {
	Render(obs types.Observer, opts Options) (Chart, error)
}

type service struct {
	store  *catalog.Store
	sky    sky.Service
	logger *slog.Logger
}

func NewService(logger *slog.Logger, store *catalog.Store, skySvc sky.Service) Service {
	return &service{
		store:  store,
		sky:    skySvc,
		logger: logger.With("component", "starmap"),
	}
}

// plotted is one visible dot on the chart.
type plotted struct {
	Altitude  float64
	Azimuth   float64
	Magnitude float64
	Name      string
}

// segment is a constellation line with both endpoints above the horizon.
type segment struct {
	Alt1, Az1 float64
	Alt2, Az2 float64
}

func (s *service) Render(obs types.Observer, opts Options) (Chart, error) {
	stars, err := s.store.BrightStars(mapMagnitudeLimit)
	if err != nil {
		return Chart{}, fmt.Errorf("loading catalog stars: %w", err)
	}

	targets := make([]types.Target, len(stars))
	for i, st := range stars {
		targets[i] = types.Target{RA: st.RA, Dec: st.Dec, Magnitude: st.Magnitude}
	}
	positions := s.sky.BatchPositions(targets, obs)

	var visible []plotted
	for i, pos := range positions {
		if pos.Visible {
			visible = append(visible, plotted{
				Altitude:  pos.Altitude,
				Azimuth:   pos.Azimuth,
				Magnitude: stars[i].Magnitude,
				Name:      stars[i].ProperName,
			})
		}
	}
	s.logger.Debug("stars placed", "catalog", len(stars), "visible", len(visible))

	var lines []segment
	if opts.ShowConstellations {
		lines, err = s.constellationSegments(obs)
		if err != nil {
			return Chart{}, err
		}
	}

	bodies := s.sky.BodyPositions(obs)

	chart := Chart{StarsVisible: len(visible)}
	var planets []types.BodyPosition
	for _, b := range bodies {
		switch b.Name {
		case "Sun":
			chart.SunAltitude = b.Altitude
		case "Moon":
			chart.MoonAltitude = b.Altitude
			chart.MoonIllumination = b.Illumination
		default:
			planets = append(planets, b)
		}
	}

	var fovCenter *types.Position
	if opts.FOV != nil {
		pos := s.sky.Position(types.Target{RA: opts.FOV.RAHours, Dec: opts.FOV.DecDegrees}, obs)
		if pos.Visible {
			fovCenter = &pos
		}
	}

	img, err := render(obs, visible, lines, planets, opts, fovCenter)
	if err != nil {
		return Chart{}, fmt.Errorf("rendering chart: %w", err)
	}
	chart.ImageBase64 = img
	return chart, nil
}

// constellationSegments resolves catalog figure lines to horizontal
// coordinates, keeping only lines with both stars up.
func (s *service) constellationSegments(obs types.Observer) ([]segment, error) {
	segs, err := s.store.ConstellationSegments()
	if err != nil {
		return nil, fmt.Errorf("loading constellation lines: %w", err)
	}

	// Both endpoints of every line go through one batch call.
	endpoints := make([]types.Target, 0, 2*len(segs))
	for _, sg := range segs {
		endpoints = append(endpoints,
			types.Target{RA: sg.RA1, Dec: sg.Dec1},
			types.Target{RA: sg.RA2, Dec: sg.Dec2},
		)
	}
	positions := s.sky.BatchPositions(endpoints, obs)

	var lines []segment
	for i := range segs {
		p1, p2 := positions[2*i], positions[2*i+1]
		if p1.Visible && p2.Visible {
			lines = append(lines, segment{
				Alt1: p1.Altitude, Az1: p1.Azimuth,
				Alt2: p2.Altitude, Az2: p2.Azimuth,
			})
		}
	}
	return lines, nil
}
