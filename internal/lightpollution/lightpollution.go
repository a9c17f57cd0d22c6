// Package lightpollution rates the night sky at a site from satellite
// radiance measurements, expressed on the Bortle scale and as sky
// brightness in mag/arcsec².
package lightpollution

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"celestialguide/internal/types"
)

// ErrUnavailable reports that no radiance measurement exists for a site.
var ErrUnavailable = errors.New("lightpollution: radiance data unavailable")

// RadianceProvider supplies upward radiance in nanoWatts/cm²/sr, as
// measured by the VIIRS nighttime lights composites.
type RadianceProvider interface {
	Radiance(latitude, longitude float64) (float64, error)
}

// Unavailable is the provider used when no radiance raster is wired in; it
// makes the service fall back to estimated defaults.
type Unavailable struct{}

func (Unavailable) Radiance(latitude, longitude float64) (float64, error) {
	return 0, ErrUnavailable
}

// Service assesses sky quality for a site.
type Service interface {
	Assess(latitude, longitude float64) types.SkyQuality
}

type service struct {
	provider RadianceProvider
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, Unavailable{})
}

func NewServiceWithProvider(logger *slog.Logger, provider RadianceProvider) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "lightpollution"),
	}
}

func (s *service) Assess(latitude, longitude float64) types.SkyQuality {
	radiance, err := s.provider.Radiance(latitude, longitude)
	if err != nil {
		s.logger.Debug("radiance lookup failed, using estimate",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.SkyQuality{
			Bortle:      4.0,
			Brightness:  20.0,
			Description: "Data unavailable - using default value",
			Estimated:   true,
		}
	}

	if radiance < 0 {
		radiance = 0
	}
	bortle := BortleFromRadiance(radiance)

	return types.SkyQuality{
		Bortle:      float64(bortle),
		Brightness:  math.Round(BrightnessFromRadiance(radiance)*100) / 100,
		Radiance:    math.Round(radiance*10000) / 10000,
		Description: fmt.Sprintf("%s (NASA VIIRS V2.2)", BortleDescription(bortle)),
	}
}

// BortleFromRadiance maps VIIRS radiance to the Bortle scale, using the
// Falchi et al. (2016) calibration breakpoints.
func BortleFromRadiance(radiance float64) int {
	switch {
	case radiance <= 0.171:
		return 1
	case radiance <= 0.333:
		return 2
	case radiance <= 0.630:
		return 3
	case radiance <= 1.260:
		return 4
	case radiance <= 2.520:
		return 5
	case radiance <= 5.040:
		return 6
	case radiance <= 10.08:
		return 7
	case radiance <= 20.16:
		return 8
	default:
		return 9
	}
}

// BrightnessFromRadiance converts radiance to sky brightness with the
// calibration MPSAS = 21.9 - 2.5*log10(radiance + 0.001), clamped to the
// plausible 16..22 range. Zero radiance reads as the darkest natural sky.
func BrightnessFromRadiance(radiance float64) float64 {
	if radiance <= 0 {
		return 22.0
	}
	mpsas := 21.9 - 2.5*math.Log10(radiance+0.001)
	return math.Max(16.0, math.Min(22.0, mpsas))
}

// BortleDescription names each Bortle class.
func BortleDescription(bortle int) string {
	switch bortle {
	case 1:
		return "Excellent dark sky site - Milky Way casts shadows"
	case 2:
		return "Typical truly dark site - Airglow visible"
	case 3:
		return "Rural sky - Some light pollution horizon"
	case 4:
		return "Rural/suburban transition - Milky Way still impressive"
	case 5:
		return "Suburban sky - Milky Way very weak"
	case 6:
		return "Bright suburban sky - Milky Way invisible"
	case 7:
		return "Suburban/urban transition - Sky strongly lit"
	case 8:
		return "City sky - Entire sky grayish white"
	case 9:
		return "Inner-city sky - Only brightest objects visible"
	default:
		return "Unknown"
	}
}
