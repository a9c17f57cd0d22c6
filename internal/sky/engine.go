// Package sky computes horizontal coordinates (altitude, azimuth) and
// visibility for celestial targets as seen by a ground observer.
//
// Two paths exist: a memoized single-target path for interactive lookups,
// and an uncached batch path used for bulk map rendering. Both share the
// same spherical trigonometry so their results agree.
package sky

import (
	"log/slog"
	"math"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"celestialguide/internal/astro"
	"celestialguide/internal/ephem"
	"celestialguide/internal/types"
)

// DefaultMinAltitude is the visibility threshold in degrees. A target is
// visible only when its refracted altitude is strictly above it.
const DefaultMinAltitude = 0.0

// DefaultCacheTTL bounds how long a memoized single-target result stays
// valid.
const DefaultCacheTTL = time.Hour

// Service computes sky positions for fixed targets and solar-system bodies.
type Service interface {
	// Position computes the horizontal position of a single target. Results
	// are memoized per (target geometry, observer, instant); a cache hit
	// returns the stored geometry with the identity fields taken from the
	// current call.
	Position(target types.Target, obs types.Observer) types.Position

	// BatchPositions computes positions for every target in order. The
	// result has the same length and order as the input and carries no
	// identity fields. This path is never cached.
	BatchPositions(targets []types.Target, obs types.Observer) []types.Position

	// BodyPositions returns the sky placement of the Sun, Moon and planets.
	// Bodies the ephemeris has no data for are omitted.
	BodyPositions(obs types.Observer) []types.BodyPosition
}

type positionKey struct {
	ra, dec  float64
	lat, lon float64
	instant  string
}

type service struct {
	provider    ephem.Provider
	cache       *ttlcache.Cache[positionKey, types.Position]
	minAltitude float64
	logger      *slog.Logger
}

// NewService builds a Service with the built-in ephemeris provider and
// default thresholds.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(logger, ephem.NewAnalytic(), DefaultMinAltitude, DefaultCacheTTL)
}

// NewServiceWithProvider builds a Service with explicit collaborators, used
// by the app wiring and by tests.
func NewServiceWithProvider(logger *slog.Logger, provider ephem.Provider, minAltitude float64, cacheTTL time.Duration) Service {
	cache := ttlcache.New(
		ttlcache.WithTTL[positionKey, types.Position](cacheTTL),
		ttlcache.WithDisableTouchOnHit[positionKey, types.Position](),
	)
	go cache.Start()

	return &service{
		provider:    provider,
		cache:       cache,
		minAltitude: minAltitude,
		logger:      logger.With("component", "sky"),
	}
}

func (s *service) Position(target types.Target, obs types.Observer) types.Position {
	key := positionKey{
		ra:      target.RA,
		dec:     target.Dec,
		lat:     obs.Latitude,
		lon:     obs.Longitude,
		instant: obs.Time.Format(time.RFC3339),
	}

	if item := s.cache.Get(key); item != nil {
		pos := item.Value()
		pos.Name = target.Name
		pos.HipID = target.HipID
		pos.Magnitude = target.Magnitude
		return pos
	}

	alt, az := s.topocentric(target.RA, target.Dec, obs)

	pos := types.Position{
		Altitude:  alt,
		Azimuth:   az,
		Visible:   alt > s.minAltitude,
		Name:      target.Name,
		HipID:     target.HipID,
		Magnitude: target.Magnitude,
	}
	if target.Parallax > 0 {
		pos.DistanceParsecs = 1000.0 / target.Parallax
	}

	s.cache.Set(key, pos, ttlcache.DefaultTTL)
	return pos
}

func (s *service) BatchPositions(targets []types.Target, obs types.Observer) []types.Position {
	// LST is computed once for the whole batch.
	lst := astro.LocalSiderealHours(obs.Time, obs.Longitude)
	latRad := astro.Deg2Rad(obs.Latitude)
	sinLat, cosLat := math.Sin(latRad), math.Cos(latRad)

	positions := make([]types.Position, len(targets))
	for i, t := range targets {
		ha := astro.Deg2Rad((lst - t.RA) * 15)
		decRad := astro.Deg2Rad(t.Dec)
		sinDec, cosDec := math.Sin(decRad), math.Cos(decRad)

		sinAlt := sinDec*sinLat + cosDec*cosLat*math.Cos(ha)
		alt := math.Asin(astro.Clamp(sinAlt, -1, 1))
		altDeg := astro.Rad2Deg(alt)

		az := azimuth(sinDec, cosDec, sinLat, cosLat, ha, sinAlt, alt)

		altDeg += refraction(altDeg)

		positions[i] = types.Position{
			Altitude:  altDeg,
			Azimuth:   az,
			Visible:   altDeg > s.minAltitude,
			Magnitude: t.Magnitude,
		}
	}
	return positions
}

// topocentric is the single-target transform. It applies the same formulas
// as the batch path so the two stay numerically aligned.
func (s *service) topocentric(raHours, decDeg float64, obs types.Observer) (altDeg, azDeg float64) {
	lst := astro.LocalSiderealHours(obs.Time, obs.Longitude)
	latRad := astro.Deg2Rad(obs.Latitude)
	sinLat, cosLat := math.Sin(latRad), math.Cos(latRad)

	ha := astro.Deg2Rad((lst - raHours) * 15)
	decRad := astro.Deg2Rad(decDeg)
	sinDec, cosDec := math.Sin(decRad), math.Cos(decRad)

	sinAlt := sinDec*sinLat + cosDec*cosLat*math.Cos(ha)
	alt := math.Asin(astro.Clamp(sinAlt, -1, 1))
	altDeg = astro.Rad2Deg(alt)

	azDeg = azimuth(sinDec, cosDec, sinLat, cosLat, ha, sinAlt, alt)
	altDeg += refraction(altDeg)

	return altDeg, azDeg
}

// azimuth computes the compass bearing in degrees [0, 360). cos(alt)
// vanishes at the zenith; a tiny epsilon keeps the divisions finite at the
// cost of precision exactly there.
func azimuth(sinDec, cosDec, sinLat, cosLat, ha, sinAlt, alt float64) float64 {
	cosAlt := math.Cos(alt)
	if math.Abs(cosAlt) < 1e-10 {
		cosAlt = 1e-10
	}

	sinAz := -cosDec * math.Sin(ha) / cosAlt
	cosAz := (sinDec - sinAlt*sinLat) / (cosAlt * cosLat)

	return astro.Normalize360(astro.Rad2Deg(math.Atan2(sinAz, cosAz)))
}

// refraction is the empirical atmospheric correction in degrees, applied
// only above -1° apparent altitude.
func refraction(altDeg float64) float64 {
	if altDeg <= -1 {
		return 0
	}
	return 1.02 / math.Tan(astro.Deg2Rad(altDeg+10.3/(altDeg+5.11))) / 60
}
