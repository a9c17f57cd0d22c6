package types

// HouseCusp is the boundary opening one of the twelve astrological houses.
type HouseCusp struct {
	House int `json:"house"` // 1..12
	ZodiacPosition
}

// PlanetPosition places a body on the ecliptic and in a house.
type PlanetPosition struct {
	Name string `json:"name"`
	ZodiacPosition
	House      int  `json:"house"`
	Retrograde bool `json:"retrograde"`
}

// Aspect is a named angular relationship between two bodies. Orb is the
// deviation from the exact aspect angle in degrees.
type Aspect struct {
	Planet1  string  `json:"planet1"`
	Planet2  string  `json:"planet2"`
	Type     string  `json:"type"`
	Angle    float64 `json:"angle"`
	Orb      float64 `json:"orb"`
	Applying bool    `json:"applying"`
}

// NatalChart is the full computed chart for one birth moment and place.
type NatalChart struct {
	Ascendant ZodiacPosition   `json:"ascendant"`
	Midheaven ZodiacPosition   `json:"midheaven"`
	Houses    []HouseCusp      `json:"houses"`
	Planets   []PlanetPosition `json:"planets"`
	Aspects   []Aspect         `json:"aspects"`
}

// RetrogradePeriod is a closed interval of apparent backward motion.
// Dates are calendar days in ISO form (2006-01-02).
type RetrogradePeriod struct {
	Planet string `json:"planet"`
	Start  string `json:"start"`
	End    string `json:"end"`
}
