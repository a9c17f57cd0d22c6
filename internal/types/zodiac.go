package types

// ZodiacPosition locates an ecliptic degree within the twelve signs.
type ZodiacPosition struct {
	Degree       float64 `json:"degree"`       // absolute ecliptic longitude [0, 360)
	Sign         string  `json:"sign"`         // Aries .. Pisces
	DegreeInSign float64 `json:"degreeInSign"` // [0, 30)
}
