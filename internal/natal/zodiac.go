package natal

import (
	"math"

	"celestialguide/internal/types"
)

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Signs returns the twelve zodiac signs in order, starting at Aries.
func Signs() []string {
	signs := make([]string, len(zodiacSigns))
	copy(signs, zodiacSigns)
	return signs
}

// SignPosition classifies an absolute ecliptic degree into its sign and
// degree within that sign.
func SignPosition(degree float64) types.ZodiacPosition {
	d := math.Mod(degree, 360)
	if d < 0 {
		d += 360
	}
	return types.ZodiacPosition{
		Degree:       degree,
		Sign:         zodiacSigns[int(d/30)%12],
		DegreeInSign: math.Mod(d, 30),
	}
}
