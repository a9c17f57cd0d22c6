package natal

import (
	"math"

	"celestialguide/internal/types"
)

// aspectDef pairs an ideal angle with its maximum orb. The table order is
// the match order: the first definition within orb wins.
type aspectDef struct {
	name  string
	angle float64
	orb   float64
}

var aspectTable = []aspectDef{
	{"Conjunction", 0, 10},
	{"Opposition", 180, 10},
	{"Trine", 120, 8},
	{"Square", 90, 8},
	{"Sextile", 60, 6},
	{"Quincunx", 150, 3},
	{"Semi-Sextile", 30, 2},
}

// CalculateAspect classifies the angular relationship between two ecliptic
// longitudes. The second return is false when no aspect matches within orb.
// The applying flag is always true; no relative-speed comparison is made.
func CalculateAspect(angle1, angle2 float64) (types.Aspect, bool) {
	diff := math.Abs(angle1 - angle2)
	if diff > 180 {
		diff = 360 - diff
	}

	for _, def := range aspectTable {
		if math.Abs(diff-def.angle) <= def.orb {
			return types.Aspect{
				Type:     def.name,
				Angle:    def.angle,
				Orb:      math.Round(math.Abs(diff-def.angle)*100) / 100,
				Applying: true,
			}, true
		}
	}
	return types.Aspect{}, false
}
