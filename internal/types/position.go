package types

// Position is a computed horizontal (alt/az) placement of a target for one
// observer and instant. Azimuth is degrees [0, 360) measured from north
// through east. DistanceParsecs is 0 when no parallax was available.
type Position struct {
	Altitude        float64 `json:"altitude"`
	Azimuth         float64 `json:"azimuth"`
	Visible         bool    `json:"visible"`
	Name            string  `json:"name,omitempty"`
	HipID           int     `json:"hipId,omitempty"`
	Magnitude       float64 `json:"magnitude"`
	DistanceParsecs float64 `json:"distanceParsecs,omitempty"`
}
