package types

// BodyPosition is the sky placement of a solar-system body, with the
// display attributes the map renderer needs. Illumination is the sunlit
// fraction [0, 1] and is populated for the Moon only.
type BodyPosition struct {
	Name         string  `json:"name"`
	Altitude     float64 `json:"altitude"`
	Azimuth      float64 `json:"azimuth"`
	Visible      bool    `json:"visible"`
	Magnitude    float64 `json:"magnitude"`
	Color        string  `json:"color"`
	Illumination float64 `json:"illumination,omitempty"`
}
