package opencage

// GeocodeAPIResponse is the OpenCage forward geocoding payload, reduced to
// the fields the service reads.
type GeocodeAPIResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	Formatted  string     `json:"formatted"`
	Geometry   Geometry   `json:"geometry"`
	Components Components `json:"components"`
}

type Geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Components carries the place-name fields; OpenCage fills whichever of
// city, town or village applies.
type Components struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Country string `json:"country"`
}

// Name returns the most specific settlement name present.
func (c Components) Name() string {
	switch {
	case c.City != "":
		return c.City
	case c.Town != "":
		return c.Town
	default:
		return c.Village
	}
}
