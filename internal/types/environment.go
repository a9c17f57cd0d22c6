package types

// Place is a geocoded location.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Formatted string  `json:"formattedAddress,omitempty"`
}

// Weather is the current-conditions subset relevant to observing.
// Conditions is the coarse observing label derived from cloud cover.
type Weather struct {
	TemperatureC float64 `json:"temperatureC"`
	CloudCover   float64 `json:"cloudCover"` // percent
	Humidity     float64 `json:"humidity"`   // percent
	WindSpeed    float64 `json:"windSpeed"`  // m/s
	Description  string  `json:"description"`
	Conditions   string  `json:"conditions"`
}

// SkyQuality is the light-pollution assessment for a site. Estimated is
// true when no radiance data was available and defaults were substituted.
type SkyQuality struct {
	Bortle      float64 `json:"bortle"`
	Brightness  float64 `json:"brightness"` // mag/arcsec²
	Radiance    float64 `json:"radiance,omitempty"`
	Description string  `json:"description"`
	Estimated   bool    `json:"estimated"`
}
