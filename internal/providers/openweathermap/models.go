package openweathermap

// WeatherAPIResponse is the OpenWeatherMap current-weather payload, reduced
// to the fields the service reads.
type WeatherAPIResponse struct {
	Main    Main        `json:"main"`
	Clouds  Clouds      `json:"clouds"`
	Wind    Wind        `json:"wind"`
	Weather []Condition `json:"weather"`
}

type Main struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type Clouds struct {
	All float64 `json:"all"` // percent
}

type Wind struct {
	Speed float64 `json:"speed"` // m/s with metric units
}

type Condition struct {
	Description string `json:"description"`
}

// Description returns the first condition description, if any.
func (r *WeatherAPIResponse) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}
