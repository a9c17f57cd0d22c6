package types

import "time"

// Observer is a geographic viewpoint at a single instant. Latitude and
// longitude are degrees (north and east positive), elevation is meters
// above sea level, and Time is UTC.
type Observer struct {
	Latitude  float64
	Longitude float64
	Elevation float64
	Time      time.Time
}

func NewObserver(latitude, longitude, elevation float64, t time.Time) Observer {
	return Observer{
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: elevation,
		Time:      t.UTC(),
	}
}
