package types

// Target is a fixed celestial object to locate in the sky. RA is in hours
// [0, 24), Dec in degrees [-90, 90]. Identity fields are optional; Parallax
// is milliarcseconds (0 = unknown).
type Target struct {
	RA        float64
	Dec       float64
	Magnitude float64
	Name      string
	HipID     int
	Parallax  float64
}
