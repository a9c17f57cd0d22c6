package types

// CatalogStar is one row of the star catalog. Parallax is milliarcseconds.
type CatalogStar struct {
	HipID         int     `json:"hipId"`
	RA            float64 `json:"ra"`
	Dec           float64 `json:"dec"`
	Magnitude     float64 `json:"magnitude"`
	Parallax      float64 `json:"parallax,omitempty"`
	ProperName    string  `json:"properName,omitempty"`
	Bayer         string  `json:"bayer,omitempty"`
	Constellation string  `json:"constellation,omitempty"`
}

// ConstellationLine joins two catalog stars in a constellation figure.
type ConstellationLine struct {
	Constellation string `json:"constellation"`
	HipID1        int    `json:"hipId1"`
	HipID2        int    `json:"hipId2"`
}
