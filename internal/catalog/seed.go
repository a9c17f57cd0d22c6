package catalog

import "celestialguide/internal/types"

// CommonNames is the curated common-name to HIP id mapping loaded by the
// importer.
var CommonNames = map[string]int{
	"Sirius":     32349,
	"Canopus":    30438,
	"Arcturus":   69673,
	"Vega":       91262,
	"Capella":    24608,
	"Rigel":      24436,
	"Procyon":    37279,
	"Betelgeuse": 27989,
	"Altair":     97649,
	"Aldebaran":  21421,
	"Spica":      65474,
	"Antares":    80763,
	"Pollux":     37826,
	"Fomalhaut":  113368,
	"Deneb":      102098,
	"Regulus":    49669,
	"Adhara":     33579,
	"Castor":     36850,
	"Bellatrix":  25336,
	"Alnilam":    26311,
	"Alnitak":    26727,
	"Mintaka":    25930,
	"Polaris":    11767,
	"Dubhe":      54061,
	"Alkaid":     67301,
	"Mizar":      65378,
	"Alioth":     62956,
	"Megrez":     59774,
	"Phecda":     58001,
	"Merak":      53910,
}

// ConstellationFigures is the curated line graph loaded by the importer,
// keyed by HIP id pairs following the Stellarium figures.
var ConstellationFigures = []types.ConstellationLine{
	// Ursa Major (Big Dipper)
	{Constellation: "UMa", HipID1: 54061, HipID2: 53910},
	{Constellation: "UMa", HipID1: 53910, HipID2: 58001},
	{Constellation: "UMa", HipID1: 58001, HipID2: 59774},
	{Constellation: "UMa", HipID1: 59774, HipID2: 62956},
	{Constellation: "UMa", HipID1: 62956, HipID2: 65378},
	{Constellation: "UMa", HipID1: 65378, HipID2: 67301},
	{Constellation: "UMa", HipID1: 59774, HipID2: 54061},
	// Orion
	{Constellation: "Ori", HipID1: 27989, HipID2: 25336},
	{Constellation: "Ori", HipID1: 27989, HipID2: 26727},
	{Constellation: "Ori", HipID1: 25336, HipID2: 25930},
	{Constellation: "Ori", HipID1: 26727, HipID2: 26311},
	{Constellation: "Ori", HipID1: 26311, HipID2: 25930},
	{Constellation: "Ori", HipID1: 26727, HipID2: 27366},
	{Constellation: "Ori", HipID1: 25930, HipID2: 24436},
	{Constellation: "Ori", HipID1: 24436, HipID2: 27366},
	// Cassiopeia
	{Constellation: "Cas", HipID1: 746, HipID2: 3179},
	{Constellation: "Cas", HipID1: 3179, HipID2: 4427},
	{Constellation: "Cas", HipID1: 4427, HipID2: 6686},
	{Constellation: "Cas", HipID1: 6686, HipID2: 8886},
	// Cygnus (Northern Cross)
	{Constellation: "Cyg", HipID1: 102098, HipID2: 100453},
	{Constellation: "Cyg", HipID1: 100453, HipID2: 95947},
	{Constellation: "Cyg", HipID1: 100453, HipID2: 102488},
	{Constellation: "Cyg", HipID1: 100453, HipID2: 97165},
	// Lyra
	{Constellation: "Lyr", HipID1: 91262, HipID2: 91971},
	{Constellation: "Lyr", HipID1: 91971, HipID2: 92420},
	// Canis Major
	{Constellation: "CMa", HipID1: 32349, HipID2: 33579},
	{Constellation: "CMa", HipID1: 32349, HipID2: 30324},
}
