package starmap

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"celestialguide/internal/types"
)

const (
	canvasPx = 1000
	// Map coordinates span [-95, 95] in both axes so the horizon circle
	// and the cardinal labels beyond it both fit.
	skySpan = 190.0
)

// Matplotlib color names used by the body table, resolved to sRGB.
var palette = map[string][3]int{
	"white":          {255, 255, 255},
	"lightcyan":      {224, 255, 255},
	"lightsteelblue": {176, 196, 222},
	"lightgray":      {211, 211, 211},
	"silver":         {192, 192, 192},
	"gray":           {128, 128, 128},
	"gold":           {255, 215, 0},
	"lightyellow":    {255, 255, 224},
	"orangered":      {255, 69, 0},
	"wheat":          {245, 222, 179},
	"khaki":          {240, 230, 140},
	"lightblue":      {173, 216, 230},
	"cornflowerblue": {100, 149, 237},
	"slategray":      {112, 128, 144},
	"cyan":           {0, 255, 255},
	"yellow":         {255, 255, 0},
	"red":            {255, 0, 0},
}

func setColor(dc *gg.Context, name string, alpha float64) {
	rgb, ok := palette[name]
	if !ok {
		rgb = palette["white"]
	}
	dc.SetRGBA255(rgb[0], rgb[1], rgb[2], int(alpha*255))
}

// canvasXY converts map coordinates to pixel coordinates, flipping y so
// north points up.
func canvasXY(x, y float64) (float64, float64) {
	scale := float64(canvasPx) / skySpan
	return canvasPx/2 + x*scale, canvasPx/2 - y*scale
}

func canvasScale() float64 { return float64(canvasPx) / skySpan }

// starRadius sizes a dot from its magnitude: brighter stars draw larger,
// clamped so the full catalog stays legible.
func starRadius(magnitude float64) float64 {
	area := 80 * math.Pow(10, -magnitude/2.5)
	area = math.Min(math.Max(area, 0.3), 150)
	return math.Sqrt(area / math.Pi)
}

func planetRadius(magnitude float64) float64 {
	area := 150 * math.Pow(10, -magnitude/2.5)
	area = math.Min(math.Max(area, 50), 400)
	return math.Sqrt(area / math.Pi)
}

// starStyle picks dot color and opacity by magnitude band.
func starStyle(magnitude float64) (string, float64) {
	switch {
	case magnitude < 1.0:
		return "white", 1.0
	case magnitude < 2.5:
		return "lightcyan", 0.95
	case magnitude < 4.0:
		return "lightsteelblue", 0.85
	case magnitude < 5.5:
		return "lightgray", 0.70
	case magnitude < 7.0:
		return "silver", 0.55
	default:
		return "gray", 0.35
	}
}

func render(obs types.Observer, stars []plotted, lines []segment, planets []types.BodyPosition, opts Options, fovCenter *types.Position) (string, error) {
	dc := gg.NewContext(canvasPx, canvasPx)
	dc.SetHexColor("#0a0a0a")
	dc.Clear()

	scale := canvasScale()
	cx, cy := canvasXY(0, 0)

	// Horizon.
	dc.SetDash(8, 8)
	setColor(dc, "white", 0.5)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, 90*scale)
	dc.Stroke()

	// Altitude rings at 30 and 60 degrees.
	dc.SetDash(2, 4)
	for _, alt := range []float64{30, 60} {
		r := 90 - alt
		setColor(dc, "gray", 0.3)
		dc.SetLineWidth(0.5)
		dc.DrawCircle(cx, cy, r*scale)
		dc.Stroke()

		setColor(dc, "gray", 0.5)
		lx, ly := canvasXY(0, r+2)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f°", alt), lx, ly, 0.5, 0.5)
	}
	dc.SetDash()

	// Cardinal and intercardinal markers just outside the horizon.
	cardinals := []struct {
		x, y  float64
		label string
	}{
		{0, 95, "N"}, {95, 0, "E"}, {0, -95, "S"}, {-95, 0, "W"},
		{67, 67, "NE"}, {67, -67, "SE"}, {-67, -67, "SW"}, {-67, 67, "NW"},
	}
	setColor(dc, "white", 0.7)
	for _, c := range cardinals {
		px, py := canvasXY(c.x, c.y)
		dc.DrawStringAnchored(c.label, px, py, 0.5, 0.5)
	}

	// Constellation figures under the stars.
	setColor(dc, "cyan", 0.3)
	dc.SetLineWidth(0.5)
	for _, line := range lines {
		x1, y1 := Project(line.Alt1, line.Az1)
		x2, y2 := Project(line.Alt2, line.Az2)
		px1, py1 := canvasXY(x1, y1)
		px2, py2 := canvasXY(x2, y2)
		dc.DrawLine(px1, py1, px2, py2)
		dc.Stroke()
	}

	for _, star := range stars {
		x, y := Project(star.Altitude, star.Azimuth)
		px, py := canvasXY(x, y)

		color, alpha := starStyle(star.Magnitude)
		setColor(dc, color, alpha)
		dc.DrawCircle(px, py, starRadius(star.Magnitude))
		dc.Fill()

		if opts.ShowLabels && star.Magnitude < 1.8 && star.Name != "" {
			setColor(dc, "yellow", 0.9)
			dc.DrawStringAnchored(star.Name, px, py-3*scale, 0.5, 1)
		}
	}

	// Planets draw on top with a gold rim.
	for _, p := range planets {
		if !p.Visible {
			continue
		}
		x, y := Project(p.Altitude, p.Azimuth)
		px, py := canvasXY(x, y)
		r := planetRadius(p.Magnitude)

		setColor(dc, p.Color, 0.95)
		dc.DrawCircle(px, py, r)
		dc.Fill()
		setColor(dc, "gold", 0.95)
		dc.SetLineWidth(2.5)
		dc.DrawCircle(px, py, r)
		dc.Stroke()

		if opts.ShowLabels {
			setColor(dc, p.Color, 1.0)
			dc.DrawStringAnchored(p.Name, px, py-r-4, 0.5, 1)
		}
	}

	if fovCenter != nil && opts.FOV != nil {
		x, y := Project(fovCenter.Altitude, fovCenter.Azimuth)
		px, py := canvasXY(x, y)

		setColor(dc, "red", 0.8)
		dc.SetLineWidth(2)
		dc.DrawCircle(px, py, opts.FOV.RadiusDeg*scale)
		dc.Stroke()
		dc.DrawLine(px-8, py, px+8, py)
		dc.DrawLine(px, py-8, px, py+8)
		dc.Stroke()
	}

	drawHeader(dc, obs, stars)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawHeader writes the observer line and the magnitude breakdown across
// the top of the chart.
func drawHeader(dc *gg.Context, obs types.Observer, stars []plotted) {
	latHemi, lonHemi := "N", "E"
	if obs.Latitude < 0 {
		latHemi = "S"
	}
	if obs.Longitude < 0 {
		lonHemi = "W"
	}

	var bright, medium, faint int
	for _, s := range stars {
		switch {
		case s.Magnitude < 3.0:
			bright++
		case s.Magnitude < 5.5:
			medium++
		default:
			faint++
		}
	}

	setColor(dc, "white", 1.0)
	dc.DrawStringAnchored(
		fmt.Sprintf("Sky Map - Observer: %.4f°%s, %.4f°%s", math.Abs(obs.Latitude), latHemi, math.Abs(obs.Longitude), lonHemi),
		canvasPx/2, 14, 0.5, 0.5)
	dc.DrawStringAnchored(obs.Time.Format("2006-01-02 15:04 UTC"), canvasPx/2, 30, 0.5, 0.5)
	dc.DrawStringAnchored(
		fmt.Sprintf("%d stars visible (%d bright | %d medium | %d faint)", len(stars), bright, medium, faint),
		canvasPx/2, 46, 0.5, 0.5)
}
