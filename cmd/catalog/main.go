// Command catalog seeds the star database from VizieR CSV exports.
//
// Hipparcos rows come from I/239/hip_main (HIP, Vmag, Plx, RAICRS,
// DEICRS), bright star rows from V/50/catalog (HR, HIP, RAJ2000,
// DEJ2000, Vmag, Name). Common names and constellation figures are
// curated tables compiled into the catalog package.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"celestialguide/internal/catalog"
	"celestialguide/internal/config"
	"celestialguide/internal/types"
)

func main() {
	var (
		hipPath = flag.String("hipparcos", "", "Hipparcos CSV export (I/239/hip_main)")
		bscPath = flag.String("bright-stars", "", "Bright Star Catalog CSV export (V/50/catalog)")
		dbPath  = flag.String("db", "", "SQLite database path (defaults to the configured path)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger().With("component", "catalog-import")
	slog.SetDefault(logger)

	path := *dbPath
	if path == "" {
		path = cfg.App.DatabasePath
	}
	store, err := catalog.Open(path)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	if *hipPath != "" {
		stars, err := readHipparcos(*hipPath)
		if err != nil {
			log.Fatalf("Failed to read Hipparcos CSV: %v", err)
		}
		n, err := store.ImportHipparcos(stars)
		if err != nil {
			log.Fatalf("Failed to import Hipparcos: %v", err)
		}
		logger.Info("imported hipparcos", "rows", n)
	}

	if *bscPath != "" {
		stars, err := readBrightStars(*bscPath)
		if err != nil {
			log.Fatalf("Failed to read Bright Star CSV: %v", err)
		}
		n, err := store.ImportBrightStars(stars)
		if err != nil {
			log.Fatalf("Failed to import bright stars: %v", err)
		}
		logger.Info("imported bright stars", "rows", n)
	}

	n, err := store.ImportNames(catalog.CommonNames)
	if err != nil {
		log.Fatalf("Failed to import star names: %v", err)
	}
	logger.Info("imported star names", "rows", n)

	n, err = store.ImportConstellationLines(catalog.ConstellationFigures)
	if err != nil {
		log.Fatalf("Failed to import constellation lines: %v", err)
	}
	logger.Info("imported constellation lines", "rows", n)
}

// csvTable reads a CSV file into rows keyed by header name. Malformed
// rows are skipped, matching the tolerant import behavior the raw
// VizieR exports need.
func csvTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) < len(header) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readHipparcos(path string) ([]types.CatalogStar, error) {
	rows, err := csvTable(path)
	if err != nil {
		return nil, err
	}

	var stars []types.CatalogStar
	for _, row := range rows {
		hipID, err := strconv.Atoi(row["HIP"])
		if err != nil {
			continue
		}
		raDeg, err := strconv.ParseFloat(row["RAICRS"], 64)
		if err != nil {
			continue
		}
		dec, err := strconv.ParseFloat(row["DEICRS"], 64)
		if err != nil {
			continue
		}

		// Rows with no photometry keep a sentinel magnitude well
		// below every display cutoff.
		vmag := 99.0
		if v, err := strconv.ParseFloat(row["Vmag"], 64); err == nil {
			vmag = v
		}
		parallax := 0.0
		if v, err := strconv.ParseFloat(row["Plx"], 64); err == nil {
			parallax = v
		}

		stars = append(stars, types.CatalogStar{
			HipID:     hipID,
			RA:        raDeg / 15, // stored in hours
			Dec:       dec,
			Magnitude: vmag,
			Parallax:  parallax,
		})
	}
	return stars, nil
}

func readBrightStars(path string) ([]catalog.BrightStar, error) {
	rows, err := csvTable(path)
	if err != nil {
		return nil, err
	}

	var stars []catalog.BrightStar
	for _, row := range rows {
		bscID, err := strconv.Atoi(row["HR"])
		if err != nil {
			continue
		}
		ra, err := parseSexagesimal(row["RAJ2000"])
		if err != nil {
			continue
		}
		dec, err := parseSexagesimal(row["DEJ2000"])
		if err != nil {
			continue
		}

		hipID := 0
		if v, err := strconv.Atoi(row["HIP"]); err == nil {
			hipID = v
		}
		vmag := 99.0
		if v, err := strconv.ParseFloat(row["Vmag"], 64); err == nil {
			vmag = v
		}

		stars = append(stars, catalog.BrightStar{
			BscID:     bscID,
			HipID:     hipID,
			RA:        ra, // hours, from the hour-angle column
			Dec:       dec,
			Magnitude: vmag,
			Name:      row["Name"],
		})
	}
	return stars, nil
}

// parseSexagesimal parses VizieR space-separated coordinates such as
// "00 05 09.9" or "+45 13 45" into a decimal value in the leading unit.
func parseSexagesimal(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty coordinate")
	}

	sign := 1.0
	if strings.HasPrefix(fields[0], "-") {
		sign = -1
	}
	fields[0] = strings.TrimLeft(fields[0], "+-")

	value := 0.0
	scale := 1.0
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, fmt.Errorf("coordinate %q: %w", s, err)
		}
		value += v / scale
		scale *= 60
	}
	return sign * value, nil
}
