package catalog

import (
	"database/sql"
	"fmt"

	"celestialguide/internal/types"
)

// BrightStar is one Bright Star Catalog row for import. HipID 0 means the
// entry has no Hipparcos cross-reference.
type BrightStar struct {
	BscID     int
	HipID     int
	RA        float64
	Dec       float64
	Magnitude float64
	Name      string
}

// ImportHipparcos replaces the Hipparcos table contents.
func (s *Store) ImportHipparcos(stars []types.CatalogStar) (int, error) {
	return s.replaceAll("hipparcos", `
		INSERT OR REPLACE INTO hipparcos
		(hip_id, ra, dec, vmag, parallax, proper_name, bayer_designation, constellation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(stars), func(stmt *sql.Stmt, i int) error {
			star := stars[i]
			_, err := stmt.Exec(star.HipID, star.RA, star.Dec, star.Magnitude,
				nullFloat(star.Parallax), nullString(star.ProperName),
				nullString(star.Bayer), nullString(star.Constellation))
			return err
		})
}

// ImportBrightStars replaces the Bright Star Catalog table contents.
func (s *Store) ImportBrightStars(stars []BrightStar) (int, error) {
	return s.replaceAll("bright_stars", `
		INSERT OR REPLACE INTO bright_stars
		(bsc_id, hip_id, ra, dec, vmag, name)
		VALUES (?, ?, ?, ?, ?, ?)`,
		len(stars), func(stmt *sql.Stmt, i int) error {
			star := stars[i]
			var hipID any
			if star.HipID != 0 {
				hipID = star.HipID
			}
			_, err := stmt.Exec(star.BscID, hipID, star.RA, star.Dec,
				star.Magnitude, nullString(star.Name))
			return err
		})
}

// ImportNames replaces the common-name table contents.
func (s *Store) ImportNames(names map[string]int) (int, error) {
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}

	return s.replaceAll("star_names", `
		INSERT INTO star_names (common_name, hip_id) VALUES (?, ?)`,
		len(ordered), func(stmt *sql.Stmt, i int) error {
			_, err := stmt.Exec(ordered[i], names[ordered[i]])
			return err
		})
}

// ImportConstellationLines replaces the constellation line graph.
func (s *Store) ImportConstellationLines(lines []types.ConstellationLine) (int, error) {
	return s.replaceAll("constellation_lines", `
		INSERT INTO constellation_lines (constellation, hip_id_1, hip_id_2)
		VALUES (?, ?, ?)`,
		len(lines), func(stmt *sql.Stmt, i int) error {
			l := lines[i]
			_, err := stmt.Exec(l.Constellation, l.HipID1, l.HipID2)
			return err
		})
}

// replaceAll clears a table and bulk-inserts n rows in one transaction.
func (s *Store) replaceAll(table, insert string, n int, exec func(*sql.Stmt, int) error) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting %s import: %w", table, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return 0, fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := range n {
		if err := exec(stmt, i); err != nil {
			return 0, fmt.Errorf("inserting into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing %s import: %w", table, err)
	}
	return n, nil
}

func nullFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
