// Package catalog is the read-mostly star catalog store: the Hipparcos
// table for search, the Bright Star Catalog for map rendering, common name
// lookups and the constellation line graph.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"celestialguide/internal/types"
)

// ErrNotFound is returned when no catalog row matches a lookup.
var ErrNotFound = errors.New("catalog: star not found")

// NameMatch is one autocomplete result from the common-name table.
type NameMatch struct {
	CommonName string  `json:"commonName"`
	HipID      int     `json:"hipId"`
	Magnitude  float64 `json:"magnitude"`
}

// Segment is one constellation line with both endpoints resolved to
// coordinates.
type Segment struct {
	HipID1 int
	HipID2 int
	RA1    float64
	Dec1   float64
	RA2    float64
	Dec2   float64
}

// Store wraps the catalog database.
type Store struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS hipparcos (
		hip_id INTEGER PRIMARY KEY,
		ra REAL NOT NULL,
		dec REAL NOT NULL,
		vmag REAL,
		parallax REAL,
		proper_name TEXT,
		bayer_designation TEXT,
		constellation TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS bright_stars (
		bsc_id INTEGER PRIMARY KEY,
		hip_id INTEGER,
		ra REAL NOT NULL,
		dec REAL NOT NULL,
		vmag REAL NOT NULL,
		name TEXT,
		FOREIGN KEY (hip_id) REFERENCES hipparcos(hip_id)
	)`,
	`CREATE TABLE IF NOT EXISTS star_names (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		common_name TEXT NOT NULL,
		hip_id INTEGER NOT NULL,
		FOREIGN KEY (hip_id) REFERENCES hipparcos(hip_id)
	)`,
	`CREATE TABLE IF NOT EXISTS constellation_lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		constellation TEXT NOT NULL,
		hip_id_1 INTEGER NOT NULL,
		hip_id_2 INTEGER NOT NULL,
		FOREIGN KEY (hip_id_1) REFERENCES hipparcos(hip_id),
		FOREIGN KEY (hip_id_2) REFERENCES hipparcos(hip_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hip_vmag ON hipparcos(vmag)`,
	`CREATE INDEX IF NOT EXISTS idx_hip_name ON hipparcos(proper_name)`,
	`CREATE INDEX IF NOT EXISTS idx_bsc_vmag ON bright_stars(vmag)`,
	`CREATE INDEX IF NOT EXISTS idx_star_names ON star_names(common_name)`,
	`CREATE INDEX IF NOT EXISTS idx_const_lines ON constellation_lines(constellation)`,
}

// Open opens (creating if needed) the catalog database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing catalog schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// FindStar resolves a free-form query to one catalog star. A numeric query
// is treated as a HIP id; otherwise the common-name table is checked for an
// exact (case-insensitive) match, then the Hipparcos proper names for a
// substring match.
func (s *Store) FindStar(query string) (types.CatalogStar, error) {
	query = strings.TrimSpace(query)

	if hipID, err := strconv.Atoi(query); err == nil {
		return s.starByRow(s.db.QueryRow(`
			SELECT hip_id, ra, dec, vmag, parallax, proper_name
			FROM hipparcos
			WHERE hip_id = ?`, hipID), query)
	}

	star, err := s.starByRow(s.db.QueryRow(`
		SELECT h.hip_id, h.ra, h.dec, h.vmag, h.parallax, h.proper_name
		FROM star_names sn
		JOIN hipparcos h ON sn.hip_id = h.hip_id
		WHERE LOWER(sn.common_name) = LOWER(?)`, query), query)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return star, err
	}

	return s.starByRow(s.db.QueryRow(`
		SELECT hip_id, ra, dec, vmag, parallax, proper_name
		FROM hipparcos
		WHERE LOWER(proper_name) LIKE LOWER(?)`, "%"+query+"%"), query)
}

func (s *Store) starByRow(row *sql.Row, query string) (types.CatalogStar, error) {
	var star types.CatalogStar
	var vmag, parallax sql.NullFloat64
	var name sql.NullString

	err := row.Scan(&star.HipID, &star.RA, &star.Dec, &vmag, &parallax, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return types.CatalogStar{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	if err != nil {
		return types.CatalogStar{}, fmt.Errorf("querying catalog: %w", err)
	}

	star.Magnitude = 99.0
	if vmag.Valid {
		star.Magnitude = vmag.Float64
	}
	star.Parallax = parallax.Float64
	star.ProperName = name.String
	return star, nil
}

// SearchNames returns common-name autocomplete matches ordered by
// brightness.
func (s *Store) SearchNames(query string, limit int) ([]NameMatch, error) {
	rows, err := s.db.Query(`
		SELECT sn.common_name, h.hip_id, h.vmag
		FROM star_names sn
		JOIN hipparcos h ON sn.hip_id = h.hip_id
		WHERE LOWER(sn.common_name) LIKE LOWER(?)
		ORDER BY h.vmag
		LIMIT ?`, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching names: %w", err)
	}
	defer rows.Close()

	var matches []NameMatch
	for rows.Next() {
		var m NameMatch
		var vmag sql.NullFloat64
		if err := rows.Scan(&m.CommonName, &m.HipID, &vmag); err != nil {
			return nil, fmt.Errorf("scanning name match: %w", err)
		}
		m.Magnitude = vmag.Float64
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// BrightStars returns the Bright Star Catalog entries below the magnitude
// limit, brightest first.
func (s *Store) BrightStars(maxMagnitude float64) ([]types.CatalogStar, error) {
	rows, err := s.db.Query(`
		SELECT hip_id, ra, dec, vmag, name
		FROM bright_stars
		WHERE vmag IS NOT NULL AND vmag < ?
		ORDER BY vmag`, maxMagnitude)
	if err != nil {
		return nil, fmt.Errorf("querying bright stars: %w", err)
	}
	defer rows.Close()

	var stars []types.CatalogStar
	for rows.Next() {
		var star types.CatalogStar
		var hipID sql.NullInt64
		var name sql.NullString
		if err := rows.Scan(&hipID, &star.RA, &star.Dec, &star.Magnitude, &name); err != nil {
			return nil, fmt.Errorf("scanning bright star: %w", err)
		}
		star.HipID = int(hipID.Int64)
		star.ProperName = name.String
		stars = append(stars, star)
	}
	return stars, rows.Err()
}

// ConstellationSegments returns every constellation line with both endpoint
// coordinates joined in.
func (s *Store) ConstellationSegments() ([]Segment, error) {
	rows, err := s.db.Query(`
		SELECT cl.hip_id_1, cl.hip_id_2,
		       h1.ra, h1.dec, h2.ra, h2.dec
		FROM constellation_lines cl
		JOIN hipparcos h1 ON cl.hip_id_1 = h1.hip_id
		JOIN hipparcos h2 ON cl.hip_id_2 = h2.hip_id`)
	if err != nil {
		return nil, fmt.Errorf("querying constellation lines: %w", err)
	}
	defer rows.Close()

	var segments []Segment
	for rows.Next() {
		var seg Segment
		if err := rows.Scan(&seg.HipID1, &seg.HipID2, &seg.RA1, &seg.Dec1, &seg.RA2, &seg.Dec2); err != nil {
			return nil, fmt.Errorf("scanning constellation line: %w", err)
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// Loaded reports whether both star catalogs contain data.
func (s *Store) Loaded() (bool, error) {
	var hipCount, bscCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM hipparcos`).Scan(&hipCount); err != nil {
		return false, fmt.Errorf("counting hipparcos rows: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM bright_stars`).Scan(&bscCount); err != nil {
		return false, fmt.Errorf("counting bright star rows: %w", err)
	}
	return hipCount > 0 && bscCount > 0, nil
}
