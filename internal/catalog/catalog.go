// Package catalog keeps a record of converted works in a SQLite database.
// Records are keyed by a UUID and deduplicated by the BLAKE3 hash of the
// source bytes.
package catalog

import (
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/Aozora/core/errors"
	"github.com/FocuswithJustin/Aozora/core/sqlite"
)

// Format identifies the output format a work was converted to.
type Format string

const (
	// FormatHTML marks a conversion to XHTML.
	FormatHTML Format = "html"
	// FormatText marks a conversion to plain text.
	FormatText Format = "text"
)

var validFormats = map[Format]bool{
	FormatHTML: true,
	FormatText: true,
}

// IsValid returns true if the format is a known conversion format.
func (f Format) IsValid() bool {
	return validFormats[f]
}

// Record describes one converted work stored in the catalog.
type Record struct {
	// ID is the UUID assigned when the record was added.
	ID string `json:"id"`
	// Title is the work title taken from the document header.
	Title string `json:"title"`
	// Author is the work author taken from the document header.
	Author string `json:"author"`
	// Source is the path the work was converted from.
	Source string `json:"source"`
	// Format is the output format the work was converted to.
	Format Format `json:"format"`
	// SourceHash is the BLAKE3 hash of the source bytes, hex encoded.
	SourceHash string `json:"source_hash"`
	// CreatedAt is the UTC time the record was added.
	CreatedAt time.Time `json:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL,
	source      TEXT NOT NULL,
	format      TEXT NOT NULL,
	source_hash TEXT NOT NULL UNIQUE,
	created_at  TEXT NOT NULL
)`

// Catalog is a handle to the conversion catalog database.
type Catalog struct {
	db *sql.DB
}

// Open opens the catalog database at path, creating the parent directory
// and the schema if needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.NewIO("create", dir, err)
		}
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create catalog schema")
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// HashSource returns the hex-encoded BLAKE3 hash of the source bytes.
func HashSource(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Add stores a new record for the given source bytes, noting the path they
// came from. Adding the same source twice returns ErrAlreadyExists.
func (c *Catalog) Add(data []byte, source, title, author string, format Format) (*Record, error) {
	if !format.IsValid() {
		return nil, errors.NewValidation("format", "must be html or text")
	}

	hash := HashSource(data)
	if existing, err := c.FindByHash(hash); err == nil {
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "catalog record %s for hash %s", existing.ID, hash)
	} else if !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	rec := &Record{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     author,
		Source:     source,
		Format:     format,
		SourceHash: hash,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := c.db.Exec(
		`INSERT INTO conversions (id, title, author, source, format, source_hash, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Author, rec.Source, string(rec.Format), rec.SourceHash,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, errors.Wrap(err, "insert catalog record")
	}
	return rec, nil
}

// List returns all records, newest first.
func (c *Catalog) List() ([]Record, error) {
	rows, err := c.db.Query(
		`SELECT id, title, author, source, format, source_hash, created_at FROM conversions ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query catalog records")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read catalog records")
	}
	return records, nil
}

// FindByHash returns the record for a source hash, or ErrNotFound.
func (c *Catalog) FindByHash(hash string) (*Record, error) {
	row := c.db.QueryRow(
		`SELECT id, title, author, source, format, source_hash, created_at FROM conversions WHERE source_hash = ?`, hash)
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFound("catalog record", hash)
	}
	return rec, err
}

func scanRecord(scan func(...any) error) (*Record, error) {
	var rec Record
	var format, created string
	if err := scan(&rec.ID, &rec.Title, &rec.Author, &rec.Source, &format, &rec.SourceHash, &created); err != nil {
		return nil, err
	}
	rec.Format = Format(format)
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, errors.NewParse("timestamp", "", err.Error())
	}
	rec.CreatedAt = ts
	return &rec, nil
}
