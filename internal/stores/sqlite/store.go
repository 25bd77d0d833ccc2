// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sqlite implements the scan store: parsed-file summaries and
// their diagnostics, persisted so repeated scans of a project tree
// can be compared without re-reading every artifact.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/playbymail/vb6parse/cerrs"
	"github.com/playbymail/vb6parse/internal/diagnostics"
	"github.com/playbymail/vb6parse/internal/stdlib"
	_ "modernc.org/sqlite"
)

var (
	//go:embed schema.sql
	schemaDDL string
)

type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// Create creates a new store.
// Returns an error if the database file already exists.
// The caller must delete the database file if they want to start fresh.
func Create(path string, ctx context.Context) error {
	// if the stat fails because the file doesn't exist, we're okay.
	// if it fails for any other reason, it's an error.
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("db: create: %q: %s\n", path, err)
		return err
	} else if ok {
		log.Printf("db: create: %q: %s\n", path, "database already exists")
		return cerrs.ErrDatabaseExists
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("db: create: %v\n", err)
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Printf("db: create: foreign keys are disabled\n")
		return err
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		log.Printf("db: create: failed to initialize schema\n")
		log.Printf("db: create: %v\n", err)
		return errors.Join(cerrs.ErrCreateSchema, err)
	}

	log.Printf("db: create: created %s\n", path)
	return nil
}

// Open opens an existing store.
// Caller must call Close() when done.
func Open(path string, ctx context.Context) (*Store, error) {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("db: open: %q: %v\n", path, err)
		return nil, err
	} else if !ok {
		log.Printf("db: open: %q: %s\n", path, "not a database")
		return nil, cerrs.ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("db: open: %s: %v\n", path, err)
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		log.Printf("db: open: foreign keys are disabled\n")
		return nil, err
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

func (s *Store) Close() error {
	var err error
	if s != nil && s.db != nil {
		err = s.db.Close()
		s.db = nil
	}
	return err
}

// Scan is one recorded pass over a project tree.
type Scan struct {
	ID        string
	RootPath  string
	CreatedAt time.Time
	Files     int
	Failures  int
}

// FileSummary is one parsed artifact within a scan.
type FileSummary struct {
	ID       int64
	Path     string
	Kind     string
	Name     string
	Checksum string
	ParsedOK bool
}

// CreateScan records the start of a scan and returns its id.
func (s *Store) CreateScan(rootPath string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO scans (id, root_path, created_at) VALUES (?1, ?2, ?3)`,
		id, rootPath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// FinishScan stores the scan's final counts.
func (s *Store) FinishScan(scanID string, files, failures int) error {
	_, err := s.db.ExecContext(s.ctx,
		`UPDATE scans SET files = ?2, failures = ?3 WHERE id = ?1`,
		scanID, files, failures)
	return err
}

// InsertFile records one parsed artifact and its diagnostics.
func (s *Store) InsertFile(scanID string, file FileSummary, diags []diagnostics.Diagnostic) error {
	result, err := s.db.ExecContext(s.ctx,
		`INSERT INTO files (scan_id, path, kind, name, checksum, parsed_ok)
		 VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
		scanID, file.Path, file.Kind, file.Name, file.Checksum, file.ParsedOK)
	if err != nil {
		return err
	}
	fileID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	for _, d := range diags {
		_, err := s.db.ExecContext(s.ctx,
			`INSERT INTO diagnostics (file_id, layer, severity, message, offset, line)
			 VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
			fileID, d.Kind.Layer().String(), d.Severity.String(), d.Message(),
			d.PrimarySpan.Offset, d.PrimarySpan.LineStart)
		if err != nil {
			return err
		}
	}
	return nil
}

// Scans returns every recorded scan, newest first.
func (s *Store) Scans() ([]Scan, error) {
	rows, err := s.db.QueryContext(s.ctx,
		`SELECT id, root_path, created_at, files, failures FROM scans ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var scan Scan
		var createdAt string
		if err := rows.Scan(&scan.ID, &scan.RootPath, &createdAt, &scan.Files, &scan.Failures); err != nil {
			return nil, err
		}
		scan.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

// Files returns the parsed artifacts of one scan.
func (s *Store) Files(scanID string) ([]FileSummary, error) {
	rows, err := s.db.QueryContext(s.ctx,
		`SELECT id, path, kind, name, checksum, parsed_ok FROM files WHERE scan_id = ?1 ORDER BY path`,
		scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []FileSummary
	for rows.Next() {
		var file FileSummary
		if err := rows.Scan(&file.ID, &file.Path, &file.Kind, &file.Name, &file.Checksum, &file.ParsedOK); err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}
