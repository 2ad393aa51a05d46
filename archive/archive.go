/*
 * archive.go, part of stogto.
 *
 * Copyright 2025 The stogto Authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package archive keeps a record of the computed overlap matrices in a
//SQLite database, together with where they came from. Records are written
//once per run and are not used again by the computation.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/overlap"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS overlap_runs (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  uuid       TEXT    NOT NULL UNIQUE,
  created    TEXT    NOT NULL,
  source     TEXT    NOT NULL,
  quad_order INTEGER NOT NULL,
  nrows      INTEGER NOT NULL,
  ncols      INTEGER NOT NULL,
  payload    TEXT    NOT NULL
)`

//Record is one stored overlap matrix.
type Record struct {
	ID        int64
	UUID      string //stable across copies of the database
	Created   time.Time
	Source    string //usually the Molden file the matrix was computed from
	QuadOrder int
	Rows      int
	Cols      int
	Matrix    *overlap.Matrix //nil in the records returned by List
}

//Store is an archive of overlap matrices.
type Store struct {
	path string
	db   *sql.DB
}

//Open opens the archive in the file path, creating it if needed.
func Open(path string) (*Store, error) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil, stogto.NewError(stogto.ConfigurationError, "archive.Open", "archive path must not be empty")
	}
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return nil, stogto.NewError(stogto.ConfigurationError, "archive.Open", "archive path %q is a directory", clean)
	}
	if dir := filepath.Dir(clean); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("archive: create directory %q: %w", dir, err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", clean)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open %q: %w", clean, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: ping %q: %w", clean, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: create schema in %q: %w", clean, err)
	}
	return &Store{path: clean, db: db}, nil
}

//Close closes the archive.
func (S *Store) Close() error {
	if S == nil || S.db == nil {
		return nil
	}
	return S.db.Close()
}

//Save stores M, computed from source with an order-point quadrature, and
//returns the record, without the matrix.
func (S *Store) Save(ctx context.Context, source string, order int, M *overlap.Matrix) (*Record, error) {
	if M == nil {
		return nil, stogto.NewError(stogto.MissingParameter, "archive.Save", "nil matrix")
	}
	payload, err := json.Marshal(M)
	if err != nil {
		return nil, fmt.Errorf("archive: encode matrix: %w", err)
	}
	r, c := M.Dims()
	rec := &Record{UUID: uuid.NewString(), Created: time.Now().UTC(), Source: source, QuadOrder: order, Rows: r, Cols: c}
	res, err := S.db.ExecContext(ctx,
		`INSERT INTO overlap_runs (uuid, created, source, quad_order, nrows, ncols, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.UUID, rec.Created.Format(time.RFC3339Nano), source, order, r, c, string(payload))
	if err != nil {
		return nil, fmt.Errorf("archive: save: %w", err)
	}
	rec.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("archive: save: %w", err)
	}
	return rec, nil
}

//Get returns the record with the given id, including its matrix.
//It returns sql.ErrNoRows, wrapped, if there is no such record.
func (S *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := S.db.QueryRowContext(ctx,
		`SELECT id, uuid, created, source, quad_order, nrows, ncols, payload FROM overlap_runs WHERE id = ?`, id)
	var rec Record
	var created, payload string
	if err := row.Scan(&rec.ID, &rec.UUID, &created, &rec.Source, &rec.QuadOrder, &rec.Rows, &rec.Cols, &payload); err != nil {
		return nil, fmt.Errorf("archive: get %d: %w", id, err)
	}
	if err := rec.setCreated(created); err != nil {
		return nil, err
	}
	rec.Matrix = new(overlap.Matrix)
	if err := json.Unmarshal([]byte(payload), rec.Matrix); err != nil {
		return nil, fmt.Errorf("archive: decode matrix %d: %w", id, err)
	}
	return &rec, nil
}

//List returns all the records, oldest first, without their matrices.
func (S *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := S.db.QueryContext(ctx,
		`SELECT id, uuid, created, source, quad_order, nrows, ncols FROM overlap_runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()
	var ret []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &rec.UUID, &created, &rec.Source, &rec.QuadOrder, &rec.Rows, &rec.Cols); err != nil {
			return nil, fmt.Errorf("archive: list: %w", err)
		}
		if err := rec.setCreated(created); err != nil {
			return nil, err
		}
		ret = append(ret, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return ret, nil
}

func (rec *Record) setCreated(s string) error {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("archive: record %d has an invalid date %q: %w", rec.ID, s, err)
	}
	rec.Created = t
	return nil
}
