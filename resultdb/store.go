// SPDX-License-Identifier: MIT

// Package resultdb persists analysis runs in SQLite: one row per run,
// per-atom results, per-atom bond order by ℓ, and histogram bins.
package resultdb

import (
	"context"
	"database/sql"
	_ "embed"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/katalvlaran/atomlath/atoms"
)

//go:embed schema.sql
var schema string

// BusyTimeoutMS is the SQLite busy timeout applied on Open.
const BusyTimeoutMS = 5000

// ErrRunNotFound is returned for an unknown run id.
var ErrRunNotFound = errors.New("resultdb: run not found")

// Store wraps an open database.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// Run describes one stored analysis.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Label     string
	Method    string
	AtomCount int
	Config    string // TOML snapshot of the settings
}

// Histogram is a named set of equal-width bins over [Low, High].
type Histogram struct {
	Name      string
	Low, High float64
	Counts    []int
}

// AtomRecord is one stored atom.
type AtomRecord struct {
	ID, Type       int
	X, Y, Z        float64
	Neighbors      int
	Cutoff         float64
	Structure      int
	Cluster        int
	Solid, Surface bool
	Centrosymmetry float64
	Entropy        float64
	Disorder       float64
	Volume         float64
	Q, W, AQ, AW   map[int]float64
}

// Open opens (or creates) the database at path with WAL journaling, foreign
// keys and a busy timeout, then applies the schema. log may be nil.
func Open(path string, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log.Debugw("opening result database", "path", path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "resultdb: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "resultdb: %s", pragma)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "resultdb: apply schema")
	}
	log.Infow("result database ready", "path", path)
	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the handle for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

// SaveRun stores run metadata, the real atoms of sys and hists in one
// transaction. A zero run.ID is replaced by a fresh UUID; the id is returned.
func (s *Store) SaveRun(ctx context.Context, run Run, sys *atoms.System, hists []Histogram) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.AtomCount = sys.RealCount()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "resultdb: begin")
	}
	defer func() { _ = tx.Rollback() }()

	id := run.ID.String()
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, label, method, atom_count, config) VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.CreatedAt, run.Label, run.Method, run.AtomCount, run.Config); err != nil {
		return uuid.Nil, errors.Wrap(err, "resultdb: insert run")
	}
	if err = insertAtoms(ctx, tx, id, sys); err != nil {
		return uuid.Nil, err
	}
	if err = insertHistograms(ctx, tx, id, hists); err != nil {
		return uuid.Nil, err
	}
	if err = tx.Commit(); err != nil {
		return uuid.Nil, errors.Wrap(err, "resultdb: commit")
	}
	s.log.Infow("run saved", "run_id", id, "atoms", run.AtomCount, "histograms", len(hists))
	return run.ID, nil
}

func insertAtoms(ctx context.Context, tx *sql.Tx, run string, sys *atoms.System) error {
	atomStmt, err := tx.PrepareContext(ctx, `INSERT INTO atoms (run_id, atom_id, type, x, y, z, neighbors, cutoff,
		structure, cluster, solid, surface, centrosymmetry, entropy, disorder, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "resultdb: prepare atoms")
	}
	defer atomStmt.Close()
	orderStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO atom_order (run_id, atom_id, l, q, w, aq, aw) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "resultdb: prepare order")
	}
	defer orderStmt.Close()

	for i := 0; i < sys.RealCount(); i++ {
		a := sys.At(i)
		if _, err := atomStmt.ExecContext(ctx, run, a.ID, a.Type, a.Position.X, a.Position.Y, a.Position.Z,
			a.Neighbors.Len(), a.Cutoff, a.Structure, a.Cluster, a.Solid, a.Surface,
			a.Centrosymmetry, a.Entropy, a.Disorder, a.Volume); err != nil {
			return errors.Wrapf(err, "resultdb: insert atom %d", a.ID)
		}
		for _, l := range sortedKeys(a.Q) {
			if _, err := orderStmt.ExecContext(ctx, run, a.ID, l, a.Q[l], a.W[l], a.AQ[l], a.AW[l]); err != nil {
				return errors.Wrapf(err, "resultdb: insert order atom %d l %d", a.ID, l)
			}
		}
	}
	return nil
}

func insertHistograms(ctx context.Context, tx *sql.Tx, run string, hists []Histogram) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO histograms (run_id, name, low, high, bin, count) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "resultdb: prepare histograms")
	}
	defer stmt.Close()
	for _, h := range hists {
		for k, c := range h.Counts {
			if _, err := stmt.ExecContext(ctx, run, h.Name, h.Low, h.High, k, c); err != nil {
				return errors.Wrapf(err, "resultdb: insert histogram %s", h.Name)
			}
		}
	}
	return nil
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
