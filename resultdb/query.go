// SPDX-License-Identifier: MIT

package resultdb

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, label, method, atom_count, config FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, errors.Wrap(err, "resultdb: list runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r  Run
			id string
		)
		if err := rows.Scan(&id, &r.CreatedAt, &r.Label, &r.Method, &r.AtomCount, &r.Config); err != nil {
			return nil, errors.Wrap(err, "resultdb: scan run")
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "resultdb: run id %q", id)
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "resultdb: iterate runs")
}

func (s *Store) requireRun(ctx context.Context, id uuid.UUID) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, id.String()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrRunNotFound, "run %s", id)
	}
	return errors.Wrap(err, "resultdb: lookup run")
}

// LoadAtoms returns the atoms stored for run id, ordered by atom id.
func (s *Store) LoadAtoms(ctx context.Context, id uuid.UUID) ([]AtomRecord, error) {
	if err := s.requireRun(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT atom_id, type, x, y, z, neighbors, cutoff, structure, cluster,
		solid, surface, centrosymmetry, entropy, disorder, volume FROM atoms WHERE run_id = ? ORDER BY atom_id`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "resultdb: query atoms")
	}
	defer rows.Close()

	var out []AtomRecord
	index := map[int]int{}
	for rows.Next() {
		var r AtomRecord
		if err := rows.Scan(&r.ID, &r.Type, &r.X, &r.Y, &r.Z, &r.Neighbors, &r.Cutoff, &r.Structure, &r.Cluster,
			&r.Solid, &r.Surface, &r.Centrosymmetry, &r.Entropy, &r.Disorder, &r.Volume); err != nil {
			return nil, errors.Wrap(err, "resultdb: scan atom")
		}
		r.Q, r.W, r.AQ, r.AW = map[int]float64{}, map[int]float64{}, map[int]float64{}, map[int]float64{}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "resultdb: iterate atoms")
	}

	orows, err := s.db.QueryContext(ctx, `SELECT atom_id, l, q, w, aq, aw FROM atom_order WHERE run_id = ?`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "resultdb: query order")
	}
	defer orows.Close()
	for orows.Next() {
		var (
			atomID, l    int
			q, w, aq, aw float64
		)
		if err := orows.Scan(&atomID, &l, &q, &w, &aq, &aw); err != nil {
			return nil, errors.Wrap(err, "resultdb: scan order")
		}
		if k, ok := index[atomID]; ok {
			out[k].Q[l], out[k].W[l], out[k].AQ[l], out[k].AW[l] = q, w, aq, aw
		}
	}
	return out, errors.Wrap(orows.Err(), "resultdb: iterate order")
}

// LoadHistograms returns the histograms stored for run id, by name.
func (s *Store) LoadHistograms(ctx context.Context, id uuid.UUID) ([]Histogram, error) {
	if err := s.requireRun(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, low, high, count FROM histograms WHERE run_id = ? ORDER BY name, bin`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "resultdb: query histograms")
	}
	defer rows.Close()

	var out []Histogram
	for rows.Next() {
		var (
			name      string
			low, high float64
			count     int
		)
		if err := rows.Scan(&name, &low, &high, &count); err != nil {
			return nil, errors.Wrap(err, "resultdb: scan histogram")
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, Histogram{Name: name, Low: low, High: high})
		}
		h := &out[len(out)-1]
		h.Counts = append(h.Counts, count)
	}
	return out, errors.Wrap(rows.Err(), "resultdb: iterate histograms")
}
