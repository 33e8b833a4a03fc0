// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomlath/analysis"
	"github.com/katalvlaran/atomlath/logger"
	"github.com/katalvlaran/atomlath/metrics"
	"github.com/katalvlaran/atomlath/resultdb"
	"github.com/katalvlaran/atomlath/snapshot"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var input, label string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the configured analysis on a snapshot",
		Long: `Read a YAML snapshot, run the configured analysis and print a report.

Examples:
  atomlath analyze -i fcc.yaml
  atomlath analyze -i fcc.yaml --method sann --db runs.db
  cat fcc.yaml | atomlath analyze -i -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd.Context(), input, label, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "snapshot file, - for stdin")
	f.StringVar(&label, "label", "", "run label stored with the results")
	f.String("method", "", "neighbor method (cutoff, number, sann, adaptive, voronoi)")
	f.Float64("cutoff", 0, "neighbor cutoff for method cutoff")
	f.Int("workers", 1, "pair histogram workers")
	f.String("db", "", "SQLite result database")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address during the run")
	_ = cmd.MarkFlagRequired("input")
	for key, name := range map[string]string{
		"neighbors.method":  "method",
		"neighbors.cutoff":  "cutoff",
		"histogram.workers": "workers",
		"database.path":     "db",
		"metrics.addr":      "metrics-addr",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(name))
	}
	return cmd
}

func (a *app) analyze(ctx context.Context, input, label string, out io.Writer) error {
	log := logger.With("analyze")
	if ctx == nil {
		ctx = context.Background()
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		fh, err := os.Open(input)
		if err != nil {
			return errors.Wrapf(err, "open %s", input)
		}
		defer fh.Close()
		r = fh
	}
	snap, err := snapshot.Read(r)
	if err != nil {
		return err
	}
	sys, err := snap.ToSystem()
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithLogger(log), analysis.WithLabel(label)}
	rec := metrics.New(a.cfg.Metrics.Namespace)
	opts = append(opts, analysis.WithMetrics(rec))
	if addr := a.cfg.Metrics.Addr; addr != "" {
		stop, err := serveMetrics(addr, rec)
		if err != nil {
			return err
		}
		defer stop()
		log.Infow("serving metrics", "addr", addr)
	}
	if path := a.cfg.Database.Path; path != "" {
		store, err := resultdb.Open(path, log)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, analysis.WithStore(store))
	}

	rep, err := analysis.Run(ctx, sys, a.cfg, opts...)
	if err != nil {
		return err
	}
	return rep.WriteText(out)
}

func serveMetrics(addr string, rec *metrics.Recorder) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() { _ = srv.Serve(ln) }()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
