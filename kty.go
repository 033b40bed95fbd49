// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/internal/diag"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/variant"
	"github.com/ianlewis/go-kty/yomitan"
)

// ErrNoDataset indicates that no dataset was given for an edition that a
// dictionary needs.
var ErrNoDataset = errors.New("no dataset")

// Dataset is a kaikki.org extract of one Wiktionary edition.
type Dataset struct {
	Edition lang.Code
	Path    string

	// Open opens the extract. If nil the file at Path is opened.
	Open func() (io.ReadCloser, error)
}

func (d *Dataset) scanner(opts *kaikki.ScannerOptions) (*kaikki.Scanner, error) {
	if d.Open == nil {
		//nolint:wrapcheck // error includes the path
		return kaikki.Open(d.Path, opts)
	}
	r, err := d.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s dataset: %w", d.Edition, err)
	}
	return kaikki.NewScanner(r, opts), nil
}

// Result is a built dictionary.
type Result struct {
	Kind  variant.Kind
	Name  string
	Langs variant.Langs

	// Package is nil if no records were kept for the dictionary.
	Package *yomitan.Package
}

// Build builds a single dictionary. See [BuildAll].
func Build(ctx context.Context, b variant.Builder, datasets []Dataset, opts *Options) (*Result, *Report, error) {
	results, report, err := BuildAll(ctx, []variant.Builder{b}, datasets, opts)
	if err != nil {
		return nil, report, err
	}
	return results[0], report, nil
}

// BuildAll reads each needed dataset once and builds a dictionary for each
// builder. Results are returned in the order of builders. Records that fail
// to decode or normalize are skipped and counted in the report, as are lines
// longer than the maximum line size. Tag table errors are returned before any
// dataset is read.
func BuildAll(ctx context.Context, builders []variant.Builder, datasets []Dataset, opts *Options) ([]*Result, *Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	report := &Report{}

	table, err := opts.table()
	if err != nil {
		return nil, report, err
	}

	for _, b := range builders {
		if !slices.ContainsFunc(datasets, func(d Dataset) bool { return reads(b, d.Edition) }) {
			return nil, report, fmt.Errorf("%w: %s needs the %s edition", ErrNoDataset, b.Name(), b.Langs().Edition)
		}
	}

	d := opts.Diagnostics
	if d == nil {
		d = diag.New()
	}
	p := &pipeline{
		opts:     opts,
		log:      opts.logger(),
		diag:     d,
		post:     entry.NewPostprocessor(table, d),
		builders: builders,
		entries:  make([][]*entry.Entry, len(builders)),
		report:   report,
	}
	if opts.Tidy != nil {
		p.tidy = json.NewEncoder(opts.Tidy)
		p.tidy.SetEscapeHTML(false)
	}

	for i := range datasets {
		ds := &datasets[i]
		if !slices.ContainsFunc(builders, func(b variant.Builder) bool { return reads(b, ds.Edition) }) {
			continue
		}
		if err := p.read(ctx, ds); err != nil {
			return nil, report, err
		}
	}

	// Every dataset is read before any dictionary is built so merged
	// dictionaries see all editions.
	results := make([]*Result, len(builders))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range builders {
		g.Go(func() error {
			r, err := p.build(gctx, b, p.entries[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, report, err //nolint:wrapcheck // errors are wrapped by build
	}

	report.finish(d, results)
	return results, report, nil
}

// reads reports whether b uses records from edition.
func reads(b variant.Builder, edition lang.Code) bool {
	e := b.Langs().Edition
	return e == lang.All || e == edition
}

type record struct {
	line int
	raw  *kaikki.Entry

	// keep holds the indexes of the builders that use the record.
	keep []int
}

type pipeline struct {
	opts     *Options
	log      *zap.Logger
	diag     *diag.Diagnostics
	post     *entry.Postprocessor
	builders []variant.Builder
	tidy     *json.Encoder

	// entries holds the entries for each builder in input order.
	entries [][]*entry.Entry
	report  *Report
}

// read streams a dataset and normalizes the records kept by any builder.
func (p *pipeline) read(ctx context.Context, ds *Dataset) error {
	s, err := ds.scanner(&kaikki.ScannerOptions{MaxLineSize: p.opts.MaxLineSize})
	if err != nil {
		return err
	}
	defer s.Close()

	log := p.log.With(zap.Stringer("edition", ds.Edition))
	normOpts := &entry.NormalizeOptions{
		Edition:  ds.Edition,
		Revision: p.opts.Snapshot,
	}
	size := p.opts.batchSize()
	batch := make([]record, 0, size)
	accepted := 0

	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context errors are returned as is
		}
		if s.Line()%progressInterval == 0 {
			log.Info("reading dataset", zap.Int("lines", s.Line()), zap.Int("accepted", accepted))
		}

		raw, err := s.Entry()
		if err != nil {
			p.report.Malformed++
			p.diag.Skip(diag.Skipped{
				Edition: ds.Edition.String(),
				Line:    s.Line(),
				Reason:  err.Error(),
			})
			log.Debug("skipping malformed line", zap.Int("line", s.Line()), zap.Error(err))
			continue
		}

		if !kaikki.Selected(raw, p.opts.Filter, p.opts.Reject) {
			p.report.Rejected++
			continue
		}

		var keep []int
		for i, b := range p.builders {
			if b.Keep(ds.Edition, raw) {
				keep = append(keep, i)
			}
		}
		if len(keep) == 0 {
			continue
		}

		accepted++
		batch = append(batch, record{line: s.Line(), raw: raw, keep: keep})
		if len(batch) == size {
			if err := p.process(normOpts, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
		if p.opts.First > 0 && accepted >= p.opts.First {
			break
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s dataset: %w", ds.Edition, err)
	}
	if err := p.process(normOpts, batch); err != nil {
		return err
	}

	p.report.Lines += s.Line()
	log.Info("read dataset", zap.Int("lines", s.Line()), zap.Int("accepted", accepted))
	return nil
}

// process normalizes and postprocesses a batch concurrently. Entries and
// their diagnostics are recorded in input order.
func (p *pipeline) process(opts *entry.NormalizeOptions, batch []record) error {
	slots := make([]*entry.Entry, len(batch))
	logs := make([]diag.Log, len(batch))

	var g errgroup.Group
	g.SetLimit(p.opts.workers())
	for i := range batch {
		g.Go(func() error {
			r := &batch[i]
			e, err := entry.Normalize(r.raw, opts)
			if err != nil {
				logs[i].Skip(diag.Skipped{
					Edition: opts.Edition.String(),
					Line:    r.line,
					Word:    r.raw.Word,
					Reason:  err.Error(),
				})
				return nil
			}
			p.post.ProcessTo(e, &logs[i])
			slots[i] = e
			return nil
		})
	}
	_ = g.Wait()

	for i, e := range slots {
		p.diag.Apply(&logs[i])
		if e == nil {
			p.report.Skipped++
			p.log.Debug("skipping record", zap.Int("line", batch[i].line), zap.String("word", batch[i].raw.Word))
			continue
		}
		p.report.Processed++
		for _, b := range batch[i].keep {
			p.entries[b] = append(p.entries[b], e)
		}
		if p.tidy != nil {
			if err := p.tidy.Encode(e); err != nil {
				return fmt.Errorf("writing entries: %w", err)
			}
		}
	}
	return nil
}

// build projects the entries of one dictionary into a package.
func (p *pipeline) build(ctx context.Context, b variant.Builder, entries []*entry.Entry) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context errors are returned as is
	}

	r := &Result{
		Kind:  b.Kind(),
		Name:  b.Name(),
		Langs: b.Langs(),
	}
	log := p.log.With(zap.String("dictionary", r.Name))
	if len(entries) == 0 {
		log.Warn("no entries found")
		return r, nil
	}

	out, err := b.Build(entries)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", r.Name, err)
	}

	indexOpts := p.opts.Index
	indexOpts.Name = r.Name
	indexOpts.Source = r.Langs.Source
	indexOpts.Target = r.Langs.Target
	indexOpts.Snapshot = p.opts.Snapshot

	r.Package, err = yomitan.Emit(out, yomitan.NewIndex(&indexOpts))
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", r.Name, err)
	}
	log.Info("built dictionary",
		zap.Int("entries", len(entries)),
		zap.Int("terms", len(r.Package.Terms)),
		zap.Int("meta", len(r.Package.Meta)),
	)
	return r, nil
}
