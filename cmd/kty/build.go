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

package main

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-kty"
	"github.com/ianlewis/go-kty/internal/config"
	"github.com/ianlewis/go-kty/internal/diag"
	"github.com/ianlewis/go-kty/internal/logging"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/variant"
	"github.com/ianlewis/go-kty/yomitan"
)

const snapshotLayout = "2006-01-02"

const extractSuffix = "-extract.jsonl"

func newBuildCommand(kind variant.Kind, usage, argsUsage string) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     usage,
		ArgsUsage: argsUsage,
		Action: func(c *cli.Context) error {
			return runBuild(c, kind)
		},
	}
}

// parseLangs parses the language arguments of a build command.
func parseLangs(kind variant.Kind, args []string) (variant.Langs, error) {
	var langs variant.Langs

	want := 2
	switch kind {
	case variant.KindIpaMerged:
		want = 1
	case variant.KindGlossaryExtended:
		want = 3
	}
	if len(args) != want {
		return langs, fmt.Errorf("%w: %s: want %d language codes, got %d", ErrFlagParse, kind, want, len(args))
	}

	codes := make([]lang.Code, len(args))
	for i, arg := range args {
		code, err := lang.Parse(arg)
		if err != nil {
			return langs, fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		codes[i] = code
	}

	switch kind {
	case variant.KindIpaMerged:
		langs.Target = codes[0]
	case variant.KindGlossaryExtended:
		langs.Edition, langs.Source, langs.Target = codes[0], codes[1], codes[2]
	default:
		langs.Source, langs.Target = codes[0], codes[1]
	}
	return langs, nil
}

// findDatasets returns the extracts for edition. Extracts are read from
// {root}/kaikki/{edition}-extract.jsonl unless given with --dataset. For
// all editions every extract found is returned.
func findDatasets(root string, edition lang.Code, overrides []string) ([]kty.Dataset, error) {
	paths := map[lang.Code]string{}
	if edition == lang.All {
		matches, err := filepath.Glob(filepath.Join(root, "kaikki", "*"+extractSuffix))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKty, err)
		}
		for _, m := range matches {
			code, err := lang.Parse(strings.TrimSuffix(filepath.Base(m), extractSuffix))
			if err != nil {
				continue
			}
			paths[code] = m
		}
	} else {
		paths[edition] = filepath.Join(root, "kaikki", edition.String()+extractSuffix)
	}

	for _, o := range overrides {
		e, path, ok := strings.Cut(o, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: --dataset %q: want EDITION=PATH", ErrFlagParse, o)
		}
		code, err := lang.Parse(e)
		if err != nil {
			return nil, fmt.Errorf("%w: --dataset %q: %w", ErrFlagParse, o, err)
		}
		if edition == lang.All || code == edition {
			paths[code] = path
		}
	}

	var datasets []kty.Dataset
	for _, code := range slices.Sorted(maps.Keys(paths)) {
		path := paths[code]
		if _, err := os.Stat(path); err != nil {
			if edition == lang.All {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %w", kty.ErrNoDataset, code, err)
		}
		datasets = append(datasets, kty.Dataset{Edition: code, Path: path})
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("%w: no extracts under %s", kty.ErrNoDataset, filepath.Join(root, "kaikki"))
	}
	return datasets, nil
}

// parseMatches parses the --filter or --reject flag values.
func parseMatches(flag string, values []string) ([]kaikki.Match, error) {
	var matches []kaikki.Match
	for _, v := range values {
		m, err := kaikki.ParseMatch(v)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %w", ErrFlagParse, flag, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// parseSnapshot returns the snapshot date. It defaults to the day the most
// recent extract was modified.
func parseSnapshot(s string, datasets []kty.Dataset) (time.Time, error) {
	if s != "" {
		t, err := time.Parse(snapshotLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: --snapshot: %w", ErrFlagParse, err)
		}
		return t, nil
	}

	var latest time.Time
	for _, d := range datasets {
		fi, err := os.Stat(d.Path)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrKty, err)
		}
		if fi.ModTime().After(latest) {
			latest = fi.ModTime()
		}
	}
	return latest.UTC().Truncate(24 * time.Hour), nil
}

func runBuild(c *cli.Context, kind variant.Kind) error {
	langs, err := parseLangs(kind, c.Args().Slice())
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err //nolint:wrapcheck // errors wrap config.ErrInvalid
	}

	log, err := logging.New(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrKty, err)
	}
	defer func() { _ = log.Sync() }()

	b, err := variant.New(kind, langs, &variant.Options{
		PronunciationCategories: cfg.PronunciationCategories,
	})
	if err != nil {
		return err //nolint:wrapcheck // errors wrap variant.ErrLangs
	}

	root := c.String("root-dir")
	datasets, err := findDatasets(root, b.Langs().Edition, c.StringSlice("dataset"))
	if err != nil {
		return err
	}
	snapshot, err := parseSnapshot(c.String("snapshot"), datasets)
	if err != nil {
		return err
	}

	filter, err := parseMatches("filter", c.StringSlice("filter"))
	if err != nil {
		return err
	}
	reject, err := parseMatches("reject", c.StringSlice("reject"))
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return err //nolint:wrapcheck // errors wrap tag.ErrConfig
	}

	d := diag.New()
	opts := &kty.Options{
		Logger:      log,
		Table:       table,
		Diagnostics: d,
		Workers:     cfg.Workers,
		First:       c.Int("first"),
		Filter:      filter,
		Reject:      reject,
		Snapshot:    snapshot,
		Index: yomitan.IndexOptions{
			BaseURL:     cfg.PublishURL(),
			Author:      cfg.Author,
			URL:         cfg.URL,
			Description: cfg.Description,
			Attribution: cfg.Attribution,
		},
	}

	saveTemps := c.Bool("save-temps")
	tempDir := filepath.Join(root, "temp")
	var tidy *bufio.Writer
	if saveTemps {
		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrKty, err)
		}
		f, err := os.Create(filepath.Join(tempDir, "tidy.jsonl"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrKty, err)
		}
		defer f.Close()
		tidy = bufio.NewWriter(f)
		opts.Tidy = tidy
	}

	log.Debug("building dictionary",
		zap.String("name", b.Name()),
		zap.Int("datasets", len(datasets)),
		zap.Time("snapshot", snapshot),
	)
	res, report, err := kty.Build(c.Context, b, datasets, opts)
	if err != nil {
		return err //nolint:wrapcheck // errors are wrapped by kty
	}

	paths, err := res.Write(root, &kty.WriteOptions{
		BankSize:  cfg.BankSize,
		Pretty:    c.Bool("pretty"),
		SaveTemps: saveTemps,
		StarDict:  c.Bool("stardict"),
		PlainText: c.Bool("plain-text"),
	})
	if err != nil {
		return err //nolint:wrapcheck // errors name the file
	}

	if saveTemps {
		if err := tidy.Flush(); err != nil {
			return fmt.Errorf("%w: writing entries: %w", ErrKty, err)
		}
		if err := d.Write(filepath.Join(tempDir, "diagnostics")); err != nil {
			return err //nolint:wrapcheck // errors name the file
		}
		paths = append(paths, filepath.Join(tempDir, "tidy.jsonl"))
	}

	if !c.Bool("quiet") {
		printReport(c.App.Writer, res, report, paths)
	}
	return nil
}
