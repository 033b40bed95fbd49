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
	"io"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/ianlewis/go-kty/internal/diag"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/tag"
	"github.com/ianlewis/go-kty/yomitan"
)

// DefaultBatchSize is the default number of records normalized together.
const DefaultBatchSize = 1024

// progressInterval is the number of lines between progress messages.
const progressInterval = 10000

// Options are options for [Build] and [BuildAll].
type Options struct {
	// Logger receives progress and diagnostic messages. If nil nothing is
	// logged.
	Logger *zap.Logger

	// Table is the tag table. If nil the table is loaded from TagOrderPath
	// and TagInfoPath, or the embedded default table when those are empty.
	Table *tag.Table

	TagOrderPath string
	TagInfoPath  string

	// Diagnostics receives tag and skipped record diagnostics. If nil a new
	// one is used.
	Diagnostics *diag.Diagnostics

	// Workers is the number of records normalized concurrently. Defaults to
	// runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize is the number of records read before they are normalized.
	BatchSize int

	// First stops reading a dataset after this many records are accepted.
	// Zero reads the whole dataset.
	First int

	// Filter and Reject select records before they are counted against
	// First. A record is read only if it matches every filter and no reject.
	Filter []kaikki.Match
	Reject []kaikki.Match

	// MaxLineSize is the size of the largest line decoded. Longer lines are
	// skipped as malformed. Zero uses the scanner's default.
	MaxLineSize int

	// Snapshot is the date of the extracts. It sets the revision of the
	// dictionaries and of the entries.
	Snapshot time.Time

	// Index holds the metadata copied into every dictionary index. Name,
	// Source, Target and Snapshot are set per dictionary.
	Index yomitan.IndexOptions

	// Tidy receives the normalized entries as JSONL if not nil.
	Tidy io.Writer
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o *Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

func (o *Options) table() (*tag.Table, error) {
	switch {
	case o.Table != nil:
		return o.Table, nil
	case o.TagOrderPath != "" || o.TagInfoPath != "":
		//nolint:wrapcheck // errors name the offending file
		return tag.LoadFiles(o.TagOrderPath, o.TagInfoPath)
	default:
		//nolint:wrapcheck // errors wrap tag.ErrConfig
		return tag.Default()
	}
}
