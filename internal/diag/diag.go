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

// Package diag collects corpus-quality diagnostics during a build: which
// tags were resolved or dropped and which records were skipped.
package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// maxSkipped is the number of skipped records kept for the report. Counts are
// always exact.
const maxSkipped = 100

// TagCount is the number of times a tag was seen and the first word it was
// seen on.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Word  string `json:"word"`
}

// Skipped is a record that was skipped.
type Skipped struct {
	Edition string `json:"edition"`
	Line    int    `json:"line"`
	Word    string `json:"word"`
	Reason  string `json:"reason"`
}

// Recorder records diagnostics. It is implemented by [Diagnostics] and
// [Log].
type Recorder interface {
	AcceptTag(tag, word string)
	RejectTag(tag, word string)
	Skip(s Skipped)
}

// Diagnostics is safe for concurrent use.
type Diagnostics struct {
	mu       sync.Mutex
	accepted map[string]*TagCount
	rejected map[string]*TagCount
	skipped  []Skipped
	nSkipped int
}

// New returns an empty Diagnostics.
func New() *Diagnostics {
	return &Diagnostics{
		accepted: map[string]*TagCount{},
		rejected: map[string]*TagCount{},
	}
}

// AcceptTag records that tag was resolved while processing word.
func (d *Diagnostics) AcceptTag(tag, word string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	increment(d.accepted, tag, word)
}

// RejectTag records that tag was unknown and dropped while processing word.
func (d *Diagnostics) RejectTag(tag, word string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	increment(d.rejected, tag, word)
}

// Skip records a skipped record.
func (d *Diagnostics) Skip(s Skipped) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nSkipped++
	if len(d.skipped) < maxSkipped {
		d.skipped = append(d.skipped, s)
	}
}

// Apply records the diagnostics buffered in l in the order they were
// recorded.
func (d *Diagnostics) Apply(l *Log) {
	if d == nil || l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ev := range l.events {
		switch {
		case ev.skipped != nil:
			d.nSkipped++
			if len(d.skipped) < maxSkipped {
				d.skipped = append(d.skipped, *ev.skipped)
			}
		case ev.rejected:
			increment(d.rejected, ev.tag, ev.word)
		default:
			increment(d.accepted, ev.tag, ev.word)
		}
	}
}

// Log buffers the diagnostics of a single record so that records processed
// concurrently can be applied to a [Diagnostics] in input order. A Log is not
// safe for concurrent use.
type Log struct {
	events []event
}

type event struct {
	tag      string
	word     string
	rejected bool
	skipped  *Skipped
}

// AcceptTag implements [Recorder].
func (l *Log) AcceptTag(tag, word string) {
	l.events = append(l.events, event{tag: tag, word: word})
}

// RejectTag implements [Recorder].
func (l *Log) RejectTag(tag, word string) {
	l.events = append(l.events, event{tag: tag, word: word, rejected: true})
}

// Skip implements [Recorder].
func (l *Log) Skip(s Skipped) {
	l.events = append(l.events, event{skipped: &s})
}

// SkippedCount returns the number of skipped records.
func (d *Diagnostics) SkippedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nSkipped
}

// SkippedRecords returns the first skipped records in the order they were
// recorded.
func (d *Diagnostics) SkippedRecords() []Skipped {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.skipped)
}

// Dropped returns the total number of dropped tag occurrences.
func (d *Diagnostics) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.rejected {
		n += c.Count
	}
	return n
}

// Accepted returns the resolved tags sorted by descending count.
func (d *Diagnostics) Accepted() []TagCount {
	d.mu.Lock()
	defer d.mu.Unlock()
	return sorted(d.accepted)
}

// Rejected returns the dropped tags sorted by descending count.
func (d *Diagnostics) Rejected() []TagCount {
	d.mu.Lock()
	defer d.mu.Unlock()
	return sorted(d.rejected)
}

// Write writes the diagnostics as tags.json and skipped.json under dir. No
// files are written when there is nothing to report.
func (d *Diagnostics) Write(dir string) error {
	accepted, rejected := d.Accepted(), d.Rejected()
	skipped := d.SkippedRecords()
	if len(accepted) == 0 && len(rejected) == 0 && len(skipped) == 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating diagnostics directory: %w", err)
	}

	tags := struct {
		Rejected []TagCount `json:"rejected"`
		Accepted []TagCount `json:"accepted"`
	}{
		Rejected: rejected,
		Accepted: accepted,
	}
	if err := writeJSON(filepath.Join(dir, "tags.json"), tags); err != nil {
		return err
	}
	if len(skipped) > 0 {
		if err := writeJSON(filepath.Join(dir, "skipped.json"), skipped); err != nil {
			return err
		}
	}
	return nil
}

func increment(m map[string]*TagCount, tag, word string) {
	if c, ok := m[tag]; ok {
		c.Count++
		return
	}
	m[tag] = &TagCount{Tag: tag, Count: 1, Word: word}
}

func sorted(m map[string]*TagCount) []TagCount {
	out := make([]TagCount, 0, len(m))
	for _, c := range m {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return out
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
