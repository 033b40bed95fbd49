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

// Package ipa merges IPA transcriptions of headwords across corpus editions.
package ipa

import (
	"slices"
	"strings"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/tag"
)

// Transcription is an IPA transcription with its dialect label.
type Transcription struct {
	IPA     string `json:"ipa"`
	Dialect string `json:"dialect,omitempty"`

	// Tags are the transcription's dialect tags sorted by order.
	Tags entry.Tags `json:"tags"`
}

type key struct {
	ipa     string
	dialect string
}

func (t *Transcription) key() key {
	return key{ipa: t.IPA, dialect: t.Dialect}
}

// Entry holds the transcriptions of a headword. Transcriptions are unique by
// IPA and dialect.
type Entry struct {
	Word           string          `json:"word"`
	Reading        string          `json:"reading"`
	Transcriptions []Transcription `json:"transcriptions"`
}

// FromEntry returns the transcriptions of a postprocessed entry. Only tags in
// the given categories are kept. It returns false if the entry has no
// transcriptions.
func FromEntry(e *entry.Entry, categories []string) (Entry, bool) {
	out := Entry{
		Word:    e.Word,
		Reading: e.Reading,
	}
	seen := map[key]bool{}
	for i := range e.Pronunciations {
		pron := &e.Pronunciations[i]
		tr := Transcription{
			IPA:     pron.IPA,
			Dialect: pron.Dialect,
			Tags:    filterTags(pron.Tags, categories),
		}
		if seen[tr.key()] {
			continue
		}
		seen[tr.key()] = true
		out.Transcriptions = append(out.Transcriptions, tr)
	}
	return out, len(out.Transcriptions) > 0
}

func filterTags(tags entry.Tags, categories []string) entry.Tags {
	out := make(entry.Tags, 0, len(tags))
	for _, t := range tags {
		if t.InCategory(categories...) {
			out = append(out, t)
		}
	}
	return out
}

// Merge merges groups of entries by headword. Transcriptions are
// deduplicated by IPA and dialect and ordered by their dialect tags.
// Untagged transcriptions come last and ties keep the order in which they
// were first seen. The result is sorted by headword.
//
// Merge does not modify its arguments. Merging is commutative up to the
// order of tied transcriptions, and idempotent.
func Merge(groups ...[]Entry) []Entry {
	type merged struct {
		entry Entry
		seen  map[key]bool
	}

	byWord := map[string]*merged{}
	for _, group := range groups {
		for i := range group {
			e := &group[i]
			m, ok := byWord[e.Word]
			if !ok {
				m = &merged{
					entry: Entry{Word: e.Word, Reading: e.Reading},
					seen:  map[key]bool{},
				}
				byWord[e.Word] = m
			}
			if m.entry.Reading == "" {
				m.entry.Reading = e.Reading
			}
			for _, tr := range e.Transcriptions {
				if m.seen[tr.key()] {
					continue
				}
				m.seen[tr.key()] = true
				m.entry.Transcriptions = append(m.entry.Transcriptions, tr)
			}
		}
	}

	out := make([]Entry, 0, len(byWord))
	for _, m := range byWord {
		slices.SortStableFunc(m.entry.Transcriptions, compareTranscriptions)
		out = append(out, m.entry)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

// compareTranscriptions orders transcriptions by the order keys of their
// tags. Untagged transcriptions sort last.
func compareTranscriptions(a, b Transcription) int {
	switch {
	case len(a.Tags) == 0 && len(b.Tags) == 0:
		return 0
	case len(a.Tags) == 0:
		return 1
	case len(b.Tags) == 0:
		return -1
	}
	return slices.CompareFunc(a.Tags, b.Tags, tag.Compare)
}
