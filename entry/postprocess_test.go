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

package entry_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/internal/diag"
	"github.com/ianlewis/go-kty/tag"
)

const testOrder = `{
	"dialect": ["US", "UK"],
	"number": ["plural", "singular"],
	"gender": ["masculine", "feminine"],
	"case": ["nominative", "genitive"]
}`

const testInfo = `[
	["plural", "number", -2, ["pl."], 0],
	["masculine", "gender", -3, ["masc."], 0],
	["US", "dialect", 0, ["General-American"], 0],
	["UK", "dialect", 0, ["Received-Pronunciation"], 0]
]`

func testTable(t *testing.T) *tag.Table {
	t.Helper()

	table, err := tag.Load(strings.NewReader(testOrder), strings.NewReader(testInfo))
	if err != nil {
		t.Fatalf("tag.Load: %v", err)
	}
	return table
}

func TestPostprocessor_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *entry.Entry
		forms [][]string
	}{
		{
			name: "aliases ordered by table",
			entry: &entry.Entry{
				Word:  "Haus",
				Forms: []entry.Form{{Text: "Häuser", RawTags: []string{"masc.", "pl."}}},
			},
			forms: [][]string{{"plural", "masculine"}},
		},
		{
			name: "input order irrelevant",
			entry: &entry.Entry{
				Word:  "Haus",
				Forms: []entry.Form{{Text: "Häuser", RawTags: []string{"pl.", "masc."}}},
			},
			forms: [][]string{{"plural", "masculine"}},
		},
		{
			name: "duplicates and unknown dropped",
			entry: &entry.Entry{
				Word: "Haus",
				Forms: []entry.Form{
					{Text: "Hauses", RawTags: []string{"genitive", "bogus", "genitive", "singular"}},
					{Text: "Häuser", RawTags: []string{"plural", "pl.", "nominative"}},
				},
			},
			forms: [][]string{
				{"singular", "genitive"},
				{"plural", "nominative"},
			},
		},
		{
			name: "no tags",
			entry: &entry.Entry{
				Word:  "Haus",
				Forms: []entry.Form{{Text: "Haus"}},
			},
			forms: [][]string{{}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			p := entry.NewPostprocessor(testTable(t), nil)
			p.Process(test.entry)

			var got [][]string
			for _, f := range test.entry.Forms {
				got = append(got, f.Tags.Names())
			}
			if diff := cmp.Diff(test.forms, got); diff != "" {
				t.Errorf("form tags (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPostprocessor_Process_idempotent(t *testing.T) {
	t.Parallel()

	e := &entry.Entry{
		Word:   "Haus",
		Senses: []entry.Sense{{Glosses: []string{"house"}, RawTags: []string{"masc.", "masculine"}}},
		Forms: []entry.Form{
			{Text: "Häuser", RawTags: []string{"nominative", "masc.", "pl."}},
		},
		Pronunciations: []entry.Pronunciation{
			{IPA: "/haʊs/", RawTags: []string{"General-American"}},
		},
	}

	p := entry.NewPostprocessor(testTable(t), nil)
	p.Process(e)
	first := *e
	first.Forms = append([]entry.Form(nil), e.Forms...)
	first.Senses = append([]entry.Sense(nil), e.Senses...)
	first.Pronunciations = append([]entry.Pronunciation(nil), e.Pronunciations...)

	p.Process(e)

	if diff := cmp.Diff(&first, e); diff != "" {
		t.Errorf("second Process (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"masculine"}, e.Senses[0].Tags.Names()); diff != "" {
		t.Errorf("sense tags (-want, +got):\n%s", diff)
	}
}

func TestPostprocessor_Process_dialect(t *testing.T) {
	t.Parallel()

	e := &entry.Entry{
		Word: "house",
		Pronunciations: []entry.Pronunciation{
			{IPA: "/haʊs/", RawTags: []string{"General-American"}},
			{IPA: "/hɑʊs/", RawTags: []string{"UK", "US", "plural"}},
			{IPA: "/hæʊs/", Note: "Tidewater", RawTags: []string{"US"}},
			{IPA: "/hɐʊs/"},
		},
	}

	p := entry.NewPostprocessor(testTable(t), nil)
	p.Process(e)

	var got []string
	for _, pron := range e.Pronunciations {
		got = append(got, pron.Dialect)
	}
	want := []string{"US", "US, UK", "Tidewater", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dialects (-want, +got):\n%s", diff)
	}
}

func TestPostprocessor_Process_diagnostics(t *testing.T) {
	t.Parallel()

	d := diag.New()
	p := entry.NewPostprocessor(testTable(t), d)
	p.Process(&entry.Entry{
		Word: "Haus",
		Forms: []entry.Form{
			{Text: "Häuser", RawTags: []string{"pl.", "bogus"}},
			{Text: "Hause", RawTags: []string{"bogus", "dative"}},
		},
	})

	wantRejected := []diag.TagCount{
		{Tag: "bogus", Count: 1, Word: "Haus"},
		{Tag: "dative", Count: 1, Word: "Haus"},
	}
	if diff := cmp.Diff(wantRejected, d.Rejected()); diff != "" {
		t.Errorf("Rejected (-want, +got):\n%s", diff)
	}
	wantAccepted := []diag.TagCount{
		{Tag: "plural", Count: 1, Word: "Haus"},
	}
	if diff := cmp.Diff(wantAccepted, d.Accepted()); diff != "" {
		t.Errorf("Accepted (-want, +got):\n%s", diff)
	}
}

func TestPostprocessor_ProcessTo(t *testing.T) {
	t.Parallel()

	d := diag.New()
	p := entry.NewPostprocessor(testTable(t), d)

	var l diag.Log
	e := &entry.Entry{
		Word:  "Haus",
		Forms: []entry.Form{{Text: "Häuser", RawTags: []string{"pl.", "bogus"}}},
	}
	p.ProcessTo(e, &l)
	if got := len(d.Accepted()) + len(d.Rejected()); got != 0 {
		t.Fatalf("diagnostics recorded before Apply: %d tags", got)
	}
	if diff := cmp.Diff([]string{"plural"}, e.Forms[0].Tags.Names()); diff != "" {
		t.Errorf("Tags (-want, +got):\n%s", diff)
	}

	d.Apply(&l)
	if diff := cmp.Diff([]diag.TagCount{{Tag: "bogus", Count: 1, Word: "Haus"}}, d.Rejected()); diff != "" {
		t.Errorf("Rejected (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]diag.TagCount{{Tag: "plural", Count: 1, Word: "Haus"}}, d.Accepted()); diff != "" {
		t.Errorf("Accepted (-want, +got):\n%s", diff)
	}
}
