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

package ipa_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/ipa"
	"github.com/ianlewis/go-kty/tag"
)

func testTags(t *testing.T) (us, uk *tag.Tag) {
	t.Helper()

	table, err := tag.Load(
		strings.NewReader(`{"dialect": ["US", "UK"], "number": ["plural"]}`),
		strings.NewReader(`[]`),
	)
	if err != nil {
		t.Fatalf("tag.Load: %v", err)
	}
	us, _ = table.Lookup("US")
	uk, _ = table.Lookup("UK")
	return us, uk
}

// simplify drops tags so that results compare by IPA and dialect.
func simplify(entries []ipa.Entry) map[string][][2]string {
	out := map[string][][2]string{}
	for _, e := range entries {
		for _, tr := range e.Transcriptions {
			out[e.Word] = append(out[e.Word], [2]string{tr.IPA, tr.Dialect})
		}
	}
	return out
}

func TestMerge(t *testing.T) {
	t.Parallel()

	us, uk := testTags(t)

	fromDe := []ipa.Entry{
		{
			Word:    "house",
			Reading: "house",
			Transcriptions: []ipa.Transcription{
				{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
			},
		},
	}
	fromFr := []ipa.Entry{
		{
			Word:    "house",
			Reading: "house",
			Transcriptions: []ipa.Transcription{
				{IPA: "/hɑʊs/", Dialect: "UK", Tags: entry.Tags{uk}},
				{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
			},
		},
		{
			Word:    "apple",
			Reading: "apple",
			Transcriptions: []ipa.Transcription{
				{IPA: "/ˈæpəl/"},
			},
		},
	}

	got := ipa.Merge(fromDe, fromFr)

	want := []ipa.Entry{
		{
			Word:    "apple",
			Reading: "apple",
			Transcriptions: []ipa.Transcription{
				{IPA: "/ˈæpəl/"},
			},
		},
		{
			Word:    "house",
			Reading: "house",
			Transcriptions: []ipa.Transcription{
				{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
				{IPA: "/hɑʊs/", Dialect: "UK", Tags: entry.Tags{uk}},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge (-want, +got):\n%s", diff)
	}

	// The inputs are not modified.
	if len(fromFr[0].Transcriptions) != 2 || fromFr[0].Transcriptions[0].Dialect != "UK" {
		t.Errorf("Merge modified its input: %v", fromFr[0].Transcriptions)
	}
}

func TestMerge_order(t *testing.T) {
	t.Parallel()

	us, uk := testTags(t)

	got := ipa.Merge([]ipa.Entry{
		{
			Word: "tomato",
			Transcriptions: []ipa.Transcription{
				{IPA: "/təˈmeɪtəʊ/", Dialect: "Tidewater"},
				{IPA: "/təˈmɑːtəʊ/", Dialect: "UK", Tags: entry.Tags{uk}},
				{IPA: "/təˈmeɪɾoʊ/", Dialect: "US, UK", Tags: entry.Tags{us, uk}},
				{IPA: "/təˈmeɪtoʊ/", Dialect: "US", Tags: entry.Tags{us}},
				{IPA: "/təˈmætoʊ/", Dialect: "US", Tags: entry.Tags{us}},
				{IPA: "/təˈmɑto/"},
			},
		},
	})

	var ipas []string
	for _, tr := range got[0].Transcriptions {
		ipas = append(ipas, tr.IPA)
	}
	want := []string{
		"/təˈmeɪtoʊ/",
		"/təˈmætoʊ/",
		"/təˈmeɪɾoʊ/",
		"/təˈmɑːtəʊ/",
		"/təˈmeɪtəʊ/",
		"/təˈmɑto/",
	}
	if diff := cmp.Diff(want, ipas); diff != "" {
		t.Errorf("transcription order (-want, +got):\n%s", diff)
	}
}

func TestMerge_commutative(t *testing.T) {
	t.Parallel()

	us, uk := testTags(t)

	a := []ipa.Entry{{Word: "house", Transcriptions: []ipa.Transcription{
		{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
		{IPA: "/hæʊs/", Dialect: "US", Tags: entry.Tags{us}},
	}}}
	b := []ipa.Entry{
		{Word: "house", Transcriptions: []ipa.Transcription{
			{IPA: "/hɑʊs/", Dialect: "UK", Tags: entry.Tags{uk}},
			{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
		}},
		{Word: "mouse", Transcriptions: []ipa.Transcription{{IPA: "/maʊs/"}}},
	}

	sortPairs := cmpopts.SortSlices(func(x, y [2]string) bool {
		return x[0]+x[1] < y[0]+y[1]
	})
	if diff := cmp.Diff(simplify(ipa.Merge(a, b)), simplify(ipa.Merge(b, a)), sortPairs); diff != "" {
		t.Errorf("Merge(a, b) vs Merge(b, a) (-want, +got):\n%s", diff)
	}
}

func TestMerge_idempotent(t *testing.T) {
	t.Parallel()

	us, uk := testTags(t)

	a := []ipa.Entry{{Word: "house", Transcriptions: []ipa.Transcription{
		{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
	}}}
	b := []ipa.Entry{{Word: "house", Transcriptions: []ipa.Transcription{
		{IPA: "/hɑʊs/", Dialect: "UK", Tags: entry.Tags{uk}},
		{IPA: "/haʊs/", Dialect: "US", Tags: entry.Tags{us}},
	}}}

	once := ipa.Merge(a, b)
	twice := ipa.Merge(once, a)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Merge(Merge(a, b), a) (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(once, ipa.Merge(once)); diff != "" {
		t.Errorf("Merge(Merge(a, b)) (-want, +got):\n%s", diff)
	}
}

func TestFromEntry(t *testing.T) {
	t.Parallel()

	table, err := tag.Load(
		strings.NewReader(`{"dialect": ["US", "UK"], "number": ["plural"]}`),
		strings.NewReader(`[]`),
	)
	if err != nil {
		t.Fatalf("tag.Load: %v", err)
	}

	e := &entry.Entry{
		Word:    "house",
		Reading: "house",
		Pronunciations: []entry.Pronunciation{
			{IPA: "/haʊs/", RawTags: []string{"US", "plural"}},
			{IPA: "/haʊs/", RawTags: []string{"US"}},
			{IPA: "/hɑʊs/", RawTags: []string{"UK"}},
		},
	}
	entry.NewPostprocessor(table, nil).Process(e)

	got, ok := ipa.FromEntry(e, []string{"dialect"})
	if !ok {
		t.Fatal("FromEntry: no transcriptions")
	}

	var names [][]string
	for _, tr := range got.Transcriptions {
		names = append(names, tr.Tags.Names())
	}
	if diff := cmp.Diff([][]string{{"US"}, {"UK"}}, names); diff != "" {
		t.Errorf("tags (-want, +got):\n%s", diff)
	}

	if _, ok := ipa.FromEntry(&entry.Entry{Word: "mute"}, nil); ok {
		t.Error("FromEntry: want false for an entry without pronunciations")
	}
}
