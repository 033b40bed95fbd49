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

package stardict_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/stardict"
	"github.com/ianlewis/go-kty/yomitan"
)

func testPackage() *yomitan.Package {
	return &yomitan.Package{
		Index: yomitan.Index{
			Title:    "kty-de-en",
			Format:   yomitan.Format,
			Revision: "2026.10.01",
			Author:   "kty",
		},
		Terms: []yomitan.TermRow{
			{
				Term:           "Haus",
				DefinitionTags: "n",
				Glossary:       []yomitan.Definition{yomitan.Text("house")},
				Sequence:       1,
			},
			{
				Term: "Häuser",
				Glossary: []yomitan.Definition{
					yomitan.Deinflection{Uninflected: "Haus", Rules: []string{"plural"}},
				},
				Sequence: 2,
			},
			{
				Term: "ging",
				Glossary: []yomitan.Definition{
					yomitan.Deinflection{Uninflected: "gehen", Rules: []string{"past"}},
				},
				Sequence: 3,
			},
		},
		Meta: []yomitan.MetaRow{
			{
				Term: "Haus",
				Transcriptions: []yomitan.Transcription{
					{IPA: "/haʊ̯s/", Tags: []string{"DE"}},
				},
			},
		},
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	info, err := stardict.Write(dir, "kty-de-en", testPackage(), nil)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	wantInfo := &stardict.Info{
		Version:          stardict.Version,
		Bookname:         "kty-de-en",
		WordCount:        2,
		SynWordCount:     1,
		IdxFileSize:      26,
		Author:           "kty",
		Date:             "2026.10.01",
		SameTypeSequence: "h",
	}
	if diff := cmp.Diff(wantInfo, info); diff != "" {
		t.Errorf("Write (-want, +got):\n%s", diff)
	}

	for _, name := range []string{"kty-de-en.ifo", "kty-de-en.idx", "kty-de-en.syn", "kty-de-en.dict.dz"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Stat: %v", err)
		}
	}

	d, err := stardict.Open(filepath.Join(dir, "kty-de-en.ifo"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	if diff := cmp.Diff(wantInfo, d.Info()); diff != "" {
		t.Errorf("Info (-want, +got):\n%s", diff)
	}

	haus := &stardict.Article{
		Word: "Haus",
		Data: `<i class="pos">n</i><p>house</p><div class="ipa">/haʊ̯s/ <span class="tags">DE</span></div>`,
	}
	tests := []struct {
		query string
		want  []*stardict.Article
	}{
		{
			query: "Haus",
			want:  []*stardict.Article{haus},
		},
		{
			query: "haus",
			want:  []*stardict.Article{haus},
		},
		{
			query: "häuser",
			want:  []*stardict.Article{haus},
		},
		{
			query: "ging",
			want: []*stardict.Article{{
				Word: "ging",
				Data: `<p class="form-of">form of <b>gehen</b> (past)</p>`,
			}},
		},
		{
			query: "gehen",
			want:  []*stardict.Article{},
		},
	}
	for _, tc := range tests {
		got, err := d.Search(tc.query)
		if err != nil {
			t.Fatalf("Search(%q): %v", tc.query, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Search(%q) (-want, +got):\n%s", tc.query, diff)
		}
	}
}

func TestWrite_plainText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	info, err := stardict.Write(dir, "kty-de-en", testPackage(), &stardict.WriteOptions{PlainText: true})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := info.SameTypeSequence, "m"; got != want {
		t.Errorf("SameTypeSequence: want %q, got %q", want, got)
	}
}

func TestWrite_empty(t *testing.T) {
	t.Parallel()

	pkg := &yomitan.Package{Index: yomitan.Index{Title: "empty"}}
	_, err := stardict.Write(t.TempDir(), "empty", pkg, nil)
	if !errors.Is(err, stardict.ErrEmpty) {
		t.Errorf("Write: want %v, got %v", stardict.ErrEmpty, err)
	}
}

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	_, err := stardict.Open(filepath.Join(t.TempDir(), "missing.ifo"))
	if err == nil {
		t.Error("Open: expected failure")
	}
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := stardict.Write(filepath.Join(dir, "en", "de"), "kty-de-en", testPackage(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.ifo"), []byte("broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	dicts, errs := stardict.OpenAll(dir)
	for _, d := range dicts {
		defer d.Close()
	}
	if got, want := len(dicts), 1; got != want {
		t.Fatalf("OpenAll: want %d dictionaries, got %d", want, got)
	}
	if got, want := dicts[0].Info().Bookname, "kty-de-en"; got != want {
		t.Errorf("Bookname: want %q, got %q", want, got)
	}
	if got, want := len(errs), 1; got != want {
		t.Errorf("OpenAll: want %d errors, got %d", want, got)
	}
}
