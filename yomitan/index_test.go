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

package yomitan_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/yomitan"
)

func TestURLs(t *testing.T) {
	t.Parallel()

	durl := yomitan.DownloadURL(yomitan.DefaultBaseURL, "kty-afb-en-ipa", "afb", "en")
	if want := "https://huggingface.co/datasets/daxida/test-dataset/resolve/main/dict/en/afb/kty-afb-en-ipa.zip?download=true"; durl != want {
		t.Errorf("DownloadURL: want %q, got %q", want, durl)
	}
	iurl := yomitan.IndexURL(yomitan.DefaultBaseURL, "kty-afb-en-ipa")
	if want := "https://huggingface.co/datasets/daxida/test-dataset/resolve/main/index/kty-afb-en-ipa-index?download=true"; iurl != want {
		t.Errorf("IndexURL: want %q, got %q", want, iurl)
	}
}

func TestURLs_trailingSlash(t *testing.T) {
	t.Parallel()

	base := "https://example.com/kty/"
	if got, want := yomitan.IndexURL(base, "kty-de-en"), "https://example.com/kty/index/kty-de-en-index?download=true"; got != want {
		t.Errorf("IndexURL: want %q, got %q", want, got)
	}
	if got, want := yomitan.DownloadURL(base, "kty-de-en", "de", "en"), "https://example.com/kty/dict/en/de/kty-de-en.zip?download=true"; got != want {
		t.Errorf("DownloadURL: want %q, got %q", want, got)
	}
}

func TestNewIndex(t *testing.T) {
	t.Parallel()

	got := yomitan.NewIndex(&yomitan.IndexOptions{
		Name:     "kty-all-en-ipa",
		Source:   lang.All,
		Target:   "en",
		Snapshot: time.Date(2026, 2, 22, 23, 0, 0, 0, time.UTC),
		BaseURL:  "https://example.com/kty",
		Author:   "kty contributors",
	})

	want := yomitan.Index{
		Title:          "kty-all-en-ipa",
		Format:         3,
		Revision:       "2026.02.22",
		Sequenced:      true,
		Author:         "kty contributors",
		TargetLanguage: "en",
		IsUpdatable:    true,
		IndexURL:       "https://example.com/kty/index/kty-all-en-ipa-index?download=true",
		DownloadURL:    "https://example.com/kty/dict/en/all/kty-all-en-ipa.zip?download=true",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewIndex (-want, +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNewIndex_notUpdatable(t *testing.T) {
	t.Parallel()

	got := yomitan.NewIndex(&yomitan.IndexOptions{
		Name:     "kty-de-en",
		Source:   "de",
		Target:   "en",
		Snapshot: time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
	})
	if got.IsUpdatable || got.IndexURL != "" || got.DownloadURL != "" {
		t.Errorf("NewIndex: want a non-updatable index, got %+v", got)
	}
	if got.SourceLanguage != "de" {
		t.Errorf("SourceLanguage: want %q, got %q", "de", got.SourceLanguage)
	}
}

func TestRevision(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)

	first, second := yomitan.Revision(day), yomitan.Revision(day.Add(3*time.Hour))
	if first != second {
		t.Errorf("Revision: same snapshot day gave %q and %q", first, second)
	}
	if first != "2026.02.22" {
		t.Errorf("Revision: want %q, got %q", "2026.02.22", first)
	}

	for _, later := range []time.Time{day.AddDate(0, 0, 1), day.AddDate(0, 1, 0), day.AddDate(1, 0, 0)} {
		if next := yomitan.Revision(later); next <= first {
			t.Errorf("Revision(%v) = %q is not after %q", later, next, first)
		}
	}
}

func TestIndex_Validate(t *testing.T) {
	t.Parallel()

	valid := func() yomitan.Index {
		return yomitan.Index{
			Title:       "kty-de-en",
			Format:      3,
			Revision:    "2026.02.22",
			IsUpdatable: true,
			IndexURL:    "https://example.com/index/kty-de-en-index?download=true",
			DownloadURL: "https://example.com/dict/en/de/kty-de-en.zip?download=true",
		}
	}

	tests := []struct {
		name   string
		modify func(*yomitan.Index)
		ok     bool
	}{
		{name: "valid", modify: func(*yomitan.Index) {}, ok: true},
		{name: "no title", modify: func(i *yomitan.Index) { i.Title = "" }},
		{name: "format", modify: func(i *yomitan.Index) { i.Format = 2 }},
		{name: "revision", modify: func(i *yomitan.Index) { i.Revision = "2026-02-22" }},
		{name: "missing index url", modify: func(i *yomitan.Index) { i.IndexURL = "" }},
		{name: "relative download url", modify: func(i *yomitan.Index) { i.DownloadURL = "dict/kty-de-en.zip" }},
		{name: "ftp url", modify: func(i *yomitan.Index) { i.IndexURL = "ftp://example.com/index" }},
		{
			name: "not updatable without urls",
			modify: func(i *yomitan.Index) {
				i.IsUpdatable = false
				i.IndexURL = ""
				i.DownloadURL = ""
			},
			ok: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := valid()
			test.modify(&idx)
			err := idx.Validate()
			if test.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !test.ok && !errors.Is(err, yomitan.ErrIndex) {
				t.Fatalf("Validate: want ErrIndex, got %v", err)
			}
		})
	}
}
