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

package yomitan

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ianlewis/go-kty/lang"
)

// Format is the Yomitan dictionary format version.
const Format = 3

// RevisionLayout is the time layout of index revisions.
const RevisionLayout = "2006.01.02"

// DefaultBaseURL is the default base URL that dictionaries and index copies
// are published under.
const DefaultBaseURL = "https://huggingface.co/datasets/daxida/test-dataset/resolve/main"

// ErrIndex indicates that a dictionary index is invalid.
var ErrIndex = errors.New("invalid index")

// Index is a dictionary's index.json.
type Index struct {
	Title          string `json:"title"`
	Format         int    `json:"format"`
	Revision       string `json:"revision"`
	Sequenced      bool   `json:"sequenced"`
	Author         string `json:"author,omitempty"`
	URL            string `json:"url,omitempty"`
	Description    string `json:"description,omitempty"`
	Attribution    string `json:"attribution,omitempty"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`

	// IsUpdatable reports whether a reader can check IndexURL for newer
	// revisions and fetch DownloadURL to update.
	IsUpdatable bool   `json:"isUpdatable"`
	IndexURL    string `json:"indexUrl,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// IndexOptions are options for [NewIndex].
type IndexOptions struct {
	// Name is the dictionary name. It is used as the title and in URLs.
	Name string

	// Source is the source language. If it is [lang.All] no source language
	// is recorded and "all" is used in URLs.
	Source lang.Code

	// Target is the target language.
	Target lang.Code

	// Snapshot is the date of the corpus snapshot.
	Snapshot time.Time

	// BaseURL is the base URL that the dictionary is published under. If it
	// is empty the dictionary is not updatable.
	BaseURL string

	Author      string
	URL         string
	Description string
	Attribution string
}

// Revision formats a snapshot date as an index revision.
func Revision(t time.Time) string {
	return t.UTC().Format(RevisionLayout)
}

// NewIndex returns the index of a dictionary.
func NewIndex(opts *IndexOptions) Index {
	idx := Index{
		Title:          opts.Name,
		Format:         Format,
		Revision:       Revision(opts.Snapshot),
		Sequenced:      true,
		Author:         opts.Author,
		URL:            opts.URL,
		Description:    opts.Description,
		Attribution:    opts.Attribution,
		TargetLanguage: opts.Target.String(),
	}
	if opts.Source != lang.All {
		idx.SourceLanguage = opts.Source.String()
	}
	if opts.BaseURL != "" {
		idx.IsUpdatable = true
		idx.IndexURL = IndexURL(opts.BaseURL, opts.Name)
		idx.DownloadURL = DownloadURL(opts.BaseURL, opts.Name, opts.Source, opts.Target)
	}
	return idx
}

// IndexURL returns the URL of the published copy of a dictionary's index.
func IndexURL(base, name string) string {
	return fmt.Sprintf("%s/index/%s-index?download=true", strings.TrimRight(base, "/"), name)
}

// DownloadURL returns the URL of a published dictionary archive.
func DownloadURL(base, name string, source, target lang.Code) string {
	return fmt.Sprintf("%s/dict/%s/%s/%s.zip?download=true", strings.TrimRight(base, "/"), target, source, name)
}

// Time returns the revision as a time.
func (idx *Index) Time() (time.Time, error) {
	t, err := time.Parse(RevisionLayout, idx.Revision)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: revision %q: %w", ErrIndex, idx.Revision, err)
	}
	return t, nil
}

// Validate checks that the index is well formed. An updatable index must have
// absolute http(s) index and download URLs.
func (idx *Index) Validate() error {
	if idx.Title == "" {
		return fmt.Errorf("%w: missing title", ErrIndex)
	}
	if idx.Format != Format {
		return fmt.Errorf("%w: unsupported format %d", ErrIndex, idx.Format)
	}
	if _, err := idx.Time(); err != nil {
		return err
	}
	if !idx.IsUpdatable {
		return nil
	}
	if err := validateURL(idx.IndexURL); err != nil {
		return fmt.Errorf("%w: indexUrl: %w", ErrIndex, err)
	}
	if err := validateURL(idx.DownloadURL); err != nil {
		return fmt.Errorf("%w: downloadUrl: %w", ErrIndex, err)
	}
	return nil
}

func validateURL(s string) error {
	if s == "" {
		return errors.New("missing")
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q: not an http(s) URL", s)
	}
	if u.Host == "" {
		return fmt.Errorf("%q: missing host", s)
	}
	return nil
}
