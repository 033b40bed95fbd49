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

package stardict

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-kty/internal/index"
)

// ErrNotFound indicates that a dictionary file is missing.
var ErrNotFound = errors.New("not found")

// Article is a dictionary entry's text.
type Article struct {
	Word string
	Data string
}

// Dictionary is an opened StarDict dictionary.
type Dictionary struct {
	info  *Info
	words []*Word
	index *index.Index[*Word]
	syns  *index.Index[*Synonym]
	dict  io.ReaderAt
	file  *os.File
}

// OpenAll opens all dictionaries under a directory. It returns the
// dictionaries that were opened along with any errors that occurred.
func OpenAll(dir string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(dir, func(path string, info fs.DirEntry, err error) error {
		// Keep walking past unreadable entries.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ifo") {
			return nil
		}
		d, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		dicts = append(dicts, d)
		return nil
	}); err != nil {
		errs = append(errs, err)
	}
	return dicts, errs
}

// Open opens the dictionary described by the .ifo file at path.
func Open(path string) (*Dictionary, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	info, err := ReadInfo(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	words, err := readFile(base+".idx", ReadIndex)
	if err != nil {
		return nil, err
	}
	syns, err := readFile(base+".syn", ReadSynonyms)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	for _, s := range syns {
		if int(s.OriginalWordIndex) >= len(words) {
			return nil, fmt.Errorf("%w: synonym %q points past the index", ErrInvalidIdx, s.Word)
		}
	}

	d := &Dictionary{
		info:  info,
		words: words,
		// Files are written in compareWords order which is also ordered
		// under compareFolded.
		index: index.New(words, compareFolded),
		syns:  index.New(syns, compareFolded),
	}
	if err := d.openDict(base); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) openDict(base string) error {
	for _, ext := range []string{".dict.dz", ".dict"} {
		f, err := os.Open(base + ext)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("opening %q: %w", base+ext, err)
		}
		d.file = f
		if ext == ".dict" {
			d.dict = f
			return nil
		}
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("reading %q: %w", base+ext, err)
		}
		d.dict = z
		return nil
	}
	return fmt.Errorf("%w: %s.dict.dz", ErrNotFound, base)
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return v, nil
}

// Info returns the dictionary's metadata.
func (d *Dictionary) Info() *Info {
	return d.info
}

// Search returns the articles for words and synonyms matching query,
// ignoring ASCII case. Articles are returned in index order.
func (d *Dictionary) Search(query string) ([]*Article, error) {
	var matches []*Word
	seen := map[*Word]bool{}
	add := func(w *Word) {
		if !seen[w] {
			seen[w] = true
			matches = append(matches, w)
		}
	}
	for _, w := range d.index.Search(query) {
		add(w)
	}
	for _, s := range d.syns.Search(query) {
		add(d.words[s.OriginalWordIndex])
	}

	articles := make([]*Article, 0, len(matches))
	for _, w := range matches {
		a, err := d.article(w)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (d *Dictionary) article(w *Word) (*Article, error) {
	b := make([]byte, w.Size)
	n, err := d.dict.ReadAt(b, int64(w.Offset))
	if n < len(b) {
		return nil, fmt.Errorf("reading %q: %w", w.Word, err)
	}
	return &Article{
		Word: w.Word,
		Data: string(b),
	}, nil
}

// Close closes the dictionary's data file.
func (d *Dictionary) Close() error {
	if d.file == nil {
		return nil
	}
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("closing dictionary: %w", err)
	}
	return nil
}
