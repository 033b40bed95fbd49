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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-kty/internal/index"
	"github.com/ianlewis/go-kty/yomitan"
)

// ErrEmpty indicates that a package has no rows that produce an article.
var ErrEmpty = errors.New("no articles")

// WriteOptions are options for [Write].
type WriteOptions struct {
	// PlainText writes articles as plain text rather than HTML.
	PlainText bool
}

// article is the dictionary text for a headword.
type article struct {
	word  string
	parts []string
}

func (a *article) String() string {
	return a.word
}

// deinflection is a form that points at a lemma.
type deinflection struct {
	form  string
	lemma string
	rules []string
}

// Write converts pkg to a StarDict dictionary named name in dir. It writes
// name.ifo, name.idx, name.dict.dz and, when forms link to lemmas,
// name.syn.
func Write(dir, name string, pkg *yomitan.Package, opts *WriteOptions) (*Info, error) {
	if opts == nil {
		opts = &WriteOptions{}
	}

	articles, syns := collect(pkg)
	if len(articles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}

	words := index.New(articles, compareWords)

	var dict bytes.Buffer
	var idxData []byte
	for i := range words.Len() {
		a := words.At(i)
		text := strings.Join(a.parts, "")
		if opts.PlainText {
			text = plainText(text)
		}
		w := &Word{
			Word:   a.word,
			Offset: uint32(dict.Len()), //nolint:gosec // checked below
			Size:   uint32(len(text)),  //nolint:gosec // checked below
		}
		if err := checkSize(dict.Len() + len(text)); err != nil {
			return nil, err
		}
		dict.WriteString(text)
		idxData = appendWord(idxData, w)
	}

	var synData []byte
	synonyms := make([]*Synonym, 0, len(syns))
	for _, d := range syns {
		pos, ok := words.Position(d.lemma)
		if !ok {
			continue
		}
		synonyms = append(synonyms, &Synonym{
			Word:              d.form,
			OriginalWordIndex: uint32(pos), //nolint:gosec // bounded by the idx size
		})
	}
	synIdx := index.New(synonyms, compareWords)
	for _, s := range synIdx.Values() {
		synData = appendSynonym(synData, s)
	}

	sts := "h"
	if opts.PlainText {
		sts = "m"
	}
	info := &Info{
		Version:          Version,
		Bookname:         pkg.Index.Title,
		WordCount:        words.Len(),
		SynWordCount:     synIdx.Len(),
		IdxFileSize:      len(idxData),
		Author:           pkg.Index.Author,
		Website:          pkg.Index.URL,
		Description:      pkg.Index.Description,
		Date:             pkg.Index.Revision,
		SameTypeSequence: sts,
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %q: %w", dir, err)
	}
	base := filepath.Join(dir, name)

	var ifo bytes.Buffer
	if _, err := info.WriteTo(&ifo); err != nil {
		return nil, err
	}
	if err := writeFile(base+".ifo", ifo.Bytes()); err != nil {
		return nil, err
	}
	if err := writeFile(base+".idx", idxData); err != nil {
		return nil, err
	}
	if len(synData) > 0 {
		if err := writeFile(base+".syn", synData); err != nil {
			return nil, err
		}
	}
	if err := writeDictZip(base+".dict.dz", dict.Bytes()); err != nil {
		return nil, err
	}
	return info, nil
}

// collect groups a package's rows into articles per headword. Forms whose
// lemma has an article become synonyms. Other forms get a short "form of"
// article.
func collect(pkg *yomitan.Package) ([]*article, []deinflection) {
	byWord := map[string]*article{}
	var articles []*article
	get := func(word string) *article {
		a, ok := byWord[word]
		if !ok {
			a = &article{word: word}
			byWord[word] = a
			articles = append(articles, a)
		}
		return a
	}

	var forms []deinflection
	for i := range pkg.Terms {
		r := &pkg.Terms[i]
		var parts []string
		for _, d := range r.Glossary {
			if di, ok := d.(yomitan.Deinflection); ok {
				forms = append(forms, deinflection{
					form:  r.Term,
					lemma: di.Uninflected,
					rules: di.Rules,
				})
				continue
			}
			if s, ok := renderDefinition(d); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			continue
		}
		a := get(r.Term)
		a.parts = append(a.parts, renderPOS(r.DefinitionTags))
		a.parts = append(a.parts, parts...)
	}

	for i := range pkg.Meta {
		r := &pkg.Meta[i]
		if len(r.Transcriptions) == 0 {
			continue
		}
		a := get(r.Term)
		a.parts = append(a.parts, renderIPA(r))
	}

	type key struct{ form, lemma string }
	seen := map[key]bool{}
	var syns []deinflection
	for _, d := range forms {
		k := key{d.form, d.lemma}
		if seen[k] || d.form == d.lemma {
			continue
		}
		seen[k] = true
		if _, ok := byWord[d.lemma]; ok {
			syns = append(syns, d)
			continue
		}
		a := get(d.form)
		a.parts = append(a.parts, renderFormOf(d.lemma, d.rules))
	}
	return articles, syns
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

func writeDictZip(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cerr)
		}
	}()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if _, err := z.Write(data); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
