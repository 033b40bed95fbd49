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

package variant

import (
	"slices"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/tag"
	"github.com/ianlewis/go-kty/yomitan"
)

// nonLemma is the definition tag of inflected form rows.
const nonLemma = "non-lemma"

// skipFormTags mark forms that are spellings of the headword rather than
// inflections.
var skipFormTags = []string{"canonical", "romanization"}

// Main builds the full dictionary: words of the source language from the
// target language's edition.
type Main struct {
	langs Langs
}

// Kind implements [Builder].
func (*Main) Kind() Kind { return KindMain }

// Name implements [Builder].
func (b *Main) Name() string {
	return dictName(b.langs.Source.String(), b.langs.Target.String())
}

// Langs implements [Builder].
func (b *Main) Langs() Langs { return b.langs }

// Keep implements [Builder].
func (b *Main) Keep(edition lang.Code, raw *kaikki.Entry) bool {
	return edition == b.langs.Edition && inLang(raw, b.langs.Source)
}

// Build implements [Builder]. Each entry with glosses becomes a lemma row.
// Each inflected form becomes a non-lemma row pointing back at the headword,
// and senses that are forms of other lemmas become non-lemma rows pointing at
// those lemmas.
func (b *Main) Build(entries []*entry.Entry) (*yomitan.Output, error) {
	out := &yomitan.Output{}
	var used tagSet

	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			return nil, err
		}
		seq := i + 1
		pos := tag.ShortPOS(e.POS)

		if content, ok := lemmaContent(e); ok {
			out.Terms = append(out.Terms, yomitan.TermRow{
				Term:           e.Word,
				Reading:        e.Reading,
				DefinitionTags: pos,
				Glossary:       []yomitan.Definition{yomitan.StructuredContent{Content: content}},
				Sequence:       seq,
			})
			for j := range e.Senses {
				used.add(e.Senses[j].Tags)
			}
		}

		out.Terms = append(out.Terms, formRows(e, seq, &used)...)
		out.Terms = append(out.Terms, formOfRows(e, seq, &used)...)
	}

	out.Tags = used.rows()
	return out, nil
}

// formRows returns one non-lemma row per distinct inflected form of e.
func formRows(e *entry.Entry, seq int, used *tagSet) []yomitan.TermRow {
	var rows []yomitan.TermRow
	byText := map[string]int{}
	for i := range e.Forms {
		f := &e.Forms[i]
		if f.Text == e.Word || isSpelling(f) {
			continue
		}
		used.add(f.Tags)
		d := yomitan.Deinflection{Uninflected: e.Word, Rules: f.Tags.Names()}

		if j, ok := byText[f.Text]; ok {
			rows[j].Glossary = append(rows[j].Glossary, d)
			continue
		}
		byText[f.Text] = len(rows)
		rows = append(rows, yomitan.TermRow{
			Term:           f.Text,
			Reading:        f.Text,
			DefinitionTags: nonLemma,
			Glossary:       []yomitan.Definition{d},
			Sequence:       seq,
		})
	}
	return rows
}

// formOfRows returns a non-lemma row for each lemma that a sense of e is a
// form of.
func formOfRows(e *entry.Entry, seq int, used *tagSet) []yomitan.TermRow {
	var glossary []yomitan.Definition
	for i := range e.Senses {
		s := &e.Senses[i]
		for _, lemma := range s.FormOf {
			if lemma == e.Word {
				continue
			}
			used.add(s.Tags)
			glossary = append(glossary, yomitan.Deinflection{Uninflected: lemma, Rules: s.Tags.Names()})
		}
	}
	if len(glossary) == 0 {
		return nil
	}
	return []yomitan.TermRow{{
		Term:           e.Word,
		Reading:        e.Reading,
		DefinitionTags: nonLemma,
		Glossary:       glossary,
		Sequence:       seq,
	}}
}

func isSpelling(f *entry.Form) bool {
	for _, name := range skipFormTags {
		if slices.Contains(f.RawTags, name) || slices.ContainsFunc(f.Tags, func(t *tag.Tag) bool {
			return t.Name == name
		}) {
			return true
		}
	}
	return false
}
