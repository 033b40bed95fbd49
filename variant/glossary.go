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
	"strings"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/tag"
	"github.com/ianlewis/go-kty/yomitan"
)

// Glossary builds a short translation dictionary: words of the source
// language's edition with their translations into the target language.
type Glossary struct {
	langs Langs
}

// Kind implements [Builder].
func (*Glossary) Kind() Kind { return KindGlossary }

// Name implements [Builder].
func (b *Glossary) Name() string {
	return dictName(b.langs.Source.String(), b.langs.Target.String(), "gloss")
}

// Langs implements [Builder].
func (b *Glossary) Langs() Langs { return b.langs }

// Keep implements [Builder].
func (b *Glossary) Keep(edition lang.Code, raw *kaikki.Entry) bool {
	return edition == b.langs.Edition && inLang(raw, b.langs.Source)
}

// Build implements [Builder]. Translations without a sense become plain text
// definitions. Translations sharing a sense are grouped under it.
func (b *Glossary) Build(entries []*entry.Entry) (*yomitan.Output, error) {
	out := &yomitan.Output{}
	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			return nil, err
		}

		var senses []string
		bySense := map[string][]string{}
		for _, tr := range e.Translations {
			if tr.Lang != b.langs.Target {
				continue
			}
			if _, ok := bySense[tr.Sense]; !ok {
				senses = append(senses, tr.Sense)
			}
			bySense[tr.Sense] = append(bySense[tr.Sense], tr.Word)
		}
		if len(senses) == 0 {
			continue
		}

		var glossary []yomitan.Definition
		for _, sense := range senses {
			words := bySense[sense]
			if sense == "" {
				for _, w := range words {
					glossary = append(glossary, yomitan.Text(w))
				}
				continue
			}
			items := make(yomitan.Nodes, 0, len(words))
			for _, w := range words {
				items = append(items, yomitan.Wrap("li", "", yomitan.TextNode(w)))
			}
			glossary = append(glossary, yomitan.StructuredContent{
				Content: yomitan.Wrap("div", "", yomitan.Nodes{
					yomitan.Wrap("span", "", yomitan.TextNode(sense)),
					yomitan.Wrap("ul", "", items),
				}),
			})
		}

		pos := tag.ShortPOS(e.POS)
		out.Terms = append(out.Terms, yomitan.TermRow{
			Term:           e.Word,
			Reading:        e.Reading,
			DefinitionTags: pos,
			Rules:          pos,
			Glossary:       glossary,
			Sequence:       i + 1,
		})
	}
	return out, nil
}

// GlossaryExtended builds a translation dictionary between two languages
// from the translation tables of a third edition. Translations into the
// source language become headwords and translations of the same sense into
// the target language become their definitions.
type GlossaryExtended struct {
	langs Langs
}

// Kind implements [Builder].
func (*GlossaryExtended) Kind() Kind { return KindGlossaryExtended }

// Name implements [Builder].
func (b *GlossaryExtended) Name() string {
	return dictName(b.langs.Edition.String(), b.langs.Source.String(), b.langs.Target.String(), "gloss")
}

// Langs implements [Builder].
func (b *GlossaryExtended) Langs() Langs { return b.langs }

// Keep implements [Builder]. Only words in the edition's own language carry
// translation tables.
func (b *GlossaryExtended) Keep(edition lang.Code, raw *kaikki.Entry) bool {
	if b.langs.Edition != lang.All && edition != b.langs.Edition {
		return false
	}
	return inLang(raw, edition)
}

// Build implements [Builder]. Rows are sorted by headword and each
// headword's definitions are unique.
func (b *GlossaryExtended) Build(entries []*entry.Entry) (*yomitan.Output, error) {
	type lemma struct {
		pos  string
		defs []string
	}
	lemmas := map[string]*lemma{}

	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			return nil, err
		}

		type pair struct {
			sources []string
			targets []string
		}
		var senses []string
		bySense := map[string]*pair{}
		for _, tr := range e.Translations {
			if tr.Lang != b.langs.Source && tr.Lang != b.langs.Target {
				continue
			}
			p, ok := bySense[tr.Sense]
			if !ok {
				p = &pair{}
				bySense[tr.Sense] = p
				senses = append(senses, tr.Sense)
			}
			// The source and target languages may be equal.
			if tr.Lang == b.langs.Source {
				p.sources = append(p.sources, tr.Word)
			}
			if tr.Lang == b.langs.Target {
				p.targets = append(p.targets, tr.Word)
			}
		}

		pos := tag.ShortPOS(e.POS)
		for _, sense := range senses {
			p := bySense[sense]
			if len(p.sources) == 0 || len(p.targets) == 0 {
				continue
			}
			for _, src := range p.sources {
				l, ok := lemmas[src]
				if !ok {
					l = &lemma{pos: pos}
					lemmas[src] = l
				}
				for _, def := range p.targets {
					if def != src && !slices.Contains(l.defs, def) {
						l.defs = append(l.defs, def)
					}
				}
			}
		}
	}

	words := make([]string, 0, len(lemmas))
	for w, l := range lemmas {
		if len(l.defs) > 0 {
			words = append(words, w)
		}
	}
	slices.SortFunc(words, strings.Compare)

	out := &yomitan.Output{}
	for i, w := range words {
		l := lemmas[w]
		glossary := make([]yomitan.Definition, 0, len(l.defs))
		for _, def := range l.defs {
			glossary = append(glossary, yomitan.Text(def))
		}
		out.Terms = append(out.Terms, yomitan.TermRow{
			Term:           w,
			DefinitionTags: l.pos,
			Rules:          l.pos,
			Glossary:       glossary,
			Sequence:       i + 1,
		})
	}
	return out, nil
}
