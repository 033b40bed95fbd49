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
	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/ipa"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/yomitan"
)

// Ipa builds the pronunciation dictionary of the source language from the
// target language's edition.
type Ipa struct {
	langs      Langs
	categories []string
}

// Kind implements [Builder].
func (*Ipa) Kind() Kind { return KindIpa }

// Name implements [Builder].
func (b *Ipa) Name() string {
	return dictName(b.langs.Source.String(), b.langs.Target.String(), "ipa")
}

// Langs implements [Builder].
func (b *Ipa) Langs() Langs { return b.langs }

// Keep implements [Builder].
func (b *Ipa) Keep(edition lang.Code, raw *kaikki.Entry) bool {
	return edition == b.langs.Edition && inLang(raw, b.langs.Source) && len(raw.Sounds) > 0
}

// Build implements [Builder]. Each entry with transcriptions becomes a meta
// row.
func (b *Ipa) Build(entries []*entry.Entry) (*yomitan.Output, error) {
	out := &yomitan.Output{}
	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			return nil, err
		}
		if pe, ok := ipa.FromEntry(e, b.categories); ok {
			out.Meta = append(out.Meta, metaRow(&pe))
		}
	}
	return out, nil
}

// IpaMerged builds a pronunciation dictionary of the target language merging
// the transcriptions found in every edition.
type IpaMerged struct {
	langs      Langs
	categories []string
}

// Kind implements [Builder].
func (*IpaMerged) Kind() Kind { return KindIpaMerged }

// Name implements [Builder].
func (b *IpaMerged) Name() string {
	return dictName(lang.All.String(), b.langs.Target.String(), "ipa")
}

// Langs implements [Builder].
func (b *IpaMerged) Langs() Langs { return b.langs }

// Keep implements [Builder].
func (b *IpaMerged) Keep(_ lang.Code, raw *kaikki.Entry) bool {
	return inLang(raw, b.langs.Target) && len(raw.Sounds) > 0
}

// Build implements [Builder]. Transcriptions are grouped by edition and
// merged per headword. Build must only be called once every edition has been
// read.
func (b *IpaMerged) Build(entries []*entry.Entry) (*yomitan.Output, error) {
	var editions []lang.Code
	groups := map[lang.Code][]ipa.Entry{}
	for i, e := range entries {
		if err := checkEntry(i, e); err != nil {
			return nil, err
		}
		pe, ok := ipa.FromEntry(e, b.categories)
		if !ok {
			continue
		}
		if _, ok := groups[e.Edition]; !ok {
			editions = append(editions, e.Edition)
		}
		groups[e.Edition] = append(groups[e.Edition], pe)
	}

	ordered := make([][]ipa.Entry, 0, len(editions))
	for _, ed := range editions {
		ordered = append(ordered, groups[ed])
	}

	out := &yomitan.Output{}
	for _, pe := range ipa.Merge(ordered...) {
		out.Meta = append(out.Meta, metaRow(&pe))
	}
	return out, nil
}

func metaRow(e *ipa.Entry) yomitan.MetaRow {
	row := yomitan.MetaRow{
		Term:    e.Word,
		Reading: e.Reading,
	}
	for _, tr := range e.Transcriptions {
		tags := tr.Tags.Names()
		if len(tags) == 0 && tr.Dialect != "" {
			tags = []string{tr.Dialect}
		}
		row.Transcriptions = append(row.Transcriptions, yomitan.Transcription{
			IPA:  tr.IPA,
			Tags: tags,
		})
	}
	return row
}
