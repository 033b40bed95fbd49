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

package entry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ianlewis/go-kty/internal/textnorm"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
)

// ErrInvalidRecord indicates that a corpus record cannot be normalized. The
// record should be skipped.
var ErrInvalidRecord = errors.New("invalid record")

var (
	errNoHeadword = fmt.Errorf("%w: missing headword", ErrInvalidRecord)
	errNoPOS      = fmt.Errorf("%w: missing part of speech", ErrInvalidRecord)
	errNoLang     = fmt.Errorf("%w: missing language code", ErrInvalidRecord)
	errEmptyForm  = fmt.Errorf("%w: form without text", ErrInvalidRecord)
)

// NormalizeOptions are options for [Normalize].
type NormalizeOptions struct {
	// Edition is the edition the record was read from.
	Edition lang.Code

	// Revision is the corpus snapshot date.
	Revision time.Time
}

// Normalize converts a raw corpus record into an Entry. Structurally
// identical forms, pronunciations and translations are collapsed. Senses are
// never dropped. Raw tag strings are kept verbatim for the [Postprocessor].
//
// Errors wrap [ErrInvalidRecord].
func Normalize(raw *kaikki.Entry, opts *NormalizeOptions) (*Entry, error) {
	if opts == nil {
		opts = &NormalizeOptions{}
	}

	word := textnorm.Clean(raw.Word)
	if word == "" {
		return nil, errNoHeadword
	}
	pos := strings.TrimSpace(raw.POS)
	if pos == "" {
		return nil, fmt.Errorf("%w: %q", errNoPOS, word)
	}
	code := strings.ToLower(strings.TrimSpace(raw.LangCode))
	if code == "" {
		return nil, fmt.Errorf("%w: %q", errNoLang, word)
	}

	e := &Entry{
		Word:      word,
		Reading:   word,
		POS:       pos,
		Lang:      lang.Code(code),
		Edition:   opts.Edition,
		Etymology: textnorm.Clean(raw.EtymologyText),
		Revision:  opts.Revision,
	}

	for i := range raw.Senses {
		e.Senses = append(e.Senses, normalizeSense(&raw.Senses[i]))
	}

	forms, err := normalizeForms(raw.Forms)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, word)
	}
	e.Forms = forms
	e.Pronunciations = normalizeSounds(raw.Sounds)
	e.Translations = normalizeTranslations(raw.AllTranslations())

	return e, nil
}

func normalizeSense(s *kaikki.Sense) Sense {
	sense := Sense{
		RawTags: rawTags(s.Tags, s.RawTags),
	}
	glosses := s.Glosses
	if len(glosses) == 0 {
		glosses = s.RawGlosses
	}
	for _, g := range glosses {
		if g = textnorm.Clean(g); g != "" {
			sense.Glosses = append(sense.Glosses, g)
		}
	}
	for _, ex := range s.Examples {
		text := textnorm.Clean(ex.Text)
		if text == "" {
			continue
		}
		tr := ex.Translation
		if tr == "" {
			tr = ex.English
		}
		sense.Examples = append(sense.Examples, Example{
			Text:        text,
			Translation: textnorm.Clean(tr),
		})
	}
	for _, f := range s.FormOf {
		if w := textnorm.Clean(f.Word); w != "" && !slices.Contains(sense.FormOf, w) {
			sense.FormOf = append(sense.FormOf, w)
		}
	}
	return sense
}

func normalizeForms(raw []kaikki.Form) ([]Form, error) {
	var forms []Form
	seen := map[string]bool{}
	for i := range raw {
		text := textnorm.Clean(raw[i].Form)
		if text == "" {
			return nil, fmt.Errorf("%w (form %d)", errEmptyForm, i)
		}
		tags := rawTags(raw[i].Tags, raw[i].RawTags)
		key := itemKey(text, tags)
		if seen[key] {
			continue
		}
		seen[key] = true
		forms = append(forms, Form{Text: text, RawTags: tags})
	}
	return forms, nil
}

func normalizeSounds(raw []kaikki.Sound) []Pronunciation {
	var prons []Pronunciation
	seen := map[string]bool{}
	for i := range raw {
		// Sounds without a transcription are audio files or rhymes.
		ipa := textnorm.Clean(raw[i].IPA)
		if ipa == "" {
			continue
		}
		note := textnorm.Clean(raw[i].Note)
		tags := rawTags(raw[i].Tags, raw[i].RawTags)
		key := itemKey(ipa+"\x00"+note, tags)
		if seen[key] {
			continue
		}
		seen[key] = true
		prons = append(prons, Pronunciation{IPA: ipa, Note: note, RawTags: tags})
	}
	return prons
}

func normalizeTranslations(raw []kaikki.Translation) []Translation {
	var trs []Translation
	seen := map[Translation]bool{}
	for i := range raw {
		tr := Translation{
			Lang:  lang.Code(strings.ToLower(strings.TrimSpace(raw[i].Language()))),
			Word:  textnorm.Clean(raw[i].Word),
			Sense: textnorm.Clean(raw[i].Sense),
		}
		if tr.Lang == "" || tr.Word == "" || seen[tr] {
			continue
		}
		seen[tr] = true
		trs = append(trs, tr)
	}
	return trs
}

// rawTags concatenates the extractor's normalized and raw tags.
func rawTags(tags, raw []string) []string {
	if len(tags)+len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags)+len(raw))
	out = append(out, tags...)
	return append(out, raw...)
}

// itemKey identifies an item by its text and its raw tag multiset.
func itemKey(text string, tags []string) string {
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	return text + "\x00" + strings.Join(sorted, "\x00")
}
