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

// Package variant implements the dictionary flavors. Each flavor is a
// [Builder] that selects corpus records and projects postprocessed entries
// into Yomitan rows.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/yomitan"
)

// ErrUnknownKind indicates that a dictionary flavor is not known.
var ErrUnknownKind = errors.New("unknown dictionary kind")

// ErrLangs indicates that the languages given for a flavor are invalid.
var ErrLangs = errors.New("invalid languages")

// Kind is a dictionary flavor.
type Kind int

const (
	// KindMain is the full dictionary with glosses, examples and etymology.
	KindMain Kind = iota

	// KindIpa holds IPA transcriptions of one language.
	KindIpa

	// KindIpaMerged holds IPA transcriptions merged across all editions.
	KindIpaMerged

	// KindGlossary holds translations grouped by sense.
	KindGlossary

	// KindGlossaryExtended holds translations between two languages found in
	// a third language's edition.
	KindGlossaryExtended
)

var kindNames = []string{
	KindMain:             "main",
	KindIpa:              "ipa",
	KindIpaMerged:        "ipa-merged",
	KindGlossary:         "glossary",
	KindGlossaryExtended: "glossary-extended",
}

// Kinds returns all dictionary flavors.
func Kinds() []Kind {
	return []Kind{KindMain, KindIpa, KindIpaMerged, KindGlossary, KindGlossaryExtended}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a flavor name.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Langs are the languages of a dictionary.
type Langs struct {
	// Edition is the edition whose records are read. It is [lang.All] when
	// records of every edition are read.
	Edition lang.Code

	// Source is the language of the headwords.
	Source lang.Code

	// Target is the language of the definitions.
	Target lang.Code
}

// Builder builds one dictionary flavor.
type Builder interface {
	// Kind returns the builder's flavor.
	Kind() Kind

	// Name returns the dictionary name.
	Name() string

	// Langs returns the dictionary's languages.
	Langs() Langs

	// Keep reports whether a record read from edition is used by the
	// builder.
	Keep(edition lang.Code, raw *kaikki.Entry) bool

	// Build projects entries into Yomitan rows. It does not modify entries.
	// Errors wrap [yomitan.ErrSchema].
	Build(entries []*entry.Entry) (*yomitan.Output, error)
}

// Options are builder options.
type Options struct {
	// PronunciationCategories are the tag categories kept on IPA
	// transcriptions.
	PronunciationCategories []string
}

// New returns the builder for kind. The edition in langs is derived from the
// source and target languages except for [KindGlossaryExtended], which needs
// it set explicitly.
func New(kind Kind, langs Langs, opts *Options) (Builder, error) {
	if opts == nil {
		opts = &Options{}
	}
	categories := opts.PronunciationCategories
	if len(categories) == 0 {
		categories = entry.DefaultDialectCategories
	}

	if langs.Target == "" {
		return nil, fmt.Errorf("%w: %s: missing target language", ErrLangs, kind)
	}

	switch kind {
	case KindMain, KindIpa:
		if langs.Source == "" || langs.Source == lang.All {
			return nil, fmt.Errorf("%w: %s: missing source language", ErrLangs, kind)
		}
		langs.Edition = langs.Target
		if kind == KindMain {
			return &Main{langs: langs}, nil
		}
		return &Ipa{langs: langs, categories: categories}, nil
	case KindIpaMerged:
		langs.Edition = lang.All
		langs.Source = lang.All
		return &IpaMerged{langs: langs, categories: categories}, nil
	case KindGlossary:
		if langs.Source == "" || langs.Source == lang.All {
			return nil, fmt.Errorf("%w: %s: missing source language", ErrLangs, kind)
		}
		langs.Edition = langs.Source
		return &Glossary{langs: langs}, nil
	case KindGlossaryExtended:
		if langs.Source == "" || langs.Source == lang.All || langs.Edition == "" {
			return nil, fmt.Errorf("%w: %s: missing edition or source language", ErrLangs, kind)
		}
		return &GlossaryExtended{langs: langs}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// dictName returns "kty-" followed by the dash separated parts.
func dictName(parts ...string) string {
	return "kty-" + strings.Join(parts, "-")
}

// rawLang returns the normalized language code of a raw record.
func rawLang(raw *kaikki.Entry) lang.Code {
	return lang.Code(strings.ToLower(strings.TrimSpace(raw.LangCode)))
}

// inLang reports whether raw is a word of c. Records of the Simple English
// edition are English words.
func inLang(raw *kaikki.Entry, c lang.Code) bool {
	return rawLang(raw) == c.Language()
}

// checkEntry returns an error if e cannot be a term.
func checkEntry(i int, e *entry.Entry) error {
	if e.Word == "" {
		return fmt.Errorf("%w: entry %d has no headword", yomitan.ErrSchema, i)
	}
	return nil
}
