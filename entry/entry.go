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
	"encoding/json"
	"time"

	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/tag"
)

// Entry is a normalized corpus record.
type Entry struct {
	// Word is the headword.
	Word string `json:"word"`

	// Reading is the headword's reading. It defaults to the headword.
	Reading string `json:"reading"`

	// POS is the kaikki part of speech.
	POS string `json:"pos"`

	// Lang is the language of the headword.
	Lang lang.Code `json:"lang"`

	// Edition is the Wiktionary edition the record was extracted from.
	Edition lang.Code `json:"edition"`

	Senses         []Sense         `json:"senses,omitempty"`
	Forms          []Form          `json:"forms,omitempty"`
	Pronunciations []Pronunciation `json:"pronunciations,omitempty"`
	Translations   []Translation   `json:"translations,omitempty"`

	Etymology string `json:"etymology,omitempty"`

	// Revision is the date of the corpus snapshot the entry was built from.
	Revision time.Time `json:"revision"`
}

// Sense is a single meaning of an entry.
type Sense struct {
	Glosses  []string  `json:"glosses"`
	Examples []Example `json:"examples,omitempty"`

	// FormOf lists the lemmas this sense is an inflection of.
	FormOf []string `json:"form_of,omitempty"`

	RawTags []string `json:"raw_tags,omitempty"`
	Tags    Tags     `json:"tags"`
}

// Example is a usage example.
type Example struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// Form is an inflected or alternative form of the headword.
type Form struct {
	Text    string   `json:"text"`
	RawTags []string `json:"raw_tags,omitempty"`
	Tags    Tags     `json:"tags"`
}

// Pronunciation is an IPA transcription of the headword.
type Pronunciation struct {
	IPA     string   `json:"ipa"`
	Note    string   `json:"note,omitempty"`
	RawTags []string `json:"raw_tags,omitempty"`
	Tags    Tags     `json:"tags"`

	// Dialect is the dialect label. It is set during postprocessing.
	Dialect string `json:"dialect,omitempty"`
}

// Translation is a translation of the headword.
type Translation struct {
	Lang  lang.Code `json:"lang"`
	Word  string    `json:"word"`
	Sense string    `json:"sense,omitempty"`
}

// Tags is an ordered sequence of canonical tags. It is nil until the owning
// entry is postprocessed.
type Tags []*tag.Tag

// Names returns the tag names in order.
func (ts Tags) Names() []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, t.Name)
	}
	return names
}

// MarshalJSON implements [json.Marshaler]. Tags are written by name.
func (ts Tags) MarshalJSON() ([]byte, error) {
	if ts == nil {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Names())
}

// Lemmas returns the distinct lemmas that the entry's senses are forms of.
func (e *Entry) Lemmas() []string {
	var lemmas []string
	seen := map[string]bool{}
	for i := range e.Senses {
		for _, w := range e.Senses[i].FormOf {
			if !seen[w] {
				seen[w] = true
				lemmas = append(lemmas, w)
			}
		}
	}
	return lemmas
}
