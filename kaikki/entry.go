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

package kaikki

// Entry is a single word entry in an extract.
type Entry struct {
	Word          string        `json:"word"`
	POS           string        `json:"pos"`
	Lang          string        `json:"lang"`
	LangCode      string        `json:"lang_code"`
	Senses        []Sense       `json:"senses"`
	Forms         []Form        `json:"forms"`
	Sounds        []Sound       `json:"sounds"`
	Translations  []Translation `json:"translations"`
	EtymologyText string        `json:"etymology_text"`
}

// Sense is a single meaning of a word entry.
type Sense struct {
	Glosses      []string      `json:"glosses"`
	RawGlosses   []string      `json:"raw_glosses"` // used when Glosses is empty
	Tags         []string      `json:"tags"`
	RawTags      []string      `json:"raw_tags"`
	Examples     []Example     `json:"examples"`
	FormOf       []FormOf      `json:"form_of"`
	Translations []Translation `json:"translations"`
}

// Example is a usage example of a sense.
type Example struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	English     string `json:"english"`
}

// FormOf links a non-lemma sense to its lemma.
type FormOf struct {
	Word string `json:"word"`
}

// Form is an inflected or alternative form of the headword.
type Form struct {
	Form    string   `json:"form"`
	Tags    []string `json:"tags"`
	RawTags []string `json:"raw_tags"`
}

// Sound is a pronunciation of the headword.
type Sound struct {
	IPA     string   `json:"ipa"`
	Tags    []string `json:"tags"`
	RawTags []string `json:"raw_tags"`
	Note    string   `json:"note"`
}

// Translation is a translation of the headword into another language.
type Translation struct {
	// LangCode is the language code of the translation. Older extracts use
	// Code instead.
	LangCode string   `json:"lang_code"`
	Code     string   `json:"code"`
	Word     string   `json:"word"`
	Sense    string   `json:"sense"`
	Tags     []string `json:"tags"`
}

// Language returns the translation's language code.
func (t *Translation) Language() string {
	if t.LangCode != "" {
		return t.LangCode
	}
	return t.Code
}

// AllTranslations returns the entry level translations followed by the
// sense level translations. Translations without a word or whose word is a
// placeholder ("-") are omitted.
func (e *Entry) AllTranslations() []Translation {
	var out []Translation
	add := func(trs []Translation) {
		for _, tr := range trs {
			if tr.Word == "" || tr.Word == "-" {
				continue
			}
			out = append(out, tr)
		}
	}
	add(e.Translations)
	for i := range e.Senses {
		add(e.Senses[i].Translations)
	}
	return out
}
