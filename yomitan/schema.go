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
	"encoding/json"
	"errors"
)

// ErrSchema indicates that a row cannot be represented in the Yomitan schema.
var ErrSchema = errors.New("yomitan schema")

// TermRow is a term bank row.
type TermRow struct {
	Term    string
	Reading string

	// DefinitionTags is a space separated list of tag names.
	DefinitionTags string

	// Rules is a space separated list of deinflection rule identifiers.
	Rules string

	Score    int
	Glossary []Definition
	Sequence int

	// TermTags is a space separated list of tag names.
	TermTags string
}

// MarshalJSON implements [json.Marshaler].
func (r TermRow) MarshalJSON() ([]byte, error) {
	glossary := r.Glossary
	if glossary == nil {
		glossary = []Definition{}
	}
	return json.Marshal([]any{
		r.Term,
		r.Reading,
		r.DefinitionTags,
		r.Rules,
		r.Score,
		glossary,
		r.Sequence,
		r.TermTags,
	})
}

// MetaRow is a term meta bank row holding IPA transcriptions.
type MetaRow struct {
	Term           string
	Reading        string
	Transcriptions []Transcription
}

// Transcription is an IPA transcription in a MetaRow.
type Transcription struct {
	IPA  string   `json:"ipa"`
	Tags []string `json:"tags"`
}

// MarshalJSON implements [json.Marshaler].
func (r MetaRow) MarshalJSON() ([]byte, error) {
	transcriptions := make([]Transcription, 0, len(r.Transcriptions))
	for _, tr := range r.Transcriptions {
		if tr.Tags == nil {
			tr.Tags = []string{}
		}
		transcriptions = append(transcriptions, tr)
	}
	return json.Marshal([]any{
		r.Term,
		"ipa",
		struct {
			Reading        string          `json:"reading"`
			Transcriptions []Transcription `json:"transcriptions"`
		}{
			Reading:        r.Reading,
			Transcriptions: transcriptions,
		},
	})
}

// TagRow is a tag bank row.
type TagRow struct {
	Name     string
	Category string
	Order    int
	Notes    string
	Score    float64
}

// MarshalJSON implements [json.Marshaler].
func (r TagRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Name, r.Category, r.Order, r.Notes, r.Score})
}

// Definition is an item in a term's glossary. It is one of [Text],
// [StructuredContent] or [Deinflection].
type Definition interface {
	definition()
}

// Text is a plain text definition.
type Text string

func (Text) definition() {}

// StructuredContent is a rich definition.
type StructuredContent struct {
	Content Node
}

func (StructuredContent) definition() {}

// MarshalJSON implements [json.Marshaler].
func (s StructuredContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content Node   `json:"content"`
	}{
		Type:    "structured-content",
		Content: s.Content,
	})
}

// Deinflection marks a term as an inflection of Uninflected. Rules are the
// names of the inflections applied.
type Deinflection struct {
	Uninflected string
	Rules       []string
}

func (Deinflection) definition() {}

// MarshalJSON implements [json.Marshaler].
func (d Deinflection) MarshalJSON() ([]byte, error) {
	rules := d.Rules
	if rules == nil {
		rules = []string{}
	}
	return json.Marshal([]any{d.Uninflected, rules})
}

// Node is a structured content node. It is one of [TextNode], [Nodes] or
// [Element].
type Node interface {
	node()
}

// TextNode is a text node.
type TextNode string

func (TextNode) node() {}

// Nodes is a list of nodes.
type Nodes []Node

func (Nodes) node() {}

// Element is an HTML-like element.
type Element struct {
	Tag     string            `json:"tag"`
	Content Node              `json:"content,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
	Title   string            `json:"title,omitempty"`
	Lang    string            `json:"lang,omitempty"`
}

func (Element) node() {}

// Wrap returns an element with the given tag and content. If class is not
// empty it is recorded as the element's "content" data attribute.
func Wrap(tag, class string, content Node) Element {
	e := Element{Tag: tag, Content: content}
	if class != "" {
		e.Data = map[string]string{"content": class}
	}
	return e
}
