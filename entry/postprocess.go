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
	"slices"
	"strings"

	"github.com/ianlewis/go-kty/internal/diag"
	"github.com/ianlewis/go-kty/tag"
)

// DefaultDialectCategories are the tag categories that label a
// pronunciation's dialect.
var DefaultDialectCategories = []string{"dialect", "region"}

// Postprocessor resolves the raw tags of entries. A Postprocessor may be used
// concurrently by multiple goroutines.
type Postprocessor struct {
	table *tag.Table
	diag  *diag.Diagnostics

	// DialectCategories are the categories used to derive a pronunciation's
	// dialect when it has no note. It must not be modified once Process has
	// been called.
	DialectCategories []string
}

// NewPostprocessor returns a Postprocessor resolving tags with table. Tag
// resolutions are recorded in d, which may be nil.
func NewPostprocessor(table *tag.Table, d *diag.Diagnostics) *Postprocessor {
	return &Postprocessor{
		table:             table,
		diag:              d,
		DialectCategories: DefaultDialectCategories,
	}
}

// Process resolves the raw tags of every sense, form and pronunciation of e.
// All raw tags of the entry are resolved once before any item is assigned
// tags, so that every item's tags are ordered by the same key. Process is
// idempotent.
func (p *Postprocessor) Process(e *Entry) {
	p.ProcessTo(e, p.diag)
}

// ProcessTo is like Process but records tag resolutions in r instead of the
// Postprocessor's diagnostics.
func (p *Postprocessor) ProcessTo(e *Entry, r diag.Recorder) {
	resolved := p.collect(e, r)

	for i := range e.Senses {
		e.Senses[i].Tags = assign(resolved, e.Senses[i].RawTags)
	}
	for i := range e.Forms {
		e.Forms[i].Tags = assign(resolved, e.Forms[i].RawTags)
	}
	for i := range e.Pronunciations {
		pron := &e.Pronunciations[i]
		pron.Tags = assign(resolved, pron.RawTags)
		pron.Dialect = p.dialect(pron)
	}
}

// collect resolves the union of the entry's raw tags. Unknown tags map to
// nil.
func (p *Postprocessor) collect(e *Entry, r diag.Recorder) map[string]*tag.Tag {
	resolved := map[string]*tag.Tag{}
	add := func(raw []string) {
		for _, name := range raw {
			if _, ok := resolved[name]; ok {
				continue
			}
			t, ok := p.table.Resolve(name)
			if ok {
				r.AcceptTag(t.Name, e.Word)
			} else {
				r.RejectTag(name, e.Word)
			}
			resolved[name] = t
		}
	}

	for i := range e.Senses {
		add(e.Senses[i].RawTags)
	}
	for i := range e.Forms {
		add(e.Forms[i].RawTags)
	}
	for i := range e.Pronunciations {
		add(e.Pronunciations[i].RawTags)
	}
	return resolved
}

func (p *Postprocessor) dialect(pron *Pronunciation) string {
	if pron.Note != "" {
		return pron.Note
	}
	var names []string
	for _, t := range pron.Tags {
		if t.InCategory(p.DialectCategories...) {
			names = append(names, t.Name)
		}
	}
	return strings.Join(names, ", ")
}

// assign returns the resolved tags of raw, deduplicated and sorted by order.
func assign(resolved map[string]*tag.Tag, raw []string) Tags {
	tags := make(Tags, 0, len(raw))
	for _, r := range raw {
		t := resolved[r]
		if t == nil || slices.Contains(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	slices.SortFunc(tags, tag.Compare)
	return tags
}
